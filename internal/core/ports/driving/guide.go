package driving

import (
	"context"

	"github.com/mobilekata/droidguide/internal/core/domain"
)

// CatalogService provides the fixed, ordered set of guide metadata.
// The catalog is pure data: deterministic, side-effect-free, no I/O.
type CatalogService interface {
	// ListEntries returns all entries in catalog definition order.
	// Repeated calls within a process always yield the same sequence.
	ListEntries() []domain.GuideEntry

	// FindByID looks up an entry by its numeric identifier. The
	// second return value is false when no entry matches; an unknown
	// id is absence, not an error.
	FindByID(id int) (domain.GuideEntry, bool)
}

// GuideService resolves catalog entries into presentation-ready
// sections, tolerating asset read failure.
type GuideService interface {
	// GetSection looks up the entry for id and resolves its content.
	// Returns domain.ErrNotFound when the id is not in the catalog.
	// A content read failure is NOT an error: the section is returned
	// with a human-readable failure message as its content.
	GetSection(ctx context.Context, id int) (*domain.GuideSection, error)

	// GetSectionList maps every catalog entry to a section with nil
	// content, for cheap list rendering without any I/O.
	GetSectionList(ctx context.Context) []domain.GuideSection

	// ResolveContent reads the asset identified by locator. On
	// success it returns the asset's full text verbatim; on any
	// failure it returns "Error loading content for <locator>:
	// <cause>". It never returns an error to the caller.
	ResolveContent(ctx context.Context, locator string) string
}
