package services

import (
	"context"
	"fmt"

	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/core/ports/driven"
	"github.com/mobilekata/droidguide/internal/core/ports/driving"
	"github.com/mobilekata/droidguide/internal/logger"
)

// Ensure GuideService implements the interface.
var _ driving.GuideService = (*GuideService)(nil)

// GuideService resolves catalog entries into presentation-ready
// sections. It holds no state between calls; each read opens and
// closes its own asset handle inside the source.
type GuideService struct {
	catalog driving.CatalogService
	source  driven.AssetSource
}

// NewGuideService creates a new guide service.
func NewGuideService(catalog driving.CatalogService, source driven.AssetSource) *GuideService {
	return &GuideService{
		catalog: catalog,
		source:  source,
	}
}

// GetSection looks up the entry for id and resolves its content.
// An unknown id yields domain.ErrNotFound; a read failure does not,
// it becomes the section's content.
func (s *GuideService) GetSection(ctx context.Context, id int) (*domain.GuideSection, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}

	entry, ok := s.catalog.FindByID(id)
	if !ok {
		logger.Debug("guide %d not in catalog", id)
		return nil, domain.ErrNotFound
	}

	content := s.ResolveContent(ctx, entry.Locator)
	return &domain.GuideSection{
		ID:      entry.ID,
		Title:   entry.Title,
		Content: &content,
	}, nil
}

// GetSectionList maps every catalog entry to a section with nil
// content. No I/O is performed.
func (s *GuideService) GetSectionList(_ context.Context) []domain.GuideSection {
	if s.catalog == nil {
		return nil
	}

	entries := s.catalog.ListEntries()
	sections := make([]domain.GuideSection, 0, len(entries))
	for _, e := range entries {
		sections = append(sections, domain.GuideSection{
			ID:    e.ID,
			Title: e.Title,
		})
	}
	return sections
}

// ResolveContent reads the asset identified by locator. Failures are
// deliberately encoded as content rather than returned: callers get
// either the asset's text or a readable message explaining why not.
func (s *GuideService) ResolveContent(ctx context.Context, locator string) string {
	if s.source == nil {
		return loadErrorString(locator, domain.ErrNotImplemented)
	}

	text, err := s.source.Read(ctx, locator)
	if err != nil {
		logger.Warn("asset read failed for %s: %v", locator, err)
		return loadErrorString(locator, err)
	}
	return text
}

// loadErrorString formats a read failure as user-visible content.
// The exact shape is a compatibility contract; do not change it.
func loadErrorString(locator string, cause error) string {
	return fmt.Sprintf("Error loading content for %s: %v", locator, cause)
}
