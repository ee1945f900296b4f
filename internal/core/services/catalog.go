package services

import (
	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/core/ports/driving"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// Catalog is the fixed, ordered table of guide metadata. It has
// exactly one state (populated) for its entire lifetime: entries are
// assigned at construction, never renumbered and never mutated, so
// the catalog is freely shared without locking.
type Catalog struct {
	entries []domain.GuideEntry
	byID    map[int]int
}

// NewCatalog builds a catalog over the given entries, preserving
// their order. The caller's slice is copied; later mutation of it
// does not affect the catalog.
func NewCatalog(entries []domain.GuideEntry) *Catalog {
	c := &Catalog{
		entries: make([]domain.GuideEntry, len(entries)),
		byID:    make(map[int]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		c.byID[e.ID] = i
	}
	return c
}

// NewBundledCatalog returns the catalog of guides shipped in the
// binary. IDs are contiguous from 1 in definition order.
func NewBundledCatalog() *Catalog {
	return NewCatalog(bundledEntries)
}

// ListEntries returns all entries in catalog definition order.
// The result is a copy; callers may not mutate the table through it.
func (c *Catalog) ListEntries() []domain.GuideEntry {
	out := make([]domain.GuideEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FindByID looks up an entry by identifier. The second return value
// is false when no entry matches.
func (c *Catalog) FindByID(id int) (domain.GuideEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.GuideEntry{}, false
	}
	return c.entries[i], true
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// bundledEntries is the fixed guide table. The order here defines the
// IDs; never reorder or renumber existing rows, only append.
var bundledEntries = []domain.GuideEntry{
	{ID: 1, Title: "Setting Up Your Development Environment", Locator: "guides/tools_and_environment_setup.md"},
	{ID: 2, Title: "Project Structure and Modularization", Locator: "guides/project_structure.md"},
	{ID: 3, Title: "Kotlin Style and Conventions", Locator: "guides/kotlin_style.md"},
	{ID: 4, Title: "Architecture: MVVM and Unidirectional Data Flow", Locator: "guides/app_architecture.md"},
	{ID: 5, Title: "Dependency Injection with Hilt", Locator: "guides/dependency_injection.md"},
	{ID: 6, Title: "Jetpack Compose Fundamentals", Locator: "guides/compose_fundamentals.md"},
	{ID: 7, Title: "State Management in Compose", Locator: "guides/compose_state.md"},
	{ID: 8, Title: "Navigation Patterns", Locator: "guides/navigation.md"},
	{ID: 9, Title: "Networking and API Design", Locator: "guides/networking.md"},
	{ID: 10, Title: "Local Persistence with Room", Locator: "guides/persistence_room.md"},
	{ID: 11, Title: "Background Work with WorkManager", Locator: "guides/background_work.md"},
	{ID: 12, Title: "Coroutines and Flows", Locator: "guides/coroutines_flows.md"},
	{ID: 13, Title: "Resource Management and Theming", Locator: "guides/resources_theming.md"},
	{ID: 14, Title: "Accessibility Best Practices", Locator: "guides/accessibility.md"},
	{ID: 15, Title: "Performance Profiling", Locator: "guides/performance.md"},
	{ID: 16, Title: "Testing: Unit and Instrumented", Locator: "guides/testing.md"},
	{ID: 17, Title: "App Security Essentials", Locator: "guides/security.md"},
	{ID: 18, Title: "Release Builds and Signing", Locator: "guides/release_signing.md"},
	{ID: 19, Title: "Play Store Publishing", Locator: "guides/play_publishing.md"},
	{ID: 20, Title: "Crash Reporting and Observability", Locator: "guides/observability.md"},
	{ID: 21, Title: "Continuous Integration for Android", Locator: "guides/ci.md"},
}
