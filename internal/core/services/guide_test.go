package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilekata/droidguide/internal/core/domain"
)

// mapSource is an in-memory asset source for tests.
type mapSource struct {
	assets map[string]string
}

func (s *mapSource) Read(_ context.Context, locator string) (string, error) {
	text, ok := s.assets[locator]
	if !ok {
		return "", errors.New("open " + locator + ": file does not exist")
	}
	return text, nil
}

// failingSource always fails with a fixed error.
type failingSource struct {
	err error
}

func (s *failingSource) Read(context.Context, string) (string, error) {
	return "", s.err
}

func testCatalog() *Catalog {
	return NewCatalog([]domain.GuideEntry{
		{ID: 1, Title: "Setting Up Your Development Environment", Locator: "guides/tools_and_environment_setup.md"},
		{ID: 2, Title: "Project Structure and Modularization", Locator: "guides/project_structure.md"},
	})
}

func TestGuideService_GetSection(t *testing.T) {
	source := &mapSource{assets: map[string]string{
		"guides/tools_and_environment_setup.md": "# Tools...",
	}}
	svc := NewGuideService(testCatalog(), source)
	ctx := context.Background()

	section, err := svc.GetSection(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, section.ID)
	assert.Equal(t, "Setting Up Your Development Environment", section.Title)
	require.True(t, section.HasContent())
	assert.Equal(t, "# Tools...", section.Text())
}

func TestGuideService_GetSection_UnknownID(t *testing.T) {
	svc := NewGuideService(testCatalog(), &mapSource{})
	ctx := context.Background()

	for _, id := range []int{0, 9999} {
		section, err := svc.GetSection(ctx, id)
		assert.Nil(t, section)
		assert.ErrorIs(t, err, domain.ErrNotFound, "id %d", id)
	}
}

func TestGuideService_GetSection_ReadFailureBecomesContent(t *testing.T) {
	svc := NewGuideService(testCatalog(), &mapSource{assets: map[string]string{}})
	ctx := context.Background()

	// A missing asset is not an error at the service boundary.
	section, err := svc.GetSection(ctx, 1)
	require.NoError(t, err)
	require.True(t, section.HasContent())
	assert.Equal(t,
		"Error loading content for guides/tools_and_environment_setup.md: open guides/tools_and_environment_setup.md: file does not exist",
		section.Text())
}

func TestGuideService_GetSection_Idempotent(t *testing.T) {
	source := &mapSource{assets: map[string]string{
		"guides/tools_and_environment_setup.md": "# Tools...",
	}}
	svc := NewGuideService(testCatalog(), source)
	ctx := context.Background()

	first, err := svc.GetSection(ctx, 1)
	require.NoError(t, err)
	second, err := svc.GetSection(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Text(), second.Text())
}

func TestGuideService_GetSectionList(t *testing.T) {
	// The source fails for everything; the list must not care.
	svc := NewGuideService(testCatalog(), &failingSource{err: errors.New("boom")})

	sections := svc.GetSectionList(context.Background())

	require.Len(t, sections, 2)
	for i, s := range sections {
		assert.Equal(t, i+1, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.False(t, s.HasContent(), "list sections carry no content")
	}
}

func TestGuideService_GetSectionList_MatchesGetSection(t *testing.T) {
	source := &mapSource{assets: map[string]string{
		"guides/tools_and_environment_setup.md": "# Tools...",
		"guides/project_structure.md":           "# Structure",
	}}
	svc := NewGuideService(testCatalog(), source)
	ctx := context.Background()

	for _, listed := range svc.GetSectionList(ctx) {
		section, err := svc.GetSection(ctx, listed.ID)
		require.NoError(t, err)
		assert.Equal(t, listed.ID, section.ID)
		assert.Equal(t, listed.Title, section.Title)
	}
}

func TestGuideService_ResolveContent(t *testing.T) {
	source := &mapSource{assets: map[string]string{
		"guides/project_structure.md": "content\nwith lines\n",
	}}
	svc := NewGuideService(testCatalog(), source)
	ctx := context.Background()

	// Success returns the text verbatim.
	assert.Equal(t, "content\nwith lines\n", svc.ResolveContent(ctx, "guides/project_structure.md"))

	// Failure returns the formatted message, never an error.
	got := svc.ResolveContent(ctx, "guides/missing.md")
	assert.Equal(t, "Error loading content for guides/missing.md: open guides/missing.md: file does not exist", got)
}

func TestGuideService_ResolveContent_FailureMessageShape(t *testing.T) {
	svc := NewGuideService(testCatalog(), &failingSource{err: errors.New("permission denied")})

	got := svc.ResolveContent(context.Background(), "guides/x.md")
	assert.Equal(t, "Error loading content for guides/x.md: permission denied", got)
}

func TestGuideService_BundledCatalogAgainstBundledAssets(t *testing.T) {
	// Wiring sanity: every bundled section resolves without an
	// error-shaped message when the source has every locator.
	catalog := NewBundledCatalog()
	assets := make(map[string]string, catalog.Len())
	for _, e := range catalog.ListEntries() {
		assets[e.Locator] = "# " + e.Title
	}
	svc := NewGuideService(catalog, &mapSource{assets: assets})
	ctx := context.Background()

	for _, e := range catalog.ListEntries() {
		section, err := svc.GetSection(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, "# "+e.Title, section.Text())
	}
}
