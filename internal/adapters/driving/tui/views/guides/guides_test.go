package guides

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/keymap"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/messages"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/styles"
	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/core/services"
)

// mapSource is an in-memory asset source for tests.
type mapSource map[string]string

func (m mapSource) Read(_ context.Context, locator string) (string, error) {
	if content, ok := m[locator]; ok {
		return content, nil
	}
	return "", fmt.Errorf("no such asset %s", locator)
}

func newTestView(t *testing.T) *View {
	t.Helper()

	catalog := services.NewCatalog([]domain.GuideEntry{
		{ID: 1, Title: "Alpha", Locator: "a.md"},
		{ID: 2, Title: "Beta", Locator: "b.md"},
		{ID: 3, Title: "Gamma", Locator: "c.md"},
	})
	guide := services.NewGuideService(catalog, mapSource{})

	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), guide)
	v.SetDimensions(80, 24)
	return v
}

// loadedView returns a view whose guide list has been loaded.
func loadedView(t *testing.T) *View {
	t.Helper()

	v := newTestView(t)
	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.GuidesLoaded)
	require.True(t, ok)

	v, _ = v.Update(loaded)
	return v
}

func TestInit_LoadsGuideList(t *testing.T) {
	v := loadedView(t)

	sections := v.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "Alpha", sections[0].Title)
	assert.Equal(t, "Gamma", sections[2].Title)
	for _, s := range sections {
		assert.False(t, s.HasContent(), "the list must carry titles only")
	}
}

func TestInit_NilServiceReportsError(t *testing.T) {
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), nil)

	msg := v.Init()()

	errMsg, ok := msg.(messages.ErrorOccurred)
	require.True(t, ok)
	assert.Error(t, errMsg.Err)
}

func TestNavigation(t *testing.T) {
	v := loadedView(t)
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(down)
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(down)
	v, _ = v.Update(down) // already at the bottom
	assert.Equal(t, 2, v.Selected())

	v, _ = v.Update(up)
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(up) // already at the top
	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 2, v.Selected())
}

func TestSelect_EmitsGuideSelected(t *testing.T) {
	v := loadedView(t)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	selected, ok := msg.(messages.GuideSelected)
	require.True(t, ok)
	assert.Equal(t, 2, selected.ID)
	assert.Equal(t, 1, v.Selected())
}

func TestSelect_EmptyListIsSafe(t *testing.T) {
	catalog := services.NewCatalog(nil)
	guide := services.NewGuideService(catalog, mapSource{})
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), guide)
	v.SetDimensions(80, 24)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, v.Selected())
}

func TestGuidesLoaded_ResetsOutOfRangeSelection(t *testing.T) {
	v := loadedView(t)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	require.Equal(t, 2, v.Selected())

	v, _ = v.Update(messages.GuidesLoaded{Sections: []domain.GuideSection{
		{ID: 1, Title: "Alpha"},
	}})

	assert.Equal(t, 0, v.Selected())
}

func TestView_RendersTitles(t *testing.T) {
	v := loadedView(t)

	out := v.View()

	assert.Contains(t, out, "Android Development Guides")
	assert.Contains(t, out, "1. Alpha")
	assert.Contains(t, out, "2. Beta")
	assert.Contains(t, out, "3. Gamma")
}

func TestView_EmptyList(t *testing.T) {
	v := newTestView(t)

	assert.Contains(t, v.View(), "(No guides)")
}
