// Package guides provides the guide list view component for the TUI.
package guides

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/keymap"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/messages"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/styles"
	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/core/ports/driving"
)

// View is the guide list view.
type View struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	guideService driving.GuideService

	sections     []domain.GuideSection
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
}

// NewView creates a new guide list view.
func NewView(s *styles.Styles, km *keymap.KeyMap, guideService driving.GuideService) *View {
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:       s,
		keymap:       km,
		guideService: guideService,
		sections:     []domain.GuideSection{},
	}
}

// Init initialises the view by loading the guide list.
func (v *View) Init() tea.Cmd {
	return v.loadGuides()
}

// loadGuides returns a command that loads the guide list. The list
// carries titles only; no asset is read until a guide is opened.
func (v *View) loadGuides() tea.Cmd {
	return func() tea.Msg {
		if v.guideService == nil {
			return messages.ErrorOccurred{Err: fmt.Errorf("guide service not available")}
		}
		return messages.GuidesLoaded{
			Sections: v.guideService.GetSectionList(context.Background()),
		}
	}
}

// Update handles messages for the guide list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.GuidesLoaded:
		v.sections = msg.Sections
		if v.selected >= len(v.sections) {
			v.selected = 0
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.sections)-1 {
			v.selected++
			v.adjustScroll()
		}
	case key.Matches(msg, v.keymap.Top):
		v.selected = 0
		v.adjustScroll()
	case key.Matches(msg, v.keymap.Bottom):
		if len(v.sections) > 0 {
			v.selected = len(v.sections) - 1
			v.adjustScroll()
		}
	case key.Matches(msg, v.keymap.Select):
		if v.selected < len(v.sections) {
			id := v.sections[v.selected].ID
			return v, func() tea.Msg {
				return messages.GuideSelected{ID: id}
			}
		}
	}

	return v, nil
}

// adjustScroll keeps the selection within the visible window.
func (v *View) adjustScroll() {
	visible := v.visibleRows()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	}
	if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
}

// visibleRows returns how many list rows fit on screen.
func (v *View) visibleRows() int {
	// Reserve lines for title, separator, and footer hint
	reserved := 5
	rows := v.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the guide list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Android Development Guides"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(maxInt(v.width-4, 10), 60)))
	b.WriteString("\n\n")

	if len(v.sections) == 0 {
		b.WriteString(v.styles.Muted.Render("(No guides)"))
		b.WriteString("\n")
		return b.String()
	}

	visible := v.visibleRows()
	for i := v.scrollOffset; i < len(v.sections) && i < v.scrollOffset+visible; i++ {
		section := v.sections[i]
		row := fmt.Sprintf(" %2d. %s ", section.ID, section.Title)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(row))
		} else {
			b.WriteString(v.styles.Normal.Render(row))
		}
		b.WriteString("\n")
	}

	if len(v.sections) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(
			fmt.Sprintf("  %d-%d of %d",
				v.scrollOffset+1,
				minInt(v.scrollOffset+visible, len(v.sections)),
				len(v.sections))))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.adjustScroll()
}

// Selected returns the index of the highlighted row.
func (v *View) Selected() int {
	return v.selected
}

// Sections returns the loaded guide list.
func (v *View) Sections() []domain.GuideSection {
	return v.sections
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
