// Package guidecontent provides the guide content view component for the TUI.
package guidecontent

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/keymap"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/messages"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/styles"
	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/core/ports/driving"
	"github.com/mobilekata/droidguide/internal/render"
)

// View is the guide content view. It renders the loaded guide's
// Markdown through glamour inside a scrollable viewport, with a raw
// text toggle.
type View struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	guideService driving.GuideService
	settings     domain.ReaderSettings

	section  *domain.GuideSection
	viewport viewport.Model
	raw      bool
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
}

// NewView creates a new guide content view.
func NewView(s *styles.Styles, km *keymap.KeyMap, guideService driving.GuideService, settings domain.ReaderSettings) *View {
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:       s,
		keymap:       km,
		guideService: guideService,
		settings:     settings,
		viewport:     viewport.New(0, 0),
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetGuide starts loading the guide with the given id.
func (v *View) SetGuide(id int) tea.Cmd {
	v.section = nil
	v.err = nil
	v.loading = true
	v.raw = false
	return v.loadGuide(id)
}

// loadGuide returns a command that resolves the guide section.
// The read happens inside the command, off the render loop.
func (v *View) loadGuide(id int) tea.Cmd {
	return func() tea.Msg {
		if v.guideService == nil {
			return messages.GuideContentLoaded{ID: id, Err: fmt.Errorf("guide service not available")}
		}

		section, err := v.guideService.GetSection(context.Background(), id)
		return messages.GuideContentLoaded{
			ID:      id,
			Section: section,
			Err:     err,
		}
	}
}

// Update handles messages for the guide content view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.GuideContentLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.section = msg.Section
		v.refreshContent()
		v.viewport.GotoTop()
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewGuides}
		}
	case key.Matches(msg, v.keymap.Top):
		v.viewport.GotoTop()
		return v, nil
	case key.Matches(msg, v.keymap.Bottom):
		v.viewport.GotoBottom()
		return v, nil
	case key.Matches(msg, v.keymap.ToggleRaw):
		v.raw = !v.raw
		v.refreshContent()
		return v, nil
	}

	// Everything else (arrows, pgup/pgdn) scrolls the viewport.
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// refreshContent re-renders the section text into the viewport for
// the current width and raw/rendered state.
func (v *View) refreshContent() {
	if v.section == nil || !v.section.HasContent() {
		v.viewport.SetContent("")
		return
	}

	text := v.section.Text()
	if v.raw {
		v.viewport.SetContent(text)
		return
	}

	width := v.settings.WrapWidth
	if width <= 0 {
		width = v.contentWidth()
	}
	rendered, err := render.Markdown(text, render.Options{
		Theme:     v.settings.Theme,
		WrapWidth: width,
	})
	if err != nil {
		// Renderer failure falls back to raw text; the guide is
		// still readable.
		v.viewport.SetContent(text)
		return
	}
	v.viewport.SetContent(rendered)
}

// contentWidth returns the width available to rendered text.
func (v *View) contentWidth() int {
	w := v.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

// contentHeight returns the height available to the viewport.
func (v *View) contentHeight() int {
	// Reserve lines for title, separator, and scroll indicator
	reserved := 4
	h := v.height - reserved
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the guide content view.
func (v *View) View() string {
	var b strings.Builder

	title := "Guide"
	if v.section != nil {
		title = fmt.Sprintf("%d. %s", v.section.ID, v.section.Title)
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	sep := v.width - 4
	if sep < 10 {
		sep = 10
	}
	if sep > 60 {
		sep = 60
	}
	b.WriteString(strings.Repeat("─", sep))
	b.WriteString("\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading content..."))
		b.WriteString("\n")
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(" %3.0f%%", v.viewport.ScrollPercent()*100)))

	return b.String()
}

// SetDimensions sets the view dimensions and resizes the viewport.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.viewport.Width = width
	v.viewport.Height = v.contentHeight()
	v.refreshContent()
}

// Section returns the loaded guide section.
func (v *View) Section() *domain.GuideSection {
	return v.section
}

// Raw reports whether the raw Markdown toggle is active.
func (v *View) Raw() bool {
	return v.raw
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
