// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/keymap"
	"github.com/mobilekata/droidguide/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateBrowsing State = "browsing"
	StateReading  State = "reading"
	StateError    State = "error"
)

// Bar displays application state and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{
		styles: s,
		keymap: km,
		state:  StateBrowsing,
	}
}

// SetState updates the displayed state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// SetMessage sets a transient message shown in place of key hints.
func (b *Bar) SetMessage(msg string) {
	b.message = msg
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// View renders the status bar.
func (b *Bar) View() string {
	if b.message != "" {
		return b.styles.StatusBar.Render(b.message)
	}
	return b.styles.StatusBar.Render(b.hints())
}

// hints renders the keybinding hints for the current state.
func (b *Bar) hints() string {
	var bindings []key.Binding
	switch b.state {
	case StateReading:
		bindings = []key.Binding{
			b.keymap.Up, b.keymap.Down, b.keymap.Top, b.keymap.Bottom,
			b.keymap.ToggleRaw, b.keymap.Back, b.keymap.Quit,
		}
	case StateError:
		bindings = []key.Binding{b.keymap.Back, b.keymap.Quit}
	default:
		bindings = []key.Binding{
			b.keymap.Up, b.keymap.Down, b.keymap.Select, b.keymap.Quit,
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, bnd := range bindings {
		h := bnd.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
