// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the guide list.
	Back key.Binding

	// Up navigates up in the list or scrolls content up.
	Up key.Binding

	// Down navigates down in the list or scrolls content down.
	Down key.Binding

	// Select opens the highlighted guide.
	Select key.Binding

	// Top jumps to the start of the content.
	Top key.Binding

	// Bottom jumps to the end of the content.
	Bottom key.Binding

	// ToggleRaw switches between rendered and raw Markdown.
	ToggleRaw key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		ToggleRaw: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "raw/rendered"),
		),
	}
}
