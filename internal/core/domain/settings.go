package domain

// RenderMode controls when guide Markdown is rendered with terminal
// styling rather than printed raw.
type RenderMode string

// Available render modes.
const (
	// RenderModeAuto styles output only when stdout is a terminal.
	RenderModeAuto RenderMode = "auto"

	// RenderModeAlways styles output unconditionally.
	RenderModeAlways RenderMode = "always"

	// RenderModeNever prints raw Markdown unconditionally.
	RenderModeNever RenderMode = "never"
)

// IsValid returns true if the render mode is recognised.
func (m RenderMode) IsValid() bool {
	switch m {
	case RenderModeAuto, RenderModeAlways, RenderModeNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m RenderMode) String() string {
	return string(m)
}

// Theme identifies the colour style used for rendered Markdown.
type Theme string

// Available themes.
const (
	// ThemeDark suits dark terminal backgrounds.
	ThemeDark Theme = "dark"

	// ThemeLight suits light terminal backgrounds.
	ThemeLight Theme = "light"

	// ThemeNoTTY renders plain text with layout only, no colour.
	ThemeNoTTY Theme = "notty"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeNoTTY:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// ReaderSettings holds persisted reader preferences. The core loader
// never consults them; they only shape presentation.
type ReaderSettings struct {
	// Render controls when Markdown styling is applied.
	Render RenderMode

	// WrapWidth is the column the renderer wraps at. Zero means use
	// the terminal width.
	WrapWidth int

	// Theme selects the rendering colour style.
	Theme Theme
}

// DefaultReaderSettings returns the settings used when nothing has
// been configured.
func DefaultReaderSettings() ReaderSettings {
	return ReaderSettings{
		Render:    RenderModeAuto,
		WrapWidth: 0,
		Theme:     ThemeDark,
	}
}
