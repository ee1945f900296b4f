// Package render turns guide Markdown into styled terminal output.
// It wraps glamour behind a small API so presentation adapters never
// deal with renderer construction or style names directly.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/mobilekata/droidguide/internal/core/domain"
)

// Options controls how Markdown is rendered.
type Options struct {
	// Theme selects the glamour style.
	Theme domain.Theme

	// WrapWidth is the column to wrap at. Values below 20 are
	// clamped; very narrow wraps produce unreadable output.
	WrapWidth int
}

// minWrapWidth is the narrowest wrap the renderer accepts.
const minWrapWidth = 20

// defaultWrapWidth is used when the caller has no width preference
// and no terminal to measure.
const defaultWrapWidth = 80

// Markdown renders text as styled terminal output. On renderer
// failure the raw text is returned along with the error, so callers
// can always print something.
func Markdown(text string, opts Options) (string, error) {
	width := opts.WrapWidth
	if width <= 0 {
		width = defaultWrapWidth
	}
	if width < minWrapWidth {
		width = minWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleFor(opts.Theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text, fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(text)
	if err != nil {
		return text, fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// styleFor maps a domain theme to a glamour standard style name.
func styleFor(theme domain.Theme) string {
	switch theme {
	case domain.ThemeLight:
		return "light"
	case domain.ThemeNoTTY:
		return "notty"
	default:
		return "dark"
	}
}
