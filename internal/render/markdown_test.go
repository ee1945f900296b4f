package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilekata/droidguide/internal/core/domain"
)

const sampleMarkdown = "# Heading\n\nSome body text with **bold** words.\n"

func TestMarkdown_RendersText(t *testing.T) {
	out, err := Markdown(sampleMarkdown, Options{Theme: domain.ThemeNoTTY, WrapWidth: 80})

	require.NoError(t, err)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "body text")
}

func TestMarkdown_DefaultsWidth(t *testing.T) {
	out, err := Markdown(sampleMarkdown, Options{Theme: domain.ThemeNoTTY})

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestMarkdown_ClampsNarrowWidth(t *testing.T) {
	long := "# Title\n\n" + strings.Repeat("word ", 50) + "\n"

	out, err := Markdown(long, Options{Theme: domain.ThemeNoTTY, WrapWidth: 3})

	require.NoError(t, err)
	// Clamped to the minimum, not rendered one word per character.
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), minWrapWidth+10, "line %q", line)
	}
}

func TestMarkdown_ThemeSelection(t *testing.T) {
	for _, theme := range []domain.Theme{domain.ThemeDark, domain.ThemeLight, domain.ThemeNoTTY} {
		out, err := Markdown(sampleMarkdown, Options{Theme: theme, WrapWidth: 80})
		require.NoError(t, err, "theme %s", theme)
		assert.Contains(t, out, "Heading")
	}
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, "dark", styleFor(domain.ThemeDark))
	assert.Equal(t, "light", styleFor(domain.ThemeLight))
	assert.Equal(t, "notty", styleFor(domain.ThemeNoTTY))
	assert.Equal(t, "dark", styleFor(domain.Theme("unknown")))
}
