package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMode_IsValid(t *testing.T) {
	assert.True(t, RenderModeAuto.IsValid())
	assert.True(t, RenderModeAlways.IsValid())
	assert.True(t, RenderModeNever.IsValid())
	assert.False(t, RenderMode("fancy").IsValid())
	assert.False(t, RenderMode("").IsValid())
}

func TestTheme_IsValid(t *testing.T) {
	assert.True(t, ThemeDark.IsValid())
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeNoTTY.IsValid())
	assert.False(t, Theme("solarized").IsValid())
}

func TestDefaultReaderSettings(t *testing.T) {
	settings := DefaultReaderSettings()

	assert.Equal(t, RenderModeAuto, settings.Render)
	assert.Equal(t, 0, settings.WrapWidth)
	assert.Equal(t, ThemeDark, settings.Theme)
	assert.True(t, settings.Render.IsValid())
	assert.True(t, settings.Theme.IsValid())
}
