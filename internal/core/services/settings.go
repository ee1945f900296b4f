package services

import (
	"fmt"

	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/core/ports/driven"
	"github.com/mobilekata/droidguide/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyRenderMode = "reader.render"
	keyWrapWidth  = "reader.wrap_width"
	keyTheme      = "reader.theme"
)

// SettingsService manages persisted reader preferences.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current reader settings. Unset or unrecognised
// values fall back to defaults rather than erroring.
func (s *SettingsService) Get() (domain.ReaderSettings, error) {
	defaults := domain.DefaultReaderSettings()
	if s.configStore == nil {
		return defaults, nil
	}

	settings := domain.ReaderSettings{
		Render:    defaults.Render,
		WrapWidth: defaults.WrapWidth,
		Theme:     defaults.Theme,
	}

	if mode := domain.RenderMode(s.configStore.GetString(keyRenderMode)); mode.IsValid() {
		settings.Render = mode
	}
	if width := s.configStore.GetInt(keyWrapWidth); width > 0 {
		settings.WrapWidth = width
	}
	if theme := domain.Theme(s.configStore.GetString(keyTheme)); theme.IsValid() {
		settings.Theme = theme
	}

	return settings, nil
}

// Save persists reader settings. Invalid values are rejected before
// anything is written.
func (s *SettingsService) Save(settings domain.ReaderSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if !settings.Render.IsValid() {
		return fmt.Errorf("%w: render mode %q", domain.ErrInvalidInput, settings.Render)
	}
	if !settings.Theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, settings.Theme)
	}
	if settings.WrapWidth < 0 {
		return fmt.Errorf("%w: wrap width %d", domain.ErrInvalidInput, settings.WrapWidth)
	}

	if err := s.configStore.Set(keyRenderMode, settings.Render.String()); err != nil {
		return fmt.Errorf("save render mode: %w", err)
	}
	if err := s.configStore.Set(keyWrapWidth, settings.WrapWidth); err != nil {
		return fmt.Errorf("save wrap width: %w", err)
	}
	if err := s.configStore.Set(keyTheme, settings.Theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
