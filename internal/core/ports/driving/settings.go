package driving

import "github.com/mobilekata/droidguide/internal/core/domain"

// SettingsService manages persisted reader preferences.
type SettingsService interface {
	// Get retrieves current reader settings, falling back to
	// defaults for anything unset or invalid.
	Get() (domain.ReaderSettings, error)

	// Save persists reader settings.
	Save(settings domain.ReaderSettings) error
}
