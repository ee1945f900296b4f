// Package tui provides an interactive terminal user interface for droidguide.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/mobilekata/droidguide/internal/core/domain"
	"github.com/mobilekata/droidguide/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Guide resolves guide sections and content.
	Guide driving.GuideService

	// Catalog provides the fixed guide table.
	Catalog driving.CatalogService

	// Settings manages reader preferences. Optional; defaults are
	// used when nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(guide driving.GuideService, catalog driving.CatalogService) *Ports {
	return &Ports{
		Guide:   guide,
		Catalog: catalog,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Guide == nil {
		return ErrMissingGuideService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}

// ReaderSettings returns the persisted reader settings, or defaults
// when no settings service is wired or it fails.
func (p *Ports) ReaderSettings() domain.ReaderSettings {
	if p.Settings == nil {
		return domain.DefaultReaderSettings()
	}
	settings, err := p.Settings.Get()
	if err != nil {
		return domain.DefaultReaderSettings()
	}
	return settings
}
