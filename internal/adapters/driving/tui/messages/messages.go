// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/mobilekata/droidguide/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewGuides is the guide list.
	ViewGuides ViewType = iota
	// ViewGuideContent shows a single guide's content.
	ViewGuideContent
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewGuides:
		return "guides"
	case ViewGuideContent:
		return "guide_content"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// GuidesLoaded carries the guide list from the service.
type GuidesLoaded struct {
	Sections []domain.GuideSection
}

// GuideSelected signals a guide was chosen from the list.
type GuideSelected struct {
	ID int
}

// GuideContentLoaded carries a resolved guide section back to the
// model. Err is set only for structural absence (unknown id); a
// failed asset read arrives as the section's content, like any other
// text.
type GuideContentLoaded struct {
	ID      int
	Section *domain.GuideSection
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
