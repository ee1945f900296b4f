package domain

// GuideEntry is one row of the fixed guide catalog.
// Entries are assigned their IDs once, in catalog definition order,
// and are never renumbered or reused within a running process.
type GuideEntry struct {
	// ID is the stable numeric identifier, the sole external
	// reference to a guide.
	ID int

	// Title is the human-readable display title. Never empty.
	Title string

	// Locator identifies where the guide's text lives in the asset
	// source. Opaque to everything except the loader.
	Locator string
}

// GuideSection is the resolved, presentation-ready form of a guide.
// Sections are built fresh on every request and never mutated after
// construction.
type GuideSection struct {
	// ID matches the catalog entry's ID.
	ID int

	// Title matches the catalog entry's title.
	Title string

	// Content is nil when only metadata was requested. When set it
	// holds either the full guide text or a human-readable load
	// failure message.
	Content *string
}

// HasContent reports whether the section carries resolved content.
func (s GuideSection) HasContent() bool {
	return s.Content != nil
}

// Text returns the section content, or the empty string when only
// metadata was requested.
func (s GuideSection) Text() string {
	if s.Content == nil {
		return ""
	}
	return *s.Content
}
