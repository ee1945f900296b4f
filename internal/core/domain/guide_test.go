package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuideSection_HasContent(t *testing.T) {
	metaOnly := GuideSection{ID: 1, Title: "Guide"}
	assert.False(t, metaOnly.HasContent())

	text := "# Heading"
	loaded := GuideSection{ID: 1, Title: "Guide", Content: &text}
	assert.True(t, loaded.HasContent())
}

func TestGuideSection_Text(t *testing.T) {
	metaOnly := GuideSection{ID: 1, Title: "Guide"}
	assert.Equal(t, "", metaOnly.Text())

	text := "# Heading\n\nBody."
	loaded := GuideSection{ID: 1, Title: "Guide", Content: &text}
	assert.Equal(t, "# Heading\n\nBody.", loaded.Text())
}

func TestGuideSection_EmptyContentIsStillContent(t *testing.T) {
	// An empty string is loaded content, distinct from nil.
	empty := ""
	section := GuideSection{ID: 2, Title: "Guide", Content: &empty}
	assert.True(t, section.HasContent())
	assert.Equal(t, "", section.Text())
}
