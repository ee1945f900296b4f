package assets

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilekata/droidguide/internal/core/services"
)

func TestEmbeddedSource_ReadsEveryBundledLocator(t *testing.T) {
	source := NewEmbeddedSource()
	ctx := context.Background()

	for _, entry := range services.NewBundledCatalog().ListEntries() {
		text, err := source.Read(ctx, entry.Locator)
		require.NoError(t, err, "locator %s", entry.Locator)
		assert.NotEmpty(t, text)
		assert.True(t, strings.HasPrefix(text, "# "), "guides start with a top-level heading")
	}
}

func TestEmbeddedSource_UnknownLocator(t *testing.T) {
	source := NewEmbeddedSource()

	_, err := source.Read(context.Background(), "guides/nope.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guides/nope.md")
}

func TestFSSource_ReadsVerbatim(t *testing.T) {
	fsys := fstest.MapFS{
		"guides/sample.md": &fstest.MapFile{Data: []byte("# Sample\n\nBody.\n")},
	}
	source := NewFSSource(fsys)

	text, err := source.Read(context.Background(), "guides/sample.md")
	require.NoError(t, err)
	assert.Equal(t, "# Sample\n\nBody.\n", text)
}

func TestFSSource_CancelledContext(t *testing.T) {
	fsys := fstest.MapFS{
		"guides/sample.md": &fstest.MapFile{Data: []byte("text")},
	}
	source := NewFSSource(fsys)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Read(ctx, "guides/sample.md")
	assert.ErrorIs(t, err, context.Canceled)
}
