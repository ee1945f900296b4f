// Package assets provides read-only asset source adapters for guide
// content. The embedded source serves the Markdown bundled into the
// binary; the directory source serves files from disk for previewing
// edited guides without a rebuild.
package assets

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/mobilekata/droidguide/internal/assets"
	"github.com/mobilekata/droidguide/internal/core/ports/driven"
)

// Ensure EmbeddedSource implements the interface.
var _ driven.AssetSource = (*EmbeddedSource)(nil)

// EmbeddedSource reads guide text from a compiled-in filesystem.
type EmbeddedSource struct {
	fsys fs.FS
}

// NewEmbeddedSource creates a source over the bundled guide files.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{fsys: assets.FS}
}

// NewFSSource creates a source over an arbitrary fs.FS. Used by tests
// to substitute fstest.MapFS fixtures.
func NewFSSource(fsys fs.FS) *EmbeddedSource {
	return &EmbeddedSource{fsys: fsys}
}

// Read returns the full text of the asset at locator. fs.ReadFile
// opens, reads and closes the underlying handle on every exit path,
// so no resource outlives the call.
func (s *EmbeddedSource) Read(ctx context.Context, locator string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(s.fsys, locator)
	if err != nil {
		return "", fmt.Errorf("read asset %s: %w", locator, err)
	}
	return string(data), nil
}
