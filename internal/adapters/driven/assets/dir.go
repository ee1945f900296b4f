package assets

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mobilekata/droidguide/internal/core/ports/driven"
)

// Ensure DirSource implements the interface.
var _ driven.AssetSource = (*DirSource)(nil)

// DirSource reads guide text from a directory on disk. Locators are
// resolved relative to the root, so a directory laid out like the
// bundle (guides/*.md) overrides it file for file.
type DirSource struct {
	root string
	fsys fs.FS
}

// NewDirSource creates a source rooted at dir. The directory must
// exist; individual missing files are reported per read, not here.
func NewDirSource(dir string) (*DirSource, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve guides dir: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("guides dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("guides dir %s is not a directory", abs)
	}

	return &DirSource{
		root: abs,
		fsys: os.DirFS(abs),
	}, nil
}

// Root returns the absolute directory this source reads from.
func (s *DirSource) Root() string {
	return s.root
}

// Read returns the full text of the file at locator under the root.
func (s *DirSource) Read(ctx context.Context, locator string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(s.fsys, locator)
	if err != nil {
		return "", fmt.Errorf("read asset %s: %w", locator, err)
	}
	return string(data), nil
}
