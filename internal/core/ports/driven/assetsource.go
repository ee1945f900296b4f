package driven

import "context"

// AssetSource is a read-only key-value store from locator strings to
// UTF-8 text blobs. The loader's only contract with it is: open by
// locator, read the full text, and report any failure as an error
// value. No write access and no listing are required at runtime --
// the catalog is fixed, not discovered.
type AssetSource interface {
	// Read returns the full text of the asset identified by locator.
	// The returned text is verbatim; implementations perform no
	// transformation beyond treating the asset as UTF-8.
	Read(ctx context.Context, locator string) (string, error)
}
