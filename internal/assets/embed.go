// Package assets embeds the bundled guide documents in the binary.
package assets

import "embed"

// FS contains all guide Markdown files embedded at compile time.
// Locators in the catalog are paths into this filesystem.
//
//go:embed guides/*.md
var FS embed.FS
