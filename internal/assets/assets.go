// Package assets embeds the stylesheet and the page script.
package assets

import (
	"embed"

	"github.com/benbjohnson/hashfs"
)

//go:embed css js
var FS embed.FS

// HashFS serves the files under content hashed names with long lived caching.
var HashFS = hashfs.NewFS(FS)
