// Package web embeds the page shell and the bundled gallery photos.
package web

import "embed"

// FS is rooted at this directory: index.html and img/...
//
//go:embed index.html img
var FS embed.FS
