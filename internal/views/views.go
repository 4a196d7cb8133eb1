// Package views embeds the HTML templates.
package views

import "embed"

// FS holds the page templates, named by file without the .html extension.
//
//go:embed *.html
var FS embed.FS
