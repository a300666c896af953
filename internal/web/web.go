// Package web embeds the browser front-end served by the HTTP service.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Index returns the page served at "/".
func Index() []byte {
	b, err := static.ReadFile("static/index.html")
	if err != nil {
		panic(err) // embedded at build time
	}
	return b
}

// Assets exposes the static directory (scripts, styles) rooted at its contents.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
