package site

import (
	"embed"
	"io/fs"
)

//go:embed static/**
var staticFS embed.FS

// Embedded returns the built-in frontend assets rooted at static/.
func Embedded() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Should never happen; static/ is compiled in.
		return staticFS
	}
	return sub
}
