package survival

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// pageFS exposes a sub-filesystem rooted at static/.
var pageFS fs.FS = func() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}()
