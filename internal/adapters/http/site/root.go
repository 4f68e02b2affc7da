// Package site serves the static frontend with single-page-app fallback.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/biodemo/biodemo/pkg/metrics"
	"github.com/gorilla/mux"
)

// IndexDocument is served for "/" and for every path that is not an asset.
const IndexDocument = "index.html"

// Error constants
var (
	ErrMissingIndex = errors.New("asset directory has no " + IndexDocument)
	ErrServe        = errors.New("static asset serve failed")
)

// Handler serves files from an fs.FS and falls back to IndexDocument.
type Handler struct {
	fsys fs.FS
}

// New returns a Handler over fsys. It fails if fsys has no regular
// IndexDocument at its root.
func New(fsys fs.FS) (*Handler, error) {
	fi, err := fs.Stat(fsys, IndexDocument)
	if err != nil || fi.IsDir() {
		return nil, ErrMissingIndex
	}
	return &Handler{fsys: fsys}, nil
}

// Open returns a Handler over dir, or over the embedded assets when dir is empty.
func Open(dir string) (*Handler, error) {
	if dir == "" {
		return New(Embedded())
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets dir %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("assets dir %s: not a directory", dir)
	}
	h, err := New(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("assets dir %s: %w", dir, err)
	}
	return h, nil
}

// Register attaches the catch-all frontend route to r. Routes registered
// on r before this call keep precedence.
func (h *Handler) Register(_ context.Context, r *mux.Router) {
	if r == nil {
		panic("router is nil")
	}
	r.PathPrefix("/").Handler(h).Methods(http.MethodGet, http.MethodHead)
}

// ServeHTTP serves the asset named by the URL path, or IndexDocument when
// no regular file matches.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" && fs.ValidPath(name) {
		if fi, err := fs.Stat(h.fsys, name); err == nil && fi.Mode().IsRegular() {
			if err := h.serve(w, r, name); err == nil {
				return
			}
		}
	}
	if name != "" && name != IndexDocument {
		metrics.RecordFrontendFallback()
	}
	if err := h.serve(w, r, IndexDocument); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// serve writes the named file with http.ServeContent so that conditional
// and range requests work and index.html is never redirected.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, name string) error {
	f, err := h.fsys.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrServe, name, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrServe, name, err)
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		b, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrServe, name, err)
		}
		content = bytes.NewReader(b)
	}
	http.ServeContent(w, r, name, fi.ModTime(), content)
	return nil
}
