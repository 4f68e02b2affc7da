// Package swagger serves OpenAPI documents and a ReDoc viewer for them.
package swagger

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
)

// Error constants.
var (
	ErrServe = errors.New("swagger serve failed")
)

// Route paths.
const (
	SpecPath = "/openapi.yaml"
	DocsPath = "/api-docs"
)

// RedocScript is the ReDoc bundle loaded by the docs page.
const RedocScript = "https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"

// Document is one OpenAPI specification and the title shown for it.
type Document struct {
	Title string
	Spec  []byte
}

// Register attaches the docs routes for doc to r.
// Routes:
//
//	GET /api-docs      -> ReDoc HTML
//	GET /openapi.yaml  -> the OpenAPI spec
func Register(_ context.Context, r *mux.Router, doc Document) {
	if r == nil {
		panic("router is nil")
	}

	r.HandleFunc(DocsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTmpl.Execute(w, indexData{Title: doc.Title, Spec: SpecPath, Script: RedocScript}); err != nil {
			http.Error(w, ErrServe.Error(), http.StatusInternalServerError)
		}
	}).Methods(http.MethodGet, http.MethodHead)

	r.HandleFunc(SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(doc.Spec)
	}).Methods(http.MethodGet, http.MethodHead)
}

type indexData struct {
	Title  string
	Spec   string
	Script string
}

var indexTmpl = template.Must(template.New("redoc").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}} - ReDoc</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="{{.Script}}"></script>
    <script>Redoc.init({{.Spec}}, { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`))
