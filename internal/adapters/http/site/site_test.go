package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, http.NoBody))
	return w
}

func TestSiteHandler(t *testing.T) {
	Convey("Given a site over an asset directory", t, func() {
		fsys := fstest.MapFS{
			"index.html":       {Data: []byte("<html>entry</html>")},
			"assets/app.js":    {Data: []byte("console.log('app')")},
			"assets/style.css": {Data: []byte("body{}")},
			"docs/guide.txt":   {Data: []byte("guide")},
		}
		h, err := New(fsys)
		So(err, ShouldBeNil)

		r := mux.NewRouter()
		h.Register(context.Background(), r)
		root := serve(r, http.MethodGet, "/")

		Convey("When requesting /", func() {
			Convey("Then it should serve the entry document", func() {
				So(root.Code, ShouldEqual, http.StatusOK)
				So(root.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(root.Body.String(), ShouldEqual, "<html>entry</html>")
			})
		})

		Convey("When requesting existing assets", func() {
			js := serve(r, http.MethodGet, "/assets/app.js")
			css := serve(r, http.MethodGet, "/assets/style.css")

			Convey("Then they should be served with content types by extension", func() {
				So(js.Code, ShouldEqual, http.StatusOK)
				So(js.Body.String(), ShouldEqual, "console.log('app')")
				So(js.Header().Get("Content-Type"), ShouldContainSubstring, "javascript")
				So(css.Header().Get("Content-Type"), ShouldContainSubstring, "text/css")
			})
		})

		Convey("When requesting /index.html directly", func() {
			w := serve(r, http.MethodGet, "/index.html")

			Convey("Then it should be served, not redirected", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, root.Body.String())
			})
		})

		Convey("When requesting undefined paths", func() {
			for _, p := range []string{"/genes/1", "/some/deep/route", "/missing.js", "/docs", "/docs/"} {
				w := serve(r, http.MethodGet, p)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, root.Body.String())
			}
		})

		Convey("When a path escapes the asset root", func() {
			w := serve(h, http.MethodGet, "/assets/../../etc/passwd")

			Convey("Then it should be confined and fall back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, root.Body.String())
			})
		})

		Convey("When issuing HEAD for an undefined path", func() {
			w := serve(r, http.MethodHead, "/client/route")

			Convey("Then it should succeed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When posting", func() {
			w := serve(r, http.MethodPost, "/")

			Convey("Then the route should not accept the method", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestSiteRoutePrecedence(t *testing.T) {
	Convey("Given a router with a route registered before the site", t, func() {
		h, err := New(Embedded())
		So(err, ShouldBeNil)

		r := mux.NewRouter()
		r.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("metrics"))
		})
		h.Register(context.Background(), r)

		Convey("Then the earlier route should win", func() {
			So(serve(r, http.MethodGet, "/metrics").Body.String(), ShouldEqual, "metrics")
		})
	})
}

func TestEmbeddedAssets(t *testing.T) {
	Convey("Given the embedded assets", t, func() {
		h, err := Open("")
		So(err, ShouldBeNil)

		Convey("Then the entry document and its scripts should be present", func() {
			index := serve(h, http.MethodGet, "/")
			So(index.Code, ShouldEqual, http.StatusOK)
			So(index.Body.String(), ShouldContainSubstring, "/assets/app.js")

			js := serve(h, http.MethodGet, "/assets/app.js")
			So(js.Code, ShouldEqual, http.StatusOK)
			So(js.Body.String(), ShouldContainSubstring, "/genes")

			So(serve(h, http.MethodGet, "/genes/3").Body.String(), ShouldEqual, index.Body.String())
		})
	})
}

func TestOpenDirectory(t *testing.T) {
	Convey("Given an asset directory on disk", t, func() {
		dir := t.TempDir()

		Convey("When it contains index.html", func() {
			So(os.WriteFile(filepath.Join(dir, "index.html"), []byte("disk entry"), 0o600), ShouldBeNil)
			h, err := Open(dir)

			Convey("Then it should serve it as the fallback", func() {
				So(err, ShouldBeNil)
				So(serve(h, http.MethodGet, "/anything").Body.String(), ShouldEqual, "disk entry")
			})
		})

		Convey("When it has no index.html", func() {
			_, err := Open(dir)

			Convey("Then opening should fail", func() {
				So(errors.Is(err, ErrMissingIndex), ShouldBeTrue)
			})
		})

		Convey("When the directory does not exist", func() {
			_, err := Open(filepath.Join(dir, "missing"))

			Convey("Then opening should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the path is a file", func() {
			file := filepath.Join(dir, "file.txt")
			So(os.WriteFile(file, []byte("x"), 0o600), ShouldBeNil)
			_, err := Open(file)

			Convey("Then opening should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestSiteErrors(t *testing.T) {
	Convey("Given site error constants", t, func() {
		So(ErrMissingIndex.Error(), ShouldEqual, "asset directory has no index.html")
		So(ErrServe, ShouldNotEqual, ErrMissingIndex)
	})
}

func TestSiteHandlerWithNilRouter(t *testing.T) {
	Convey("Given a nil router", t, func() {
		h, err := New(Embedded())
		So(err, ShouldBeNil)

		Convey("Then registering should panic", func() {
			So(func() { h.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
