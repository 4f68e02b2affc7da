package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/biodemo/biodemo/internal/adapters/http/middleware"
	"github.com/biodemo/biodemo/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func do(h http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGeneAPIService(t *testing.T) {
	Convey("Given the assembled gene API", t, func() {
		ctx := context.Background()
		cfg := config.New()
		svc, err := NewGeneAPI(ctx, cfg, nil)
		So(err, ShouldBeNil)
		So(svc.Name, ShouldEqual, GeneAPIName)
		So(svc.Addr, ShouldEqual, ":28881")

		Convey("Then its routes should be listed", func() {
			So(svc.Routes, ShouldContain, "GET,HEAD /health")
			So(svc.Routes, ShouldContain, "GET,HEAD /genes")
			So(svc.Routes, ShouldContain, "GET,HEAD /genes/{id}")
			So(svc.Routes, ShouldContain, "GET /metrics")
			So(svc.Routes, ShouldContain, "GET,HEAD /openapi.yaml")
		})

		Convey("When calling /health", func() {
			w := do(svc.Handler, http.MethodGet, "/health", nil)

			Convey("Then it should answer with a request id", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get(middleware.RequestIDHeader), ShouldNotBeEmpty)
			})
		})

		Convey("When paths carry a trailing slash or different case", func() {
			detail := do(svc.Handler, http.MethodGet, "/genes/1/", nil)
			list := do(svc.Handler, http.MethodGet, "/genes/", nil)
			health := do(svc.Handler, http.MethodGet, "/health/", nil)
			upper := do(svc.Handler, http.MethodGet, "/GENES", nil)

			Convey("Then they should reach the same handlers", func() {
				So(detail.Code, ShouldEqual, http.StatusOK)
				So(detail.Body.String(), ShouldContainSubstring, `"gene":"TP53"`)
				So(list.Code, ShouldEqual, http.StatusOK)
				So(list.Body.String(), ShouldEqual, do(svc.Handler, http.MethodGet, "/genes", nil).Body.String())
				So(health.Code, ShouldEqual, http.StatusOK)
				So(upper.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When a hexadecimal id is requested", func() {
			w := do(svc.Handler, http.MethodGet, "/genes/0x5", nil)

			Convey("Then it should resolve like its decimal value", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"gene":"PTEN"`)
			})
		})

		Convey("When calling an unknown route", func() {
			w := do(svc.Handler, http.MethodGet, "/nope", map[string]string{middleware.RequestIDHeader: "req-1"})

			Convey("Then the JSON 404 should still pass through the middleware", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Header().Get(middleware.RequestIDHeader), ShouldEqual, "req-1")
				var body map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["success"], ShouldEqual, false)
			})
		})

		Convey("When a browser on the frontend origin calls /genes", func() {
			w := do(svc.Handler, http.MethodGet, "/genes", map[string]string{"Origin": "http://localhost:28883"})

			Convey("Then CORS should allow it", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
			})
		})

		Convey("When a browser sends a preflight", func() {
			w := do(svc.Handler, http.MethodOptions, "/genes/1", map[string]string{
				"Origin":                        "http://localhost:28883",
				"Access-Control-Request-Method": http.MethodGet,
			})

			Convey("Then it should be answered by the CORS layer", func() {
				So(w.Code, ShouldBeIn, []int{http.StatusOK, http.StatusNoContent})
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
			})
		})

		Convey("When scraping /metrics after a gene lookup", func() {
			So(do(svc.Handler, http.MethodGet, "/genes/3", nil).Code, ShouldEqual, http.StatusOK)
			w := do(svc.Handler, http.MethodGet, "/metrics", nil)

			Convey("Then requests should be labelled by route template", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "biodemo_http_requests_total")
				So(w.Body.String(), ShouldContainSubstring, `route="/genes/{id}"`)
				So(w.Body.String(), ShouldContainSubstring, `service="gene-api"`)
			})
		})
	})

	Convey("Given the gene API with metrics disabled", t, func() {
		cfg := config.New()
		cfg.MetricsEnabled = false
		svc, err := NewGeneAPI(context.Background(), cfg, nil)
		So(err, ShouldBeNil)

		Convey("Then /metrics should not be served", func() {
			So(do(svc.Handler, http.MethodGet, "/metrics", nil).Code, ShouldEqual, http.StatusNotFound)
			So(svc.Routes, ShouldNotContain, "GET /metrics")
		})
	})

	Convey("Given a restricted CORS origin list", t, func() {
		cfg := config.New()
		cfg.CORSOrigins = []string{"http://allowed.example"}
		svc, err := NewGeneAPI(context.Background(), cfg, nil)
		So(err, ShouldBeNil)

		Convey("Then other origins should not be allowed", func() {
			w := do(svc.Handler, http.MethodGet, "/genes", map[string]string{"Origin": "http://other.example"})
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)

			w = do(svc.Handler, http.MethodGet, "/genes", map[string]string{"Origin": "http://allowed.example"})
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "http://allowed.example")
		})
	})
}

func TestSurvivalService(t *testing.T) {
	Convey("Given the assembled survival service", t, func() {
		svc, err := NewSurvival(context.Background(), config.New(), nil)
		So(err, ShouldBeNil)
		So(svc.Addr, ShouldEqual, ":28882")

		Convey("Then the page and results should be served", func() {
			page := do(svc.Handler, http.MethodGet, "/", nil)
			So(page.Code, ShouldEqual, http.StatusOK)
			So(page.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")

			results := do(svc.Handler, http.MethodGet, "/api/results", nil)
			So(results.Code, ShouldEqual, http.StatusOK)
			So(results.Body.String(), ShouldContainSubstring, `"app":"Demo 2 - Survival Analysis"`)
		})

		Convey("Then unknown routes should 404 through the middleware", func() {
			w := do(svc.Handler, http.MethodGet, "/nope", nil)
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(w.Header().Get(middleware.RequestIDHeader), ShouldNotBeEmpty)
		})

		Convey("Then wrong methods should 405 through the middleware", func() {
			w := do(svc.Handler, http.MethodPost, "/api/results", nil)
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(w.Header().Get(middleware.RequestIDHeader), ShouldNotBeEmpty)
		})
	})
}

func TestFrontendService(t *testing.T) {
	Convey("Given the assembled frontend over built-in assets", t, func() {
		svc, err := NewFrontend(context.Background(), config.New(), nil)
		So(err, ShouldBeNil)
		So(svc.Addr, ShouldEqual, ":28883")

		Convey("Then undefined paths should serve the same document as /", func() {
			root := do(svc.Handler, http.MethodGet, "/", nil)
			deep := do(svc.Handler, http.MethodGet, "/some/undefined/path", nil)
			So(root.Code, ShouldEqual, http.StatusOK)
			So(deep.Code, ShouldEqual, http.StatusOK)
			So(deep.Body.String(), ShouldEqual, root.Body.String())
		})

		Convey("Then methods other than GET and HEAD should get 404", func() {
			for _, p := range []string{"/nope", "/"} {
				w := do(svc.Handler, http.MethodPost, p, nil)
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Header().Get(middleware.RequestIDHeader), ShouldNotBeEmpty)
			}
		})

		Convey("Then /metrics should take precedence over the fallback", func() {
			w := do(svc.Handler, http.MethodGet, "/metrics", nil)
			So(w.Body.String(), ShouldContainSubstring, "biodemo_")
		})
	})

	Convey("Given a missing assets directory", t, func() {
		cfg := config.New()
		cfg.AssetsDir = filepath.Join(t.TempDir(), "missing")

		Convey("Then building should fail", func() {
			_, err := NewFrontend(context.Background(), cfg, nil)
			So(errors.Is(err, ErrBuild), ShouldBeTrue)
		})
	})
}

func TestServiceServer(t *testing.T) {
	Convey("Given the gene API served on a real listener", t, func() {
		svc, err := NewGeneAPI(context.Background(), config.New(), nil)
		So(err, ShouldBeNil)

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- svc.Server(WithMetricsInterval(0)).Serve(ctx, ln) }()

		Convey("Then GET /genes/abc should return 404 over the wire", func() {
			resp, err := http.Get("http://" + ln.Addr().String() + "/genes/abc")
			So(err, ShouldBeNil)
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			So(string(body), ShouldContainSubstring, "Gene not found")

			cancel()
			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(5 * time.Second):
				So("server did not stop", ShouldBeEmpty)
			}
		})

		Reset(func() {
			cancel()
		})
	})
}
