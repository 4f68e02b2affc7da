package app

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/biodemo/biodemo/internal/adapters/http/api"
	"github.com/biodemo/biodemo/internal/adapters/http/middleware"
	"github.com/biodemo/biodemo/internal/adapters/http/site"
	"github.com/biodemo/biodemo/internal/adapters/http/survival"
	"github.com/biodemo/biodemo/internal/adapters/http/swagger"
	"github.com/biodemo/biodemo/internal/adapters/repository"
	"github.com/biodemo/biodemo/internal/config"
	"github.com/biodemo/biodemo/pkg/logger"
	"github.com/biodemo/biodemo/pkg/metrics"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Service names, used as logger names and as the service metrics label.
const (
	GeneAPIName  = "gene-api"
	SurvivalName = "survival-api"
	FrontendName = "frontend"
)

const metricsPath = "/metrics"

// Service is an assembled HTTP service ready to be served.
type Service struct {
	Name    string
	Addr    string
	Handler http.Handler
	// Routes lists "METHODS /template" for every registered route.
	Routes []string
}

// BuildFunc assembles a Service from configuration.
type BuildFunc func(ctx context.Context, cfg *config.Config, log logger.Logger) (*Service, error)

// Server returns a Server for s listening on s.Addr.
func (s *Service) Server(opts ...Option) *Server {
	return New(s.Name, s.Handler, append([]Option{WithAddr(s.Addr)}, opts...)...)
}

// NewGeneAPI assembles the gene API: health, gene list and gene detail,
// with permissive CORS for the frontend.
func NewGeneAPI(ctx context.Context, cfg *config.Config, log logger.Logger) (*Service, error) {
	log = named(log, GeneAPIName)
	r := mux.NewRouter()
	mws := instrument(r, GeneAPIName, log)

	registerMetrics(r, cfg)
	swagger.Register(ctx, r, swagger.GeneAPI)
	api.NewServer(repository.NewGeneCatalog(), api.WithLogger(log)).Register(ctx, r)
	finish(r, mws)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	// A trailing slash and the case of the fixed segments are ignored.
	lenient := middleware.LenientPaths(
		"health",
		"genes",
		strings.TrimPrefix(metricsPath, "/"),
		strings.TrimPrefix(swagger.SpecPath, "/"),
		strings.TrimPrefix(swagger.DocsPath, "/"),
	)

	return &Service{Name: GeneAPIName, Addr: cfg.GeneAddr, Handler: c.Handler(lenient(r)), Routes: routes(r)}, nil
}

// NewSurvival assembles the survival-analysis service.
func NewSurvival(ctx context.Context, cfg *config.Config, log logger.Logger) (*Service, error) {
	log = named(log, SurvivalName)
	r := mux.NewRouter()
	mws := instrument(r, SurvivalName, log)

	registerMetrics(r, cfg)
	swagger.Register(ctx, r, swagger.SurvivalAPI)
	survival.NewServer(repository.NewPatientCatalog(), log).Register(ctx, r)
	finish(r, mws)

	return &Service{Name: SurvivalName, Addr: cfg.SurvivalAddr, Handler: r, Routes: routes(r)}, nil
}

// NewFrontend assembles the static frontend over cfg.AssetsDir, or over the
// built-in assets when it is empty.
func NewFrontend(ctx context.Context, cfg *config.Config, log logger.Logger) (*Service, error) {
	log = named(log, FrontendName)
	h, err := site.Open(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBuild, FrontendName, err)
	}

	r := mux.NewRouter()
	mws := instrument(r, FrontendName, log)

	// The site catch-all must come last.
	registerMetrics(r, cfg)
	h.Register(ctx, r)
	// Only GET and HEAD are served; anything else is a plain 404.
	r.MethodNotAllowedHandler = http.NotFoundHandler()
	finish(r, mws)

	return &Service{Name: FrontendName, Addr: cfg.FrontendAddr, Handler: r, Routes: routes(r)}, nil
}

func named(log logger.Logger, name string) logger.Logger {
	if log == nil {
		return logger.Nop()
	}
	return log.Named(name)
}

// instrument installs the shared middleware on r and returns it so that
// finish can apply the same chain to the not-found and method handlers,
// which gorilla/mux does not pass through r.Use.
func instrument(r *mux.Router, service string, log logger.Logger) []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.AccessLog(log),
		middleware.Metrics(service),
	}
	for _, mw := range mws {
		r.Use(mw)
	}
	return mws
}

func finish(r *mux.Router, mws []func(http.Handler) http.Handler) {
	if r.NotFoundHandler == nil {
		r.NotFoundHandler = http.NotFoundHandler()
	}
	if r.MethodNotAllowedHandler == nil {
		r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		})
	}
	r.NotFoundHandler = middleware.Chain(r.NotFoundHandler, mws...)
	r.MethodNotAllowedHandler = middleware.Chain(r.MethodNotAllowedHandler, mws...)
}

func registerMetrics(r *mux.Router, cfg *config.Config) {
	if !cfg.MetricsEnabled {
		return
	}
	r.Handle(metricsPath, metrics.Handler()).Methods(http.MethodGet)
}

func routes(r *mux.Router) []string {
	var out []string
	_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"ANY"}
		}
		methods = slices.Clone(methods)
		slices.Sort(methods)
		out = append(out, strings.Join(methods, ",")+" "+tpl)
		return nil
	})
	return out
}
