// Package api declares the gene API HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/biodemo/biodemo/internal/domain/model"
	"github.com/biodemo/biodemo/pkg/logger"
	"github.com/gorilla/mux"
)

// Dependencies required by HTTP handlers. Using an interface keeps the
// handler layer loosely coupled to the catalog implementation.
type Dependencies interface {
	List(ctx context.Context) ([]model.Gene, error)
	Get(ctx context.Context, id int) (model.Gene, error)
}

// Server wires HTTP routes for the gene API.
type Server struct {
	healthHandler *HealthHandler
	genesHandler  *GenesHandler
	logger        logger.Logger
	serviceName   string
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithServiceName overrides the identifier reported by GET /health.
func WithServiceName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.serviceName = name
		}
	}
}

// WithLogger sets the logger used for handler failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		logger:      logger.Nop(),
		serviceName: DefaultServiceName,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler(s.serviceName)
	s.genesHandler = NewGenesHandler(deps, s.logger)
	return s
}

// Register attaches all gene API routes to r, and installs JSON not-found
// and method-not-allowed handlers.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	if r == nil {
		panic("router is nil")
	}
	r.HandleFunc("/health", s.healthHandler.HandleHealth).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/genes", s.genesHandler.HandleList).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/genes/{id}", s.genesHandler.HandleGet).Methods(http.MethodGet, http.MethodHead)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgRouteNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgNotAllowed)
	})
}

// envelope is the {success, data|error} wrapper used by every gene API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}
