// Package survival serves the survival-analysis page and its results API.
package survival

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/biodemo/biodemo/internal/domain/model"
	"github.com/biodemo/biodemo/pkg/logger"
	"github.com/biodemo/biodemo/pkg/metrics"
	"github.com/gorilla/mux"
)

// pageName is the HTML document served at GET /.
const pageName = "survival.html"

// Dependencies required by the survival handlers.
type Dependencies interface {
	Study(ctx context.Context) (model.Study, error)
}

// Server wires HTTP routes for the survival-analysis service.
type Server struct {
	deps   Dependencies
	logger logger.Logger
}

// NewServer creates a survival server. A nil logger discards output.
func NewServer(deps Dependencies, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{deps: deps, logger: log}
}

// Register attaches the page and results routes to r.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	if r == nil {
		panic("router is nil")
	}
	r.HandleFunc("/", s.HandlePage).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/api/results", s.HandleResults).Methods(http.MethodGet, http.MethodHead)
}

// HandlePage handles GET / with the embedded HTML document.
func (s *Server) HandlePage(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, pageFS, pageName)
}

// HandleResults handles GET /api/results.
func (s *Server) HandleResults(w http.ResponseWriter, r *http.Request) {
	study, err := s.deps.Study(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "read survival study failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	metrics.RecordRecordsServed(metrics.DatasetPatients, len(study.Results))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(study)
}
