package api

import (
	"net/http"
)

// DefaultServiceName is reported by GET /health.
const DefaultServiceName = "demo1-backend"

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	service string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// HandleHealth handles GET /health. It has no failure modes.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Success: true, Status: "healthy", Service: h.service})
}
