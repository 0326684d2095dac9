package handler

import (
	"context"
	"net/http"

	"github.com/engreg/engreg/internal/api/response"
)

// StoreCounter reports how many engineers the store currently holds.
type StoreCounter interface {
	Count(ctx context.Context) int
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	counter StoreCounter
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(counter StoreCounter, version string) *HealthHandler {
	return &HealthHandler{
		counter: counter,
		version: version,
	}
}

type healthData struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Engineers int    `json:"engineers"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := healthData{
		Status:    "healthy",
		Version:   h.version,
		Engineers: h.counter.Count(r.Context()),
	}

	response.JSON(w, http.StatusOK, data)
}
