package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kinetrack/kinetrack/pkg/api"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

// HandleHealth responds to GET /api/v1/health. It is unauthenticated so
// clients can use it as a connectivity probe.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"}); err != nil {
		h.logger.Error("Failed to encode health response", "error", err)
	}
}
