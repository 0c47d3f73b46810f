package api

import (
	"net/http"
	"time"

	"github.com/lionetto/portfolio-server/internal/api/respond"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// CheckHealth handles GET /api/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "UP",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
