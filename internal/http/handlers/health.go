package handlers

import (
	"net/http"

	"github.com/kaiwenlow/simple-auth-be/internal/config"
	"github.com/kaiwenlow/simple-auth-be/internal/http/respond"
)

// HealthHandler reports liveness and the running environment.
type HealthHandler struct {
	environment string
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(cfg config.Config) *HealthHandler {
	return &HealthHandler{environment: cfg.Environment}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": h.environment,
	})
}
