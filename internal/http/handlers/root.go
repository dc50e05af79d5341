package handlers

import (
	"fmt"
	"net/http"

	"github.com/kaiwenlow/simple-auth-be/internal/config"
	"github.com/kaiwenlow/simple-auth-be/internal/http/respond"
)

// RootHandler serves the API info endpoint.
type RootHandler struct {
	cfg config.Config
}

// NewRootHandler creates the root endpoint handler.
func NewRootHandler(cfg config.Config) *RootHandler {
	return &RootHandler{cfg: cfg}
}

// Register wires the handler into a ServeMux.
func (h *RootHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", h.handle)
}

func (h *RootHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Welcome to %s", h.cfg.AppName),
		"version": h.cfg.AppVersion,
		"endpoints": map[string]string{
			"register": "POST /register",
			"login":    "POST /login",
			"users":    "GET /users",
			"user":     "GET /users/{username}",
		},
	})
}
