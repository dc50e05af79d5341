package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kaiwenlow/simple-auth-be/internal/auth"
	"github.com/kaiwenlow/simple-auth-be/internal/config"
	"github.com/kaiwenlow/simple-auth-be/internal/http/handlers"
	"github.com/kaiwenlow/simple-auth-be/internal/middleware"
	"github.com/kaiwenlow/simple-auth-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore) (*Server, error) {
	tokenManager, err := auth.NewTokenManager(cfg.SecretKey, cfg.Algorithm, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("init token manager: %w", err)
	}

	mux := http.NewServeMux()
	handlers.NewRootHandler(cfg).Register(mux)
	handlers.NewHealthHandler(cfg).Register(mux)
	handlers.NewAuthHandler(store, tokenManager).Register(mux)
	handlers.NewUsersHandler(store).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}, nil
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
