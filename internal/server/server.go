// Package server provides the HTTP REST API for scoring and tailoring.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/airesume/tailor/internal/pipeline"
	"github.com/airesume/tailor/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	tailorer   *pipeline.Tailorer
	validate   *validator.Validate
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port int
	// JWTSecret enables bearer-token authentication on mutating routes
	// when non-empty. Health stays open either way.
	JWTSecret string
	// Tailorer may be nil, in which case /tailor returns 503 and only
	// scoring routes are usable.
	Tailorer *pipeline.Tailorer
	Logger   *zap.Logger
}

// New creates a new server instance
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		tailorer: cfg.Tailorer,
		validate: validator.New(),
		log:      log,
	}

	mux := http.NewServeMux()
	mux.Handle("POST /score", s.withAuth(cfg.JWTSecret, http.HandlerFunc(s.handleScore)))
	mux.Handle("POST /score/batch", s.withAuth(cfg.JWTSecret, http.HandlerFunc(s.handleScoreBatch)))
	mux.Handle("POST /tailor", s.withAuth(cfg.JWTSecret, http.HandlerFunc(s.handleTailor)))
	mux.HandleFunc("GET /models", s.handleModels)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for iterative tailoring runs
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the fully wired handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

// withAuth wraps a handler with bearer-token validation when a secret is
// configured, and is a no-op otherwise.
func (s *Server) withAuth(secret string, next http.Handler) http.Handler {
	if secret == "" {
		return next
	}
	return middleware.Auth(secret)(next)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
