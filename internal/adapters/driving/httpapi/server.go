// Package httpapi exposes the hub over HTTP. Each Google service gets one
// read-only endpoint accepting optional start_date/end_date query parameters.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/veldt-labs/workspacehub/internal/core/ports/driving"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// DefaultPort is the port the API server listens on unless configured.
const DefaultPort = 8000

// Server serves the extraction API over HTTP.
type Server struct {
	hub    driving.HubService
	server *http.Server
}

// NewServer creates an API server around the hub service. An empty host
// binds all interfaces.
func NewServer(hub driving.HubService, host string, port int) *Server {
	if port == 0 {
		port = DefaultPort
	}

	s := &Server{hub: hub}
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// routes builds the chi router with all API endpoints.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", s.handleInfo)
	r.Route("/api", func(r chi.Router) {
		r.Get("/gmail", s.handleGmail)
		r.Get("/chats", s.handleChats)
		r.Get("/calendar", s.handleCalendar)
		r.Get("/docs", s.handleDocs)
		r.Get("/runs", s.handleRuns)
	})

	return r
}

// Handler returns the HTTP handler, used by tests and embedding callers.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start() error {
	logger.Info("API server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// requestLogger logs each request with its duration and status.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Info("%s %s -> %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}
