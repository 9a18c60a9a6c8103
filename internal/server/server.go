// Package server exposes the catalog and the assistant over a small JSON API.
// It is stateless per request: no selection or chat state lives here.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Assistant is the subset of brain.Assistant the handlers need. Both methods
// return fallback text instead of errors.
type Assistant interface {
	Summarize(ctx context.Context, content string) string
	AskAboutContent(ctx context.Context, content, question string) string
}

// Server is the HTTP surface with lifecycle management.
type Server struct {
	router *gin.Engine
	server *http.Server
}

// New builds the router and wraps it in an http.Server listening on addr.
// WriteTimeout is left unset: summary and ask calls are bounded by the
// assistant's own timeout.
func New(addr string, c *catalog.Catalog, a Assistant) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	SetupRoutes(router, NewHandler(c, a))

	return &Server{
		router: router,
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: defaultReadTimeout,
			ReadTimeout:       defaultReadTimeout,
		},
	}
}

// Router returns the underlying gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info("Starting HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Info("Shutting down HTTP server")
	}

	// ctx is already done; shutdown needs its own deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logging.Info("HTTP server stopped gracefully")
	return nil
}

// SetupRoutes registers the API on router.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	api.GET("/categories", h.ListCategories)
	api.GET("/tutorials", h.ListTutorials)
	api.GET("/tutorials/:id", h.GetTutorial)
	api.GET("/tutorials/:id/summary", h.Summarize)
	api.POST("/tutorials/:id/ask", h.Ask)
}
