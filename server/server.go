// Package server exposes the operational HTTP API: health, per-feed
// delivery status, and an on-demand refresh trigger.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feedfan/feedfan/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/status.go -pkg mocks -skip-ensure -fmt goimports . StatusProvider
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	status    StatusProvider
	refresher Refresher
	version   string
	debug     bool
	started   time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// StatusProvider reports the latest per-feed cycle outcomes
type StatusProvider interface {
	Statuses() []domain.CycleStatus
}

// Refresher triggers a processing cycle outside the regular schedule
type Refresher interface {
	RunNow(ctx context.Context)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, status StatusProvider, refresher Refresher, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		status:    status,
		refresher: refresher,
		version:   version,
		debug:     debug,
		started:   time.Now(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedfan", "feedfan", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)
	})
}

// statusHandler returns server status and the latest per-feed outcomes
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"feeds":   s.status.Statuses(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// refreshHandler kicks off a processing cycle in the background. The
// trigger shares the scheduler's no-overlap guard, so a cycle already in
// flight makes it a no-op.
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	go s.refresher.RunNow(context.Background())
	renderJSON(w, r, http.StatusAccepted, map[string]string{"status": "refresh started"})
}
