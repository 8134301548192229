// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/owhstudio/owh-api/internal/core/contact"
	"github.com/owhstudio/owh-api/internal/core/equipment"
	"github.com/owhstudio/owh-api/internal/core/film"
	"github.com/owhstudio/owh-api/internal/core/production"
	"github.com/owhstudio/owh-api/internal/core/rental"
	"github.com/owhstudio/owh-api/internal/core/series"
	"github.com/owhstudio/owh-api/internal/core/site"
	"github.com/owhstudio/owh-api/internal/platform/config"
	"github.com/owhstudio/owh-api/internal/platform/constants"
	"github.com/owhstudio/owh-api/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Film serves the film catalogue.
	Film *film.Handler

	// Production serves the production portfolio.
	Production *production.Handler

	// Equipment serves the rental inventory.
	Equipment *equipment.Handler

	// Series serves episodic content.
	Series *series.Handler

	// Site serves the grouped site content (team, posts, events, settings).
	Site *site.Handler

	// Rental accepts rental requests.
	Rental *rental.Handler

	// Contact accepts contact-form submissions.
	Contact *contact.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg, splitOrigins(cfg.ExtraOrigins)))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/films", h.Film.RegisterRoutes)
		api.Route("/productions", h.Production.RegisterRoutes)
		api.Route("/equipment", h.Equipment.RegisterRoutes)
		api.Route("/series", h.Series.RegisterRoutes)
		api.Route("/rental-requests", h.Rental.RegisterRoutes)
		api.Route("/contact", h.Contact.RegisterRoutes)
		h.Site.RegisterRoutes(api)

		// Studio-side surface. Exposure control (network policy, gateway
		// auth) lives outside this process.
		api.Route("/admin", func(admin chi.Router) {
			admin.Route("/films", h.Film.RegisterAdminRoutes)
			admin.Route("/productions", h.Production.RegisterAdminRoutes)
			admin.Route("/equipment", h.Equipment.RegisterAdminRoutes)
			admin.Route("/rental-requests", h.Rental.RegisterAdminRoutes)
			admin.Route("/contact", h.Contact.RegisterAdminRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// splitOrigins parses the comma-separated extra-origins setting.
func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
