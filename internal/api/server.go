// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

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
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ImranJeferly/teletebib/internal/admin"
	"github.com/ImranJeferly/teletebib/internal/content"
	"github.com/ImranJeferly/teletebib/internal/media"
	"github.com/ImranJeferly/teletebib/internal/platform/blob"
	"github.com/ImranJeferly/teletebib/internal/platform/config"
	"github.com/ImranJeferly/teletebib/internal/platform/constants"
	"github.com/ImranJeferly/teletebib/internal/platform/middleware"
	"github.com/ImranJeferly/teletebib/internal/waitlist"
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

	// Auth handles administrator sessions (login, refresh, logout, me).
	Auth *admin.Handler

	// Content handles the blog catalogue: public reading and admin authoring.
	Content *content.Handler

	// Waitlist handles patient and doctor signups.
	Waitlist *waitlist.Handler

	// Media handles cover-image uploads.
	Media *media.Handler

	// UploadsDir is the local directory served under the public uploads prefix.
	UploadsDir string
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// Cover images live on local disk and are served as plain static files.
	if h.UploadsDir != "" {
		fileServer := http.StripPrefix(blob.URLPrefix, http.FileServer(http.Dir(h.UploadsDir)))
		r.Get(blob.URLPrefix+"*", fileServer.ServeHTTP)
	}

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Public surface: published posts and waitlist signups.
		api.Route("/posts", h.Content.RegisterPublicRoutes)
		api.Route("/waitlist", h.Waitlist.RegisterPublicRoutes)

		// Authoring surface: everything under /admin requires the admin role.
		api.Route("/admin", func(adminRouter chi.Router) {
			adminRouter.Use(middleware.RequireAdmin)

			adminRouter.Route("/posts", h.Content.RegisterAdminRoutes)
			adminRouter.Route("/waitlist", h.Waitlist.RegisterAdminRoutes)
			adminRouter.Route("/editor", h.Content.RegisterEditorRoutes)

			// POST /admin/images
			h.Media.RegisterAdminRoutes(adminRouter)
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
