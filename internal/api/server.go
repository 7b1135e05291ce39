// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

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

	"github.com/wiwekaitech/wiweka/internal/core/blog"
	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/core/contact"
	"github.com/wiwekaitech/wiweka/internal/core/product"
	"github.com/wiwekaitech/wiweka/internal/core/project"
	"github.com/wiwekaitech/wiweka/internal/core/tutorial"
	"github.com/wiwekaitech/wiweka/internal/platform/config"
	"github.com/wiwekaitech/wiweka/internal/platform/constants"
	"github.com/wiwekaitech/wiweka/internal/platform/middleware"
	"github.com/wiwekaitech/wiweka/internal/upload"
	"github.com/wiwekaitech/wiweka/internal/users/account"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
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
type Handlers struct {
	// Liveness is the /health handler. It always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, logout and the current user.
	Auth *auth.Handler

	// Authenticate guards every admin route except login and logout.
	Authenticate func(http.Handler) http.Handler

	Products   *product.Handler
	Projects   *project.Handler
	Tutorials  *tutorial.Handler
	Blog       *blog.Handler
	Categories *category.Handler
	Contact    *contact.Handler
	Users      *account.Handler
	Upload     *upload.Handler

	// Uploads serves locally stored images. Nil when objects live in a bucket.
	Uploads http.Handler
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
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health checks for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	if h.Uploads != nil {
		prefix := strings.TrimRight(cfg.UploadPublicPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, h.Uploads))
	}

	// # Application API
	r.Route(cfg.APIPrefix, func(api chi.Router) {
		api.Get("/health", h.Liveness)

		api.Route("/products", h.Products.PublicRoutes)
		api.Route("/projects", h.Projects.PublicRoutes)
		api.Route("/tutorials", func(tutorials chi.Router) {
			tutorials.Get("/categories", h.Categories.ListOfType(category.TypeTutorial))
			h.Tutorials.PublicRoutes(tutorials)
		})
		api.Route("/blog", func(posts chi.Router) {
			posts.Get("/categories", h.Categories.ListOfType(category.TypeBlog))
			h.Blog.PublicRoutes(posts)
		})
		api.Route("/categories", h.Categories.RegisterRoutes)
		api.Route("/contact", h.Contact.RegisterRoutes)

		// # Admin Surface
		api.Route("/admin", func(admin chi.Router) {
			h.Auth.RegisterRoutes(admin)

			admin.Group(func(protected chi.Router) {
				protected.Use(h.Authenticate)

				protected.Route("/products", h.Products.AdminRoutes)
				protected.Route("/projects", h.Projects.AdminRoutes)
				protected.Route("/tutorials", h.Tutorials.AdminRoutes)
				protected.Route("/blog", h.Blog.AdminRoutes)
				protected.Route("/categories", h.Categories.AdminRoutes)
				protected.Route("/contact-messages", h.Contact.AdminRoutes)
				protected.Route("/users", h.Users.AdminRoutes)
				protected.Route("/upload", h.Upload.AdminRoutes)
			})
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

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
