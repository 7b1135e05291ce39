// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Command api is the entry point for the Wiweka HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Build the token service and the upload backend.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wiwekaitech/wiweka/internal/api"
	"github.com/wiwekaitech/wiweka/internal/core/blog"
	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/core/contact"
	"github.com/wiwekaitech/wiweka/internal/core/product"
	"github.com/wiwekaitech/wiweka/internal/core/project"
	"github.com/wiwekaitech/wiweka/internal/core/tutorial"
	"github.com/wiwekaitech/wiweka/internal/platform/config"
	"github.com/wiwekaitech/wiweka/internal/platform/constants"
	"github.com/wiwekaitech/wiweka/internal/platform/migration"
	pgstore "github.com/wiwekaitech/wiweka/internal/platform/postgres"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/upload"
	"github.com/wiwekaitech/wiweka/internal/users/account"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Wiweka] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("upload_backend", cfg.UploadBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives as long as the server; stops background janitors on shutdown.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Security & Storage ─────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecretKey, cfg.JWTAlgorithm, constants.AuthIssuer, cfg.TokenTTL())
	must(log, err, "initialize token service")

	backend, staticFiles, err := newUploadBackend(startupCtx, cfg)
	must(log, err, "initialize upload backend")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckStorage: backend.Ping,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, tokens, log)

	categoryService := category.NewService(category.NewPostgresRepository(pool), log)
	tutorialService := tutorial.NewService(tutorial.NewPostgresRepository(pool), categoryService, log)
	blogService := blog.NewService(blog.NewPostgresRepository(pool), categoryService, log)

	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Auth:         auth.NewHandler(authService, cfg.IsProduction()),
		Authenticate: authService.Authenticator(),
		Products:     product.NewHandler(product.NewService(product.NewPostgresRepository(pool), log)),
		Projects:     project.NewHandler(project.NewService(project.NewPostgresRepository(pool), log)),
		Tutorials:    tutorial.NewHandler(tutorialService, categoryService),
		Blog:         blog.NewHandler(blogService, categoryService),
		Categories:   category.NewHandler(categoryService),
		Contact:      contact.NewHandler(contact.NewService(contact.NewPostgresRepository(pool), log)),
		Users:        account.NewHandler(account.NewService(userRepository, authService, log)),
		Upload:       upload.NewHandler(upload.NewService(backend, log)),
		Uploads:      staticFiles,
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(serverCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "wiweka"))
}

// newUploadBackend returns the configured image backend, plus the static file
// handler when images are stored locally.
func newUploadBackend(ctx context.Context, cfg *config.Config) (upload.Backend, http.Handler, error) {
	if cfg.UploadBackend == config.UploadBackendS3 {
		backend, err := upload.NewS3Backend(ctx, upload.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			return nil, nil, err
		}
		return backend, nil, nil
	}

	backend, err := upload.NewLocalBackend(cfg.UploadDir, cfg.UploadPublicPrefix)
	if err != nil {
		return nil, nil, err
	}
	return backend, backend.FileServer(), nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
