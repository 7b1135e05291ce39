// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Command seed prepares a database for first use.
//
// It applies migrations, then creates the default admin and editor accounts
// and the starter categories when they are missing. With -reset every table
// is dropped first.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/platform/config"
	"github.com/wiwekaitech/wiweka/internal/platform/constants"
	"github.com/wiwekaitech/wiweka/internal/platform/migration"
	pgstore "github.com/wiwekaitech/wiweka/internal/platform/postgres"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/seed"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
)

func main() {
	reset := flag.Bool("reset", false, "drop all tables before seeding")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "wiweka-seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	runner, err := migration.New(cfg.DatabaseURL, cfg.MigrationPath, log)
	must(log, err, "open migrations")
	if *reset {
		must(log, runner.Down(), "reset database")
	}
	must(log, runner.Up(), "run migrations")
	runner.Close()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	tokens, err := sec.NewTokenService(cfg.JWTSecretKey, cfg.JWTAlgorithm, constants.AuthIssuer, cfg.TokenTTL())
	must(log, err, "initialize token service")

	seeder := seed.New(
		auth.NewService(auth.NewUserRepository(pool), tokens, log),
		category.NewService(category.NewPostgresRepository(pool), log),
		log,
	)

	report, err := seeder.Run(ctx)
	must(log, err, "seed database")

	log.Info("seed_completed",
		slog.Int("accounts_created", report.Accounts),
		slog.Int("categories_created", report.Categories),
	)
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed_failure", slog.String("context", context), slog.Any("error", err))
		os.Exit(1)
	}
}
