// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package seed creates the starter accounts and categories of a fresh install.

Running it twice is harmless: rows that already exist are left untouched.
*/
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
)

// DefaultAccounts are created when missing. Change their passwords after first login.
var DefaultAccounts = []auth.NewAccount{
	{Username: "admin", Email: "admin@wiwekaitech.com", Password: "admin123", Role: sec.RoleAdmin},
	{Username: "editor", Email: "editor@wiwekaitech.com", Password: "editor123", Role: sec.RoleEditor},
}

// DefaultCategories are created when their slug is free.
var DefaultCategories = []category.Category{
	{NameEN: "FastAPI Development", NameID: "Pengembangan FastAPI", Slug: "fastapi-development", Type: category.TypeTutorial},
	{NameEN: "Technology", NameID: "Teknologi", Slug: "technology", Type: category.TypeBlog},
}

// AccountCreator is satisfied by [auth.Service].
type AccountCreator interface {
	CreateUser(context context.Context, account auth.NewAccount) (*auth.User, error)
}

// CategoryCreator is satisfied by [category.Service].
type CategoryCreator interface {
	Create(context context.Context, category *category.Category) error
}

// Report counts the rows a run inserted.
type Report struct {
	Accounts   int
	Categories int
}

type Seeder struct {
	accounts   AccountCreator
	categories CategoryCreator
	logger     *slog.Logger
}

func New(accounts AccountCreator, categories CategoryCreator, logger *slog.Logger) *Seeder {
	return &Seeder{accounts: accounts, categories: categories, logger: logger}
}

// Run inserts whatever default rows are missing.
func (seeder *Seeder) Run(context context.Context) (Report, error) {
	var report Report

	for _, account := range DefaultAccounts {
		_, err := seeder.accounts.CreateUser(context, account)
		switch {
		case apperr.HasCode(err, "DUPLICATE_USERNAME"), apperr.HasCode(err, "DUPLICATE_EMAIL"):
			seeder.logger.InfoContext(context, "seed_account_exists", slog.String("username", account.Username))
		case err != nil:
			return report, fmt.Errorf("seed_account_failed: %w", err)
		default:
			report.Accounts++
			seeder.logger.InfoContext(context, "seed_account_created",
				slog.String("username", account.Username),
				slog.String("role", string(account.Role)),
			)
		}
	}

	for _, row := range DefaultCategories {
		err := seeder.categories.Create(context, &row)
		switch {
		case apperr.HasCode(err, "DUPLICATE_SLUG"):
			seeder.logger.InfoContext(context, "seed_category_exists", slog.String("slug", row.Slug))
		case err != nil:
			return report, fmt.Errorf("seed_category_failed: %w", err)
		default:
			report.Categories++
			seeder.logger.InfoContext(context, "seed_category_created", slog.String("slug", row.Slug))
		}
	}

	return report, nil
}
