// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package tutorial

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/database/schema"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/internal/platform/postgres"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/query"
)

// CategoryResolver is the category lookup tutorials depend on.
type CategoryResolver interface {
	GetByID(ctx context.Context, id *int64, lang i18n.Lang) (*category.Ref, error)
	FindBySlug(ctx context.Context, slug string, categoryType category.Type) (*category.Category, error)
	Require(ctx context.Context, id int64, categoryType category.Type) error
}

// storageSchema is the part of the schema repositories need.
var storageSchema = content.Schema[*Tutorial]{
	Resource:   "Tutorial",
	Table:      schema.Tutorial.Table,
	Columns:    schema.Tutorial.Writable(),
	Visibility: schema.Tutorial.IsPublished,
	Order:      content.Order{Column: schema.Tutorial.PublishedAt, Descending: true},
	Bilingual:  []string{"title", "excerpt", "content"},
	Body:       []string{"content"},
	SlugSource: "title",
	New:        New,
	Values: func(t *Tutorial) []any {
		return []any{
			t.CategoryID, t.TitleEN, t.TitleID, t.Slug, t.ExcerptEN, t.ExcerptID,
			t.ContentEN, t.ContentID, t.DifficultyLevel,
			t.ReadingTime, t.ImageURL, t.Tags, t.IsPublished, t.PublishedAt,
		}
	},
	Targets: func(t *Tutorial) []any {
		return []any{
			&t.CategoryID, &t.TitleEN, &t.TitleID, &t.Slug, &t.ExcerptEN, &t.ExcerptID,
			&t.ContentEN, &t.ContentID, &t.DifficultyLevel,
			&t.ReadingTime, &t.ImageURL, &t.Tags, &t.IsPublished, &t.PublishedAt,
		}
	},
}

// NewSchema returns the full tutorial schema, with category checks and enrichment.
func NewSchema(categories CategoryResolver) content.Schema[*Tutorial] {
	s := storageSchema
	s.Normalize = normalize

	s.BeforeSave = func(ctx context.Context, t *Tutorial) error {
		return categories.Require(ctx, t.CategoryID, category.TypeTutorial)
	}

	s.Enrich = func(ctx context.Context, t *Tutorial, lang i18n.Lang, view map[string]any) error {
		ref, err := categories.GetByID(ctx, &t.CategoryID, lang)
		if err != nil {
			return err
		}
		view["category"] = ref
		return nil
	}

	return s
}

// Service is the tutorial content service.
type Service = content.Service[*Tutorial]

// Handler serves the public and admin endpoints.
type Handler = content.Handler[*Tutorial]

// NewService wires the tutorial schema to a repository.
func NewService(repo content.Repository[*Tutorial], categories CategoryResolver, logger *slog.Logger) *Service {
	return content.NewService(NewSchema(categories), repo, logger)
}

// NewPostgresRepository stores tutorials in PostgreSQL.
func NewPostgresRepository(db postgres.Querier) content.Repository[*Tutorial] {
	return content.NewPostgresRepository(db, storageSchema)
}

// NewMemoryRepository stores tutorials in memory.
func NewMemoryRepository() *content.MemoryRepository[*Tutorial] {
	return content.NewMemoryRepository(storageSchema)
}

// NewHandler serves the tutorial endpoints.
func NewHandler(service *Service, categories CategoryResolver) *Handler {
	return content.NewHandler(service, content.HandlerConfig[*Tutorial]{
		NewPatch: func() content.Patch[*Tutorial] { return &Patch{} },
		Filters:  Filters(categories),
	})
}

/*
Filters parses the public tutorial list filters.

  - category_id: numeric category id
  - category: category slug; an unknown slug matches nothing
  - difficulty: one of [Difficulties]
  - tag: rows whose tags contain the value
*/
func Filters(categories CategoryResolver) content.FilterFunc {
	return func(request *http.Request) ([]content.Condition, error) {
		values := request.URL.Query()
		var conditions []content.Condition

		categoryID, ok, err := query.ID(values, "category_id")
		if err != nil {
			return nil, validate.RequiredError("category_id", "Must be a positive integer")
		}
		if ok {
			conditions = append(conditions, content.Eq(schema.Tutorial.CategoryID, categoryID))
		}

		if categorySlug, ok := query.String(values, "category"); ok {
			found, err := categories.FindBySlug(request.Context(), categorySlug, category.TypeTutorial)
			if err != nil {
				return nil, err
			}
			if found == nil {
				conditions = append(conditions, content.Never())
			} else {
				conditions = append(conditions, content.Eq(schema.Tutorial.CategoryID, found.ID))
			}
		}

		if difficulty, ok := query.String(values, "difficulty"); ok {
			validator := &validate.Validator{}
			if err := validator.OneOf("difficulty", difficulty, Difficulties...).Err(); err != nil {
				return nil, err
			}
			conditions = append(conditions, content.Eq(schema.Tutorial.DifficultyLevel, difficulty))
		}

		if tag, ok := query.String(values, "tag"); ok {
			conditions = append(conditions, content.Contains(schema.Tutorial.Tags, tag))
		}

		return conditions, nil
	}
}
