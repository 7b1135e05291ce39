// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package blog

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

// CategoryResolver is the category lookup blog posts depend on.
type CategoryResolver interface {
	GetByID(ctx context.Context, id *int64, lang i18n.Lang) (*category.Ref, error)
	FindBySlug(ctx context.Context, slug string, categoryType category.Type) (*category.Category, error)
	Require(ctx context.Context, id int64, categoryType category.Type) error
}

var storageSchema = content.Schema[*Post]{
	Resource:   "Blog post",
	Table:      schema.BlogPost.Table,
	Columns:    schema.BlogPost.Writable(),
	Visibility: schema.BlogPost.IsPublished,
	Order:      content.Order{Column: schema.BlogPost.PublishedAt, Descending: true},
	Bilingual:  []string{"title", "excerpt", "content"},
	Body:       []string{"content"},
	SlugSource: "title",
	New:        New,
	Values: func(p *Post) []any {
		return []any{
			p.CategoryID, p.TitleEN, p.TitleID, p.Slug, p.ExcerptEN, p.ExcerptID,
			p.ContentEN, p.ContentID, p.AuthorName,
			p.ReadingTime, p.ImageURL, p.Tags, p.IsPublished, p.PublishedAt,
		}
	},
	Targets: func(p *Post) []any {
		return []any{
			&p.CategoryID, &p.TitleEN, &p.TitleID, &p.Slug, &p.ExcerptEN, &p.ExcerptID,
			&p.ContentEN, &p.ContentID, &p.AuthorName,
			&p.ReadingTime, &p.ImageURL, &p.Tags, &p.IsPublished, &p.PublishedAt,
		}
	},
}

// NewSchema returns the full post schema, with category checks and enrichment.
func NewSchema(categories CategoryResolver) content.Schema[*Post] {
	s := storageSchema
	s.Normalize = normalize

	s.BeforeSave = func(ctx context.Context, p *Post) error {
		return categories.Require(ctx, p.CategoryID, category.TypeBlog)
	}

	s.Enrich = func(ctx context.Context, p *Post, lang i18n.Lang, view map[string]any) error {
		ref, err := categories.GetByID(ctx, &p.CategoryID, lang)
		if err != nil {
			return err
		}
		view["category"] = ref
		return nil
	}

	return s
}

// Service is the blog content service.
type Service = content.Service[*Post]

// Handler serves the public and admin endpoints.
type Handler = content.Handler[*Post]

// NewService wires the post schema to a repository.
func NewService(repo content.Repository[*Post], categories CategoryResolver, logger *slog.Logger) *Service {
	return content.NewService(NewSchema(categories), repo, logger)
}

// NewPostgresRepository stores posts in PostgreSQL.
func NewPostgresRepository(db postgres.Querier) content.Repository[*Post] {
	return content.NewPostgresRepository(db, storageSchema)
}

// NewMemoryRepository stores posts in memory.
func NewMemoryRepository() *content.MemoryRepository[*Post] {
	return content.NewMemoryRepository(storageSchema)
}

// NewHandler serves the blog endpoints.
func NewHandler(service *Service, categories CategoryResolver) *Handler {
	return content.NewHandler(service, content.HandlerConfig[*Post]{
		NewPatch: func() content.Patch[*Post] { return &Patch{} },
		Filters:  Filters(categories),
	})
}

/*
Filters parses the public blog list filters.

  - category_id: numeric category id
  - category: category slug; an unknown slug matches nothing
  - tag: posts whose tags contain the value
  - author: exact author name
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
			conditions = append(conditions, content.Eq(schema.BlogPost.CategoryID, categoryID))
		}

		if categorySlug, ok := query.String(values, "category"); ok {
			found, err := categories.FindBySlug(request.Context(), categorySlug, category.TypeBlog)
			if err != nil {
				return nil, err
			}
			if found == nil {
				conditions = append(conditions, content.Never())
			} else {
				conditions = append(conditions, content.Eq(schema.BlogPost.CategoryID, found.ID))
			}
		}

		if tag, ok := query.String(values, "tag"); ok {
			conditions = append(conditions, content.Contains(schema.BlogPost.Tags, tag))
		}

		if author, ok := query.String(values, "author"); ok {
			conditions = append(conditions, content.Eq(schema.BlogPost.AuthorName, author))
		}

		return conditions, nil
	}
}
