// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package product

import (
	"log/slog"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/database/schema"
	"github.com/wiwekaitech/wiweka/internal/platform/postgres"
)

// Schema describes products to the content layer.
var Schema = content.Schema[*Product]{
	Resource:   "Product",
	Table:      schema.Product.Table,
	Columns:    schema.Product.Writable(),
	Visibility: schema.Product.IsActive,
	Order:      content.Order{Column: schema.Product.DisplayOrder},
	Bilingual:  []string{"title", "description", "features"},
	Body:       []string{"description"},
	SlugSource: "title",
	New:        New,
	Values: func(p *Product) []any {
		return []any{
			p.TitleEN, p.TitleID, p.Slug, p.DescriptionEN, p.DescriptionID,
			p.Icon, p.FeaturesEN, p.FeaturesID, p.DisplayOrder, p.IsActive,
		}
	},
	Targets: func(p *Product) []any {
		return []any{
			&p.TitleEN, &p.TitleID, &p.Slug, &p.DescriptionEN, &p.DescriptionID,
			&p.Icon, &p.FeaturesEN, &p.FeaturesID, &p.DisplayOrder, &p.IsActive,
		}
	},
}

// Service is the product content service.
type Service = content.Service[*Product]

// Handler serves the public and admin endpoints.
type Handler = content.Handler[*Product]

// NewService wires the product schema to a repository.
func NewService(repo content.Repository[*Product], logger *slog.Logger) *Service {
	return content.NewService(Schema, repo, logger)
}

// NewPostgresRepository stores products in PostgreSQL.
func NewPostgresRepository(db postgres.Querier) content.Repository[*Product] {
	return content.NewPostgresRepository(db, Schema)
}

// NewHandler serves the product endpoints. Products have no public filters.
func NewHandler(service *Service) *Handler {
	return content.NewHandler(service, content.HandlerConfig[*Product]{
		NewPatch: func() content.Patch[*Product] { return &Patch{} },
	})
}
