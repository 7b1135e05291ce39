// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package project

import (
	"log/slog"
	"net/http"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/database/schema"
	"github.com/wiwekaitech/wiweka/internal/platform/postgres"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/query"
)

// Schema describes projects to the content layer. Newest completion first.
var Schema = content.Schema[*Project]{
	Resource:   "Project",
	Table:      schema.Project.Table,
	Columns:    schema.Project.Writable(),
	Visibility: schema.Project.IsActive,
	Order:      content.Order{Column: schema.Project.CompletedDate, Descending: true},
	Bilingual:  []string{"title", "summary", "description", "metrics"},
	Body:       []string{"description"},
	SlugSource: "title",
	New:        New,
	Values: func(p *Project) []any {
		return []any{
			p.TitleEN, p.TitleID, p.Slug, p.SummaryEN, p.SummaryID,
			p.DescriptionEN, p.DescriptionID, p.ClientName, p.Industry,
			p.Technologies, p.ImageURL, p.MetricsEN, p.MetricsID,
			p.IsFeatured, p.IsActive, p.CompletedDate,
		}
	},
	Targets: func(p *Project) []any {
		return []any{
			&p.TitleEN, &p.TitleID, &p.Slug, &p.SummaryEN, &p.SummaryID,
			&p.DescriptionEN, &p.DescriptionID, &p.ClientName, &p.Industry,
			&p.Technologies, &p.ImageURL, &p.MetricsEN, &p.MetricsID,
			&p.IsFeatured, &p.IsActive, &p.CompletedDate,
		}
	},
}

// Service is the project content service.
type Service = content.Service[*Project]

// Handler serves the public and admin endpoints.
type Handler = content.Handler[*Project]

// NewService wires the project schema to a repository.
func NewService(repo content.Repository[*Project], logger *slog.Logger) *Service {
	return content.NewService(Schema, repo, logger)
}

// NewPostgresRepository stores projects in PostgreSQL.
func NewPostgresRepository(db postgres.Querier) content.Repository[*Project] {
	return content.NewPostgresRepository(db, Schema)
}

// NewHandler serves the project endpoints.
func NewHandler(service *Service) *Handler {
	return content.NewHandler(service, content.HandlerConfig[*Project]{
		NewPatch: func() content.Patch[*Project] { return &Patch{} },
		Filters:  Filters,
	})
}

/*
Filters parses the public project list filters.

  - featured: true or false, matched against is_featured
  - industry: exact industry name
*/
func Filters(request *http.Request) ([]content.Condition, error) {
	values := request.URL.Query()
	var conditions []content.Condition

	featured, ok, err := query.Bool(values, "featured")
	if err != nil {
		return nil, validate.RequiredError("featured", "Must be true or false")
	}
	if ok {
		conditions = append(conditions, content.Eq(schema.Project.IsFeatured, featured))
	}

	if industry, ok := query.String(values, "industry"); ok {
		conditions = append(conditions, content.Eq(schema.Project.Industry, industry))
	}

	return conditions, nil
}
