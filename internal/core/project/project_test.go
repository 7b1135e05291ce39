// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package project_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/core/project"
	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
	"github.com/wiwekaitech/wiweka/pkg/pointer"
)

func newProject(slug string, featured bool, industry string, completed *time.Time) *project.Project {
	p := project.New()
	p.Slug = slug
	p.TitleEN, p.TitleID = "Project "+slug, "Proyek "+slug
	p.SummaryEN, p.SummaryID = "Summary", "Ringkasan"
	p.DescriptionEN, p.DescriptionID = "Description", "Deskripsi"
	p.IsFeatured = featured
	p.Industry = pointer.To(industry)
	p.MetricsEN = map[string]any{"uptime": "99.9%"}
	p.MetricsID = map[string]any{"uptime": "99,9%"}
	if completed != nil {
		p.CompletedDate = pgtype.Date{Time: *completed, Valid: true}
	}
	return p
}

/*
TestFilters parses featured and industry.
*/
func TestFilters(t *testing.T) {
	conditions, err := project.Filters(httptest.NewRequest("GET", "/projects?featured=true&industry=Retail", nil))
	require.NoError(t, err)
	assert.Equal(t, []content.Condition{
		content.Eq("is_featured", true),
		content.Eq("industry", "Retail"),
	}, conditions)

	_, err = project.Filters(httptest.NewRequest("GET", "/projects?featured=maybe", nil))
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

/*
TestProject_ListFeaturedNewestFirst orders by completion date with undated projects last.
*/
func TestProject_ListFeaturedNewestFirst(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := project.NewService(content.NewMemoryRepository(project.Schema), logger)
	ctx := context.Background()

	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	for _, p := range []*project.Project{
		newProject("ongoing", true, "Retail", nil),
		newProject("old", true, "Retail", &older),
		newProject("new", true, "Banking", &newer),
		newProject("quiet", false, "Retail", &newer),
	} {
		_, err := service.Create(ctx, p)
		require.NoError(t, err)
	}

	page, err := service.ListPublic(ctx, i18n.Indonesian, pagination.New(1, 10), content.Eq("is_featured", true))
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "new", page.Items[0]["slug"])
	assert.Equal(t, "old", page.Items[1]["slug"])
	assert.Equal(t, "ongoing", page.Items[2]["slug"])
	assert.Equal(t, map[string]any{"uptime": "99,9%"}, page.Items[0]["metrics"])

	retail, err := service.ListPublic(ctx, i18n.English, pagination.New(1, 10), content.Eq("industry", "Retail"))
	require.NoError(t, err)
	assert.Equal(t, 3, retail.Meta.TotalItems)
}

/*
TestProject_MetricsPaired rejects metrics in only one language.
*/
func TestProject_MetricsPaired(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := project.NewService(content.NewMemoryRepository(project.Schema), logger)

	p := newProject("lopsided", false, "Retail", nil)
	p.MetricsID = nil

	_, err := service.Create(context.Background(), p)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}
