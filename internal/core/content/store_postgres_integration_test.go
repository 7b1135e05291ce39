// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

//go:build integration

package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/core/product"
	"github.com/wiwekaitech/wiweka/internal/core/tutorial"
	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/internal/platform/testinfra"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
	"github.com/wiwekaitech/wiweka/pkg/pointer"
)

/*
TestPostgresRepository_Product exercises CRUD, ordering and the unique slug constraint.
*/
func TestPostgresRepository_Product(t *testing.T) {
	pool := testinfra.StartPostgres(t)
	ctx := context.Background()
	repo := product.NewPostgresRepository(pool)

	p := product.New()
	p.Slug = "erp-system"
	p.TitleEN, p.TitleID = "ERP System", "Sistem ERP"
	p.DescriptionEN, p.DescriptionID = "Planning", "Perencanaan"
	p.FeaturesEN, p.FeaturesID = []string{"Inventory"}, []string{"Inventaris"}
	p.Icon = pointer.To("box")
	p.DisplayOrder = 2

	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	duplicate := *p
	duplicate.ID = 0
	assert.True(t, apperr.HasCode(repo.Create(ctx, &duplicate), "DUPLICATE_SLUG"))

	stored, err := repo.FindBySlug(ctx, "erp-system", true)
	require.NoError(t, err)
	assert.Equal(t, p.FeaturesID, stored.FeaturesID)
	assert.Equal(t, "box", *stored.Icon)

	first := product.New()
	first.Slug = "crm"
	first.TitleEN, first.TitleID = "CRM", "CRM"
	first.DescriptionEN, first.DescriptionID = "Customers", "Pelanggan"
	first.DisplayOrder = 1
	require.NoError(t, repo.Create(ctx, first))

	rows, err := repo.List(ctx, content.Query{VisibleOnly: true}, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "crm", rows[0].Slug)

	stored.IsActive = false
	require.NoError(t, repo.Update(ctx, stored))

	count, err := repo.Count(ctx, content.Query{VisibleOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, stored.ID))
	_, err = repo.FindByID(ctx, stored.ID)
	assert.True(t, apperr.HasCode(err, "PRODUCT_NOT_FOUND"))
}

/*
TestPostgresRepository_TutorialFilters runs tag containment and category
checks against real arrays and foreign keys.
*/
func TestPostgresRepository_TutorialFilters(t *testing.T) {
	pool := testinfra.StartPostgres(t)
	ctx := context.Background()
	logger := discardLogger()

	categoryRepo := category.NewPostgresRepository(pool)
	categories := category.NewService(categoryRepo, logger)

	fastapi := &category.Category{NameEN: "FastAPI Development", NameID: "Pengembangan FastAPI", Type: category.TypeTutorial}
	require.NoError(t, categories.Create(ctx, fastapi))

	service := tutorial.NewService(tutorial.NewPostgresRepository(pool), categories, logger)

	input := tutorial.New()
	input.CategoryID = fastapi.ID
	input.TitleEN, input.TitleID = "Python Basics", "Dasar Python"
	input.ExcerptEN, input.ExcerptID = "Start", "Mulai"
	input.ContentEN, input.ContentID = "<p>Body</p>", "<p>Isi</p>"
	input.Tags = []string{"python", "beginner"}
	input.IsPublished = true

	created, err := service.Create(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created.PublishedAt)

	page, err := service.ListPublic(ctx, i18n.English, pagination.New(1, 10), content.Contains("tags", "python"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "python-basics", page.Items[0]["slug"])

	none, err := service.ListPublic(ctx, i18n.English, pagination.New(1, 10), content.Never())
	require.NoError(t, err)
	assert.Empty(t, none.Items)

	used, err := categoryRepo.InUse(ctx, fastapi.ID)
	require.NoError(t, err)
	assert.True(t, used)
	assert.True(t, apperr.HasCode(categories.Delete(ctx, fastapi.ID), "CONFLICT"))
}
