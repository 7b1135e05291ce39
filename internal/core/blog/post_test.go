// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package blog_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/core/blog"
	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
	"github.com/wiwekaitech/wiweka/pkg/pointer"
)

func setup(t *testing.T) (*blog.Service, *category.Service, *category.Category) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	categories := category.NewService(category.NewMemoryRepository(), logger)

	technology := &category.Category{NameEN: "Technology", NameID: "Teknologi", Type: category.TypeBlog}
	require.NoError(t, categories.Create(context.Background(), technology))

	return blog.NewService(blog.NewMemoryRepository(), categories, logger), categories, technology
}

func post(categoryID int64, slug, author string, published bool) *blog.Post {
	p := blog.New()
	p.Slug = slug
	p.CategoryID = categoryID
	p.TitleEN, p.TitleID = "Title", "Judul"
	p.ExcerptEN, p.ExcerptID = "Excerpt", "Kutipan"
	p.ContentEN, p.ContentID = "Content", "Konten"
	p.AuthorName = pointer.To(author)
	p.Tags = []string{"go", " go ", ""}
	p.IsPublished = published
	return p
}

/*
TestPost_PublishedNewestFirst orders by publication time and keeps drafts out.
*/
func TestPost_PublishedNewestFirst(t *testing.T) {
	service, _, technology := setup(t)
	ctx := context.Background()

	older := post(technology.ID, "older", "Ayu", true)
	older.PublishedAt = pointer.To(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err := service.Create(ctx, older)
	require.NoError(t, err)

	created, err := service.Create(ctx, post(technology.ID, "newest", "Budi", true))
	require.NoError(t, err)
	assert.NotNil(t, created.PublishedAt)
	assert.Equal(t, []string{"go"}, created.Tags)

	_, err = service.Create(ctx, post(technology.ID, "draft", "Budi", false))
	require.NoError(t, err)

	page, err := service.ListPublic(ctx, i18n.English, pagination.New(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "newest", page.Items[0]["slug"])
	assert.Equal(t, "older", page.Items[1]["slug"])

	byAuthor, err := service.ListPublic(ctx, i18n.English, pagination.New(1, 10), content.Eq("author_name", "Ayu"))
	require.NoError(t, err)
	assert.Equal(t, 1, byAuthor.Meta.TotalItems)

	_, err = service.GetBySlug(ctx, "draft", i18n.English)
	assert.True(t, apperr.HasCode(err, "BLOG_POST_NOT_FOUND"))
}

/*
TestPost_RequiresBlogCategory rejects tutorial categories.
*/
func TestPost_RequiresBlogCategory(t *testing.T) {
	service, categories, _ := setup(t)
	ctx := context.Background()

	tutorials := &category.Category{NameEN: "FastAPI Development", NameID: "Pengembangan FastAPI", Type: category.TypeTutorial}
	require.NoError(t, categories.Create(ctx, tutorials))

	_, err := service.Create(ctx, post(tutorials.ID, "misfiled", "Ayu", true))
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

/*
TestFilters resolves category slugs within the blog type.
*/
func TestFilters(t *testing.T) {
	_, categories, technology := setup(t)
	filters := blog.Filters(categories)

	conditions, err := filters(httptest.NewRequest("GET", "/blog?category=technology&author=Ayu&tag=go", nil))
	require.NoError(t, err)
	assert.Equal(t, []content.Condition{
		content.Eq("category_id", technology.ID),
		content.Contains("tags", "go"),
		content.Eq("author_name", "Ayu"),
	}, conditions)

	conditions, err = filters(httptest.NewRequest("GET", "/blog?category=unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, []content.Condition{content.Never()}, conditions)
}
