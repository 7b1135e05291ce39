// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package tutorial_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/core/category"
	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/core/tutorial"
	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/pkg/optional"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
)

type fixture struct {
	service    *tutorial.Service
	categories *category.Service
	fastapi    *category.Category
	blog       *category.Category
}

func setup(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	categories := category.NewService(category.NewMemoryRepository(), logger)

	fastapi := &category.Category{NameEN: "FastAPI Development", NameID: "Pengembangan FastAPI", Type: category.TypeTutorial}
	require.NoError(t, categories.Create(ctx, fastapi))
	blog := &category.Category{NameEN: "Technology", NameID: "Teknologi", Type: category.TypeBlog}
	require.NoError(t, categories.Create(ctx, blog))

	return fixture{
		service:    tutorial.NewService(tutorial.NewMemoryRepository(), categories, logger),
		categories: categories,
		fastapi:    fastapi,
		blog:       blog,
	}
}

func draft(categoryID int64, title string) *tutorial.Tutorial {
	t := tutorial.New()
	t.CategoryID = categoryID
	t.TitleEN, t.TitleID = title, title+" (ID)"
	t.ExcerptEN, t.ExcerptID = "Short", "Singkat"
	t.ContentEN, t.ContentID = "<p>Long</p>", "<p>Panjang</p>"
	return t
}

/*
TestService_PublishThenList stamps published_at and serves the tutorial publicly.
*/
func TestService_PublishThenList(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, draft(f.fastapi.ID, "Getting Started"))
	require.NoError(t, err)
	assert.Equal(t, "getting-started", created.Slug)
	assert.Equal(t, tutorial.DifficultyBeginner, created.DifficultyLevel)
	assert.Nil(t, created.PublishedAt)

	page, err := f.service.ListPublic(ctx, i18n.English, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	published, err := f.service.Update(ctx, created.ID, &tutorial.Patch{IsPublished: optional.Of(true)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)

	page, err = f.service.ListPublic(ctx, i18n.Indonesian, pagination.New(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	item := page.Items[0]
	assert.Equal(t, "Getting Started (ID)", item["title"])
	assert.Equal(t, "Singkat", item["excerpt"])
	assert.NotContains(t, item, "content")
	assert.Equal(t, &category.Ref{ID: f.fastapi.ID, Name: "Pengembangan FastAPI", Slug: "fastapi-development", Type: category.TypeTutorial}, item["category"])

	detail, err := f.service.GetBySlug(ctx, "getting-started", i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "<p>Long</p>", detail["content"])
}

/*
TestService_CategoryMustBeTutorial rejects blog categories and unknown ids.
*/
func TestService_CategoryMustBeTutorial(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, draft(f.blog.ID, "Wrong Kind"))
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	_, err = f.service.Create(ctx, draft(999, "Dangling"))
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

/*
TestService_SanitizesContent strips scripts from the stored bodies.
*/
func TestService_SanitizesContent(t *testing.T) {
	f := setup(t)

	input := draft(f.fastapi.ID, "Unsafe")
	input.ContentEN = `<p>ok</p><script>alert(1)</script>`

	created, err := f.service.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", created.ContentEN)
}

/*
TestService_InvalidDifficulty is a validation error.
*/
func TestService_InvalidDifficulty(t *testing.T) {
	f := setup(t)

	input := draft(f.fastapi.ID, "Expert Only")
	input.DifficultyLevel = "expert"

	_, err := f.service.Create(context.Background(), input)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

/*
TestFilters maps query parameters onto list conditions.
*/
func TestFilters(t *testing.T) {
	f := setup(t)
	filters := tutorial.Filters(f.categories)

	tests := []struct {
		name     string
		target   string
		expected []content.Condition
		fails    bool
	}{
		{"none", "/tutorials", nil, false},
		{"category_slug", "/tutorials?category=fastapi-development", []content.Condition{content.Eq("category_id", f.fastapi.ID)}, false},
		{"unknown_category", "/tutorials?category=nope", []content.Condition{content.Never()}, false},
		{"blog_category_slug", "/tutorials?category=technology", []content.Condition{content.Never()}, false},
		{"difficulty", "/tutorials?difficulty=advanced", []content.Condition{content.Eq("difficulty_level", "advanced")}, false},
		{"tag", "/tutorials?tag=python", []content.Condition{content.Contains("tags", "python")}, false},
		{"bad_difficulty", "/tutorials?difficulty=expert", nil, true},
		{"bad_category_id", "/tutorials?category_id=abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, err := filters(httptest.NewRequest("GET", tt.target, nil))
			if tt.fails {
				assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, conditions)
		})
	}
}

/*
TestService_ListByTag filters published tutorials on their tags.
*/
func TestService_ListByTag(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for title, tags := range map[string][]string{"Python Basics": {"python"}, "Go Basics": {"go"}} {
		input := draft(f.fastapi.ID, title)
		input.Tags = tags
		input.IsPublished = true
		_, err := f.service.Create(ctx, input)
		require.NoError(t, err)
	}

	page, err := f.service.ListPublic(ctx, i18n.English, pagination.New(1, 10), content.Contains("tags", "python"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "python-basics", page.Items[0]["slug"])
}
