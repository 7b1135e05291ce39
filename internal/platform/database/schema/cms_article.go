// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package schema

// ArticleTable represents the shared layout of the 'tutorials' and
// 'blog_posts' tables. Columns a table lacks are empty.
type ArticleTable struct {
	Table           string
	ID              string
	CategoryID      string
	TitleEN         string
	TitleID         string
	Slug            string
	ExcerptEN       string
	ExcerptID       string
	ContentEN       string
	ContentID       string
	DifficultyLevel string
	AuthorName      string
	ReadingTime     string
	ImageURL        string
	Tags            string
	IsPublished     string
	PublishedAt     string
	CreatedAt       string
	UpdatedAt       string
}

var articleColumns = ArticleTable{
	ID:          "id",
	CategoryID:  "category_id",
	TitleEN:     "title_en",
	TitleID:     "title_id",
	Slug:        "slug",
	ExcerptEN:   "excerpt_en",
	ExcerptID:   "excerpt_id",
	ContentEN:   "content_en",
	ContentID:   "content_id",
	ReadingTime: "reading_time",
	ImageURL:    "image_url",
	Tags:        "tags",
	IsPublished: "is_published",
	PublishedAt: "published_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Tutorial is the schema definition for tutorials
var Tutorial = func() ArticleTable {
	t := articleColumns
	t.Table = "tutorials"
	t.DifficultyLevel = "difficulty_level"
	return t
}()

// BlogPost is the schema definition for blog_posts
var BlogPost = func() ArticleTable {
	t := articleColumns
	t.Table = "blog_posts"
	t.AuthorName = "author_name"
	return t
}()

// Writable returns the columns set on insert and update, id and timestamps excluded.
func (t ArticleTable) Writable() []string {
	columns := []string{
		t.CategoryID, t.TitleEN, t.TitleID, t.Slug, t.ExcerptEN, t.ExcerptID,
		t.ContentEN, t.ContentID,
	}
	if t.DifficultyLevel != "" {
		columns = append(columns, t.DifficultyLevel)
	}
	if t.AuthorName != "" {
		columns = append(columns, t.AuthorName)
	}
	return append(columns, t.ReadingTime, t.ImageURL, t.Tags, t.IsPublished, t.PublishedAt)
}
