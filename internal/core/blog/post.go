// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package blog configures the generic content layer for blog posts.
package blog

import (
	"time"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/optional"
	"github.com/wiwekaitech/wiweka/pkg/slice"
)

// Post is a blog article.
type Post struct {
	content.Record
	CategoryID  int64      `json:"category_id"`
	TitleEN     string     `json:"title_en"`
	TitleID     string     `json:"title_id"`
	ExcerptEN   string     `json:"excerpt_en"`
	ExcerptID   string     `json:"excerpt_id"`
	ContentEN   string     `json:"content_en"`
	ContentID   string     `json:"content_id"`
	AuthorName  *string    `json:"author_name"`
	ReadingTime *int       `json:"reading_time"`
	ImageURL    *string    `json:"image_url"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
}

// Global field names for validation
const (
	FieldCategoryID  = "category_id"
	FieldTitleEN     = "title_en"
	FieldTitleID     = "title_id"
	FieldExcerptEN   = "excerpt_en"
	FieldExcerptID   = "excerpt_id"
	FieldContentEN   = "content_en"
	FieldContentID   = "content_id"
	FieldAuthorName  = "author_name"
	FieldReadingTime = "reading_time"
	FieldImageURL    = "image_url"
	FieldTags        = "tags"
	FieldIsPublished = "is_published"
)

// New returns an empty, unpublished post.
func New() *Post {
	return &Post{}
}

// Translation implements [i18n.Translatable].
func (p *Post) Translation(field string) (any, any, bool) {
	switch field {
	case "title":
		return p.TitleEN, p.TitleID, true
	case "excerpt":
		return p.ExcerptEN, p.ExcerptID, true
	case "content":
		return p.ContentEN, p.ContentID, true
	}
	return nil, nil, false
}

// Visible implements [content.Entity].
func (p *Post) Visible() bool { return p.IsPublished }

// Attributes implements [content.Entity].
func (p *Post) Attributes() map[string]any {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return map[string]any{
		"author_name":  p.AuthorName,
		"reading_time": p.ReadingTime,
		"image_url":    p.ImageURL,
		"tags":         tags,
		"published_at": p.PublishedAt,
	}
}

// Validate implements [content.Entity].
func (p *Post) Validate(v *validate.Validator) {
	v.Custom(FieldCategoryID, p.CategoryID <= 0, "This field is required")
	v.Required(FieldTitleEN, p.TitleEN).MaxLen(FieldTitleEN, p.TitleEN, 300)
	v.Required(FieldTitleID, p.TitleID).MaxLen(FieldTitleID, p.TitleID, 300)
	v.Required(FieldExcerptEN, p.ExcerptEN)
	v.Required(FieldExcerptID, p.ExcerptID)
	v.Required(FieldContentEN, p.ContentEN)
	v.Required(FieldContentID, p.ContentID)

	if p.AuthorName != nil {
		v.MaxLen(FieldAuthorName, *p.AuthorName, 100)
	}
	if p.ReadingTime != nil {
		v.Min(FieldReadingTime, *p.ReadingTime, 0)
	}
	if p.ImageURL != nil {
		v.MaxLen(FieldImageURL, *p.ImageURL, 500).URL(FieldImageURL, *p.ImageURL)
	}
}

// normalize sanitizes the bodies, tidies the tags and stamps the publication time.
func normalize(p *Post, now time.Time) {
	p.ContentEN = content.SanitizeHTML(p.ContentEN)
	p.ContentID = content.SanitizeHTML(p.ContentID)
	p.Tags = slice.CleanStrings(p.Tags)
	content.StampPublished(p.IsPublished, &p.PublishedAt, now)
}

// Patch is a partial post update. Absent keys leave the field untouched.
type Patch struct {
	CategoryID  optional.Value[int64]     `json:"category_id"`
	TitleEN     optional.Value[string]    `json:"title_en"`
	TitleID     optional.Value[string]    `json:"title_id"`
	Slug        optional.Value[string]    `json:"slug"`
	ExcerptEN   optional.Value[string]    `json:"excerpt_en"`
	ExcerptID   optional.Value[string]    `json:"excerpt_id"`
	ContentEN   optional.Value[string]    `json:"content_en"`
	ContentID   optional.Value[string]    `json:"content_id"`
	AuthorName  optional.Value[string]    `json:"author_name"`
	ReadingTime optional.Value[int]       `json:"reading_time"`
	ImageURL    optional.Value[string]    `json:"image_url"`
	Tags        optional.Value[[]string]  `json:"tags"`
	IsPublished optional.Value[bool]      `json:"is_published"`
	PublishedAt optional.Value[time.Time] `json:"published_at"`
}

// ApplyTo implements [content.Patch].
func (patch *Patch) ApplyTo(p *Post) error {
	err := content.RejectNulls(
		content.NotNull(FieldCategoryID, patch.CategoryID),
		content.NotNull(FieldTitleEN, patch.TitleEN),
		content.NotNull(FieldTitleID, patch.TitleID),
		content.NotNull(content.FieldSlug, patch.Slug),
		content.NotNull(FieldExcerptEN, patch.ExcerptEN),
		content.NotNull(FieldExcerptID, patch.ExcerptID),
		content.NotNull(FieldContentEN, patch.ContentEN),
		content.NotNull(FieldContentID, patch.ContentID),
		content.NotNull(FieldTags, patch.Tags),
		content.NotNull(FieldIsPublished, patch.IsPublished),
	)
	if err != nil {
		return err
	}

	patch.CategoryID.Apply(&p.CategoryID)
	patch.TitleEN.Apply(&p.TitleEN)
	patch.TitleID.Apply(&p.TitleID)
	patch.Slug.Apply(&p.Slug)
	patch.ExcerptEN.Apply(&p.ExcerptEN)
	patch.ExcerptID.Apply(&p.ExcerptID)
	patch.ContentEN.Apply(&p.ContentEN)
	patch.ContentID.Apply(&p.ContentID)
	patch.AuthorName.ApplyPtr(&p.AuthorName)
	patch.ReadingTime.ApplyPtr(&p.ReadingTime)
	patch.ImageURL.ApplyPtr(&p.ImageURL)
	patch.Tags.Apply(&p.Tags)
	patch.IsPublished.Apply(&p.IsPublished)
	patch.PublishedAt.ApplyPtr(&p.PublishedAt)
	return nil
}
