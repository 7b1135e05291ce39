// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package tutorial configures the generic content layer for tutorials.
//
// A tutorial belongs to a category of type "tutorial", carries a difficulty
// level and is public once published.
package tutorial

import (
	"time"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/optional"
	"github.com/wiwekaitech/wiweka/pkg/slice"
)

// Difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Difficulties lists the accepted difficulty levels.
var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Tutorial is a published how-to article.
type Tutorial struct {
	content.Record
	CategoryID      int64      `json:"category_id"`
	TitleEN         string     `json:"title_en"`
	TitleID         string     `json:"title_id"`
	ExcerptEN       string     `json:"excerpt_en"`
	ExcerptID       string     `json:"excerpt_id"`
	ContentEN       string     `json:"content_en"`
	ContentID       string     `json:"content_id"`
	DifficultyLevel string     `json:"difficulty_level"`
	ReadingTime     *int       `json:"reading_time"`
	ImageURL        *string    `json:"image_url"`
	Tags            []string   `json:"tags"`
	IsPublished     bool       `json:"is_published"`
	PublishedAt     *time.Time `json:"published_at"`
}

// Global field names for validation
const (
	FieldCategoryID      = "category_id"
	FieldTitleEN         = "title_en"
	FieldTitleID         = "title_id"
	FieldExcerptEN       = "excerpt_en"
	FieldExcerptID       = "excerpt_id"
	FieldContentEN       = "content_en"
	FieldContentID       = "content_id"
	FieldDifficultyLevel = "difficulty_level"
	FieldReadingTime     = "reading_time"
	FieldImageURL        = "image_url"
	FieldTags            = "tags"
	FieldIsPublished     = "is_published"
)

// New returns a tutorial with the creation defaults applied.
func New() *Tutorial {
	return &Tutorial{DifficultyLevel: DifficultyBeginner}
}

// Translation implements [i18n.Translatable].
func (t *Tutorial) Translation(field string) (any, any, bool) {
	switch field {
	case "title":
		return t.TitleEN, t.TitleID, true
	case "excerpt":
		return t.ExcerptEN, t.ExcerptID, true
	case "content":
		return t.ContentEN, t.ContentID, true
	}
	return nil, nil, false
}

// Visible implements [content.Entity].
func (t *Tutorial) Visible() bool { return t.IsPublished }

// Attributes implements [content.Entity].
func (t *Tutorial) Attributes() map[string]any {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	return map[string]any{
		"difficulty":   t.DifficultyLevel,
		"reading_time": t.ReadingTime,
		"image_url":    t.ImageURL,
		"tags":         tags,
		"published_at": t.PublishedAt,
	}
}

// Validate implements [content.Entity].
func (t *Tutorial) Validate(v *validate.Validator) {
	v.Custom(FieldCategoryID, t.CategoryID <= 0, "This field is required")
	v.Required(FieldTitleEN, t.TitleEN).MaxLen(FieldTitleEN, t.TitleEN, 300)
	v.Required(FieldTitleID, t.TitleID).MaxLen(FieldTitleID, t.TitleID, 300)
	v.Required(FieldExcerptEN, t.ExcerptEN)
	v.Required(FieldExcerptID, t.ExcerptID)
	v.Required(FieldContentEN, t.ContentEN)
	v.Required(FieldContentID, t.ContentID)
	v.OneOf(FieldDifficultyLevel, t.DifficultyLevel, Difficulties...)

	if t.ReadingTime != nil {
		v.Min(FieldReadingTime, *t.ReadingTime, 0)
	}
	if t.ImageURL != nil {
		v.MaxLen(FieldImageURL, *t.ImageURL, 500).URL(FieldImageURL, *t.ImageURL)
	}
}

// normalize sanitizes the bodies, tidies the tags and stamps the publication time.
func normalize(t *Tutorial, now time.Time) {
	t.ContentEN = content.SanitizeHTML(t.ContentEN)
	t.ContentID = content.SanitizeHTML(t.ContentID)
	t.Tags = slice.CleanStrings(t.Tags)
	content.StampPublished(t.IsPublished, &t.PublishedAt, now)
}

// Patch is a partial tutorial update. Absent keys leave the field untouched.
type Patch struct {
	CategoryID      optional.Value[int64]     `json:"category_id"`
	TitleEN         optional.Value[string]    `json:"title_en"`
	TitleID         optional.Value[string]    `json:"title_id"`
	Slug            optional.Value[string]    `json:"slug"`
	ExcerptEN       optional.Value[string]    `json:"excerpt_en"`
	ExcerptID       optional.Value[string]    `json:"excerpt_id"`
	ContentEN       optional.Value[string]    `json:"content_en"`
	ContentID       optional.Value[string]    `json:"content_id"`
	DifficultyLevel optional.Value[string]    `json:"difficulty_level"`
	ReadingTime     optional.Value[int]       `json:"reading_time"`
	ImageURL        optional.Value[string]    `json:"image_url"`
	Tags            optional.Value[[]string]  `json:"tags"`
	IsPublished     optional.Value[bool]      `json:"is_published"`
	PublishedAt     optional.Value[time.Time] `json:"published_at"`
}

// ApplyTo implements [content.Patch].
func (patch *Patch) ApplyTo(t *Tutorial) error {
	err := content.RejectNulls(
		content.NotNull(FieldCategoryID, patch.CategoryID),
		content.NotNull(FieldTitleEN, patch.TitleEN),
		content.NotNull(FieldTitleID, patch.TitleID),
		content.NotNull(content.FieldSlug, patch.Slug),
		content.NotNull(FieldExcerptEN, patch.ExcerptEN),
		content.NotNull(FieldExcerptID, patch.ExcerptID),
		content.NotNull(FieldContentEN, patch.ContentEN),
		content.NotNull(FieldContentID, patch.ContentID),
		content.NotNull(FieldDifficultyLevel, patch.DifficultyLevel),
		content.NotNull(FieldTags, patch.Tags),
		content.NotNull(FieldIsPublished, patch.IsPublished),
	)
	if err != nil {
		return err
	}

	patch.CategoryID.Apply(&t.CategoryID)
	patch.TitleEN.Apply(&t.TitleEN)
	patch.TitleID.Apply(&t.TitleID)
	patch.Slug.Apply(&t.Slug)
	patch.ExcerptEN.Apply(&t.ExcerptEN)
	patch.ExcerptID.Apply(&t.ExcerptID)
	patch.ContentEN.Apply(&t.ContentEN)
	patch.ContentID.Apply(&t.ContentID)
	patch.DifficultyLevel.Apply(&t.DifficultyLevel)
	patch.ReadingTime.ApplyPtr(&t.ReadingTime)
	patch.ImageURL.ApplyPtr(&t.ImageURL)
	patch.Tags.Apply(&t.Tags)
	patch.IsPublished.Apply(&t.IsPublished)
	patch.PublishedAt.ApplyPtr(&t.PublishedAt)
	return nil
}
