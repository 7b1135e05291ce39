// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package product configures the generic content layer for company products.
//
// Products are ordered by an explicit rank (display_order ascending) rather
// than by recency, and are public while is_active is true.
package product

import (
	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/optional"
)

// Product is a product line shown on the corporate site.
type Product struct {
	content.Record
	TitleEN       string   `json:"title_en"`
	TitleID       string   `json:"title_id"`
	DescriptionEN string   `json:"description_en"`
	DescriptionID string   `json:"description_id"`
	Icon          *string  `json:"icon"`
	FeaturesEN    []string `json:"features_en"`
	FeaturesID    []string `json:"features_id"`
	DisplayOrder  int      `json:"display_order"`
	IsActive      bool     `json:"is_active"`
}

// Global field names for validation
const (
	FieldTitleEN       = "title_en"
	FieldTitleID       = "title_id"
	FieldDescriptionEN = "description_en"
	FieldDescriptionID = "description_id"
	FieldIcon          = "icon"
	FieldFeaturesEN    = "features_en"
	FieldFeaturesID    = "features_id"
	FieldDisplayOrder  = "display_order"
	FieldIsActive      = "is_active"
)

// New returns a product with the creation defaults applied.
func New() *Product {
	return &Product{IsActive: true}
}

// Translation implements [i18n.Translatable].
func (p *Product) Translation(field string) (any, any, bool) {
	switch field {
	case "title":
		return p.TitleEN, p.TitleID, true
	case "description":
		return p.DescriptionEN, p.DescriptionID, true
	case "features":
		return orEmpty(p.FeaturesEN), orEmpty(p.FeaturesID), true
	}
	return nil, nil, false
}

// Visible implements [content.Entity].
func (p *Product) Visible() bool { return p.IsActive }

// Attributes implements [content.Entity].
func (p *Product) Attributes() map[string]any {
	return map[string]any{
		"icon":          p.Icon,
		"display_order": p.DisplayOrder,
	}
}

// Validate implements [content.Entity].
func (p *Product) Validate(v *validate.Validator) {
	v.Required(FieldTitleEN, p.TitleEN).MaxLen(FieldTitleEN, p.TitleEN, 200)
	v.Required(FieldTitleID, p.TitleID).MaxLen(FieldTitleID, p.TitleID, 200)
	v.Required(FieldDescriptionEN, p.DescriptionEN)
	v.Required(FieldDescriptionID, p.DescriptionID)
	v.Paired(FieldFeaturesEN, p.FeaturesEN != nil, FieldFeaturesID, p.FeaturesID != nil)
	v.Min(FieldDisplayOrder, p.DisplayOrder, 0)

	if p.Icon != nil {
		v.MaxLen(FieldIcon, *p.Icon, 100)
	}
}

// Patch is a partial product update. Absent keys leave the field untouched.
type Patch struct {
	TitleEN       optional.Value[string]   `json:"title_en"`
	TitleID       optional.Value[string]   `json:"title_id"`
	Slug          optional.Value[string]   `json:"slug"`
	DescriptionEN optional.Value[string]   `json:"description_en"`
	DescriptionID optional.Value[string]   `json:"description_id"`
	Icon          optional.Value[string]   `json:"icon"`
	FeaturesEN    optional.Value[[]string] `json:"features_en"`
	FeaturesID    optional.Value[[]string] `json:"features_id"`
	DisplayOrder  optional.Value[int]      `json:"display_order"`
	IsActive      optional.Value[bool]     `json:"is_active"`
}

// ApplyTo implements [content.Patch].
func (patch *Patch) ApplyTo(p *Product) error {
	err := content.RejectNulls(
		content.NotNull(FieldTitleEN, patch.TitleEN),
		content.NotNull(FieldTitleID, patch.TitleID),
		content.NotNull(content.FieldSlug, patch.Slug),
		content.NotNull(FieldDescriptionEN, patch.DescriptionEN),
		content.NotNull(FieldDescriptionID, patch.DescriptionID),
		content.NotNull(FieldFeaturesEN, patch.FeaturesEN),
		content.NotNull(FieldFeaturesID, patch.FeaturesID),
		content.NotNull(FieldDisplayOrder, patch.DisplayOrder),
		content.NotNull(FieldIsActive, patch.IsActive),
	)
	if err != nil {
		return err
	}

	patch.TitleEN.Apply(&p.TitleEN)
	patch.TitleID.Apply(&p.TitleID)
	patch.Slug.Apply(&p.Slug)
	patch.DescriptionEN.Apply(&p.DescriptionEN)
	patch.DescriptionID.Apply(&p.DescriptionID)
	patch.Icon.ApplyPtr(&p.Icon)
	patch.FeaturesEN.Apply(&p.FeaturesEN)
	patch.FeaturesID.Apply(&p.FeaturesID)
	patch.DisplayOrder.Apply(&p.DisplayOrder)
	patch.IsActive.Apply(&p.IsActive)
	return nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
