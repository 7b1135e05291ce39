// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package project configures the generic content layer for case-study projects.
package project

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/optional"
)

// Project is a delivered client engagement.
type Project struct {
	content.Record
	TitleEN       string         `json:"title_en"`
	TitleID       string         `json:"title_id"`
	SummaryEN     string         `json:"summary_en"`
	SummaryID     string         `json:"summary_id"`
	DescriptionEN string         `json:"description_en"`
	DescriptionID string         `json:"description_id"`
	ClientName    *string        `json:"client_name"`
	Industry      *string        `json:"industry"`
	Technologies  []string       `json:"technologies"`
	ImageURL      *string        `json:"image_url"`
	MetricsEN     map[string]any `json:"metrics_en"`
	MetricsID     map[string]any `json:"metrics_id"`
	IsFeatured    bool           `json:"is_featured"`
	IsActive      bool           `json:"is_active"`
	CompletedDate pgtype.Date    `json:"completed_date"`
}

// Global field names for validation
const (
	FieldTitleEN       = "title_en"
	FieldTitleID       = "title_id"
	FieldSummaryEN     = "summary_en"
	FieldSummaryID     = "summary_id"
	FieldDescriptionEN = "description_en"
	FieldDescriptionID = "description_id"
	FieldClientName    = "client_name"
	FieldIndustry      = "industry"
	FieldImageURL      = "image_url"
	FieldMetricsEN     = "metrics_en"
	FieldMetricsID     = "metrics_id"
	FieldTechnologies  = "technologies"
	FieldIsFeatured    = "is_featured"
	FieldIsActive      = "is_active"
)

// New returns a project with the creation defaults applied.
func New() *Project {
	return &Project{IsActive: true}
}

// Translation implements [i18n.Translatable].
func (p *Project) Translation(field string) (any, any, bool) {
	switch field {
	case "title":
		return p.TitleEN, p.TitleID, true
	case "summary":
		return p.SummaryEN, p.SummaryID, true
	case "description":
		return p.DescriptionEN, p.DescriptionID, true
	case "metrics":
		return orEmpty(p.MetricsEN), orEmpty(p.MetricsID), true
	}
	return nil, nil, false
}

// Visible implements [content.Entity].
func (p *Project) Visible() bool { return p.IsActive }

// Attributes implements [content.Entity].
func (p *Project) Attributes() map[string]any {
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	return map[string]any{
		"client_name":    p.ClientName,
		"industry":       p.Industry,
		"technologies":   technologies,
		"image_url":      p.ImageURL,
		"is_featured":    p.IsFeatured,
		"completed_date": p.CompletedDate,
	}
}

// Validate implements [content.Entity].
func (p *Project) Validate(v *validate.Validator) {
	v.Required(FieldTitleEN, p.TitleEN).MaxLen(FieldTitleEN, p.TitleEN, 200)
	v.Required(FieldTitleID, p.TitleID).MaxLen(FieldTitleID, p.TitleID, 200)
	v.Required(FieldSummaryEN, p.SummaryEN)
	v.Required(FieldSummaryID, p.SummaryID)
	v.Required(FieldDescriptionEN, p.DescriptionEN)
	v.Required(FieldDescriptionID, p.DescriptionID)
	v.Paired(FieldMetricsEN, p.MetricsEN != nil, FieldMetricsID, p.MetricsID != nil)

	if p.ClientName != nil {
		v.MaxLen(FieldClientName, *p.ClientName, 200)
	}
	if p.Industry != nil {
		v.MaxLen(FieldIndustry, *p.Industry, 100)
	}
	if p.ImageURL != nil {
		v.MaxLen(FieldImageURL, *p.ImageURL, 500).URL(FieldImageURL, *p.ImageURL)
	}
}

// Patch is a partial project update. Absent keys leave the field untouched.
type Patch struct {
	TitleEN       optional.Value[string]         `json:"title_en"`
	TitleID       optional.Value[string]         `json:"title_id"`
	Slug          optional.Value[string]         `json:"slug"`
	SummaryEN     optional.Value[string]         `json:"summary_en"`
	SummaryID     optional.Value[string]         `json:"summary_id"`
	DescriptionEN optional.Value[string]         `json:"description_en"`
	DescriptionID optional.Value[string]         `json:"description_id"`
	ClientName    optional.Value[string]         `json:"client_name"`
	Industry      optional.Value[string]         `json:"industry"`
	Technologies  optional.Value[[]string]       `json:"technologies"`
	ImageURL      optional.Value[string]         `json:"image_url"`
	MetricsEN     optional.Value[map[string]any] `json:"metrics_en"`
	MetricsID     optional.Value[map[string]any] `json:"metrics_id"`
	IsFeatured    optional.Value[bool]           `json:"is_featured"`
	IsActive      optional.Value[bool]           `json:"is_active"`
	CompletedDate optional.Value[pgtype.Date]    `json:"completed_date"`
}

// ApplyTo implements [content.Patch].
func (patch *Patch) ApplyTo(p *Project) error {
	err := content.RejectNulls(
		content.NotNull(FieldTitleEN, patch.TitleEN),
		content.NotNull(FieldTitleID, patch.TitleID),
		content.NotNull(content.FieldSlug, patch.Slug),
		content.NotNull(FieldSummaryEN, patch.SummaryEN),
		content.NotNull(FieldSummaryID, patch.SummaryID),
		content.NotNull(FieldDescriptionEN, patch.DescriptionEN),
		content.NotNull(FieldDescriptionID, patch.DescriptionID),
		content.NotNull(FieldTechnologies, patch.Technologies),
		content.NotNull(FieldMetricsEN, patch.MetricsEN),
		content.NotNull(FieldMetricsID, patch.MetricsID),
		content.NotNull(FieldIsFeatured, patch.IsFeatured),
		content.NotNull(FieldIsActive, patch.IsActive),
	)
	if err != nil {
		return err
	}

	patch.TitleEN.Apply(&p.TitleEN)
	patch.TitleID.Apply(&p.TitleID)
	patch.Slug.Apply(&p.Slug)
	patch.SummaryEN.Apply(&p.SummaryEN)
	patch.SummaryID.Apply(&p.SummaryID)
	patch.DescriptionEN.Apply(&p.DescriptionEN)
	patch.DescriptionID.Apply(&p.DescriptionID)
	patch.ClientName.ApplyPtr(&p.ClientName)
	patch.Industry.ApplyPtr(&p.Industry)
	patch.Technologies.Apply(&p.Technologies)
	patch.ImageURL.ApplyPtr(&p.ImageURL)
	patch.MetricsEN.Apply(&p.MetricsEN)
	patch.MetricsID.Apply(&p.MetricsID)
	patch.IsFeatured.Apply(&p.IsFeatured)
	patch.IsActive.Apply(&p.IsActive)

	// A null date is an explicit "not completed"; the zero pgtype.Date is NULL.
	patch.CompletedDate.Apply(&p.CompletedDate)
	return nil
}

func orEmpty(metrics map[string]any) map[string]any {
	if metrics == nil {
		return map[string]any{}
	}
	return metrics
}
