// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package schema

// ProjectTable represents the 'projects' table
type ProjectTable struct {
	Table         string
	ID            string
	TitleEN       string
	TitleID       string
	Slug          string
	SummaryEN     string
	SummaryID     string
	DescriptionEN string
	DescriptionID string
	ClientName    string
	Industry      string
	Technologies  string
	ImageURL      string
	MetricsEN     string
	MetricsID     string
	IsFeatured    string
	IsActive      string
	CompletedDate string
	CreatedAt     string
	UpdatedAt     string
}

// Project is the schema definition for projects
var Project = ProjectTable{
	Table:         "projects",
	ID:            "id",
	TitleEN:       "title_en",
	TitleID:       "title_id",
	Slug:          "slug",
	SummaryEN:     "summary_en",
	SummaryID:     "summary_id",
	DescriptionEN: "description_en",
	DescriptionID: "description_id",
	ClientName:    "client_name",
	Industry:      "industry",
	Technologies:  "technologies",
	ImageURL:      "image_url",
	MetricsEN:     "metrics_en",
	MetricsID:     "metrics_id",
	IsFeatured:    "is_featured",
	IsActive:      "is_active",
	CompletedDate: "completed_date",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Writable returns the columns set on insert and update, id and timestamps excluded.
func (t ProjectTable) Writable() []string {
	return []string{
		t.TitleEN, t.TitleID, t.Slug, t.SummaryEN, t.SummaryID,
		t.DescriptionEN, t.DescriptionID, t.ClientName, t.Industry,
		t.Technologies, t.ImageURL, t.MetricsEN, t.MetricsID,
		t.IsFeatured, t.IsActive, t.CompletedDate,
	}
}
