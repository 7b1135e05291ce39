// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package schema

// ProductTable represents the 'products' table
type ProductTable struct {
	Table         string
	ID            string
	TitleEN       string
	TitleID       string
	Slug          string
	DescriptionEN string
	DescriptionID string
	Icon          string
	FeaturesEN    string
	FeaturesID    string
	DisplayOrder  string
	IsActive      string
	CreatedAt     string
	UpdatedAt     string
}

// Product is the schema definition for products
var Product = ProductTable{
	Table:         "products",
	ID:            "id",
	TitleEN:       "title_en",
	TitleID:       "title_id",
	Slug:          "slug",
	DescriptionEN: "description_en",
	DescriptionID: "description_id",
	Icon:          "icon",
	FeaturesEN:    "features_en",
	FeaturesID:    "features_id",
	DisplayOrder:  "display_order",
	IsActive:      "is_active",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Writable returns the columns set on insert and update, id and timestamps excluded.
func (t ProductTable) Writable() []string {
	return []string{
		t.TitleEN, t.TitleID, t.Slug, t.DescriptionEN, t.DescriptionID,
		t.Icon, t.FeaturesEN, t.FeaturesID, t.DisplayOrder, t.IsActive,
	}
}
