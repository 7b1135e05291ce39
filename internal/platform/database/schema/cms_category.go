// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package schema

// CategoryTable represents the 'categories' table
type CategoryTable struct {
	Table     string
	ID        string
	NameEN    string
	NameID    string
	Slug      string
	Type      string
	CreatedAt string
}

// Category is the schema definition for categories
var Category = CategoryTable{
	Table:     "categories",
	ID:        "id",
	NameEN:    "name_en",
	NameID:    "name_id",
	Slug:      "slug",
	Type:      "type",
	CreatedAt: "created_at",
}

// Columns returns all standard column names
func (t CategoryTable) Columns() []string {
	return []string{t.ID, t.NameEN, t.NameID, t.Slug, t.Type, t.CreatedAt}
}
