// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package category manages the bilingual categories of tutorials and blog posts.

It has two faces:

  - Resolution: turning a category id into its language-projected reference
    for content views, and listing the categories of a type. Lookups always
    hit storage; nothing is cached.
  - Administration: CRUD with the rule that a referenced category keeps its
    slug and type and cannot be deleted.
*/
package category

import (
	"time"

	"github.com/wiwekaitech/wiweka/pkg/optional"
)

// Type is the content kind a category groups.
type Type string

const (
	TypeTutorial Type = "tutorial"
	TypeBlog     Type = "blog"
)

// Valid reports whether t is a known category type.
func (t Type) Valid() bool {
	return t == TypeTutorial || t == TypeBlog
}

// Category is a stored category with both names.
type Category struct {
	ID        int64     `json:"id"`
	NameEN    string    `json:"name_en"`
	NameID    string    `json:"name_id"`
	Slug      string    `json:"slug"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Ref is the language-projected category embedded in content views.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Type Type   `json:"type"`
}

// Patch is a partial category update.
type Patch struct {
	NameEN optional.Value[string] `json:"name_en"`
	NameID optional.Value[string] `json:"name_id"`
	Slug   optional.Value[string] `json:"slug"`
	Type   optional.Value[Type]   `json:"type"`
}

// Global field names for validation
const (
	FieldNameEN = "name_en"
	FieldNameID = "name_id"
	FieldSlug   = "slug"
	FieldType   = "type"
)
