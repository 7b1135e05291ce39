// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content

import (
	"context"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
)

// Order is the list ordering of a content kind.
//
// Rows with a NULL order value sort last in both directions; ties are broken
// by id in the same direction.
type Order struct {
	Column     string
	Descending bool
}

// Schema describes one content kind to the generic layer.
type Schema[T Entity] struct {

	// Resource is the human name used in errors ("Blog post" → BLOG_POST_NOT_FOUND).
	Resource string

	// Table is the storage table.
	Table string

	// Columns are the writable columns, slug included, id and timestamps excluded.
	// [Schema.Values] and [Schema.Targets] follow the same order.
	Columns []string

	// Visibility is the boolean column gating public reads.
	Visibility string

	// Order is shared by public and admin lists.
	Order Order

	// Bilingual lists the logical translated fields ("title" for title_en/title_id).
	Bilingual []string

	// Body lists the logical fields only shown in the detail view.
	Body []string

	// SlugSource names the bilingual field whose English value seeds an empty slug.
	SlugSource string

	// New allocates an empty entity.
	New func() T

	// Values returns the column values of an entity, aligned with Columns.
	Values func(entity T) []any

	// Targets returns scan destinations into an entity, aligned with Columns.
	Targets func(entity T) []any

	// Normalize runs before validation on create and update. Optional.
	Normalize func(entity T, now time.Time)

	// BeforeSave runs after validation, for checks that need storage. Optional.
	BeforeSave func(ctx context.Context, entity T) error

	// Enrich adds derived fields to a projection. Optional.
	Enrich func(ctx context.Context, entity T, lang i18n.Lang, view map[string]any) error
}

// columnIndex returns the position of column in Columns, or -1.
func (s Schema[T]) columnIndex(column string) int {
	for index, candidate := range s.Columns {
		if candidate == column {
			return index
		}
	}
	return -1
}
