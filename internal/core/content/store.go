// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content

import "context"

// Repository persists one content kind.
//
// Lookups of a missing row return an apperr NOT_FOUND error for the schema's
// resource; a slug collision on write returns DUPLICATE_SLUG.
type Repository[T Entity] interface {
	Count(context context.Context, query Query) (int, error)

	// List returns rows in schema order. A negative limit returns every row.
	List(context context.Context, query Query, offset, limit int) ([]T, error)

	FindBySlug(context context.Context, slug string, visibleOnly bool) (T, error)
	FindByID(context context.Context, id int64) (T, error)

	// SlugTaken reports whether a row other than excludeID uses slug.
	SlugTaken(context context.Context, slug string, excludeID int64) (bool, error)

	// Create stores entity and fills its id and timestamps.
	Create(context context.Context, entity T) error

	// Update rewrites every writable column of entity and refreshes UpdatedAt.
	Update(context context.Context, entity T) error

	Delete(context context.Context, id int64) error
}
