// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package category

import "context"

// Repository persists categories. A missing row is CATEGORY_NOT_FOUND.
type Repository interface {
	FindByID(context context.Context, id int64) (*Category, error)
	FindBySlug(context context.Context, slug string) (*Category, error)

	// ListByType returns categories ordered by English name. An empty type lists all.
	ListByType(context context.Context, categoryType Type) ([]*Category, error)

	SlugTaken(context context.Context, slug string, excludeID int64) (bool, error)

	// InUse reports whether any tutorial or blog post references the category.
	InUse(context context.Context, id int64) (bool, error)

	Create(context context.Context, category *Category) error
	Update(context context.Context, category *Category) error
	Delete(context context.Context, id int64) error
}
