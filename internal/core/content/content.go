// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package content implements the lifecycle shared by every publishable kind of
the CMS: products, projects, tutorials and blog posts.

Each kind is a plain struct in its own package that satisfies [Entity] and is
described by a [Schema]. The generic [Service], [Repository] and [Handler]
do the rest:

  - Public reads: visible rows only, entity ordering, paginated.
  - Admin reads: every row, unpaginated.
  - Writes: validation, slug uniqueness, partial updates via [Patch].
  - Projection: bilingual fields collapse to the requested language and the
    body fields are dropped from list views.
*/
package content

import (
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
)

// Record holds the columns every content table shares.
type Record struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Base returns the record itself so embedding structs satisfy [Entity.Base].
func (r *Record) Base() *Record { return r }

// Entity is a content row the generic layer can store and project.
//
// Implementations are pointer types (*product.Product).
type Entity interface {
	i18n.Translatable

	// Base exposes the shared columns.
	Base() *Record

	// Visible reports whether the row is served on public endpoints.
	Visible() bool

	// Attributes returns the untranslated fields of the public projection.
	Attributes() map[string]any

	// Validate adds field errors for the entity's own rules.
	Validate(v *validate.Validator)
}

// Patch is a partial update decoded from an admin request.
//
// ApplyTo leaves entity untouched when it returns an error.
type Patch[T Entity] interface {
	ApplyTo(entity T) error
}

// FieldSlug is the slug field shared by every content kind.
const FieldSlug = "slug"

// Nullable is satisfied by every [optional.Value].
type Nullable interface {
	IsNull() bool
}

// NonNull names a patch field that cannot be cleared.
type NonNull struct {
	Field string
	Value Nullable
}

// NotNull pairs field with its decoded patch value.
func NotNull(field string, value Nullable) NonNull {
	return NonNull{Field: field, Value: value}
}

// RejectNulls fails with VALIDATION_ERROR listing every field sent as an
// explicit JSON null.
func RejectNulls(fields ...NonNull) error {
	var validator validate.Validator
	for _, field := range fields {
		validator.Custom(field.Field, field.Value.IsNull(), "Must not be null")
	}
	return validator.Err()
}

// # Conditions

// Operator is the comparison a [Condition] applies.
type Operator int

const (
	// OpEqual matches rows whose column equals the value.
	OpEqual Operator = iota
	// OpContains matches rows whose array column holds the value.
	OpContains
	// OpNever matches no row. Used when a filter references something that does not exist.
	OpNever
)

// Condition restricts a list query to matching rows.
type Condition struct {
	Column   string
	Operator Operator
	Value    any
}

// Eq builds an [OpEqual] condition.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Operator: OpEqual, Value: value}
}

// Contains builds an [OpContains] condition.
func Contains(column string, value string) Condition {
	return Condition{Column: column, Operator: OpContains, Value: value}
}

// Never builds an [OpNever] condition.
func Never() Condition {
	return Condition{Operator: OpNever}
}

// Query selects rows for a list.
type Query struct {
	VisibleOnly bool
	Conditions  []Condition
}
