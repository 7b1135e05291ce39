// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
	"github.com/wiwekaitech/wiweka/pkg/slug"
)

// View is the language-projected shape of an entity served to clients.
type View = map[string]any

// Service implements the content lifecycle for one kind.
type Service[T Entity] struct {
	schema Schema[T]
	repo   Repository[T]
	logger *slog.Logger
	now    func() time.Time
	event  string
}

// NewService wires a schema to its repository.
func NewService[T Entity](schema Schema[T], repo Repository[T], logger *slog.Logger) *Service[T] {
	return &Service[T]{
		schema: schema,
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		event:  strings.ReplaceAll(strings.ToLower(schema.Resource), " ", "_"),
	}
}

// Schema returns the kind description the service was built with.
func (service *Service[T]) Schema() Schema[T] { return service.schema }

// # Public Reads

/*
ListPublic returns one page of visible rows in the list shape.

Parameters:
  - lang: Projection language
  - params: Requested page (normalized here)
  - conditions: Kind-specific filters

Returns:
  - pagination.Result[View]: Items plus totals of the filtered set
  - error: Storage or projection failures
*/
func (service *Service[T]) ListPublic(ctx context.Context, lang i18n.Lang, params pagination.Params, conditions ...Condition) (pagination.Result[View], error) {
	query := Query{VisibleOnly: true, Conditions: conditions}

	page, err := pagination.Paginate(ctx, pagination.Funcs[T]{
		CountFunc: func(ctx context.Context) (int, error) {
			return service.repo.Count(ctx, query)
		},
		WindowFunc: func(ctx context.Context, offset, limit int) ([]T, error) {
			return service.repo.List(ctx, query, offset, limit)
		},
	}, params)
	if err != nil {
		return pagination.Result[View]{}, fmt.Errorf("%s_service_list_public_failed: %w", service.event, err)
	}

	views, err := service.formatAll(ctx, page.Items, lang)
	if err != nil {
		return pagination.Result[View]{}, err
	}

	return pagination.Result[View]{Items: views, Meta: page.Meta}, nil
}

/*
GetBySlug returns a visible row in the detail shape.

Returns:
  - View: The projected entity
  - error: <RESOURCE>_NOT_FOUND when the slug is unknown or the row is hidden
*/
func (service *Service[T]) GetBySlug(context context.Context, slug string, lang i18n.Lang) (View, error) {
	entity, err := service.repo.FindBySlug(context, slug, true)
	if err != nil {
		return nil, err
	}
	return service.Format(context, entity, lang, true)
}

// # Admin Reads

// ListAdmin returns every row, hidden ones included, in the admin list shape.
func (service *Service[T]) ListAdmin(context context.Context, lang i18n.Lang) ([]View, error) {
	entities, err := service.repo.List(context, Query{}, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("%s_service_list_admin_failed: %w", service.event, err)
	}

	views := make([]View, 0, len(entities))
	for _, entity := range entities {
		view, err := service.FormatAdmin(context, entity, lang)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetByID returns the raw bilingual entity regardless of visibility.
func (service *Service[T]) GetByID(context context.Context, id int64) (T, error) {
	return service.repo.FindByID(context, id)
}

// # Writes

/*
Create validates and stores a new entity.

An empty slug is derived from the English value of the schema's slug source.

Returns:
  - T: The stored entity with id and timestamps filled in
  - error: VALIDATION_ERROR or DUPLICATE_SLUG
*/
func (service *Service[T]) Create(context context.Context, entity T) (T, error) {
	var zero T
	base := entity.Base()

	if strings.TrimSpace(base.Slug) == "" {
		base.Slug = service.deriveSlug(entity)
	}

	if err := service.check(context, entity); err != nil {
		return zero, err
	}

	if err := service.ensureSlugFree(context, base.Slug, 0); err != nil {
		return zero, err
	}

	if err := service.repo.Create(context, entity); err != nil {
		return zero, fmt.Errorf("%s_service_create_failed: %w", service.event, err)
	}

	service.logger.InfoContext(context, service.event+"_created",
		slog.Int64("id", base.ID),
		slog.String("slug", base.Slug),
	)
	return entity, nil
}

/*
Update applies a partial patch to an existing row.

Only the fields present in the patch change. A slug change is checked
against every other row of the kind.

Returns:
  - T: The stored entity after the update
  - error: <RESOURCE>_NOT_FOUND, VALIDATION_ERROR or DUPLICATE_SLUG
*/
func (service *Service[T]) Update(context context.Context, id int64, patch Patch[T]) (T, error) {
	var zero T

	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return zero, err
	}

	previousSlug := entity.Base().Slug
	if err := patch.ApplyTo(entity); err != nil {
		return zero, err
	}

	base := entity.Base()
	base.ID = id

	if err := service.check(context, entity); err != nil {
		return zero, err
	}

	if base.Slug != previousSlug {
		if err := service.ensureSlugFree(context, base.Slug, id); err != nil {
			return zero, err
		}
	}

	if err := service.repo.Update(context, entity); err != nil {
		return zero, fmt.Errorf("%s_service_update_failed: %w", service.event, err)
	}

	service.logger.InfoContext(context, service.event+"_updated", slog.Int64("id", id))
	return entity, nil
}

// Delete removes a row. A missing row is <RESOURCE>_NOT_FOUND.
func (service *Service[T]) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, service.event+"_deleted", slog.Int64("id", id))
	return nil
}

// # Projection

/*
Format projects an entity onto one language.

The view holds the id and slug, the bilingual fields in lang, the plain
attributes and any schema enrichment. Body fields are only kept when detail
is true.
*/
func (service *Service[T]) Format(context context.Context, entity T, lang i18n.Lang, detail bool) (View, error) {
	fields := service.schema.Bilingual
	if !detail {
		fields = service.listFields()
	}

	view, err := i18n.FormatTranslations(entity, fields, lang)
	if err != nil {
		return nil, err
	}

	base := entity.Base()
	view["id"] = base.ID
	view["slug"] = base.Slug
	for key, value := range entity.Attributes() {
		view[key] = value
	}

	if service.schema.Enrich != nil {
		if err := service.schema.Enrich(context, entity, lang, view); err != nil {
			return nil, fmt.Errorf("%s_service_enrich_failed: %w", service.event, err)
		}
	}

	return view, nil
}

// FormatAdmin is the list shape plus the visibility flag and timestamps.
func (service *Service[T]) FormatAdmin(context context.Context, entity T, lang i18n.Lang) (View, error) {
	view, err := service.Format(context, entity, lang, false)
	if err != nil {
		return nil, err
	}

	base := entity.Base()
	view[service.schema.Visibility] = entity.Visible()
	view["created_at"] = base.CreatedAt
	view["updated_at"] = base.UpdatedAt
	return view, nil
}

// # Internal

func (service *Service[T]) formatAll(context context.Context, entities []T, lang i18n.Lang) ([]View, error) {
	views := make([]View, 0, len(entities))
	for _, entity := range entities {
		view, err := service.Format(context, entity, lang, false)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// listFields is Bilingual minus Body.
func (service *Service[T]) listFields() []string {
	fields := make([]string, 0, len(service.schema.Bilingual))
	for _, field := range service.schema.Bilingual {
		if !slices.Contains(service.schema.Body, field) {
			fields = append(fields, field)
		}
	}
	return fields
}

// check normalizes, validates and runs the storage-backed checks of the schema.
func (service *Service[T]) check(context context.Context, entity T) error {
	if service.schema.Normalize != nil {
		service.schema.Normalize(entity, service.now())
	}

	validator := &validate.Validator{}
	slugValue := entity.Base().Slug
	validator.Required(FieldSlug, slugValue).MaxLen(FieldSlug, slugValue, slug.MaxLength)
	if slugValue != "" {
		validator.Slug(FieldSlug, slugValue)
	}
	entity.Validate(validator)

	if err := validator.Err(); err != nil {
		return err
	}

	if service.schema.BeforeSave != nil {
		return service.schema.BeforeSave(context, entity)
	}
	return nil
}

func (service *Service[T]) ensureSlugFree(context context.Context, slugValue string, excludeID int64) error {
	taken, err := service.repo.SlugTaken(context, slugValue, excludeID)
	if err != nil {
		return fmt.Errorf("%s_service_slug_check_failed: %w", service.event, err)
	}
	if taken {
		return apperr.DuplicateSlug(service.schema.Resource)
	}
	return nil
}

func (service *Service[T]) deriveSlug(entity T) string {
	if service.schema.SlugSource == "" {
		return ""
	}
	en, _, ok := entity.Translation(service.schema.SlugSource)
	if !ok {
		return ""
	}
	title, _ := en.(string)
	return slug.From(title)
}
