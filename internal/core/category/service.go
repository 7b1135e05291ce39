// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/slice"
	"github.com/wiwekaitech/wiweka/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Resolution

/*
GetByID resolves a category reference for a content view.

Parameters:
  - id: The referenced category; nil means "no category"

Returns:
  - *Ref: The projected category, or nil if id is nil or no such row exists
  - error: Storage failures and unsupported languages only
*/
func (service *Service) GetByID(context context.Context, id *int64, lang i18n.Lang) (*Ref, error) {
	if id == nil {
		return nil, nil
	}

	category, err := service.repo.FindByID(context, *id)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("category_service_get_by_id_failed: %w", err)
	}

	return Format(category, lang)
}

// GetByType lists the categories of one type, projected onto lang.
func (service *Service) GetByType(context context.Context, categoryType Type, lang i18n.Lang) ([]Ref, error) {
	if !categoryType.Valid() {
		return nil, validate.RequiredError(FieldType, "Must be one of: tutorial, blog")
	}
	if !lang.Valid() {
		return nil, apperr.UnsupportedLanguage(string(lang)).WithCause(i18n.ErrUnsupportedLanguage)
	}

	categories, err := service.repo.ListByType(context, categoryType)
	if err != nil {
		return nil, fmt.Errorf("category_service_get_by_type_failed: %w", err)
	}

	return slice.Map(categories, func(c *Category) Ref {
		name, _ := i18n.Select(c.NameEN, c.NameID, lang)
		return Ref{ID: c.ID, Name: name, Slug: c.Slug, Type: c.Type}
	}), nil
}

// FindBySlug resolves a category slug of the given type, or nil when there is none.
func (service *Service) FindBySlug(context context.Context, slugValue string, categoryType Type) (*Category, error) {
	category, err := service.repo.FindBySlug(context, slugValue)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("category_service_find_by_slug_failed: %w", err)
	}
	if category.Type != categoryType {
		return nil, nil
	}
	return category, nil
}

// Require fails with a category_id validation error unless id names a category of categoryType.
func (service *Service) Require(context context.Context, id int64, categoryType Type) error {
	category, err := service.repo.FindByID(context, id)
	if apperr.IsNotFound(err) {
		return validate.RequiredError("category_id", "Category does not exist")
	}
	if err != nil {
		return fmt.Errorf("category_service_require_failed: %w", err)
	}
	if category.Type != categoryType {
		return validate.RequiredError("category_id", fmt.Sprintf("Category must be a %s category", categoryType))
	}
	return nil
}

// Format projects a category onto lang.
func Format(category *Category, lang i18n.Lang) (*Ref, error) {
	name, err := i18n.Select(category.NameEN, category.NameID, lang)
	if err != nil {
		return nil, err
	}
	return &Ref{ID: category.ID, Name: name, Slug: category.Slug, Type: category.Type}, nil
}

// # Administration

// List returns stored categories, optionally restricted to one type.
func (service *Service) List(context context.Context, categoryType Type) ([]*Category, error) {
	if categoryType != "" && !categoryType.Valid() {
		return nil, validate.RequiredError(FieldType, "Must be one of: tutorial, blog")
	}
	return service.repo.ListByType(context, categoryType)
}

// Get returns a stored category.
func (service *Service) Get(context context.Context, id int64) (*Category, error) {
	return service.repo.FindByID(context, id)
}

/*
Create validates and stores a category.

Returns:
  - error: VALIDATION_ERROR or DUPLICATE_SLUG
*/
func (service *Service) Create(context context.Context, category *Category) error {
	if strings.TrimSpace(category.Slug) == "" {
		category.Slug = slug.From(category.NameEN)
	}

	if err := validateCategory(category); err != nil {
		return err
	}

	taken, err := service.repo.SlugTaken(context, category.Slug, 0)
	if err != nil {
		return fmt.Errorf("category_service_create_failed: %w", err)
	}
	if taken {
		return apperr.DuplicateSlug(resource)
	}

	if err := service.repo.Create(context, category); err != nil {
		return fmt.Errorf("category_service_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "category_created",
		slog.Int64("category_id", category.ID),
		slog.String("slug", category.Slug),
	)
	return nil
}

/*
Update applies a partial patch.

Names may always change. Slug and type are frozen while any tutorial or blog
post references the category, since public links and type checks depend on them.
*/
func (service *Service) Update(context context.Context, id int64, patch *Patch) (*Category, error) {
	category, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	previousSlug, previousType := category.Slug, category.Type

	var nulls validate.Validator
	nulls.Custom(FieldNameEN, patch.NameEN.IsNull(), "Must not be null")
	nulls.Custom(FieldNameID, patch.NameID.IsNull(), "Must not be null")
	nulls.Custom(FieldSlug, patch.Slug.IsNull(), "Must not be null")
	nulls.Custom(FieldType, patch.Type.IsNull(), "Must not be null")
	if err := nulls.Err(); err != nil {
		return nil, err
	}

	patch.NameEN.Apply(&category.NameEN)
	patch.NameID.Apply(&category.NameID)
	patch.Slug.Apply(&category.Slug)
	patch.Type.Apply(&category.Type)

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	identityChanged := category.Slug != previousSlug || category.Type != previousType
	if identityChanged {
		used, err := service.repo.InUse(context, id)
		if err != nil {
			return nil, fmt.Errorf("category_service_update_failed: %w", err)
		}
		if used {
			return nil, apperr.Conflict("Category is in use; its slug and type cannot change")
		}
	}

	if category.Slug != previousSlug {
		taken, err := service.repo.SlugTaken(context, category.Slug, id)
		if err != nil {
			return nil, fmt.Errorf("category_service_update_failed: %w", err)
		}
		if taken {
			return nil, apperr.DuplicateSlug(resource)
		}
	}

	if err := service.repo.Update(context, category); err != nil {
		return nil, fmt.Errorf("category_service_update_failed: %w", err)
	}

	service.logger.InfoContext(context, "category_updated", slog.Int64("category_id", id))
	return category, nil
}

// Delete removes an unreferenced category.
func (service *Service) Delete(context context.Context, id int64) error {
	if _, err := service.repo.FindByID(context, id); err != nil {
		return err
	}

	used, err := service.repo.InUse(context, id)
	if err != nil {
		return fmt.Errorf("category_service_delete_failed: %w", err)
	}
	if used {
		return apperr.Conflict("Category is in use by tutorials or blog posts")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "category_deleted", slog.Int64("category_id", id))
	return nil
}

func validateCategory(category *Category) error {
	validator := &validate.Validator{}

	validator.Required(FieldNameEN, category.NameEN).MaxLen(FieldNameEN, category.NameEN, 100)
	validator.Required(FieldNameID, category.NameID).MaxLen(FieldNameID, category.NameID, 100)
	validator.Required(FieldSlug, category.Slug).MaxLen(FieldSlug, category.Slug, 100)
	if category.Slug != "" {
		validator.Slug(FieldSlug, category.Slug)
	}
	validator.OneOf(FieldType, string(category.Type), string(TypeTutorial), string(TypeBlog))

	return validator.Err()
}
