// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package product_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/core/content"
	"github.com/wiwekaitech/wiweka/internal/core/product"
	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/i18n"
	"github.com/wiwekaitech/wiweka/pkg/optional"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
)

func newService() *product.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return product.NewService(content.NewMemoryRepository(product.Schema), logger)
}

func erp(order int) *product.Product {
	p := product.New()
	p.Slug = "erp-system"
	p.TitleEN, p.TitleID = "ERP System", "Sistem ERP"
	p.DescriptionEN, p.DescriptionID = "Integrated planning", "Perencanaan terpadu"
	p.FeaturesEN, p.FeaturesID = []string{"Inventory"}, []string{"Inventaris"}
	p.DisplayOrder = order
	return p
}

/*
TestProduct_DuplicateSlug keeps the first product and rejects the second.
*/
func TestProduct_DuplicateSlug(t *testing.T) {
	service := newService()
	ctx := context.Background()

	first, err := service.Create(ctx, erp(1))
	require.NoError(t, err)

	_, err = service.Create(ctx, erp(2))
	assert.True(t, apperr.HasCode(err, "DUPLICATE_SLUG"))

	view, err := service.GetBySlug(ctx, "erp-system", i18n.English)
	require.NoError(t, err)
	assert.Equal(t, first.ID, view["id"])
	assert.Equal(t, "ERP System", view["title"])
	assert.Equal(t, []string{"Inventory"}, view["features"])
	assert.Equal(t, 1, view["display_order"])
}

/*
TestProduct_ListOrderAndShape orders by display_order and drops only the description.
*/
func TestProduct_ListOrderAndShape(t *testing.T) {
	service := newService()
	ctx := context.Background()

	for slug, order := range map[string]int{"crm": 3, "hris": 1, "pos": 2} {
		p := erp(order)
		p.Slug = slug
		_, err := service.Create(ctx, p)
		require.NoError(t, err)
	}

	inactive := erp(0)
	inactive.Slug = "legacy"
	inactive.IsActive = false
	_, err := service.Create(ctx, inactive)
	require.NoError(t, err)

	page, err := service.ListPublic(ctx, i18n.Indonesian, pagination.New(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	slugs := []any{page.Items[0]["slug"], page.Items[1]["slug"], page.Items[2]["slug"]}
	assert.Equal(t, []any{"hris", "pos", "crm"}, slugs)

	assert.Equal(t, "Sistem ERP", page.Items[0]["title"])
	assert.NotContains(t, page.Items[0], "description")
	assert.Equal(t, []string{"Inventaris"}, page.Items[0]["features"])
}

/*
TestProduct_Validate requires both language variants.
*/
func TestProduct_Validate(t *testing.T) {
	service := newService()

	p := erp(0)
	p.FeaturesID = nil
	p.DescriptionID = ""

	_, err := service.Create(context.Background(), p)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	fields := []string{}
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{product.FieldDescriptionID, product.FieldFeaturesID}, fields)
}

/*
TestProduct_UpdateRejectsNull keeps is_active and display_order when sent as null.
*/
func TestProduct_UpdateRejectsNull(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.Create(ctx, erp(4))
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, &product.Patch{
		IsActive:     optional.Null[bool](),
		DisplayOrder: optional.Null[int](),
		Icon:         optional.Null[string](),
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	fields := []string{}
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{product.FieldIsActive, product.FieldDisplayOrder}, fields)

	stored, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
	assert.Equal(t, 4, stored.DisplayOrder)

	// icon is nullable
	updated, err := service.Update(ctx, created.ID, &product.Patch{Icon: optional.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.Icon)
}
