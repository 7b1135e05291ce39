// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/dberr"
)

/*
TestWrap classifies driver errors into application errors.
*/
func TestWrap(t *testing.T) {
	unique := func(constraint string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint})
	}

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no_rows", pgx.ErrNoRows, "PRODUCT_NOT_FOUND"},
		{"slug", unique("products_slug_key"), "DUPLICATE_SLUG"},
		{"username", unique("users_username_key"), "DUPLICATE_USERNAME"},
		{"email", unique("users_email_key"), "DUPLICATE_EMAIL"},
		{"other_unique", unique("categories_pkey"), "CONFLICT"},
		{"foreign_key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "VALIDATION_ERROR"},
		{"unknown", errors.New("connection reset"), "STORAGE_FAILURE"},
		{"passthrough", apperr.Forbidden("no"), "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, apperr.HasCode(dberr.Wrap(tt.err, "Product"), tt.code))
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "Product"))
}
