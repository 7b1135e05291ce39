// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// resource names the entity in client messages ("Product", "Blog post").
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Already classified
	if apperr.IsAppError(err) {
		return err
	}

	// 2. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource).WithCause(err)
	}

	// 3. Constraint violations
	if constraint, ok := UniqueViolation(err); ok {
		switch constraint {
		case "users_username_key":
			return apperr.DuplicateUsername().WithCause(err)
		case "users_email_key":
			return apperr.DuplicateEmail().WithCause(err)
		}
		if isSlugConstraint(constraint) {
			return apperr.DuplicateSlug(resource).WithCause(err)
		}
		return apperr.Conflict(resource + " already exists").WithCause(err)
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgerrcode.ForeignKeyViolation {
		return apperr.ValidationError("Referenced record does not exist").WithCause(err)
	}

	// 4. Unknown query errors become storage failures
	return apperr.StorageFailure(err)
}

// UniqueViolation reports whether err is SQLSTATE 23505 and names the constraint.
func UniqueViolation(err error) (string, bool) {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
		return pgError.ConstraintName, true
	}
	return "", false
}

// isSlugConstraint matches the "<table>_slug_key" names Postgres generates
// for UNIQUE slug columns.
func isSlugConstraint(name string) bool {
	const suffix = "_slug_key"
	return len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix
}
