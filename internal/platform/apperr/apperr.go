// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package apperr defines the centralized error handling framework for the API.

It provides a rich error type that bridges the gap between low-level domain and
storage errors and the uniform `{success: false, error: {...}}` HTTP envelope.

Architecture:

  - AppError: machine-readable Code plus a client-safe Message.
  - Mapping: every constructor fixes the HTTP status the error is surfaced with.
  - Cause: the wrapped internal error, logged server-side and never sent to clients.

Every error that leaves the service layer should be an [AppError]; anything
else is treated as an unexpected internal failure by the response writer.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is the canonical error type for the API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "PRODUCT_NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause returns a copy of e carrying cause.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Blog post") // BLOG_POST_NOT_FOUND, "Blog post not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       codeFor(resource) + "_NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// NotAuthenticated creates a 401 [AppError] for requests carrying no credential.
func NotAuthenticated() *AppError {
	return &AppError{
		Code:       "NOT_AUTHENTICATED",
		Message:    "Not authenticated",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidCredential creates a 401 [AppError] for a rejected credential.
func InvalidCredential() *AppError {
	return &AppError{
		Code:       "INVALID_CREDENTIAL",
		Message:    "Invalid or expired credential",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Unauthorized creates a 401 [AppError] with a custom message.
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// DuplicateSlug creates a 409 [AppError] for a slug already used by another row.
func DuplicateSlug(resource string) *AppError {
	return &AppError{
		Code:       "DUPLICATE_SLUG",
		Message:    resource + " with this slug already exists",
		HTTPStatus: http.StatusConflict,
	}
}

// DuplicateUsername creates a 409 [AppError] for a taken username.
func DuplicateUsername() *AppError {
	return &AppError{
		Code:       "DUPLICATE_USERNAME",
		Message:    "Username already exists",
		HTTPStatus: http.StatusConflict,
	}
}

// DuplicateEmail creates a 409 [AppError] for a taken email address.
func DuplicateEmail() *AppError {
	return &AppError{
		Code:       "DUPLICATE_EMAIL",
		Message:    "Email already exists",
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// UnsupportedLanguage creates a 400 [AppError] for a language outside en/id.
func UnsupportedLanguage(lang string) *AppError {
	return &AppError{
		Code:       "UNSUPPORTED_LANGUAGE",
		Message:    fmt.Sprintf("Unsupported language %q, expected en or id", lang),
		HTTPStatus: http.StatusBadRequest,
	}
}

// FileTooLarge creates a 413 [AppError] for uploads over the size ceiling.
func FileTooLarge(limitBytes int64) *AppError {
	return &AppError{
		Code:       "FILE_TOO_LARGE",
		Message:    fmt.Sprintf("File size exceeds the maximum of %dMB", limitBytes/(1<<20)),
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}
}

// UnsupportedFileType creates a 400 [AppError] for an upload outside the extension allow-list.
func UnsupportedFileType(ext string, allowed []string) *AppError {
	return &AppError{
		Code:       "UNSUPPORTED_FILE_TYPE",
		Message:    fmt.Sprintf("File type %q not allowed. Allowed: %s", ext, strings.Join(allowed, ", ")),
		HTTPStatus: http.StatusBadRequest,
	}
}

// SelfDelete creates a 400 [AppError] for an admin deleting their own account.
func SelfDelete() *AppError {
	return &AppError{
		Code:       "SELF_DELETE",
		Message:    "Cannot delete your own account",
		HTTPStatus: http.StatusBadRequest,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// StorageFailure creates a 500 [AppError] for uncategorized persistence errors.
func StorageFailure(cause error) *AppError {
	return &AppError{
		Code:       "STORAGE_FAILURE",
		Message:    "A storage error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ServiceUnavailable creates a 503 [AppError].
func ServiceUnavailable(msg string) *AppError {
	return &AppError{
		Code:       "SERVICE_UNAVAILABLE",
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsNotFound reports whether err is a 404 [AppError].
func IsNotFound(err error) bool {
	ae := As(err)
	return ae != nil && ae.HTTPStatus == http.StatusNotFound
}

// HasCode reports whether err is an [AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// codeFor turns "Blog post" into "BLOG_POST".
func codeFor(resource string) string {
	return strings.ToUpper(strings.Join(strings.Fields(resource), "_"))
}
