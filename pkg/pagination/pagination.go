// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how a page window is cut from a count-capable source, and how the resulting
// metadata is delivered in the API response envelope.
package pagination

import (
	"context"
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultPageSize is the number of items per page if not specified.
	DefaultPageSize = 10
	// MaxPageSize is the upper bound for items per page.
	MaxPageSize = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// MaxPage keeps (Page-1)*PageSize inside int for every valid page size.
	MaxPage = math.MaxInt / MaxPageSize
)

// Params holds the requested page and page size.
type Params struct {
	Page     int
	PageSize int
}

// New builds normalized [Params].
func New(page, pageSize int) Params {
	return Params{Page: page, PageSize: pageSize}.Normalize()
}

// Normalize clamps page into [1, MaxPage] and page size into [1, MaxPageSize].
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	} else if p.Page > MaxPage {
		p.Page = MaxPage
	}

	if p.PageSize < 1 {
		p.PageSize = 1
	} else if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p
}

// Offset returns the SQL OFFSET value derived from [Params.Page] and [Params.PageSize].
func (p Params) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is the ceiling of total over the page size.
func NewMeta(params Params, total int) Meta {
	params = params.Normalize()
	return Meta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalItems: total,
		TotalPages: (total + params.PageSize - 1) / params.PageSize,
	}
}

// # Windowed Sources

// Source is a count-capable, order-capable query that can return one window of rows.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	Window(ctx context.Context, offset, limit int) ([]T, error)
}

// Funcs adapts a pair of functions into a [Source].
type Funcs[T any] struct {
	CountFunc  func(ctx context.Context) (int, error)
	WindowFunc func(ctx context.Context, offset, limit int) ([]T, error)
}

// Count implements [Source].
func (f Funcs[T]) Count(ctx context.Context) (int, error) { return f.CountFunc(ctx) }

// Window implements [Source].
func (f Funcs[T]) Window(ctx context.Context, offset, limit int) ([]T, error) {
	return f.WindowFunc(ctx, offset, limit)
}

// Result is one page of items together with its metadata.
type Result[T any] struct {
	Items []T
	Meta  Meta
}

// Paginate counts the source, then fetches at most one page of rows.
//
// A page past the end yields an empty, non-nil slice with correct totals.
func Paginate[T any](ctx context.Context, source Source[T], params Params) (Result[T], error) {
	params = params.Normalize()

	total, err := source.Count(ctx)
	if err != nil {
		return Result[T]{}, err
	}

	meta := NewMeta(params, total)
	if params.Page > meta.TotalPages {
		return Result[T]{Items: []T{}, Meta: meta}, nil
	}

	items, err := source.Window(ctx, params.Offset(), params.PageSize)
	if err != nil {
		return Result[T]{}, err
	}

	if items == nil {
		items = []T{}
	}
	if len(items) > params.PageSize {
		items = items[:params.PageSize]
	}

	return Result[T]{Items: items, Meta: meta}, nil
}

// FromRequest parses "page" and "page_size" query parameters from an HTTP request.
//
// # Clamping
//
// Unparsable values fall back to [DefaultPage] and [DefaultPageSize];
// out-of-range values are clamped by [Params.Normalize].
func FromRequest(r *http.Request) Params {
	return Params{
		Page:     parseIntParam(r, "page", DefaultPage),
		PageSize: parseIntParam(r, "page_size", DefaultPageSize),
	}.Normalize()
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
