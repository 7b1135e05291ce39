// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package pagination_test

import (
	"context"
	"errors"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/pkg/pagination"
)

// sliceSource serves windows of an in-memory slice and records the largest
// window ever requested.
type sliceSource struct {
	rows        []int
	largestPull int
}

func (s *sliceSource) Count(context.Context) (int, error) { return len(s.rows), nil }

func (s *sliceSource) Window(_ context.Context, offset, limit int) ([]int, error) {
	if limit > s.largestPull {
		s.largestPull = limit
	}
	if offset >= len(s.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.rows) {
		end = len(s.rows)
	}
	return s.rows[offset:end], nil
}

func rows(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

/*
TestParams_Normalize checks clamping of page and page size.
*/
func TestParams_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       pagination.Params
		expected pagination.Params
	}{
		{"valid", pagination.Params{Page: 2, PageSize: 20}, pagination.Params{Page: 2, PageSize: 20}},
		{"zero_page", pagination.Params{Page: 0, PageSize: 10}, pagination.Params{Page: 1, PageSize: 10}},
		{"negative_page", pagination.Params{Page: -4, PageSize: 10}, pagination.Params{Page: 1, PageSize: 10}},
		{"zero_size", pagination.Params{Page: 1, PageSize: 0}, pagination.Params{Page: 1, PageSize: 1}},
		{"oversized", pagination.Params{Page: 1, PageSize: 500}, pagination.Params{Page: 1, PageSize: 100}},
		{"huge_page", pagination.Params{Page: math.MaxInt, PageSize: 10}, pagination.Params{Page: pagination.MaxPage, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
		})
	}
}

/*
TestPaginate_TotalPagesIsCeiling verifies total_pages and window length for a
spread of totals and page sizes.
*/
func TestPaginate_TotalPagesIsCeiling(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 99, 250} {
		for _, size := range []int{1, 3, 10, 100} {
			source := &sliceSource{rows: rows(total)}
			result, err := pagination.Paginate[int](context.Background(), source, pagination.New(2, size))
			require.NoError(t, err)

			expectedPages := (total + size - 1) / size
			assert.Equal(t, expectedPages, result.Meta.TotalPages, "total=%d size=%d", total, size)
			assert.Equal(t, total, result.Meta.TotalItems)
			assert.LessOrEqual(t, len(result.Items), size)
			assert.LessOrEqual(t, source.largestPull, size)
		}
	}
}

/*
TestPaginate_WindowContents checks the offset arithmetic.
*/
func TestPaginate_WindowContents(t *testing.T) {
	source := &sliceSource{rows: rows(25)}

	result, err := pagination.Paginate[int](context.Background(), source, pagination.New(3, 10))
	require.NoError(t, err)

	assert.Equal(t, []int{21, 22, 23, 24, 25}, result.Items)
	assert.Equal(t, pagination.Meta{Page: 3, PageSize: 10, TotalItems: 25, TotalPages: 3}, result.Meta)
}

/*
TestPaginate_PastTheEnd returns an empty sequence, not an error.
*/
func TestPaginate_PastTheEnd(t *testing.T) {
	source := &sliceSource{rows: rows(5)}

	result, err := pagination.Paginate[int](context.Background(), source, pagination.New(9, 10))
	require.NoError(t, err)

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 5, result.Meta.TotalItems)
	assert.Equal(t, 1, result.Meta.TotalPages)
}

/*
TestPaginate_HugePage never hands the source a negative offset.
*/
func TestPaginate_HugePage(t *testing.T) {
	var offsets []int
	source := pagination.Funcs[int]{
		CountFunc: func(context.Context) (int, error) { return 3, nil },
		WindowFunc: func(_ context.Context, offset, _ int) ([]int, error) {
			offsets = append(offsets, offset)
			return []int{1, 2, 3}, nil
		},
	}

	for _, page := range []int{math.MaxInt / 50, math.MaxInt, pagination.MaxPage} {
		params := pagination.New(page, 100)
		assert.GreaterOrEqual(t, params.Offset(), 0)

		result, err := pagination.Paginate(context.Background(), source, params)
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.NotNil(t, result.Items)
		assert.Equal(t, 3, result.Meta.TotalItems)
		assert.Equal(t, 1, result.Meta.TotalPages)
	}
	assert.Empty(t, offsets)
}

/*
TestPaginate_CountFailure propagates source errors.
*/
func TestPaginate_CountFailure(t *testing.T) {
	boom := errors.New("boom")
	source := pagination.Funcs[int]{
		CountFunc: func(context.Context) (int, error) { return 0, boom },
		WindowFunc: func(context.Context, int, int) ([]int, error) {
			t.Fatal("window must not be fetched after a failed count")
			return nil, nil
		},
	}

	_, err := pagination.Paginate[int](context.Background(), source, pagination.New(1, 10))
	assert.ErrorIs(t, err, boom)
}

/*
TestFromRequest parses and clamps query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		query    string
		expected pagination.Params
	}{
		{"", pagination.Params{Page: 1, PageSize: 10}},
		{"?page=3&page_size=25", pagination.Params{Page: 3, PageSize: 25}},
		{"?page=abc&page_size=xyz", pagination.Params{Page: 1, PageSize: 10}},
		{"?page=-1&page_size=1000", pagination.Params{Page: 1, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/items"+tt.query, nil)
			assert.Equal(t, tt.expected, pagination.FromRequest(request))
		})
	}
}
