// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiwekaitech/wiweka/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Custom ERP System Development", "custom-erp-system-development"},
		{"Sales & Inventory Systems", "sales-inventory-systems"},
		{"  Café  Déjà vu!! ", "cafe-deja-vu"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := slug.From(tt.in)
			assert.Equal(t, tt.expected, got)
			if got != "" {
				assert.True(t, slug.Valid(got))
			}
		})
	}
}

func TestFrom_CapsLength(t *testing.T) {
	got := slug.From(strings.Repeat("word ", 100))
	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.True(t, slug.Valid(got))
}

func TestValid(t *testing.T) {
	assert.True(t, slug.Valid("erp-system"))
	assert.False(t, slug.Valid("ERP-System"))
	assert.False(t, slug.Valid("-erp"))
	assert.False(t, slug.Valid("erp--system"))
	assert.False(t, slug.Valid(""))
}
