// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiwekaitech/wiweka/internal/platform/ctxutil"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
)

/*
TestContext_RequestID round-trips the correlation value.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "0191b8a2-7c1e-7d3a-9f00-2b6e1c4d5a10"

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger falls back until a request logger is attached.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	requestLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))
	assert.Same(t, fallback, ctxutil.LoggerOr(ctx, fallback))

	ctx = ctxutil.WithLogger(ctx, requestLogger)
	assert.Same(t, requestLogger, ctxutil.GetLogger(ctx))
	assert.Same(t, requestLogger, ctxutil.LoggerOr(ctx, fallback))
}

/*
TestContext_Principal verifies that the resolved user can be stored in context.
*/
func TestContext_Principal(t *testing.T) {
	ctx := context.Background()
	principal := &sec.Principal{
		ID:       7,
		Username: "editor",
		Role:     sec.RoleEditor,
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetPrincipal(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithPrincipal(ctx, principal)
	retrieved := ctxutil.GetPrincipal(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, int64(7), retrieved.ID)
	assert.Equal(t, sec.RoleEditor, retrieved.Role)
}
