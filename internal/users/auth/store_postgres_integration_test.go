// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

//go:build integration

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/platform/testinfra"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
)

/*
TestPostgresUserRepository covers lookups, uniqueness and deletion against a real database.
*/
func TestPostgresUserRepository(t *testing.T) {
	pool := testinfra.StartPostgres(t)
	ctx := context.Background()
	repo := auth.NewUserRepository(pool)

	user := &auth.User{
		Username:     "editor",
		Email:        "editor@wiweka.test",
		PasswordHash: "hash",
		Role:         sec.RoleEditor,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "editor")
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, found.Role)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindByID(ctx, user.ID+100)
	assert.True(t, apperr.HasCode(err, "USER_NOT_FOUND"))

	taken, err := repo.UsernameTaken(ctx, "editor", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.UsernameTaken(ctx, "editor", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	err = repo.Create(ctx, &auth.User{Username: "editor", Email: "x@wiweka.test", PasswordHash: "h", Role: sec.RoleViewer})
	assert.True(t, apperr.HasCode(err, "DUPLICATE_USERNAME"))

	err = repo.Create(ctx, &auth.User{Username: "other", Email: "editor@wiweka.test", PasswordHash: "h", Role: sec.RoleViewer})
	assert.True(t, apperr.HasCode(err, "DUPLICATE_EMAIL"))

	found.IsActive = false
	require.NoError(t, repo.Update(ctx, found))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.False(t, users[0].IsActive)

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.True(t, apperr.IsNotFound(repo.Delete(ctx, user.ID)))
}
