// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/constants"
	"github.com/wiwekaitech/wiweka/internal/platform/ctxutil"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/users/account"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
	"github.com/wiwekaitech/wiweka/pkg/optional"
)

type fixture struct {
	accounts *account.Service
	identity *auth.Service
	users    *auth.MemoryUserRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret", "HS256", constants.AuthIssuer, time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := auth.NewMemoryUserRepository()
	identity := auth.NewService(users, tokens, logger)

	return fixture{
		accounts: account.NewService(users, identity, logger),
		identity: identity,
		users:    users,
	}
}

func (f fixture) create(t *testing.T, username string, role sec.UserRole) account.AdminView {
	t.Helper()

	view, err := f.accounts.Create(context.Background(), account.CreateInput{
		Username: username,
		Email:    username + "@wiweka.test",
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return view
}

/*
TestService_Create requires a password and defaults role and activity.
*/
func TestService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.accounts.Create(ctx, account.CreateInput{Username: "viewer", Email: "viewer@wiweka.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleViewer, view.Role)
	assert.True(t, view.IsActive)

	_, err = f.accounts.Create(ctx, account.CreateInput{Username: "nopass", Email: "nopass@wiweka.test"})
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	listed, err := f.accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

/*
TestService_Update applies only the keys present in the patch.
*/
func TestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	editor := f.create(t, "editor", sec.RoleEditor)
	f.create(t, "other", sec.RoleViewer)

	before, err := f.users.FindByID(ctx, editor.ID)
	require.NoError(t, err)

	t.Run("partial", func(t *testing.T) {
		view, err := f.accounts.Update(ctx, editor.ID, account.Patch{IsActive: optional.Of(false)})
		require.NoError(t, err)
		assert.False(t, view.IsActive)
		assert.Equal(t, "editor", view.Username)
		assert.Equal(t, sec.RoleEditor, view.Role)

		stored, _ := f.users.FindByID(ctx, editor.ID)
		assert.Equal(t, before.PasswordHash, stored.PasswordHash)
	})

	t.Run("blank_password_keeps_hash", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, editor.ID, account.Patch{Password: optional.Of("")})
		require.NoError(t, err)

		stored, _ := f.users.FindByID(ctx, editor.ID)
		assert.Equal(t, before.PasswordHash, stored.PasswordHash)
	})

	t.Run("new_password", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, editor.ID, account.Patch{Password: optional.Of("fresh-secret")})
		require.NoError(t, err)

		stored, _ := f.users.FindByID(ctx, editor.ID)
		assert.True(t, sec.CheckPassword("fresh-secret", stored.PasswordHash))
	})

	t.Run("short_password", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, editor.ID, account.Patch{Password: optional.Of("123")})
		assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
	})

	t.Run("null_username", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, editor.ID, account.Patch{Username: optional.Null[string]()})
		assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
	})

	t.Run("taken_username", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, editor.ID, account.Patch{Username: optional.Of("other")})
		assert.True(t, apperr.HasCode(err, "DUPLICATE_USERNAME"))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, 404, account.Patch{})
		assert.True(t, apperr.HasCode(err, "USER_NOT_FOUND"))
	})
}

/*
TestService_Delete refuses to remove the caller's own account.
*/
func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.create(t, "admin", sec.RoleAdmin)
	editor := f.create(t, "editor", sec.RoleEditor)
	actor := &sec.Principal{ID: admin.ID, Username: "admin", Role: sec.RoleAdmin}

	err := f.accounts.Delete(ctx, actor, admin.ID)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "SELF_DELETE"))
	assert.Equal(t, "Cannot delete your own account", err.Error())

	require.NoError(t, f.accounts.Delete(ctx, actor, editor.ID))

	_, err = f.accounts.Get(ctx, editor.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func (f fixture) router(principal *sec.Principal) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithPrincipal(request.Context(), principal)))
		})
	})
	router.Route("/admin/users", account.NewHandler(f.accounts).AdminRoutes)
	return router
}

/*
TestHandler_AdminOnly rejects editors and viewers.
*/
func TestHandler_AdminOnly(t *testing.T) {
	f := newFixture(t)

	for _, role := range []sec.UserRole{sec.RoleEditor, sec.RoleViewer} {
		recorder := httptest.NewRecorder()
		f.router(&sec.Principal{ID: 7, Role: role}).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/users/", nil))
		assert.Equal(t, http.StatusForbidden, recorder.Code, role)
	}
}

/*
TestHandler_Lifecycle creates, updates and deletes a user over HTTP.
*/
func TestHandler_Lifecycle(t *testing.T) {
	f := newFixture(t)
	admin := f.create(t, "admin", sec.RoleAdmin)
	router := f.router(&sec.Principal{ID: admin.ID, Username: "admin", Role: sec.RoleAdmin})

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
		return recorder
	}

	recorder := serve(http.MethodPost, "/admin/users/", `{"username":"writer","email":"writer@wiweka.test","password":"secret123","role":"editor"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")

	var created struct {
		Message string            `json:"message"`
		Data    account.AdminView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "User created successfully", created.Message)
	assert.Equal(t, sec.RoleEditor, created.Data.Role)

	target := "/admin/users/" + jsonID(created.Data.ID)

	recorder = serve(http.MethodPatch, target, `{"role":"viewer","password":null}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"role":"viewer"`)
	assert.Contains(t, recorder.Body.String(), "User updated successfully")

	recorder = serve(http.MethodDelete, "/admin/users/"+jsonID(admin.ID), "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SELF_DELETE")

	recorder = serve(http.MethodDelete, target, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success": true, "message": "User deleted successfully"}`, recorder.Body.String())

	recorder = serve(http.MethodGet, target, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func jsonID(id int64) string {
	encoded, _ := json.Marshal(id)
	return string(encoded)
}
