// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/platform/constants"
	"github.com/wiwekaitech/wiweka/internal/platform/ctxutil"
	"github.com/wiwekaitech/wiweka/internal/platform/middleware"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
)

// staticResolver serves principals from a map; inactive users are simply absent.
type staticResolver struct {
	users map[int64]*sec.Principal
	err   error
}

func (resolver staticResolver) ResolvePrincipal(_ context.Context, userID int64) (*sec.Principal, error) {
	if resolver.err != nil {
		return nil, resolver.err
	}
	return resolver.users[userID], nil
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func protected(tokens *sec.TokenService, resolver middleware.PrincipalResolver, allowed sec.RoleSet) http.Handler {
	final := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		_ = json.NewEncoder(writer).Encode(principal)
	})
	return middleware.Authenticate(tokens, resolver)(middleware.Authorize(allowed)(final))
}

func call(t *testing.T, handler http.Handler, token string) (int, errorBody) {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	if token != "" {
		request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: token})
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var body errorBody
	if recorder.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}
	return recorder.Code, body
}

/*
TestAccessControl_StateMachine walks every transition of a protected request.
*/
func TestAccessControl_StateMachine(t *testing.T) {
	tokens, err := sec.NewTokenService("secret", "HS256", constants.AuthIssuer, time.Hour)
	require.NoError(t, err)

	resolver := staticResolver{users: map[int64]*sec.Principal{
		1: {ID: 1, Username: "admin", Role: sec.RoleAdmin},
		2: {ID: 2, Username: "viewer", Role: sec.RoleViewer},
	}}
	handler := protected(tokens, resolver, sec.UserAdmin)

	adminToken, err := tokens.IssueToken(1, "admin", "admin")
	require.NoError(t, err)
	viewerToken, err := tokens.IssueToken(2, "viewer", "viewer")
	require.NoError(t, err)
	// Token claims say admin but the account is gone (or deactivated).
	ghostToken, err := tokens.IssueToken(3, "ghost", "admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
		code   string
	}{
		{"no_credential", "", http.StatusUnauthorized, "NOT_AUTHENTICATED"},
		{"invalid_credential", "garbage", http.StatusUnauthorized, "INVALID_CREDENTIAL"},
		{"inactive_or_missing_user", ghostToken, http.StatusUnauthorized, "INVALID_CREDENTIAL"},
		{"viewer_on_admin_route", viewerToken, http.StatusForbidden, "FORBIDDEN"},
		{"admin_on_admin_route", adminToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, handler, tt.token)
			assert.Equal(t, tt.status, status)
			if tt.code != "" {
				assert.False(t, body.Success)
				assert.Equal(t, tt.code, body.Error.Code)
			}
		})
	}
}

/*
TestAccessControl_ViewerReadsContent admits viewers to read gates.
*/
func TestAccessControl_ViewerReadsContent(t *testing.T) {
	tokens, err := sec.NewTokenService("secret", "HS256", constants.AuthIssuer, time.Hour)
	require.NoError(t, err)
	resolver := staticResolver{users: map[int64]*sec.Principal{2: {ID: 2, Role: sec.RoleViewer}}}

	viewerToken, err := tokens.IssueToken(2, "viewer", "viewer")
	require.NoError(t, err)

	status, _ := call(t, protected(tokens, resolver, sec.ContentRead), viewerToken)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, protected(tokens, resolver, sec.ContentWrite), viewerToken)
	assert.Equal(t, http.StatusForbidden, status)
}

/*
TestAccessControl_ResolverFailure surfaces storage errors as 500.
*/
func TestAccessControl_ResolverFailure(t *testing.T) {
	tokens, err := sec.NewTokenService("secret", "HS256", constants.AuthIssuer, time.Hour)
	require.NoError(t, err)
	token, err := tokens.IssueToken(1, "admin", "admin")
	require.NoError(t, err)

	status, _ := call(t, protected(tokens, staticResolver{err: errors.New("db down")}, sec.ContentRead), token)
	assert.Equal(t, http.StatusInternalServerError, status)
}

/*
TestAuthorize_WithoutAuthenticate rejects as not authenticated.
*/
func TestAuthorize_WithoutAuthenticate(t *testing.T) {
	handler := middleware.Authorize(sec.ContentRead)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
