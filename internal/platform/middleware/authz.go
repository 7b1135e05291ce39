// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/constants"
	"github.com/wiwekaitech/wiweka/internal/platform/ctxutil"
	"github.com/wiwekaitech/wiweka/internal/platform/respond"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
)

// TokenVerifier checks an access token. It fails closed.
type TokenVerifier interface {
	VerifyToken(token string) (*sec.AuthClaims, bool)
}

// PrincipalResolver loads the live user behind a token subject.
//
// It returns (nil, nil) when the user is missing or inactive; an error is
// reserved for storage failures.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID int64) (*sec.Principal, error)
}

// Authenticate identifies the caller of a protected route.
//
// # Flow
//  1. Read the access token cookie. Absent: 401 NOT_AUTHENTICATED.
//  2. Verify it via [TokenVerifier]. Invalid or expired: 401 INVALID_CREDENTIAL.
//  3. Resolve the subject to a live user. Missing or inactive: 401 INVALID_CREDENTIAL.
//  4. Attach the [*sec.Principal] to the request context.
//
// Role checks are left to [Authorize].
func Authenticate(verifier TokenVerifier, resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal, err := identify(request, verifier, resolver)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.Int64("user_id", principal.ID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func identify(request *http.Request, verifier TokenVerifier, resolver PrincipalResolver) (*sec.Principal, error) {

	// ── 1. Credential Extraction ──────────────────────────────────────────
	cookie, err := request.Cookie(constants.AccessTokenCookieName)
	if err != nil || cookie.Value == "" {
		return nil, apperr.NotAuthenticated()
	}

	// ── 2. Token Verification ─────────────────────────────────────────────
	claims, ok := verifier.VerifyToken(cookie.Value)
	if !ok {
		return nil, apperr.InvalidCredential()
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, apperr.InvalidCredential()
	}

	// ── 3. Live User Lookup ───────────────────────────────────────────────
	principal, err := resolver.ResolvePrincipal(request.Context(), userID)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, apperr.InvalidCredential()
	}

	return principal, nil
}

// Authorize admits the request only if the identified role is in allowed.
//
// # Usage
//
// Must be registered AFTER [Authenticate]; a missing principal is treated as
// NOT_AUTHENTICATED.
func Authorize(allowed sec.RoleSet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := ctxutil.GetPrincipal(request.Context())
			if principal == nil {
				respond.Error(writer, request, apperr.NotAuthenticated())
				return
			}

			if !sec.Allowed(principal.Role, allowed) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
