// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package auth implements the identity layer of the admin surface.

It owns the User entity, password verification, access token issuance and
the live user lookup every protected request goes through.

# Architecture

  - Service: Authenticate, IssueToken, VerifyToken, CreateUser, ResolvePrincipal.
  - Repository: Abstracted user storage, backed by PostgreSQL.
  - Security: bcrypt hashes and HMAC-signed JWTs from the sec package.

Tokens are stateless. There is no server-side session, so logging out only
clears the cookie.
*/
package auth

import (
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/sec"
)

// # Domain Entities

// User is an account of the admin surface.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Principal returns the request identity of the user.
func (user *User) Principal() *sec.Principal {
	return &sec.Principal{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// Profile is the public shape of the signed-in user.
type Profile struct {
	ID       int64        `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Role     sec.UserRole `json:"role"`
	IsActive bool         `json:"is_active"`
}

// Profile returns the signed-in view of the user.
func (user *User) Profile() Profile {
	return Profile{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}

// # Field Identifiers

// Global field names for validation in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)

// # Constraints

const (
	UsernameMinLength = 3
	UsernameMaxLength = 100
	EmailMaxLength    = 200
	PasswordMinLength = 6
	PasswordMaxLength = 100
)
