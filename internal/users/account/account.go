// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package account implements user management for administrators.

It lists, creates, edits and deletes the accounts of the admin surface.
Identity (login, tokens, password hashing) lives in the auth package; this
package only manages the stored accounts.

# Architecture

  - Domain: Depends on the auth package for the User entity and its repository.
  - Updates: Tri-state patches; a blank or absent password keeps the current hash.
  - Safety: An administrator cannot delete their own account.
*/
package account

import (
	"context"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/users/auth"
	"github.com/wiwekaitech/wiweka/pkg/optional"
)

// # Repository Contracts

// AccountRepository is the subset of [auth.UserRepository] user management needs.
type AccountRepository interface {
	FindByID(context context.Context, id int64) (*auth.User, error)
	List(context context.Context) ([]*auth.User, error)
	Update(context context.Context, user *auth.User) error
	Delete(context context.Context, id int64) error
}

// Identity is the part of the auth service used to create accounts and
// check username and email availability.
type Identity interface {
	CreateUser(context context.Context, account auth.NewAccount) (*auth.User, error)
	CheckAvailable(context context.Context, username, email string, excludeID int64) error
}

// # Views

// AdminView is an account as listed to administrators.
type AdminView struct {
	ID        int64        `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	Role      sec.UserRole `json:"role"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func viewOf(user *auth.User) AdminView {
	return AdminView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// # Inputs

// CreateInput is the payload of a new account.
type CreateInput struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     sec.UserRole `json:"role"`
	IsActive *bool        `json:"is_active"`
}

// Patch is a partial account update. Absent keys are left unchanged.
type Patch struct {
	Username optional.Value[string]       `json:"username"`
	Email    optional.Value[string]       `json:"email"`
	Password optional.Value[string]       `json:"password"`
	Role     optional.Value[sec.UserRole] `json:"role"`
	IsActive optional.Value[bool]         `json:"is_active"`
}
