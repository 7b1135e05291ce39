// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package auth

import "context"

// # Repository Contracts

// UserRepository defines the persistence contract for admin accounts.
//
// Lookups of a missing row return USER_NOT_FOUND. A unique violation on write
// returns DUPLICATE_USERNAME or DUPLICATE_EMAIL.
type UserRepository interface {
	FindByID(context context.Context, id int64) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)

	// List returns every account ordered by id.
	List(context context.Context) ([]*User, error)

	// UsernameTaken and EmailTaken ignore the row excludeID (0 for none).
	UsernameTaken(context context.Context, username string, excludeID int64) (bool, error)
	EmailTaken(context context.Context, email string, excludeID int64) (bool, error)

	// Create stores user and fills its id and timestamps.
	Create(context context.Context, user *User) error

	// Update rewrites every mutable column and refreshes UpdatedAt.
	Update(context context.Context, user *User) error

	Delete(context context.Context, id int64) error
}
