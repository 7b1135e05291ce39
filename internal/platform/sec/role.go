// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package sec

// # User Roles

// UserRole represents the access scope granted to an admin account.
type UserRole string

const (
	// Full access including user management
	RoleAdmin UserRole = "admin"
	// Can create, edit and delete content
	RoleEditor UserRole = "editor"
	// Read-only access to the admin surface
	RoleViewer UserRole = "viewer"
)

// Roles lists every assignable role.
var Roles = []UserRole{RoleAdmin, RoleEditor, RoleViewer}

// Valid reports whether r is one of [Roles].
func (r UserRole) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleStrings returns the role values for validation messages.
func RoleStrings() []string {
	out := make([]string, len(Roles))
	for i, role := range Roles {
		out[i] = string(role)
	}
	return out
}
