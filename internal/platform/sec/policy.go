// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package sec

// # Authorization Policy
//
// Every role gate in the router refers to one of the sets below. Roles are
// flat: there is no hierarchy, a role passes a gate only if it is listed.

// RoleSet is an allow-list of roles.
type RoleSet []UserRole

var (
	// ContentRead gates every admin read endpoint.
	ContentRead = RoleSet{RoleAdmin, RoleEditor, RoleViewer}

	// ContentWrite gates content mutations and uploads.
	ContentWrite = RoleSet{RoleAdmin, RoleEditor}

	// UserAdmin gates user management.
	UserAdmin = RoleSet{RoleAdmin}
)

// Allowed reports whether role is a member of allowed.
func Allowed(role UserRole, allowed RoleSet) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}
