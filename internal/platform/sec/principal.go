// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package sec

// Principal is the live user a request acts on behalf of.
//
// It is resolved from storage on every protected request, so a deactivated
// account loses access even while its token is unexpired.
type Principal struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}
