// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// RoleAdmin is the authoring/review identity. Only admins can reach
	// the content-management and waitlist-review surfaces.
	RoleAdmin UserRole = "admin"

	// RoleMember is the default for any non-admin account. The public
	// surfaces require no identity at all; the role exists so the
	// predicate below has a deny branch that is testable without a real
	// identity provider.
	RoleMember UserRole = "member"
)

// # Authorization Predicate

// IsAdmin reports whether the given claims belong to an administrator.
//
// This is the one authorization decision in the system. Keeping it an
// explicit predicate over the authenticated principal (rather than an
// email comparison buried in handlers) makes the check unit-testable.
func IsAdmin(claims *AuthClaims) bool {
	return claims != nil && UserRole(claims.Role) == RoleAdmin
}
