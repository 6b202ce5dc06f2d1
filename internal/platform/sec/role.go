// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can process contributions and manage the publishing queue
	RoleModerator UserRole = "moderator"

	// Default role for standard registered users
	RoleUser UserRole = "user"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsMod reports whether the role bypasses the contribution review step.
func (r UserRole) IsMod() bool {
	return r.AtLeast(RoleModerator)
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleModerator:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}
