// Copyright (c) 2026 StoreRatings. All rights reserved.

package sec

// # User Roles

// Role represents the authorization segment granted to an account.
//
// The three roles are peers, not ranks: an admin does not implicitly hold
// the permissions of a normal user. Every protected route therefore declares
// the exact set of roles it accepts.
type Role string

const (
	// Manages users and stores
	RoleAdmin Role = "ADMIN"

	// Browses stores and submits ratings
	RoleNormalUser Role = "NORMAL_USER"

	// Views aggregated feedback for their own store
	RoleStoreOwner Role = "STORE_OWNER"
)

// Valid reports whether the role is one of the three known segments.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleNormalUser, RoleStoreOwner:
		return true
	default:
		return false
	}
}

// OneOf reports whether the role is a member of the allowed set.
//
// Used by [middleware.RequireRole] as the per-operation authorization
// predicate.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
