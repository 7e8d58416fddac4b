// Copyright (c) 2026 StoreRatings. All rights reserved.

package auth

import (
	"context"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]).
type UserRepository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns the account with the given case-normalized email.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a brand-new user account and fills in the generated ID.
	//
	// Email uniqueness is enforced by the database constraint; a duplicate
	// surfaces as [apperr.Conflict].
	Create(ctx context.Context, user *User) error

	// UpdatePassword replaces only the user's password hash.
	// This is separate from profile updates to prevent accidental overwrites.
	UpdatePassword(ctx context.Context, userID int64, newHash string) error
}
