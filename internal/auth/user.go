// Copyright (c) 2026 StoreRatings. All rights reserved.

// Package auth implements account management and credential verification for
// the store-ratings platform.
//
// # Architecture
//
// The entity in this file represents the "Truth" of the system. It has no
// dependencies on outer layers (databases, HTTP), which keeps the core logic
// testable and resilient to technology changes.
package auth

import (
	"time"

	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
)

// User represents a registered account on the platform.
//
// # Rules
//   - Email is unique and stored case-normalized (lowercase).
//   - Name must be 20-60 characters (platform policy).
//   - PasswordHash is generated via bcrypt exclusively by [Service].
//   - Role segments the account: ADMIN, NORMAL_USER, or STORE_OWNER.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Address      string    `json:"address"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
