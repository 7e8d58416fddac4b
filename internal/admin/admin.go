// Copyright (c) 2026 StoreRatings. All rights reserved.

// Package admin implements the platform administration surface: global
// totals, the user directory, and privileged account and store creation.
package admin

import (
	"time"

	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
)

// Totals carries the platform-wide counters shown on the admin dashboard.
type Totals struct {
	Users   int `json:"users"`
	Stores  int `json:"stores"`
	Ratings int `json:"ratings"`
}

// UserRow is a directory entry in the admin user listing.
//
// StoreRating is populated only for STORE_OWNER accounts that manage a
// store with at least one rating; it is nil otherwise.
type UserRow struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Role        sec.Role  `json:"role"`
	StoreRating *float64  `json:"store_rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserFilter narrows and orders the user directory listing.
type UserFilter struct {
	// Search matches name, email, or address substrings, case-insensitive.
	Search string
	// Role restricts the listing to a single role when set.
	Role sec.Role
	// SortBy must be one of the whitelisted sortable columns.
	SortBy string
	// Descending flips the sort direction (default ascending).
	Descending bool
}
