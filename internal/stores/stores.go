// Copyright (c) 2026 StoreRatings. All rights reserved.

// Package stores manages the store catalogue: the entities rated by normal
// users, owned by store-owner accounts, and administered by admins.
package stores

import "time"

// Store represents a rateable store on the platform.
//
// # Rules
//   - A store has at most one owner; an owner manages at most one store
//     (enforced by the UNIQUE constraint on owner_id).
//   - Address is limited to 400 characters, matching account addresses.
type Store struct {
	ID        int64     `json:"id"`
	OwnerID   *int64    `json:"owner_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is a catalogue row: the store plus its live rating aggregate.
//
// Rating carries the mean score rounded to one decimal; it is 0.0 (not null)
// for stores without ratings so consumers never need null-handling.
type Summary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"total_ratings"`
}

// ListFilter narrows and orders the catalogue listing.
type ListFilter struct {
	// Search matches name or address substrings, case-insensitive.
	Search string
	// SortBy must be one of the whitelisted sortable columns.
	SortBy string
	// Descending flips the sort direction (default ascending).
	Descending bool
}
