// Copyright (c) 2026 StoreRatings. All rights reserved.

package stores

import (
	"context"

	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// Repository defines the data access contract for the store catalogue.
type Repository interface {
	// Create persists a new store and fills in the generated ID.
	//
	// Returns [apperr.Conflict] if the designated owner already manages
	// a store.
	Create(ctx context.Context, store *Store) error

	// FindByID returns the store with the given ID.
	//
	// Returns [apperr.NotFound] if the store does not exist.
	FindByID(ctx context.Context, id int64) (*Store, error)

	// FindByOwner returns the store managed by the given owner account.
	//
	// Returns [apperr.NotFound] if the owner has no store assigned.
	FindByOwner(ctx context.Context, ownerID int64) (*Store, error)

	// Exists reports whether a store with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// List returns catalogue rows with live aggregates, the total match
	// count, and applies search, whitelisted sorting, and pagination.
	List(ctx context.Context, filter ListFilter, page pagination.Params) ([]*Summary, int, error)
}
