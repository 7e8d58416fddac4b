// Copyright (c) 2026 StoreRatings. All rights reserved.

package rating

import (
	"context"
	"time"
)

// Repository defines the data access contract for rating rows.
type Repository interface {
	// Upsert atomically inserts or overwrites the caller's rating for a
	// store in a single statement. The returned bool is true when a new
	// row was created, false when an existing row was updated.
	Upsert(ctx context.Context, userID, storeID int64, score int) (*Rating, bool, error)

	// Aggregate recomputes the (count, average) pair for a store directly
	// from the rating rows.
	Aggregate(ctx context.Context, storeID int64) (Aggregate, error)

	// ListForStore returns every rating for a store joined with the
	// submitter's name and email, newest update first.
	ListForStore(ctx context.Context, storeID int64) ([]*StoreRating, error)

	// FindByUserAndStore returns the caller's current rating for a store,
	// or [apperr.NotFound] if none exists.
	FindByUserAndStore(ctx context.Context, userID, storeID int64) (*Rating, error)
}

// StoreDirectory answers store existence checks without coupling this
// package to the catalogue implementation.
type StoreDirectory interface {
	Exists(ctx context.Context, storeID int64) (bool, error)
}

// AggregateCache holds derived aggregates keyed by store.
//
// Implementations must treat the cache as disposable: a miss or an error
// falls back to the repository, and Invalidate is called on every write so
// a cached value never outlives the rows it was derived from.
//
// # Epoch Guard
//
// Each store carries an invalidation epoch. A fill must present the epoch
// observed before the aggregate was computed; if an invalidation bumped the
// epoch in between, the fill is refused. Without the guard a slow reader
// could repopulate the cache with a pre-write aggregate after the writer's
// invalidation, and the stale value would survive until the TTL.
type AggregateCache interface {
	// Get returns the cached aggregate and true on a hit. On a miss the
	// returned epoch must accompany the subsequent Set.
	Get(ctx context.Context, storeID int64) (Aggregate, int64, bool, error)

	// Set stores the aggregate with the given backstop TTL. The fill is
	// silently dropped when the store's epoch no longer matches.
	Set(ctx context.Context, storeID int64, aggregate Aggregate, epoch int64, ttl time.Duration) error

	// Invalidate removes the cached aggregate for a store and bumps its
	// epoch, refusing any in-flight fill that started earlier.
	Invalidate(ctx context.Context, storeID int64) error
}
