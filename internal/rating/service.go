// Copyright (c) 2026 StoreRatings. All rights reserved.

// Rating submission and aggregate use cases.
package rating

import (
	"context"
	"log/slog"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/internal/platform/constants"
	"github.com/iamMohdZiya/storeratings/internal/platform/ctxutil"
	"github.com/iamMohdZiya/storeratings/internal/platform/validate"
)

// Service implements the rating use cases.
//
// # Write Path
//
// Submit is the only write. It validates, checks the target store, performs
// the atomic upsert, invalidates the cached aggregate, and returns the
// recomputed aggregate so the caller observes its own write immediately.
type Service struct {
	ratings Repository
	stores  StoreDirectory
	cache   AggregateCache
}

// NewService constructs a new [Service] with necessary dependencies.
// The cache may be nil; aggregates then always come from the repository.
func NewService(ratings Repository, stores StoreDirectory, cache AggregateCache) *Service {
	return &Service{
		ratings: ratings,
		stores:  stores,
		cache:   cache,
	}
}

// SubmitInput holds the data required to submit a rating.
type SubmitInput struct {
	StoreID int64
	Score   int
}

// Submit records or overwrites the caller's rating for a store.
//
// # Business Rules
//   - Score must be an integer between 1 and 5 inclusive.
//   - The target store must exist.
//   - Resubmitting replaces the previous score; the pair keeps one row.
//     Submitting an identical score is a normal update, not an error.
//
// # Returns
//   - [SubmitResult] with Created=true on a first-time rating.
//   - [apperr.ValidationError] for an out-of-range score.
//   - [apperr.NotFound] if the store does not exist.
func (service *Service) Submit(ctx context.Context, userID int64, input SubmitInput) (*SubmitResult, error) {
	// ── 1. Boundary Validation ────────────────────────────────────────────

	v := &validate.Validator{}
	err := v.
		Range("score", input.Score, ScoreMin, ScoreMax).
		Custom("store_id", input.StoreID <= 0, "Must be a positive store ID").
		Err()
	if err != nil {
		return nil, err
	}

	exists, err := service.stores.Exists(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Store")
	}

	// ── 2. Atomic Write ───────────────────────────────────────────────────

	rating, created, err := service.ratings.Upsert(ctx, userID, input.StoreID, input.Score)
	if err != nil {
		return nil, err
	}

	// ── 3. Cache Invalidation & Aggregate ─────────────────────────────────

	// Invalidate before recomputing so no reader can pick up a pre-write
	// value between our write and the refresh. A failed invalidation is
	// logged, not fatal: the TTL backstop bounds the staleness.
	if service.cache != nil {
		if err := service.cache.Invalidate(ctx, input.StoreID); err != nil {
			ctxutil.GetLogger(ctx).WarnContext(ctx, "aggregate_cache_invalidate_failed",
				slog.Int64("store_id", input.StoreID),
				slog.String("error", err.Error()),
			)
		}
	}

	aggregate, err := service.StoreAggregate(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Rating:    rating,
		Created:   created,
		Aggregate: aggregate,
	}, nil
}

// StoreAggregate returns the (count, average) pair for a store, preferring
// the cache and repopulating it on a miss.
func (service *Service) StoreAggregate(ctx context.Context, storeID int64) (Aggregate, error) {
	// The epoch observed at miss time travels with the fill below; if an
	// invalidation lands in between, the cache refuses the stale value.
	var epoch int64
	if service.cache != nil {
		aggregate, cacheEpoch, hit, err := service.cache.Get(ctx, storeID)
		if err == nil && hit {
			return aggregate, nil
		}
		epoch = cacheEpoch
	}

	aggregate, err := service.ratings.Aggregate(ctx, storeID)
	if err != nil {
		return Aggregate{}, err
	}

	if service.cache != nil {
		if err := service.cache.Set(ctx, storeID, aggregate, epoch, constants.AggregateCacheTTL); err != nil {
			ctxutil.GetLogger(ctx).WarnContext(ctx, "aggregate_cache_set_failed",
				slog.Int64("store_id", storeID),
				slog.String("error", err.Error()),
			)
		}
	}

	return aggregate, nil
}

// ListForStore returns a store's ratings with submitter identities.
func (service *Service) ListForStore(ctx context.Context, storeID int64) ([]*StoreRating, error) {
	return service.ratings.ListForStore(ctx, storeID)
}

// MyRating returns the caller's current rating for a store, or
// [apperr.NotFound] if they have not rated it.
func (service *Service) MyRating(ctx context.Context, userID, storeID int64) (*Rating, error) {
	return service.ratings.FindByUserAndStore(ctx, userID, storeID)
}
