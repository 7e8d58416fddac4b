// Copyright (c) 2026 StoreRatings. All rights reserved.

// Package owner implements the store owner's dashboard: the one store an
// owner manages, its live aggregate, and the list of users who rated it.
package owner

import (
	"context"

	"github.com/iamMohdZiya/storeratings/internal/rating"
	"github.com/iamMohdZiya/storeratings/internal/stores"
)

// StoreFinder resolves the store managed by an owner account.
type StoreFinder interface {
	// FindByOwner returns the owner's store or [apperr.NotFound] when no
	// store is assigned to the account.
	FindByOwner(ctx context.Context, ownerID int64) (*stores.Store, error)
}

// RatingReader supplies the dashboard's aggregate and rater list.
type RatingReader interface {
	StoreAggregate(ctx context.Context, storeID int64) (rating.Aggregate, error)
	ListForStore(ctx context.Context, storeID int64) ([]*rating.StoreRating, error)
}

// Dashboard is the owner's view of their store.
type Dashboard struct {
	Store     *stores.Store         `json:"store"`
	Aggregate rating.Aggregate      `json:"aggregate"`
	Ratings   []*rating.StoreRating `json:"ratings"`
}

// Service assembles the owner dashboard.
type Service struct {
	stores  StoreFinder
	ratings RatingReader
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(stores StoreFinder, ratings RatingReader) *Service {
	return &Service{
		stores:  stores,
		ratings: ratings,
	}
}

// Dashboard returns the caller's store with its aggregate and rater list.
//
// # Returns
//   - [apperr.NotFound] when the account has no store assigned.
func (service *Service) Dashboard(ctx context.Context, ownerID int64) (*Dashboard, error) {
	store, err := service.stores.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	aggregate, err := service.ratings.StoreAggregate(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	ratings, err := service.ratings.ListForStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Store:     store,
		Aggregate: aggregate,
		Ratings:   ratings,
	}, nil
}
