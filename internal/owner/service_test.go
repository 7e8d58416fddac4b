// Copyright (c) 2026 StoreRatings. All rights reserved.

package owner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/internal/rating"
	"github.com/iamMohdZiya/storeratings/internal/stores"
)

type fakeStoreFinder struct {
	byOwner map[int64]*stores.Store
}

func (f *fakeStoreFinder) FindByOwner(ctx context.Context, ownerID int64) (*stores.Store, error) {
	store, ok := f.byOwner[ownerID]
	if !ok {
		return nil, apperr.NotFound("Store")
	}
	return store, nil
}

type fakeRatingReader struct {
	aggregate rating.Aggregate
	ratings   []*rating.StoreRating
}

func (f *fakeRatingReader) StoreAggregate(ctx context.Context, storeID int64) (rating.Aggregate, error) {
	return f.aggregate, nil
}

func (f *fakeRatingReader) ListForStore(ctx context.Context, storeID int64) ([]*rating.StoreRating, error) {
	return f.ratings, nil
}

func TestDashboard_NoStoreAssigned(t *testing.T) {
	service := NewService(&fakeStoreFinder{byOwner: map[int64]*stores.Store{}}, &fakeRatingReader{})

	_, err := service.Dashboard(context.Background(), 5)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

func TestDashboard_Assembled(t *testing.T) {
	store := &stores.Store{ID: 3, Name: "The Grand Springfield Emporium"}
	reader := &fakeRatingReader{
		aggregate: rating.Aggregate{Count: 2, Average: 4.5},
		ratings: []*rating.StoreRating{
			{UserID: 10, UserName: "Jonathan Maximilian Archer", UserEmail: "jon@example.com", Score: 5, UpdatedAt: time.Now()},
			{UserID: 11, UserName: "Beatrice Wilhelmina Crusher", UserEmail: "bea@example.com", Score: 4, UpdatedAt: time.Now()},
		},
	}
	service := NewService(&fakeStoreFinder{byOwner: map[int64]*stores.Store{5: store}}, reader)

	dashboard, err := service.Dashboard(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, store, dashboard.Store)
	assert.Equal(t, rating.Aggregate{Count: 2, Average: 4.5}, dashboard.Aggregate)
	require.Len(t, dashboard.Ratings, 2)
	assert.Equal(t, "jon@example.com", dashboard.Ratings[0].UserEmail)
}
