// Copyright (c) 2026 StoreRatings. All rights reserved.

package admin

import (
	"context"

	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// Repository defines the read-side data access for the admin surface.
type Repository interface {
	// Totals returns the platform-wide user, store, and rating counts.
	Totals(ctx context.Context) (Totals, error)

	// ListUsers returns directory rows matching the filter plus the total
	// match count. STORE_OWNER rows carry their store's average rating.
	ListUsers(ctx context.Context, filter UserFilter, page pagination.Params) ([]*UserRow, int, error)
}
