// Copyright (c) 2026 StoreRatings. All rights reserved.

// Store catalogue use cases.
package stores

import (
	"context"

	"github.com/iamMohdZiya/storeratings/internal/auth"
	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
	"github.com/iamMohdZiya/storeratings/internal/platform/validate"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// AccountDirectory resolves user accounts when assigning a store owner.
type AccountDirectory interface {
	// FindByID returns the account or [apperr.NotFound].
	FindByID(ctx context.Context, id int64) (*auth.User, error)
}

// Service implements catalogue use cases on top of the [Repository].
type Service struct {
	stores   Repository
	accounts AccountDirectory
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(stores Repository, accounts AccountDirectory) *Service {
	return &Service{
		stores:   stores,
		accounts: accounts,
	}
}

// CreateInput holds the data required to register a new store.
type CreateInput struct {
	Name    string
	Email   string
	Address string
	// OwnerID optionally links the store to a STORE_OWNER account.
	OwnerID *int64
}

// Create validates and registers a new store. Reserved for the admin
// surface; the handler layer guards it with the ADMIN role check.
//
// # Business Rules
//   - Name must be 20-60 characters, address is limited to 400 characters.
//   - An assigned owner must exist and hold the STORE_OWNER role.
//   - An owner manages at most one store (unique constraint on owner_id).
//
// # Returns
//   - The newly created [*Store].
//   - [apperr.ValidationError] if a rule fails, [apperr.Conflict] if the
//     owner already manages a store.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Store, error) {
	email := auth.NormalizeEmail(input.Email)

	v := &validate.Validator{}
	err := v.
		Required("name", input.Name).
		MinLen("name", input.Name, 20).
		MaxLen("name", input.Name, 60).
		Email("email", email).
		MaxLen("address", input.Address, 400).
		Err()
	if err != nil {
		return nil, err
	}

	if input.OwnerID != nil {
		owner, err := service.accounts.FindByID(ctx, *input.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner.Role != sec.RoleStoreOwner {
			return nil, apperr.ValidationError("Validation failed",
				apperr.FieldError{Field: "owner_id", Message: "Account does not hold the STORE_OWNER role"},
			)
		}
	}

	store := &Store{
		OwnerID: input.OwnerID,
		Name:    input.Name,
		Email:   email,
		Address: input.Address,
	}

	if err := service.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// List returns catalogue rows matching the filter plus the total match count.
func (service *Service) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]*Summary, int, error) {
	return service.stores.List(ctx, filter, page)
}

// GetByID returns a single store or [apperr.NotFound].
func (service *Service) GetByID(ctx context.Context, id int64) (*Store, error) {
	return service.stores.FindByID(ctx, id)
}
