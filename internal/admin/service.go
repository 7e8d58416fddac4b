// Copyright (c) 2026 StoreRatings. All rights reserved.

// Administration use cases.
package admin

import (
	"context"

	"github.com/iamMohdZiya/storeratings/internal/auth"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
	"github.com/iamMohdZiya/storeratings/internal/platform/validate"
	"github.com/iamMohdZiya/storeratings/internal/stores"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// AccountCreator enrolls accounts with an explicit role. Satisfied by the
// auth service so the admin path reuses the same policy validation.
type AccountCreator interface {
	CreateUser(ctx context.Context, input auth.SignupInput, role sec.Role) (*auth.User, error)
}

// StoreCatalogue exposes the catalogue operations the admin surface needs.
// Satisfied by the stores service.
type StoreCatalogue interface {
	Create(ctx context.Context, input stores.CreateInput) (*stores.Store, error)
	List(ctx context.Context, filter stores.ListFilter, page pagination.Params) ([]*stores.Summary, int, error)
}

// Service implements the administration use cases.
//
// Account and store creation delegate to the owning feature services so the
// validation rules live in exactly one place; this service adds the
// admin-only reads on top.
type Service struct {
	repository Repository
	accounts   AccountCreator
	stores     StoreCatalogue
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(repository Repository, accounts AccountCreator, stores StoreCatalogue) *Service {
	return &Service{
		repository: repository,
		accounts:   accounts,
		stores:     stores,
	}
}

// Dashboard returns the platform-wide totals.
func (service *Service) Dashboard(ctx context.Context) (Totals, error) {
	return service.repository.Totals(ctx)
}

// ListUsers returns directory rows matching the filter. A set Role must be
// one of the three platform roles.
func (service *Service) ListUsers(ctx context.Context, filter UserFilter, page pagination.Params) ([]*UserRow, int, error) {
	if filter.Role != "" {
		v := &validate.Validator{}
		if err := v.Custom("role", !filter.Role.Valid(), "Must be one of: ADMIN, NORMAL_USER, STORE_OWNER").Err(); err != nil {
			return nil, 0, err
		}
	}
	return service.repository.ListUsers(ctx, filter, page)
}

// CreateUser enrolls an account with the given role on behalf of an admin.
func (service *Service) CreateUser(ctx context.Context, input auth.SignupInput, role sec.Role) (*auth.User, error) {
	return service.accounts.CreateUser(ctx, input, role)
}

// CreateStore registers a new store, optionally assigned to an owner.
func (service *Service) CreateStore(ctx context.Context, input stores.CreateInput) (*stores.Store, error) {
	return service.stores.Create(ctx, input)
}

// ListStores returns catalogue rows with live aggregates.
func (service *Service) ListStores(ctx context.Context, filter stores.ListFilter, page pagination.Params) ([]*stores.Summary, int, error) {
	return service.stores.List(ctx, filter, page)
}
