// Copyright (c) 2026 StoreRatings. All rights reserved.

package admin

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
	"github.com/iamMohdZiya/storeratings/pkg/pointer"
)

func newRepoFixture(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewPostgresRepository(mock), mock
}

func TestPostgresRepository_Totals(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(pgxmock.NewRows([]string{"users", "stores", "ratings"}).AddRow(12, 3, 40))

	totals, err := repository.Totals(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Totals{Users: 12, Stores: 3, Ratings: 40}, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListUsers(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	now := time.Now()
	columns := []string{"id", "name", "email", "address", "role", "created_at", "store_rating", "total_count"}
	mock.ExpectQuery("FROM users u").
		WithArgs("STORE_OWNER", "", 20, 0).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(5), "Oswald Bartholomew Fringe", "oswald@example.com", "9 Dock Road", sec.RoleStoreOwner, now, pointer.To(4.3), 1))

	users, total, err := repository.ListUsers(context.Background(),
		UserFilter{Role: sec.RoleStoreOwner, SortBy: "email"},
		pagination.Params{Page: 1, Limit: 20},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, sec.RoleStoreOwner, users[0].Role)
	require.NotNil(t, users[0].StoreRating)
	assert.Equal(t, 4.3, *users[0].StoreRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListUsers_NoOwnerRating(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	now := time.Now()
	columns := []string{"id", "name", "email", "address", "role", "created_at", "store_rating", "total_count"}
	mock.ExpectQuery("FROM users u").
		WithArgs("", "archer", 20, 0).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "Jonathan Maximilian Archer", "jon@example.com", "42 Galaxy Way", sec.RoleNormalUser, now, nil, 1))

	users, _, err := repository.ListUsers(context.Background(),
		UserFilter{Search: "archer"},
		pagination.Params{Page: 1, Limit: 20},
	)
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Nil(t, users[0].StoreRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}
