// Copyright (c) 2026 StoreRatings. All rights reserved.

package stores

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
	"github.com/iamMohdZiya/storeratings/pkg/pointer"
)

func newRepoFixture(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewPostgresRepository(mock), mock
}

func TestPostgresRepository_Create_OwnerConflict(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO stores").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "stores_owner_id_key"})

	err := repository.Create(context.Background(), &Store{
		OwnerID: pointer.To(int64(5)),
		Name:    "The Grand Springfield Emporium",
		Email:   "contact@emporium.example",
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	columns := []string{"id", "name", "email", "address", "rating", "total_ratings", "total_count"}
	mock.ExpectQuery("FROM stores s").
		WithArgs("market", 20, 0).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "The Grand Springfield Emporium", "contact@emporium.example", "12 Market Square", 4.3, 4, 2).
			AddRow(int64(2), "Market Street Groceries Ltd", "hello@msg.example", "3 Market Street", 0.0, 0, 2))

	summaries, total, err := repository.List(context.Background(),
		ListFilter{Search: "market", SortBy: "rating", Descending: true},
		pagination.Params{Page: 1, Limit: 20},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, summaries, 2)
	assert.Equal(t, 4.3, summaries[0].Rating)
	// A store without ratings reports 0.0, never null.
	assert.Equal(t, 0.0, summaries[1].Rating)
	assert.Equal(t, 0, summaries[1].TotalRatings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Exists(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repository.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindByOwner_NoStore(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	mock.ExpectQuery("WHERE owner_id").
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repository.FindByOwner(context.Background(), 5)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
