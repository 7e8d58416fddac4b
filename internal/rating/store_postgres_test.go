// Copyright (c) 2026 StoreRatings. All rights reserved.

package rating

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
)

func newRepoFixture(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewPostgresRepository(mock), mock
}

func upsertColumns() []string {
	return []string{"id", "user_id", "store_id", "score", "created_at", "updated_at", "inserted"}
}

func TestPostgresRepository_Upsert_Insert(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO ratings").
		WithArgs(int64(10), int64(1), 4).
		WillReturnRows(pgxmock.NewRows(upsertColumns()).
			AddRow(int64(7), int64(10), int64(1), 4, now, now, true))

	rating, created, err := repository.Upsert(context.Background(), 10, 1, 4)
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, int64(7), rating.ID)
	assert.Equal(t, 4, rating.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Upsert_Overwrite(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	createdAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()
	mock.ExpectQuery("INSERT INTO ratings").
		WithArgs(int64(10), int64(1), 2).
		WillReturnRows(pgxmock.NewRows(upsertColumns()).
			AddRow(int64(7), int64(10), int64(1), 2, createdAt, updatedAt, false))

	rating, created, err := repository.Upsert(context.Background(), 10, 1, 2)
	require.NoError(t, err)

	// Same row ID as the original insert: the pair kept exactly one row.
	assert.False(t, created)
	assert.Equal(t, int64(7), rating.ID)
	assert.Equal(t, 2, rating.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Upsert_StoreDeletedConcurrently(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	// The store vanished after the service's existence check; the FK
	// constraint fires and must surface as a store not-found, not a 500.
	mock.ExpectQuery("INSERT INTO ratings").
		WithArgs(int64(10), int64(1), 4).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "ratings_store_id_fkey"})

	_, _, err := repository.Upsert(context.Background(), 10, 1, 4)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Aggregate(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"count", "avg"}).AddRow(4, 4.3))

	aggregate, err := repository.Aggregate(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, Aggregate{Count: 4, Average: 4.3}, aggregate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Aggregate_NoRatings(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"count", "avg"}).AddRow(0, 0.0))

	aggregate, err := repository.Aggregate(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, Aggregate{Count: 0, Average: 0}, aggregate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListForStore(t *testing.T) {
	repository, mock := newRepoFixture(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT r.user_id, u.name, u.email, r.score, r.updated_at").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "email", "score", "updated_at"}).
			AddRow(int64(10), "Jonathan Maximilian Archer", "jon@example.com", 5, now).
			AddRow(int64(11), "Beatrice Wilhelmina Crusher", "bea@example.com", 3, now.Add(-time.Hour)))

	ratings, err := repository.ListForStore(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, ratings, 2)
	assert.Equal(t, int64(10), ratings[0].UserID)
	assert.Equal(t, "jon@example.com", ratings[0].UserEmail)
	assert.Equal(t, 5, ratings[0].Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}
