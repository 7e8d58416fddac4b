// Copyright (c) 2026 StoreRatings. All rights reserved.

package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/internal/platform/database/schema"
	"github.com/iamMohdZiya/storeratings/internal/platform/dberr"
	"github.com/iamMohdZiya/storeratings/internal/platform/postgres"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts or overwrites the caller's rating in one statement.
//
// The UNIQUE(user_id, store_id) constraint routes concurrent submissions
// through ON CONFLICT instead of erroring, so the one-rating-per-pair rule
// holds without a read-check-write sequence. The xmax system column is zero
// only on freshly inserted rows, which distinguishes insert from update
// without a second query.
func (repository *PostgresRepository) Upsert(ctx context.Context, userID, storeID int64, score int) (*Rating, bool, error) {
	const query = `
		INSERT INTO ratings (user_id, store_id, score, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = now()
		RETURNING id, user_id, store_id, score, created_at, updated_at, (xmax = 0) AS inserted`

	rating := &Rating{}
	var inserted bool

	err := repository.db.QueryRow(ctx, query, userID, storeID, score).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.StoreID,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
		&inserted,
	)
	if err != nil {
		// The store can be deleted between the service's existence check
		// and this insert; the FK constraint is the authoritative answer.
		if dberr.IsForeignKeyViolation(err) {
			return nil, false, apperr.NotFound("Store")
		}
		return nil, false, fmt.Errorf("postgres_rating_repo_upsert_failed: %w", err)
	}

	return rating, inserted, nil
}

// Aggregate recomputes the (count, average) pair from the rating rows.
//
// Rounding happens in SQL with round(numeric, 1), which rounds half away
// from zero. The same rule applies everywhere an average is produced so the
// catalogue and the dashboards can never disagree on the same data.
func (repository *PostgresRepository) Aggregate(ctx context.Context, storeID int64) (Aggregate, error) {
	const query = `
		SELECT COUNT(*), COALESCE(ROUND(AVG(score)::numeric, 1), 0)::float8
		FROM ratings
		WHERE store_id = $1`

	var aggregate Aggregate
	err := repository.db.QueryRow(ctx, query, storeID).Scan(&aggregate.Count, &aggregate.Average)
	if err != nil {
		return Aggregate{}, fmt.Errorf("postgres_rating_repo_aggregate_failed: %w", err)
	}

	return aggregate, nil
}

// ListForStore returns the store's ratings joined with submitter identities.
func (repository *PostgresRepository) ListForStore(ctx context.Context, storeID int64) ([]*StoreRating, error) {
	query := fmt.Sprintf(`
		SELECT r.user_id, u.name, u.email, r.score, r.updated_at
		FROM %s r
		JOIN %s u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.%s DESC`,
		schema.RatingsRating.Table, schema.UsersUser.Table, schema.RatingsRating.UpdatedAt)

	rows, err := repository.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_store_ratings")
	}
	defer rows.Close()

	ratings := make([]*StoreRating, 0)
	for rows.Next() {
		entry := &StoreRating{}
		if err := rows.Scan(&entry.UserID, &entry.UserName, &entry.UserEmail, &entry.Score, &entry.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_store_rating")
		}
		ratings = append(ratings, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_store_ratings_rows")
	}

	return ratings, nil
}

// FindByUserAndStore returns the caller's current rating for a store.
func (repository *PostgresRepository) FindByUserAndStore(ctx context.Context, userID, storeID int64) (*Rating, error) {
	const query = `
		SELECT id, user_id, store_id, score, created_at, updated_at
		FROM ratings
		WHERE user_id = $1 AND store_id = $2`

	rating := &Rating{}
	err := repository.db.QueryRow(ctx, query, userID, storeID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.StoreID,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Rating")
		}
		return nil, fmt.Errorf("postgres_rating_repo_find_failed: %w", err)
	}

	return rating, nil
}
