// Copyright (c) 2026 StoreRatings. All rights reserved.

package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/internal/platform/database/schema"
	"github.com/iamMohdZiya/storeratings/internal/platform/dberr"
	"github.com/iamMohdZiya/storeratings/internal/platform/postgres"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// sortColumns whitelists the catalogue's sortable columns. Anything else
// falls back to name to keep user input out of the ORDER BY clause.
var sortColumns = map[string]string{
	"name":       schema.StoresStore.Name,
	"email":      schema.StoresStore.Email,
	"address":    schema.StoresStore.Address,
	"created_at": schema.StoresStore.CreatedAt,
	"rating":     "rating",
}

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists a new store and backfills the generated ID.
func (repository *PostgresRepository) Create(ctx context.Context, store *Store) error {
	const query = `
		INSERT INTO stores (owner_id, name, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}
	store.UpdatedAt = now

	err := repository.db.QueryRow(ctx, query,
		store.OwnerID,
		store.Name,
		store.Email,
		store.Address,
		store.CreatedAt,
		store.UpdatedAt,
	).Scan(&store.ID)

	if err != nil {
		// UNIQUE(owner_id) carries the one-owner-one-store rule.
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Owner already manages a store")
		}
		return fmt.Errorf("postgres_store_repo_create_failed: %w", err)
	}

	return nil
}

// FindByID retrieves a store record by its unique ID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Store, error) {
	const query = `
		SELECT id, owner_id, name, email, address, created_at, updated_at
		FROM stores
		WHERE id = $1`

	store := &Store{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.OwnerID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Store")
		}
		return nil, fmt.Errorf("postgres_store_repo_find_by_id_failed: %w", err)
	}

	return store, nil
}

// FindByOwner retrieves the store managed by the given owner account.
func (repository *PostgresRepository) FindByOwner(ctx context.Context, ownerID int64) (*Store, error) {
	const query = `
		SELECT id, owner_id, name, email, address, created_at, updated_at
		FROM stores
		WHERE owner_id = $1`

	store := &Store{}
	err := repository.db.QueryRow(ctx, query, ownerID).Scan(
		&store.ID,
		&store.OwnerID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Store")
		}
		return nil, fmt.Errorf("postgres_store_repo_find_by_owner_failed: %w", err)
	}

	return store, nil
}

// Exists reports whether a store with the given ID exists.
func (repository *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_store_repo_exists_failed: %w", err)
	}

	return exists, nil
}

// List returns catalogue rows with live aggregates and the total match count.
//
// The aggregate is recomputed from the rating rows on every call — the
// catalogue never serves a stored average that could drift from the data.
func (repository *PostgresRepository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]*Summary, int, error) {
	orderColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		orderColumn = schema.StoresStore.Name
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}

	// Window count runs after grouping, yielding the total number of
	// matching stores regardless of LIMIT.
	query := fmt.Sprintf(`
		SELECT s.id, s.name, s.email, s.address,
		       COALESCE(ROUND(AVG(r.score)::numeric, 1), 0)::float8 AS rating,
		       COUNT(r.id) AS total_ratings,
		       COUNT(*) OVER() AS total_count
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE ($1 = '' OR s.name ILIKE '%%' || $1 || '%%' OR s.address ILIKE '%%' || $1 || '%%')
		GROUP BY s.id
		ORDER BY %s %s
		LIMIT $2 OFFSET $3`, orderColumn, direction)

	rows, err := repository.db.Query(ctx, query, filter.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_stores")
	}
	defer rows.Close()

	summaries := make([]*Summary, 0)
	total := 0

	for rows.Next() {
		summary := &Summary{}
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Email,
			&summary.Address,
			&summary.Rating,
			&summary.TotalRatings,
			&total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_store_summary")
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_stores_rows")
	}

	return summaries, total, nil
}
