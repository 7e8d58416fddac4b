// Copyright (c) 2026 StoreRatings. All rights reserved.

package admin

import (
	"context"
	"fmt"

	"github.com/iamMohdZiya/storeratings/internal/platform/database/schema"
	"github.com/iamMohdZiya/storeratings/internal/platform/dberr"
	"github.com/iamMohdZiya/storeratings/internal/platform/postgres"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// userSortColumns whitelists the directory's sortable columns.
var userSortColumns = map[string]string{
	"name":       "u." + schema.UsersUser.Name,
	"email":      "u." + schema.UsersUser.Email,
	"address":    "u." + schema.UsersUser.Address,
	"role":       "u." + schema.UsersUser.Role,
	"created_at": "u." + schema.UsersUser.CreatedAt,
}

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Totals returns the platform-wide counters in a single round trip.
func (repository *PostgresRepository) Totals(ctx context.Context) (Totals, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM stores),
			(SELECT COUNT(*) FROM ratings)`

	var totals Totals
	err := repository.db.QueryRow(ctx, query).Scan(&totals.Users, &totals.Stores, &totals.Ratings)
	if err != nil {
		return Totals{}, fmt.Errorf("postgres_admin_repo_totals_failed: %w", err)
	}

	return totals, nil
}

// ListUsers returns directory rows matching the filter plus the total count.
//
// The owner join computes each STORE_OWNER's store average with the same
// round(numeric, 1) rule used everywhere else, and stays NULL for the
// other roles.
func (repository *PostgresRepository) ListUsers(ctx context.Context, filter UserFilter, page pagination.Params) ([]*UserRow, int, error) {
	orderColumn, ok := userSortColumns[filter.SortBy]
	if !ok {
		orderColumn = "u." + schema.UsersUser.Name
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.name, u.email, u.address, u.role, u.created_at,
		       ROUND(AVG(r.score)::numeric, 1)::float8 AS store_rating,
		       COUNT(*) OVER() AS total_count
		FROM users u
		LEFT JOIN stores s ON s.owner_id = u.id
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE ($1 = '' OR u.role = $1)
		  AND ($2 = '' OR u.name ILIKE '%%' || $2 || '%%'
		       OR u.email ILIKE '%%' || $2 || '%%'
		       OR u.address ILIKE '%%' || $2 || '%%')
		GROUP BY u.id
		ORDER BY %s %s
		LIMIT $3 OFFSET $4`, orderColumn, direction)

	rows, err := repository.db.Query(ctx, query, string(filter.Role), filter.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*UserRow, 0)
	total := 0

	for rows.Next() {
		row := &UserRow{}
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Email,
			&row.Address,
			&row.Role,
			&row.CreatedAt,
			&row.StoreRating,
			&total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user_row")
		}
		users = append(users, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_users_rows")
	}

	return users, total, nil
}
