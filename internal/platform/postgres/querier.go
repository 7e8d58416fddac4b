// Copyright (c) 2026 StoreRatings. All rights reserved.

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of [pgxpool.Pool] the repositories depend on.
//
// # Why an interface?
//
// Repositories accept a Querier instead of the concrete pool so tests can
// substitute a pgxmock pool without a running database.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
