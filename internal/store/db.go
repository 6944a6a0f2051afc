package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB (and *sql.Tx) the Postgres stores use.
// Stores depend on it rather than *sql.DB so they can run against either.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
