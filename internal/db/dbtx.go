package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql methods shared by *sql.DB and
// *sql.Tx. Repositories that participate in transactions are built over
// it, so the same repository type works standalone or tx-scoped.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
