package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	txcontext "zoo/pkg/platform/tx"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn returns the transaction carried by ctx when present, otherwise fallback.
func Conn(ctx context.Context, fallback Querier) Querier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return fallback
}
