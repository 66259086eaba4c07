// Package tx carries the open pgx transaction through a request context so
// stores called inside postgres.Runner.Run join it instead of the pool.
package tx

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type ctxKey struct{}

// WithTx binds tx to ctx. A nil tx leaves ctx untouched.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, tx)
}

func From(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(ctxKey{}).(pgx.Tx)
	return tx, ok && tx != nil
}

// InTx reports whether ctx is already inside a transaction.
func InTx(ctx context.Context) bool {
	_, ok := From(ctx)
	return ok
}
