package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dErrors "zoo/pkg/domain-errors"
	txcontext "zoo/pkg/platform/tx"
)

const defaultTxTimeout = 5 * time.Second

// Runner executes units of work in their own pgx transaction.
type Runner struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewRunner returns a Runner. A zero timeout selects the default.
func NewRunner(pool *pgxpool.Pool, timeout time.Duration) *Runner {
	return &Runner{pool: pool, timeout: timeout}
}

// Pool exposes the underlying pool for read-only queries.
func (r *Runner) Pool() *pgxpool.Pool {
	return r.pool
}

// Run begins a transaction, invokes fn and commits if fn returns nil.
// Any error from fn or commit rolls back the whole unit. The transaction is
// also placed in the context passed to fn for stores that read it from there.
// A Run nested inside another joins the outer transaction and leaves commit
// to it.
func (r *Runner) Run(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if txcontext.InTx(ctx) {
		outer, _ := txcontext.From(ctx)
		return fn(ctx, outer)
	}

	timeout := r.timeout
	if timeout == 0 {
		timeout = defaultTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return MapError(err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(txcontext.WithTx(ctx, tx), tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return MapError(err)
	}
	return nil
}
