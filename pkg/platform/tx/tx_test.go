package tx

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// stubTx satisfies pgx.Tx for identity checks only.
type stubTx struct{ pgx.Tx }

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("nil tx is not bound", func(t *testing.T) {
		assert.Equal(t, ctx, WithTx(ctx, nil))
		assert.False(t, InTx(ctx))
	})

	t.Run("bound tx is returned", func(t *testing.T) {
		want := &stubTx{}
		got, ok := From(WithTx(ctx, want))
		assert.True(t, ok)
		assert.Same(t, want, got)
	})
}
