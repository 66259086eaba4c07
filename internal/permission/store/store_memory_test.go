package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo/internal/permission"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	st := NewInMemory()
	st.AddShift("E002", "A1", start, end)
	st.SetRequiredSkill("A7", "Penguin")
	st.GrantSkill("E002", "Penguin")

	t.Run("shift window is inclusive at both ends", func(t *testing.T) {
		for _, at := range []time.Time{start, start.Add(time.Hour), end} {
			ok, err := st.HasActiveShift(ctx, "E002", "A1", at)
			require.NoError(t, err)
			assert.True(t, ok, at)
		}
		for _, at := range []time.Time{start.Add(-time.Second), end.Add(time.Second)} {
			ok, err := st.HasActiveShift(ctx, "E002", "A1", at)
			require.NoError(t, err)
			assert.False(t, ok, at)
		}
	})

	t.Run("shift is specific to the animal", func(t *testing.T) {
		ok, err := st.HasActiveShift(ctx, "E002", "A2", start)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown animals need no skill", func(t *testing.T) {
		skill, err := st.RequiredSkill(ctx, "A404")
		require.NoError(t, err)
		assert.Equal(t, permission.DefaultSkill, skill)
	})

	t.Run("skill grants", func(t *testing.T) {
		ok, err := st.HasSkill(ctx, "E002", "Penguin")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = st.HasSkill(ctx, "E003", "Penguin")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
