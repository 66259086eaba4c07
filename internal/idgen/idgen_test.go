package idgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "1", FeedingRecords.Format(1))
	assert.Equal(t, "1024", InventoryEntries.Format(1024))
	assert.Equal(t, "S0007", Shifts.Format(7))
	assert.Equal(t, "S12345", Shifts.Format(12345))
}

func TestParse(t *testing.T) {
	cases := []struct {
		table Table
		id    string
		n     int64
		ok    bool
	}{
		{FeedingRecords, "42", 42, true},
		{FeedingRecords, "F1", 0, false},
		{FeedingRecords, "", 0, false},
		{FeedingRecords, "-3", 0, false},
		{Shifts, "S0042", 42, true},
		{Shifts, "42", 0, false},
		{Shifts, "S", 0, false},
		{Shifts, "SX01", 0, false},
	}
	for _, tc := range cases {
		n, ok := tc.table.Parse(tc.id)
		assert.Equal(t, tc.ok, ok, tc.id)
		assert.Equal(t, tc.n, n, tc.id)
	}
}

func TestNext(t *testing.T) {
	t.Run("empty table starts at one", func(t *testing.T) {
		assert.Equal(t, "1", StateRecords.Next(nil))
		assert.Equal(t, "S0001", Shifts.Next(nil))
	})

	t.Run("numeric maximum, not lexical", func(t *testing.T) {
		assert.Equal(t, "11", FeedingRecords.Next([]string{"9", "10", "2"}))
	})

	t.Run("non-conforming ids are ignored", func(t *testing.T) {
		assert.Equal(t, "4", InventoryEntries.Next([]string{"F1", "3", "seed-99"}))
		assert.Equal(t, "S0010", Shifts.Next([]string{"S0009", "legacy", "120"}))
	})
}

func TestMaxQuery(t *testing.T) {
	assert.Equal(t,
		`SELECT COALESCE(MAX(CASE WHEN feeding_id ~ '^[0-9]+$' THEN CAST(feeding_id AS BIGINT) END), 0) + 1 FROM feeding_records`,
		FeedingRecords.maxQuery())
	assert.Equal(t,
		`SELECT COALESCE(MAX(CASE WHEN shift_id ~ '^S[0-9]+$' THEN CAST(SUBSTRING(shift_id FROM 2) AS BIGINT) END), 0) + 1 FROM employee_shift`,
		Shifts.maxQuery())
}

func TestAllocatorGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("lock requires tables and a transaction", func(t *testing.T) {
		_, err := Lock(ctx, nil)
		require.Error(t, err)
		_, err = Lock(ctx, nil, FeedingRecords)
		require.Error(t, err)
	})

	t.Run("allocating for an unlocked table fails", func(t *testing.T) {
		a := &Allocator{locked: map[string]Table{FeedingRecords.Name: FeedingRecords}}
		_, err := a.Next(ctx, Shifts)
		require.ErrorIs(t, err, ErrNotLocked)

		var none *Allocator
		_, err = none.Next(ctx, FeedingRecords)
		require.ErrorIs(t, err, ErrNotLocked)
	})
}
