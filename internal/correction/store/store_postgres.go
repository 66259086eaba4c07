package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"zoo/internal/correction"
	"zoo/internal/idgen"
	"zoo/internal/platform/postgres"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/sentinel"
)

// keyColumns maps correctable tables to their primary key. Table and column
// names reach SQL only through correction.Field values and this map.
var keyColumns = map[string]string{
	correction.TableFeedingRecords: "feeding_id",
	correction.TableStateRecords:   "record_id",
}

var castTypes = map[string]string{
	"feeding_amount_kg": "numeric",
	"weight":            "numeric",
	"state_id":          "integer",
}

type PostgresStore struct {
	runner *postgres.Runner
}

func NewPostgres(runner *postgres.Runner) *PostgresStore {
	return &PostgresStore{runner: runner}
}

func (s *PostgresStore) Update(ctx context.Context, fn func(ctx context.Context, tx correction.Tx) error) error {
	return s.runner.Run(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &pgTx{tx: tx})
	})
}

type pgTx struct {
	tx    pgx.Tx
	alloc *idgen.Allocator
}

func (t *pgTx) LockRecord(ctx context.Context, f correction.Field, record id.RecordID) (*correction.Snapshot, error) {
	switch f.Table {
	case correction.TableFeedingRecords:
		return t.lockFeeding(ctx, f, record)
	case correction.TableStateRecords:
		return t.lockState(ctx, f, record)
	}
	return nil, fmt.Errorf("lock %s: %w", f, sentinel.ErrInvalidState)
}

func (t *pgTx) lockFeeding(ctx context.Context, f correction.Field, record id.RecordID) (*correction.Snapshot, error) {
	var feed string
	err := t.tx.QueryRow(ctx,
		`SELECT f_id FROM feeding_records WHERE feeding_id = $1`, string(record),
	).Scan(&feed)
	if err != nil {
		return nil, fmt.Errorf("find feeding record %s: %w", record, postgres.MapError(err))
	}
	// Same order as a feeding transaction: feed item row, then ledger tables.
	if _, err := t.tx.Exec(ctx, `SELECT 1 FROM feeds WHERE f_id = $1 FOR UPDATE`, feed); err != nil {
		return nil, fmt.Errorf("lock feed item %s: %w", feed, postgres.MapError(err))
	}
	alloc, err := idgen.Lock(ctx, t.tx, idgen.FeedingRecords, idgen.InventoryEntries)
	if err != nil {
		return nil, postgres.MapError(err)
	}
	t.alloc = alloc

	var current, creator, animal string
	err = t.tx.QueryRow(ctx, `
		SELECT feeding_amount_kg::text, fed_by, a_id
		FROM feeding_records
		WHERE feeding_id = $1
		FOR UPDATE
	`, string(record)).Scan(&current, &creator, &animal)
	if err != nil {
		return nil, fmt.Errorf("lock feeding record %s: %w", record, postgres.MapError(err))
	}
	return &correction.Snapshot{
		Current:    current,
		CreatorID:  id.EmployeeID(creator),
		AnimalID:   id.AnimalID(animal),
		FeedItemID: id.FeedItemID(feed),
	}, nil
}

func (t *pgTx) lockState(ctx context.Context, f correction.Field, record id.RecordID) (*correction.Snapshot, error) {
	var weight, status, creator, animal string
	err := t.tx.QueryRow(ctx, `
		SELECT COALESCE(weight::text, ''), state_id::text, recorded_by, a_id
		FROM animal_state_record
		WHERE record_id = $1
		FOR UPDATE
	`, string(record)).Scan(&weight, &status, &creator, &animal)
	if err != nil {
		return nil, fmt.Errorf("lock state record %s: %w", record, postgres.MapError(err))
	}
	current := weight
	if f == correction.StateStatus {
		current = status
	}
	return &correction.Snapshot{
		Current:   current,
		CreatorID: id.EmployeeID(creator),
		AnimalID:  id.AnimalID(animal),
	}, nil
}

func (t *pgTx) UpdateField(ctx context.Context, f correction.Field, record id.RecordID, value string) error {
	key, ok := keyColumns[f.Table]
	cast, castOK := castTypes[f.Column]
	if !ok || !castOK {
		return fmt.Errorf("update %s: %w", f, sentinel.ErrInvalidState)
	}
	stmt := fmt.Sprintf(`UPDATE %s SET %s = $1::%s WHERE %s = $2`, f.Table, f.Column, cast, key)
	tag, err := t.tx.Exec(ctx, stmt, value, string(record))
	if err != nil {
		return postgres.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (t *pgTx) Stock(ctx context.Context, feed id.FeedItemID) (decimal.Decimal, error) {
	if t.alloc == nil {
		return decimal.Zero, fmt.Errorf("stock of %s read outside the ledger locks: %w", feed, sentinel.ErrInvalidState)
	}
	var sum string
	err := t.tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_delta_kg), 0)::text FROM feeding_inventory WHERE f_id = $1`, string(feed),
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum stock: %w", postgres.MapError(err))
	}
	return decimal.NewFromString(sum)
}

func (t *pgTx) AppendAdjustment(ctx context.Context, adj correction.Adjustment) (string, error) {
	next, err := t.alloc.Next(ctx, idgen.InventoryEntries)
	if err != nil {
		return "", postgres.MapError(err)
	}
	if adj.Quantity.IsZero() {
		return "", fmt.Errorf("zero adjustment: %w", sentinel.ErrInvalidState)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO feeding_inventory (stock_entry_id, f_id, datetime, quantity_delta_kg, reason, feeding_id, recorded_by)
		VALUES ($1, $2, $3, $4, 'adjustment', $5, NULLIF($6, ''))
	`, next, string(adj.FeedItemID), adj.At, adj.Quantity.String(), string(adj.FeedingID), string(adj.RecordedBy))
	if err != nil {
		return "", postgres.MapError(err)
	}
	return next, nil
}

func (s *PostgresStore) EmployeeNames(ctx context.Context, ids []id.EmployeeID) (map[id.EmployeeID]string, error) {
	keys := make([]string, len(ids))
	for i, e := range ids {
		keys[i] = string(e)
	}
	rows, err := s.runner.Pool().Query(ctx,
		`SELECT e_id, e_name FROM employee WHERE e_id = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("list employee names: %w", postgres.MapError(err))
	}
	defer rows.Close()

	names := make(map[id.EmployeeID]string, len(ids))
	for rows.Next() {
		var eid, name string
		if err := rows.Scan(&eid, &name); err != nil {
			return nil, fmt.Errorf("scan employee name: %w", postgres.MapError(err))
		}
		names[id.EmployeeID(eid)] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employee names: %w", postgres.MapError(err))
	}
	return names, nil
}
