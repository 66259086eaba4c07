package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"zoo/internal/idgen"
	"zoo/internal/ledger"
	"zoo/internal/platform/postgres"
	id "zoo/pkg/domain"
)

// PostgresStore keeps the ledger in feeding_records and feeding_inventory.
// Quantities travel as decimal text so NUMERIC values are never rounded
// through floating point.
type PostgresStore struct {
	runner *postgres.Runner
}

func NewPostgres(runner *postgres.Runner) *PostgresStore {
	return &PostgresStore{runner: runner}
}

func (s *PostgresStore) Update(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	return s.runner.Run(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &pgTx{tx: tx})
	})
}

type pgTx struct {
	tx    pgx.Tx
	alloc *idgen.Allocator
}

func (t *pgTx) LockFeedItem(ctx context.Context, feed id.FeedItemID) (*ledger.FeedItem, error) {
	var itemID, name, category string
	err := t.tx.QueryRow(ctx,
		`SELECT f_id, feed_name, category FROM feeds WHERE f_id = $1 FOR UPDATE`, feed,
	).Scan(&itemID, &name, &category)
	if err != nil {
		return nil, fmt.Errorf("lock feed item %s: %w", feed, postgres.MapError(err))
	}
	return &ledger.FeedItem{ID: id.FeedItemID(itemID), Name: name, Category: id.FeedCategory(category)}, nil
}

func (t *pgTx) LockLedger(ctx context.Context) error {
	alloc, err := idgen.Lock(ctx, t.tx, idgen.FeedingRecords, idgen.InventoryEntries)
	if err != nil {
		return postgres.MapError(err)
	}
	t.alloc = alloc
	return nil
}

func (t *pgTx) Stock(ctx context.Context, feed id.FeedItemID) (decimal.Decimal, error) {
	var sum string
	err := t.tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_delta_kg), 0)::text FROM feeding_inventory WHERE f_id = $1`, feed,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum stock: %w", postgres.MapError(err))
	}
	return decimal.NewFromString(sum)
}

func (t *pgTx) InsertFeedingRecord(ctx context.Context, rec *ledger.FeedingRecord) error {
	next, err := t.alloc.Next(ctx, idgen.FeedingRecords)
	if err != nil {
		return postgres.MapError(err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO feeding_records (feeding_id, a_id, f_id, feed_date, feeding_amount_kg, fed_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, next, rec.AnimalID, rec.FeedItemID, rec.At, rec.Amount.String(), rec.FedBy)
	if err != nil {
		return postgres.MapError(err)
	}
	rec.ID = id.RecordID(next)
	return nil
}

func (t *pgTx) InsertEntry(ctx context.Context, entry *ledger.InventoryEntry) error {
	next, err := t.alloc.Next(ctx, idgen.InventoryEntries)
	if err != nil {
		return postgres.MapError(err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO feeding_inventory (stock_entry_id, f_id, datetime, quantity_delta_kg, reason, feeding_id, recorded_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
	`, next, entry.FeedItemID, entry.At, entry.Quantity.String(), string(entry.Reason), string(entry.FeedingID), string(entry.RecordedBy))
	if err != nil {
		return postgres.MapError(err)
	}
	entry.ID = next
	return nil
}

func (s *PostgresStore) StockLevels(ctx context.Context) ([]ledger.StockLevel, error) {
	rows, err := s.runner.Pool().Query(ctx, `
		SELECT f.f_id, f.feed_name, f.category, COALESCE(SUM(i.quantity_delta_kg), 0)::text
		FROM feeds f
		LEFT JOIN feeding_inventory i ON i.f_id = f.f_id
		GROUP BY f.f_id, f.feed_name, f.category
		ORDER BY f.f_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", postgres.MapError(err))
	}
	defer rows.Close()

	var out []ledger.StockLevel
	for rows.Next() {
		var itemID, name, category, stock string
		if err := rows.Scan(&itemID, &name, &category, &stock); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", postgres.MapError(err))
		}
		qty, err := decimal.NewFromString(stock)
		if err != nil {
			return nil, fmt.Errorf("parse stock of %s: %w", itemID, err)
		}
		out = append(out, ledger.StockLevel{
			FeedItem: ledger.FeedItem{ID: id.FeedItemID(itemID), Name: name, Category: id.FeedCategory(category)},
			Stock:    qty,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock levels: %w", postgres.MapError(err))
	}
	return out, nil
}

func (s *PostgresStore) RecentFeedings(ctx context.Context, animal id.AnimalID, limit int) ([]ledger.FeedingRecord, error) {
	rows, err := s.runner.Pool().Query(ctx, `
		SELECT feeding_id, a_id, f_id, feeding_amount_kg::text, feed_date, fed_by
		FROM feeding_records
		WHERE a_id = $1
		ORDER BY feed_date DESC, length(feeding_id) DESC, feeding_id DESC
		LIMIT $2
	`, animal, limit)
	if err != nil {
		return nil, fmt.Errorf("list feeding records: %w", postgres.MapError(err))
	}
	defer rows.Close()

	var out []ledger.FeedingRecord
	for rows.Next() {
		var (
			feedingID, animalID, feedID, amount, fedBy string
			at                                         time.Time
		)
		if err := rows.Scan(&feedingID, &animalID, &feedID, &amount, &at, &fedBy); err != nil {
			return nil, fmt.Errorf("scan feeding record: %w", postgres.MapError(err))
		}
		qty, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount of %s: %w", feedingID, err)
		}
		out = append(out, ledger.FeedingRecord{
			ID:         id.RecordID(feedingID),
			AnimalID:   id.AnimalID(animalID),
			FeedItemID: id.FeedItemID(feedID),
			Amount:     qty,
			At:         at,
			FedBy:      id.EmployeeID(fedBy),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feeding records: %w", postgres.MapError(err))
	}
	return out, nil
}

func (s *PostgresStore) Animal(ctx context.Context, animal id.AnimalID) (*ledger.AnimalInfo, error) {
	var name, species string
	err := s.runner.Pool().QueryRow(ctx,
		`SELECT COALESCE(a_name, ''), species FROM animal WHERE a_id = $1`, animal,
	).Scan(&name, &species)
	if err != nil {
		return nil, fmt.Errorf("get animal %s: %w", animal, postgres.MapError(err))
	}
	return &ledger.AnimalInfo{ID: animal, Name: name, Species: species}, nil
}
