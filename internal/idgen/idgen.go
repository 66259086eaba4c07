// Package idgen mints ascending, human-readable identifiers for ledger rows.
//
// Identifiers are derived from the current maximum in the target table plus
// one. Reading the maximum and inserting the next row is only safe while the
// inserting transaction holds a lock that excludes other writers of the same
// table, so an Allocator can only be obtained from Lock and only allocates
// for the tables it locked.
package idgen

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Table describes an id column and its formatting convention.
// An empty Prefix means a plain integer string ("42"); otherwise the number is
// zero-padded to Width after the prefix ("S0042").
type Table struct {
	Name   string
	Column string
	Prefix string
	Width  int
}

var (
	FeedingRecords   = Table{Name: "feeding_records", Column: "feeding_id"}
	InventoryEntries = Table{Name: "feeding_inventory", Column: "stock_entry_id"}
	StateRecords     = Table{Name: "animal_state_record", Column: "record_id"}
	Shifts           = Table{Name: "employee_shift", Column: "shift_id", Prefix: "S", Width: 4}
)

// ErrNotLocked is returned when allocating for a table the allocator did not lock.
var ErrNotLocked = errors.New("idgen: table not locked by this transaction")

// Format renders the n-th identifier of the table.
func (t Table) Format(n int64) string {
	if t.Prefix == "" {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%s%0*d", t.Prefix, t.Width, n)
}

// Parse extracts the sequence number from an identifier of this table.
// Identifiers that do not follow the convention (seeded codes such as "F1"
// in a numeric table) report false and are ignored when computing the maximum.
func (t Table) Parse(id string) (int64, bool) {
	if t.Prefix != "" {
		if !strings.HasPrefix(id, t.Prefix) {
			return 0, false
		}
		id = id[len(t.Prefix):]
	}
	if id == "" {
		return 0, false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Next returns the identifier following the largest conforming id in ids.
func (t Table) Next(ids []string) string {
	var max int64
	for _, id := range ids {
		if n, ok := t.Parse(id); ok && n > max {
			max = n
		}
	}
	return t.Format(max + 1)
}

func (t Table) maxQuery() string {
	pattern := "^[0-9]+$"
	expr := t.Column
	if t.Prefix != "" {
		pattern = "^" + t.Prefix + "[0-9]+$"
		expr = fmt.Sprintf("SUBSTRING(%s FROM %d)", t.Column, len(t.Prefix)+1)
	}
	return fmt.Sprintf(
		`SELECT COALESCE(MAX(CASE WHEN %s ~ '%s' THEN CAST(%s AS BIGINT) END), 0) + 1 FROM %s`,
		t.Column, pattern, expr, t.Name,
	)
}

// LockMode is the table lock taken for allocation. SHARE ROW EXCLUSIVE
// conflicts with itself and with every row write, so concurrent allocators
// and writers of the same tables are serialized until commit.
const LockMode = "SHARE ROW EXCLUSIVE"

// Allocator mints identifiers inside one transaction for the tables it locked.
type Allocator struct {
	tx     pgx.Tx
	locked map[string]Table
}

// Lock acquires LockMode on all tables in one statement and returns an
// Allocator bound to tx. The lock is held until tx commits or rolls back.
func Lock(ctx context.Context, tx pgx.Tx, tables ...Table) (*Allocator, error) {
	if len(tables) == 0 {
		return nil, errors.New("idgen: no tables to lock")
	}
	if tx == nil {
		return nil, errors.New("idgen: transaction is required")
	}
	names := make([]string, 0, len(tables))
	locked := make(map[string]Table, len(tables))
	for _, t := range tables {
		names = append(names, t.Name)
		locked[t.Name] = t
	}
	stmt := fmt.Sprintf("LOCK TABLE %s IN %s MODE", strings.Join(names, ", "), LockMode)
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return nil, fmt.Errorf("lock %s: %w", strings.Join(names, ", "), err)
	}
	return &Allocator{tx: tx, locked: locked}, nil
}

// Next returns the next identifier for t.
func (a *Allocator) Next(ctx context.Context, t Table) (string, error) {
	if a == nil {
		return "", ErrNotLocked
	}
	if _, ok := a.locked[t.Name]; !ok {
		return "", fmt.Errorf("%w: %s", ErrNotLocked, t.Name)
	}
	var n int64
	if err := a.tx.QueryRow(ctx, t.maxQuery()).Scan(&n); err != nil {
		return "", fmt.Errorf("allocate %s id: %w", t.Name, err)
	}
	return t.Format(n), nil
}
