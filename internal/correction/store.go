package correction

import (
	"context"

	"github.com/shopspring/decimal"

	id "zoo/pkg/domain"
)

// Tx is one correction unit of work in the primary store.
type Tx interface {
	// LockRecord reads the current value of f on record and locks the row
	// until the transaction ends. For ledger quantities it also takes the
	// feed item row lock and the ledger table locks, in the same order as a
	// feeding transaction. Missing records return sentinel.ErrNotFound.
	LockRecord(ctx context.Context, f Field, record id.RecordID) (*Snapshot, error)
	UpdateField(ctx context.Context, f Field, record id.RecordID, value string) error
	// Stock sums the ledger for feed. It requires the ledger locks taken by
	// LockRecord.
	Stock(ctx context.Context, feed id.FeedItemID) (decimal.Decimal, error)
	// AppendAdjustment inserts an adjustment inventory entry and returns its
	// id. It requires the ledger locks taken by LockRecord.
	AppendAdjustment(ctx context.Context, adj Adjustment) (string, error)
}

type Store interface {
	Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	EmployeeNames(ctx context.Context, ids []id.EmployeeID) (map[id.EmployeeID]string, error)
}
