package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	id "zoo/pkg/domain"
)

// Tx is one unit of work against the ledger. Calls must follow the locking
// protocol: LockFeedItem, then LockLedger, then reads and inserts. Insert
// methods allocate ids and fail unless LockLedger succeeded first.
type Tx interface {
	// LockFeedItem takes a row lock on the feed item. Unknown items are
	// reported with sentinel.ErrNotFound.
	LockFeedItem(ctx context.Context, feed id.FeedItemID) (*FeedItem, error)
	// LockLedger serializes all writers of feeding records and inventory
	// entries until the transaction ends.
	LockLedger(ctx context.Context) error
	// Stock sums the signed quantities of the feed item.
	Stock(ctx context.Context, feed id.FeedItemID) (decimal.Decimal, error)
	InsertFeedingRecord(ctx context.Context, rec *FeedingRecord) error
	InsertEntry(ctx context.Context, entry *InventoryEntry) error
}

// Store persists the inventory ledger.
type Store interface {
	// Update runs fn in one transaction. The transaction commits when fn
	// returns nil and rolls back fully otherwise.
	Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	StockLevels(ctx context.Context) ([]StockLevel, error)
	RecentFeedings(ctx context.Context, animal id.AnimalID, limit int) ([]FeedingRecord, error)
	Animal(ctx context.Context, animal id.AnimalID) (*AnimalInfo, error)
}
