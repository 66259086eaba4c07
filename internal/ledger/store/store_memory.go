package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"zoo/internal/idgen"
	"zoo/internal/ledger"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/sentinel"
)

// InMemoryStore is a ledger.Store for tests. Update holds one store-wide
// mutex for the whole unit of work, which is at least as strict as the
// row and table locks of the Postgres store. Writes are staged and applied
// only when fn returns nil.
type InMemoryStore struct {
	txMu sync.Mutex // serializes Update
	mu   sync.RWMutex

	items   map[id.FeedItemID]ledger.FeedItem
	animals map[id.AnimalID]ledger.AnimalInfo
	records []ledger.FeedingRecord
	entries []ledger.InventoryEntry
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		items:   make(map[id.FeedItemID]ledger.FeedItem),
		animals: make(map[id.AnimalID]ledger.AnimalInfo),
	}
}

func (s *InMemoryStore) AddFeedItem(item ledger.FeedItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
}

func (s *InMemoryStore) AddAnimal(info ledger.AnimalInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals[info.ID] = info
}

// Records returns a copy of every committed feeding record.
func (s *InMemoryStore) Records() []ledger.FeedingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ledger.FeedingRecord(nil), s.records...)
}

// Entries returns a copy of every committed inventory entry.
func (s *InMemoryStore) Entries() []ledger.InventoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ledger.InventoryEntry(nil), s.entries...)
}

func (s *InMemoryStore) Update(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, tx.records...)
	s.entries = append(s.entries, tx.entries...)
	return nil
}

type memTx struct {
	store   *InMemoryStore
	locked  bool
	records []ledger.FeedingRecord
	entries []ledger.InventoryEntry
}

func (t *memTx) LockFeedItem(_ context.Context, feed id.FeedItemID) (*ledger.FeedItem, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	item, ok := t.store.items[feed]
	if !ok {
		return nil, fmt.Errorf("lock feed item %s: %w", feed, sentinel.ErrNotFound)
	}
	return &item, nil
}

func (t *memTx) LockLedger(context.Context) error {
	t.locked = true
	return nil
}

func (t *memTx) Stock(_ context.Context, feed id.FeedItemID) (decimal.Decimal, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return sumStock(feed, t.store.entries, t.entries), nil
}

func (t *memTx) InsertFeedingRecord(_ context.Context, rec *ledger.FeedingRecord) error {
	if !t.locked {
		return idgen.ErrNotLocked
	}
	t.store.mu.RLock()
	ids := make([]string, 0, len(t.store.records)+len(t.records))
	for _, r := range t.store.records {
		ids = append(ids, string(r.ID))
	}
	t.store.mu.RUnlock()
	for _, r := range t.records {
		ids = append(ids, string(r.ID))
	}
	rec.ID = id.RecordID(idgen.FeedingRecords.Next(ids))
	t.records = append(t.records, *rec)
	return nil
}

func (t *memTx) InsertEntry(_ context.Context, entry *ledger.InventoryEntry) error {
	if !t.locked {
		return idgen.ErrNotLocked
	}
	if entry.Quantity.IsZero() {
		return fmt.Errorf("insert inventory entry: zero quantity: %w", sentinel.ErrInvalidState)
	}
	t.store.mu.RLock()
	ids := make([]string, 0, len(t.store.entries)+len(t.entries))
	for _, e := range t.store.entries {
		if entry.Reason == ledger.ReasonFeeding && e.Reason == ledger.ReasonFeeding && e.FeedingID == entry.FeedingID {
			t.store.mu.RUnlock()
			return fmt.Errorf("feeding %s already has a ledger entry: %w", entry.FeedingID, sentinel.ErrConflict)
		}
		ids = append(ids, e.ID)
	}
	t.store.mu.RUnlock()
	for _, e := range t.entries {
		ids = append(ids, e.ID)
	}
	entry.ID = idgen.InventoryEntries.Next(ids)
	t.entries = append(t.entries, *entry)
	return nil
}

func sumStock(feed id.FeedItemID, groups ...[]ledger.InventoryEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, entries := range groups {
		for _, e := range entries {
			if e.FeedItemID == feed {
				sum = sum.Add(e.Quantity)
			}
		}
	}
	return sum
}

func (s *InMemoryStore) StockLevels(_ context.Context) ([]ledger.StockLevel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.StockLevel, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, ledger.StockLevel{FeedItem: item, Stock: sumStock(item.ID, s.entries)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) RecentFeedings(_ context.Context, animal id.AnimalID, limit int) ([]ledger.FeedingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ledger.FeedingRecord
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		if s.records[i].AnimalID == animal {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *InMemoryStore) Animal(_ context.Context, animal id.AnimalID) (*ledger.AnimalInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.animals[animal]
	if !ok {
		return nil, fmt.Errorf("get animal %s: %w", animal, sentinel.ErrNotFound)
	}
	return &info, nil
}

