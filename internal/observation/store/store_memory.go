package store

import (
	"context"
	"sync"

	"zoo/internal/idgen"
	"zoo/internal/observation"
	id "zoo/pkg/domain"
)

// InMemoryStore is an observation.Store for tests. Update runs one unit of
// work at a time and applies its writes only on success.
type InMemoryStore struct {
	txMu    sync.Mutex
	mu      sync.RWMutex
	animals map[id.AnimalID]bool
	records []observation.StateRecord
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{animals: make(map[id.AnimalID]bool)}
}

func (s *InMemoryStore) AddAnimal(animal id.AnimalID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals[animal] = true
}

func (s *InMemoryStore) Records() []observation.StateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]observation.StateRecord(nil), s.records...)
}

func (s *InMemoryStore) Update(ctx context.Context, fn func(ctx context.Context, tx observation.Tx) error) error {
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
	s.records = append(s.records, tx.staged...)
	return nil
}

type memTx struct {
	store  *InMemoryStore
	locked bool
	staged []observation.StateRecord
}

func (t *memTx) LockRecords(context.Context) error {
	t.locked = true
	return nil
}

func (t *memTx) InsertRecord(_ context.Context, rec *observation.StateRecord) error {
	if !t.locked {
		return idgen.ErrNotLocked
	}
	t.store.mu.RLock()
	ids := make([]string, 0, len(t.store.records)+len(t.staged))
	for _, r := range t.store.records {
		ids = append(ids, string(r.ID))
	}
	t.store.mu.RUnlock()
	for _, r := range t.staged {
		ids = append(ids, string(r.ID))
	}
	rec.ID = id.RecordID(idgen.StateRecords.Next(ids))
	t.staged = append(t.staged, *rec)
	return nil
}

func (s *InMemoryStore) Recent(_ context.Context, animal id.AnimalID, limit int) ([]observation.StateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []observation.StateRecord
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		if s.records[i].AnimalID == animal {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *InMemoryStore) AnimalExists(_ context.Context, animal id.AnimalID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.animals[animal], nil
}
