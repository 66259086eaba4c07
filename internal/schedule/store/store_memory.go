package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"zoo/internal/idgen"
	"zoo/internal/schedule"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/sentinel"
)

// InMemoryStore keeps shifts in memory. Known employees and tasks stand in
// for foreign keys.
type InMemoryStore struct {
	txMu      sync.Mutex
	mu        sync.RWMutex
	employees map[id.EmployeeID]bool
	tasks     map[id.TaskID]bool
	shifts    []schedule.Shift
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		employees: make(map[id.EmployeeID]bool),
		tasks:     make(map[id.TaskID]bool),
	}
}

func (s *InMemoryStore) AddEmployee(e id.EmployeeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[e] = true
}

func (s *InMemoryStore) AddTask(t id.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t] = true
}

func (s *InMemoryStore) Update(ctx context.Context, fn func(ctx context.Context, tx schedule.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shifts = append(s.shifts, tx.staged...)
	return nil
}

type memTx struct {
	store  *InMemoryStore
	locked bool
	staged []schedule.Shift
}

func (t *memTx) LockShifts(context.Context) error {
	t.locked = true
	return nil
}

func (t *memTx) InsertShift(_ context.Context, shift *schedule.Shift) error {
	if !t.locked {
		return idgen.ErrNotLocked
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	if !t.store.employees[shift.EmployeeID] || !t.store.tasks[shift.TaskID] {
		return fmt.Errorf("insert shift: %w", sentinel.ErrNotFound)
	}
	ids := make([]string, 0, len(t.store.shifts)+len(t.staged))
	for _, sh := range t.store.shifts {
		ids = append(ids, sh.ID)
	}
	for _, sh := range t.staged {
		ids = append(ids, sh.ID)
	}
	shift.ID = idgen.Shifts.Next(ids)
	t.staged = append(t.staged, *shift)
	return nil
}

func (s *InMemoryStore) ListShifts(_ context.Context, employee id.EmployeeID, limit int) ([]schedule.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []schedule.Shift
	for _, sh := range s.shifts {
		if sh.EmployeeID == employee {
			out = append(out, sh)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
