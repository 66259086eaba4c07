package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"zoo/internal/eventlog"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/sentinel"
)

// InMemoryStore implements eventlog.Store for tests and deployments without
// a document store. Documents are kept in insertion order.
type InMemoryStore struct {
	mu       sync.RWMutex
	alerts   []*eventlog.HealthAlert
	audits   []*eventlog.AuditEntry
	warnings []*eventlog.InputWarning
	logins   []*eventlog.LoginEvent
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Clear drops every document.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts, s.audits, s.warnings, s.logins = nil, nil, nil, nil
}

func (s *InMemoryStore) InsertAlert(_ context.Context, alert *eventlog.HealthAlert) error {
	if alert == nil {
		return fmt.Errorf("alert is required")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *alert
	s.alerts = append(s.alerts, &cp)
	return nil
}

func (s *InMemoryStore) GetAlert(_ context.Context, alertID string) (*eventlog.HealthAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.alerts {
		if a.ID == alertID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get alert %s: %w", alertID, sentinel.ErrNotFound)
}

func (s *InMemoryStore) ListAlerts(_ context.Context, filter eventlog.AlertFilter) ([]*eventlog.HealthAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*eventlog.HealthAlert
	for i := len(s.alerts) - 1; i >= 0; i-- {
		a := s.alerts[i]
		if filter.AnimalID != "" && a.AnimalID != filter.AnimalID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		cp := *a
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *InMemoryStore) TransitionAlert(_ context.Context, alertID string, from, to eventlog.AlertStatus, reviewer id.EmployeeID, at time.Time) (*eventlog.HealthAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.ID != alertID {
			continue
		}
		if a.Status != from {
			return nil, fmt.Errorf("alert %s is %s: %w", alertID, a.Status, sentinel.ErrInvalidState)
		}
		reviewedAt := at
		a.Status = to
		a.ReviewedBy = reviewer
		a.ReviewedAt = &reviewedAt
		cp := *a
		return &cp, nil
	}
	return nil, fmt.Errorf("transition alert %s: %w", alertID, sentinel.ErrNotFound)
}

func (s *InMemoryStore) DeletePendingAlerts(_ context.Context, animal id.AnimalID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.alerts[:0]
	var deleted int64
	for _, a := range s.alerts {
		if a.AnimalID == animal && a.Status == eventlog.AlertPending {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	s.alerts = kept
	return deleted, nil
}

func (s *InMemoryStore) CountAlertsByAnimal(_ context.Context) (map[id.AnimalID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.AnimalID]int)
	for _, a := range s.alerts {
		counts[a.AnimalID]++
	}
	return counts, nil
}

func (s *InMemoryStore) CountInputErrorsByRecorder(_ context.Context) (map[id.EmployeeID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.EmployeeID]int)
	for _, a := range s.alerts {
		if a.Status == eventlog.AlertInputError && a.RecordedBy != "" && !a.Kind.IsOverride() {
			counts[a.RecordedBy]++
		}
	}
	return counts, nil
}

func (s *InMemoryStore) AppendAudit(_ context.Context, entry *eventlog.AuditEntry) error {
	if entry == nil {
		return fmt.Errorf("audit entry is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.EventType = eventlog.EventDataCorrection
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	s.audits = append(s.audits, &cp)
	return nil
}

func (s *InMemoryStore) ListAudit(_ context.Context, filter eventlog.AuditFilter) ([]*eventlog.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*eventlog.AuditEntry
	for i := len(s.audits) - 1; i >= 0; i-- {
		e := s.audits[i]
		if filter.OperatorID != "" && e.OperatorID != filter.OperatorID {
			continue
		}
		if filter.OriginalCreatorID != "" && e.OriginalCreatorID != filter.OriginalCreatorID {
			continue
		}
		cp := *e
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *InMemoryStore) CountCorrectionsByCreator(_ context.Context) (map[id.EmployeeID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.EmployeeID]int)
	for _, e := range s.audits {
		if e.OriginalCreatorID != "" {
			counts[e.OriginalCreatorID]++
		}
	}
	return counts, nil
}

func (s *InMemoryStore) AppendInputWarning(_ context.Context, warning *eventlog.InputWarning) error {
	if warning == nil {
		return fmt.Errorf("input warning is required")
	}
	if warning.ID == "" {
		warning.ID = uuid.NewString()
	}
	warning.EventType = eventlog.EventInputWarning
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *warning
	s.warnings = append(s.warnings, &cp)
	return nil
}

func (s *InMemoryStore) CountProceededWarningsByEmployee(_ context.Context) (map[id.EmployeeID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.EmployeeID]int)
	for _, w := range s.warnings {
		if w.Proceeded {
			counts[w.EmployeeID]++
		}
	}
	return counts, nil
}

// InputWarnings returns every stored warning in insertion order.
func (s *InMemoryStore) InputWarnings() []eventlog.InputWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]eventlog.InputWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		out = append(out, *w)
	}
	return out
}

func (s *InMemoryStore) AppendLogin(_ context.Context, event *eventlog.LoginEvent) error {
	if event == nil {
		return fmt.Errorf("login event is required")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.EventType = eventlog.EventLogin
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *event
	s.logins = append(s.logins, &cp)
	return nil
}

func (s *InMemoryStore) ListLogins(_ context.Context, employee id.EmployeeID, limit int) ([]*eventlog.LoginEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*eventlog.LoginEvent
	for i := len(s.logins) - 1; i >= 0; i-- {
		e := s.logins[i]
		if employee != "" && e.EmployeeID != employee {
			continue
		}
		cp := *e
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
