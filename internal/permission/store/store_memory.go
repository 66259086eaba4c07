package store

import (
	"context"
	"sync"
	"time"

	"zoo/internal/permission"
	id "zoo/pkg/domain"
)

type shift struct {
	employee id.EmployeeID
	animal   id.AnimalID
	start    time.Time
	end      time.Time
}

// InMemoryStore is a permission store for tests and local runs.
type InMemoryStore struct {
	mu             sync.RWMutex
	shifts         []shift
	grants         map[id.EmployeeID]map[string]bool
	requiredSkills map[id.AnimalID]string
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		grants:         make(map[id.EmployeeID]map[string]bool),
		requiredSkills: make(map[id.AnimalID]string),
	}
}

// AddShift assigns employee to animal for [start, end].
func (s *InMemoryStore) AddShift(employee id.EmployeeID, animal id.AnimalID, start, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shifts = append(s.shifts, shift{employee: employee, animal: animal, start: start, end: end})
}

// GrantSkill records a skill grant.
func (s *InMemoryStore) GrantSkill(employee id.EmployeeID, skill string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grants[employee] == nil {
		s.grants[employee] = make(map[string]bool)
	}
	s.grants[employee][skill] = true
}

// SetRequiredSkill marks an animal as requiring skill.
func (s *InMemoryStore) SetRequiredSkill(animal id.AnimalID, skill string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requiredSkills[animal] = skill
}

func (s *InMemoryStore) HasActiveShift(_ context.Context, employee id.EmployeeID, animal id.AnimalID, at time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shifts {
		if sh.employee == employee && sh.animal == animal && !at.Before(sh.start) && !at.After(sh.end) {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryStore) RequiredSkill(_ context.Context, animal id.AnimalID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if skill, ok := s.requiredSkills[animal]; ok {
		return skill, nil
	}
	return permission.DefaultSkill, nil
}

func (s *InMemoryStore) HasSkill(_ context.Context, employee id.EmployeeID, skill string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grants[employee][skill], nil
}
