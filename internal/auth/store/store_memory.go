package store

import (
	"context"
	"fmt"
	"sync"

	"zoo/internal/auth"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	employees map[id.EmployeeID]auth.Employee
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{employees: make(map[id.EmployeeID]auth.Employee)}
}

func (s *InMemoryStore) AddEmployee(e auth.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[e.ID] = e
}

func (s *InMemoryStore) FindEmployee(_ context.Context, employee id.EmployeeID) (*auth.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[employee]
	if !ok {
		return nil, fmt.Errorf("find employee %s: %w", employee, sentinel.ErrNotFound)
	}
	return &e, nil
}

func (s *InMemoryStore) SetPasswordHash(_ context.Context, employee id.EmployeeID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[employee]
	if !ok {
		return fmt.Errorf("set password of %s: %w", employee, sentinel.ErrNotFound)
	}
	e.PasswordHash = hash
	s.employees[employee] = e
	return nil
}
