// Package revocation stores logged-out session ids until their tokens expire.
package revocation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"zoo/pkg/platform/sentinel"
)

// InMemoryTRL is a process-local revocation list for single-instance
// deployments and tests.
type InMemoryTRL struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewInMemoryTRL() *InMemoryTRL {
	return &InMemoryTRL{revoked: make(map[string]time.Time), now: time.Now}
}

func (t *InMemoryTRL) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.revoked[jti] = t.now().Add(ttl)
	return nil
}

func (t *InMemoryTRL) IsRevoked(_ context.Context, jti string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	until, ok := t.revoked[jti]
	if !ok {
		return false, nil
	}
	if !t.now().Before(until) {
		delete(t.revoked, jti)
		return false, nil
	}
	return true, nil
}

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %w", sentinel.ErrInvalidState)
	}
	return nil
}
