package auth

import (
	"context"
	"time"

	id "zoo/pkg/domain"
)

// EmployeeStore reads login credentials. Missing employees are reported
// with sentinel.ErrNotFound.
type EmployeeStore interface {
	FindEmployee(ctx context.Context, employee id.EmployeeID) (*Employee, error)
	SetPasswordHash(ctx context.Context, employee id.EmployeeID, hash string) error
}

// RevocationList remembers logged-out session ids until their tokens expire.
type RevocationList interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
