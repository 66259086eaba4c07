package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrConflict: unique key or concurrent write collision
//   - ErrInvalidState: entity in wrong state for requested operation
//   - ErrInsufficientStock: ledger sum smaller than the requested consumption
//   - ErrUnavailable: store or dependency temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnavailable       = errors.New("unavailable")
)
