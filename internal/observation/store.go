package observation

import (
	"context"

	id "zoo/pkg/domain"
)

// Tx is one unit of work on animal_state_record.
type Tx interface {
	// LockRecords serializes writers of state records until the transaction
	// ends. InsertRecord fails unless it was called first.
	LockRecords(ctx context.Context) error
	InsertRecord(ctx context.Context, rec *StateRecord) error
}

type Store interface {
	Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Recent(ctx context.Context, animal id.AnimalID, limit int) ([]StateRecord, error)
	AnimalExists(ctx context.Context, animal id.AnimalID) (bool, error)
}
