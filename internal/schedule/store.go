package schedule

import (
	"context"

	id "zoo/pkg/domain"
)

type Tx interface {
	// LockShifts serializes shift writers until the transaction ends.
	LockShifts(ctx context.Context) error
	// InsertShift allocates the shift id and inserts the row. Unknown
	// employees, tasks or animals return sentinel.ErrNotFound.
	InsertShift(ctx context.Context, shift *Shift) error
}

type Store interface {
	Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	ListShifts(ctx context.Context, employee id.EmployeeID, limit int) ([]Shift, error)
}
