package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"zoo/internal/idgen"
	"zoo/internal/platform/postgres"
	"zoo/internal/schedule"
	id "zoo/pkg/domain"
)

type PostgresStore struct {
	runner *postgres.Runner
}

func NewPostgres(runner *postgres.Runner) *PostgresStore {
	return &PostgresStore{runner: runner}
}

func (s *PostgresStore) Update(ctx context.Context, fn func(ctx context.Context, tx schedule.Tx) error) error {
	return s.runner.Run(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &pgTx{tx: tx})
	})
}

type pgTx struct {
	tx    pgx.Tx
	alloc *idgen.Allocator
}

func (t *pgTx) LockShifts(ctx context.Context) error {
	alloc, err := idgen.Lock(ctx, t.tx, idgen.Shifts)
	if err != nil {
		return postgres.MapError(err)
	}
	t.alloc = alloc
	return nil
}

func (t *pgTx) InsertShift(ctx context.Context, shift *schedule.Shift) error {
	next, err := t.alloc.Next(ctx, idgen.Shifts)
	if err != nil {
		return postgres.MapError(err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO employee_shift (shift_id, e_id, t_id, a_id, shift_start, shift_end)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
	`, next, string(shift.EmployeeID), string(shift.TaskID), string(shift.AnimalID), shift.Start, shift.End)
	if err != nil {
		return fmt.Errorf("insert shift: %w", postgres.MapError(err))
	}
	shift.ID = next
	return nil
}

func (s *PostgresStore) ListShifts(ctx context.Context, employee id.EmployeeID, limit int) ([]schedule.Shift, error) {
	rows, err := s.runner.Pool().Query(ctx, `
		SELECT shift_id, e_id, t_id, COALESCE(a_id, ''), shift_start, shift_end
		FROM employee_shift
		WHERE e_id = $1
		ORDER BY shift_start DESC
		LIMIT $2
	`, string(employee), limit)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", postgres.MapError(err))
	}
	defer rows.Close()

	var out []schedule.Shift
	for rows.Next() {
		var (
			shiftID, eid, tid, aid string
			start, end             time.Time
		)
		if err := rows.Scan(&shiftID, &eid, &tid, &aid, &start, &end); err != nil {
			return nil, fmt.Errorf("scan shift: %w", postgres.MapError(err))
		}
		out = append(out, schedule.Shift{
			ID:         shiftID,
			EmployeeID: id.EmployeeID(eid),
			TaskID:     id.TaskID(tid),
			AnimalID:   id.AnimalID(aid),
			Start:      start,
			End:        end,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shifts: %w", postgres.MapError(err))
	}
	return out, nil
}
