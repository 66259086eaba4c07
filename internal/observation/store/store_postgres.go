package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"zoo/internal/idgen"
	"zoo/internal/observation"
	"zoo/internal/platform/postgres"
	id "zoo/pkg/domain"
)

type PostgresStore struct {
	runner *postgres.Runner
}

func NewPostgres(runner *postgres.Runner) *PostgresStore {
	return &PostgresStore{runner: runner}
}

func (s *PostgresStore) Update(ctx context.Context, fn func(ctx context.Context, tx observation.Tx) error) error {
	return s.runner.Run(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &pgTx{tx: tx})
	})
}

type pgTx struct {
	tx    pgx.Tx
	alloc *idgen.Allocator
}

func (t *pgTx) LockRecords(ctx context.Context) error {
	alloc, err := idgen.Lock(ctx, t.tx, idgen.StateRecords)
	if err != nil {
		return postgres.MapError(err)
	}
	t.alloc = alloc
	return nil
}

func (t *pgTx) InsertRecord(ctx context.Context, rec *observation.StateRecord) error {
	next, err := t.alloc.Next(ctx, idgen.StateRecords)
	if err != nil {
		return postgres.MapError(err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO animal_state_record (record_id, a_id, datetime, weight, state_id, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, next, string(rec.AnimalID), rec.At, rec.Weight.String(), int(rec.Status), string(rec.RecordedBy))
	if err != nil {
		return postgres.MapError(err)
	}
	rec.ID = id.RecordID(next)
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, animal id.AnimalID, limit int) ([]observation.StateRecord, error) {
	rows, err := s.runner.Pool().Query(ctx, `
		SELECT record_id, a_id, COALESCE(weight, 0)::text, datetime, state_id, recorded_by
		FROM animal_state_record
		WHERE a_id = $1
		ORDER BY datetime DESC, length(record_id) DESC, record_id DESC
		LIMIT $2
	`, string(animal), limit)
	if err != nil {
		return nil, fmt.Errorf("list state records: %w", postgres.MapError(err))
	}
	defer rows.Close()

	var out []observation.StateRecord
	for rows.Next() {
		var (
			recordID, animalID, weight, recordedBy string
			at                                     time.Time
			status                                 int
		)
		if err := rows.Scan(&recordID, &animalID, &weight, &at, &status, &recordedBy); err != nil {
			return nil, fmt.Errorf("scan state record: %w", postgres.MapError(err))
		}
		w, err := decimal.NewFromString(weight)
		if err != nil {
			return nil, fmt.Errorf("parse weight of %s: %w", recordID, err)
		}
		out = append(out, observation.StateRecord{
			ID:         id.RecordID(recordID),
			AnimalID:   id.AnimalID(animalID),
			Weight:     w,
			At:         at,
			Status:     observation.StatusCode(status),
			RecordedBy: id.EmployeeID(recordedBy),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list state records: %w", postgres.MapError(err))
	}
	return out, nil
}

func (s *PostgresStore) AnimalExists(ctx context.Context, animal id.AnimalID) (bool, error) {
	var ok bool
	err := s.runner.Pool().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM animal WHERE a_id = $1)`, string(animal),
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check animal: %w", postgres.MapError(err))
	}
	return ok, nil
}
