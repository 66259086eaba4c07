package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"zoo/internal/permission"
	"zoo/internal/platform/postgres"
	id "zoo/pkg/domain"
)

// PostgresStore reads shifts, required skills and skill grants.
// It joins the caller's transaction when one is carried by the context.
type PostgresStore struct {
	db postgres.Querier
}

// NewPostgres constructs a PostgreSQL-backed permission store.
func NewPostgres(db postgres.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) HasActiveShift(ctx context.Context, employee id.EmployeeID, animal id.AnimalID, at time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM employee_shift
			WHERE e_id = $1 AND a_id = $2
			  AND $3 BETWEEN shift_start AND shift_end
		)
	`
	var ok bool
	if err := postgres.Conn(ctx, s.db).QueryRow(ctx, query, employee, animal, at).Scan(&ok); err != nil {
		return false, fmt.Errorf("check active shift: %w", postgres.MapError(err))
	}
	return ok, nil
}

func (s *PostgresStore) RequiredSkill(ctx context.Context, animal id.AnimalID) (string, error) {
	var skill string
	err := postgres.Conn(ctx, s.db).QueryRow(ctx,
		`SELECT required_skill FROM animal WHERE a_id = $1`, animal,
	).Scan(&skill)
	if errors.Is(err, pgx.ErrNoRows) {
		return permission.DefaultSkill, nil
	}
	if err != nil {
		return "", fmt.Errorf("get required skill: %w", postgres.MapError(err))
	}
	return skill, nil
}

func (s *PostgresStore) HasSkill(ctx context.Context, employee id.EmployeeID, skill string) (bool, error) {
	var ok bool
	err := postgres.Conn(ctx, s.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employee_skills WHERE e_id = $1 AND skill_name = $2)`,
		employee, skill,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check skill grant: %w", postgres.MapError(err))
	}
	return ok, nil
}
