package store

import (
	"context"
	"fmt"

	"zoo/internal/auth"
	"zoo/internal/platform/postgres"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/sentinel"
)

type PostgresStore struct {
	db postgres.Querier
}

func NewPostgres(db postgres.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindEmployee(ctx context.Context, employee id.EmployeeID) (*auth.Employee, error) {
	var eid, name, role, status, hash string
	err := postgres.Conn(ctx, s.db).QueryRow(ctx,
		`SELECT e_id, e_name, role, status, password_hash FROM employee WHERE e_id = $1`, string(employee),
	).Scan(&eid, &name, &role, &status, &hash)
	if err != nil {
		return nil, fmt.Errorf("find employee %s: %w", employee, postgres.MapError(err))
	}
	return &auth.Employee{
		ID:           id.EmployeeID(eid),
		Name:         name,
		Role:         id.Role(role),
		Status:       auth.EmployeeStatus(status),
		PasswordHash: hash,
	}, nil
}

func (s *PostgresStore) SetPasswordHash(ctx context.Context, employee id.EmployeeID, hash string) error {
	tag, err := postgres.Conn(ctx, s.db).Exec(ctx,
		`UPDATE employee SET password_hash = $1 WHERE e_id = $2`, hash, string(employee))
	if err != nil {
		return fmt.Errorf("set password of %s: %w", employee, postgres.MapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set password of %s: %w", employee, sentinel.ErrNotFound)
	}
	return nil
}
