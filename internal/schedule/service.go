// Package schedule assigns employees to shifts.
package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"zoo/internal/permission"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
)

const defaultListLimit = 20

// SkillChecker is the credential half of the permission gate.
type SkillChecker interface {
	CheckSkill(ctx context.Context, employee id.EmployeeID, animal id.AnimalID) (permission.Decision, error)
}

type Service struct {
	store  Store
	skills SkillChecker
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, skills SkillChecker, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("schedule store is required")
	}
	if skills == nil {
		return nil, fmt.Errorf("skill checker is required")
	}
	s := &Service{store: store, skills: skills, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AssignShift creates a shift. An animal that requires a skill the employee
// lacks cannot be assigned.
func (s *Service) AssignShift(ctx context.Context, admin id.EmployeeID, a Assignment) (*Shift, error) {
	if a.EmployeeID.IsNil() || a.TaskID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "employee and task are required")
	}
	if a.Start.IsZero() || a.End.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "shift start and end are required")
	}
	if !a.End.After(a.Start) {
		return nil, dErrors.New(dErrors.CodeValidation, "shift end must be after start")
	}
	if !a.AnimalID.IsNil() {
		decision, err := s.skills.CheckSkill(ctx, a.EmployeeID, a.AnimalID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "permission check failed")
		}
		if !decision.Allowed {
			return nil, dErrors.New(dErrors.CodeForbidden, decision.Reason)
		}
	}

	shift := &Shift{
		EmployeeID: a.EmployeeID,
		TaskID:     a.TaskID,
		AnimalID:   a.AnimalID,
		Start:      a.Start.UTC(),
		End:        a.End.UTC(),
	}
	err := s.store.Update(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.LockShifts(ctx); err != nil {
			return err
		}
		return tx.InsertShift(ctx, shift)
	})
	if err != nil {
		return nil, dErrors.FromStore(err, "employee, task or animal not found")
	}
	s.logger.InfoContext(ctx, "shift assigned",
		"shift_id", shift.ID,
		"employee_id", shift.EmployeeID,
		"animal_id", shift.AnimalID,
		"operator_id", admin,
	)
	return shift, nil
}

// Shifts lists an employee's shifts, latest start first.
func (s *Service) Shifts(ctx context.Context, employee id.EmployeeID, limit int) ([]Shift, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	shifts, err := s.store.ListShifts(ctx, employee, limit)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to read shifts")
	}
	return shifts, nil
}
