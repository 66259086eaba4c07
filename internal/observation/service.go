// Package observation records weight and health observations of animals.
package observation

import (
	"context"
	"fmt"
	"log/slog"

	"zoo/internal/anomaly"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
)

const defaultRecentLimit = 10

// Authorizer is the permission gate as seen by this package.
type Authorizer interface {
	Require(ctx context.Context, actor id.EmployeeID, animal id.AnimalID) error
}

// WeightChecker runs the weight anomaly check after a record commits.
type WeightChecker interface {
	CheckWeight(ctx context.Context, animal id.AnimalID) (*anomaly.Result, error)
}

type Service struct {
	store   Store
	gate    Authorizer
	checker WeightChecker
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithWeightChecker(c WeightChecker) Option {
	return func(s *Service) {
		s.checker = c
	}
}

func New(store Store, gate Authorizer, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("observation store is required")
	}
	if gate == nil {
		return nil, fmt.Errorf("permission gate is required")
	}
	s := &Service{store: store, gate: gate, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddStateRecord stores a weight observation and then runs the weight
// anomaly check. The check is best effort and never undoes the record.
func (s *Service) AddStateRecord(ctx context.Context, actor id.EmployeeID, animal id.AnimalID, weight string, status int) (*AddResult, error) {
	w, err := id.ParseNonNegativeQuantity(weight)
	if err != nil {
		return nil, err
	}
	if w.Exponent() < -2 && !w.Equal(w.Round(2)) {
		return nil, dErrors.New(dErrors.CodeValidation, "weight has too many decimal places")
	}
	code, err := ParseStatusCode(status)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, actor, animal); err != nil {
		return nil, err
	}
	exists, err := s.store.AnimalExists(ctx, animal)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to look up animal")
	}
	if !exists {
		return nil, dErrors.New(dErrors.CodeNotFound, "animal not found")
	}

	rec := &StateRecord{
		AnimalID:   animal,
		Weight:     w,
		At:         requestcontext.Now(ctx),
		Status:     code,
		RecordedBy: actor,
	}
	err = s.store.Update(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.LockRecords(ctx); err != nil {
			return fmt.Errorf("lock state records: %w", err)
		}
		if err := tx.InsertRecord(ctx, rec); err != nil {
			return fmt.Errorf("insert state record: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "state record write failed",
			"animal_id", animal,
			"operator_id", actor,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, dErrors.FromStore(err, "failed to save state record")
	}
	s.logger.InfoContext(ctx, "state record added",
		"record_id", rec.ID,
		"animal_id", animal,
		"weight_kg", w.String(),
		"operator_id", actor,
	)

	result := &AddResult{Record: rec}
	if s.checker != nil {
		res, err := s.checker.CheckWeight(ctx, animal)
		if err != nil {
			s.logger.WarnContext(ctx, "post-commit weight anomaly check failed",
				"animal_id", animal,
				"record_id", rec.ID,
				"error", err,
			)
		} else {
			result.Anomaly = res
		}
	}
	return result, nil
}

// RecentStates lists the latest state records of animal, newest first.
func (s *Service) RecentStates(ctx context.Context, animal id.AnimalID, limit int) ([]StateRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	records, err := s.store.Recent(ctx, animal, limit)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to read state records")
	}
	return records, nil
}
