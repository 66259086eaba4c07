// Package correction applies field-level corrections to feeding and state
// records, keeps an audit trail of them and scores careless data entry.
//
// The correction itself is a primary store transaction. Alert retraction and
// the audit entry go to the event log after commit and are best effort.
package correction

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"zoo/internal/eventlog"
	"zoo/internal/platform/metrics"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/platform/sentinel"
	"zoo/pkg/requestcontext"
)

const (
	// CarelessThreshold is the combined signal count at which an employee is
	// reported as careless.
	CarelessThreshold = 3

	defaultAuditLimit = 50
)

type Service struct {
	store   Store
	events  eventlog.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(store Store, events eventlog.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("correction store is required")
	}
	if events == nil {
		return nil, fmt.Errorf("event store is required")
	}
	s := &Service{
		store:  store,
		events: events,
		logger: slog.Default(),
		tracer: otel.Tracer("zoo/correction"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Correct rewrites one field of a record on behalf of operator.
//
// Correcting a feeding amount appends an adjustment entry of old minus new in
// the same transaction. Correcting a weight deletes the animal's pending
// alerts after commit.
func (s *Service) Correct(ctx context.Context, operator id.EmployeeID, req Request) (*Result, error) {
	field, err := LookupField(req.Table, req.Field)
	if err != nil {
		return nil, err
	}
	if req.RecordID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "record id is required")
	}
	newValue, err := field.Normalize(req.NewValue)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "correction.Correct",
		trace.WithAttributes(
			attribute.String("field", field.String()),
			attribute.String("record_id", string(req.RecordID)),
		))
	defer span.End()

	now := requestcontext.Now(ctx)
	var snap *Snapshot
	result := &Result{Field: field.String(), RecordID: req.RecordID, NewValue: newValue}
	err = s.store.Update(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		snap, err = tx.LockRecord(ctx, field, req.RecordID)
		if err != nil {
			return err
		}
		if field.sameValue(snap.Current, newValue) {
			return dErrors.New(dErrors.CodeInvalidInput, "new value equals the current value")
		}
		if !field.IsLedgerQuantity() {
			if err := tx.UpdateField(ctx, field, req.RecordID, newValue); err != nil {
				return fmt.Errorf("update %s: %w", field, err)
			}
			return nil
		}
		delta, err := ledgerDelta(snap.Current, newValue)
		if err != nil {
			return err
		}
		// Raising a feeding amount consumes more stock, so it is checked
		// like a feeding.
		if delta.IsNegative() {
			stock, err := tx.Stock(ctx, snap.FeedItemID)
			if err != nil {
				return fmt.Errorf("read stock: %w", err)
			}
			if stock.LessThan(delta.Neg()) {
				return insufficientStock(stock)
			}
		}
		if err := tx.UpdateField(ctx, field, req.RecordID, newValue); err != nil {
			return fmt.Errorf("update %s: %w", field, err)
		}
		entryID, err := tx.AppendAdjustment(ctx, Adjustment{
			FeedItemID: snap.FeedItemID,
			FeedingID:  req.RecordID,
			Quantity:   delta,
			At:         now,
			RecordedBy: operator,
		})
		if err != nil {
			return fmt.Errorf("append adjustment: %w", err)
		}
		result.AdjustmentEntryID = entryID
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "correction failed")
		return nil, dErrors.FromStore(err, "record not found")
	}
	result.OldValue = snap.Current
	result.OriginalCreatorID = snap.CreatorID
	s.metrics.IncrementCorrection(field.Table)
	s.logger.InfoContext(ctx, "record corrected",
		"field", field.String(),
		"record_id", req.RecordID,
		"old_value", snap.Current,
		"new_value", newValue,
		"operator_id", operator,
	)

	if field.IsWeight() {
		result.RetractedAlerts = s.retractAlerts(ctx, snap.AnimalID, req.RecordID)
	}
	result.Audited = s.audit(ctx, &eventlog.AuditEntry{
		Timestamp:         now,
		OperatorID:        operator,
		TargetTable:       field.Table,
		TargetRecordID:    req.RecordID,
		Field:             field.Column,
		OldValue:          snap.Current,
		NewValue:          newValue,
		OriginalCreatorID: snap.CreatorID,
		RequestID:         requestcontext.RequestID(ctx),
	})
	return result, nil
}

func insufficientStock(stock decimal.Decimal) error {
	return dErrors.Wrap(sentinel.ErrInsufficientStock, dErrors.CodeInsufficientStock,
		fmt.Sprintf("insufficient stock, %s kg remaining", id.FormatKg(stock)))
}

// ledgerDelta is the inventory quantity that moves the linked sum of a
// feeding from -old to -new.
func ledgerDelta(oldValue, newValue string) (decimal.Decimal, error) {
	o, err := decimal.NewFromString(oldValue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse stored amount %q: %w", oldValue, err)
	}
	n, err := decimal.NewFromString(newValue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse new amount %q: %w", newValue, err)
	}
	return o.Sub(n), nil
}

func (s *Service) retractAlerts(ctx context.Context, animal id.AnimalID, record id.RecordID) int64 {
	n, err := s.events.DeletePendingAlerts(ctx, animal)
	if err != nil {
		s.metrics.IncrementSecondaryFailure("retract_alerts")
		s.logger.ErrorContext(ctx, "failed to retract pending alerts",
			"animal_id", animal,
			"record_id", record,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return 0
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "pending alerts retracted after weight correction",
			"animal_id", animal,
			"count", n,
		)
	}
	return n
}

func (s *Service) audit(ctx context.Context, entry *eventlog.AuditEntry) bool {
	if err := s.events.AppendAudit(ctx, entry); err != nil {
		s.metrics.IncrementSecondaryFailure("append_audit")
		s.logger.ErrorContext(ctx, "failed to append audit entry",
			"record_id", entry.TargetRecordID,
			"operator_id", entry.OperatorID,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return false
	}
	return true
}

// AuditLogs lists correction entries, newest first.
func (s *Service) AuditLogs(ctx context.Context, filter eventlog.AuditFilter) ([]*eventlog.AuditEntry, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditLimit
	}
	entries, err := s.events.ListAudit(ctx, filter)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to read audit log")
	}
	return entries, nil
}

// MyCorrections lists corrections made to records the employee created.
func (s *Service) MyCorrections(ctx context.Context, employee id.EmployeeID, limit int) ([]*eventlog.AuditEntry, error) {
	return s.AuditLogs(ctx, eventlog.AuditFilter{OriginalCreatorID: employee, Limit: limit})
}

// CarelessEmployees combines corrected records, proceeded input warnings
// and alerts reviewed as input errors per employee, and lists those at or
// above CarelessThreshold, highest total first.
func (s *Service) CarelessEmployees(ctx context.Context) ([]CarelessEntry, error) {
	corrections, err := s.events.CountCorrectionsByCreator(ctx)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to count corrections")
	}
	warnings, err := s.events.CountProceededWarningsByEmployee(ctx)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to count input warnings")
	}
	inputErrors, err := s.events.CountInputErrorsByRecorder(ctx)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to count input errors")
	}

	byEmployee := make(map[id.EmployeeID]*CarelessEntry)
	entry := func(e id.EmployeeID) *CarelessEntry {
		if c, ok := byEmployee[e]; ok {
			return c
		}
		c := &CarelessEntry{EmployeeID: e}
		byEmployee[e] = c
		return c
	}
	for e, n := range corrections {
		entry(e).Corrections = n
	}
	for e, n := range warnings {
		entry(e).ProceededWarnings = n
	}
	for e, n := range inputErrors {
		entry(e).InputErrors = n
	}

	out := []CarelessEntry{}
	var ids []id.EmployeeID
	for _, c := range byEmployee {
		c.Total = c.Corrections + c.ProceededWarnings + c.InputErrors
		if c.Total >= CarelessThreshold {
			out = append(out, *c)
			ids = append(ids, c.EmployeeID)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	if len(ids) == 0 {
		return out, nil
	}

	names, err := s.store.EmployeeNames(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "careless report without employee names", "error", err)
		return out, nil
	}
	for i := range out {
		out[i].Name = names[out[i].EmployeeID]
	}
	return out, nil
}
