// Package anomaly detects weight and feeding measurements that deviate from
// an animal's recent baseline and manages the resulting health alerts.
//
// Checks only read the primary store. Alerts are written to the event log,
// which is advisory: a failed alert write is logged and the check result is
// still returned.
package anomaly

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"zoo/internal/eventlog"
	"zoo/internal/platform/metrics"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/platform/sentinel"
	"zoo/pkg/requestcontext"
)

const (
	// HighRiskThreshold is the alert count at which an animal is reported as high risk.
	HighRiskThreshold = 3

	defaultBatchConcurrency = 4
	defaultAlertListLimit   = 100
)

// Service runs anomaly checks and the alert review workflow.
type Service struct {
	observations ObservationStore
	events       eventlog.Store
	notifier     Notifier
	metrics      *metrics.Metrics
	logger       *slog.Logger
	tracer       trace.Tracer
	concurrency  int
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

// WithNotifier publishes every raised alert through n.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithBatchConcurrency bounds how many animals a batch scan checks at once.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func New(observations ObservationStore, events eventlog.Store, opts ...Option) (*Service, error) {
	if observations == nil {
		return nil, fmt.Errorf("observation store is required")
	}
	if events == nil {
		return nil, fmt.Errorf("event store is required")
	}
	s := &Service{
		observations: observations,
		events:       events,
		logger:       slog.Default(),
		tracer:       otel.Tracer("zoo/anomaly"),
		concurrency:  defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CheckWeight evaluates the newest weight of animal and raises a HIGH alert
// when it deviates by more than 10% from the previous five.
func (s *Service) CheckWeight(ctx context.Context, animal id.AnimalID) (*Result, error) {
	return s.Check(ctx, KindWeight, animal)
}

// CheckFeeding evaluates the newest feeding amount of animal and raises a
// MEDIUM alert when it deviates by more than 40% from the previous seven.
func (s *Service) CheckFeeding(ctx context.Context, animal id.AnimalID) (*Result, error) {
	return s.Check(ctx, KindFeeding, animal)
}

// Check evaluates the rule for kind and raises an alert on anomaly.
func (s *Service) Check(ctx context.Context, kind Kind, animal id.AnimalID) (*Result, error) {
	rule := RuleFor(kind)
	observations, err := s.recent(ctx, kind, animal, rule.Window)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to read observations")
	}

	res := Evaluate(rule, animal, observations)
	if s.metrics != nil {
		s.metrics.IncrementAnomalyCheck(string(kind), string(res.Verdict))
	}
	if res.IsAnomaly() {
		s.raise(ctx, rule, res)
	}
	return res, nil
}

// Preview evaluates value as if it were the next observation of animal,
// without writing anything. Clients use it to warn at input time.
func (s *Service) Preview(ctx context.Context, kind Kind, animal id.AnimalID, value string) (*Result, error) {
	v, err := id.ParseNonNegativeQuantity(value)
	if err != nil {
		return nil, err
	}
	return s.evaluateCandidate(ctx, kind, animal, v)
}

// evaluateCandidate runs the detector with v prepended to the stored history.
func (s *Service) evaluateCandidate(ctx context.Context, kind Kind, animal id.AnimalID, v decimal.Decimal) (*Result, error) {
	rule := RuleFor(kind)
	history, err := s.recent(ctx, kind, animal, rule.Window-1)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to read observations")
	}
	candidate := Observation{Value: v, At: requestcontext.Now(ctx), RecordedBy: requestcontext.ActorID(ctx)}
	return Evaluate(rule, animal, append([]Observation{candidate}, history...)), nil
}

func (s *Service) recent(ctx context.Context, kind Kind, animal id.AnimalID, limit int) ([]Observation, error) {
	if kind == KindFeeding {
		return s.observations.RecentFeedings(ctx, animal, limit)
	}
	return s.observations.RecentWeights(ctx, animal, limit)
}

// raise stores a pending alert for res. Failures are logged and leave
// res.AlertID empty.
func (s *Service) raise(ctx context.Context, rule Rule, res *Result) {
	alert := &eventlog.HealthAlert{
		AnimalID:       res.AnimalID,
		Kind:           rule.AlertKind,
		Level:          rule.Level,
		Message:        res.Message,
		ObservedValue:  res.Current.String(),
		BaselineValue:  res.Baseline.String(),
		ChangePct:      res.ChangePct.String(),
		SourceRecordID: res.newest.RecordID,
		RecordedBy:     res.newest.RecordedBy,
		Status:         eventlog.AlertPending,
		CreatedAt:      requestcontext.Now(ctx),
	}
	if err := s.insertAlert(ctx, alert); err != nil {
		return
	}
	res.AlertID = alert.ID
}

func (s *Service) insertAlert(ctx context.Context, alert *eventlog.HealthAlert) error {
	if err := s.events.InsertAlert(ctx, alert); err != nil {
		s.logger.ErrorContext(ctx, "failed to store health alert",
			"animal_id", alert.AnimalID,
			"alert_type", alert.Kind,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementSecondaryFailure("insert_alert")
		}
		return err
	}
	if s.metrics != nil {
		s.metrics.IncrementAlert(string(alert.Kind), string(alert.Level))
	}
	s.logger.InfoContext(ctx, "health alert raised",
		"alert_id", alert.ID,
		"animal_id", alert.AnimalID,
		"alert_type", alert.Kind,
		"level", alert.Level,
	)
	if s.notifier != nil {
		if err := s.notifier.AlertRaised(ctx, alert); err != nil {
			s.logger.WarnContext(ctx, "failed to publish health alert",
				"alert_id", alert.ID,
				"error", err,
			)
			if s.metrics != nil {
				s.metrics.IncrementSecondaryFailure("publish_alert")
			}
		}
	}
	return nil
}

// BatchScan runs both checks for every animal in the zoo. A failing animal is
// recorded in the report and never stops the scan.
func (s *Service) BatchScan(ctx context.Context) (*BatchReport, error) {
	ctx, span := s.tracer.Start(ctx, "anomaly.batch_scan")
	defer span.End()

	started := time.Now()
	animals, err := s.observations.AnimalsInZoo(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list animals")
		return nil, dErrors.FromStore(err, "failed to list animals")
	}

	report := &BatchReport{
		Scanned:   len(animals),
		Anomalies: []*Result{},
		StartedAt: requestcontext.Now(ctx),
	}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, animal := range animals {
		g.Go(func() error {
			for _, kind := range []Kind{KindWeight, KindFeeding} {
				res, err := s.Check(gctx, kind, animal.ID)
				mu.Lock()
				switch {
				case err != nil:
					report.Failures = append(report.Failures, BatchFailure{
						AnimalID: animal.ID,
						Kind:     kind,
						Error:    dErrors.UserMessage(err),
					})
				case res.IsAnomaly():
					res.Name = animal.Name
					report.Anomalies = append(report.Anomalies, res)
				}
				mu.Unlock()
				if err != nil {
					s.logger.WarnContext(gctx, "anomaly check failed",
						"animal_id", animal.ID,
						"kind", kind,
						"error", err,
					)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(report.Anomalies, func(i, j int) bool {
		a, b := report.Anomalies[i], report.Anomalies[j]
		if a.AnimalID != b.AnimalID {
			return a.AnimalID < b.AnimalID
		}
		return a.Kind > b.Kind
	})
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].AnimalID < report.Failures[j].AnimalID
	})
	report.Duration = time.Since(started)
	if s.metrics != nil {
		s.metrics.ObserveBatchScan(report.Duration)
	}
	span.SetAttributes(
		attribute.Int("animals", report.Scanned),
		attribute.Int("anomalies", len(report.Anomalies)),
		attribute.Int("failures", len(report.Failures)),
	)
	s.logger.InfoContext(ctx, "batch anomaly scan finished",
		"animals", report.Scanned,
		"anomalies", len(report.Anomalies),
		"failures", len(report.Failures),
		"duration", report.Duration,
	)
	return report, nil
}

// LogInputWarning records that actor was warned about a deviating value. The
// baseline and deviation are recomputed from stored history. When the actor
// proceeded anyway, a pending CONFIRMED_<KIND>_ANOMALY alert is raised so an
// administrator reviews the value.
func (s *Service) LogInputWarning(ctx context.Context, actor id.EmployeeID, w InputWarning) (*eventlog.InputWarning, error) {
	res, err := s.evaluateCandidate(ctx, w.Kind, w.AnimalID, w.Value)
	if err != nil {
		return nil, err
	}
	computed := res.Verdict == VerdictAnomaly || res.Verdict == VerdictNormal

	warning := &eventlog.InputWarning{
		Timestamp:   requestcontext.Now(ctx),
		EmployeeID:  actor,
		AnimalID:    w.AnimalID,
		WarningType: string(w.Kind),
		InputValue:  w.Value.String(),
		Proceeded:   w.Proceeded,
	}
	if computed {
		warning.ExpectedValue = res.Baseline.String()
		warning.DeviationPct = res.ChangePct.String()
	}
	if err := s.events.AppendInputWarning(ctx, warning); err != nil {
		return nil, dErrors.FromStore(err, "failed to record input warning")
	}
	if !w.Proceeded {
		return warning, nil
	}

	rule := RuleFor(w.Kind)
	detail := "no baseline"
	if computed {
		detail = fmt.Sprintf("expected %skg, %s", id.FormatKg(res.Baseline.Round(2)), formatPct(res.ChangePct))
	}
	alert := &eventlog.HealthAlert{
		AnimalID:      w.AnimalID,
		Kind:          confirmedAlertKind(w.Kind),
		Level:         rule.Level,
		Message:       fmt.Sprintf("%s %skg entered despite warning (%s)", w.Kind.label(), id.FormatKg(w.Value), detail),
		ObservedValue: w.Value.String(),
		BaselineValue: warning.ExpectedValue,
		ChangePct:     warning.DeviationPct,
		RecordedBy:    actor,
		Status:        eventlog.AlertPending,
		CreatedAt:     warning.Timestamp,
	}
	_ = s.insertAlert(ctx, alert)
	return warning, nil
}

// PendingAlerts lists alerts awaiting review, newest first. An empty animal
// lists every animal.
func (s *Service) PendingAlerts(ctx context.Context, animal id.AnimalID, limit int) ([]*eventlog.HealthAlert, error) {
	if limit <= 0 {
		limit = defaultAlertListLimit
	}
	alerts, err := s.events.ListAlerts(ctx, eventlog.AlertFilter{
		AnimalID: animal,
		Status:   eventlog.AlertPending,
		Limit:    limit,
	})
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to list alerts")
	}
	return alerts, nil
}

// ReviewAlert moves a pending alert to CONFIRMED or INPUT_ERROR. Reviewing an
// alert that is no longer pending fails with CodeInvalidState.
func (s *Service) ReviewAlert(ctx context.Context, reviewer id.EmployeeID, alertID string, status eventlog.AlertStatus) (*eventlog.HealthAlert, error) {
	if !eventlog.AlertPending.CanTransitionTo(status) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "review status must be CONFIRMED or INPUT_ERROR")
	}
	alert, err := s.events.TransitionAlert(ctx, alertID, eventlog.AlertPending, status, reviewer, requestcontext.Now(ctx))
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "alert not found")
		case errors.Is(err, sentinel.ErrInvalidState):
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidState, "alert has already been reviewed")
		}
		return nil, dErrors.FromStore(err, "failed to review alert")
	}
	s.logger.InfoContext(ctx, "health alert reviewed",
		"alert_id", alertID,
		"status", status,
		"reviewer_id", reviewer,
	)
	return alert, nil
}

// HighRiskAnimals lists animals with at least HighRiskThreshold alerts of any
// status, most alerts first.
func (s *Service) HighRiskAnimals(ctx context.Context) ([]RiskEntry, error) {
	counts, err := s.events.CountAlertsByAnimal(ctx)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to count alerts")
	}
	entries := []RiskEntry{}
	var ids []id.AnimalID
	for animal, n := range counts {
		if n >= HighRiskThreshold {
			entries = append(entries, RiskEntry{AnimalID: animal, AlertCount: n})
			ids = append(ids, animal)
		}
	}
	if len(entries) == 0 {
		return entries, nil
	}

	names, err := s.observations.AnimalNames(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve animal names", "error", err)
	}
	for i := range entries {
		entries[i].Name = names[entries[i].AnimalID]
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AlertCount != entries[j].AlertCount {
			return entries[i].AlertCount > entries[j].AlertCount
		}
		return entries[i].AnimalID < entries[j].AnimalID
	})
	return entries, nil
}
