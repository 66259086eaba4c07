package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zoo/internal/eventlog"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/sentinel"
)

// Store implements eventlog.Store on MongoDB. Alerts live in health_alerts;
// corrections and input warnings share audit_logs and are told apart by
// event_type; login attempts go to login_logs.
type Store struct {
	alerts *mongo.Collection
	audits *mongo.Collection
	logins *mongo.Collection
}

// New creates a MongoDB event store on db.
func New(db *mongo.Database) *Store {
	return &Store{
		alerts: db.Collection(eventlog.CollectionHealthAlerts),
		audits: db.Collection(eventlog.CollectionAuditLogs),
		logins: db.Collection(eventlog.CollectionLoginLogs),
	}
}

// EnsureIndexes creates the indexes the report queries rely on. It is
// idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.alerts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "animal_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("create health_alerts indexes: %w", mapError(err))
	}
	if _, err := s.audits.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_type", Value: 1}, {Key: "original_creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "event_type", Value: 1}, {Key: "employee_id", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("create audit_logs indexes: %w", mapError(err))
	}
	if _, err := s.logins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "timestamp", Value: -1}},
	}); err != nil {
		return fmt.Errorf("create login_logs index: %w", mapError(err))
	}
	return nil
}

// -----------------------------------------------------------------------------
// Alerts
// -----------------------------------------------------------------------------

func (s *Store) InsertAlert(ctx context.Context, alert *eventlog.HealthAlert) error {
	if alert == nil {
		return fmt.Errorf("alert is required")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if _, err := s.alerts.InsertOne(ctx, alert); err != nil {
		return fmt.Errorf("insert alert: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetAlert(ctx context.Context, alertID string) (*eventlog.HealthAlert, error) {
	var alert eventlog.HealthAlert
	if err := s.alerts.FindOne(ctx, bson.M{"_id": alertID}).Decode(&alert); err != nil {
		return nil, fmt.Errorf("get alert %s: %w", alertID, mapError(err))
	}
	return &alert, nil
}

func (s *Store) ListAlerts(ctx context.Context, filter eventlog.AlertFilter) ([]*eventlog.HealthAlert, error) {
	q := bson.M{}
	if filter.AnimalID != "" {
		q["animal_id"] = filter.AnimalID
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := s.alerts.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", mapError(err))
	}
	var out []*eventlog.HealthAlert
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", mapError(err))
	}
	return out, nil
}

func (s *Store) TransitionAlert(ctx context.Context, alertID string, from, to eventlog.AlertStatus, reviewer id.EmployeeID, at time.Time) (*eventlog.HealthAlert, error) {
	update := bson.M{"$set": bson.M{
		"status":      to,
		"reviewed_by": reviewer,
		"reviewed_at": at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var alert eventlog.HealthAlert
	err := s.alerts.FindOneAndUpdate(ctx, bson.M{"_id": alertID, "status": from}, update, opts).Decode(&alert)
	if err == nil {
		return &alert, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("transition alert %s: %w", alertID, mapError(err))
	}

	// Distinguish a missing alert from one already reviewed.
	current, getErr := s.GetAlert(ctx, alertID)
	if getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("alert %s is %s: %w", alertID, current.Status, sentinel.ErrInvalidState)
}

func (s *Store) DeletePendingAlerts(ctx context.Context, animal id.AnimalID) (int64, error) {
	res, err := s.alerts.DeleteMany(ctx, bson.M{"animal_id": animal, "status": eventlog.AlertPending})
	if err != nil {
		return 0, fmt.Errorf("delete pending alerts: %w", mapError(err))
	}
	return res.DeletedCount, nil
}

func (s *Store) CountAlertsByAnimal(ctx context.Context) (map[id.AnimalID]int, error) {
	rows, err := s.groupCount(ctx, s.alerts, bson.D{}, "$animal_id")
	if err != nil {
		return nil, fmt.Errorf("count alerts by animal: %w", err)
	}
	out := make(map[id.AnimalID]int, len(rows))
	for k, v := range rows {
		out[id.AnimalID(k)] = v
	}
	return out, nil
}

func (s *Store) CountInputErrorsByRecorder(ctx context.Context) (map[id.EmployeeID]int, error) {
	match := bson.D{
		{Key: "status", Value: eventlog.AlertInputError},
		{Key: "recorded_by", Value: bson.M{"$exists": true, "$ne": ""}},
		{Key: "alert_type", Value: bson.M{"$nin": eventlog.OverrideKinds()}},
	}
	rows, err := s.groupCount(ctx, s.alerts, match, "$recorded_by")
	if err != nil {
		return nil, fmt.Errorf("count input errors by recorder: %w", err)
	}
	return employeeCounts(rows), nil
}

// -----------------------------------------------------------------------------
// Audit log
// -----------------------------------------------------------------------------

func (s *Store) AppendAudit(ctx context.Context, entry *eventlog.AuditEntry) error {
	if entry == nil {
		return fmt.Errorf("audit entry is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.EventType = eventlog.EventDataCorrection
	if _, err := s.audits.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListAudit(ctx context.Context, filter eventlog.AuditFilter) ([]*eventlog.AuditEntry, error) {
	q := bson.M{"event_type": eventlog.EventDataCorrection}
	if filter.OperatorID != "" {
		q["operator_id"] = filter.OperatorID
	}
	if filter.OriginalCreatorID != "" {
		q["original_creator_id"] = filter.OriginalCreatorID
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := s.audits.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", mapError(err))
	}
	var out []*eventlog.AuditEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode audit entries: %w", mapError(err))
	}
	return out, nil
}

func (s *Store) CountCorrectionsByCreator(ctx context.Context) (map[id.EmployeeID]int, error) {
	match := bson.D{
		{Key: "event_type", Value: eventlog.EventDataCorrection},
		{Key: "original_creator_id", Value: bson.M{"$exists": true, "$ne": ""}},
	}
	rows, err := s.groupCount(ctx, s.audits, match, "$original_creator_id")
	if err != nil {
		return nil, fmt.Errorf("count corrections by creator: %w", err)
	}
	return employeeCounts(rows), nil
}

func (s *Store) AppendInputWarning(ctx context.Context, warning *eventlog.InputWarning) error {
	if warning == nil {
		return fmt.Errorf("input warning is required")
	}
	if warning.ID == "" {
		warning.ID = uuid.NewString()
	}
	warning.EventType = eventlog.EventInputWarning
	if _, err := s.audits.InsertOne(ctx, warning); err != nil {
		return fmt.Errorf("append input warning: %w", mapError(err))
	}
	return nil
}

func (s *Store) CountProceededWarningsByEmployee(ctx context.Context) (map[id.EmployeeID]int, error) {
	match := bson.D{
		{Key: "event_type", Value: eventlog.EventInputWarning},
		{Key: "confirmed", Value: true},
	}
	rows, err := s.groupCount(ctx, s.audits, match, "$employee_id")
	if err != nil {
		return nil, fmt.Errorf("count input warnings by employee: %w", err)
	}
	return employeeCounts(rows), nil
}

// -----------------------------------------------------------------------------
// Login log
// -----------------------------------------------------------------------------

func (s *Store) AppendLogin(ctx context.Context, event *eventlog.LoginEvent) error {
	if event == nil {
		return fmt.Errorf("login event is required")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.EventType = eventlog.EventLogin
	if _, err := s.logins.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("append login event: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListLogins(ctx context.Context, employee id.EmployeeID, limit int) ([]*eventlog.LoginEvent, error) {
	q := bson.M{}
	if employee != "" {
		q["employee_id"] = employee
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.logins.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list login events: %w", mapError(err))
	}
	var out []*eventlog.LoginEvent
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode login events: %w", mapError(err))
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

type groupRow struct {
	Key   string `bson:"_id"`
	Count int    `bson:"count"`
}

func (s *Store) groupCount(ctx context.Context, coll *mongo.Collection, match bson.D, field string) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mapError(err)
	}
	var rows []groupRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mapError(err)
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out, nil
}

func employeeCounts(rows map[string]int) map[id.EmployeeID]int {
	out := make(map[id.EmployeeID]int, len(rows))
	for k, v := range rows {
		out[id.EmployeeID(k)] = v
	}
	return out
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %w", sentinel.ErrNotFound, err)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	return err
}
