// Package eventlog defines the secondary event store: health alerts, audit
// entries, input warnings and login events.
//
// The event log is advisory. Its documents are never part of a primary store
// transaction; callers treat write failures as reporting gaps.
package eventlog

import (
	"time"

	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
)

// Collection names in the document store.
const (
	CollectionHealthAlerts = "health_alerts"
	CollectionAuditLogs    = "audit_logs"
	CollectionLoginLogs    = "login_logs"
)

// AlertStatus is the review state of a health alert.
type AlertStatus string

const (
	AlertPending    AlertStatus = "PENDING"
	AlertConfirmed  AlertStatus = "CONFIRMED"
	AlertInputError AlertStatus = "INPUT_ERROR"
)

// ParseReviewStatus accepts the two statuses an administrator may assign.
func ParseReviewStatus(s string) (AlertStatus, error) {
	switch st := AlertStatus(s); st {
	case AlertConfirmed, AlertInputError:
		return st, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "review status must be CONFIRMED or INPUT_ERROR")
}

// CanTransitionTo reports whether a review may move the alert to next.
// Only pending alerts are reviewed, and only into a terminal status.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	return s == AlertPending && (next == AlertConfirmed || next == AlertInputError)
}

// AlertKind identifies what raised an alert.
type AlertKind string

const (
	AlertWeightAnomaly           AlertKind = "WEIGHT_ANOMALY"
	AlertFeedingAnomaly          AlertKind = "FEEDING_ANOMALY"
	AlertConfirmedWeightAnomaly  AlertKind = "CONFIRMED_WEIGHT_ANOMALY"
	AlertConfirmedFeedingAnomaly AlertKind = "CONFIRMED_FEEDING_ANOMALY"
)

// overrideKinds are raised when an employee proceeds past an input warning.
// The warning itself is already a careless signal.
var overrideKinds = []AlertKind{AlertConfirmedWeightAnomaly, AlertConfirmedFeedingAnomaly}

// OverrideKinds lists the alert kinds raised by a proceeded input warning.
func OverrideKinds() []AlertKind {
	return append([]AlertKind(nil), overrideKinds...)
}

// IsOverride reports whether k was raised by a proceeded input warning.
func (k AlertKind) IsOverride() bool {
	for _, o := range overrideKinds {
		if k == o {
			return true
		}
	}
	return false
}

// AlertLevel is the severity of an alert.
type AlertLevel string

const (
	LevelHigh   AlertLevel = "HIGH"
	LevelMedium AlertLevel = "MEDIUM"
)

// HealthAlert is a flagged deviation of a measurement from its baseline.
// Quantities are stored as decimal strings so no precision is lost in the
// document store.
type HealthAlert struct {
	ID             string        `bson:"_id" json:"id"`
	AnimalID       id.AnimalID   `bson:"animal_id" json:"animal_id"`
	Kind           AlertKind     `bson:"alert_type" json:"alert_type"`
	Level          AlertLevel    `bson:"level" json:"level"`
	Message        string        `bson:"message" json:"message"`
	ObservedValue  string        `bson:"observed_value,omitempty" json:"observed_value,omitempty"`
	BaselineValue  string        `bson:"baseline_value,omitempty" json:"baseline_value,omitempty"`
	ChangePct      string        `bson:"change_pct,omitempty" json:"change_pct,omitempty"`
	SourceRecordID id.RecordID   `bson:"source_record_id,omitempty" json:"source_record_id,omitempty"`
	RecordedBy     id.EmployeeID `bson:"recorded_by,omitempty" json:"recorded_by,omitempty"`
	Status         AlertStatus   `bson:"status" json:"status"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	ReviewedBy     id.EmployeeID `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time    `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
}

// EventType discriminates documents in the audit_logs collection.
type EventType string

const (
	EventDataCorrection EventType = "DATA_CORRECTION"
	EventInputWarning   EventType = "INPUT_WARNING"
	EventLogin          EventType = "LOGIN"
)

// AuditEntry records one field-level correction of a primary store record.
type AuditEntry struct {
	ID                string        `bson:"_id" json:"id"`
	EventType         EventType     `bson:"event_type" json:"event_type"`
	Timestamp         time.Time     `bson:"timestamp" json:"timestamp"`
	OperatorID        id.EmployeeID `bson:"operator_id" json:"operator_id"`
	TargetTable       string        `bson:"target_table" json:"target_table"`
	TargetRecordID    id.RecordID   `bson:"target_record_id" json:"target_record_id"`
	Field             string        `bson:"field" json:"field"`
	OldValue          string        `bson:"old_value" json:"old_value"`
	NewValue          string        `bson:"new_value" json:"new_value"`
	OriginalCreatorID id.EmployeeID `bson:"original_creator_id" json:"original_creator_id"`
	RequestID         string        `bson:"request_id,omitempty" json:"request_id,omitempty"`
}

// InputWarning records that an employee was warned at input time about a
// deviating value and whether they proceeded anyway.
type InputWarning struct {
	ID            string        `bson:"_id" json:"id"`
	EventType     EventType     `bson:"event_type" json:"event_type"`
	Timestamp     time.Time     `bson:"timestamp" json:"timestamp"`
	EmployeeID    id.EmployeeID `bson:"employee_id" json:"employee_id"`
	AnimalID      id.AnimalID   `bson:"animal_id" json:"animal_id"`
	WarningType   string        `bson:"warning_type" json:"warning_type"`
	InputValue    string        `bson:"input_value" json:"input_value"`
	ExpectedValue string        `bson:"expected_value" json:"expected_value"`
	DeviationPct  string        `bson:"deviation_pct,omitempty" json:"deviation_pct,omitempty"`
	Proceeded     bool          `bson:"confirmed" json:"proceeded"`
}

// LoginStatus is the outcome of a login attempt.
type LoginStatus string

const (
	LoginSuccess LoginStatus = "SUCCESS"
	LoginFailed  LoginStatus = "FAILED"
)

// LoginEvent records a login attempt.
type LoginEvent struct {
	ID         string        `bson:"_id" json:"id"`
	EventType  EventType     `bson:"event_type" json:"event_type"`
	Timestamp  time.Time     `bson:"timestamp" json:"timestamp"`
	EmployeeID id.EmployeeID `bson:"employee_id" json:"employee_id"`
	Status     LoginStatus   `bson:"status" json:"status"`
	Reason     string        `bson:"reason,omitempty" json:"reason,omitempty"`
	ClientAddr string        `bson:"client_addr,omitempty" json:"client_addr,omitempty"`
}

// AlertFilter narrows ListAlerts. Zero values match everything.
type AlertFilter struct {
	AnimalID id.AnimalID
	Status   AlertStatus
	Limit    int
}

// AuditFilter narrows ListAudit. Zero values match everything.
type AuditFilter struct {
	OperatorID        id.EmployeeID
	OriginalCreatorID id.EmployeeID
	Limit             int
}
