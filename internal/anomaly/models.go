package anomaly

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"zoo/internal/eventlog"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
)

// Kind is the measurement a rule watches.
type Kind string

const (
	KindWeight  Kind = "WEIGHT"
	KindFeeding Kind = "FEEDING"
)

// ParseKind accepts "weight" or "feeding" in any case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindWeight, KindFeeding:
		return k, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "kind must be weight or feeding")
}

func (k Kind) label() string { return strings.ToLower(string(k)) }

// Verdict is the outcome of evaluating one rule.
type Verdict string

const (
	VerdictNormal           Verdict = "normal"
	VerdictAnomaly          Verdict = "anomaly"
	VerdictInsufficientData Verdict = "insufficient_data"
	VerdictCannotCompute    Verdict = "cannot_compute"
)

// Observation is one measurement of an animal.
type Observation struct {
	RecordID   id.RecordID     `json:"record_id,omitempty"`
	Value      decimal.Decimal `json:"value"`
	At         time.Time       `json:"at"`
	RecordedBy id.EmployeeID   `json:"recorded_by,omitempty"`
}

// Animal is the slice of the animal table the detector reads.
type Animal struct {
	ID   id.AnimalID `json:"animal_id"`
	Name string      `json:"name"`
}

// Result describes one evaluation. Baseline, ChangePct and Current are only
// meaningful for VerdictNormal and VerdictAnomaly.
type Result struct {
	AnimalID  id.AnimalID     `json:"animal_id"`
	Name      string          `json:"name,omitempty"`
	Kind      Kind            `json:"kind"`
	Verdict   Verdict         `json:"verdict"`
	Current   decimal.Decimal `json:"current"`
	Baseline  decimal.Decimal `json:"baseline"`
	ChangePct decimal.Decimal `json:"change_pct"`
	Samples   int             `json:"samples"`
	Message   string          `json:"message"`
	AlertID   string          `json:"alert_id,omitempty"`

	newest Observation
}

func (r *Result) IsAnomaly() bool { return r.Verdict == VerdictAnomaly }

// BatchFailure records an animal whose check could not complete.
type BatchFailure struct {
	AnimalID id.AnimalID `json:"animal_id"`
	Kind     Kind        `json:"kind"`
	Error    string      `json:"error"`
}

// BatchReport is the outcome of scanning every animal in the zoo.
type BatchReport struct {
	Scanned   int            `json:"scanned"`
	Anomalies []*Result      `json:"anomalies"`
	Failures  []BatchFailure `json:"failures,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
}

// RiskEntry is an animal with its total alert count.
type RiskEntry struct {
	AnimalID   id.AnimalID `json:"animal_id"`
	Name       string      `json:"name,omitempty"`
	AlertCount int         `json:"alert_count"`
}

// InputWarning is what the client reports after showing an employee a
// deviation warning at input time.
type InputWarning struct {
	AnimalID  id.AnimalID
	Kind      Kind
	Value     decimal.Decimal
	Proceeded bool
}

func confirmedAlertKind(k Kind) eventlog.AlertKind {
	if k == KindWeight {
		return eventlog.AlertConfirmedWeightAnomaly
	}
	return eventlog.AlertConfirmedFeedingAnomaly
}
