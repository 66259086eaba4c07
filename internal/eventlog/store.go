package eventlog

import (
	"context"
	"time"

	id "zoo/pkg/domain"
)

// Store is the secondary event store. Implementations provide no
// transactional isolation; concurrent writers are last-write-wins.
//
// Lists are returned newest first. Missing documents are reported with
// sentinel.ErrNotFound and refused transitions with sentinel.ErrInvalidState.
type Store interface {
	AlertStore
	AuditStore
	LoginStore
}

// AlertStore persists health alerts and their review state.
type AlertStore interface {
	InsertAlert(ctx context.Context, alert *HealthAlert) error
	GetAlert(ctx context.Context, alertID string) (*HealthAlert, error)
	ListAlerts(ctx context.Context, filter AlertFilter) ([]*HealthAlert, error)
	// TransitionAlert moves an alert from `from` to `to` if and only if it is
	// currently in `from`.
	TransitionAlert(ctx context.Context, alertID string, from, to AlertStatus, reviewer id.EmployeeID, at time.Time) (*HealthAlert, error)
	// DeletePendingAlerts removes every pending alert of an animal.
	DeletePendingAlerts(ctx context.Context, animal id.AnimalID) (int64, error)
	CountAlertsByAnimal(ctx context.Context) (map[id.AnimalID]int, error)
	CountInputErrorsByRecorder(ctx context.Context) (map[id.EmployeeID]int, error)
}

// AuditStore persists corrections and input warnings.
type AuditStore interface {
	AppendAudit(ctx context.Context, entry *AuditEntry) error
	ListAudit(ctx context.Context, filter AuditFilter) ([]*AuditEntry, error)
	CountCorrectionsByCreator(ctx context.Context) (map[id.EmployeeID]int, error)
	AppendInputWarning(ctx context.Context, warning *InputWarning) error
	CountProceededWarningsByEmployee(ctx context.Context) (map[id.EmployeeID]int, error)
}

// LoginStore persists login attempts.
type LoginStore interface {
	AppendLogin(ctx context.Context, event *LoginEvent) error
	ListLogins(ctx context.Context, employee id.EmployeeID, limit int) ([]*LoginEvent, error)
}
