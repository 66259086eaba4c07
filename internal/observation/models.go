package observation

import (
	"time"

	"github.com/shopspring/decimal"

	"zoo/internal/anomaly"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
)

// StatusCode is a row of the status_type lookup table.
type StatusCode int

const (
	StatusNormal      StatusCode = 1
	StatusObservation StatusCode = 2
	StatusSick        StatusCode = 3
	StatusCritical    StatusCode = 4
)

func ParseStatusCode(n int) (StatusCode, error) {
	if n == 0 {
		return StatusNormal, nil
	}
	if c := StatusCode(n); c >= StatusNormal && c <= StatusCritical {
		return c, nil
	}
	return 0, dErrors.New(dErrors.CodeInvalidInput, "status code must be between 1 and 4")
}

// StateRecord is one weight and health observation of an animal.
type StateRecord struct {
	ID         id.RecordID     `json:"record_id"`
	AnimalID   id.AnimalID     `json:"animal_id"`
	Weight     decimal.Decimal `json:"weight_kg"`
	At         time.Time       `json:"timestamp"`
	Status     StatusCode      `json:"status_code"`
	RecordedBy id.EmployeeID   `json:"recorded_by"`
}

// AddResult is returned by a committed state record.
type AddResult struct {
	Record  *StateRecord    `json:"record"`
	Anomaly *anomaly.Result `json:"anomaly,omitempty"`
}
