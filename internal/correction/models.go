package correction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
)

const (
	TableFeedingRecords = "feeding_records"
	TableStateRecords   = "animal_state_record"
)

// Field is a correctable column. Only the columns listed in fields may be
// corrected; identifiers, timestamps and authorship are never rewritten.
type Field struct {
	Table  string
	Column string
	kind   valueKind
}

type valueKind int

const (
	valuePositiveQuantity valueKind = iota + 1
	valueWeight
	valueStatusCode
)

var (
	FeedingAmount = Field{Table: TableFeedingRecords, Column: "feeding_amount_kg", kind: valuePositiveQuantity}
	StateWeight   = Field{Table: TableStateRecords, Column: "weight", kind: valueWeight}
	StateStatus   = Field{Table: TableStateRecords, Column: "state_id", kind: valueStatusCode}
)

var fields = []Field{FeedingAmount, StateWeight, StateStatus}

// LookupField resolves a table and column from external input.
func LookupField(table, column string) (Field, error) {
	table = strings.TrimSpace(table)
	column = strings.TrimSpace(column)
	for _, f := range fields {
		if f.Table == table && f.Column == column {
			return f, nil
		}
	}
	return Field{}, dErrors.New(dErrors.CodeInvalidInput, "field "+table+"."+column+" cannot be corrected")
}

func (f Field) String() string { return f.Table + "." + f.Column }

// IsWeight reports whether correcting f retracts the animal's pending alerts.
func (f Field) IsWeight() bool { return f.kind == valueWeight }

// IsLedgerQuantity reports whether f is mirrored by inventory entries.
func (f Field) IsLedgerQuantity() bool { return f.kind == valuePositiveQuantity }

// Normalize validates raw for f and returns its canonical text.
func (f Field) Normalize(raw string) (string, error) {
	switch f.kind {
	case valuePositiveQuantity:
		d, err := id.ParsePositiveQuantity(raw)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case valueWeight:
		d, err := id.ParseNonNegativeQuantity(raw)
		if err != nil {
			return "", err
		}
		if !d.Equal(d.Round(2)) {
			return "", dErrors.New(dErrors.CodeValidation, "weight has too many decimal places")
		}
		return d.String(), nil
	case valueStatusCode:
		switch s := strings.TrimSpace(raw); s {
		case "1", "2", "3", "4":
			return s, nil
		}
		return "", dErrors.New(dErrors.CodeInvalidInput, "status code must be between 1 and 4")
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported field")
}

// sameValue compares two canonical values of f.
func (f Field) sameValue(a, b string) bool {
	if f.kind == valueStatusCode {
		return a == b
	}
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return da.Equal(db)
}

// Snapshot is the locked state of the record being corrected.
type Snapshot struct {
	Current    string
	CreatorID  id.EmployeeID
	AnimalID   id.AnimalID
	FeedItemID id.FeedItemID
}

// Adjustment is the inventory entry that keeps a feeding record's linked
// ledger quantity equal to its negated amount after a correction.
type Adjustment struct {
	FeedItemID id.FeedItemID
	FeedingID  id.RecordID
	Quantity   decimal.Decimal
	At         time.Time
	RecordedBy id.EmployeeID
}

// Request is one field correction.
type Request struct {
	Table    string
	RecordID id.RecordID
	Field    string
	NewValue string
}

// Result describes a committed correction.
type Result struct {
	Field             string        `json:"field"`
	RecordID          id.RecordID   `json:"record_id"`
	OldValue          string        `json:"old_value"`
	NewValue          string        `json:"new_value"`
	OriginalCreatorID id.EmployeeID `json:"original_creator_id"`
	AdjustmentEntryID string        `json:"adjustment_entry_id,omitempty"`
	RetractedAlerts   int64         `json:"retracted_alerts"`
	Audited           bool          `json:"audited"`
}

// CarelessEntry is one row of the careless employees report.
type CarelessEntry struct {
	EmployeeID        id.EmployeeID `json:"employee_id"`
	Name              string        `json:"name,omitempty"`
	Corrections       int           `json:"corrections"`
	ProceededWarnings int           `json:"proceeded_warnings"`
	InputErrors       int           `json:"input_errors"`
	Total             int           `json:"total"`
}
