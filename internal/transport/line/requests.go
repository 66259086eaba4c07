package line

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	dErrors "zoo/pkg/domain-errors"
)

// Request payloads. Identifier formats and quantities are validated again by
// the services; tags here reject structurally bad input early.

type loginRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=32"`
	Password   string `json:"password" validate:"required,max=72"`
}

type feedRequest struct {
	AnimalID   string  `json:"animal_id" validate:"required,max=32"`
	FeedItemID string  `json:"feed_item_id" validate:"required,max=32"`
	AmountKg   Decimal `json:"amount_kg" validate:"required"`
}

type stateRecordRequest struct {
	AnimalID   string  `json:"animal_id" validate:"required,max=32"`
	WeightKg   Decimal `json:"weight_kg" validate:"required"`
	StatusCode int     `json:"status_code" validate:"gte=0,lte=4"`
}

type stockRequest struct {
	FeedItemID string  `json:"feed_item_id" validate:"required,max=32"`
	AmountKg   Decimal `json:"amount_kg" validate:"required"`
}

type adjustRequest struct {
	FeedItemID string  `json:"feed_item_id" validate:"required,max=32"`
	DeltaKg    Decimal `json:"delta_kg" validate:"required"`
}

type animalListRequest struct {
	AnimalID string `json:"animal_id" validate:"required,max=32"`
	Limit    int    `json:"limit" validate:"gte=0,lte=500"`
}

type correctRequest struct {
	Table    string `json:"table" validate:"required"`
	RecordID string `json:"record_id" validate:"required,max=32"`
	Field    string `json:"field" validate:"required"`
	NewValue string `json:"new_value" validate:"required"`
}

type previewRequest struct {
	Kind     string  `json:"kind" validate:"required,oneof=weight feeding WEIGHT FEEDING"`
	AnimalID string  `json:"animal_id" validate:"required,max=32"`
	Value    Decimal `json:"value" validate:"required"`
}

type inputWarningRequest struct {
	Kind      string  `json:"kind" validate:"required,oneof=weight feeding WEIGHT FEEDING"`
	AnimalID  string  `json:"animal_id" validate:"required,max=32"`
	Value     Decimal `json:"value" validate:"required"`
	Proceeded bool    `json:"proceeded"`
}

type checkRequest struct {
	AnimalID string `json:"animal_id" validate:"required,max=32"`
	Kind     string `json:"kind" validate:"omitempty,oneof=weight feeding WEIGHT FEEDING"`
}

type pendingAlertsRequest struct {
	AnimalID string `json:"animal_id" validate:"omitempty,max=32"`
	Limit    int    `json:"limit" validate:"gte=0,lte=500"`
}

type reviewRequest struct {
	AlertID string `json:"alert_id" validate:"required,max=64"`
	Status  string `json:"status" validate:"required,oneof=CONFIRMED INPUT_ERROR"`
}

type auditLogsRequest struct {
	OperatorID        string `json:"operator_id" validate:"omitempty,max=32"`
	OriginalCreatorID string `json:"original_creator_id" validate:"omitempty,max=32"`
	Limit             int    `json:"limit" validate:"gte=0,lte=500"`
}

type limitRequest struct {
	Limit int `json:"limit" validate:"gte=0,lte=500"`
}

type assignShiftRequest struct {
	EmployeeID string    `json:"employee_id" validate:"required,max=32"`
	TaskID     string    `json:"task_id" validate:"required,max=32"`
	AnimalID   string    `json:"animal_id" validate:"omitempty,max=32"`
	Start      time.Time `json:"start" validate:"required"`
	End        time.Time `json:"end" validate:"required,gtfield=Start"`
}

type emptyRequest struct{}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads data into T and validates it. Absent data decodes as the
// zero value so commands without parameters accept "data" being omitted.
func decode[T any](v *validator.Validate, data json.RawMessage) (*T, error) {
	var req T
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request data")
		}
	}
	if err := v.Struct(&req); err != nil {
		return nil, validationError(err)
	}
	return &req, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed request data")
	}
	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fe.Field() + " is required"
	case "oneof":
		msg = fe.Field() + " must be one of: " + fe.Param()
	case "max":
		msg = fe.Field() + " is too long"
	case "gtfield":
		msg = fe.Field() + " must be after " + strings.ToLower(fe.Param())
	default:
		msg = fe.Field() + " is invalid"
	}
	return dErrors.New(dErrors.CodeValidation, msg)
}
