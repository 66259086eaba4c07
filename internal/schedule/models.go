package schedule

import (
	"time"

	id "zoo/pkg/domain"
)

// Shift assigns an employee to a task, optionally for one animal, during
// [Start, End].
type Shift struct {
	ID         string        `json:"shift_id"`
	EmployeeID id.EmployeeID `json:"employee_id"`
	TaskID     id.TaskID     `json:"task_id"`
	AnimalID   id.AnimalID   `json:"animal_id,omitempty"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
}

// Assignment is a shift to create.
type Assignment struct {
	EmployeeID id.EmployeeID
	TaskID     id.TaskID
	AnimalID   id.AnimalID
	Start      time.Time
	End        time.Time
}
