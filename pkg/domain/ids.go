package domain

import (
	"strings"

	dErrors "zoo/pkg/domain-errors"
)

// Identifiers in the primary store are short human-readable codes
// ("E001", "A12", "7"). Typed wrappers keep employees, animals and feed
// items from being swapped at call sites.
type (
	EmployeeID string
	AnimalID   string
	FeedItemID string
	RecordID   string
	TaskID     string
)

const maxIDLength = 32

func (id EmployeeID) String() string { return string(id) }
func (id AnimalID) String() string   { return string(id) }
func (id FeedItemID) String() string { return string(id) }
func (id RecordID) String() string   { return string(id) }
func (id TaskID) String() string     { return string(id) }

func (id EmployeeID) IsNil() bool { return id == "" }
func (id AnimalID) IsNil() bool   { return id == "" }
func (id FeedItemID) IsNil() bool { return id == "" }
func (id RecordID) IsNil() bool   { return id == "" }

// ParseEmployeeID validates an employee identifier from external input.
func ParseEmployeeID(s string) (EmployeeID, error) {
	v, err := parseCode("employee id", s)
	return EmployeeID(v), err
}

// ParseAnimalID validates an animal identifier from external input.
func ParseAnimalID(s string) (AnimalID, error) {
	v, err := parseCode("animal id", s)
	return AnimalID(v), err
}

// ParseFeedItemID validates a feed item identifier from external input.
func ParseFeedItemID(s string) (FeedItemID, error) {
	v, err := parseCode("feed item id", s)
	return FeedItemID(v), err
}

// ParseRecordID validates a record identifier from external input.
func ParseRecordID(s string) (RecordID, error) {
	v, err := parseCode("record id", s)
	return RecordID(v), err
}

// ParseTaskID validates a task identifier from external input.
func ParseTaskID(s string) (TaskID, error) {
	v, err := parseCode("task id", s)
	return TaskID(v), err
}

func parseCode(name, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, name+" is required")
	}
	if len(s) > maxIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, name+" is too long")
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return "", dErrors.New(dErrors.CodeInvalidInput, name+" contains invalid characters")
		}
	}
	return s, nil
}
