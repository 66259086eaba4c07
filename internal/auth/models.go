package auth

import (
	"time"

	id "zoo/pkg/domain"
)

// EmployeeStatus mirrors employee.status.
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusInactive EmployeeStatus = "inactive"
	StatusLeave    EmployeeStatus = "leave"
)

// Employee is the login view of an employee row.
type Employee struct {
	ID           id.EmployeeID
	Name         string
	Role         id.Role
	Status       EmployeeStatus
	PasswordHash string
}

// Login failure reasons recorded in the login log.
const (
	ReasonUnknownEmployee = "unknown_employee"
	ReasonInactive        = "inactive"
	ReasonBadPassword     = "bad_password"
)

// Session is an issued session token and what it grants.
type Session struct {
	Token      string        `json:"token"`
	EmployeeID id.EmployeeID `json:"employee_id"`
	Name       string        `json:"name"`
	Role       id.Role       `json:"role"`
	ExpiresAt  time.Time     `json:"expires_at"`
}

// Principal is the authenticated caller behind a session token.
type Principal struct {
	EmployeeID id.EmployeeID
	Role       id.Role
	SessionID  string
	ExpiresAt  time.Time
}

func (p *Principal) IsAdmin() bool { return p.Role.IsAdmin() }
