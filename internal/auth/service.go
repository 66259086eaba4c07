// Package auth logs employees in, issues session tokens and revokes them on
// logout. Every login attempt is written to the login log.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"zoo/internal/eventlog"
	"zoo/internal/platform/metrics"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/platform/sentinel"
	"zoo/pkg/requestcontext"
)

const (
	defaultTokenTTL = 12 * time.Hour
	minPasswordLen  = 8
)

// loginFailedMessage is returned for every failed login, including unknown
// and inactive employee ids.
const loginFailedMessage = "invalid employee id or password"

type Service struct {
	employees EmployeeStore
	revoked   RevocationList
	logins    eventlog.LoginStore
	tokens    *TokenIssuer
	ttl       time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func New(employees EmployeeStore, revoked RevocationList, logins eventlog.LoginStore, tokens *TokenIssuer, opts ...Option) (*Service, error) {
	if employees == nil {
		return nil, fmt.Errorf("employee store is required")
	}
	if revoked == nil {
		return nil, fmt.Errorf("revocation list is required")
	}
	if logins == nil {
		return nil, fmt.Errorf("login store is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token issuer is required")
	}
	s := &Service{
		employees: employees,
		revoked:   revoked,
		logins:    logins,
		tokens:    tokens,
		ttl:       defaultTokenTTL,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Login checks the password of an active employee and issues a session.
func (s *Service) Login(ctx context.Context, employee id.EmployeeID, password string) (*Session, error) {
	if employee.IsNil() || password == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "employee id and password are required")
	}
	emp, err := s.employees.FindEmployee(ctx, employee)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.recordLogin(ctx, employee, eventlog.LoginFailed, ReasonUnknownEmployee)
			return nil, dErrors.New(dErrors.CodeUnauthorized, loginFailedMessage)
		}
		return nil, dErrors.FromStore(err, "failed to look up employee")
	}
	if emp.Status != StatusActive {
		s.recordLogin(ctx, employee, eventlog.LoginFailed, ReasonInactive)
		return nil, dErrors.New(dErrors.CodeUnauthorized, loginFailedMessage)
	}
	if emp.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		s.recordLogin(ctx, employee, eventlog.LoginFailed, ReasonBadPassword)
		return nil, dErrors.New(dErrors.CodeUnauthorized, loginFailedMessage)
	}

	now := requestcontext.Now(ctx)
	token, _, err := s.tokens.Issue(emp.ID, emp.Role, now, s.ttl)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue session")
	}
	s.recordLogin(ctx, employee, eventlog.LoginSuccess, "")
	s.logger.InfoContext(ctx, "employee logged in", "employee_id", emp.ID, "role", emp.Role)
	return &Session{
		Token:      token,
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Role:       emp.Role,
		ExpiresAt:  now.Add(s.ttl),
	}, nil
}

func (s *Service) recordLogin(ctx context.Context, employee id.EmployeeID, status eventlog.LoginStatus, reason string) {
	err := s.logins.AppendLogin(ctx, &eventlog.LoginEvent{
		Timestamp:  requestcontext.Now(ctx),
		EmployeeID: employee,
		Status:     status,
		Reason:     reason,
		ClientAddr: requestcontext.ClientAddr(ctx),
	})
	if err != nil {
		s.metrics.IncrementSecondaryFailure("append_login")
		s.logger.WarnContext(ctx, "failed to record login attempt",
			"employee_id", employee,
			"status", status,
			"error", err,
		)
	}
}

// Authenticate resolves a session token. Revoked, expired and malformed
// tokens are rejected; an unreachable revocation list fails closed.
func (s *Service) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "login required")
	}
	claims, err := s.tokens.Validate(token, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	start := time.Now()
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	s.metrics.ObserveRevocationCheck(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "revocation check failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "service unavailable, please retry later")
	}
	if revoked {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session has ended")
	}
	p := &Principal{
		EmployeeID: id.EmployeeID(claims.EmployeeID),
		Role:       id.Role(claims.Role),
		SessionID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}

// Logout revokes the session for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, token string) error {
	p, err := s.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	ttl := p.ExpiresAt.Sub(requestcontext.Now(ctx))
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.RevokeToken(ctx, p.SessionID, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to end session")
	}
	s.logger.InfoContext(ctx, "employee logged out", "employee_id", p.EmployeeID)
	return nil
}

// SetPassword stores a bcrypt hash of password for employee.
func (s *Service) SetPassword(ctx context.Context, employee id.EmployeeID, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.employees.SetPasswordHash(ctx, employee, hash); err != nil {
		return dErrors.FromStore(err, "employee not found")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	return string(hash), nil
}
