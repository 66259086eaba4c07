package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"zoo/internal/auth"
	"zoo/internal/auth/revocation"
	"zoo/internal/auth/store"
	"zoo/internal/eventlog"
	"zoo/internal/eventlog/store/memory"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	employees *store.InMemoryStore
	events    *memory.InMemoryStore
	service   *auth.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithClientAddr(
		requestcontext.WithTime(context.Background(), time.Now().UTC()), "10.0.0.7:5123")
	s.employees = store.NewInMemory()
	hash, err := bcrypt.GenerateFromPassword([]byte("keeper-pass"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.employees.AddEmployee(auth.Employee{ID: "E002", Name: "Kim", Role: id.RoleUser, Status: auth.StatusActive, PasswordHash: string(hash)})
	s.employees.AddEmployee(auth.Employee{ID: "E003", Name: "Ola", Role: id.RoleUser, Status: auth.StatusLeave, PasswordHash: string(hash)})
	s.events = memory.NewInMemoryStore()

	svc, err := auth.New(s.employees, revocation.NewInMemoryTRL(), s.events,
		auth.NewTokenIssuer("test-key", "zoo-test"), auth.WithTokenTTL(time.Hour))
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) lastLogin(employee id.EmployeeID) *eventlog.LoginEvent {
	events, err := s.events.ListLogins(s.ctx, employee, 1)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	return events[0]
}

func (s *ServiceSuite) TestLoginSuccess() {
	sess, err := s.service.Login(s.ctx, "E002", "keeper-pass")
	s.Require().NoError(err)
	s.NotEmpty(sess.Token)
	s.Equal(id.RoleUser, sess.Role)
	s.Equal("Kim", sess.Name)

	event := s.lastLogin("E002")
	s.Equal(eventlog.LoginSuccess, event.Status)
	s.Equal(eventlog.EventLogin, event.EventType)
	s.Equal("10.0.0.7:5123", event.ClientAddr)

	p, err := s.service.Authenticate(s.ctx, sess.Token)
	s.Require().NoError(err)
	s.Equal(id.EmployeeID("E002"), p.EmployeeID)
	s.False(p.IsAdmin())
}

func (s *ServiceSuite) TestLoginFailures() {
	cases := []struct {
		name     string
		employee id.EmployeeID
		password string
		reason   string
	}{
		{name: "unknown employee", employee: "E404", password: "whatever-pass", reason: auth.ReasonUnknownEmployee},
		{name: "employee on leave", employee: "E003", password: "keeper-pass", reason: auth.ReasonInactive},
		{name: "wrong password", employee: "E002", password: "not-the-pass", reason: auth.ReasonBadPassword},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Login(s.ctx, tc.employee, tc.password)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
			s.Equal("invalid employee id or password", dErrors.UserMessage(err),
				"failures must not reveal whether the employee exists")

			event := s.lastLogin(tc.employee)
			s.Equal(eventlog.LoginFailed, event.Status)
			s.Equal(tc.reason, event.Reason)
		})
	}
}

func (s *ServiceSuite) TestLogoutRevokesSession() {
	sess, err := s.service.Login(s.ctx, "E002", "keeper-pass")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, sess.Token))

	_, err = s.service.Authenticate(s.ctx, sess.Token)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Equal("session has ended", dErrors.UserMessage(err))
}

func (s *ServiceSuite) TestAuthenticateRequiresToken() {
	_, err := s.service.Authenticate(s.ctx, "")
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestSetPassword() {
	s.Require().NoError(s.service.SetPassword(s.ctx, "E003", "fresh-password"))
	emp, err := s.employees.FindEmployee(s.ctx, "E003")
	s.Require().NoError(err)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("fresh-password")))

	err = s.service.SetPassword(s.ctx, "E003", "short")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	err = s.service.SetPassword(s.ctx, "E404", "fresh-password")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
