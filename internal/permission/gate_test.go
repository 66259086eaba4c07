package permission

//go:generate mockgen -source=gate.go -destination=mocks/mocks.go -package=mocks Store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zoo/internal/permission/mocks"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
)

type GateSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *mocks.MockStore
	gate  *Gate
	ctx   context.Context
	now   time.Time
}

func (s *GateSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	gate, err := New(s.store)
	s.Require().NoError(err)
	s.gate = gate
	s.now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

// =============================================================================
// Super actor
// =============================================================================

func (s *GateSuite) TestSuperActorBypassesAllChecks() {
	decision, err := s.gate.Authorize(s.ctx, DefaultSuperActor, "A1")
	s.Require().NoError(err)
	s.True(decision.Allowed)
	s.Equal(ReasonSuperActor, decision.Reason)
}

func (s *GateSuite) TestConfiguredSuperActor() {
	gate, err := New(s.store, WithSuperActor("E900"))
	s.Require().NoError(err)

	decision, err := gate.Authorize(s.ctx, "E900", "A1")
	s.Require().NoError(err)
	s.True(decision.Allowed)

	s.store.EXPECT().HasActiveShift(gomock.Any(), id.EmployeeID("E001"), id.AnimalID("A1"), s.now).Return(false, nil)
	decision, err = gate.Authorize(s.ctx, "E001", "A1")
	s.Require().NoError(err)
	s.False(decision.Allowed)
}

// =============================================================================
// Shift and skill checks
// =============================================================================

func (s *GateSuite) TestAuthorize() {
	s.Run("off duty is denied without consulting skills", func() {
		s.store.EXPECT().HasActiveShift(gomock.Any(), id.EmployeeID("E002"), id.AnimalID("A1"), s.now).Return(false, nil)

		decision, err := s.gate.Authorize(s.ctx, "E002", "A1")
		s.Require().NoError(err)
		s.False(decision.Allowed)
		s.Equal(ReasonNotOnDuty, decision.Reason)
	})

	s.Run("unrestricted animal only needs the shift", func() {
		s.store.EXPECT().HasActiveShift(gomock.Any(), id.EmployeeID("E002"), id.AnimalID("A1"), s.now).Return(true, nil)
		s.store.EXPECT().RequiredSkill(gomock.Any(), id.AnimalID("A1")).Return(DefaultSkill, nil)

		decision, err := s.gate.Authorize(s.ctx, "E002", "A1")
		s.Require().NoError(err)
		s.True(decision.Allowed)
	})

	s.Run("restricted animal without grant is denied", func() {
		s.store.EXPECT().HasActiveShift(gomock.Any(), id.EmployeeID("E002"), id.AnimalID("A7"), s.now).Return(true, nil)
		s.store.EXPECT().RequiredSkill(gomock.Any(), id.AnimalID("A7")).Return("Carnivore", nil)
		s.store.EXPECT().HasSkill(gomock.Any(), id.EmployeeID("E002"), "Carnivore").Return(false, nil)

		decision, err := s.gate.Authorize(s.ctx, "E002", "A7")
		s.Require().NoError(err)
		s.False(decision.Allowed)
		s.Equal("missing credential: Carnivore", decision.Reason)
	})

	s.Run("restricted animal with grant is allowed", func() {
		s.store.EXPECT().HasActiveShift(gomock.Any(), id.EmployeeID("E003"), id.AnimalID("A7"), s.now).Return(true, nil)
		s.store.EXPECT().RequiredSkill(gomock.Any(), id.AnimalID("A7")).Return("Carnivore", nil)
		s.store.EXPECT().HasSkill(gomock.Any(), id.EmployeeID("E003"), "Carnivore").Return(true, nil)

		decision, err := s.gate.Authorize(s.ctx, "E003", "A7")
		s.Require().NoError(err)
		s.True(decision.Allowed)
	})

	s.Run("store failure never allows", func() {
		s.store.EXPECT().HasActiveShift(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		decision, err := s.gate.Authorize(s.ctx, "E002", "A1")
		s.Require().Error(err)
		s.False(decision.Allowed)
	})
}

// =============================================================================
// Require
// =============================================================================

func (s *GateSuite) TestRequire() {
	s.Run("denial is forbidden with the gate reason", func() {
		s.store.EXPECT().HasActiveShift(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		err := s.gate.Require(s.ctx, "E002", "A1")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.Equal(ReasonNotOnDuty, dErrors.UserMessage(err))
	})

	s.Run("store failure is unavailable", func() {
		s.store.EXPECT().HasActiveShift(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))

		err := s.gate.Require(s.ctx, "E002", "A1")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func (s *GateSuite) TestNewRequiresStore() {
	_, err := New(nil)
	s.Error(err)
}
