package observation_test

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zoo/internal/anomaly"
	"zoo/internal/observation"
	"zoo/internal/observation/mocks"
	"zoo/internal/observation/store"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	gate    *mocks.MockAuthorizer
	checker *mocks.MockWeightChecker
	store   *store.InMemoryStore
	service *observation.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC))
	s.ctrl = gomock.NewController(s.T())
	s.gate = mocks.NewMockAuthorizer(s.ctrl)
	s.checker = mocks.NewMockWeightChecker(s.ctrl)
	s.store = store.NewInMemory()
	s.store.AddAnimal("A1")
	svc, err := observation.New(s.store, s.gate, observation.WithWeightChecker(s.checker))
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TestAddStateRecord() {
	s.Run("commits the record and attaches the anomaly verdict", func() {
		s.gate.EXPECT().Require(gomock.Any(), id.EmployeeID("E001"), id.AnimalID("A1")).Return(nil)
		verdict := &anomaly.Result{AnimalID: "A1", Kind: anomaly.KindWeight, Verdict: anomaly.VerdictAnomaly}
		s.checker.EXPECT().CheckWeight(gomock.Any(), id.AnimalID("A1")).Return(verdict, nil)

		res, err := s.service.AddStateRecord(s.ctx, "E001", "A1", "115.50", 2)
		s.Require().NoError(err)
		s.Equal("1", string(res.Record.ID))
		s.Equal("115.5", res.Record.Weight.String())
		s.Equal(observation.StatusObservation, res.Record.Status)
		s.Equal(requestcontext.Now(s.ctx), res.Record.At)
		s.Same(verdict, res.Anomaly)
		s.Len(s.store.Records(), 1)
	})

	s.Run("status zero defaults to normal", func() {
		s.gate.EXPECT().Require(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.checker.EXPECT().CheckWeight(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := s.service.AddStateRecord(s.ctx, "E001", "A1", "0", 0)
		s.Require().NoError(err)
		s.Equal(observation.StatusNormal, res.Record.Status)
		s.Equal("2", string(res.Record.ID))
	})

	s.Run("failed check keeps the record", func() {
		s.gate.EXPECT().Require(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.checker.EXPECT().CheckWeight(gomock.Any(), gomock.Any()).Return(nil, errors.New("store down"))

		res, err := s.service.AddStateRecord(s.ctx, "E001", "A1", "99", 1)
		s.Require().NoError(err)
		s.Nil(res.Anomaly)
		s.Len(s.store.Records(), 3)
	})
}

func (s *ServiceSuite) TestAddStateRecordRejectsInput() {
	cases := []struct {
		name   string
		weight string
		status int
		code   dErrors.Code
	}{
		{name: "negative weight", weight: "-1", status: 1, code: dErrors.CodeValidation},
		{name: "not a number", weight: "heavy", status: 1, code: dErrors.CodeValidation},
		{name: "three decimal places", weight: "10.125", status: 1, code: dErrors.CodeValidation},
		{name: "unknown status", weight: "10", status: 7, code: dErrors.CodeInvalidInput},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.AddStateRecord(s.ctx, "E001", "A1", tc.weight, tc.status)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, tc.code), "got %v", err)
		})
	}
	s.Empty(s.store.Records())
}

func (s *ServiceSuite) TestAddStateRecordDenied() {
	s.gate.EXPECT().Require(gomock.Any(), id.EmployeeID("E009"), id.AnimalID("A1")).
		Return(dErrors.New(dErrors.CodeForbidden, "permission denied: not on duty"))

	_, err := s.service.AddStateRecord(s.ctx, "E009", "A1", "100", 1)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	s.Empty(s.store.Records())
}

func (s *ServiceSuite) TestAddStateRecordUnknownAnimal() {
	s.gate.EXPECT().Require(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.service.AddStateRecord(s.ctx, "E001", "A404", "100", 1)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestRecentStates() {
	s.gate.EXPECT().Require(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.checker.EXPECT().CheckWeight(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	for _, w := range []string{"100", "101", "102"} {
		_, err := s.service.AddStateRecord(s.ctx, "E001", "A1", w, 1)
		s.Require().NoError(err)
	}

	recs, err := s.service.RecentStates(s.ctx, "A1", 2)
	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Equal("102", recs[0].Weight.String())
	s.Equal("101", recs[1].Weight.String())
}
