//go:build integration

package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	"zoo/internal/eventlog"
	"zoo/pkg/platform/sentinel"
	"zoo/pkg/testutil/containers"
)

type MongoStoreSuite struct {
	suite.Suite
	db    *mongo.Database
	store *Store
}

func TestMongoStoreSuite(t *testing.T) {
	suite.Run(t, new(MongoStoreSuite))
}

func (s *MongoStoreSuite) SetupSuite() {
	c := containers.GetManager().GetMongo(s.T())
	s.db = c.Database("zoo_" + uuid.NewString()[:8])
	s.store = New(s.db)
	s.Require().NoError(s.store.EnsureIndexes(context.Background()))
}

func (s *MongoStoreSuite) TearDownSuite() {
	_ = s.db.Drop(context.Background())
}

func (s *MongoStoreSuite) SetupTest() {
	ctx := context.Background()
	for _, name := range []string{eventlog.CollectionHealthAlerts, eventlog.CollectionAuditLogs, eventlog.CollectionLoginLogs} {
		_, err := s.db.Collection(name).DeleteMany(ctx, map[string]any{})
		s.Require().NoError(err)
	}
}

func (s *MongoStoreSuite) TestAlertReviewLifecycle() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	alert := &eventlog.HealthAlert{
		AnimalID:   "A001",
		Kind:       eventlog.AlertWeightAnomaly,
		Level:      eventlog.LevelHigh,
		Message:    "weight anomaly +15.0%",
		RecordedBy: "E002",
		Status:     eventlog.AlertPending,
		CreatedAt:  now,
	}
	s.Require().NoError(s.store.InsertAlert(ctx, alert))
	s.NotEmpty(alert.ID)

	reviewed, err := s.store.TransitionAlert(ctx, alert.ID, eventlog.AlertPending, eventlog.AlertInputError, "E001", now)
	s.Require().NoError(err)
	s.Equal(eventlog.AlertInputError, reviewed.Status)
	s.Require().NotNil(reviewed.ReviewedAt)

	s.Run("second review is refused", func() {
		_, err := s.store.TransitionAlert(ctx, alert.ID, eventlog.AlertPending, eventlog.AlertConfirmed, "E001", now)
		s.True(errors.Is(err, sentinel.ErrInvalidState))
	})

	s.Run("unknown alert is not found", func() {
		_, err := s.store.TransitionAlert(ctx, "missing", eventlog.AlertPending, eventlog.AlertConfirmed, "E001", now)
		s.True(errors.Is(err, sentinel.ErrNotFound))
	})

	override := &eventlog.HealthAlert{
		AnimalID:   "A001",
		Kind:       eventlog.AlertConfirmedWeightAnomaly,
		Level:      eventlog.LevelHigh,
		RecordedBy: "E002",
		Status:     eventlog.AlertInputError,
		CreatedAt:  now,
	}
	s.Require().NoError(s.store.InsertAlert(ctx, override))

	counts, err := s.store.CountInputErrorsByRecorder(ctx)
	s.Require().NoError(err)
	s.Equal(1, counts["E002"], "override alerts are already counted as proceeded warnings")
}

func (s *MongoStoreSuite) TestDeletePendingAlertsKeepsReviewed() {
	ctx := context.Background()
	now := time.Now().UTC()
	for i, st := range []eventlog.AlertStatus{eventlog.AlertPending, eventlog.AlertPending, eventlog.AlertConfirmed} {
		s.Require().NoError(s.store.InsertAlert(ctx, &eventlog.HealthAlert{
			AnimalID:  "A001",
			Kind:      eventlog.AlertWeightAnomaly,
			Status:    st,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	n, err := s.store.DeletePendingAlerts(ctx, "A001")
	s.Require().NoError(err)
	s.EqualValues(2, n)

	left, err := s.store.ListAlerts(ctx, eventlog.AlertFilter{AnimalID: "A001"})
	s.Require().NoError(err)
	s.Require().Len(left, 1)
	s.Equal(eventlog.AlertConfirmed, left[0].Status)

	byAnimal, err := s.store.CountAlertsByAnimal(ctx)
	s.Require().NoError(err)
	s.Equal(1, byAnimal["A001"])
}

func (s *MongoStoreSuite) TestAuditAndWarningsShareCollection() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.store.AppendAudit(ctx, &eventlog.AuditEntry{
		Timestamp: now, OperatorID: "E001", TargetTable: "animal_state_record",
		TargetRecordID: "R001", Field: "weight", OldValue: "115.00", NewValue: "101.00",
		OriginalCreatorID: "E002",
	}))
	s.Require().NoError(s.store.AppendInputWarning(ctx, &eventlog.InputWarning{
		Timestamp: now, EmployeeID: "E002", AnimalID: "A001", WarningType: "WEIGHT",
		InputValue: "150", ExpectedValue: "100", Proceeded: true,
	}))
	s.Require().NoError(s.store.AppendInputWarning(ctx, &eventlog.InputWarning{
		Timestamp: now, EmployeeID: "E002", AnimalID: "A001", WarningType: "WEIGHT",
		InputValue: "150", ExpectedValue: "100", Proceeded: false,
	}))

	entries, err := s.store.ListAudit(ctx, eventlog.AuditFilter{OperatorID: "E001"})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(eventlog.EventDataCorrection, entries[0].EventType)

	corrections, err := s.store.CountCorrectionsByCreator(ctx)
	s.Require().NoError(err)
	s.Equal(1, corrections["E002"])

	warnings, err := s.store.CountProceededWarningsByEmployee(ctx)
	s.Require().NoError(err)
	s.Equal(1, warnings["E002"])
}

func (s *MongoStoreSuite) TestLoginsNewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(s.T(), s.store.AppendLogin(ctx, &eventlog.LoginEvent{
		Timestamp: base, EmployeeID: "E002", Status: eventlog.LoginFailed, Reason: "bad_password",
	}))
	require.NoError(s.T(), s.store.AppendLogin(ctx, &eventlog.LoginEvent{
		Timestamp: base.Add(time.Second), EmployeeID: "E002", Status: eventlog.LoginSuccess,
	}))

	events, err := s.store.ListLogins(ctx, "E002", 10)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(eventlog.LoginSuccess, events[0].Status)
	s.Equal(eventlog.LoginFailed, events[1].Status)
}
