package anomaly_test

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zoo/internal/anomaly"
	"zoo/internal/anomaly/mocks"
	anomalystore "zoo/internal/anomaly/store"
	"zoo/internal/eventlog"
	eventmocks "zoo/internal/eventlog/mocks"
	eventmemory "zoo/internal/eventlog/store/memory"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/platform/sentinel"
	"zoo/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx          context.Context
	observations *anomalystore.InMemoryStore
	events       *eventmemory.InMemoryStore
	service      *anomaly.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC))
	s.observations = anomalystore.NewInMemory()
	s.events = eventmemory.NewInMemoryStore()
	svc, err := anomaly.New(s.observations, s.events)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) addWeights(animal id.AnimalID, recorder id.EmployeeID, values ...string) {
	for i, v := range values {
		s.observations.AddWeight(animal, anomaly.Observation{
			RecordID:   id.RecordID(string(animal) + "-" + v),
			Value:      decimal.RequireFromString(v),
			At:         time.Date(2026, 4, 1, i, 0, 0, 0, time.UTC),
			RecordedBy: recorder,
		})
	}
}

func (s *ServiceSuite) addFeedings(animal id.AnimalID, values ...string) {
	for _, v := range values {
		s.observations.AddFeeding(animal, anomaly.Observation{Value: decimal.RequireFromString(v), RecordedBy: "E002"})
	}
}

// =============================================================================
// Checks
// =============================================================================

func (s *ServiceSuite) TestCheckWeightRaisesPendingHighAlert() {
	s.addWeights("A1", "E002", "100", "99", "101", "100", "100", "115")

	res, err := s.service.CheckWeight(s.ctx, "A1")
	s.Require().NoError(err)
	s.Require().True(res.IsAnomaly())
	s.NotEmpty(res.AlertID)

	alerts, err := s.service.PendingAlerts(s.ctx, "A1", 0)
	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	alert := alerts[0]
	s.Equal(eventlog.AlertWeightAnomaly, alert.Kind)
	s.Equal(eventlog.LevelHigh, alert.Level)
	s.Equal(eventlog.AlertPending, alert.Status)
	s.Equal(id.EmployeeID("E002"), alert.RecordedBy)
	s.Equal(id.RecordID("A1-115"), alert.SourceRecordID)
	s.Equal("115", alert.ObservedValue)
	s.Equal("weight anomaly +15.0% (recent average 100.0kg, current 115.0kg)", alert.Message)
}

func (s *ServiceSuite) TestCheckWithoutAnomalyWritesNothing() {
	s.addWeights("A1", "E002", "100", "100", "110")
	s.addFeedings("A1", "10")

	res, err := s.service.CheckWeight(s.ctx, "A1")
	s.Require().NoError(err)
	s.Equal(anomaly.VerdictNormal, res.Verdict)

	res, err = s.service.CheckFeeding(s.ctx, "A1")
	s.Require().NoError(err)
	s.Equal(anomaly.VerdictInsufficientData, res.Verdict)

	alerts, err := s.service.PendingAlerts(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Empty(alerts)
}

func (s *ServiceSuite) TestCheckFeedingRaisesMediumAlert() {
	s.addFeedings("A2", "10", "10", "10", "15")

	res, err := s.service.CheckFeeding(s.ctx, "A2")
	s.Require().NoError(err)
	s.Require().True(res.IsAnomaly())
	s.Equal("feeding anomaly +50.0% (recent average 10.0kg, current 15.0kg)", res.Message)

	alert, err := s.events.GetAlert(s.ctx, res.AlertID)
	s.Require().NoError(err)
	s.Equal(eventlog.LevelMedium, alert.Level)
	s.Equal(eventlog.AlertFeedingAnomaly, alert.Kind)
}

func (s *ServiceSuite) TestAlertStoreFailureStillReturnsResult() {
	ctrl := gomock.NewController(s.T())
	events := eventmocks.NewMockStore(ctrl)
	events.EXPECT().InsertAlert(gomock.Any(), gomock.Any()).Return(sentinel.ErrUnavailable)
	svc, err := anomaly.New(s.observations, events)
	s.Require().NoError(err)
	s.addWeights("A1", "E002", "100", "100", "150")

	res, err := svc.CheckWeight(s.ctx, "A1")
	s.Require().NoError(err)
	s.True(res.IsAnomaly())
	s.Empty(res.AlertID)
}

func (s *ServiceSuite) TestNotifierReceivesRaisedAlert() {
	ctrl := gomock.NewController(s.T())
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().AlertRaised(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, alert *eventlog.HealthAlert) error {
			s.Equal(id.AnimalID("A1"), alert.AnimalID)
			return errors.New("broker down")
		})
	svc, err := anomaly.New(s.observations, s.events, anomaly.WithNotifier(notifier))
	s.Require().NoError(err)
	s.addWeights("A1", "E002", "100", "100", "150")

	res, err := svc.CheckWeight(s.ctx, "A1")
	s.Require().NoError(err)
	s.NotEmpty(res.AlertID, "publish failure does not undo the stored alert")
}

func (s *ServiceSuite) TestObservationStoreFailureIsUnavailable() {
	ctrl := gomock.NewController(s.T())
	obs := mocks.NewMockObservationStore(ctrl)
	obs.EXPECT().RecentWeights(gomock.Any(), id.AnimalID("A1"), 6).Return(nil, sentinel.ErrUnavailable)
	svc, err := anomaly.New(obs, s.events)
	s.Require().NoError(err)

	_, err = svc.CheckWeight(s.ctx, "A1")
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *ServiceSuite) TestPreviewDoesNotWrite() {
	s.addWeights("A1", "E002", "100", "100", "100", "100", "100", "100")

	res, err := s.service.Preview(s.ctx, anomaly.KindWeight, "A1", "120")
	s.Require().NoError(err)
	s.True(res.IsAnomaly())
	s.Equal(5, res.Samples)
	s.Empty(res.AlertID)

	alerts, err := s.service.PendingAlerts(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Empty(alerts)

	_, err = s.service.Preview(s.ctx, anomaly.KindWeight, "A1", "-3")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

// =============================================================================
// Batch scan
// =============================================================================

func (s *ServiceSuite) TestBatchScanCollectsAnomaliesAcrossAnimals() {
	s.observations.AddAnimal("A1", "Bao", true)
	s.observations.AddAnimal("A2", "Kiki", true)
	s.observations.AddAnimal("A3", "Gone", false)
	s.addWeights("A1", "E002", "100", "100", "100", "130")
	s.addFeedings("A2", "10", "10", "20")
	s.addWeights("A3", "E002", "100", "100", "300")

	report, err := s.service.BatchScan(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, report.Scanned)
	s.Empty(report.Failures)
	s.Require().Len(report.Anomalies, 2)
	s.Equal(id.AnimalID("A1"), report.Anomalies[0].AnimalID)
	s.Equal("Bao", report.Anomalies[0].Name)
	s.Equal(anomaly.KindWeight, report.Anomalies[0].Kind)
	s.Equal(id.AnimalID("A2"), report.Anomalies[1].AnimalID)
	s.Equal(anomaly.KindFeeding, report.Anomalies[1].Kind)
}

func (s *ServiceSuite) TestBatchScanContinuesPastFailingAnimal() {
	ctrl := gomock.NewController(s.T())
	obs := mocks.NewMockObservationStore(ctrl)
	obs.EXPECT().AnimalsInZoo(gomock.Any()).Return([]anomaly.Animal{{ID: "A1"}, {ID: "A2"}}, nil)
	obs.EXPECT().RecentWeights(gomock.Any(), id.AnimalID("A1"), 6).Return(nil, sentinel.ErrUnavailable)
	obs.EXPECT().RecentFeedings(gomock.Any(), id.AnimalID("A1"), 8).Return(nil, nil)
	obs.EXPECT().RecentWeights(gomock.Any(), id.AnimalID("A2"), 6).Return(series("150", "100", "100"), nil)
	obs.EXPECT().RecentFeedings(gomock.Any(), id.AnimalID("A2"), 8).Return(nil, nil)
	svc, err := anomaly.New(obs, s.events, anomaly.WithBatchConcurrency(1))
	s.Require().NoError(err)

	report, err := svc.BatchScan(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(report.Failures, 1)
	s.Equal(id.AnimalID("A1"), report.Failures[0].AnimalID)
	s.Equal(anomaly.KindWeight, report.Failures[0].Kind)
	s.Require().Len(report.Anomalies, 1)
	s.Equal(id.AnimalID("A2"), report.Anomalies[0].AnimalID)
}

// =============================================================================
// Input warnings and review
// =============================================================================

func (s *ServiceSuite) TestProceededWarningRaisesConfirmedAlert() {
	s.addWeights("A1", "E001", "100", "100")

	warning, err := s.service.LogInputWarning(s.ctx, "E002", anomaly.InputWarning{
		AnimalID:  "A1",
		Kind:      anomaly.KindWeight,
		Value:     decimal.RequireFromString("150"),
		Proceeded: true,
	})
	s.Require().NoError(err)
	s.True(warning.Proceeded)
	s.Equal("100", warning.ExpectedValue)
	s.Equal("50", warning.DeviationPct)

	alerts, err := s.service.PendingAlerts(s.ctx, "A1", 0)
	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	s.Equal(eventlog.AlertConfirmedWeightAnomaly, alerts[0].Kind)
	s.Equal(id.EmployeeID("E002"), alerts[0].RecordedBy)
	s.Equal("100", alerts[0].BaselineValue)
	s.Equal("50", alerts[0].ChangePct)

	counts, err := s.events.CountProceededWarningsByEmployee(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, counts["E002"])
}

func (s *ServiceSuite) TestCancelledWarningRaisesNoAlert() {
	_, err := s.service.LogInputWarning(s.ctx, "E002", anomaly.InputWarning{
		AnimalID: "A1",
		Kind:     anomaly.KindFeeding,
		Value:    decimal.RequireFromString("30"),
	})
	s.Require().NoError(err)

	alerts, err := s.service.PendingAlerts(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Empty(alerts)
	warnings := s.events.InputWarnings()
	s.Require().Len(warnings, 1)
	s.False(warnings[0].Proceeded)
	s.Empty(warnings[0].ExpectedValue)
	s.Empty(warnings[0].DeviationPct)
}

func (s *ServiceSuite) TestProceededWarningWithoutHistoryHasNoBaseline() {
	_, err := s.service.LogInputWarning(s.ctx, "E002", anomaly.InputWarning{
		AnimalID:  "A1",
		Kind:      anomaly.KindFeeding,
		Value:     decimal.RequireFromString("30"),
		Proceeded: true,
	})
	s.Require().NoError(err)

	alerts, err := s.service.PendingAlerts(s.ctx, "A1", 0)
	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	s.Equal(eventlog.AlertConfirmedFeedingAnomaly, alerts[0].Kind)
	s.Contains(alerts[0].Message, "no baseline")
	s.Empty(alerts[0].BaselineValue)
	s.Empty(alerts[0].ChangePct)
}

func (s *ServiceSuite) TestReviewAlertLifecycle() {
	s.addWeights("A1", "E002", "100", "100", "150")
	res, err := s.service.CheckWeight(s.ctx, "A1")
	s.Require().NoError(err)

	reviewed, err := s.service.ReviewAlert(s.ctx, "E001", res.AlertID, eventlog.AlertInputError)
	s.Require().NoError(err)
	s.Equal(eventlog.AlertInputError, reviewed.Status)
	s.Equal(id.EmployeeID("E001"), reviewed.ReviewedBy)

	_, err = s.service.ReviewAlert(s.ctx, "E001", res.AlertID, eventlog.AlertConfirmed)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

	_, err = s.service.ReviewAlert(s.ctx, "E001", "nope", eventlog.AlertConfirmed)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.ReviewAlert(s.ctx, "E001", res.AlertID, eventlog.AlertPending)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestHighRiskAnimals() {
	s.observations.AddAnimal("A1", "Bao", true)
	s.observations.AddAnimal("A2", "Kiki", true)
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.events.InsertAlert(s.ctx, &eventlog.HealthAlert{AnimalID: "A1", Status: eventlog.AlertConfirmed}))
	}
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.events.InsertAlert(s.ctx, &eventlog.HealthAlert{AnimalID: "A2", Status: eventlog.AlertPending}))
	}
	s.Require().NoError(s.events.InsertAlert(s.ctx, &eventlog.HealthAlert{AnimalID: "A3", Status: eventlog.AlertPending}))

	risks, err := s.service.HighRiskAnimals(s.ctx)
	s.Require().NoError(err)
	s.Equal([]anomaly.RiskEntry{
		{AnimalID: "A1", Name: "Bao", AlertCount: 4},
		{AnimalID: "A2", Name: "Kiki", AlertCount: 3},
	}, risks)
}
