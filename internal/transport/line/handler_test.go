package line_test

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Sessions,Ledger,Observations,Anomalies,Corrections,Shifts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zoo/internal/anomaly"
	"zoo/internal/auth"
	"zoo/internal/correction"
	"zoo/internal/eventlog"
	"zoo/internal/ledger"
	"zoo/internal/schedule"
	"zoo/internal/transport/line"
	"zoo/internal/transport/line/mocks"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
)

type HandlerSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	sessions    *mocks.MockSessions
	ledger      *mocks.MockLedger
	obs         *mocks.MockObservations
	anomalies   *mocks.MockAnomalies
	corrections *mocks.MockCorrections
	shifts      *mocks.MockShifts
	handler     *line.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.sessions = mocks.NewMockSessions(s.ctrl)
	s.ledger = mocks.NewMockLedger(s.ctrl)
	s.obs = mocks.NewMockObservations(s.ctrl)
	s.anomalies = mocks.NewMockAnomalies(s.ctrl)
	s.corrections = mocks.NewMockCorrections(s.ctrl)
	s.shifts = mocks.NewMockShifts(s.ctrl)
	s.handler = line.NewHandler(line.Services{
		Sessions:     s.sessions,
		Ledger:       s.ledger,
		Observations: s.obs,
		Anomalies:    s.anomalies,
		Corrections:  s.corrections,
		Shifts:       s.shifts,
	}, line.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func (s *HandlerSuite) asUser(token string) {
	s.sessions.EXPECT().Authenticate(gomock.Any(), token).Return(&auth.Principal{
		EmployeeID: id.EmployeeID("E002"),
		Role:       id.RoleUser,
		SessionID:  "jti-user",
	}, nil)
}

func (s *HandlerSuite) asAdmin(token string) {
	s.sessions.EXPECT().Authenticate(gomock.Any(), token).Return(&auth.Principal{
		EmployeeID: id.EmployeeID("E001"),
		Role:       id.RoleAdmin,
		SessionID:  "jti-admin",
	}, nil)
}

func (s *HandlerSuite) handle(raw string) line.Response {
	return s.handler.Handle(s.ctx, []byte(raw))
}

func (s *HandlerSuite) TestEnvelope() {
	s.Run("malformed json", func() {
		resp := s.handle(`{"action":`)
		s.False(resp.Success)
		s.Equal("malformed request", resp.Message)
	})

	s.Run("unknown action", func() {
		resp := s.handle(`{"action":"drop_tables"}`)
		s.False(resp.Success)
		s.Equal("unknown action", resp.Message)
	})

	s.Run("unknown data field", func() {
		s.asUser("tok")
		resp := s.handle(`{"action":"feed","token":"tok","data":{"animal_id":"A1","feed_item_id":"F1","amount_kg":1,"extra":true}}`)
		s.False(resp.Success)
		s.Equal("malformed request data", resp.Message)
	})

	s.Run("missing field names the field", func() {
		s.asUser("tok")
		resp := s.handle(`{"action":"feed","token":"tok","data":{"feed_item_id":"F1","amount_kg":1}}`)
		s.False(resp.Success)
		s.Equal("animal_id is required", resp.Message)
	})
}

func (s *HandlerSuite) TestLogin() {
	s.Run("returns the session", func() {
		sess := &auth.Session{Token: "tok", EmployeeID: id.EmployeeID("E001"), Name: "Alice", Role: id.RoleAdmin}
		s.sessions.EXPECT().Login(gomock.Any(), id.EmployeeID("E001"), "secret-pass").Return(sess, nil)

		resp := s.handle(`{"action":"login","data":{"employee_id":"E001","password":"secret-pass"}}`)

		s.True(resp.Success)
		s.Equal("welcome Alice", resp.Message)
		s.Same(sess, resp.Data)
	})

	s.Run("bad credentials", func() {
		s.sessions.EXPECT().Login(gomock.Any(), id.EmployeeID("E001"), "wrong-pass").
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid employee id or password"))

		resp := s.handle(`{"action":"login","data":{"employee_id":"E001","password":"wrong-pass"}}`)

		s.False(resp.Success)
		s.Equal("invalid employee id or password", resp.Message)
	})

	s.Run("logout revokes the presented token", func() {
		s.asUser("tok")
		s.sessions.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

		resp := s.handle(`{"action":"logout","token":"tok"}`)

		s.True(resp.Success)
		s.Equal("logged out", resp.Message)
	})
}

func (s *HandlerSuite) TestSessionGate() {
	s.Run("invalid session never reaches the service", func() {
		s.sessions.EXPECT().Authenticate(gomock.Any(), "stale").
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "session has ended"))
		s.ledger.EXPECT().Feed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		resp := s.handle(`{"action":"feed","token":"stale","data":{"animal_id":"A1","feed_item_id":"F1","amount_kg":1}}`)

		s.False(resp.Success)
		s.Equal("session has ended", resp.Message)
	})

	s.Run("admin command rejected for staff", func() {
		s.asUser("tok")
		s.ledger.EXPECT().Restock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		resp := s.handle(`{"action":"restock","token":"tok","data":{"feed_item_id":"F1","amount_kg":10}}`)

		s.False(resp.Success)
		s.Equal("administrator role required", resp.Message)
	})

	s.Run("admin command allowed for admin", func() {
		s.asAdmin("root")
		s.ledger.EXPECT().Restock(gomock.Any(), id.EmployeeID("E001"), id.FeedItemID("F1"), "10").
			Return(&ledger.InventoryEntry{ID: "7", FeedItemID: "F1", Quantity: decimal.NewFromInt(10), Reason: ledger.ReasonPurchase}, nil)

		resp := s.handle(`{"action":"restock","token":"root","data":{"feed_item_id":"F1","amount_kg":10}}`)

		s.True(resp.Success)
		s.Equal("restocked 10.0 kg of F1", resp.Message)
	})
}

func (s *HandlerSuite) TestFeed() {
	s.Run("passes the actor and exact amount text", func() {
		s.asUser("tok")
		res := &ledger.FeedResult{Message: "fed Leo 2.5 kg of F1", Remaining: decimal.RequireFromString("7.5")}
		s.ledger.EXPECT().
			Feed(gomock.Any(), id.EmployeeID("E002"), id.AnimalID("A1"), id.FeedItemID("F1"), "2.5").
			DoAndReturn(func(ctx context.Context, _ id.EmployeeID, _ id.AnimalID, _ id.FeedItemID, _ string) (*ledger.FeedResult, error) {
				s.Equal(id.EmployeeID("E002"), requestcontext.ActorID(ctx))
				s.Equal("jti-user", requestcontext.SessionID(ctx))
				s.NotEmpty(requestcontext.RequestID(ctx))
				return res, nil
			})

		resp := s.handle(`{"action":"feed","token":"tok","data":{"animal_id":"A1","feed_item_id":"F1","amount_kg":2.5}}`)

		s.True(resp.Success)
		s.Equal(res.Message, resp.Message)
		s.Same(res, resp.Data)
	})

	s.Run("amount may be sent as a string", func() {
		s.asUser("tok")
		s.ledger.EXPECT().
			Feed(gomock.Any(), id.EmployeeID("E002"), id.AnimalID("A1"), id.FeedItemID("F1"), "0.10").
			Return(&ledger.FeedResult{Message: "ok"}, nil)

		resp := s.handle(`{"action":"feed","token":"tok","data":{"animal_id":"A1","feed_item_id":"F1","amount_kg":"0.10"}}`)

		s.True(resp.Success)
	})

	s.Run("insufficient stock is reported to the caller", func() {
		s.asUser("tok")
		s.ledger.EXPECT().Feed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeInsufficientStock, "insufficient stock: 1.00 kg available"))

		resp := s.handle(`{"action":"feed","token":"tok","data":{"animal_id":"A1","feed_item_id":"F1","amount_kg":5}}`)

		s.False(resp.Success)
		s.Equal("insufficient stock: 1.00 kg available", resp.Message)
	})

	s.Run("bad identifier", func() {
		s.asUser("tok")

		resp := s.handle(`{"action":"feed","token":"tok","data":{"animal_id":"A 1","feed_item_id":"F1","amount_kg":5}}`)

		s.False(resp.Success)
		s.Equal("animal id contains invalid characters", resp.Message)
	})
}

func (s *HandlerSuite) TestInternalErrorsAreHidden() {
	s.Run("uncoded error", func() {
		s.asUser("tok")
		s.ledger.EXPECT().StockReport(gomock.Any()).Return(nil, errors.New("pq: relation inventory does not exist"))

		resp := s.handle(`{"action":"inventory_report","token":"tok"}`)

		s.False(resp.Success)
		s.Equal("internal error", resp.Message)
	})

	s.Run("panic", func() {
		s.asUser("tok")
		s.ledger.EXPECT().StockReport(gomock.Any()).DoAndReturn(func(context.Context) ([]ledger.StockLevel, error) {
			panic("boom")
		})

		resp := s.handle(`{"action":"inventory_report","token":"tok"}`)

		s.False(resp.Success)
		s.Equal("internal error", resp.Message)
	})
}

func (s *HandlerSuite) TestCheckAnomalies() {
	s.Run("no kind checks weight and feeding", func() {
		s.asUser("tok")
		s.anomalies.EXPECT().Check(gomock.Any(), anomaly.KindWeight, id.AnimalID("A1")).
			Return(&anomaly.Result{Kind: anomaly.KindWeight, Verdict: anomaly.VerdictAnomaly}, nil)
		s.anomalies.EXPECT().Check(gomock.Any(), anomaly.KindFeeding, id.AnimalID("A1")).
			Return(&anomaly.Result{Kind: anomaly.KindFeeding, Verdict: anomaly.VerdictNormal}, nil)

		resp := s.handle(`{"action":"check_anomalies","token":"tok","data":{"animal_id":"A1"}}`)

		s.True(resp.Success)
		s.Equal("1 anomalies found", resp.Message)
		s.Len(resp.Data, 2)
	})

	s.Run("single kind", func() {
		s.asUser("tok")
		s.anomalies.EXPECT().Check(gomock.Any(), anomaly.KindFeeding, id.AnimalID("A1")).
			Return(&anomaly.Result{Kind: anomaly.KindFeeding, Verdict: anomaly.VerdictInsufficientData}, nil)

		resp := s.handle(`{"action":"check_anomalies","token":"tok","data":{"animal_id":"A1","kind":"feeding"}}`)

		s.True(resp.Success)
		s.Equal("0 anomalies found", resp.Message)
	})
}

func (s *HandlerSuite) TestLogInputWarning() {
	s.asUser("tok")
	s.anomalies.EXPECT().LogInputWarning(gomock.Any(), id.EmployeeID("E002"), anomaly.InputWarning{
		AnimalID:  id.AnimalID("A1"),
		Kind:      anomaly.KindWeight,
		Value:     decimal.RequireFromString("150"),
		Proceeded: true,
	}).Return(&eventlog.InputWarning{ID: "w1"}, nil)

	resp := s.handle(`{"action":"log_input_warning","token":"tok","data":{"kind":"weight","animal_id":"A1","value":150,"proceeded":true}}`)

	s.True(resp.Success)
	s.Equal("input warning recorded", resp.Message)
}

func (s *HandlerSuite) TestCorrectRecord() {
	s.asUser("tok")
	s.corrections.EXPECT().Correct(gomock.Any(), id.EmployeeID("E002"), correction.Request{
		Table:    "animal_state_record",
		RecordID: id.RecordID("12"),
		Field:    "weight",
		NewValue: "101.00",
	}).Return(&correction.Result{
		Field:           "weight",
		RecordID:        id.RecordID("12"),
		OldValue:        "150.00",
		NewValue:        "101.00",
		RetractedAlerts: 1,
	}, nil)

	resp := s.handle(`{"action":"correct_record","token":"tok","data":{"table":"animal_state_record","record_id":"12","field":"weight","new_value":"101.00"}}`)

	s.True(resp.Success)
	s.Equal("weight of record 12 changed from 150.00 to 101.00; 1 pending alerts retracted", resp.Message)
}

func (s *HandlerSuite) TestReviewAlert() {
	s.Run("admin confirms", func() {
		s.asAdmin("root")
		s.anomalies.EXPECT().ReviewAlert(gomock.Any(), id.EmployeeID("E001"), "alert-1", eventlog.AlertConfirmed).
			Return(&eventlog.HealthAlert{ID: "alert-1", Status: eventlog.AlertConfirmed}, nil)

		resp := s.handle(`{"action":"review_alert","token":"root","data":{"alert_id":"alert-1","status":"CONFIRMED"}}`)

		s.True(resp.Success)
		s.Equal("alert marked CONFIRMED", resp.Message)
	})

	s.Run("status outside the allowed set", func() {
		s.asAdmin("root")

		resp := s.handle(`{"action":"review_alert","token":"root","data":{"alert_id":"alert-1","status":"PENDING"}}`)

		s.False(resp.Success)
		s.Equal("status must be one of: CONFIRMED INPUT_ERROR", resp.Message)
	})
}

func (s *HandlerSuite) TestAssignShift() {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	s.Run("assigns", func() {
		s.asAdmin("root")
		s.shifts.EXPECT().AssignShift(gomock.Any(), id.EmployeeID("E001"), schedule.Assignment{
			EmployeeID: id.EmployeeID("E003"),
			TaskID:     id.TaskID("T1"),
			AnimalID:   id.AnimalID("A2"),
			Start:      start,
			End:        end,
		}).Return(&schedule.Shift{ID: "S0001"}, nil)

		resp := s.handle(`{"action":"assign_shift","token":"root","data":{"employee_id":"E003","task_id":"T1","animal_id":"A2","start":"2026-03-02T08:00:00Z","end":"2026-03-02T16:00:00Z"}}`)

		s.True(resp.Success)
		s.Equal("shift S0001 assigned", resp.Message)
	})

	s.Run("end before start", func() {
		s.asAdmin("root")

		resp := s.handle(`{"action":"assign_shift","token":"root","data":{"employee_id":"E003","task_id":"T1","start":"2026-03-02T16:00:00Z","end":"2026-03-02T08:00:00Z"}}`)

		s.False(resp.Success)
		s.Equal("end must be after start", resp.Message)
	})
}
