package line

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"zoo/internal/anomaly"
	"zoo/internal/auth"
	"zoo/internal/correction"
	"zoo/internal/eventlog"
	"zoo/internal/ledger"
	"zoo/internal/observation"
	"zoo/internal/platform/metrics"
	"zoo/internal/schedule"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
)

// Ports consumed by the line handler.

type Sessions interface {
	Login(ctx context.Context, employee id.EmployeeID, password string) (*auth.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

type Ledger interface {
	Feed(ctx context.Context, actor id.EmployeeID, animal id.AnimalID, feed id.FeedItemID, amount string) (*ledger.FeedResult, error)
	Restock(ctx context.Context, actor id.EmployeeID, feed id.FeedItemID, amount string) (*ledger.InventoryEntry, error)
	RecordWastage(ctx context.Context, actor id.EmployeeID, feed id.FeedItemID, amount string) (*ledger.InventoryEntry, error)
	Adjust(ctx context.Context, actor id.EmployeeID, feed id.FeedItemID, delta string) (*ledger.InventoryEntry, error)
	StockReport(ctx context.Context) ([]ledger.StockLevel, error)
	RecentFeedings(ctx context.Context, animal id.AnimalID, limit int) ([]ledger.FeedingRecord, error)
}

type Observations interface {
	AddStateRecord(ctx context.Context, actor id.EmployeeID, animal id.AnimalID, weight string, status int) (*observation.AddResult, error)
	RecentStates(ctx context.Context, animal id.AnimalID, limit int) ([]observation.StateRecord, error)
}

type Anomalies interface {
	Check(ctx context.Context, kind anomaly.Kind, animal id.AnimalID) (*anomaly.Result, error)
	Preview(ctx context.Context, kind anomaly.Kind, animal id.AnimalID, value string) (*anomaly.Result, error)
	BatchScan(ctx context.Context) (*anomaly.BatchReport, error)
	LogInputWarning(ctx context.Context, actor id.EmployeeID, w anomaly.InputWarning) (*eventlog.InputWarning, error)
	PendingAlerts(ctx context.Context, animal id.AnimalID, limit int) ([]*eventlog.HealthAlert, error)
	ReviewAlert(ctx context.Context, reviewer id.EmployeeID, alertID string, status eventlog.AlertStatus) (*eventlog.HealthAlert, error)
	HighRiskAnimals(ctx context.Context) ([]anomaly.RiskEntry, error)
}

type Corrections interface {
	Correct(ctx context.Context, operator id.EmployeeID, req correction.Request) (*correction.Result, error)
	AuditLogs(ctx context.Context, filter eventlog.AuditFilter) ([]*eventlog.AuditEntry, error)
	MyCorrections(ctx context.Context, employee id.EmployeeID, limit int) ([]*eventlog.AuditEntry, error)
	CarelessEmployees(ctx context.Context) ([]correction.CarelessEntry, error)
}

type Shifts interface {
	AssignShift(ctx context.Context, admin id.EmployeeID, a schedule.Assignment) (*schedule.Shift, error)
}

// Services are the domain services reachable over the line protocol.
type Services struct {
	Sessions     Sessions
	Ledger       Ledger
	Observations Observations
	Anomalies    Anomalies
	Corrections  Corrections
	Shifts       Shifts
}

// Handler turns request lines into service calls.
type Handler struct {
	svc      Services
	routes   map[Command]route
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type HandlerOption func(*Handler)

func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
	}
}

func NewHandler(svc Services, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:      svc,
		validate: newValidator(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.routes = h.buildRoutes()
	return h
}

// Handle serves one raw request line.
func (h *Handler) Handle(ctx context.Context, raw []byte) (resp Response) {
	start := time.Now()
	ctx = requestcontext.WithRequestID(ctx, uuid.NewString())

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return Response{Message: "malformed request"}
	}
	cmd := Command(req.Action)
	rt, ok := h.routes[cmd]
	if !ok {
		h.metrics.ObserveLineRequest("unknown", "error", time.Since(start))
		return Response{Message: "unknown action"}
	}

	defer func() {
		if r := recover(); r != nil {
			h.logger.ErrorContext(ctx, "panic serving request",
				"action", cmd,
				"request_id", requestcontext.RequestID(ctx),
				"panic", r,
			)
			resp = errorResponse(dErrors.New(dErrors.CodeInternal, "internal error"))
		}
		outcome := "ok"
		if !resp.Success {
			outcome = "error"
		}
		h.metrics.ObserveLineRequest(string(cmd), outcome, time.Since(start))
	}()

	var principal *auth.Principal
	if rt.requiresSession {
		p, err := h.svc.Sessions.Authenticate(ctx, req.Token)
		if err != nil {
			return errorResponse(err)
		}
		if rt.adminOnly && !p.IsAdmin() {
			return errorResponse(dErrors.New(dErrors.CodeForbidden, "administrator role required"))
		}
		principal = p
		ctx = requestcontext.WithActor(ctx, p.EmployeeID, p.Role)
		ctx = requestcontext.WithSessionID(ctx, p.SessionID)
	}

	msg, data, err := rt.handle(ctx, call{principal: principal, token: req.Token, data: req.Data})
	if err != nil {
		h.logError(ctx, cmd, principal, err)
		return errorResponse(err)
	}
	return okResponse(msg, data)
}

func (h *Handler) logError(ctx context.Context, cmd Command, p *auth.Principal, err error) {
	var actor id.EmployeeID
	if p != nil {
		actor = p.EmployeeID
	}
	attrs := []any{
		"action", cmd,
		"operator_id", actor,
		"request_id", requestcontext.RequestID(ctx),
		"code", dErrors.CodeOf(err),
		"error", err,
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodeUnavailable, dErrors.CodeTimeout:
		h.logger.ErrorContext(ctx, "request failed", attrs...)
	default:
		h.logger.DebugContext(ctx, "request rejected", attrs...)
	}
}
