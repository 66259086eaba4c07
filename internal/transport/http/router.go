// Package httptransport is the read-only ops surface: probes, metrics and
// admin reports.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"zoo/internal/anomaly"
	"zoo/internal/correction"
	"zoo/internal/ledger"
	"zoo/pkg/platform/httputil"
	"zoo/pkg/platform/middleware/admin"
	"zoo/pkg/platform/middleware/metadata"
	"zoo/pkg/platform/middleware/request"
)

// Reports are the read models exposed under /reports.
type Reports interface {
	CarelessEmployees(ctx context.Context) ([]correction.CarelessEntry, error)
	HighRiskAnimals(ctx context.Context) ([]anomaly.RiskEntry, error)
	StockReport(ctx context.Context) ([]ledger.StockLevel, error)
}

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Config struct {
	Reports       Reports
	Authenticator admin.Authenticator
	Checks        map[string]HealthCheck
	Metrics       http.Handler
	Logger        *slog.Logger
	ReadyTimeout  time.Duration
}

type handler struct {
	reports      Reports
	checks       map[string]HealthCheck
	logger       *slog.Logger
	readyTimeout time.Duration
}

// NewRouter wires the ops endpoints.
func NewRouter(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = 2 * time.Second
	}
	h := &handler{
		reports:      cfg.Reports,
		checks:       cfg.Checks,
		logger:       cfg.Logger,
		readyTimeout: cfg.ReadyTimeout,
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.Time)
	r.Use(metadata.ClientAddr)
	r.Use(request.Logger(cfg.Logger))

	r.Get("/healthz", h.handleHealthz)
	r.Get("/readyz", h.handleReadyz)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/reports", func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))
		r.Use(admin.RequireAdminSession(cfg.Authenticator, cfg.Logger))
		r.Get("/careless", h.handleCareless)
		r.Get("/high-risk", h.handleHighRisk)
		r.Get("/inventory", h.handleInventory)
	})
	return r
}

func (h *handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (h *handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]string, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		check := h.checks[name]
		g.Go(func() error {
			if err := check(gctx); err != nil {
				h.logger.WarnContext(ctx, "readiness check failed", "dependency", name, "error", err)
				results[i] = "unavailable"
				return nil
			}
			results[i] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	body := readiness{Status: "ok", Checks: make(map[string]string, len(names))}
	status := http.StatusOK
	for i, name := range names {
		body.Checks[name] = results[i]
		if results[i] != "ok" {
			body.Status = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}
	httputil.WriteJSON(w, status, body)
}

func (h *handler) handleCareless(w http.ResponseWriter, r *http.Request) {
	entries, err := h.reports.CarelessEmployees(r.Context())
	if err != nil {
		h.fail(w, r, "careless report failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"employees": entries})
}

func (h *handler) handleHighRisk(w http.ResponseWriter, r *http.Request) {
	entries, err := h.reports.HighRiskAnimals(r.Context())
	if err != nil {
		h.fail(w, r, "high-risk report failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"animals": entries})
}

func (h *handler) handleInventory(w http.ResponseWriter, r *http.Request) {
	levels, err := h.reports.StockReport(r.Context())
	if err != nil {
		h.fail(w, r, "inventory report failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"feed_items": levels})
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.ErrorContext(ctx, msg,
		"path", r.URL.Path,
		"error", err,
	)
	httputil.WriteError(w, err)
}
