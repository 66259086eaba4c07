// Package scheduler runs the periodic batch anomaly scan.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"zoo/internal/anomaly"
	"zoo/internal/platform/config"
)

// BatchScanner scans every animal for anomalies.
type BatchScanner interface {
	BatchScan(ctx context.Context) (*anomaly.BatchReport, error)
}

// Scheduler owns the cron instance for background jobs.
type Scheduler struct {
	cron    *cron.Cron
	scanner BatchScanner
	cfg     config.AnomalyConfig
	logger  *slog.Logger
}

type Option func(*Scheduler)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// New registers the batch scan on cfg.BatchSchedule. An empty schedule
// registers nothing.
func New(scanner BatchScanner, cfg config.AnomalyConfig, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		scanner: scanner,
		cfg:     cfg,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	cl := cronLogger{s.logger}
	s.cron = cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if cfg.BatchSchedule != "" {
		if _, err := s.cron.AddFunc(cfg.BatchSchedule, s.runBatchScan); err != nil {
			return nil, fmt.Errorf("schedule batch scan %q: %w", cfg.BatchSchedule, err)
		}
	}
	return s, nil
}

// Run starts the jobs and blocks until ctx is cancelled, then waits for a
// running job to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting scheduler", "batch_schedule", s.cfg.BatchSchedule)
	s.cron.Start()
	<-ctx.Done()
	s.logger.InfoContext(ctx, "stopping scheduler")
	<-s.cron.Stop().Done()
	return nil
}

func (s *Scheduler) runBatchScan() {
	timeout := s.cfg.BatchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	report, err := s.ScanOnce(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled batch scan failed", "error", err)
		return
	}
	s.logger.InfoContext(ctx, "scheduled batch scan finished",
		"scanned", report.Scanned,
		"anomalies", len(report.Anomalies),
		"failures", len(report.Failures),
		"duration", report.Duration,
	)
}

// ScanOnce runs the batch scan immediately.
func (s *Scheduler) ScanOnce(ctx context.Context) (*anomaly.BatchReport, error) {
	return s.scanner.BatchScan(ctx)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug("cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
