package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo/internal/anomaly"
	"zoo/internal/platform/config"
)

type countingScanner struct {
	calls atomic.Int32
	err   error
}

func (c *countingScanner) BatchScan(context.Context) (*anomaly.BatchReport, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &anomaly.BatchReport{Scanned: 3}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_RejectsInvalidSchedule(t *testing.T) {
	_, err := New(&countingScanner{}, config.AnomalyConfig{BatchSchedule: "every tuesday"}, WithLogger(quietLogger()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every tuesday")
}

func TestScanOnce(t *testing.T) {
	scanner := &countingScanner{}
	s, err := New(scanner, config.AnomalyConfig{}, WithLogger(quietLogger()))
	require.NoError(t, err)

	report, err := s.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.EqualValues(t, 1, scanner.calls.Load())
}

func TestRun_FiresScheduledScanAndStops(t *testing.T) {
	scanner := &countingScanner{err: errors.New("primary store unavailable")}
	s, err := New(scanner, config.AnomalyConfig{BatchSchedule: "@every 1s", BatchTimeout: time.Second}, WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return scanner.calls.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestRun_EmptyScheduleRegistersNothing(t *testing.T) {
	scanner := &countingScanner{}
	s, err := New(scanner, config.AnomalyConfig{}, WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Empty(t, s.cron.Entries())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))
	assert.Zero(t, scanner.calls.Load())
}
