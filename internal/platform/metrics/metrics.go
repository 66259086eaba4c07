package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the zoo ledger.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	FeedingOutcomes     *prometheus.CounterVec
	FeedingTxDuration   prometheus.Histogram
	StockEntries        *prometheus.CounterVec
	AlertsRaised        *prometheus.CounterVec
	AnomalyChecks       *prometheus.CounterVec
	BatchScanDuration   prometheus.Histogram
	Corrections         *prometheus.CounterVec
	SecondaryFailures   *prometheus.CounterVec
	LineRequests        *prometheus.CounterVec
	LineRequestDuration *prometheus.HistogramVec
	LineConnections     prometheus.Gauge
	RevocationCheck     prometheus.Histogram
}

// New creates and registers all metrics with reg. Passing a fresh
// prometheus.NewRegistry() keeps tests independent of the global registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	latency := []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
	return &Metrics{
		FeedingOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_feedings_total",
			Help: "Feeding transactions by outcome",
		}, []string{"outcome"}), // outcome: committed, insufficient_stock, forbidden, invalid, error
		FeedingTxDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "zoo_feeding_tx_duration_seconds",
			Help:    "Duration of the feeding transaction including lock waits",
			Buckets: latency,
		}),
		StockEntries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_inventory_entries_total",
			Help: "Inventory ledger entries appended by reason",
		}, []string{"reason"}),
		AlertsRaised: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_alerts_raised_total",
			Help: "Health alerts raised by kind and level",
		}, []string{"kind", "level"}),
		AnomalyChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_anomaly_checks_total",
			Help: "Anomaly checks by kind and verdict",
		}, []string{"kind", "verdict"}),
		BatchScanDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "zoo_anomaly_batch_duration_seconds",
			Help:    "Duration of batch anomaly scans",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}),
		Corrections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_corrections_total",
			Help: "Committed record corrections by table",
		}, []string{"table"}),
		SecondaryFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_secondary_store_failures_total",
			Help: "Swallowed secondary event store failures by operation",
		}, []string{"operation"}),
		LineRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_line_requests_total",
			Help: "Line protocol requests by command and outcome",
		}, []string{"command", "outcome"}),
		LineRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zoo_line_request_duration_seconds",
			Help:    "Line protocol request latency by command",
			Buckets: latency,
		}, []string{"command"}),
		LineConnections: f.NewGauge(prometheus.GaugeOpts{
			Name: "zoo_line_connections",
			Help: "Open line protocol connections",
		}),
		RevocationCheck: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "zoo_session_revocation_check_duration_ms",
			Help:    "Latency of session revocation checks in milliseconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}),
	}
}

// IncrementFeeding records a feeding transaction outcome.
func (m *Metrics) IncrementFeeding(outcome string) {
	if m != nil {
		m.FeedingOutcomes.WithLabelValues(outcome).Inc()
	}
}

// ObserveFeedingTx records the duration of a feeding transaction.
func (m *Metrics) ObserveFeedingTx(start time.Time) {
	if m != nil {
		m.FeedingTxDuration.Observe(time.Since(start).Seconds())
	}
}

// IncrementStockEntry records an appended inventory entry.
func (m *Metrics) IncrementStockEntry(reason string) {
	if m != nil {
		m.StockEntries.WithLabelValues(reason).Inc()
	}
}

// IncrementAlert records a raised health alert.
func (m *Metrics) IncrementAlert(kind, level string) {
	if m != nil {
		m.AlertsRaised.WithLabelValues(kind, level).Inc()
	}
}

// IncrementAnomalyCheck records the verdict of a single anomaly check.
func (m *Metrics) IncrementAnomalyCheck(kind, verdict string) {
	if m != nil {
		m.AnomalyChecks.WithLabelValues(kind, verdict).Inc()
	}
}

// ObserveBatchScan records the duration of a batch scan.
func (m *Metrics) ObserveBatchScan(d time.Duration) {
	if m != nil {
		m.BatchScanDuration.Observe(d.Seconds())
	}
}

// IncrementCorrection records a committed correction.
func (m *Metrics) IncrementCorrection(table string) {
	if m != nil {
		m.Corrections.WithLabelValues(table).Inc()
	}
}

// IncrementSecondaryFailure records a swallowed secondary store failure.
func (m *Metrics) IncrementSecondaryFailure(operation string) {
	if m != nil {
		m.SecondaryFailures.WithLabelValues(operation).Inc()
	}
}

// ObserveLineRequest records a served line protocol request.
func (m *Metrics) ObserveLineRequest(command, outcome string, d time.Duration) {
	if m != nil {
		m.LineRequests.WithLabelValues(command, outcome).Inc()
		m.LineRequestDuration.WithLabelValues(command).Observe(d.Seconds())
	}
}

// ConnectionOpened increments the open connection gauge.
func (m *Metrics) ConnectionOpened() {
	if m != nil {
		m.LineConnections.Inc()
	}
}

// ConnectionClosed decrements the open connection gauge.
func (m *Metrics) ConnectionClosed() {
	if m != nil {
		m.LineConnections.Dec()
	}
}

// ObserveRevocationCheck records a session revocation lookup.
func (m *Metrics) ObserveRevocationCheck(start time.Time) {
	if m != nil {
		m.RevocationCheck.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}
}
