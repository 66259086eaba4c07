// Package notify publishes raised health alerts to other systems.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"zoo/internal/eventlog"
	"zoo/pkg/platform/circuit"
)

// ErrCircuitOpen is returned while the broker is considered unhealthy.
var ErrCircuitOpen = errors.New("alert publisher circuit open")

// Producer is the part of *kgo.Client the publisher uses.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// KafkaNotifier publishes each alert as a JSON record keyed by animal id, so
// alerts of one animal stay ordered within a partition.
type KafkaNotifier struct {
	producer Producer
	topic    string
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

type Option func(*KafkaNotifier)

func WithLogger(logger *slog.Logger) Option {
	return func(n *KafkaNotifier) {
		n.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(n *KafkaNotifier) {
		n.breaker = b
	}
}

func NewKafka(producer Producer, topic string, opts ...Option) *KafkaNotifier {
	n := &KafkaNotifier{
		producer: producer,
		topic:    topic,
		breaker:  circuit.New("kafka-alerts"),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type alertMessage struct {
	Type  string                `json:"type"`
	Alert *eventlog.HealthAlert `json:"alert"`
}

func (n *KafkaNotifier) AlertRaised(ctx context.Context, alert *eventlog.HealthAlert) error {
	if !n.breaker.Allow() {
		return ErrCircuitOpen
	}
	value, err := json.Marshal(alertMessage{Type: "health_alert.raised", Alert: alert})
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}
	record := &kgo.Record{
		Topic: n.topic,
		Key:   []byte(alert.AnimalID),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "alert_type", Value: []byte(alert.Kind)},
			{Key: "level", Value: []byte(alert.Level)},
		},
	}

	if err := n.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		if _, change := n.breaker.RecordFailure(); change.Opened {
			n.logger.WarnContext(ctx, "alert publisher circuit opened", "topic", n.topic)
		}
		return fmt.Errorf("produce alert: %w", err)
	}
	if _, change := n.breaker.RecordSuccess(); change.Closed {
		n.logger.InfoContext(ctx, "alert publisher circuit closed", "topic", n.topic)
	}
	return nil
}

// Noop discards alerts. It is used when no broker is configured.
type Noop struct{}

func (Noop) AlertRaised(context.Context, *eventlog.HealthAlert) error { return nil }
