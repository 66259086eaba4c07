package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"zoo/internal/eventlog"
	"zoo/pkg/platform/circuit"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
}

func (p *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	var out kgo.ProduceResults
	for _, r := range rs {
		p.records = append(p.records, r)
		out = append(out, kgo.ProduceResult{Record: r, Err: p.err})
	}
	return out
}

func TestKafkaNotifierPublishesKeyedRecord(t *testing.T) {
	producer := &fakeProducer{}
	n := NewKafka(producer, "zoo.health-alerts")

	alert := &eventlog.HealthAlert{
		ID:       "al-1",
		AnimalID: "A1",
		Kind:     eventlog.AlertWeightAnomaly,
		Level:    eventlog.LevelHigh,
		Status:   eventlog.AlertPending,
	}
	require.NoError(t, n.AlertRaised(context.Background(), alert))

	require.Len(t, producer.records, 1)
	rec := producer.records[0]
	assert.Equal(t, "zoo.health-alerts", rec.Topic)
	assert.Equal(t, []byte("A1"), rec.Key)

	var msg struct {
		Type  string               `json:"type"`
		Alert eventlog.HealthAlert `json:"alert"`
	}
	require.NoError(t, json.Unmarshal(rec.Value, &msg))
	assert.Equal(t, "health_alert.raised", msg.Type)
	assert.Equal(t, "al-1", msg.Alert.ID)
}

func TestKafkaNotifierOpensCircuitOnRepeatedFailure(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker unreachable")}
	n := NewKafka(producer, "alerts", WithBreaker(circuit.New("test", circuit.WithFailureThreshold(2))))
	alert := &eventlog.HealthAlert{AnimalID: "A1"}

	assert.Error(t, n.AlertRaised(context.Background(), alert))
	assert.Error(t, n.AlertRaised(context.Background(), alert))
	assert.ErrorIs(t, n.AlertRaised(context.Background(), alert), ErrCircuitOpen)
	assert.Len(t, producer.records, 2)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.AlertRaised(context.Background(), &eventlog.HealthAlert{}))
}
