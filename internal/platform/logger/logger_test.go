package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo/internal/platform/config"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json format emits structured records", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
		log.Info("feeding committed", "animal_id", "A1")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "feeding committed", rec["msg"])
		assert.Equal(t, "A1", rec["animal_id"])
		assert.Equal(t, "zoo-ledger", rec["service"])
	})

	t.Run("level filters lower records", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(config.LogConfig{Level: "warn"}, &buf)
		log.Info("hidden")
		assert.Empty(t, buf.String())
		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})
}
