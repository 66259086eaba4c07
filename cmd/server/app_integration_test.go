//go:build integration

package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo/internal/platform/config"
	"zoo/internal/platform/logger"
	"zoo/pkg/testutil/containers"
)

func TestNewAppClosesPoolWhenMongoIsDown(t *testing.T) {
	pg := containers.GetManager().GetPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sep := "?"
	if strings.Contains(pg.DSN, "?") {
		sep = "&"
	}
	cfg := &config.Config{
		Postgres: config.PostgresConfig{DSN: pg.DSN + sep + "application_name=zoo-startup-test"},
		Mongo: config.MongoConfig{
			URI:      "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500",
			Database: "zoo",
		},
	}

	a, err := newApp(ctx, cfg, logger.NewWithWriter(config.LogConfig{}, io.Discard))
	require.Error(t, err)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "mongodb ping failed")

	assert.Eventually(t, func() bool {
		var n int
		row := pg.Pool.QueryRow(ctx, `SELECT count(*) FROM pg_stat_activity WHERE application_name = 'zoo-startup-test'`)
		return row.Scan(&n) == nil && n == 0
	}, 5*time.Second, 100*time.Millisecond)
}
