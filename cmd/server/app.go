package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/twmb/franz-go/pkg/kgo"

	"zoo/internal/anomaly"
	"zoo/internal/anomaly/notify"
	anomalystore "zoo/internal/anomaly/store"
	"zoo/internal/auth"
	"zoo/internal/auth/revocation"
	authstore "zoo/internal/auth/store"
	"zoo/internal/correction"
	correctionstore "zoo/internal/correction/store"
	"zoo/internal/eventlog"
	eventmemory "zoo/internal/eventlog/store/memory"
	eventmongo "zoo/internal/eventlog/store/mongo"
	"zoo/internal/ledger"
	ledgerstore "zoo/internal/ledger/store"
	"zoo/internal/observation"
	observationstore "zoo/internal/observation/store"
	"zoo/internal/permission"
	permissionstore "zoo/internal/permission/store"
	"zoo/internal/platform/config"
	"zoo/internal/platform/kafka"
	"zoo/internal/platform/logger"
	"zoo/internal/platform/metrics"
	"zoo/internal/platform/mongo"
	"zoo/internal/platform/postgres"
	"zoo/internal/platform/redis"
	"zoo/internal/schedule"
	schedulestore "zoo/internal/schedule/store"
	httptransport "zoo/internal/transport/http"
	id "zoo/pkg/domain"
	"zoo/pkg/platform/circuit"
)

const (
	alertTopicPartitions  = 3
	alertTopicReplication = 1
)

// app holds the wired infrastructure and services for one process.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	pool  *pgxpool.Pool
	mongo *mongo.Client
	redis *redis.Client
	kafka *kgo.Client

	events       eventlog.Store
	gate         *permission.Gate
	ledger       *ledger.Service
	observations *observation.Service
	anomalies    *anomaly.Service
	corrections  *correction.Service
	auth         *auth.Service
	shifts       *schedule.Service
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg.Log)
	slog.SetDefault(log)
	return cfg, log, nil
}

// newApp wires every dependency. On any error the resources opened so far
// are closed before returning.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: log, registry: prometheus.NewRegistry()}
	if err := a.wire(ctx); err != nil {
		a.close(context.WithoutCancel(ctx))
		return nil, err
	}
	return a, nil
}

func (a *app) wire(ctx context.Context) error {
	cfg, log := a.cfg, a.logger
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(a.registry)

	var err error
	if a.pool, err = postgres.Open(ctx, cfg.Postgres); err != nil {
		return err
	}
	runner := postgres.NewRunner(a.pool, cfg.Postgres.TxTimeout)

	if a.events, err = a.openEventLog(ctx); err != nil {
		return err
	}
	revoked, err := a.openRevocationList(ctx)
	if err != nil {
		return err
	}
	notifier, err := a.openNotifier(ctx)
	if err != nil {
		return err
	}

	if a.gate, err = permission.New(permissionstore.NewPostgres(a.pool),
		permission.WithSuperActor(id.EmployeeID(cfg.Ledger.SuperActorID)),
		permission.WithLogger(log),
	); err != nil {
		return err
	}
	if a.anomalies, err = anomaly.New(anomalystore.NewPostgres(a.pool), a.events,
		anomaly.WithLogger(log),
		anomaly.WithMetrics(a.metrics),
		anomaly.WithNotifier(notifier),
	); err != nil {
		return err
	}
	if a.ledger, err = ledger.New(ledgerstore.NewPostgres(runner), a.gate,
		ledger.WithLogger(log),
		ledger.WithMetrics(a.metrics),
		ledger.WithFeedingChecker(a.anomalies),
	); err != nil {
		return err
	}
	if a.observations, err = observation.New(observationstore.NewPostgres(runner), a.gate,
		observation.WithLogger(log),
		observation.WithWeightChecker(a.anomalies),
	); err != nil {
		return err
	}
	if a.corrections, err = correction.New(correctionstore.NewPostgres(runner), a.events,
		correction.WithLogger(log),
		correction.WithMetrics(a.metrics),
	); err != nil {
		return err
	}
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer)
	if a.auth, err = auth.New(authstore.NewPostgres(a.pool), revoked, a.events, tokens,
		auth.WithLogger(log),
		auth.WithMetrics(a.metrics),
		auth.WithTokenTTL(cfg.Auth.TokenTTL),
	); err != nil {
		return err
	}
	if a.shifts, err = schedule.New(schedulestore.NewPostgres(runner), a.gate,
		schedule.WithLogger(log),
	); err != nil {
		return err
	}
	return nil
}

func (a *app) openEventLog(ctx context.Context) (eventlog.Store, error) {
	if a.cfg.Mongo.URI == "" {
		a.logger.WarnContext(ctx, "MONGO_URI not set; using in-memory event log")
		return eventmemory.NewInMemoryStore(), nil
	}
	client, err := mongo.New(ctx, a.cfg.Mongo)
	if err != nil {
		return nil, err
	}
	a.mongo = client
	store := eventmongo.New(client.Database())
	if err := store.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure event log indexes: %w", err)
	}
	return store, nil
}

func (a *app) openRevocationList(ctx context.Context) (auth.RevocationList, error) {
	if a.cfg.Redis.URL == "" {
		a.logger.WarnContext(ctx, "REDIS_URL not set; using in-memory session revocation list")
		return revocation.NewInMemoryTRL(), nil
	}
	client, err := redis.New(ctx, a.cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.redis = client
	return revocation.NewRedisTRL(client.Client), nil
}

func (a *app) openNotifier(ctx context.Context) (anomaly.Notifier, error) {
	client, err := kafka.NewProducer(ctx, a.cfg.Kafka)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return notify.Noop{}, nil
	}
	a.kafka = client
	if err := kafka.EnsureTopic(ctx, client, a.cfg.Kafka.Topic, alertTopicPartitions, alertTopicReplication); err != nil {
		return nil, err
	}
	return notify.NewKafka(client, a.cfg.Kafka.Topic,
		notify.WithLogger(a.logger),
		notify.WithBreaker(circuit.New("kafka-alerts", circuit.WithCooldown(30*time.Second))),
	), nil
}

// healthChecks lists the dependencies /readyz pings.
func (a *app) healthChecks() map[string]httptransport.HealthCheck {
	checks := map[string]httptransport.HealthCheck{
		"postgres": a.pool.Ping,
	}
	if a.mongo != nil {
		checks["mongo"] = a.mongo.Health
	}
	if a.redis != nil {
		checks["redis"] = a.redis.Health
	}
	return checks
}

func (a *app) close(ctx context.Context) {
	var errs []error
	if a.kafka != nil {
		a.kafka.Close()
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.mongo != nil {
		errs = append(errs, a.mongo.Close(ctx))
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if err := errors.Join(errs...); err != nil {
		a.logger.WarnContext(ctx, "error closing resources", "error", err)
	}
}

// reports joins the report read models served on the ops router.
type reports struct {
	ledger      *ledger.Service
	anomalies   *anomaly.Service
	corrections *correction.Service
}

func (r reports) CarelessEmployees(ctx context.Context) ([]correction.CarelessEntry, error) {
	return r.corrections.CarelessEmployees(ctx)
}

func (r reports) HighRiskAnimals(ctx context.Context) ([]anomaly.RiskEntry, error) {
	return r.anomalies.HighRiskAnimals(ctx)
}

func (r reports) StockReport(ctx context.Context) ([]ledger.StockLevel, error) {
	return r.ledger.StockReport(ctx)
}
