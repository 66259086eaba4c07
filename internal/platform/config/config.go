package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config is the full runtime configuration of the zoo ledger server.
type Config struct {
	Environment string
	Server      Server
	Postgres    PostgresConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Auth        AuthConfig
	Ledger      LedgerConfig
	Anomaly     AnomalyConfig
	Log         LogConfig
}

// Server captures listener level configuration.
type Server struct {
	LineAddr        string
	OpsAddr         string
	ReadTimeout     time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// PostgresConfig configures the primary transactional store.
type PostgresConfig struct {
	DSN       string
	MaxConns  int32
	TxTimeout time.Duration
}

// MongoConfig configures the secondary event store. An empty URI selects the
// in-memory event log.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// RedisConfig configures the session revocation list. An empty URL selects
// the in-memory list.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures alert fan-out. No brokers disables it.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AuthConfig configures session tokens.
type AuthConfig struct {
	JWTSigningKey string
	Issuer        string
	TokenTTL      time.Duration
}

// LedgerConfig holds ledger policy settings.
type LedgerConfig struct {
	// SuperActorID bypasses the permission gate.
	SuperActorID string
}

// AnomalyConfig configures the scheduled batch scan.
type AnomalyConfig struct {
	// BatchSchedule is a standard 5-field cron spec; empty disables the job.
	BatchSchedule string
	BatchTimeout  time.Duration
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  string
	Format string
}

const devSigningKey = "dev-secret-key-change-in-production"

// Load reads an optional .env file and then builds the configuration from
// environment variables. A missing .env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (*Config, error) {
	var errs []error
	dur := func(key string, def time.Duration) time.Duration {
		d, err := durationEnv(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}
	num := func(key string, def int) int {
		n, err := intEnv(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return n
	}

	cfg := &Config{
		Environment: getenvWithDefault("ZOO_ENV", "dev"),
		Server: Server{
			LineAddr:        getenvWithDefault("ZOO_LINE_ADDR", ":9000"),
			OpsAddr:         getenvWithDefault("ZOO_OPS_ADDR", ":8080"),
			ReadTimeout:     dur("ZOO_READ_TIMEOUT", 5*time.Minute),
			IdleTimeout:     dur("ZOO_IDLE_TIMEOUT", 30*time.Minute),
			ShutdownTimeout: dur("ZOO_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			DSN:       os.Getenv("DATABASE_URL"),
			MaxConns:  int32(num("DATABASE_MAX_CONNS", 10)),
			TxTimeout: dur("DATABASE_TX_TIMEOUT", 5*time.Second),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGO_URI"),
			Database: getenvWithDefault("MONGO_DATABASE", "zoo_events"),
			Timeout:  dur("MONGO_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     num("REDIS_POOL_SIZE", 10),
			MinIdleConns: num("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  dur("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  dur("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: dur("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getenvWithDefault("KAFKA_ALERT_TOPIC", "zoo.health-alerts"),
		},
		Auth: AuthConfig{
			JWTSigningKey: getenvWithDefault("JWT_SIGNING_KEY", devSigningKey),
			Issuer:        getenvWithDefault("JWT_ISSUER", "zoo-ledger"),
			TokenTTL:      dur("SESSION_TTL", 12*time.Hour),
		},
		Ledger: LedgerConfig{
			SuperActorID: getenvWithDefault("ZOO_SUPER_ACTOR", "E001"),
		},
		Anomaly: AnomalyConfig{
			BatchSchedule: getenvWithDefault("ANOMALY_BATCH_SCHEDULE", "0 2 * * *"),
			BatchTimeout:  dur("ANOMALY_BATCH_TIMEOUT", 10*time.Minute),
		},
		Log: LogConfig{
			Level:  getenvWithDefault("LOG_LEVEL", "info"),
			Format: getenvWithDefault("LOG_FORMAT", "text"),
		},
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// Validate ensures mandatory settings are present and well formed.
func (c *Config) Validate() error {
	var missing []string
	if c.Postgres.DSN == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.Ledger.SuperActorID == "" {
		missing = append(missing, "ZOO_SUPER_ACTOR")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Environment != "dev" && c.Auth.JWTSigningKey == devSigningKey {
		return errors.New("JWT_SIGNING_KEY must be set outside dev")
	}
	if c.Postgres.MaxConns <= 0 {
		return errors.New("DATABASE_MAX_CONNS must be positive")
	}
	if c.Anomaly.BatchSchedule != "" {
		if _, err := cron.ParseStandard(c.Anomaly.BatchSchedule); err != nil {
			return fmt.Errorf("invalid ANOMALY_BATCH_SCHEDULE: %w", err)
		}
	}
	return nil
}

func getenvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
