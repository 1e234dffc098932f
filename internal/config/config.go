package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	ServiceName string
	Port        int
	LogLevel    string
	LogFormat   string
	JWTSecret   string

	Database  DatabaseConfig
	Workflow  WorkflowConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Audit     AuditConfig
	Telemetry TelemetryConfig
}

type DatabaseConfig struct {
	Driver     string // postgres | sqlite
	URL        string
	SQLitePath string
}

type WorkflowConfig struct {
	DiagnosisFee          decimal.Decimal
	RequireQualityControl bool
	AutoStartDiagnostics  bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type AuditConfig struct {
	Backend   string // dynamodb | log
	TableName string
}

type TelemetryConfig struct {
	Enabled  bool
	Endpoint string
	Version  string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	fee, err := decimal.NewFromString(getEnv("DIAGNOSIS_FEE", "0.00"))
	if err != nil || fee.IsNegative() {
		return nil, fmt.Errorf("invalid DIAGNOSIS_FEE %q", os.Getenv("DIAGNOSIS_FEE"))
	}

	db, err := LoadDatabase()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "service-station"),
		Port:        getEnvInt("PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Database:    db,
		Workflow: WorkflowConfig{
			DiagnosisFee:          fee.Round(2),
			RequireQualityControl: getEnvBool("WORKFLOW_REQUIRE_QC", false),
			AutoStartDiagnostics:  getEnvBool("WORKFLOW_AUTO_START_DIAGNOSTICS", true),
		},
		Redis: LoadRedis(),
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_TOPIC", "order.status_changed"),
		},
		Audit: AuditConfig{
			Backend:   getEnv("AUDIT_BACKEND", "dynamodb"),
			TableName: getEnv("AUDIT_TABLE", "order_audit"),
		},
		Telemetry: TelemetryConfig{
			Enabled:  getEnvBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Version:  getEnv("SERVICE_VERSION", "1.0.0"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// LoadDatabase reads only the relational store settings. The migrate and
// seed commands use it so they run without the API secrets.
func LoadDatabase() (DatabaseConfig, error) {
	cfg := DatabaseConfig{
		Driver:     getEnv("DB_DRIVER", "postgres"),
		URL:        os.Getenv("DATABASE_URL"),
		SQLitePath: getEnv("SQLITE_PATH", "service_station.db"),
	}
	switch cfg.Driver {
	case "postgres":
		if cfg.URL == "" {
			return cfg, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	case "sqlite":
	default:
		return cfg, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	return cfg, nil
}

func LoadRedis() RedisConfig {
	return RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
		TTL:      getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
