package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SOLGW"

	EnvAppEnv          = "SOLGW_APP_ENV"
	EnvPort            = "SOLGW_APP_PORT"
	EnvLogLevel        = "SOLGW_LOG_LEVEL"
	EnvLogFormat       = "SOLGW_LOG_FORMAT"
	EnvCORSOrigins     = "SOLGW_CORS_ALLOWED_ORIGINS"
	EnvMetricsEnabled  = "SOLGW_METRICS_ENABLED"
	EnvKafkaBrokers    = "SOLGW_KAFKA_BROKERS"
	EnvKafkaAuditTopic = "SOLGW_KAFKA_AUDIT_TOPIC"
	EnvKafkaGroupID    = "SOLGW_KAFKA_GROUP_ID"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
	Kafka   KafkaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Kafka.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SOLGW_APP_ENV" required:"true"`
	Port         string `envconfig:"SOLGW_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SOLGW_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"SOLGW_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"SOLGW_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	ReadTimeout        time.Duration `envconfig:"SOLGW_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout       time.Duration `envconfig:"SOLGW_HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout        time.Duration `envconfig:"SOLGW_HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout    time.Duration `envconfig:"SOLGW_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	MaxBodyBytes       int64         `envconfig:"SOLGW_HTTP_MAX_BODY_BYTES" default:"65536"`
	CORSAllowedOrigins []string      `envconfig:"SOLGW_CORS_ALLOWED_ORIGINS" default:"*"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SOLGW_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SOLGW_METRICS_PATH" default:"/metrics"`
}

// KafkaConfig controls the audit event stream. Empty Brokers disables it.
type KafkaConfig struct {
	Brokers    []string `envconfig:"SOLGW_KAFKA_BROKERS"`
	AuditTopic string   `envconfig:"SOLGW_KAFKA_AUDIT_TOPIC" default:"solana-gateway.audit"`
	GroupID    string   `envconfig:"SOLGW_KAFKA_GROUP_ID" default:"solana-gateway-audit-tail"`
	BufferSize int      `envconfig:"SOLGW_KAFKA_BUFFER_SIZE" default:"1024"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func (k KafkaConfig) validate() error {
	if !k.Enabled() {
		return nil
	}
	if strings.TrimSpace(k.AuditTopic) == "" {
		return fmt.Errorf("%s is required when %s is set", EnvKafkaAuditTopic, EnvKafkaBrokers)
	}
	if k.BufferSize <= 0 {
		return fmt.Errorf("kafka buffer size must be positive, got %d", k.BufferSize)
	}
	return nil
}
