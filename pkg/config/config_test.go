package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to be dev, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if got := cfg.HTTP.ShutdownTimeout; got != 15*time.Second {
		t.Fatalf("expected shutdown timeout 15s, got %v", got)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
	if cfg.Kafka.Enabled() {
		t.Fatalf("kafka should be disabled without brokers")
	}
}

func TestLoad_KafkaBrokersAreSplit(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvKafkaBrokers, "kafka-1:9092,kafka-2:9092")
	t.Setenv(EnvKafkaAuditTopic, "audit")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.AuditTopic != "audit" {
		t.Fatalf("unexpected topic %q", cfg.Kafka.AuditTopic)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_KafkaRequiresTopic(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvKafkaBrokers, "kafka-1:9092")
	t.Setenv(EnvKafkaAuditTopic, " ")

	if _, err := Load(); err == nil {
		t.Fatal("expected blank audit topic to be rejected")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() || prodConfig.IsDev() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "dev")
}
