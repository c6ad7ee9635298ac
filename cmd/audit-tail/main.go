package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/solana-gateway/pkg/config"
	"github.com/whiteelite/solana-gateway/pkg/logger"
)

const serviceName = "audit-tail"

// audit-tail follows the audit topic and logs every instruction build event.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: serviceName})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	if !cfg.Kafka.Enabled() {
		requireResource(ctx, logg, "kafka", errors.New(config.EnvKafkaBrokers+" is not set"))
	}
	if cfg.Kafka.GroupID == "" {
		requireResource(ctx, logg, "kafka", errors.New(config.EnvKafkaGroupID+" is not set"))
	}

	params := repository.KafkaMessageQueueParams{
		Brokers:          cfg.Kafka.Brokers,
		Topic:            cfg.Kafka.AuditTopic,
		GroupID:          cfg.Kafka.GroupID,
		ToConsumeBufSize: cfg.Kafka.BufferSize,
		OnError: func(err error) {
			logg.Error(ctx, "audit.kafka.error", err)
		},
	}
	requireResource(ctx, logg, "kafka params", repository.ValidateKafkaParams(params))

	queue := repository.InitializeKafkaMessageQueue(params)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = logg.WithFields(runCtx, map[string]any{
		"env":   cfg.App.Env,
		"topic": cfg.Kafka.AuditTopic,
		"group": cfg.Kafka.GroupID,
	})
	logg.Info(runCtx, "audit tail ready")

	go func() {
		<-runCtx.Done()
		logg.Info(runCtx, "stopping audit tail")
		queue.Close()
	}()

	for entity := range queue.ToConsumeBuffered() {
		fields, ok := entity.(map[string]any)
		if !ok {
			logg.Warn(logg.WithField(runCtx, "type", fmt.Sprintf("%T", entity)), "audit.event.unexpected")
			continue
		}
		logg.Info(logg.WithFields(runCtx, fields), "audit.event")
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
