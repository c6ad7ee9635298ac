package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/whiteelite/solana-gateway/api/routes"
	"github.com/whiteelite/solana-gateway/internal/events"
	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/solana-gateway/internal/keypairs"
	"github.com/whiteelite/solana-gateway/internal/messages"
	"github.com/whiteelite/solana-gateway/internal/tokens"
	"github.com/whiteelite/solana-gateway/internal/transfers"
	"github.com/whiteelite/solana-gateway/pkg/config"
	"github.com/whiteelite/solana-gateway/pkg/logger"
	"github.com/whiteelite/solana-gateway/pkg/metrics"
)

const serviceName = "solana-gateway"

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	instructionMetrics := metrics.NewInstructionMetrics(reg)

	var publisher events.Publisher = events.Noop{}
	if cfg.Kafka.Enabled() {
		params := repository.KafkaMessageQueueParams{
			Brokers:          cfg.Kafka.Brokers,
			Topic:            cfg.Kafka.AuditTopic,
			ToProduceBufSize: cfg.Kafka.BufferSize,
			OnError: func(err error) {
				logg.Error(ctx, "audit.kafka.error", err)
			},
		}
		requireResource(ctx, logg, "kafka params", repository.ValidateKafkaParams(params))

		queue := repository.InitializeKafkaMessageQueue(params)
		defer queue.Close()
		publisher = events.NewQueuePublisher(queue, logg)
	}

	client := sdk.NewClient()

	keypairService, err := keypairs.NewService(keypairs.ServiceParams{
		Creator:   client,
		Publisher: publisher,
		Metrics:   instructionMetrics,
	})
	requireResource(ctx, logg, "keypair service", err)

	tokenService, err := tokens.NewService(tokens.ServiceParams{
		Builder:   client,
		Publisher: publisher,
		Metrics:   instructionMetrics,
	})
	requireResource(ctx, logg, "token service", err)

	messageService, err := messages.NewService(messages.ServiceParams{
		Signer:    client,
		Publisher: publisher,
		Metrics:   instructionMetrics,
	})
	requireResource(ctx, logg, "message service", err)

	transferService, err := transfers.NewService(transfers.ServiceParams{
		Builder:   client,
		Publisher: publisher,
		Metrics:   instructionMetrics,
	})
	requireResource(ctx, logg, "transfer service", err)

	router := routes.NewRouter(cfg, logg, routes.Services{
		Keypairs:  keypairService,
		Tokens:    tokenService,
		Messages:  messageService,
		Transfers: transferService,
	}, routes.Observability{
		HTTPMetrics:    metrics.NewHTTPMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = logg.WithFields(runCtx, map[string]any{
		"env":   cfg.App.Env,
		"addr":  addr,
		"kafka": cfg.Kafka.Enabled(),
	})

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(runCtx, "starting api server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(runCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(runCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(runCtx, "graceful shutdown failed", err)
		}
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
