package events

import (
	"context"

	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/domain/repositories"
	"github.com/whiteelite/solana-gateway/pkg/logger"
)

// Publisher emits audit events. Publish must not block the caller.
type Publisher interface {
	Publish(ctx context.Context, event entities.AuditEvent)
}

type QueuePublisher struct {
	producer repositories.MessageQueueProducer
	logg     *logger.Logger
}

func NewQueuePublisher(producer repositories.MessageQueueProducer, logg *logger.Logger) *QueuePublisher {
	if logg == nil {
		logg = logger.Nop()
	}
	return &QueuePublisher{producer: producer, logg: logg}
}

// Publish enqueues event, dropping it when the producer buffer is full.
func (p *QueuePublisher) Publish(ctx context.Context, event entities.AuditEvent) {
	if event.RequestID == "" {
		event.RequestID = logger.RequestIDFromContext(ctx)
	}

	select {
	case p.producer.ToProduceBuffered() <- event:
	default:
		ctx = p.logg.WithFields(ctx, map[string]any{
			"event_id":  event.ID.String(),
			"operation": string(event.Operation),
		})
		p.logg.Warn(ctx, "audit.event.dropped")
	}
}

type Noop struct{}

func (Noop) Publish(context.Context, entities.AuditEvent) {}

var (
	_ Publisher = (*QueuePublisher)(nil)
	_ Publisher = Noop{}
)
