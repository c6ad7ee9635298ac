package events

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/pkg/logger"
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

type bufferedProducer struct {
	ch chan shared.Entity
}

func (p *bufferedProducer) ToProduceBuffered() chan<- shared.Entity { return p.ch }
func (p *bufferedProducer) Close()                                  {}

func TestPublishFillsRequestIDFromContext(t *testing.T) {
	producer := &bufferedProducer{ch: make(chan shared.Entity, 1)}
	logg := logger.Nop()
	publisher := NewQueuePublisher(producer, logg)

	ctx := logg.WithRequestID(context.Background(), "req-42")
	publisher.Publish(ctx, entities.NewAuditEvent(entities.OperationTransferToken, ""))

	require.Len(t, producer.ch, 1)
	event, ok := (<-producer.ch).(entities.AuditEvent)
	require.True(t, ok)
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, entities.OperationTransferToken, event.Operation)
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	producer := &bufferedProducer{ch: make(chan shared.Entity, 1)}
	buf := &bytes.Buffer{}
	publisher := NewQueuePublisher(producer, logger.New(logger.Options{ServiceName: "test", Output: buf}))

	publisher.Publish(context.Background(), entities.NewAuditEvent(entities.OperationMintTo, "a"))
	publisher.Publish(context.Background(), entities.NewAuditEvent(entities.OperationMintTo, "b"))

	assert.Len(t, producer.ch, 1)
	assert.Contains(t, buf.String(), "audit.event.dropped")
	assert.Contains(t, buf.String(), `"operation":"mint_to"`)
}

func TestNoopPublisher(t *testing.T) {
	Noop{}.Publish(context.Background(), entities.NewAuditEvent(entities.OperationSignMessage, ""))
}
