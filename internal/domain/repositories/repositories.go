package repositories

import (
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

type MessageQueueParams interface {
	Get() map[string]any
}

type InitializeMessageQueue func(MessageQueueParams) MessageQueue

type MessageQueueConsumer interface {
	ToConsumeBuffered() <-chan shared.Entity
	Close()
}

type MessageQueueProducer interface {
	ToProduceBuffered() chan<- shared.Entity
	Close()
}

type MessageQueue interface {
	MessageQueueProducer
	MessageQueueConsumer
}
