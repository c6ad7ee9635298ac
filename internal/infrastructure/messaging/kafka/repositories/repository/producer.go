package repository

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	mapper "github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/mapper"
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

// MessageWriter is the subset of *kafka.Writer used by the producer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
}

func StartProducer[T any | shared.Entity](
	ctx context.Context,
	wg *sync.WaitGroup,
	writer MessageWriter,
	bucket <-chan *T,
	errors chan<- error,
) {
	defer wg.Done()
	defer close(errors)

	for {
		select {
		case <-ctx.Done():
			return

		case request, ok := <-bucket:
			if !ok {
				return
			}
			if request == nil {
				continue
			}

			model, err := mapper.ToMessage(request)
			if err != nil {
				report(errors, err)
				continue
			}

			serialized, err := json.Marshal(model)
			if err != nil {
				report(errors, err)
				continue
			}

			err = writer.WriteMessages(ctx, sdk.Message{
				Key:   []byte(model.Hash),
				Value: serialized,
				Time:  model.ProducedAt,
			})
			if err != nil {
				report(errors, err)
			}
		}
	}
}

// report never blocks a worker on a full error channel.
func report(errors chan<- error, err error) {
	select {
	case errors <- err:
	default:
	}
}
