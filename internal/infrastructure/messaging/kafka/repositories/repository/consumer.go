package repository

import (
	"context"
	stdErrors "errors"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	mapper "github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/mapper"
	models "github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

// MessageReader is the subset of *kafka.Reader used by the consumer.
type MessageReader interface {
	FetchMessage(ctx context.Context) (sdk.Message, error)
	CommitMessages(ctx context.Context, msgs ...sdk.Message) error
}

// StartConsumer decodes fetched messages into bucket. A message is committed
// once its decoded value comes back on confirmed; undecodable messages are
// committed immediately so they are not redelivered forever.
func StartConsumer[T any | shared.Entity](
	ctx context.Context,
	wg *sync.WaitGroup,
	reader MessageReader,
	bucket chan<- *T,
	errors chan<- error,
	confirmed <-chan *T,
) {
	defer wg.Done()

	var (
		mu      sync.Mutex
		pending = map[*T]sdk.Message{}
		inner   sync.WaitGroup
	)

	commit := func(message sdk.Message) {
		if err := reader.CommitMessages(ctx, message); err != nil && !stdErrors.Is(err, context.Canceled) {
			report(errors, err)
		}
	}

	inner.Add(1)
	go func() {
		defer inner.Done()

		for {
			data, err := reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				report(errors, err)
				continue
			}

			model := new(models.Message)
			if err := json.Unmarshal(data.Value, model); err != nil {
				report(errors, err)
				commit(data)
				continue
			}

			message, err := mapper.FromMessage[T](model)
			if err != nil {
				report(errors, err)
				commit(data)
				continue
			}

			mu.Lock()
			pending[message] = data
			mu.Unlock()

			select {
			case bucket <- message:
			case <-ctx.Done():
				return
			}
		}
	}()

	inner.Add(1)
	go func() {
		defer inner.Done()

		for {
			select {
			case <-ctx.Done():
				return

			case message, ok := <-confirmed:
				if !ok {
					return
				}

				mu.Lock()
				data, found := pending[message]
				delete(pending, message)
				mu.Unlock()

				if found {
					commit(data)
				}
			}
		}
	}()

	inner.Wait()
	close(bucket)
	close(errors)
}
