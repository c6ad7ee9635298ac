package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	sdk "github.com/segmentio/kafka-go"
	domainrepos "github.com/whiteelite/solana-gateway/internal/domain/repositories"
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

// KafkaMessageQueueParams implements repositories.MessageQueueParams
// and provides configuration for initializing KafkaMessageQueue.
type KafkaMessageQueueParams struct {
	// Required
	Brokers []string
	Topic   string

	// Optional. The consumer half only runs when GroupID is set.
	GroupID          string
	ToProduceBufSize int
	ToConsumeBufSize int
	OnError          func(error)
}

func (p KafkaMessageQueueParams) Get() map[string]any {
	return map[string]any{
		"brokers":         p.Brokers,
		"topic":           p.Topic,
		"groupId":         p.GroupID,
		"toProduceBuffer": p.ToProduceBufSize,
		"toConsumeBuffer": p.ToConsumeBufSize,
	}
}

// KafkaMessageQueue implements domain MessageQueue interfaces
// by bridging to the StartProducer/StartConsumer workers.
type KafkaMessageQueue struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	once   sync.Once

	reader  *sdk.Reader
	writer  *sdk.Writer
	onError func(error)

	// External facing channels (Entity based)
	toProduce chan shared.Entity
	toConsume chan shared.Entity

	// Internal bridges (generic pointer channels)
	prodBucket    chan *shared.Entity
	consBucket    chan *shared.Entity
	errorsProd    chan error
	errorsCons    chan error
	confirmations chan *shared.Entity
}

// InitializeKafkaMessageQueue creates a KafkaMessageQueue using params.
func InitializeKafkaMessageQueue(params domainrepos.MessageQueueParams) domainrepos.MessageQueue {
	typed, _ := params.(KafkaMessageQueueParams)

	// defaults
	if typed.ToProduceBufSize <= 0 {
		typed.ToProduceBufSize = 1024
	}
	if typed.ToConsumeBufSize <= 0 {
		typed.ToConsumeBufSize = 1024
	}
	if typed.OnError == nil {
		typed.OnError = func(error) {}
	}

	ctx, cancel := context.WithCancel(context.Background())

	writer := &sdk.Writer{
		Addr:         sdk.TCP(typed.Brokers...),
		Topic:        typed.Topic,
		RequiredAcks: sdk.RequireAll,
		Balancer:     &sdk.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}

	var reader *sdk.Reader
	if typed.GroupID != "" {
		reader = sdk.NewReader(sdk.ReaderConfig{
			Brokers: typed.Brokers,
			Topic:   typed.Topic,
			GroupID: typed.GroupID,
		})
	}

	mq := &KafkaMessageQueue{
		ctx:           ctx,
		cancel:        cancel,
		wg:            &sync.WaitGroup{},
		reader:        reader,
		writer:        writer,
		onError:       typed.OnError,
		toProduce:     make(chan shared.Entity, typed.ToProduceBufSize),
		toConsume:     make(chan shared.Entity, typed.ToConsumeBufSize),
		prodBucket:    make(chan *shared.Entity, typed.ToProduceBufSize),
		consBucket:    make(chan *shared.Entity, typed.ToConsumeBufSize),
		errorsProd:    make(chan error, 16),
		errorsCons:    make(chan error, 16),
		confirmations: make(chan *shared.Entity, 16),
	}

	mq.startWorkers()
	return mq
}

func (q *KafkaMessageQueue) startWorkers() {
	q.wg.Add(1)
	go StartProducer[shared.Entity](q.ctx, q.wg, q.writer, q.prodBucket, q.errorsProd)
	q.drainErrors(q.errorsProd)

	// Bridge external toProduce -> prodBucket (*Entity)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-q.ctx.Done():
				return
			case e := <-q.toProduce:
				entity := e
				select {
				case q.prodBucket <- &entity:
				case <-q.ctx.Done():
					return
				}
			}
		}
	}()

	if q.reader == nil {
		return
	}

	q.wg.Add(1)
	go StartConsumer[shared.Entity](q.ctx, q.wg, q.reader, q.consBucket, q.errorsCons, q.confirmations)
	q.drainErrors(q.errorsCons)

	// Bridge consBucket (*Entity) -> toConsume and confirmation
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-q.ctx.Done():
				return
			case ptr, ok := <-q.consBucket:
				if !ok {
					return
				}
				if ptr == nil {
					continue
				}
				select {
				case q.toConsume <- *ptr:
				case <-q.ctx.Done():
					return
				}
				select {
				case q.confirmations <- ptr:
				case <-q.ctx.Done():
					return
				}
			}
		}
	}()
}

func (q *KafkaMessageQueue) drainErrors(errs <-chan error) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for err := range errs {
			q.onError(err)
		}
	}()
}

// ToConsumeBuffered exposes the consumer channel of entities. It is closed
// by Close and never receives when the queue has no GroupID.
func (q *KafkaMessageQueue) ToConsumeBuffered() <-chan shared.Entity {
	return q.toConsume
}

// ToProduceBuffered exposes the producer channel of entities.
func (q *KafkaMessageQueue) ToProduceBuffered() chan<- shared.Entity {
	return q.toProduce
}

// Close stops workers and closes resources. Entities still buffered are dropped.
func (q *KafkaMessageQueue) Close() {
	q.once.Do(func() {
		q.cancel()
		q.wg.Wait()

		if q.reader != nil {
			if err := q.reader.Close(); err != nil {
				q.onError(err)
			}
		}
		if err := q.writer.Close(); err != nil {
			q.onError(err)
		}

		close(q.toConsume)
	})
}

// Compile-time assertions to ensure interface conformance
var _ domainrepos.MessageQueueConsumer = (*KafkaMessageQueue)(nil)
var _ domainrepos.MessageQueueProducer = (*KafkaMessageQueue)(nil)
var _ domainrepos.MessageQueue = (*KafkaMessageQueue)(nil)

// ValidateKafkaParams ensures required params are set.
func ValidateKafkaParams(p KafkaMessageQueueParams) error {
	if len(p.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	if p.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}
