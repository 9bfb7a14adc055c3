package pulsar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second
	messageIDPropertyName    = "messageID"
)

type Config struct {
	Address           string
	ConnectionTimeout time.Duration
}

type MessageBroker struct {
	client pulsar.Client

	producersMutex sync.Mutex
	producers      map[message.Topic]pulsar.Producer
}

func NewMessageBroker(ctx context.Context, config Config, logger log.Logger) (*MessageBroker, error) {
	c, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	broker := &MessageBroker{
		client:         c,
		producersMutex: sync.Mutex{},
		producers:      make(map[message.Topic]pulsar.Producer),
	}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}
	err = broker.testCreateProducer(ctx, connTimeout)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return broker, nil
}

func (b *MessageBroker) Produce(ctx context.Context, msg *message.Message) error {
	producer, err := b.producer(msg.Topic)
	if err != nil {
		return err
	}

	_, err = producer.Send(ctx, &pulsar.ProducerMessage{
		Payload:    msg.Payload,
		Key:        msg.Key,
		Properties: map[string]string{messageIDPropertyName: msg.ID.String()},
	})
	if err != nil {
		return fmt.Errorf("send message %v to %s: %w", msg.ID, msg.Topic, err)
	}

	return nil
}

func (b *MessageBroker) Close() {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	for _, producer := range b.producers {
		producer.Close()
	}
	b.client.Close()
}

func (b *MessageBroker) producer(topic message.Topic) (pulsar.Producer, error) {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	producer, ok := b.producers[topic]
	if ok {
		return producer, nil
	}

	producer, err := b.client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	b.producers[topic] = producer
	return producer, nil
}

func (b *MessageBroker) testCreateProducer(ctx context.Context, connTimeout time.Duration) error {
	retry := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithRandomizationFactor(0),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(connTimeout/4),
		backoff.WithMaxElapsedTime(connTimeout),
	)

	return backoff.Retry(func() error {
		p, err := b.client.CreateProducer(pulsar.ProducerOptions{
			Topic: "non-persistent://public/default/test-topic",
		})
		if err == nil {
			p.Close()
		}
		return err
	}, backoff.WithContext(retry, ctx))
}
