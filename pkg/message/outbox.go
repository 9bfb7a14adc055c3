package message

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/metric"
)

const defaultOutboxBatchSize = 100

type (
	Outbox interface {
		Worker(context.Context) error
		Process()
	}

	OutboxOption func(*OutboxImpl)

	// OutboxImpl moves stored messages to the producer, a message is deleted only after it was produced.
	OutboxImpl struct {
		BatchSize        int
		Topics           []Topic
		Retry            backoff.BackOff
		OnInternalError  []func(context.Context, error)
		OnFoundMessages  []func(context.Context, []Message, error)
		OnSentMessage    []func(context.Context, *Message, error)
		OnDeletedMessage []func(context.Context, *Message, error)

		storage     Storage
		producer    Producer
		processChan chan struct{}
	}
)

func NewOutbox(
	storage Storage,
	producer Producer,
	opts ...OutboxOption,
) Outbox {
	o := &OutboxImpl{
		BatchSize:        defaultOutboxBatchSize,
		Topics:           nil,
		Retry:            NewOutboxDefaultRetry(),
		OnInternalError:  nil,
		OnFoundMessages:  nil,
		OnSentMessage:    nil,
		OnDeletedMessage: nil,

		storage:     storage,
		producer:    producer,
		processChan: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func NewOutboxDefaultRetry() backoff.BackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(time.Minute),
		backoff.WithMaxElapsedTime(0),
	)
}

func (o *OutboxImpl) Worker(ctx context.Context) error {
	o.Process()

	for {
		select {
		case <-o.processChan:
			o.process(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (o *OutboxImpl) Process() {
	select {
	case o.processChan <- struct{}{}:
	default:
	}
}

func (o *OutboxImpl) process(ctx context.Context) {
	impl := func() error {
		for {
			allProcessed, err := o.processBatch(ctx)
			if err != nil {
				return err
			}
			if allProcessed {
				return nil
			}
		}
	}

	o.Retry.Reset()
	_ = backoff.Retry(impl, backoff.WithContext(o.Retry, ctx))
}

func (o *OutboxImpl) processBatch(ctx context.Context) (allProcessed bool, err error) {
	lockedCtx, releaseLock, err := o.storage.Lock(ctx, topicsToStrings(o.Topics)...)
	if err != nil {
		err = fmt.Errorf("get storage lock: %w", err)
		o.internalError(ctx, err)
		return false, err
	}
	defer func() {
		releaseErr := releaseLock()
		if releaseErr != nil {
			o.internalError(ctx, fmt.Errorf("release storage lock: %w", releaseErr))
		}
	}()

	msgs, err := o.storage.Find(lockedCtx, &StorageSpecification{
		IDsExcluded:       nil,
		Topics:            o.Topics,
		ScheduledAtBefore: time.Now(),
		Limit:             o.BatchSize,
	})
	for _, fn := range o.OnFoundMessages {
		fn(lockedCtx, msgs, err)
	}
	if err != nil {
		return false, fmt.Errorf("get messages to send: %w", err)
	}
	if len(msgs) == 0 {
		return true, nil
	}

	for i := range msgs {
		msg := &msgs[i]
		err = o.producer.Produce(lockedCtx, msg)
		for _, fn := range o.OnSentMessage {
			fn(lockedCtx, msg, err)
		}
		if err != nil {
			return false, fmt.Errorf("send message: %w", err)
		}

		err = o.storage.Delete(lockedCtx, msg.Topic, msg.ID)
		for _, fn := range o.OnDeletedMessage {
			fn(lockedCtx, msg, err)
		}
		if err != nil {
			return false, fmt.Errorf("delete sent message: %w", err)
		}
	}

	return len(msgs) < o.BatchSize, nil
}

func (o *OutboxImpl) internalError(ctx context.Context, err error) {
	for _, fn := range o.OnInternalError {
		fn(ctx, err)
	}
}

func topicsToStrings(topics []Topic) []string {
	result := make([]string, 0, len(topics))
	for _, topic := range topics {
		result = append(result, topic.String())
	}

	return result
}

func WithOutboxRetry(retry backoff.BackOff) OutboxOption {
	return func(o *OutboxImpl) {
		o.Retry = retry
	}
}

func WithOutboxBatchSize(size int) OutboxOption {
	return func(o *OutboxImpl) {
		if size > 0 {
			o.BatchSize = size
		}
	}
}

func WithOutboxTopics(topics ...Topic) OutboxOption {
	return func(o *OutboxImpl) {
		o.Topics = append(o.Topics, topics...)
	}
}

func WithOutboxLogging(
	logger log.Logger,
	infoLevel log.Level,
	errorLevel log.Level,
) OutboxOption {
	return func(o *OutboxImpl) {
		o.OnInternalError = append(o.OnInternalError, func(ctx context.Context, err error) {
			logger.WithError(err).Log(ctx, errorLevel, "message outbox internal error")
		})

		o.OnFoundMessages = append(o.OnFoundMessages, func(ctx context.Context, msgs []Message, err error) {
			if err != nil {
				logger.WithError(err).Log(ctx, errorLevel, "message outbox internal error")
				return
			}
			if len(msgs) > 0 {
				logger.WithField("count", len(msgs)).Log(ctx, infoLevel, "outbox messages found")
			}
		})

		o.OnSentMessage = append(o.OnSentMessage, func(ctx context.Context, msg *Message, err error) {
			logger := logger.With(log.Fields{
				"messageID": msg.ID,
				"topic":     msg.Topic,
			})
			if err != nil {
				logger.WithError(err).Log(ctx, errorLevel, "outbox message sending failed")
			} else {
				logger.Log(ctx, infoLevel, "outbox message sent successfully")
			}
		})

		o.OnDeletedMessage = append(o.OnDeletedMessage, func(ctx context.Context, msg *Message, err error) {
			logger := logger.WithField("messageID", msg.ID)
			if err != nil {
				err = fmt.Errorf("delete message from storage: %w", err)
				logger.WithError(err).Log(ctx, errorLevel, "message outbox internal error")
			}
		})
	}
}

func WithOutboxMetrics(metrics metric.Metrics) OutboxOption {
	return func(o *OutboxImpl) {
		o.OnInternalError = append(o.OnInternalError, func(context.Context, error) {
			metrics.Increment("msg_outbox_internal_error_total")
		})

		o.OnFoundMessages = append(o.OnFoundMessages, func(_ context.Context, _ []Message, err error) {
			if err != nil {
				metrics.Increment("msg_outbox_internal_error_total")
			}
		})

		o.OnSentMessage = append(o.OnSentMessage, func(_ context.Context, msg *Message, err error) {
			metrics.With(metric.Labels{
				"success": err == nil,
				"topic":   msg.Topic,
			}).Increment("msg_outbox_producer_sending_attempts_total")
		})

		o.OnDeletedMessage = append(o.OnDeletedMessage, func(_ context.Context, msg *Message, err error) {
			metrics.With(metric.Labels{
				"success": err == nil,
				"topic":   msg.Topic,
			}).Increment("msg_outbox_producer_delete_from_storage_attempts_total")
		})
	}
}
