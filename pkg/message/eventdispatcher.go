package message

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/klwxsrx/mastermind/pkg/event"
	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/metric"
	"github.com/klwxsrx/mastermind/pkg/observability"
	pkgtime "github.com/klwxsrx/mastermind/pkg/time"
)

const metadataKeyRequestID = "requestID"

type (
	EventPayload struct {
		Type          string          `json:"type"`
		AggregateName string          `json:"aggregateName"`
		AggregateID   string          `json:"aggregateID"`
		Version       int             `json:"version"`
		Data          json.RawMessage `json:"data"`
		Meta          Metadata        `json:"meta,omitempty"`
	}

	Metadata map[string]string

	EventDispatcherOption func(*EventDispatcherImpl)

	// EventDispatcherImpl stores events as messages, so they are published together with the stream changes.
	EventDispatcherImpl struct {
		OnDispatched    []func(context.Context, []Message, error)
		MetadataBuilder []func(context.Context) Metadata

		domainName string
		storage    Storage
		clock      pkgtime.Clock
	}
)

func NewEventDispatcher(
	domainName string,
	storage Storage,
	clock pkgtime.Clock,
	opts ...EventDispatcherOption,
) event.Dispatcher {
	d := &EventDispatcherImpl{
		OnDispatched:    nil,
		MetadataBuilder: nil,
		domainName:      domainName,
		storage:         storage,
		clock:           clock,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *EventDispatcherImpl) Dispatch(ctx context.Context, envelopes ...event.Envelope) (err error) {
	if len(envelopes) == 0 {
		return nil
	}

	msgs := make([]Message, 0, len(envelopes))
	defer func() {
		for _, fn := range d.OnDispatched {
			fn(ctx, msgs, err)
		}
	}()

	meta := d.buildMetadata(ctx)
	for _, envelope := range envelopes {
		var msg *Message
		msg, err = d.serialize(envelope, meta)
		if err != nil {
			return err
		}

		msgs = append(msgs, *msg)
	}

	err = d.storage.Store(ctx, d.clock.Now(ctx), msgs...)
	if err != nil {
		return fmt.Errorf("store event messages: %w", err)
	}

	return nil
}

func (d *EventDispatcherImpl) serialize(envelope event.Envelope, meta Metadata) (*Message, error) {
	data, err := json.Marshal(envelope.Event)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", envelope.Event.Type(), err)
	}

	payload, err := json.Marshal(EventPayload{
		Type:          envelope.Event.Type(),
		AggregateName: envelope.AggregateName,
		AggregateID:   envelope.AggregateID,
		Version:       envelope.Version,
		Data:          data,
		Meta:          meta,
	})
	if err != nil {
		return nil, fmt.Errorf("encode message payload for event %s: %w", envelope.Event.Type(), err)
	}

	return &Message{
		ID:      envelope.ID,
		Topic:   NewDomainEventTopic(d.domainName, envelope.AggregateName),
		Key:     envelope.AggregateID,
		Payload: payload,
	}, nil
}

func (d *EventDispatcherImpl) buildMetadata(ctx context.Context) Metadata {
	if len(d.MetadataBuilder) == 0 {
		return nil
	}

	result := make(Metadata)
	for _, builder := range d.MetadataBuilder {
		for key, value := range builder(ctx) {
			result[key] = value
		}
	}
	if len(result) == 0 {
		return nil
	}

	return result
}

func ParseEventPayload(payload []byte) (*EventPayload, error) {
	var result EventPayload
	err := json.Unmarshal(payload, &result)
	if err != nil {
		return nil, fmt.Errorf("decode event payload: %w", err)
	}

	return &result, nil
}

func WithEventObservability(observer observability.Observer) EventDispatcherOption {
	return func(d *EventDispatcherImpl) {
		d.MetadataBuilder = append(d.MetadataBuilder, func(ctx context.Context) Metadata {
			requestID, ok := observer.RequestID(ctx)
			if !ok {
				return nil
			}

			return Metadata{metadataKeyRequestID: requestID}
		})
	}
}

func WithEventLogging(logger log.Logger, infoLevel, errorLevel log.Level) EventDispatcherOption {
	return func(d *EventDispatcherImpl) {
		d.OnDispatched = append(d.OnDispatched, func(ctx context.Context, msgs []Message, err error) {
			ids := make([]string, 0, len(msgs))
			for _, msg := range msgs {
				ids = append(ids, msg.ID.String())
			}

			loggerWithFields := logger.With(log.Fields{
				"domainName": d.domainName,
				"messageIDs": ids,
			})
			if err != nil {
				loggerWithFields.WithError(err).Log(ctx, errorLevel, "events were not stored to message storage")
				return
			}

			loggerWithFields.Log(ctx, infoLevel, "events stored to message storage")
		})
	}
}

func WithEventMetrics(metrics metric.Metrics) EventDispatcherOption {
	return func(d *EventDispatcherImpl) {
		d.OnDispatched = append(d.OnDispatched, func(_ context.Context, msgs []Message, err error) {
			for _, msg := range msgs {
				metrics.With(metric.Labels{
					"domain":  d.domainName,
					"topic":   msg.Topic,
					"success": err == nil,
				}).Increment("msg_store_attempts_total")
			}
		})
	}
}
