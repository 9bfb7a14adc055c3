package message_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/mastermind/pkg/event"
	"github.com/klwxsrx/mastermind/pkg/message"
	pkgmessagemock "github.com/klwxsrx/mastermind/pkg/message/mock"
	"github.com/klwxsrx/mastermind/pkg/observability"
	pkgtime "github.com/klwxsrx/mastermind/pkg/time"
)

type testEvent struct {
	Value string `json:"value"`
}

func (testEvent) Type() string {
	return "test.happened"
}

func TestEventDispatcher_Dispatch_StoresMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := pkgtime.NewClock()
	dispatchedAt := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

	var stored []message.Message
	storage := pkgmessagemock.NewStorage(ctrl)
	storage.EXPECT().Store(gomock.Any(), dispatchedAt, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, msgs ...message.Message) error {
			stored = msgs
			return nil
		})

	observer := observability.New()
	ctx := observer.WithRequestID(clock.Set(context.Background(), dispatchedAt), "request-1")

	dispatcher := message.NewEventDispatcher("mastermind", storage, clock, message.WithEventObservability(observer))
	err := dispatcher.Dispatch(
		ctx,
		event.NewEnvelope("game", "42", 1, testEvent{Value: "first"}),
		event.NewEnvelope("game", "42", 2, testEvent{Value: "second"}),
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	first := stored[0]
	assert.Equal(t, event.EnvelopeID("game", "42", 1), first.ID)
	assert.Equal(t, message.NewDomainEventTopic("mastermind", "game"), first.Topic)
	assert.Equal(t, "42", first.Key)

	payload, err := message.ParseEventPayload(first.Payload)
	require.NoError(t, err)
	assert.Equal(t, "test.happened", payload.Type)
	assert.Equal(t, "game", payload.AggregateName)
	assert.Equal(t, "42", payload.AggregateID)
	assert.Equal(t, 1, payload.Version)
	assert.JSONEq(t, `{"value":"first"}`, string(payload.Data))
	assert.Equal(t, message.Metadata{"requestID": "request-1"}, payload.Meta)
}

func TestEventDispatcher_Dispatch_Returns(t *testing.T) {
	tests := []struct {
		name      string
		envelopes []event.Envelope
		storage   func(ctrl *gomock.Controller) message.Storage
		expect    func(t *testing.T, err error)
	}{
		{
			name: "success_when_nothing_to_dispatch",
			storage: func(ctrl *gomock.Controller) message.Storage {
				return pkgmessagemock.NewStorage(ctrl)
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:      "error_when_storage_fails",
			envelopes: []event.Envelope{event.NewEnvelope("game", "1", 1, testEvent{})},
			storage: func(ctrl *gomock.Controller) message.Storage {
				mock := pkgmessagemock.NewStorage(ctrl)
				mock.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			dispatcher := message.NewEventDispatcher("mastermind", tc.storage(ctrl), pkgtime.NewClock())
			tc.expect(t, dispatcher.Dispatch(context.Background(), tc.envelopes...))
		})
	}
}
