package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	"github.com/klwxsrx/mastermind/pkg/event"
)

type gameEventStore struct {
	mu              sync.RWMutex
	streams         map[domain.GameID][]domain.Event
	eventDispatcher event.Dispatcher
}

// NewGameEventStore keeps streams in the process memory, dispatcher is optional
func NewGameEventStore(dispatcher event.Dispatcher) domain.GameEventStore {
	return &gameEventStore{
		mu:              sync.RWMutex{},
		streams:         make(map[domain.GameID][]domain.Event),
		eventDispatcher: dispatcher,
	}
}

func (s *gameEventStore) NextID() domain.GameID {
	return domain.GameID(uuid.NewString())
}

func (s *gameEventStore) Load(_ context.Context, id domain.GameID) ([]domain.Event, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream := slices.Clone(s.streams[id])
	return stream, len(stream), nil
}

func (s *gameEventStore) Append(ctx context.Context, id domain.GameID, expectedVersion int, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stream := s.streams[id]
	if len(stream) != expectedVersion {
		return fmt.Errorf("%w: game %s has version %d, expected %d", domain.ErrVersionConflict, id, len(stream), expectedVersion)
	}

	if s.eventDispatcher != nil {
		envelopes := make([]event.Envelope, 0, len(events))
		for i, evt := range events {
			envelopes = append(envelopes, event.NewEnvelope(domain.AggregateName, id.String(), expectedVersion+i+1, evt))
		}

		err := s.eventDispatcher.Dispatch(ctx, envelopes...)
		if err != nil {
			return fmt.Errorf("dispatch events: %w", err)
		}
	}

	s.streams[id] = slices.Concat(stream, events)
	return nil
}
