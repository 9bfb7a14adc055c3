package sql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sqlmastermind "github.com/klwxsrx/mastermind/data/sql/mastermind"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	mastermindsql "github.com/klwxsrx/mastermind/internal/mastermind/infra/sql"
	"github.com/klwxsrx/mastermind/pkg/event"
	eventmock "github.com/klwxsrx/mastermind/pkg/event/mock"
	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/message"
	pkgsql "github.com/klwxsrx/mastermind/pkg/sql"
	pkgtime "github.com/klwxsrx/mastermind/pkg/time"
)

const gameID domain.GameID = "5d0b8a52-7c1e-4f7e-b1d6-0f3c2a8e9b44"

var (
	pegs   = domain.PegSetOf("Red", "Green", "Blue", "Yellow")
	secret = domain.CodeOf("Red", "Green", "Blue", "Yellow")
)

func newTestDatabase(t *testing.T) pkgsql.Database {
	t.Helper()
	ctx := context.Background()

	db, err := pkgsql.NewDatabase(ctx, pkgsql.Config{
		Driver: pkgsql.DriverSQLite,
		Path:   pkgsql.SQLiteInMemoryPath,
	}, log.New(log.LevelDisabled))
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close(ctx)
	})

	err = pkgsql.NewMigrator(db, log.New(log.LevelDisabled)).Execute(
		ctx,
		pkgsql.MessageStorageMigrations(pkgsql.DriverSQLite),
		sqlmastermind.Migrations,
	)
	require.NoError(t, err)

	return db
}

func gameEvents() []domain.Event {
	return []domain.Event{
		domain.EventGameStarted{
			GameID:        gameID,
			Secret:        secret,
			TotalAttempts: 3,
			AvailablePegs: pegs,
		},
		domain.EventGuessMade{
			GameID: gameID,
			Guess: domain.Guess{
				Code:     domain.CodeOf("Red", "Red", "Green", "Green"),
				Feedback: domain.NewFeedback(domain.OutcomeInProgress, domain.MarkBlack, domain.MarkWhite),
			},
		},
		domain.EventGuessMade{
			GameID: gameID,
			Guess: domain.Guess{
				Code:     secret,
				Feedback: domain.NewFeedback(domain.OutcomeWon, domain.MarkBlack, domain.MarkBlack, domain.MarkBlack, domain.MarkBlack),
			},
		},
		domain.EventGameWon{GameID: gameID},
	}
}

func TestGameEventStore_AppendAndLoad(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewClock()
	appendedAt := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)
	ctx := clock.Set(context.Background(), appendedAt)
	db := newTestDatabase(t)
	storage := pkgsql.NewMessageStorage(db)
	store := mastermindsql.NewGameEventStore(db, message.NewEventDispatcher(domain.Name, storage, clock), clock)

	events, version, err := store.Load(ctx, gameID)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, 0, version)

	all := gameEvents()
	require.NoError(t, store.Append(ctx, gameID, 0, all[:1]))
	require.NoError(t, store.Append(ctx, gameID, 1, all[1:]))

	events, version, err = store.Load(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, all, events)
	assert.Equal(t, 4, version)

	msgs, err := storage.Find(ctx, &message.StorageSpecification{ScheduledAtBefore: appendedAt})
	require.NoError(t, err)
	require.Len(t, msgs, len(all))

	versions := make([]int, 0, len(msgs))
	for _, msg := range msgs {
		assert.Equal(t, message.NewDomainEventTopic(domain.Name, domain.AggregateName), msg.Topic)
		assert.Equal(t, gameID.String(), msg.Key)

		payload, err := message.ParseEventPayload(msg.Payload)
		require.NoError(t, err)
		require.True(t, payload.Version >= 1 && payload.Version <= len(all))
		assert.Equal(t, event.EnvelopeID(domain.AggregateName, gameID.String(), payload.Version), msg.ID)
		assert.Equal(t, all[payload.Version-1].Type(), payload.Type)
		versions = append(versions, payload.Version)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, versions)
}

func TestGameEventStore_Append_ReturnsVersionConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	dispatcher := eventmock.NewDispatcher(gomock.NewController(t))
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
	store := mastermindsql.NewGameEventStore(db, dispatcher, pkgtime.NewClock())

	all := gameEvents()
	require.NoError(t, store.Append(ctx, gameID, 0, all[:1]))

	err := store.Append(ctx, gameID, 0, all[:1])
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	err = store.Append(ctx, gameID, 2, all[1:2])
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	_, version, err := store.Load(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestGameEventStore_Append_RollsBackOnDispatchError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	dispatchErr := errors.New("storage unavailable")
	dispatcher := eventmock.NewDispatcher(gomock.NewController(t))
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(dispatchErr)
	store := mastermindsql.NewGameEventStore(db, dispatcher, pkgtime.NewClock())

	err := pkgsql.NewTransaction(db, "game", nil).WithinContext(ctx, func(ctx context.Context) error {
		return store.Append(ctx, gameID, 0, gameEvents()[:1])
	})
	assert.ErrorIs(t, err, dispatchErr)

	events, _, err := store.Load(ctx, gameID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGameEventStore_NextID_IsUnique(t *testing.T) {
	t.Parallel()
	store := mastermindsql.NewGameEventStore(nil, nil, pkgtime.NewClock())

	assert.NotEqual(t, store.NextID(), store.NextID())
}
