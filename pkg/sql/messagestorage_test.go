package sql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/message"
	pkgsql "github.com/klwxsrx/mastermind/pkg/sql"
)

func TestMessageStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	require.NoError(t, pkgsql.NewMigrator(db, log.New(log.LevelDisabled)).Execute(ctx, pkgsql.MessageStorageMigrations(pkgsql.DriverSQLite)))

	storage := pkgsql.NewMessageStorage(db)
	topic := message.NewDomainEventTopic("mastermind", "game")
	now := time.Now()

	first := message.Message{ID: uuid.New(), Topic: topic, Key: "1", Payload: []byte(`{"n":1}`)}
	second := message.Message{ID: uuid.New(), Topic: topic, Key: "1", Payload: []byte(`{"n":2}`)}
	delayed := message.Message{ID: uuid.New(), Topic: topic, Key: "2", Payload: []byte(`{"n":3}`)}

	require.NoError(t, storage.Store(ctx, now.Add(-2*time.Second), first))
	require.NoError(t, storage.Store(ctx, now.Add(-time.Second), second, first))
	require.NoError(t, storage.Store(ctx, now.Add(time.Hour), delayed))

	lockedCtx, release, err := storage.Lock(ctx, topic.String())
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, release())
	}()

	msgs, err := storage.Find(lockedCtx, &message.StorageSpecification{
		Topics:            []message.Topic{topic},
		ScheduledAtBefore: now,
		Limit:             10,
	})
	require.NoError(t, err)
	assert.Equal(t, []message.Message{first, second}, msgs)

	msgs, err = storage.Find(lockedCtx, &message.StorageSpecification{
		IDsExcluded:       []uuid.UUID{first.ID},
		ScheduledAtBefore: now,
	})
	require.NoError(t, err)
	assert.Equal(t, []message.Message{second}, msgs)

	require.NoError(t, storage.Delete(lockedCtx, topic, first.ID, second.ID))
	msgs, err = storage.Find(lockedCtx, &message.StorageSpecification{ScheduledAtBefore: now.Add(2 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, []message.Message{delayed}, msgs)
}
