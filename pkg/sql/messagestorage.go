package sql

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/mastermind/pkg/message"
)

const messageStorageLockName = "message_storage"

const (
	messageStorageTableName = "message_storage"

	// fixed width layout keeps text comparison chronological
	storageTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type MessageStorage struct {
	db Database
}

func NewMessageStorage(db Database) *MessageStorage {
	return &MessageStorage{
		db: db,
	}
}

func (s MessageStorage) Lock(ctx context.Context, extraKeys ...string) (context.Context, func() error, error) {
	if len(extraKeys) == 0 {
		return withSessionLevelLock(ctx, messageStorageLockName, s.db)
	}

	sb := strings.Builder{}
	sb.WriteString(messageStorageLockName)
	for _, key := range extraKeys {
		sb.WriteString("_")
		sb.WriteString(key)
	}

	return withSessionLevelLock(ctx, sb.String(), s.db)
}

func (s MessageStorage) Find(ctx context.Context, spec *message.StorageSpecification) ([]message.Message, error) {
	qb := sq.
		Select("id", "topic", "key", "payload").
		From(messageStorageTableName).
		Where(sq.LtOrEq{"scheduled_at": formatStorageTime(spec.ScheduledAtBefore)}).
		OrderBy("scheduled_at")
	if len(spec.IDsExcluded) > 0 {
		qb = qb.Where(sq.NotEq{"id": uuidsToStrings(spec.IDsExcluded)})
	}
	if len(spec.Topics) > 0 {
		qb = qb.Where(sq.Eq{"topic": topicsToStrings(spec.Topics)})
	}
	if spec.Limit > 0 {
		qb = qb.Limit(uint64(spec.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var sqlxResult []sqlxMessage
	err = s.db.SelectContext(ctx, &sqlxResult, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select query: %w", err)
	}

	result := make([]message.Message, 0, len(sqlxResult))
	for _, sqlxMsg := range sqlxResult {
		result = append(result, message.Message{
			ID:      sqlxMsg.ID,
			Topic:   message.Topic(sqlxMsg.Topic),
			Key:     sqlxMsg.Key,
			Payload: sqlxMsg.Payload,
		})
	}

	return result, nil
}

func (s MessageStorage) Store(ctx context.Context, scheduledAt time.Time, msgs ...message.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	qb := sq.Insert(messageStorageTableName).Columns("id", "topic", "key", "payload", "scheduled_at")
	for _, msg := range msgs {
		qb = qb.Values(msg.ID.String(), msg.Topic.String(), msg.Key, msg.Payload, formatStorageTime(scheduledAt))
	}
	qb = qb.Suffix("on conflict (id, topic) do nothing")

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert query: %w", err)
	}

	return nil
}

func (s MessageStorage) Delete(ctx context.Context, topic message.Topic, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.
		Delete(messageStorageTableName).
		Where(sq.Eq{"topic": topic.String()}).
		Where(sq.Eq{"id": uuidsToStrings(ids)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete query: %w", err)
	}

	return nil
}

// MessageStorageMigrations keeps ids as text and times as UTC, so the table is portable between drivers
func MessageStorageMigrations(driver Driver) MigrationSource {
	payloadType := "bytea"
	scheduledAtType := "timestamptz"
	if driver == DriverSQLite {
		payloadType = "blob"
		scheduledAtType = "text"
	}

	return func() ([]Migration, error) {
		return []Migration{
			{
				ID: "0000-00-00-001-create-message-storage-table",
				SQL: fmt.Sprintf(`
					create table if not exists message_storage (
						id           text not null,
						topic        text not null,
						key          text not null,
						payload      %s   not null,
						scheduled_at %s   not null,
						primary key (id, topic)
					);

					create index if not exists message_storage_scheduled_at_topic on message_storage(scheduled_at, topic);
				`, payloadType, scheduledAtType),
			},
		}, nil
	}
}

func uuidsToStrings(ids []uuid.UUID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, id.String())
	}

	return result
}

func topicsToStrings(topics []message.Topic) []string {
	result := make([]string, 0, len(topics))
	for _, topic := range topics {
		result = append(result, topic.String())
	}

	return result
}

type sqlxMessage struct {
	ID      uuid.UUID `db:"id"`
	Topic   string    `db:"topic"`
	Key     string    `db:"key"`
	Payload []byte    `db:"payload"`
}

func formatStorageTime(t time.Time) string {
	return t.UTC().Format(storageTimeLayout)
}
