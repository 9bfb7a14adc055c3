package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	"github.com/klwxsrx/mastermind/pkg/event"
	pkgsql "github.com/klwxsrx/mastermind/pkg/sql"
	pkgtime "github.com/klwxsrx/mastermind/pkg/time"
)

const gameEventTableName = "game_event"

type gameEventStore struct {
	db              pkgsql.Client
	eventDispatcher event.Dispatcher
	clock           pkgtime.Clock
}

func NewGameEventStore(db pkgsql.Client, dispatcher event.Dispatcher, clock pkgtime.Clock) domain.GameEventStore {
	return &gameEventStore{
		db:              db,
		eventDispatcher: dispatcher,
		clock:           clock,
	}
}

func (s *gameEventStore) NextID() domain.GameID {
	return domain.GameID(uuid.NewString())
}

func (s *gameEventStore) Load(ctx context.Context, id domain.GameID) ([]domain.Event, int, error) {
	query, args, err := sq.
		Select("version", "type", "payload").
		From(gameEventTableName).
		Where(sq.Eq{"game_id": id.String()}).
		OrderBy("version").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build sql: %w", err)
	}

	var rows []sqlxGameEvent
	err = s.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("select events: %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for i, row := range rows {
		if row.Version != i+1 {
			return nil, 0, fmt.Errorf("event stream of game %s is broken at version %d", id, row.Version)
		}

		evt, err := decodeEvent(row.Type, row.Payload)
		if err != nil {
			return nil, 0, fmt.Errorf("decode event %d of game %s: %w", row.Version, id, err)
		}
		events = append(events, evt)
	}

	return events, len(events), nil
}

func (s *gameEventStore) Append(ctx context.Context, id domain.GameID, expectedVersion int, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	version, err := s.version(ctx, id)
	if err != nil {
		return err
	}
	if version != expectedVersion {
		return fmt.Errorf("%w: game %s has version %d, expected %d", domain.ErrVersionConflict, id, version, expectedVersion)
	}

	createdAt := s.clock.Now(ctx).UTC().Format(time.RFC3339Nano)
	envelopes := make([]event.Envelope, 0, len(events))
	qb := sq.Insert(gameEventTableName).Columns("game_id", "version", "type", "payload", "created_at")
	for i, evt := range events {
		payload, err := encodeEvent(evt)
		if err != nil {
			return err
		}

		eventVersion := expectedVersion + i + 1
		qb = qb.Values(id.String(), eventVersion, evt.Type(), payload, createdAt)
		envelopes = append(envelopes, event.NewEnvelope(domain.AggregateName, id.String(), eventVersion, evt))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if pkgsql.IsUniqueViolation(err) {
		return fmt.Errorf("%w: game %s already has version %d", domain.ErrVersionConflict, id, expectedVersion+1)
	}
	if err != nil {
		return fmt.Errorf("insert events: %w", err)
	}

	err = s.eventDispatcher.Dispatch(ctx, envelopes...)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}

	return nil
}

func (s *gameEventStore) version(ctx context.Context, id domain.GameID) (int, error) {
	query, args, err := sq.
		Select("coalesce(max(version), 0)").
		From(gameEventTableName).
		Where(sq.Eq{"game_id": id.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sql: %w", err)
	}

	var version int
	err = s.db.GetContext(ctx, &version, query, args...)
	if err != nil {
		return 0, fmt.Errorf("get version of game %s: %w", id, err)
	}

	return version, nil
}

type sqlxGameEvent struct {
	Version int    `db:"version"`
	Type    string `db:"type"`
	Payload string `db:"payload"`
}
