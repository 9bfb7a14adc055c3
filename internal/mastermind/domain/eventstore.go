//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "GameEventStore=GameEventStore"
package domain

import (
	"context"
	"errors"
)

var ErrVersionConflict = errors.New("game event stream version conflict")

// GameEventStore keeps the event stream of every game.
// Stream version is the number of stored events, the empty stream has version 0.
type GameEventStore interface {
	NextID() GameID
	Load(ctx context.Context, id GameID) (events []Event, version int, err error)
	// Append returns ErrVersionConflict when the stream version differs from expectedVersion
	Append(ctx context.Context, id GameID, expectedVersion int, events []Event) error
}
