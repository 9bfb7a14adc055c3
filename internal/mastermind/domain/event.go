package domain

import (
	"fmt"

	"github.com/klwxsrx/mastermind/pkg/event"
)

const (
	Name          = "mastermind"
	AggregateName = "game"
)

var (
	EventTypeGameStarted = fmt.Sprintf("%s.started", AggregateName)
	EventTypeGuessMade   = fmt.Sprintf("%s.guess_made", AggregateName)
	EventTypeGameWon     = fmt.Sprintf("%s.won", AggregateName)
	EventTypeGameLost    = fmt.Sprintf("%s.lost", AggregateName)
)

type (
	Event interface {
		event.Event
		AggregateID() GameID
		gameEvent()
	}

	EventGameStarted struct {
		GameID        GameID `json:"gameID"`
		Secret        Code   `json:"secret"`
		TotalAttempts int    `json:"totalAttempts"`
		AvailablePegs PegSet `json:"availablePegs"`
	}

	EventGuessMade struct {
		GameID GameID `json:"gameID"`
		Guess  Guess  `json:"guess"`
	}

	EventGameWon struct {
		GameID GameID `json:"gameID"`
	}

	EventGameLost struct {
		GameID GameID `json:"gameID"`
	}
)

func (e EventGameStarted) Type() string {
	return EventTypeGameStarted
}

func (e EventGameStarted) AggregateID() GameID {
	return e.GameID
}

func (e EventGuessMade) Type() string {
	return EventTypeGuessMade
}

func (e EventGuessMade) AggregateID() GameID {
	return e.GameID
}

func (e EventGameWon) Type() string {
	return EventTypeGameWon
}

func (e EventGameWon) AggregateID() GameID {
	return e.GameID
}

func (e EventGameLost) Type() string {
	return EventTypeGameLost
}

func (e EventGameLost) AggregateID() GameID {
	return e.GameID
}

func (EventGameStarted) gameEvent() {}
func (EventGuessMade) gameEvent()   {}
func (EventGameWon) gameEvent()     {}
func (EventGameLost) gameEvent()    {}
