package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGameFinished       = errors.New("game is finished")
	ErrInvalidGuess       = errors.New("invalid guess")
	ErrGameInProgress     = errors.New("game is in progress")
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// GameError is implemented by every error the game returns instead of events.
type GameError interface {
	error
	AggregateID() GameID
}

type (
	GameAlreadyWonError struct {
		GameID GameID
	}

	GameAlreadyLostError struct {
		GameID GameID
	}

	GameAlreadyStartedError struct {
		GameID GameID
	}

	GameNotStartedError struct {
		GameID GameID
	}

	GuessTooShortError struct {
		GameID         GameID
		Guess          Code
		RequiredLength int
	}

	GuessTooLongError struct {
		GameID         GameID
		Guess          Code
		RequiredLength int
	}

	InvalidPegInGuessError struct {
		GameID        GameID
		Guess         Code
		AvailablePegs PegSet
	}

	UnsupportedCommandError struct {
		GameID  GameID
		Command string
	}
)

func (e GameAlreadyWonError) Error() string {
	return fmt.Sprintf("game %s is already won", e.GameID)
}

func (e GameAlreadyWonError) Unwrap() error {
	return ErrGameFinished
}

func (e GameAlreadyWonError) AggregateID() GameID {
	return e.GameID
}

func (e GameAlreadyLostError) Error() string {
	return fmt.Sprintf("game %s is already lost", e.GameID)
}

func (e GameAlreadyLostError) Unwrap() error {
	return ErrGameFinished
}

func (e GameAlreadyLostError) AggregateID() GameID {
	return e.GameID
}

func (e GameAlreadyStartedError) Error() string {
	return fmt.Sprintf("game %s is already started", e.GameID)
}

func (e GameAlreadyStartedError) Unwrap() error {
	return ErrGameInProgress
}

func (e GameAlreadyStartedError) AggregateID() GameID {
	return e.GameID
}

func (e GameNotStartedError) Error() string {
	return fmt.Sprintf("game %s is not started", e.GameID)
}

func (e GameNotStartedError) Unwrap() error {
	return ErrInvalidGuess
}

func (e GameNotStartedError) AggregateID() GameID {
	return e.GameID
}

func (e GuessTooShortError) Error() string {
	return fmt.Sprintf("guess %s for game %s is too short, required length %d", e.Guess, e.GameID, e.RequiredLength)
}

func (e GuessTooShortError) Unwrap() error {
	return ErrInvalidGuess
}

func (e GuessTooShortError) AggregateID() GameID {
	return e.GameID
}

func (e GuessTooLongError) Error() string {
	return fmt.Sprintf("guess %s for game %s is too long, required length %d", e.Guess, e.GameID, e.RequiredLength)
}

func (e GuessTooLongError) Unwrap() error {
	return ErrInvalidGuess
}

func (e GuessTooLongError) AggregateID() GameID {
	return e.GameID
}

func (e InvalidPegInGuessError) Error() string {
	return fmt.Sprintf(
		"guess %s for game %s has invalid pegs, available: %s",
		e.Guess,
		e.GameID,
		strings.Join(e.AvailablePegs.Names(), ", "),
	)
}

func (e InvalidPegInGuessError) Unwrap() error {
	return ErrInvalidGuess
}

func (e InvalidPegInGuessError) AggregateID() GameID {
	return e.GameID
}

func (e UnsupportedCommandError) Error() string {
	return fmt.Sprintf("command %s is not supported for game %s", e.Command, e.GameID)
}

func (e UnsupportedCommandError) Unwrap() error {
	return ErrUnsupportedCommand
}

func (e UnsupportedCommandError) AggregateID() GameID {
	return e.GameID
}
