package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
)

type responseError struct {
	err  error
	body ErrorOut
}

func (e responseError) Error() string {
	return e.err.Error()
}

func (e responseError) Unwrap() error {
	return e.err
}

func (e responseError) ErrorBody() any {
	return e.body
}

// ErrorStatus resolves response codes of game errors
func ErrorStatus(err error) (int, bool) {
	var notStarted domain.GameNotStartedError
	switch {
	case errors.Is(err, service.ErrGameNotFound), errors.As(err, &notStarted):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrInvalidGuess):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrGameFinished), errors.Is(err, domain.ErrGameInProgress):
		return http.StatusConflict, true
	case errors.Is(err, service.ErrInvalidGameSettings):
		return http.StatusUnprocessableEntity, true
	default:
		return 0, false
	}
}

func wrapGameError(err error) error {
	if err == nil {
		return nil
	}

	body := ErrorOut{Message: err.Error()}
	var (
		notStarted     domain.GameNotStartedError
		alreadyStarted domain.GameAlreadyStartedError
		alreadyWon     domain.GameAlreadyWonError
		alreadyLost    domain.GameAlreadyLostError
		tooShort       domain.GuessTooShortError
		tooLong        domain.GuessTooLongError
		invalidPeg     domain.InvalidPegInGuessError
	)
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		body.Error = ErrorKindGameNotFound
	case errors.Is(err, service.ErrInvalidGameSettings):
		body.Error = ErrorKindInvalidGameSettings
	case errors.As(err, &notStarted):
		body.Error = ErrorKindGameNotStarted
		body.GameID = notStarted.GameID.String()
	case errors.As(err, &alreadyStarted):
		body.Error = ErrorKindGameAlreadyStarted
		body.GameID = alreadyStarted.GameID.String()
	case errors.As(err, &alreadyWon):
		body.Error = ErrorKindGameAlreadyWon
		body.GameID = alreadyWon.GameID.String()
	case errors.As(err, &alreadyLost):
		body.Error = ErrorKindGameAlreadyLost
		body.GameID = alreadyLost.GameID.String()
	case errors.As(err, &tooShort):
		body.Error = ErrorKindGuessTooShort
		body.GameID = tooShort.GameID.String()
		body.Guess = tooShort.Guess.Names()
		body.RequiredLength = tooShort.RequiredLength
	case errors.As(err, &tooLong):
		body.Error = ErrorKindGuessTooLong
		body.GameID = tooLong.GameID.String()
		body.Guess = tooLong.Guess.Names()
		body.RequiredLength = tooLong.RequiredLength
	case errors.As(err, &invalidPeg):
		body.Error = ErrorKindInvalidPegInGuess
		body.GameID = invalidPeg.GameID.String()
		body.Guess = invalidPeg.Guess.Names()
		body.AvailablePegs = invalidPeg.AvailablePegs.Names()
	default:
		return err
	}

	return responseError{err: err, body: body}
}
