package client

import (
	"fmt"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	mastermindhttp "github.com/klwxsrx/mastermind/internal/mastermind/infra/http"
	pkghttp "github.com/klwxsrx/mastermind/pkg/http"
)

// responseError restores the game error described by the response body
func responseError(resp pkghttp.Response, operation string) error {
	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[mastermindhttp.ErrorOut](), nil)
	if err != nil || body.Error == "" {
		return fmt.Errorf("request %s: invalid status code %d", operation, resp.StatusCode())
	}

	gameID := domain.GameID(body.GameID)
	switch body.Error {
	case mastermindhttp.ErrorKindGameNotFound:
		return fmt.Errorf("%w: %s", service.ErrGameNotFound, body.Message)
	case mastermindhttp.ErrorKindInvalidGameSettings:
		return fmt.Errorf("%w: %s", service.ErrInvalidGameSettings, body.Message)
	case mastermindhttp.ErrorKindGameNotStarted:
		return domain.GameNotStartedError{GameID: gameID}
	case mastermindhttp.ErrorKindGameAlreadyStarted:
		return domain.GameAlreadyStartedError{GameID: gameID}
	case mastermindhttp.ErrorKindGameAlreadyWon:
		return domain.GameAlreadyWonError{GameID: gameID}
	case mastermindhttp.ErrorKindGameAlreadyLost:
		return domain.GameAlreadyLostError{GameID: gameID}
	case mastermindhttp.ErrorKindGuessTooShort:
		return domain.GuessTooShortError{
			GameID:         gameID,
			Guess:          domain.CodeOf(body.Guess...),
			RequiredLength: body.RequiredLength,
		}
	case mastermindhttp.ErrorKindGuessTooLong:
		return domain.GuessTooLongError{
			GameID:         gameID,
			Guess:          domain.CodeOf(body.Guess...),
			RequiredLength: body.RequiredLength,
		}
	case mastermindhttp.ErrorKindInvalidPegInGuess:
		return domain.InvalidPegInGuessError{
			GameID:        gameID,
			Guess:         domain.CodeOf(body.Guess...),
			AvailablePegs: domain.PegSetOf(body.AvailablePegs...),
		}
	default:
		return fmt.Errorf("request %s: status code %d: %s", operation, resp.StatusCode(), body.Message)
	}
}
