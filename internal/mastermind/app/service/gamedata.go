package service

import "github.com/klwxsrx/mastermind/internal/mastermind/domain"

// GameData is the read model of a game, the secret is revealed only when the game is finished
type GameData struct {
	ID            domain.GameID
	State         domain.State
	Attempts      int
	TotalAttempts int
	AvailablePegs domain.PegSet
	Guesses       []domain.Guess
	Secret        *domain.Code
}

func NewGameData(id domain.GameID, events []domain.Event) *GameData {
	game := domain.ReplayGame(events...)
	data := &GameData{
		ID:            id,
		State:         game.State(),
		Attempts:      0,
		TotalAttempts: 0,
		AvailablePegs: nil,
		Guesses:       nil,
		Secret:        nil,
	}

	var secret domain.Code
	for _, evt := range events {
		switch e := evt.(type) {
		case domain.EventGameStarted:
			secret = e.Secret
			data.TotalAttempts = e.TotalAttempts
			data.AvailablePegs = e.AvailablePegs
		case domain.EventGuessMade:
			data.Guesses = append(data.Guesses, e.Guess)
		case domain.EventGameWon, domain.EventGameLost:
		}
	}

	data.Attempts = len(data.Guesses)
	if data.State.IsFinished() {
		data.Secret = &secret
	}

	return data
}
