package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
)

func TestGame_Execute_MakeGuess_FeedbackHoldsForAllCodes(t *testing.T) {
	pegs := []domain.Peg{red, green, blue}
	codes := allCodes(pegs, 4)
	secrets := []domain.Code{
		domain.NewCode(red, green, blue, red),
		domain.NewCode(red, red, red, red),
		domain.NewCode(blue, green, green, red),
	}

	for _, secret := range secrets {
		game := domain.ReplayGame(domain.EventGameStarted{
			GameID:        gameID,
			Secret:        secret,
			TotalAttempts: 12,
			AvailablePegs: domain.NewPegSet(pegs...),
		})

		for _, guess := range codes {
			events, err := game.Execute(domain.MakeGuess{GameID: gameID, Guess: guess})
			require.NoError(t, err)
			require.NotEmpty(t, events)

			guessMade, ok := events[0].(domain.EventGuessMade)
			require.True(t, ok)
			feedback := guessMade.Guess.Feedback

			blacks, whites := feedback.BlackMarks(), feedback.WhiteMarks()
			assert.LessOrEqual(t, blacks+whites, secret.Length())
			assert.Equal(t, commonPegs(secret, guess), blacks+whites, "secret %s guess %s", secret, guess)
			for i, mark := range feedback.Marks {
				assert.Equal(t, i < blacks, mark == domain.MarkBlack, "marks %v are not ordered", feedback.Marks)
			}

			if secret.Equal(guess) {
				assert.Equal(t, domain.OutcomeWon, feedback.Outcome)
				assert.Equal(t, []domain.Event{guessMade, domain.EventGameWon{GameID: gameID}}, events)
			} else {
				assert.Equal(t, domain.OutcomeInProgress, feedback.Outcome)
				assert.Len(t, events, 1)
			}
		}
	}
}

// commonPegs counts pegs present in both codes regardless of position.
func commonPegs(a, b domain.Code) int {
	counts := make(map[domain.Peg]int)
	for _, peg := range a.Pegs() {
		counts[peg]++
	}

	var result int
	for _, peg := range b.Pegs() {
		if counts[peg] > 0 {
			counts[peg]--
			result++
		}
	}

	return result
}

func allCodes(pegs []domain.Peg, length int) []domain.Code {
	if length == 0 {
		return []domain.Code{domain.NewCode()}
	}

	var result []domain.Code
	for _, prefix := range allCodes(pegs, length-1) {
		for _, peg := range pegs {
			result = append(result, domain.NewCode(append(prefix.Pegs(), peg)...))
		}
	}

	return result
}
