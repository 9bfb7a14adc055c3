package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
)

const gameID domain.GameID = "c0a0ad1e-5b9f-4a8e-9f43-1f5e1b0e3a11"

var (
	red    = domain.NewPeg("Red")
	green  = domain.NewPeg("Green")
	blue   = domain.NewPeg("Blue")
	yellow = domain.NewPeg("Yellow")
	purple = domain.NewPeg("Purple")
	pink   = domain.NewPeg("Pink")

	availablePegs = domain.NewPegSet(red, green, blue, yellow, purple, pink)
	secret        = domain.NewCode(red, green, blue, yellow)
)

func gameStarted(totalAttempts int) domain.EventGameStarted {
	return domain.EventGameStarted{
		GameID:        gameID,
		Secret:        secret,
		TotalAttempts: totalAttempts,
		AvailablePegs: availablePegs,
	}
}

func wrongGuessMade() domain.EventGuessMade {
	return domain.EventGuessMade{
		GameID: gameID,
		Guess: domain.Guess{
			Code:     domain.NewCode(purple, purple, purple, purple),
			Feedback: domain.NewFeedback(domain.OutcomeInProgress),
		},
	}
}

func TestGame_Execute_JoinGame_StartsGame(t *testing.T) {
	game := domain.NewGame()

	events, err := game.Execute(domain.JoinGame{
		GameID:        gameID,
		Secret:        secret,
		TotalAttempts: 12,
		AvailablePegs: availablePegs,
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.Event{gameStarted(12)}, events)
}

func TestGame_ApplyEvent_GameStarted_TransitionsToStarted(t *testing.T) {
	game := domain.NewGame().ApplyEvent(gameStarted(12))

	assert.Equal(t, domain.StateStarted, game.State())
	assert.Equal(t, 0, game.Attempts())
	assert.Equal(t, 12, game.TotalAttempts())
	assert.True(t, secret.Equal(game.Secret()))
	assert.Equal(t, availablePegs, game.AvailablePegs())
}

func TestGame_AvailablePegs_CannotChangeGame(t *testing.T) {
	started := domain.EventGameStarted{
		GameID:        gameID,
		Secret:        secret,
		TotalAttempts: 12,
		AvailablePegs: domain.NewPegSet(red, green, blue, yellow),
	}
	game := domain.ReplayGame(started)

	delete(game.AvailablePegs(), red)
	delete(started.AvailablePegs, green)

	assert.True(t, game.AvailablePegs().Contains(red))
	assert.True(t, game.AvailablePegs().Contains(green))

	_, err := game.Execute(domain.MakeGuess{GameID: gameID, Guess: domain.NewCode(red, green, blue, yellow)})
	require.NoError(t, err)
}

func TestGame_Execute_MakeGuess_ReturnsFeedback(t *testing.T) {
	tests := []struct {
		name     string
		secret   domain.Code
		guess    domain.Code
		expected domain.Feedback
	}{
		{
			name:     "no_hits",
			secret:   secret,
			guess:    domain.NewCode(purple, purple, purple, purple),
			expected: domain.NewFeedback(domain.OutcomeInProgress),
		},
		{
			name:     "two_exact_hits",
			secret:   secret,
			guess:    domain.NewCode(red, purple, blue, purple),
			expected: domain.NewFeedback(domain.OutcomeInProgress, domain.MarkBlack, domain.MarkBlack),
		},
		{
			name:     "duplicate_peg_in_guess_matched_once_by_position",
			secret:   secret,
			guess:    domain.NewCode(red, red, purple, purple),
			expected: domain.NewFeedback(domain.OutcomeInProgress, domain.MarkBlack),
		},
		{
			name:     "color_hit",
			secret:   secret,
			guess:    domain.NewCode(purple, red, purple, purple),
			expected: domain.NewFeedback(domain.OutcomeInProgress, domain.MarkWhite),
		},
		{
			name:     "duplicate_peg_in_guess_matched_once_by_color",
			secret:   secret,
			guess:    domain.NewCode(purple, red, red, purple),
			expected: domain.NewFeedback(domain.OutcomeInProgress, domain.MarkWhite),
		},
		{
			name:     "duplicate_pegs_in_both_codes",
			secret:   domain.NewCode(red, green, blue, red),
			guess:    domain.NewCode(purple, red, red, purple),
			expected: domain.NewFeedback(domain.OutcomeInProgress, domain.MarkWhite, domain.MarkWhite),
		},
		{
			name:     "black_marks_go_first",
			secret:   secret,
			guess:    domain.NewCode(green, red, blue, yellow),
			expected: domain.NewFeedback(domain.OutcomeInProgress, domain.MarkBlack, domain.MarkBlack, domain.MarkWhite, domain.MarkWhite),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			game := domain.ReplayGame(domain.EventGameStarted{
				GameID:        gameID,
				Secret:        tc.secret,
				TotalAttempts: 12,
				AvailablePegs: availablePegs,
			})

			events, err := game.Execute(domain.MakeGuess{GameID: gameID, Guess: tc.guess})
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventGuessMade{
				GameID: gameID,
				Guess:  domain.Guess{Code: tc.guess, Feedback: tc.expected},
			}, events[0])
		})
	}
}

func TestGame_Execute_MakeGuess_WinsGame(t *testing.T) {
	game := domain.ReplayGame(gameStarted(12))

	events, err := game.Execute(domain.MakeGuess{GameID: gameID, Guess: secret})

	require.NoError(t, err)
	assert.Equal(t, []domain.Event{
		domain.EventGuessMade{
			GameID: gameID,
			Guess: domain.Guess{
				Code:     secret,
				Feedback: domain.NewFeedback(domain.OutcomeWon, domain.MarkBlack, domain.MarkBlack, domain.MarkBlack, domain.MarkBlack),
			},
		},
		domain.EventGameWon{GameID: gameID},
	}, events)

	game = domain.ReplayGame(append([]domain.Event{gameStarted(12)}, events...)...)
	assert.Equal(t, domain.StateWon, game.State())
}

func TestGame_Execute_MakeGuess_LosesGameOnLastAttempt(t *testing.T) {
	game := domain.ReplayGame(gameStarted(3), wrongGuessMade(), wrongGuessMade())
	require.Equal(t, 2, game.Attempts())

	guess := domain.NewCode(purple, purple, purple, purple)
	events, err := game.Execute(domain.MakeGuess{GameID: gameID, Guess: guess})

	require.NoError(t, err)
	assert.Equal(t, []domain.Event{
		domain.EventGuessMade{
			GameID: gameID,
			Guess:  domain.Guess{Code: guess, Feedback: domain.NewFeedback(domain.OutcomeLost)},
		},
		domain.EventGameLost{GameID: gameID},
	}, events)
}

func TestGame_Execute_MakeGuess_WinOnLastAttemptIsNotLoss(t *testing.T) {
	game := domain.ReplayGame(gameStarted(1))

	events, err := game.Execute(domain.MakeGuess{GameID: gameID, Guess: secret})

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventGameWon{GameID: gameID}, events[1])
}

func TestGame_Execute_ReturnsError(t *testing.T) {
	tests := []struct {
		name     string
		history  []domain.Event
		command  domain.Command
		expected error
		family   error
	}{
		{
			name:     "guess_before_start",
			history:  nil,
			command:  domain.MakeGuess{GameID: gameID, Guess: secret},
			expected: domain.GameNotStartedError{GameID: gameID},
			family:   domain.ErrInvalidGuess,
		},
		{
			name:    "join_started_game",
			history: []domain.Event{gameStarted(12)},
			command: domain.JoinGame{
				GameID:        gameID,
				Secret:        secret,
				TotalAttempts: 12,
				AvailablePegs: availablePegs,
			},
			expected: domain.GameAlreadyStartedError{GameID: gameID},
			family:   domain.ErrGameInProgress,
		},
		{
			name:    "guess_too_short",
			history: []domain.Event{gameStarted(12)},
			command: domain.MakeGuess{GameID: gameID, Guess: domain.NewCode(red, green, blue)},
			expected: domain.GuessTooShortError{
				GameID:         gameID,
				Guess:          domain.NewCode(red, green, blue),
				RequiredLength: 4,
			},
			family: domain.ErrInvalidGuess,
		},
		{
			name:    "guess_too_long",
			history: []domain.Event{gameStarted(12)},
			command: domain.MakeGuess{GameID: gameID, Guess: domain.NewCode(red, green, blue, yellow, purple)},
			expected: domain.GuessTooLongError{
				GameID:         gameID,
				Guess:          domain.NewCode(red, green, blue, yellow, purple),
				RequiredLength: 4,
			},
			family: domain.ErrInvalidGuess,
		},
		{
			name: "invalid_peg_in_guess",
			history: []domain.Event{domain.EventGameStarted{
				GameID:        gameID,
				Secret:        domain.NewCode(red, green, blue, blue),
				TotalAttempts: 12,
				AvailablePegs: domain.NewPegSet(red, green, blue),
			}},
			command: domain.MakeGuess{GameID: gameID, Guess: domain.NewCode(red, green, blue, yellow)},
			expected: domain.InvalidPegInGuessError{
				GameID:        gameID,
				Guess:         domain.NewCode(red, green, blue, yellow),
				AvailablePegs: domain.NewPegSet(red, green, blue),
			},
			family: domain.ErrInvalidGuess,
		},
		{
			name:     "length_checked_before_pegs",
			history:  []domain.Event{gameStarted(12)},
			command:  domain.MakeGuess{GameID: gameID, Guess: domain.CodeOf("Black")},
			expected: domain.GuessTooShortError{GameID: gameID, Guess: domain.CodeOf("Black"), RequiredLength: 4},
			family:   domain.ErrInvalidGuess,
		},
		{
			name:     "guess_after_win",
			history:  []domain.Event{gameStarted(12), wrongGuessMade(), domain.EventGameWon{GameID: gameID}},
			command:  domain.MakeGuess{GameID: gameID, Guess: secret},
			expected: domain.GameAlreadyWonError{GameID: gameID},
			family:   domain.ErrGameFinished,
		},
		{
			name:    "join_after_win",
			history: []domain.Event{gameStarted(12), wrongGuessMade(), domain.EventGameWon{GameID: gameID}},
			command: domain.JoinGame{
				GameID:        gameID,
				Secret:        secret,
				TotalAttempts: 12,
				AvailablePegs: availablePegs,
			},
			expected: domain.GameAlreadyWonError{GameID: gameID},
			family:   domain.ErrGameFinished,
		},
		{
			name:     "guess_after_loss",
			history:  []domain.Event{gameStarted(1), wrongGuessMade(), domain.EventGameLost{GameID: gameID}},
			command:  domain.MakeGuess{GameID: gameID, Guess: secret},
			expected: domain.GameAlreadyLostError{GameID: gameID},
			family:   domain.ErrGameFinished,
		},
		{
			name:    "join_after_loss",
			history: []domain.Event{gameStarted(1), wrongGuessMade(), domain.EventGameLost{GameID: gameID}},
			command: domain.JoinGame{
				GameID:        gameID,
				Secret:        secret,
				TotalAttempts: 12,
				AvailablePegs: availablePegs,
			},
			expected: domain.GameAlreadyLostError{GameID: gameID},
			family:   domain.ErrGameFinished,
		},
		{
			name:     "nil_command",
			history:  []domain.Event{gameStarted(12)},
			command:  nil,
			expected: domain.UnsupportedCommandError{GameID: "", Command: "<nil>"},
			family:   domain.ErrUnsupportedCommand,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			game := domain.ReplayGame(tc.history...)
			events, err := game.Execute(tc.command)

			assert.Nil(t, events)
			assert.Equal(t, tc.expected, err)
			assert.ErrorIs(t, err, tc.family)

			var gameErr domain.GameError
			require.ErrorAs(t, err, &gameErr)
			if tc.command != nil {
				assert.Equal(t, gameID, gameErr.AggregateID())
			}
		})
	}
}

func TestGame_Execute_GuessLostGameOnTotalAttemptsOne(t *testing.T) {
	game := domain.ReplayGame(gameStarted(1))
	guess := domain.NewCode(purple, purple, purple, purple)

	events, err := game.Execute(domain.MakeGuess{GameID: gameID, Guess: guess})
	require.NoError(t, err)
	assert.Equal(t, domain.EventGameLost{GameID: gameID}, events[len(events)-1])

	game = domain.ReplayGame(append([]domain.Event{gameStarted(1)}, events...)...)
	_, err = game.Execute(domain.MakeGuess{GameID: gameID, Guess: secret})
	assert.Equal(t, domain.GameAlreadyLostError{GameID: gameID}, err)
}

func TestGame_ApplyEvent_IgnoresUnexpectedEvents(t *testing.T) {
	notStarted := domain.NewGame()
	assert.Equal(t, notStarted, notStarted.ApplyEvent(wrongGuessMade()))
	assert.Equal(t, notStarted, notStarted.ApplyEvent(domain.EventGameWon{GameID: gameID}))

	started := domain.ReplayGame(gameStarted(12))
	assert.Equal(t, started, started.ApplyEvent(gameStarted(5)))

	won := domain.ReplayGame(gameStarted(12), domain.EventGameWon{GameID: gameID})
	assert.Equal(t, won, won.ApplyEvent(wrongGuessMade()))
	assert.Equal(t, won, won.ApplyEvent(domain.EventGameLost{GameID: gameID}))

	lost := domain.ReplayGame(gameStarted(12), domain.EventGameLost{GameID: gameID})
	assert.Equal(t, domain.StateLost, lost.State())
	assert.Equal(t, lost, lost.ApplyEvent(domain.EventGameWon{GameID: gameID}))
}

func TestGame_ApplyEvent_DoesNotChangeReceiver(t *testing.T) {
	started := domain.ReplayGame(gameStarted(12))

	next := started.ApplyEvent(wrongGuessMade())

	assert.Equal(t, 0, started.Attempts())
	assert.Equal(t, 1, next.Attempts())
}

func TestReplayGame_IsDeterministic(t *testing.T) {
	history := []domain.Event{
		gameStarted(12),
		wrongGuessMade(),
		wrongGuessMade(),
		domain.EventGuessMade{GameID: gameID, Guess: domain.Guess{Code: secret, Feedback: domain.NewFeedback(domain.OutcomeWon)}},
		domain.EventGameWon{GameID: gameID},
	}

	assert.Equal(t, domain.ReplayGame(history...), domain.ReplayGame(history...))
	assert.Equal(t, domain.StateWon, domain.ReplayGame(history...).State())
	assert.Equal(t, 3, domain.ReplayGame(history[:4]...).Attempts())
}
