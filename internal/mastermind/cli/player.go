package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
)

// Player runs a single game reading guesses line by line, pegs are separated by spaces or commas
type Player struct {
	game service.Game
	in   *bufio.Scanner
	out  io.Writer
}

func NewPlayer(game service.Game, in io.Reader, out io.Writer) *Player {
	return &Player{
		game: game,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Play returns the final state of the game, input end leaves the game unfinished
func (p *Player) Play(ctx context.Context, settings service.StartGameIn) (domain.State, error) {
	gameID, err := p.game.Start(ctx, settings)
	if err != nil {
		return domain.StateNotStarted, fmt.Errorf("start game: %w", err)
	}

	data, err := p.game.Get(ctx, gameID)
	if err != nil {
		return domain.StateNotStarted, fmt.Errorf("get game: %w", err)
	}
	p.printf(
		"Game %s started: %d attempts, pegs: %s\n",
		gameID,
		data.TotalAttempts,
		strings.Join(data.AvailablePegs.Names(), ", "),
	)

	state := data.State
	for !state.IsFinished() {
		p.printf("Guess %d/%d> ", data.Attempts+1, data.TotalAttempts)
		guess, ok := p.readGuess()
		if !ok {
			p.printf("\n")
			return state, p.in.Err()
		}
		if guess.Length() == 0 {
			continue
		}

		result, err := p.game.Guess(ctx, gameID, guess)
		if errors.Is(err, domain.ErrInvalidGuess) {
			p.printf("Invalid guess: %s\n", err)
			continue
		}
		if err != nil {
			return state, fmt.Errorf("make guess: %w", err)
		}

		state = result.State
		data.Attempts = result.Attempts
		p.printf("%s\n", formatFeedback(result.Feedback))
	}

	data, err = p.game.Get(ctx, gameID)
	if err != nil {
		return state, fmt.Errorf("get game: %w", err)
	}

	var secret string
	if data.Secret != nil {
		secret = strings.Join(data.Secret.Names(), " ")
	}
	switch state {
	case domain.StateWon:
		p.printf("You won in %d attempts, the code is %s\n", data.Attempts, secret)
	case domain.StateLost:
		p.printf("You lost, the code was %s\n", secret)
	case domain.StateNotStarted, domain.StateStarted:
	}

	return state, nil
}

func (p *Player) readGuess() (domain.Code, bool) {
	if !p.in.Scan() {
		return domain.Code{}, false
	}

	names := strings.FieldsFunc(p.in.Text(), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return domain.CodeOf(names...), true
}

func (p *Player) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func formatFeedback(feedback domain.Feedback) string {
	return fmt.Sprintf("black: %d, white: %d", feedback.BlackMarks(), feedback.WhiteMarks())
}
