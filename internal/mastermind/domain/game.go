package domain

import (
	"fmt"
	"maps"
)

const (
	StateNotStarted State = iota
	StateStarted
	StateWon
	StateLost
)

var stateNames = map[State]string{
	StateNotStarted: "NOT_STARTED",
	StateStarted:    "STARTED",
	StateWon:        "WON",
	StateLost:       "LOST",
}

type (
	State int

	// Game is a snapshot of a single game, derived by folding its events.
	// Snapshots are values: Execute never changes the receiver and ApplyEvent returns the next snapshot.
	Game struct {
		state   State
		started startedGame
	}

	startedGame struct {
		secret        Code
		attempts      int
		totalAttempts int
		availablePegs PegSet
	}
)

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) IsFinished() bool {
	return s == StateWon || s == StateLost
}

func NewGame() Game {
	return Game{state: StateNotStarted}
}

func ReplayGame(events ...Event) Game {
	game := NewGame()
	for _, evt := range events {
		game = game.ApplyEvent(evt)
	}

	return game
}

func (g Game) State() State {
	return g.state
}

func (g Game) Secret() Code {
	return g.started.secret
}

func (g Game) Attempts() int {
	return g.started.attempts
}

func (g Game) TotalAttempts() int {
	return g.started.totalAttempts
}

func (g Game) AvailablePegs() PegSet {
	return maps.Clone(g.started.availablePegs)
}

// Execute returns either a non-empty list of events or an error, never both.
func (g Game) Execute(cmd Command) ([]Event, error) {
	switch g.state {
	case StateNotStarted:
		return g.executeNotStarted(cmd)
	case StateStarted:
		return g.started.execute(cmd)
	case StateWon:
		return nil, GameAlreadyWonError{GameID: commandGameID(cmd)}
	case StateLost:
		return nil, GameAlreadyLostError{GameID: commandGameID(cmd)}
	default:
		return nil, fmt.Errorf("unknown game state %v", g.state)
	}
}

func (g Game) ApplyEvent(evt Event) Game {
	switch g.state {
	case StateNotStarted:
		started, ok := evt.(EventGameStarted)
		if !ok {
			return g
		}

		return Game{
			state: StateStarted,
			started: startedGame{
				secret:        started.Secret,
				attempts:      0,
				totalAttempts: started.TotalAttempts,
				availablePegs: maps.Clone(started.AvailablePegs),
			},
		}
	case StateStarted:
		switch evt.(type) {
		case EventGuessMade:
			next := g
			next.started.attempts++
			return next
		case EventGameWon:
			return Game{state: StateWon}
		case EventGameLost:
			return Game{state: StateLost}
		}
	}

	return g
}

func (g Game) executeNotStarted(cmd Command) ([]Event, error) {
	switch c := cmd.(type) {
	case JoinGame:
		return []Event{EventGameStarted{
			GameID:        c.GameID,
			Secret:        c.Secret,
			TotalAttempts: c.TotalAttempts,
			AvailablePegs: c.AvailablePegs,
		}}, nil
	case MakeGuess:
		return nil, GameNotStartedError{GameID: c.GameID}
	default:
		return nil, unsupportedCommand(cmd)
	}
}

func (g startedGame) execute(cmd Command) ([]Event, error) {
	switch c := cmd.(type) {
	case JoinGame:
		return nil, GameAlreadyStartedError{GameID: c.GameID}
	case MakeGuess:
		return g.makeGuess(c)
	default:
		return nil, unsupportedCommand(cmd)
	}
}

func (g startedGame) makeGuess(cmd MakeGuess) ([]Event, error) {
	if err := g.validateGuess(cmd); err != nil {
		return nil, err
	}

	feedback := g.feedbackOn(cmd.Guess)
	events := []Event{EventGuessMade{
		GameID: cmd.GameID,
		Guess: Guess{
			Code:     cmd.Guess,
			Feedback: feedback,
		},
	}}

	switch feedback.Outcome {
	case OutcomeWon:
		events = append(events, EventGameWon{GameID: cmd.GameID})
	case OutcomeLost:
		events = append(events, EventGameLost{GameID: cmd.GameID})
	case OutcomeInProgress:
	}

	return events, nil
}

func (g startedGame) validateGuess(cmd MakeGuess) error {
	switch {
	case cmd.Guess.Length() < g.secret.Length():
		return GuessTooShortError{
			GameID:         cmd.GameID,
			Guess:          cmd.Guess,
			RequiredLength: g.secret.Length(),
		}
	case cmd.Guess.Length() > g.secret.Length():
		return GuessTooLongError{
			GameID:         cmd.GameID,
			Guess:          cmd.Guess,
			RequiredLength: g.secret.Length(),
		}
	}

	for _, peg := range cmd.Guess.pegs {
		if !g.availablePegs.Contains(peg) {
			return InvalidPegInGuessError{
				GameID:        cmd.GameID,
				Guess:         cmd.Guess,
				AvailablePegs: g.availablePegs,
			}
		}
	}

	return nil
}

func unsupportedCommand(cmd Command) error {
	return UnsupportedCommandError{
		GameID:  commandGameID(cmd),
		Command: fmt.Sprintf("%T", cmd),
	}
}
