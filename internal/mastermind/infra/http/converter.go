package http

import (
	"fmt"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
)

var states = []domain.State{
	domain.StateNotStarted,
	domain.StateStarted,
	domain.StateWon,
	domain.StateLost,
}

func ParseState(s string) (domain.State, error) {
	for _, state := range states {
		if state.String() == s {
			return state, nil
		}
	}

	return 0, fmt.Errorf("unknown game state %s", s)
}

func ToFeedbackOut(feedback domain.Feedback) FeedbackOut {
	marks := make([]string, 0, len(feedback.Marks))
	for _, mark := range feedback.Marks {
		marks = append(marks, string(mark))
	}

	return FeedbackOut{
		Outcome: string(feedback.Outcome),
		Marks:   marks,
	}
}

func ToFeedback(out FeedbackOut) domain.Feedback {
	marks := make([]domain.Mark, 0, len(out.Marks))
	for _, mark := range out.Marks {
		marks = append(marks, domain.Mark(mark))
	}

	return domain.NewFeedback(domain.Outcome(out.Outcome), marks...)
}

func ToGameOut(data *service.GameData) GameOut {
	guesses := make([]GuessOut, 0, len(data.Guesses))
	for _, guess := range data.Guesses {
		guesses = append(guesses, GuessOut{
			Code:     guess.Code.Names(),
			Feedback: ToFeedbackOut(guess.Feedback),
		})
	}

	var secret []string
	if data.Secret != nil {
		secret = data.Secret.Names()
	}

	return GameOut{
		ID:            data.ID.String(),
		State:         data.State.String(),
		Attempts:      data.Attempts,
		TotalAttempts: data.TotalAttempts,
		AvailablePegs: data.AvailablePegs.Names(),
		Guesses:       guesses,
		Secret:        secret,
	}
}

func ToGameData(out GameOut) (*service.GameData, error) {
	state, err := ParseState(out.State)
	if err != nil {
		return nil, err
	}

	var guesses []domain.Guess
	for _, guess := range out.Guesses {
		guesses = append(guesses, domain.Guess{
			Code:     domain.CodeOf(guess.Code...),
			Feedback: ToFeedback(guess.Feedback),
		})
	}

	var secret *domain.Code
	if len(out.Secret) > 0 {
		code := domain.CodeOf(out.Secret...)
		secret = &code
	}

	return &service.GameData{
		ID:            domain.GameID(out.ID),
		State:         state,
		Attempts:      out.Attempts,
		TotalAttempts: out.TotalAttempts,
		AvailablePegs: domain.PegSetOf(out.AvailablePegs...),
		Guesses:       guesses,
		Secret:        secret,
	}, nil
}
