package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	mastermindhttp "github.com/klwxsrx/mastermind/internal/mastermind/infra/http"
	pkghttp "github.com/klwxsrx/mastermind/pkg/http"
)

var (
	startGameRoute = pkghttp.Route{Method: http.MethodPost, URL: "/games"}
	makeGuessRoute = pkghttp.Route{Method: http.MethodPost, URL: "/games/{gameID}/guesses"}
	getGameRoute   = pkghttp.Route{Method: http.MethodGet, URL: "/games/{gameID}"}
)

type gameService struct {
	client pkghttp.Client
}

func NewGameService(client pkghttp.Client) service.Game {
	return gameService{client: client}
}

func (s gameService) Start(ctx context.Context, in service.StartGameIn) (domain.GameID, error) {
	var secret []string
	if in.Secret != nil {
		secret = in.Secret.Names()
	}

	resp, err := s.client.NewRequest(ctx, startGameRoute).
		SetJSONBody(mastermindhttp.StartGameIn{
			Secret:        secret,
			CodeLength:    in.CodeLength,
			TotalAttempts: in.TotalAttempts,
			AvailablePegs: in.AvailablePegs.Names(),
		}).
		Send()
	if err != nil {
		return "", fmt.Errorf("request mastermind.startGame: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != http.StatusCreated {
		return "", responseError(resp, "mastermind.startGame")
	}
	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[mastermindhttp.StartGameOut](), nil)
	if err != nil {
		return "", fmt.Errorf("mastermind.startGame response: %w", err)
	}

	return domain.GameID(body.ID), nil
}

func (s gameService) Guess(ctx context.Context, id domain.GameID, guess domain.Code) (*service.GuessResult, error) {
	resp, err := s.client.NewRequest(ctx, makeGuessRoute).
		SetPathParam("gameID", id.String()).
		SetJSONBody(mastermindhttp.MakeGuessIn{Guess: guess.Names()}).
		Send()
	if err != nil {
		return nil, fmt.Errorf("request mastermind.makeGuess: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, responseError(resp, "mastermind.makeGuess")
	}
	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[mastermindhttp.MakeGuessOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("mastermind.makeGuess response: %w", err)
	}

	state, err := mastermindhttp.ParseState(body.State)
	if err != nil {
		return nil, fmt.Errorf("mastermind.makeGuess response: %w", err)
	}

	return &service.GuessResult{
		Feedback: mastermindhttp.ToFeedback(body.FeedbackOut),
		State:    state,
		Attempts: body.Attempts,
	}, nil
}

func (s gameService) Get(ctx context.Context, id domain.GameID) (*service.GameData, error) {
	resp, err := s.client.NewRequest(ctx, getGameRoute).
		SetPathParam("gameID", id.String()).
		Send()
	if err != nil {
		return nil, fmt.Errorf("request mastermind.getGame: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, responseError(resp, "mastermind.getGame")
	}
	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[mastermindhttp.GameOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("mastermind.getGame response: %w", err)
	}

	data, err := mastermindhttp.ToGameData(body)
	if err != nil {
		return nil, fmt.Errorf("mastermind.getGame response: %w", err)
	}

	return data, nil
}
