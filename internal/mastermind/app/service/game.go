//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Game=Game,SecretGenerator=SecretGenerator"
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	"github.com/klwxsrx/mastermind/pkg/persistence"
)

const (
	DefaultCodeLength    = 4
	DefaultTotalAttempts = 12

	maxConflictRetries = 5
)

var (
	ErrGameNotFound        = errors.New("game not found")
	ErrInvalidGameSettings = errors.New("invalid game settings")
)

type (
	Game interface {
		Start(ctx context.Context, in StartGameIn) (domain.GameID, error)
		Guess(ctx context.Context, id domain.GameID, guess domain.Code) (*GuessResult, error)
		Get(ctx context.Context, id domain.GameID) (*GameData, error)
	}

	SecretGenerator interface {
		Generate(length int, available domain.PegSet) (domain.Code, error)
	}

	StartGameIn struct {
		// Secret is generated when nil
		Secret        *domain.Code
		CodeLength    int
		TotalAttempts int
		AvailablePegs domain.PegSet
	}

	GuessResult struct {
		Feedback domain.Feedback
		State    domain.State
		Attempts int
	}

	GameOption func(*GameService)

	GameService struct {
		ConflictRetry func() backoff.BackOff

		transaction persistence.Transaction
		eventStore  domain.GameEventStore
		secrets     SecretGenerator
	}
)

func NewGameService(
	transaction persistence.Transaction,
	eventStore domain.GameEventStore,
	secrets SecretGenerator,
	opts ...GameOption,
) *GameService {
	s := &GameService{
		ConflictRetry: defaultConflictRetry,
		transaction:   transaction,
		eventStore:    eventStore,
		secrets:       secrets,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func WithConflictRetry(retry func() backoff.BackOff) GameOption {
	return func(s *GameService) {
		s.ConflictRetry = retry
	}
}

func (s *GameService) Start(ctx context.Context, in StartGameIn) (domain.GameID, error) {
	secret, err := s.secret(in)
	if err != nil {
		return "", err
	}

	totalAttempts := in.TotalAttempts
	if totalAttempts == 0 {
		totalAttempts = DefaultTotalAttempts
	}
	if totalAttempts < 1 {
		return "", fmt.Errorf("%w: total attempts must be positive, got %d", ErrInvalidGameSettings, in.TotalAttempts)
	}

	id := s.eventStore.NextID()
	_, err = s.execute(ctx, id, domain.JoinGame{
		GameID:        id,
		Secret:        secret,
		TotalAttempts: totalAttempts,
		AvailablePegs: in.AvailablePegs,
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *GameService) Guess(ctx context.Context, id domain.GameID, guess domain.Code) (*GuessResult, error) {
	events, err := s.execute(ctx, id, domain.MakeGuess{
		GameID: id,
		Guess:  guess,
	})
	if err != nil {
		return nil, err
	}

	data := NewGameData(id, events)
	if len(data.Guesses) == 0 {
		return nil, fmt.Errorf("guess of game %s produced no feedback", id)
	}

	return &GuessResult{
		Feedback: data.Guesses[len(data.Guesses)-1].Feedback,
		State:    data.State,
		Attempts: data.Attempts,
	}, nil
}

func (s *GameService) Get(ctx context.Context, id domain.GameID) (*GameData, error) {
	events, _, err := s.eventStore.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	return NewGameData(id, events), nil
}

// execute returns the whole stream of the game including the new events
func (s *GameService) execute(ctx context.Context, id domain.GameID, cmd domain.Command) ([]domain.Event, error) {
	var result []domain.Event
	operation := func() error {
		err := s.transaction.WithinContext(ctx, func(ctx context.Context) error {
			stored, version, err := s.eventStore.Load(ctx, id)
			if err != nil {
				return fmt.Errorf("load game %s: %w", id, err)
			}

			events, err := domain.ReplayGame(stored...).Execute(cmd)
			if err != nil {
				return err
			}

			err = s.eventStore.Append(ctx, id, version, events)
			if err != nil {
				return fmt.Errorf("append events of game %s: %w", id, err)
			}

			result = slices.Concat(stored, events)
			return nil
		}, gameLockName(id))
		if err != nil && !errors.Is(err, domain.ErrVersionConflict) {
			return backoff.Permanent(err)
		}

		return err
	}

	err := backoff.Retry(operation, backoff.WithContext(s.ConflictRetry(), ctx))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *GameService) secret(in StartGameIn) (domain.Code, error) {
	if len(in.AvailablePegs) == 0 {
		return domain.Code{}, fmt.Errorf("%w: no available pegs", ErrInvalidGameSettings)
	}

	if in.Secret != nil {
		if in.Secret.Length() == 0 {
			return domain.Code{}, fmt.Errorf("%w: empty secret", ErrInvalidGameSettings)
		}
		for _, peg := range in.Secret.Pegs() {
			if !in.AvailablePegs.Contains(peg) {
				return domain.Code{}, fmt.Errorf("%w: secret peg %s is not available", ErrInvalidGameSettings, peg)
			}
		}

		return *in.Secret, nil
	}

	length := in.CodeLength
	if length == 0 {
		length = DefaultCodeLength
	}
	if length < 1 {
		return domain.Code{}, fmt.Errorf("%w: code length must be positive, got %d", ErrInvalidGameSettings, in.CodeLength)
	}

	secret, err := s.secrets.Generate(length, in.AvailablePegs)
	if err != nil {
		return domain.Code{}, fmt.Errorf("generate secret: %w", err)
	}

	return secret, nil
}

func gameLockName(id domain.GameID) string {
	return fmt.Sprintf("%s_%s_%s", domain.Name, domain.AggregateName, id)
}

func defaultConflictRetry() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(10*time.Millisecond),
		backoff.WithMaxInterval(200*time.Millisecond),
	), maxConflictRetries)
}
