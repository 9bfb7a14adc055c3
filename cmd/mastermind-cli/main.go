package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/klwxsrx/mastermind/internal/mastermind/app/service"
	"github.com/klwxsrx/mastermind/internal/mastermind/cli"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	"github.com/klwxsrx/mastermind/internal/mastermind/infra/http/client"
	"github.com/klwxsrx/mastermind/internal/mastermind/infra/memory"
	"github.com/klwxsrx/mastermind/internal/mastermind/infra/secret"
	"github.com/klwxsrx/mastermind/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/mastermind/internal/pkg/http"
	"github.com/klwxsrx/mastermind/pkg/env"
	"github.com/klwxsrx/mastermind/pkg/persistence/stub"
)

const serviceURLEnv = "MASTERMIND_SERVICE_URL"

func main() {
	pegs := flag.String("pegs", "Red,Green,Blue,Yellow,Purple,Pink", "comma separated available pegs")
	length := flag.Int("length", service.DefaultCodeLength, "code length")
	attempts := flag.Int("attempts", service.DefaultTotalAttempts, "total attempts")
	offline := flag.Bool("offline", false, "play without the service")
	flag.Parse()

	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()

	err := play(ctx, infra, *offline, service.StartGameIn{
		Secret:        nil,
		CodeLength:    *length,
		TotalAttempts: *attempts,
		AvailablePegs: domain.PegSetOf(strings.Split(*pegs, ",")...),
	})
	infra.Close(ctx)
	if err != nil {
		logger.WithError(err).Error(ctx, "game failed")
		os.Exit(1)
	}
}

func play(ctx context.Context, infra *cmd.InfrastructureContainer, offline bool, settings service.StartGameIn) error {
	player := cli.NewPlayer(gameService(infra, offline), os.Stdin, os.Stdout)

	state, err := player.Play(ctx, settings)
	if err != nil {
		return err
	}
	if !state.IsFinished() {
		_, _ = fmt.Fprintln(os.Stderr, "game is not finished")
	}

	return nil
}

// gameService plays against the service when its url is set
func gameService(infra *cmd.InfrastructureContainer, offline bool) service.Game {
	serviceURL := env.Must(env.ParseOptional[string](serviceURLEnv))
	if offline || serviceURL == nil {
		return service.NewGameService(stub.NewTransaction(), memory.NewGameEventStore(nil), secret.NewGenerator())
	}

	return client.NewGameService(
		infra.HTTPClientFactory.MustLoad().MustInitClient(commonhttp.DestinationMastermindService),
	)
}
