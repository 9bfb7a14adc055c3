package main

import (
	"context"
	"time"

	"github.com/klwxsrx/mastermind/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/mastermind/pkg/cmd"
	"github.com/klwxsrx/mastermind/pkg/worker"
)

const processInterval = time.Second

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	msgOutbox := infra.MessageOutbox.MustLoad()

	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		msgOutbox.Worker,
		worker.PeriodicalJob(func(context.Context) error {
			msgOutbox.Process()
			return nil
		}, processInterval, logger),
	)
}
