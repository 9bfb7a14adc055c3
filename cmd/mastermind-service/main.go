package main

import (
	"context"

	"github.com/klwxsrx/mastermind/internal/mastermind"
	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
	"github.com/klwxsrx/mastermind/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/mastermind/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)

	container := mastermind.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.EventDispatcher(domain.Name),
		infra.Clock,
	)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
