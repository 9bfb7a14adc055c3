package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

func TermSignalAwaiter(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-ctx.Done()
	return nil
}
