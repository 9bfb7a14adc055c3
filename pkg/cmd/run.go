package cmd

import (
	"context"
	"fmt"

	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.Job) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run stops all jobs as soon as one of them returns, jobs should return nil on context cancellation
func Run(ctx context.Context, logger log.Logger, jobs ...worker.Job) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	groupCtx, group := worker.NewFailFastGroup(ctx, 0)
	for _, job := range jobs {
		group.Do(func(ctx context.Context) error {
			defer cancel()

			err := job(ctx)
			if err != nil && groupCtx.Err() == nil {
				logger.WithError(err).Error(ctx, "running job completed with error")
				return err
			}

			return nil
		})
	}

	return group.Wait()
}
