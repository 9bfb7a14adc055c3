package worker

import (
	"context"
	"time"

	"github.com/klwxsrx/mastermind/pkg/log"
)

func PeriodicalJob(job Job, every time.Duration, logger log.Logger) Job {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := job(ctx); err != nil {
					logger.WithError(err).Error(ctx, "periodical job completed with error")
				}
			case <-ctx.Done():
				return nil
			}
		}
	}
}
