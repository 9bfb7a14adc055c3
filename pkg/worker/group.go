package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Job func(context.Context) error

type Group interface {
	Do(Job)
	Wait() error
}

type group struct {
	ctx  context.Context
	impl *errgroup.Group
}

// NewFailFastGroup cancels the returned context after the first job error, Wait returns that error
func NewFailFastGroup(ctx context.Context, maxWorkers int) (context.Context, Group) {
	impl, ctx := errgroup.WithContext(ctx)
	if maxWorkers > 0 {
		impl.SetLimit(maxWorkers)
	}

	return ctx, &group{
		ctx:  ctx,
		impl: impl,
	}
}

func (g *group) Do(job Job) {
	g.impl.Go(func() error {
		return job(g.ctx)
	})
}

func (g *group) Wait() error {
	return g.impl.Wait()
}
