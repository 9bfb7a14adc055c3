package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/worker"
)

func TestFailFastGroup_CancelsOnError(t *testing.T) {
	ctx, group := worker.NewFailFastGroup(context.Background(), 0)
	expectedErr := errors.New("unexpected")

	group.Do(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	group.Do(func(context.Context) error {
		return expectedErr
	})

	assert.ErrorIs(t, group.Wait(), expectedErr)
	assert.Error(t, ctx.Err())
}

func TestPeriodicalJob_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	job := worker.PeriodicalJob(func(context.Context) error {
		if calls.Add(1) == 3 {
			cancel()
		}
		return errors.New("logged and ignored")
	}, time.Millisecond, log.New(log.LevelDisabled))

	assert.NoError(t, job(ctx))
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}
