package time_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgtime "github.com/klwxsrx/mastermind/pkg/time"
)

func TestClock(t *testing.T) {
	clock := pkgtime.NewClock()
	ctx := context.Background()

	now := clock.Now(ctx)
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, now, now.Truncate(time.Microsecond))

	fixed := time.Date(2024, 5, 1, 10, 0, 0, 1500, time.FixedZone("UTC+3", 3*60*60))
	fixedCtx := clock.Set(ctx, fixed)
	assert.Equal(t, time.Date(2024, 5, 1, 7, 0, 0, 1000, time.UTC), clock.Now(fixedCtx))

	frozenCtx := clock.Freeze(ctx)
	assert.Equal(t, clock.Now(frozenCtx), clock.Now(frozenCtx))
	assert.Equal(t, fixedCtx, clock.Freeze(fixedCtx))
}
