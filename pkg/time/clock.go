package time

import (
	"context"
	"time"
)

const nowContextKey contextKey = iota

type (
	Clock interface {
		Now(context.Context) time.Time
	}

	// AdjustableClock lets a request or a test pin the current time through the context
	AdjustableClock interface {
		Clock
		Set(context.Context, time.Time) context.Context
		Freeze(context.Context) context.Context
	}

	clock      struct{}
	contextKey int
)

func NewClock() AdjustableClock {
	return clock{}
}

// Now is UTC with microsecond precision, the precision stored by sql databases
func (c clock) Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(nowContextKey).(time.Time); ok {
		return t
	}

	return now()
}

func (c clock) Set(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, nowContextKey, t.UTC().Truncate(time.Microsecond))
}

func (c clock) Freeze(ctx context.Context) context.Context {
	if _, ok := ctx.Value(nowContextKey).(time.Time); ok {
		return ctx
	}

	return context.WithValue(ctx, nowContextKey, now())
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
