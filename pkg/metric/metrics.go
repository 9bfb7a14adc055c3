package metric

import "time"

type (
	Labels map[string]any

	Metrics interface {
		With(Labels) Metrics
		WithLabel(name string, value any) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}
)
