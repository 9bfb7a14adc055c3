package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/mastermind/pkg/event"
)

type testEvent struct{}

func (testEvent) Type() string {
	return "test.happened"
}

func TestNewEnvelope_IDIsStablePerStreamPosition(t *testing.T) {
	first := event.NewEnvelope("game", "42", 1, testEvent{})
	again := event.NewEnvelope("game", "42", 1, testEvent{})
	next := event.NewEnvelope("game", "42", 2, testEvent{})
	other := event.NewEnvelope("game", "43", 1, testEvent{})

	assert.Equal(t, first.ID, again.ID)
	assert.NotEqual(t, first.ID, next.ID)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, "42", first.AggregateID)
	assert.Equal(t, 2, next.Version)
}
