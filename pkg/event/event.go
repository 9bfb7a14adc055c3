package event

import (
	"fmt"

	"github.com/google/uuid"
)

var envelopeNamespace = uuid.MustParse("6f1c2d4e-8a3b-4c5d-9e7f-0a1b2c3d4e5f")

type (
	Event interface {
		// Type must be unique within the aggregate
		Type() string
	}

	// Envelope is an event placed into the aggregate stream at Version.
	Envelope struct {
		ID            uuid.UUID
		AggregateName string
		AggregateID   string
		Version       int
		Event         Event
	}
)

func NewEnvelope(aggregateName, aggregateID string, version int, evt Event) Envelope {
	return Envelope{
		ID:            EnvelopeID(aggregateName, aggregateID, version),
		AggregateName: aggregateName,
		AggregateID:   aggregateID,
		Version:       version,
		Event:         evt,
	}
}

// EnvelopeID is stable for the same stream position, so redelivered events keep their identity.
func EnvelopeID(aggregateName, aggregateID string, version int) uuid.UUID {
	return uuid.NewSHA1(envelopeNamespace, []byte(fmt.Sprintf("%s/%s/%d", aggregateName, aggregateID, version)))
}
