package sql

import (
	"encoding/json"
	"fmt"

	"github.com/klwxsrx/mastermind/internal/mastermind/domain"
)

func encodeEvent(evt domain.Event) (string, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return "", fmt.Errorf("marshal event %s: %w", evt.Type(), err)
	}

	return string(payload), nil
}

func decodeEvent(eventType, payload string) (domain.Event, error) {
	switch eventType {
	case domain.EventTypeGameStarted:
		return decode[domain.EventGameStarted](payload)
	case domain.EventTypeGuessMade:
		return decode[domain.EventGuessMade](payload)
	case domain.EventTypeGameWon:
		return decode[domain.EventGameWon](payload)
	case domain.EventTypeGameLost:
		return decode[domain.EventGameLost](payload)
	default:
		return nil, fmt.Errorf("unknown event type %s", eventType)
	}
}

func decode[T domain.Event](payload string) (domain.Event, error) {
	var evt T
	err := json.Unmarshal([]byte(payload), &evt)
	if err != nil {
		return nil, fmt.Errorf("unmarshal event %T: %w", evt, err)
	}

	return evt, nil
}
