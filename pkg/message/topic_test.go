package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/mastermind/pkg/message"
)

func TestNewTopic(t *testing.T) {
	tests := []struct {
		name   string
		topic  message.Topic
		expect string
	}{
		{
			name:   "base_name_only",
			topic:  message.NewTopic("DomainEvent"),
			expect: "domain-event",
		},
		{
			name:   "domain_event",
			topic:  message.NewDomainEventTopic("mastermind", "game"),
			expect: "domain-event.mastermind-domain.game-aggregate",
		},
		{
			name:   "names_in_kebab_case",
			topic:  message.NewDomainEventTopic("GameCatalog", "PlayerSession"),
			expect: "domain-event.game-catalog-domain.player-session-aggregate",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, tc.topic.String())
		})
	}
}
