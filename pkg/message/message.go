package message

import "github.com/google/uuid"

type Message struct {
	ID    uuid.UUID
	Topic Topic
	// Key is used for topic partitioning, messages with the same key fall in the same partition
	Key     string
	Payload []byte
}
