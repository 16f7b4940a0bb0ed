package events

import "time"

const (
	AccountCreated = "account.created"
)

const (
	AccountEventsStream = "account.events"
)

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountCreatedEvent struct {
	ID      uint64 `json:"id"`
	Alias   string `json:"alias"`
	Balance int32  `json:"balance"`
}
