package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

type BaseEvent struct {
	EventID     uuid.UUID `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	Version     int       `json:"version"` // Stream version *after* this event.
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
}

type Event interface {
	GetBase() BaseEvent
}

func (e BaseEvent) GetBase() BaseEvent {
	return e
}

const (
	DepositMadeType    EventType = "DepositMade"
	WithdrawalMadeType EventType = "WithdrawalMade"
)

// NewBaseEvent stamps the event with the time the underlying change happened,
// so the journal and the statement agree on when it occurred.
func NewBaseEvent(aggregateID string, version int, eventType EventType, at time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New(),
		AggregateID: aggregateID,
		Version:     version,
		Timestamp:   at,
		Type:        eventType,
	}
}
