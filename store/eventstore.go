package store

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"simple-bank/events"
)

var ErrOptimisticLock = errors.New("optimistic lock error: version conflict")

// EventStore is the in-session journal of accepted account changes.
type EventStore interface {
	SaveEvents(aggregateID string, expectedVersion int, eventsToSave []events.Event) error

	GetEvents(aggregateID string) ([]events.Event, error)

	GetEventsAfterVersion(aggregateID string, version int) ([]events.Event, error)
}

type InMemoryEventStore struct {
	sync.RWMutex
	streams map[string][]events.Event
	logger  *slog.Logger
}

func NewInMemoryEventStore(logger *slog.Logger) *InMemoryEventStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventStore{
		streams: make(map[string][]events.Event),
		logger:  logger,
	}
}

// SaveEvents appends to the stream only if its current version equals
// expectedVersion and the new events continue the sequence without gaps.
func (s *InMemoryEventStore) SaveEvents(aggregateID string, expectedVersion int, newEvents []events.Event) error {
	s.Lock()
	defer s.Unlock()

	if len(newEvents) == 0 {
		s.logger.Warn("SaveEvents called with zero events", "aggregate", aggregateID)
		return nil
	}

	stream := s.streams[aggregateID]
	currentVersion := 0
	if len(stream) > 0 {
		currentVersion = stream[len(stream)-1].GetBase().Version
	}
	if currentVersion != expectedVersion {
		return fmt.Errorf("%w: expected version %d, but current version is %d for aggregate %s",
			ErrOptimisticLock, expectedVersion, currentVersion, aggregateID)
	}

	for i, event := range newEvents {
		base := event.GetBase()
		if want := expectedVersion + i + 1; base.Version != want {
			return fmt.Errorf("event sequence error for aggregate %s: expected version %d for event %T (%s), but got %d",
				aggregateID, want, event, base.EventID, base.Version)
		}
		if base.AggregateID != aggregateID {
			return fmt.Errorf("event aggregate ID mismatch: stream is for %s, but event %T (%s) has ID %s",
				aggregateID, event, base.EventID, base.AggregateID)
		}
	}

	s.streams[aggregateID] = append(stream, newEvents...)
	s.logger.Debug("events saved", "aggregate", aggregateID, "count", len(newEvents),
		"version", expectedVersion+len(newEvents))
	return nil
}

func (s *InMemoryEventStore) GetEvents(aggregateID string) ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	return slices.Clone(s.streams[aggregateID]), nil
}

func (s *InMemoryEventStore) GetEventsAfterVersion(aggregateID string, version int) ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	stream := s.streams[aggregateID]
	start := slices.IndexFunc(stream, func(e events.Event) bool {
		return e.GetBase().Version > version
	})
	if start == -1 {
		return []events.Event{}, nil
	}
	return slices.Clone(stream[start:]), nil
}
