package subtrack

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventKind identifies a subscription lifecycle transition.
type EventKind string

const (
	EventAdded         EventKind = "added"
	EventRemoved       EventKind = "removed"
	EventCancelled     EventKind = "cancelled"
	EventRenewed       EventKind = "renewed"
	EventAutoCancelled EventKind = "auto_cancelled"
)

// Event records a single lifecycle transition of a subscription.
type Event struct {
	ID   string
	Name string
	Kind EventKind
	Cost decimal.Decimal
	At   time.Time
}

// EventLog records subscription lifecycle events for inspection.
type EventLog interface {
	// Append adds an event to the log, assigning its ID.
	Append(ctx context.Context, event *Event) error
	// Recent retrieves up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]*Event, error)
}

// InMemoryEventLog is a simple in-memory implementation
type InMemoryEventLog struct {
	events []*Event
	mu     sync.RWMutex
}

func NewInMemoryEventLog() *InMemoryEventLog {
	return &InMemoryEventLog{}
}

func (l *InMemoryEventLog) Append(ctx context.Context, event *Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	event.ID = uuid.NewString()
	l.events = append(l.events, event)
	return nil
}

func (l *InMemoryEventLog) Recent(ctx context.Context, limit int) ([]*Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 || limit > len(l.events) {
		limit = len(l.events)
	}

	recent := make([]*Event, 0, limit)
	for i := len(l.events) - 1; i >= len(l.events)-limit; i-- {
		recent = append(recent, l.events[i])
	}
	return recent, nil
}
