// Package ddd holds the small set of contracts shared by aggregates that emit
// domain events and the infrastructure that dispatches them after commit.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate while handling a command.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// AggregateRoot exposes the events recorded since the aggregate was loaded.
// The unit of work reads them after a successful commit and clears them.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventRecorder is embedded by aggregates to collect events.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the pending events in recording order.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
