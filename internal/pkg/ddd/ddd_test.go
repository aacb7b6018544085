package ddd_test

import (
	"testing"
	"time"

	"courierhub/internal/pkg/ddd"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinged struct {
	id uuid.UUID
	at time.Time
}

func (p pinged) EventID() uuid.UUID    { return p.id }
func (p pinged) EventName() string     { return "pinged" }
func (p pinged) AggregateID() string   { return "agg-1" }
func (p pinged) OccurredAt() time.Time { return p.at }

func TestEventRecorder(t *testing.T) {
	t.Run("keeps recording order", func(t *testing.T) {
		var r ddd.EventRecorder
		first := pinged{id: uuid.New()}
		second := pinged{id: uuid.New()}

		r.Record(first)
		r.Record(second)

		events := r.DomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, first.id, events[0].EventID())
		assert.Equal(t, second.id, events[1].EventID())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		var r ddd.EventRecorder
		r.Record(pinged{id: uuid.New()})

		events := r.DomainEvents()
		events[0] = nil

		assert.NotNil(t, r.DomainEvents()[0])
	})

	t.Run("clear drops pending events", func(t *testing.T) {
		var r ddd.EventRecorder
		r.Record(pinged{id: uuid.New()})

		r.ClearDomainEvents()

		assert.Empty(t, r.DomainEvents())
	})
}
