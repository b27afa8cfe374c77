// Package bus is the in-process publish/subscribe registry behind the
// simulated real-time feed. Delivery is synchronous and follows subscription
// order; there is no replay for late subscribers.
package bus

import (
	"sync"

	"go.uber.org/zap"
)

// Event names carried by the bus.
type Event string

const (
	EventNewTransaction Event = "new_transaction"
	EventNewAlert       Event = "new_alert"
)

// Handler receives the published payload (models.Transaction or models.Alert).
type Handler func(payload interface{})

// Subscription is the removable handle returned by Subscribe.
type Subscription struct {
	event Event
	id    uint64
}

type entry struct {
	id uint64
	fn Handler
}

type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[Event][]entry
	logger   *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[Event][]entry),
		logger:   logger,
	}
}

// Subscribe registers a handler for the event. Handlers fire in subscription
// order on publish.
func (b *Bus) Subscribe(event Event, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[event] = append(b.handlers[event], entry{id: b.nextID, fn: h})
	return Subscription{event: event, id: b.nextID}
}

// Unsubscribe removes the handler behind the given handle. Unknown handles
// are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[sub.event]
	filtered := entries[:0]
	for _, e := range entries {
		if e.id != sub.id {
			filtered = append(filtered, e)
		}
	}
	b.handlers[sub.event] = filtered
}

// Publish invokes every handler registered for the event, synchronously and
// in subscription order. The handler list is copied under the lock so a
// handler may subscribe or unsubscribe without deadlocking.
func (b *Bus) Publish(event Event, payload interface{}) {
	b.mu.Lock()
	entries := make([]entry, len(b.handlers[event]))
	copy(entries, b.handlers[event])
	b.mu.Unlock()

	b.logger.Debug("publishing event", zap.String("event", string(event)), zap.Int("handlers", len(entries)))
	for _, e := range entries {
		e.fn(payload)
	}
}
