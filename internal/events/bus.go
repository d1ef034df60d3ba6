// Package events provides the in-process publish/subscribe channel that
// decouples calculation from persistence, UI, and analytics listeners.
// The channel set is fixed and each event type carries a specific
// payload struct; see payloads.go.
package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// Type names one event channel.
type Type string

const (
	RoomAdded   Type = "room:added"
	RoomUpdated Type = "room:updated"
	RoomDeleted Type = "room:deleted"

	MaterialAdded   Type = "material:added"
	MaterialUpdated Type = "material:updated"
	MaterialDeleted Type = "material:deleted"

	CalculationUpdated   Type = "calculation:updated"
	CalculationCompleted Type = "calculation:completed"

	ExportStarted   Type = "export:started"
	ExportCompleted Type = "export:completed"
	ExportFailed    Type = "export:failed"

	SaveStarted   Type = "save:started"
	SaveCompleted Type = "save:completed"
	SaveFailed    Type = "save:failed"

	LoadStarted   Type = "load:started"
	LoadCompleted Type = "load:completed"
	LoadFailed    Type = "load:failed"

	ThemeChanged Type = "theme:changed"

	ErrorOccurred Type = "error:occurred"

	ValidationFailed Type = "validation:failed"
	ValidationPassed Type = "validation:passed"
)

// Handler receives one event payload.
type Handler func(payload any)

type listener struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous publish/subscribe channel. Handlers run on the
// emitting goroutine, in subscription order, and Emit returns only after
// every handler has completed. A panicking handler is caught and logged
// so it never prevents the remaining handlers from running.
//
// The listener collections are guarded by a single mutex so the bus can
// be shared by a multi-threaded host; dispatch itself is still
// fire-on-the-publishing-goroutine with no queuing.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	on     map[Type][]listener
	once   map[Type][]listener
	log    zerolog.Logger
}

// New creates a Bus that logs handler faults to the given logger.
// Pass zerolog.Nop() for a silent bus.
func New(log zerolog.Logger) *Bus {
	return &Bus{
		on:   map[Type][]listener{},
		once: map[Type][]listener{},
		log:  log,
	}
}

// On subscribes handler to t and returns the unsubscribe function.
// Unsubscribing twice is a no-op.
func (b *Bus) On(t Type, h Handler) (off func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.on[t] = append(b.on[t], listener{id: id, handler: h})
	return func() { b.remove(b.on, t, id) }
}

// Once subscribes handler to t for at most one delivery. The handler is
// removed before it runs, so re-entrant emits cannot fire it twice.
func (b *Bus) Once(t Type, h Handler) (off func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.once[t] = append(b.once[t], listener{id: id, handler: h})
	return func() { b.remove(b.once, t, id) }
}

func (b *Bus) remove(set map[Type][]listener, t Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	listeners := set[t]
	for i, l := range listeners {
		if l.id == id {
			set[t] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Emit delivers payload to all regular handlers for t, then to all
// one-shot handlers, in subscription order. One-shot handlers are
// consumed before dispatch.
func (b *Bus) Emit(t Type, payload any) {
	b.mu.Lock()
	regular := make([]listener, len(b.on[t]))
	copy(regular, b.on[t])
	oneShot := b.once[t]
	delete(b.once, t)
	b.mu.Unlock()

	for _, l := range regular {
		b.dispatch(t, l, payload)
	}
	for _, l := range oneShot {
		b.dispatch(t, l, payload)
	}
}

func (b *Bus) dispatch(t Type, l listener, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("event", string(t)).
				Interface("panic", r).
				Msg("event handler panicked")
		}
	}()
	l.handler(payload)
}

// Clear removes every subscription. Used at teardown and between tests.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.on = map[Type][]listener{}
	b.once = map[Type][]listener{}
}

// ListenerCount reports the number of live subscriptions for t.
func (b *Bus) ListenerCount(t Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.on[t]) + len(b.once[t])
}
