package event

import (
	"sync"
	"sync/atomic"
)

// Handler receives the payload published for a topic.
type Handler func(payload any)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	topic Topic
	id    uint64
}

// Bus is a synchronous topic bus. Handlers run on the publisher's
// goroutine in registration order. Subscription management is safe for
// concurrent use; delivery itself is single-threaded in this application
// (the UI loop).
type Bus struct {
	mu     sync.RWMutex
	subs   map[Topic][]entry
	nextID atomic.Uint64

	published atomic.Uint64
	delivered atomic.Uint64
}

type entry struct {
	id      uint64
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]entry)}
}

// Subscribe registers a handler for an exact topic.
func (b *Bus) Subscribe(t Topic, h Handler) (Subscription, error) {
	if h == nil {
		return Subscription{}, ErrNilHandler
	}
	if t == "" {
		return Subscription{}, ErrInvalidTopic
	}

	id := b.nextID.Add(1)

	b.mu.Lock()
	b.subs[t] = append(b.subs[t], entry{id: id, handler: h})
	b.mu.Unlock()

	return Subscription{topic: t, id: id}, nil
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.subs[sub.topic]
	for i, e := range entries {
		if e.id == sub.id {
			b.subs[sub.topic] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers the payload to every handler registered for the topic.
func (b *Bus) Publish(t Topic, payload any) {
	b.mu.RLock()
	entries := b.subs[t]
	handlers := make([]Handler, len(entries))
	for i, e := range entries {
		handlers[i] = e.handler
	}
	b.mu.RUnlock()

	b.published.Add(1)
	for _, h := range handlers {
		h(payload)
		b.delivered.Add(1)
	}
}

// Stats reports bus counters.
type Stats struct {
	Published uint64
	Delivered uint64
}

// Stats returns current bus statistics.
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
	}
}
