// Package pubsub provides the change-notification primitive shared by the
// appointment, notification, and wishlist stores: a flat synchronous fan-out
// with no filtering, priorities, or cancellation semantics.
package pubsub

import "sync"

type subscriber struct {
	id uint64
	fn func()
}

// Hub fans a change signal out to registered callbacks.
//
// Callbacks are invoked synchronously on the broadcasting goroutine, in
// registration order, after the owning store has fully applied its mutation.
// A callback that mutates the store again triggers a nested broadcast; there
// is no recursion guard. Callbacks must not panic.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscriber
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn and returns its unsubscribe function. Calling the
// returned function more than once is a no-op after the first call.
func (h *Hub) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, sub := range h.subs {
			if sub.id == id {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// Broadcast invokes every currently-registered callback once, in
// registration order. The subscriber list is snapshotted first, so callbacks
// may subscribe, unsubscribe, or broadcast without deadlocking; additions
// made by a callback are only seen by subsequent broadcasts.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	snapshot := make([]subscriber, len(h.subs))
	copy(snapshot, h.subs)
	h.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn()
	}
}

// Len reports the number of registered subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
