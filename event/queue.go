package event

import (
	"sync"

	"github.com/lixenwraith/vi-snake/parameter"
)

// EventQueue buffers game events between the session controller and the router
// The controller pushes while the scheduler loop runs a tick, input or expiry;
// the shell drains it through the router after each wake
// When the ring is full the oldest unread event is dropped and counted
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   uint64 // slot of the oldest unread event
	count   uint64
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest event on overflow
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == parameter.EventQueueSize {
		eq.ring[eq.start] = GameEvent{}
		eq.start = (eq.start + 1) & parameter.EventBufferMask
		eq.count--
		eq.dropped++
	}
	eq.ring[(eq.start+eq.count)&parameter.EventBufferMask] = ev
	eq.count++
}

// Consume returns every unread event oldest first and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}
	out := make([]GameEvent, eq.count)
	for i := range out {
		idx := (eq.start + uint64(i)) & parameter.EventBufferMask
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{} // release payload
	}
	eq.start = (eq.start + eq.count) & parameter.EventBufferMask
	eq.count = 0
	return out
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.count)
}

// Dropped returns the number of events evicted before being consumed
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
