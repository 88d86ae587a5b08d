package event

import (
	"sync"

	"github.com/lixenwraith/gridsnake/parameter"
)

// EventQueue is a small bounded FIFO owned by the tick driver. Systems push
// during a tick and the driver drains everything before the tick ends, so
// the queue is empty between ticks and signals never cross tick boundaries.
//
// Thread-Safety: a mutex covers every operation; Push is safe from any
// goroutine, Consume is called by the single driver.
//
// Overflow: oldest events dropped when full
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event, discarding the oldest entry when the queue is at
// capacity. A full queue means the driver stopped draining, and the newest
// signals are the ones still worth handling.
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) >= parameter.EventQueueSize {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
	}
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue.
// Returns nil when nothing is pending.
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]GameEvent, 0, parameter.EventQueueSize)
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
