package event

// Handler processes specific event types within a context T
// Systems implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch, once per movement tick
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order within a type
//   - Types are dispatched in a fixed order, not raw FIFO: movement pushes
//     EventGameOver before eating pushes EventGrowth, but growth must be
//     applied to the old chain before the reset replaces it
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	order    []EventType
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue.
// order lists event types in dispatch precedence; types not listed are
// dispatched after the ordered ones, in FIFO order.
func NewRouter[T any](queue *EventQueue, order []EventType) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		order:    order,
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers.
// Events are grouped by type and groups run in the router's dispatch order;
// within a group the original FIFO order is preserved.
func (r *Router[T]) DispatchAll(ctx T) {
	events := r.queue.Consume()
	if len(events) == 0 {
		return
	}

	dispatched := make([]bool, len(events))
	for _, t := range r.order {
		for i, ev := range events {
			if ev.Type == t {
				r.dispatch(ctx, ev)
				dispatched[i] = true
			}
		}
	}
	for i, ev := range events {
		if !dispatched[i] {
			r.dispatch(ctx, ev)
		}
	}
}

func (r *Router[T]) dispatch(ctx T, ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
