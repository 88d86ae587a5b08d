package event

import (
	"testing"
)

// recordingHandler appends received event types to a shared log.
type recordingHandler struct {
	types []EventType
	log   *[]EventType
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*h.log = append(*h.log, ev.Type)
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

// Ordered types dispatch before unordered ones even when pushed later.
func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q, []EventType{EventGrowth, EventGameOver})

	var log []EventType
	r.Register(&recordingHandler{types: []EventType{EventGrowth, EventGameOver, EventSoundRequest}, log: &log})

	// Pushed in the order the movement tick produces them
	q.Push(GameEvent{Type: EventGameOver})
	q.Push(GameEvent{Type: EventSoundRequest})
	q.Push(GameEvent{Type: EventGrowth})

	ctx := 0
	r.DispatchAll(&ctx)

	want := []EventType{EventGrowth, EventGameOver, EventSoundRequest}
	if len(log) != len(want) {
		t.Fatalf("dispatched %d events, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, log[i], want[i])
		}
	}
}

// Within one type, FIFO order is preserved.
func TestRouterFIFOWithinType(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q, nil)

	payloads := []any{}
	r.Register(&payloadHandler{log: &payloads})

	q.Push(GameEvent{Type: EventSoundRequest, Payload: 1})
	q.Push(GameEvent{Type: EventSoundRequest, Payload: 2})
	q.Push(GameEvent{Type: EventSoundRequest, Payload: 3})

	ctx := 0
	r.DispatchAll(&ctx)

	if len(payloads) != 3 {
		t.Fatalf("dispatched %d events, want 3", len(payloads))
	}
	for i, p := range payloads {
		if p != i+1 {
			t.Errorf("position %d: payload %v, want %d", i, p, i+1)
		}
	}
}

type payloadHandler struct {
	log *[]any
}

func (h *payloadHandler) HandleEvent(ctx *int, ev GameEvent) {
	*h.log = append(*h.log, ev.Payload)
}

func (h *payloadHandler) EventTypes() []EventType {
	return []EventType{EventSoundRequest}
}

func TestRouterRegistration(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q, nil)

	if r.HasHandlers(EventGrowth) {
		t.Error("expected no handlers before registration")
	}

	var log []EventType
	r.Register(&recordingHandler{types: []EventType{EventGrowth}, log: &log})

	if !r.HasHandlers(EventGrowth) {
		t.Error("expected handler after registration")
	}
	if r.HandlerCount(EventGrowth) != 1 {
		t.Errorf("HandlerCount = %d, want 1", r.HandlerCount(EventGrowth))
	}
	if r.HasHandlers(EventGameOver) {
		t.Error("unexpected handler for unregistered type")
	}
}
