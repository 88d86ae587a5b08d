package engine

import (
	"sync"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
)

// World contains all entities and their components using typed stores.
// All component stores are explicitly typed for compile-time type safety.
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Component Stores (public for direct system access)
	Positions *PositionStore
	Heads     *Store[component.SnakeHeadComponent]
	Segments  *Store[component.SnakeSegmentComponent]
	Foods     *Store[component.FoodComponent]
	Sizes     *Store[component.SizeComponent]

	// Singleton resources, accessed via World.Resource
	Resource *Resource

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// NewWorld creates a new ECS world with all component stores initialized.
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Positions:    NewPositionStore(),
		Heads:        NewStore[component.SnakeHeadComponent](),
		Segments:     NewStore[component.SnakeSegmentComponent](),
		Foods:        NewStore[component.FoodComponent](),
		Sizes:        NewStore[component.SizeComponent](),
		Resource:     &Resource{},
	}

	// Register all stores for lifecycle operations
	w.allStores = []AnyStore{
		w.Positions,
		w.Heads,
		w.Segments,
		w.Foods,
		w.Sizes,
	}

	return w
}

// CreateEntity reserves a new entity ID without adding any components.
// Use NewEntity for transactional entity creation.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity.
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Clear removes all entities and components from the world.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// HasAnyComponent checks if an entity has at least one component.
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// PushEvent emits a game event onto the shared queue.
// This is the communication path between systems.
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resource.Event == nil {
		return // Not yet wired
	}
	w.Resource.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
	})
}
