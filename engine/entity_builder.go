package engine

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

// EntityBuilder provides a fluent, type-safe interface for constructing
// entities with components. It reserves an entity ID upfront and commits
// components as they are added.
//
// Example:
//
//	entity := engine.With(
//	    engine.With(world.NewEntity(), world.Foods, component.FoodComponent{}),
//	    world.Sizes, component.Square(0.8),
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Add(eb.entity, component)
	return eb
}

// WithPosition adds a position component to the entity being built.
// Specialized for PositionStore because it maintains the spatial index.
func WithPosition(eb *EntityBuilder, store *PositionStore, pos component.PositionComponent) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Add(eb.entity, pos)
	return eb
}

// Build finalizes entity construction and returns the entity ID.
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
