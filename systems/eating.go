package systems

import (
	"time"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// EatingSystem checks the head's new position against every food entity,
// immediately after movement on the same tick cadence. Each food on the head
// cell is despawned and emits one growth event; stacked foods (possible via
// the unchecked spawner) each emit their own.
type EatingSystem struct {
	ctx *engine.GameContext
}

// NewEatingSystem creates a new eating system.
func NewEatingSystem(ctx *engine.GameContext) *EatingSystem {
	return &EatingSystem{ctx: ctx}
}

// Priority returns the system's priority.
func (s *EatingSystem) Priority() int {
	return parameter.PriorityEating
}

// Update runs the food-collision check for this movement tick.
func (s *EatingSystem) Update(world *engine.World, dt time.Duration) {
	head, ok := world.Resource.Game.State.Head()
	if !ok {
		return
	}
	headPos, ok := world.Positions.Get(head)
	if !ok {
		return
	}

	for _, food := range world.Foods.All() {
		pos, ok := world.Positions.Get(food)
		if !ok {
			continue
		}
		if pos == headPos {
			world.DestroyEntity(food)
			world.PushEvent(event.EventGrowth, nil)
			world.PushEvent(event.EventSoundRequest, core.SoundEat)
		}
	}
}
