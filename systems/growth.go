package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
)

// GrowthSystem consumes growth signals. On the first growth event of a tick
// it spawns exactly one segment at the cell the tail vacated this tick and
// appends it to the chain. Further growth events in the same tick are
// equivalent to one: the signal is "did at least one arrive".
type GrowthSystem struct {
	ctx *engine.GameContext

	// Tick deduplication: several foods on one cell push several events
	lastHandledTick uint64
}

// NewGrowthSystem creates a new growth handler.
func NewGrowthSystem(ctx *engine.GameContext) *GrowthSystem {
	return &GrowthSystem{ctx: ctx}
}

// EventTypes returns the event types this handler processes.
func (s *GrowthSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGrowth}
}

// HandleEvent appends one grown segment for this tick.
func (s *GrowthSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	state := world.Resource.Game.State

	tick := state.MoveTicks()
	if s.lastHandledTick == tick {
		return
	}
	s.lastHandledTick = tick

	tailPos, ok := state.LastTail()
	if !ok {
		// Reachable only if growth fires before the round's first movement
		// tick, which the scheduling order rules out
		panic("growth with no recorded tail position: ordering contract violated")
	}

	segment := SpawnSegment(world, tailPos)
	state.AppendSegment(segment)

	s.ctx.Log.Debug("snake grew",
		zap.Int("length", state.SegmentCount()),
		zap.Int("x", tailPos.X),
		zap.Int("y", tailPos.Y),
	)
}
