package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
)

// GameOverSystem consumes collision signals. It despawns every food entity
// and every segment-tagged entity (unconditionally, regardless of chain
// membership), then respawns the default 2-segment chain. The reset is a
// full replacement, atomic within the tick; there is no terminal state.
type GameOverSystem struct {
	ctx *engine.GameContext

	lastHandledTick uint64
}

// NewGameOverSystem creates a new game-over handler.
func NewGameOverSystem(ctx *engine.GameContext) *GameOverSystem {
	return &GameOverSystem{ctx: ctx}
}

// EventTypes returns the event types this handler processes.
func (s *GameOverSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameOver}
}

// HandleEvent resets the world for a new round.
func (s *GameOverSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	state := world.Resource.Game.State

	tick := state.MoveTicks()
	if s.lastHandledTick == tick {
		return
	}
	s.lastHandledTick = tick

	finalLength := state.SegmentCount()

	for _, e := range world.Foods.All() {
		world.DestroyEntity(e)
	}
	for _, e := range world.Segments.All() {
		world.DestroyEntity(e)
	}

	SpawnSnake(world)
	round := state.IncrementRounds()

	world.PushEvent(event.EventSoundRequest, core.SoundGameOver)

	s.ctx.Log.Info("round over",
		zap.Uint64("round", round),
		zap.Int("final_length", finalLength),
		zap.Uint64("tick", tick),
	)
}
