package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

// MovementSystem is the state-advance core. Each movement tick it snapshots
// the chain's positions, steps and wraps the head, detects self-collision
// against the snapshot, shifts every body segment to its predecessor's old
// cell, and records the vacated tail cell for growth.
type MovementSystem struct {
	ctx *engine.GameContext
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

// Priority returns the system's priority.
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update advances the snake by one movement tick.
//
// Snapshotting all old positions before mutating keeps the shift free of
// order-dependent corruption: each segment's new cell depends only on the
// previous tick's state, never on a sibling already updated this tick.
func (s *MovementSystem) Update(world *engine.World, dt time.Duration) {
	state := world.Resource.Game.State
	cfg := world.Resource.Config

	chain := state.Segments()
	if len(chain) == 0 {
		panic("movement tick with no snake segments: initialization contract broken")
	}

	headEntity := chain[0]
	head, ok := world.Heads.Get(headEntity)
	if !ok {
		panic("chain head entity has no SnakeHeadComponent")
	}

	// Snapshot chain positions, head first, in chain order
	prev := make([]component.PositionComponent, len(chain))
	for i, e := range chain {
		pos, ok := world.Positions.Get(e)
		if !ok {
			panic("chain entity has no position")
		}
		prev[i] = pos
	}

	newHead := grid.WrapStep(prev[0], head.Direction, cfg.ArenaWidth, cfg.ArenaHeight)

	// Pure detection against pre-move cells; the tick still completes so
	// eating and growth evaluate with the new head position
	for _, pos := range prev {
		if pos == newHead {
			world.PushEvent(event.EventGameOver, nil)
			s.ctx.Log.Debug("self collision",
				zap.Int("x", newHead.X),
				zap.Int("y", newHead.Y),
				zap.Int("length", len(chain)),
			)
			break
		}
	}

	world.Positions.Add(headEntity, newHead)
	for i := 1; i < len(chain); i++ {
		world.Positions.Add(chain[i], prev[i-1])
	}

	// The tail just moved off this cell; growth appends here
	state.SetLastTail(prev[len(prev)-1])
}
