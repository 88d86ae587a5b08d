package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MoveUpdateInterval is the movement tick period: movement, eating,
	// growth and game-over handling all run on this cadence
	MoveUpdateInterval = 150 * time.Millisecond

	// FoodUpdateInterval is the food spawner tick period, independent of
	// and slower than the movement tick
	FoodUpdateInterval = 1000 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the capacity of the per-tick event queue; pushes
	// beyond it drop the oldest pending events
	EventQueueSize = 256

	// EventSettleIterations is the number of dispatch cycles a tick attempts
	// so handler-emitted events resolve before the tick ends
	EventSettleIterations = 4

	// MaxCatchUpTicks caps how many ticks an accumulator may owe before the
	// scheduler drops the backlog (stall recovery after suspend/resize)
	MaxCatchUpTicks = 4
)

// System priorities. Lower values run first within a movement tick.
// The ordering contract is: movement commits positions before eating reads
// them, and both run before the event handlers (growth, game-over) fire.
const (
	PriorityMovement = 10
	PriorityEating   = 20
	PrioritySpawner  = 10 // Sole system on the food cadence
)
