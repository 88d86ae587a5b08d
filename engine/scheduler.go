package engine

import (
	"time"

	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// TickScheduler drives game logic on two independent fixed cadences: the
// movement tick (movement, eating, growth, game-over) and the slower food
// tick (spawning). Elapsed wall time is folded into one accumulator per
// cadence; each accumulator fires once per full period and is decremented by
// the period rather than reset, preserving long-run timing accuracy.
//
// The driver is single-threaded: Advance is called from the frame loop, and
// every tick's systems run to completion in priority order before the next
// tick begins.
type TickScheduler struct {
	world  *World
	router *event.Router[*World]

	moveInterval time.Duration
	foodInterval time.Duration
	moveAccum    time.Duration
	foodAccum    time.Duration

	moveSystems []System
	foodSystems []System
}

// NewTickScheduler creates a scheduler for the given world and cadences.
// The router dispatches growth before game-over so a same-tick eat+collision
// grows the old chain before the reset replaces it.
func NewTickScheduler(world *World, moveInterval, foodInterval time.Duration) *TickScheduler {
	return &TickScheduler{
		world:        world,
		moveInterval: moveInterval,
		foodInterval: foodInterval,
		router: event.NewRouter[*World](world.Resource.Event.Queue, []event.EventType{
			event.EventGrowth,
			event.EventGameOver,
		}),
	}
}

// AddMoveSystem registers a system on the movement cadence.
func (ts *TickScheduler) AddMoveSystem(system System) {
	ts.moveSystems = insertByPriority(ts.moveSystems, system)
}

// AddFoodSystem registers a system on the food cadence.
func (ts *TickScheduler) AddFoodSystem(system System) {
	ts.foodSystems = insertByPriority(ts.foodSystems, system)
}

// RegisterHandler adds an event handler to the router.
// Must be called before the first Advance.
func (ts *TickScheduler) RegisterHandler(handler event.Handler[*World]) {
	ts.router.Register(handler)
}

// Advance folds elapsed wall time into both accumulators and fires every
// tick they cover. Movement ticks run before food ticks within one call.
func (ts *TickScheduler) Advance(elapsed time.Duration) {
	ts.moveAccum += elapsed
	if max := ts.moveInterval * parameter.MaxCatchUpTicks; ts.moveAccum > max {
		// Stall recovery: drop the backlog instead of bursting ticks
		ts.moveAccum = ts.moveInterval
	}
	for ts.moveAccum >= ts.moveInterval {
		ts.moveAccum -= ts.moveInterval
		ts.runMoveTick()
	}

	ts.foodAccum += elapsed
	if max := ts.foodInterval * parameter.MaxCatchUpTicks; ts.foodAccum > max {
		ts.foodAccum = ts.foodInterval
	}
	for ts.foodAccum >= ts.foodInterval {
		ts.foodAccum -= ts.foodInterval
		ts.runFoodTick()
	}
}

// runMoveTick executes one movement tick: systems in priority order, then
// event settling. Signals raised in this tick are fully drained before the
// tick ends; none survive into the next.
func (ts *TickScheduler) runMoveTick() {
	tick := ts.world.Resource.Game.State.IncrementMoveTicks()
	ts.world.Resource.Time.Update(time.Now(), ts.moveInterval, tick)

	for _, system := range ts.moveSystems {
		system.Update(ts.world, ts.moveInterval)
	}

	ts.settleEvents()
}

// runFoodTick executes one food tick.
func (ts *TickScheduler) runFoodTick() {
	for _, system := range ts.foodSystems {
		system.Update(ts.world, ts.foodInterval)
	}

	ts.settleEvents()
}

// settleEvents dispatches until the queue is empty so handler-emitted events
// (sound requests from the game-over reset) resolve within the same tick.
func (ts *TickScheduler) settleEvents() {
	queue := ts.world.Resource.Event.Queue
	for i := 0; i < parameter.EventSettleIterations; i++ {
		if queue.Len() == 0 {
			return
		}
		ts.router.DispatchAll(ts.world)
	}
}

// insertByPriority keeps the slice sorted ascending by Priority.
// Insertion sort is fine for the handful of systems involved.
func insertByPriority(systems []System, system System) []System {
	systems = append(systems, system)
	for i := len(systems) - 1; i > 0; i-- {
		if systems[i-1].Priority() > systems[i].Priority() {
			systems[i-1], systems[i] = systems[i], systems[i-1]
		}
	}
	return systems
}
