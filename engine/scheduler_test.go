package engine

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// countingSystem records how many times Update ran.
type countingSystem struct {
	updates  int
	priority int
}

func (cs *countingSystem) Update(world *World, dt time.Duration) {
	cs.updates++
}

func (cs *countingSystem) Priority() int {
	return cs.priority
}

func newSchedulerFixture() (*GameContext, *TickScheduler) {
	cfg := &ConfigResource{
		ArenaWidth:     10,
		ArenaHeight:    10,
		SpawnHead:      component.PositionComponent{X: 3, Y: 3},
		SpawnDirection: component.DirUp,
	}
	ctx := NewGameContext(cfg, zap.NewNop())
	return ctx, NewTickScheduler(ctx.World, 150*time.Millisecond, 1000*time.Millisecond)
}

// The number of ticks per Advance is elapsed divided by the period,
// rounded down; the remainder carries into the next call.
func TestSchedulerAccumulator(t *testing.T) {
	_, ts := newSchedulerFixture()

	move := &countingSystem{}
	food := &countingSystem{}
	ts.AddMoveSystem(move)
	ts.AddFoodSystem(food)

	ts.Advance(149 * time.Millisecond)
	if move.updates != 0 {
		t.Errorf("under one period: %d movement ticks, want 0", move.updates)
	}

	ts.Advance(1 * time.Millisecond)
	if move.updates != 1 {
		t.Errorf("exactly one period: %d movement ticks, want 1", move.updates)
	}

	// 375ms covers two periods with 75ms left over
	ts.Advance(375 * time.Millisecond)
	if move.updates != 3 {
		t.Errorf("after 375ms more: %d movement ticks, want 3", move.updates)
	}

	// The 75ms remainder plus 75ms crosses the next boundary
	ts.Advance(75 * time.Millisecond)
	if move.updates != 4 {
		t.Errorf("remainder not preserved: %d movement ticks, want 4", move.updates)
	}

	if food.updates != 0 {
		t.Errorf("food ticked early: %d, want 0", food.updates)
	}
	ts.Advance(400 * time.Millisecond)
	if food.updates != 1 {
		t.Errorf("after 1000ms total: %d food ticks, want 1", food.updates)
	}
}

// A long stall fires a bounded number of catch-up ticks, not the
// whole backlog.
func TestSchedulerCatchUpClamp(t *testing.T) {
	_, ts := newSchedulerFixture()

	move := &countingSystem{}
	ts.AddMoveSystem(move)

	ts.Advance(10 * time.Second)
	if move.updates > parameter.MaxCatchUpTicks {
		t.Errorf("stall fired %d ticks, want at most %d", move.updates, parameter.MaxCatchUpTicks)
	}
	if move.updates == 0 {
		t.Error("stall fired no ticks")
	}
}

// Systems on one cadence run in ascending priority order every tick.
func TestSchedulerPriorityOrder(t *testing.T) {
	_, ts := newSchedulerFixture()

	var order []int
	first := &orderSystem{id: 1, priority: 10, order: &order}
	second := &orderSystem{id: 2, priority: 20, order: &order}

	// Registered high priority first to prove sorting
	ts.AddMoveSystem(second)
	ts.AddMoveSystem(first)

	ts.Advance(150 * time.Millisecond)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("execution order = %v, want [1 2]", order)
	}
}

type orderSystem struct {
	id       int
	priority int
	order    *[]int
}

func (os *orderSystem) Update(world *World, dt time.Duration) {
	*os.order = append(*os.order, os.id)
}

func (os *orderSystem) Priority() int {
	return os.priority
}

// tickHandler records the movement tick each event arrived on.
type tickHandler struct {
	ticks []uint64
}

func (h *tickHandler) HandleEvent(world *World, ev event.GameEvent) {
	h.ticks = append(h.ticks, world.Resource.Game.State.MoveTicks())
}

func (h *tickHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventGrowth}
}

// emittingSystem pushes one growth event per tick.
type emittingSystem struct{}

func (es *emittingSystem) Update(world *World, dt time.Duration) {
	world.PushEvent(event.EventGrowth, nil)
}

func (es *emittingSystem) Priority() int { return 10 }

// Events raised during a tick are dispatched within that same tick.
func TestSchedulerEventsSettleSameTick(t *testing.T) {
	ctx, ts := newSchedulerFixture()

	ts.AddMoveSystem(&emittingSystem{})
	h := &tickHandler{}
	ts.RegisterHandler(h)

	ts.Advance(300 * time.Millisecond)

	if len(h.ticks) != 2 {
		t.Fatalf("handled %d events, want 2", len(h.ticks))
	}
	if h.ticks[0] != 1 || h.ticks[1] != 2 {
		t.Errorf("events handled on ticks %v, want [1 2]", h.ticks)
	}
	if ctx.World.Resource.Event.Queue.Len() != 0 {
		t.Errorf("queue not drained: %d pending", ctx.World.Resource.Event.Queue.Len())
	}
}
