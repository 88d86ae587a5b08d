package engine

import (
	"sync"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

// GameState is the centralized snake state that is not per-entity:
// the ordered segment chain, the last-tail cache consumed by growth,
// and run counters. The chain is wholesale-replaced on game-over.
type GameState struct {
	mu sync.RWMutex

	// segments is the body chain in order: index 0 = head, index i > 0 =
	// body segment i. Every id carries a segment tag and a position.
	segments []core.Entity

	// lastTail is the cell the tail occupied before the most recent shift,
	// the slot a newly grown segment takes. Unset until the first movement
	// tick of a round has run.
	lastTail    component.PositionComponent
	lastTailSet bool

	moveTicks uint64 // Movement ticks since startup
	rounds    uint64 // Completed rounds (game-over resets)
}

// NewGameState creates an empty game state. SpawnSnake populates the chain.
func NewGameState() *GameState {
	return &GameState{}
}

// Segments returns the chain in order, head first.
func (gs *GameState) Segments() []core.Entity {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	result := make([]core.Entity, len(gs.segments))
	copy(result, gs.segments)
	return result
}

// SegmentCount returns the current chain length.
func (gs *GameState) SegmentCount() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.segments)
}

// Head returns the head entity, or false if the chain is empty.
func (gs *GameState) Head() (core.Entity, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if len(gs.segments) == 0 {
		return 0, false
	}
	return gs.segments[0], true
}

// ReplaceChain swaps in a fresh chain and clears the last-tail cache.
// Called at startup and by the game-over reset.
func (gs *GameState) ReplaceChain(chain []core.Entity) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.segments = make([]core.Entity, len(chain))
	copy(gs.segments, chain)
	gs.lastTailSet = false
}

// AppendSegment adds a grown segment to the tail end of the chain.
func (gs *GameState) AppendSegment(e core.Entity) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.segments = append(gs.segments, e)
}

// SetLastTail records the pre-shift tail cell for this tick.
func (gs *GameState) SetLastTail(pos component.PositionComponent) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.lastTail = pos
	gs.lastTailSet = true
}

// LastTail returns the recorded pre-shift tail cell.
// ok is false only before the first movement tick of a round.
func (gs *GameState) LastTail() (component.PositionComponent, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.lastTail, gs.lastTailSet
}

// IncrementMoveTicks advances and returns the movement tick counter.
func (gs *GameState) IncrementMoveTicks() uint64 {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.moveTicks++
	return gs.moveTicks
}

// MoveTicks returns the movement tick counter.
func (gs *GameState) MoveTicks() uint64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.moveTicks
}

// IncrementRounds advances and returns the completed-round counter.
func (gs *GameState) IncrementRounds() uint64 {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.rounds++
	return gs.rounds
}

// Rounds returns the completed-round counter.
func (gs *GameState) Rounds() uint64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.rounds
}
