package engine

import (
	"testing"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

func TestGameStateChain(t *testing.T) {
	gs := NewGameState()

	if _, ok := gs.Head(); ok {
		t.Error("empty chain reports a head")
	}

	gs.ReplaceChain([]core.Entity{10, 11})
	if gs.SegmentCount() != 2 {
		t.Errorf("SegmentCount = %d, want 2", gs.SegmentCount())
	}
	head, ok := gs.Head()
	if !ok || head != 10 {
		t.Errorf("Head = %d %v, want 10 true", head, ok)
	}

	gs.AppendSegment(12)
	chain := gs.Segments()
	want := []core.Entity{10, 11, 12}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %d, want %d", i, chain[i], want[i])
		}
	}
}

// ReplaceChain invalidates the last-tail cache so a stale cell from the
// previous round can never receive a grown segment.
func TestGameStateReplaceChainClearsLastTail(t *testing.T) {
	gs := NewGameState()
	gs.ReplaceChain([]core.Entity{1, 2})

	gs.SetLastTail(component.PositionComponent{X: 4, Y: 4})
	if _, ok := gs.LastTail(); !ok {
		t.Fatal("last tail not recorded")
	}

	gs.ReplaceChain([]core.Entity{3, 4})
	if _, ok := gs.LastTail(); ok {
		t.Error("last tail survived chain replacement")
	}
}

func TestGameStateCounters(t *testing.T) {
	gs := NewGameState()

	if gs.MoveTicks() != 0 || gs.Rounds() != 0 {
		t.Error("counters not zero initially")
	}
	if got := gs.IncrementMoveTicks(); got != 1 {
		t.Errorf("IncrementMoveTicks = %d, want 1", got)
	}
	if got := gs.IncrementRounds(); got != 1 {
		t.Errorf("IncrementRounds = %d, want 1", got)
	}
	if gs.MoveTicks() != 1 || gs.Rounds() != 1 {
		t.Error("counters did not advance")
	}
}
