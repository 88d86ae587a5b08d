package grid

import (
	"testing"

	"github.com/lixenwraith/gridsnake/component"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		coord, bound, want int
	}{
		{-1, 10, 9},
		{0, 10, 0},
		{5, 10, 5},
		{9, 10, 9},
		{10, 10, 0},
	}
	for _, c := range cases {
		if got := Wrap(c.coord, c.bound); got != c.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", c.coord, c.bound, got, c.want)
		}
	}
}

func TestStepDirections(t *testing.T) {
	origin := component.PositionComponent{X: 5, Y: 5}

	cases := []struct {
		dir  component.Direction
		want component.PositionComponent
	}{
		{component.DirLeft, component.PositionComponent{X: 4, Y: 5}},
		{component.DirRight, component.PositionComponent{X: 6, Y: 5}},
		{component.DirUp, component.PositionComponent{X: 5, Y: 6}},
		{component.DirDown, component.PositionComponent{X: 5, Y: 4}},
	}
	for _, c := range cases {
		if got := Step(origin, c.dir); got != c.want {
			t.Errorf("Step(%v, %v) = %v, want %v", origin, c.dir, got, c.want)
		}
	}
}

// Stepping off any edge teleports to the opposite edge with the
// perpendicular coordinate unchanged.
func TestWrapStepEdges(t *testing.T) {
	const w, h = 10, 10

	cases := []struct {
		name string
		pos  component.PositionComponent
		dir  component.Direction
		want component.PositionComponent
	}{
		{"left edge", component.PositionComponent{X: 0, Y: 4}, component.DirLeft, component.PositionComponent{X: 9, Y: 4}},
		{"right edge", component.PositionComponent{X: 9, Y: 4}, component.DirRight, component.PositionComponent{X: 0, Y: 4}},
		{"top edge", component.PositionComponent{X: 4, Y: 9}, component.DirUp, component.PositionComponent{X: 4, Y: 0}},
		{"bottom edge", component.PositionComponent{X: 4, Y: 0}, component.DirDown, component.PositionComponent{X: 4, Y: 9}},
		{"interior", component.PositionComponent{X: 4, Y: 4}, component.DirRight, component.PositionComponent{X: 5, Y: 4}},
	}
	for _, c := range cases {
		if got := WrapStep(c.pos, c.dir, w, h); got != c.want {
			t.Errorf("%s: WrapStep(%v, %v) = %v, want %v", c.name, c.pos, c.dir, got, c.want)
		}
	}
}

// A full lap in each cardinal direction returns to the start.
func TestWrapStepFullLap(t *testing.T) {
	const w, h = 10, 10
	start := component.PositionComponent{X: 3, Y: 7}

	for _, dir := range []component.Direction{component.DirLeft, component.DirRight, component.DirUp, component.DirDown} {
		pos := start
		steps := w
		if dir == component.DirUp || dir == component.DirDown {
			steps = h
		}
		for i := 0; i < steps; i++ {
			pos = WrapStep(pos, dir, w, h)
		}
		if pos != start {
			t.Errorf("lap %v: ended at %v, want %v", dir, pos, start)
		}
	}
}
