// Package grid holds the pure geometry of the bounded toroidal arena.
package grid

import "github.com/lixenwraith/gridsnake/component"

// Wrap maps a coordinate onto [0, bound) by teleporting across the edge.
func Wrap(coord, bound int) int {
	if coord < 0 {
		return bound - 1
	}
	if coord >= bound {
		return 0
	}
	return coord
}

// Step applies a unit step in the given direction without wrapping.
func Step(pos component.PositionComponent, dir component.Direction) component.PositionComponent {
	switch dir {
	case component.DirLeft:
		pos.X--
	case component.DirRight:
		pos.X++
	case component.DirDown:
		pos.Y--
	case component.DirUp:
		pos.Y++
	}
	return pos
}

// WrapStep applies a unit step and wraps the result against the arena bounds.
// The wrap checks are mutually exclusive: a step changes exactly one axis, so
// at most one branch can apply per tick.
func WrapStep(pos component.PositionComponent, dir component.Direction, width, height int) component.PositionComponent {
	pos = Step(pos, dir)

	if pos.X < 0 {
		pos.X = width - 1
	} else if pos.Y < 0 {
		pos.Y = height - 1
	} else if pos.X >= width {
		pos.X = 0
	} else if pos.Y >= height {
		pos.Y = 0
	}

	return pos
}
