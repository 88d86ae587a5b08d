package systems

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/input"
)

// InputSystem resolves the per-frame pressed-direction set into the head's
// heading. It runs once per frame rather than per movement tick so a press
// between slower movement ticks is never missed; only the most recent
// resolved heading at the moment of the movement tick is applied.
type InputSystem struct {
	ctx *engine.GameContext
}

// NewInputSystem creates a new input resolver.
func NewInputSystem(ctx *engine.GameContext) *InputSystem {
	return &InputSystem{ctx: ctx}
}

// Resolve picks a candidate heading with priority Left > Right > Down > Up
// (first match wins, no key keeps the current heading) and applies it unless
// it would reverse the snake 180 degrees.
func (s *InputSystem) Resolve(pressed input.Pressed) {
	world := s.ctx.World

	head, ok := world.Resource.Game.State.Head()
	if !ok {
		return
	}
	hc, ok := world.Heads.Get(head)
	if !ok {
		return
	}

	candidate := hc.Direction
	switch {
	case pressed.Is(component.DirLeft):
		candidate = component.DirLeft
	case pressed.Is(component.DirRight):
		candidate = component.DirRight
	case pressed.Is(component.DirDown):
		candidate = component.DirDown
	case pressed.Is(component.DirUp):
		candidate = component.DirUp
	}

	// A snake head can't just turn around
	if candidate != hc.Direction.Opposite() {
		hc.Direction = candidate
		world.Heads.Add(head, hc)
	}
}
