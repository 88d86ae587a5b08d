// Package input translates terminal key events into the per-frame
// pressed-direction set the heading resolver consumes.
package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/component"
)

// KeyState accumulates directional key presses between frames.
// Terminals deliver key-down events only, so "currently pressed" means
// "pressed since the previous frame". The event pump goroutine writes,
// the main loop snapshots and clears once per frame.
type KeyState struct {
	mu      sync.Mutex
	pressed [4]bool // Indexed by component.Direction
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press marks a direction as pressed for the current frame.
func (ks *KeyState) Press(d component.Direction) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.pressed[d] = true
}

// TakeFrame returns the pressed set and clears it for the next frame.
func (ks *KeyState) TakeFrame() Pressed {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	p := Pressed(ks.pressed)
	ks.pressed = [4]bool{}
	return p
}

// Pressed is one frame's snapshot of the directional keys.
type Pressed [4]bool

// Is reports whether the given direction was pressed this frame.
func (p Pressed) Is(d component.Direction) bool {
	return p[d]
}

// Any reports whether any directional key was pressed this frame.
func (p Pressed) Any() bool {
	return p[0] || p[1] || p[2] || p[3]
}

// DirectionFromKey maps a key event to a direction.
// Arrows and vi motions (h/j/k/l) are both accepted.
func DirectionFromKey(ev *tcell.EventKey) (component.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return component.DirLeft, true
	case tcell.KeyRight:
		return component.DirRight, true
	case tcell.KeyUp:
		return component.DirUp, true
	case tcell.KeyDown:
		return component.DirDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return component.DirLeft, true
		case 'l':
			return component.DirRight, true
		case 'k':
			return component.DirUp, true
		case 'j':
			return component.DirDown, true
		}
	}
	return 0, false
}
