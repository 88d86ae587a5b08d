package engine

import (
	"time"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
)

// Resource holds singleton game resources, initialized during GameContext
// creation and accessed by systems via World.Resource
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Game   *GameStateResource
	Event  *EventQueueResource
	Audio  *AudioResource
}

// TimeResource wraps time data for systems.
// Updated by the TickScheduler at the start of each movement tick.
type TimeResource struct {
	// Now is the wall-clock time of the current tick
	Now time.Time

	// DeltaTime is the fixed movement tick period
	DeltaTime time.Duration

	// MoveTick is the movement tick counter since startup
	MoveTick uint64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(now time.Time, delta time.Duration, tick uint64) {
	tr.Now = now
	tr.DeltaTime = delta
	tr.MoveTick = tick
}

// ConfigResource holds static arena and spawn configuration.
type ConfigResource struct {
	ArenaWidth  int
	ArenaHeight int

	SpawnHead      component.PositionComponent
	SpawnDirection component.Direction
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// GameStateResource wraps GameState for access by systems
type GameStateResource struct {
	State *GameState
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface. Nil player means silent.
type AudioResource struct {
	Player AudioPlayer
}
