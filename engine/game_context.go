package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gridsnake/event"
)

// GameContext holds all game state including the ECS world.
type GameContext struct {
	// ===== Immutable After Init =====
	// Safe for concurrent read without synchronization.

	World *World      // ECS world; stores have internal locking
	Log   *zap.Logger // File-sink diagnostics logger; never nil (Nop when disabled)

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Render frame counter; incremented by main loop
}

// NewGameContext creates a GameContext with a fully wired world:
// event queue, time, config, game state and audio resources.
// The audio player is attached later by the main package; nil means silent.
func NewGameContext(cfg *ConfigResource, log *zap.Logger) *GameContext {
	if log == nil {
		log = zap.NewNop()
	}

	world := NewWorld()

	world.Resource.Event = &EventQueueResource{Queue: event.NewEventQueue()}
	world.Resource.Config = cfg
	world.Resource.Game = &GameStateResource{State: NewGameState()}
	world.Resource.Audio = &AudioResource{}
	world.Resource.Time = &TimeResource{
		Now:       time.Now(),
		DeltaTime: 0,
		MoveTick:  0,
	}

	return &GameContext{
		World: world,
		Log:   log,
	}
}

// SetAudioPlayer attaches the audio backend. Called once during startup,
// before systems run.
func (ctx *GameContext) SetAudioPlayer(player AudioPlayer) {
	ctx.World.Resource.Audio.Player = player
}
