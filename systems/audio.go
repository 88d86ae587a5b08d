package systems

import (
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
)

// AudioSystem forwards sound requests to the configured audio player.
// Playback is fire and forget; a missing player drops the request.
type AudioSystem struct {
	ctx *engine.GameContext
}

// NewAudioSystem creates a new audio handler.
func NewAudioSystem(ctx *engine.GameContext) *AudioSystem {
	return &AudioSystem{ctx: ctx}
}

// EventTypes returns the event types this handler processes.
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent plays the requested sound if a player is attached.
func (s *AudioSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	sound, ok := ev.Payload.(core.SoundType)
	if !ok {
		return
	}
	player := world.Resource.Audio.Player
	if player == nil {
		return
	}
	player.Play(sound)
}
