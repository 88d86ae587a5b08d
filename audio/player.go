package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Player mixes short synthesized effects through the system speaker.
// It satisfies engine.AudioPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	muted       bool
	initialized bool
}

// NewPlayer creates an uninitialized player
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(parameter.AudioSampleRate),
	}
}

// Initialize opens the speaker. Safe to call once; failure leaves the
// player usable as a silent no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker Close; clearing the
// mixer is enough to stop output.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues the effect for the given sound type. Returns false when
// the player is muted, uninitialized, or the type has no effect.
func (p *Player) Play(soundType core.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}

	streamer := GetSoundEffect(soundType, p.rate)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute flag and returns the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	return p.muted
}

// IsMuted reports whether playback is muted.
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.muted
}
