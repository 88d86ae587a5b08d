package parameter

import "time"

// Audio synthesis settings
const (
	// AudioSampleRate is the playback sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// MasterVolume scales every effect
	MasterVolume = 0.8
)

// Eat chime envelope
const (
	EatSoundDuration = 90 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 60 * time.Millisecond
)

// Game-over sweep envelope
const (
	GameOverSoundNoteDuration = 160 * time.Millisecond
	GameOverSoundAttack       = 10 * time.Millisecond
	GameOverSoundRelease      = 120 * time.Millisecond
)
