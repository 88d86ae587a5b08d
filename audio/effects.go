package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a simple attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so zero volume becomes silence instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short bright chime for food pickup
func CreateEatSound(rate beep.SampleRate) beep.Streamer {
	// Fundamental (A5) plus an octave overtone
	fund := NewOscillator(880.0, parameter.EatSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)

	over := NewOscillator(1760.0, parameter.EatSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, parameter.MasterVolume)
}

// CreateGameOverSound generates a descending two-note phrase for the reset
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	// First note (E4)
	n1 := NewOscillator(329.63, parameter.GameOverSoundNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.GameOverSoundNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)

	// Second note (B3)
	n2 := NewOscillator(246.94, parameter.GameOverSoundNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.GameOverSoundNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	return newVolume(sequence, parameter.MasterVolume*0.6)
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case core.SoundEat:
		return CreateEatSound(rate)
	case core.SoundGameOver:
		return CreateGameOverSound(rate)
	default:
		return nil
	}
}
