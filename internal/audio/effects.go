// Package audio turns simulation events into synthesized sound effects.
// Effects are generated on the fly with beep streamers, so the binary
// carries no sound assets.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency glides linearly from
// startFreq to endFreq over its duration.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: from,
		endFreq:   to,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
			val = rand.Float64()*2 - 1 //#nosec G404 -- audio noise
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect timings
const (
	jumpDuration    = 120 * time.Millisecond
	dogJumpDuration = 90 * time.Millisecond
	coinNote1       = 70 * time.Millisecond
	coinNote2       = 160 * time.Millisecond
	deathDuration   = 600 * time.Millisecond
	attack          = 5 * time.Millisecond
)

// CreateJumpSound generates a short rising chirp.
func CreateJumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(320, 640, jumpDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, jumpDuration, attack, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.35*vol)
}

// CreateDogJumpSound generates a low falling bark.
func CreateDogJumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(220, 140, dogJumpDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, dogJumpDuration, attack, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.2*vol)
}

// CreateCoinSound generates a two-note chime (B5, E6).
func CreateCoinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(987.77, coinNote1, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, coinNote1, attack, 20*time.Millisecond, rate)

	n2 := NewOscillator(1318.51, coinNote2, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, coinNote2, attack, 120*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.3*vol)
}

// CreateDeathSound generates a falling tone over a burst of noise.
func CreateDeathSound(rate beep.SampleRate, vol float64) beep.Streamer {
	tone := NewSweep(440, 110, deathDuration, WaveSine, rate)
	toneShaped := NewEnvelope(tone, deathDuration, attack, 400*time.Millisecond, rate)

	noise := NewOscillator(0, deathDuration/3, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, deathDuration/3, attack, 150*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	)
	return newVolume(mixed, 0.5*vol)
}

// Effect returns the sound for a simulation event, or nil for unknown events.
func Effect(e world.Event, rate beep.SampleRate, vol float64) beep.Streamer {
	switch e {
	case world.EventJump:
		return CreateJumpSound(rate, vol)
	case world.EventDogJump:
		return CreateDogJumpSound(rate, vol)
	case world.EventCoin:
		return CreateCoinSound(rate, vol)
	case world.EventDeath:
		return CreateDeathSound(rate, vol)
	default:
		return nil
	}
}
