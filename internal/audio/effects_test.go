package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(t, osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", len(samples), rate.N(100*time.Millisecond))
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorWavesInRange(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewSweep(200, 800, 50*time.Millisecond, wave, rate))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d out of range or not mono: %v", wave, i, s)
			}
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(t, env)
	if len(samples) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain should be full volume, got %v", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last >= 0.1 {
		t.Errorf("release should end near silence, got %v", last)
	}
}

func TestEffectForEveryEvent(t *testing.T) {
	rate := beep.SampleRate(22050)
	events := []world.Event{world.EventJump, world.EventDogJump, world.EventCoin, world.EventDeath}

	for _, e := range events {
		t.Run(e.String(), func(t *testing.T) {
			st := Effect(e, rate, 1)
			if st == nil {
				t.Fatal("no effect")
			}
			samples := drain(t, st)
			if len(samples) == 0 {
				t.Fatal("effect is empty")
			}
			peak := 0.0
			for _, s := range samples {
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %v out of (0, 1]", peak)
			}
		})
	}

	if Effect(world.Event(99), rate, 1) != nil {
		t.Error("unknown event should have no effect")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	samples := drain(t, CreateJumpSound(beep.SampleRate(8000), 0))
	for _, s := range samples {
		if s[0] != 0 {
			t.Fatalf("expected silence, got %v", s[0])
		}
	}
}
