package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Config controls audio output.
type Config struct {
	SampleRate int
	Volume     float64 // 0.0 to 1.0
	Muted      bool
}

// DefaultConfig returns the standard audio settings.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Volume:     0.8,
	}
}

// Sink is a world.AudioSink that mixes every event's effect into one stream.
// Sink is itself a beep.Streamer; Start hands it to the speaker, tests can
// pull samples directly.
type Sink struct {
	mu      sync.Mutex
	cfg     Config
	mixer   *beep.Mixer
	started bool
}

var _ world.AudioSink = (*Sink)(nil)

// NewSink creates a sink. Nothing is played until Start is called.
func NewSink(cfg Config) *Sink {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Sink{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Start initializes the speaker and begins playback.
func (s *Sink) Start() error {
	s.mu.Lock()
	if s.started || s.cfg.Muted {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	rate := s.rate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)

	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	return nil
}

// Close stops playback and drops pending effects.
func (s *Sink) Close() {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mixer.Clear()
	s.mu.Unlock()

	if started {
		speaker.Close()
	}
}

// Play queues the effect for e. It never blocks on audio output.
func (s *Sink) Play(e world.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Muted {
		return
	}
	if st := Effect(e, s.rate(), s.cfg.Volume); st != nil {
		s.mixer.Add(st)
	}
}

// SetMuted toggles output. Muting drops effects that are still playing.
func (s *Sink) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Muted = muted
	if muted {
		s.mixer.Clear()
	}
}

// Muted reports whether output is muted.
func (s *Sink) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Muted
}

// Pending returns the number of effects still playing.
func (s *Sink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Len()
}

// Stream mixes the active effects, padding with silence so the speaker
// never sees the end of the stream.
func (s *Sink) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, _ = s.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Sink) Err() error { return nil }

// rate is read without the lock; SampleRate never changes after NewSink.
func (s *Sink) rate() beep.SampleRate {
	return beep.SampleRate(s.cfg.SampleRate)
}
