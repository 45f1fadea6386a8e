package world

// Event is a named notification for the audio collaborator.
type Event int

const (
	EventDeath Event = iota
	EventJump
	EventDogJump
	EventCoin
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventDeath:
		return "death"
	case EventJump:
		return "jump"
	case EventDogJump:
		return "dog-jump"
	case EventCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// AudioSink receives events synchronously from inside a simulation step.
// Play must not block; playback semantics are up to the implementation.
type AudioSink interface {
	Play(e Event)
}

// NopSink discards every event.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(Event) {}

// SinkFunc adapts an ordinary function to the AudioSink interface.
type SinkFunc func(Event)

// Play calls f(e).
func (f SinkFunc) Play(e Event) {
	f(e)
}
