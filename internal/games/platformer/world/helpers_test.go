package world

import (
	"testing"
)

// recorder is an AudioSink that remembers every event.
type recorder struct {
	events []Event
}

func (r *recorder) Play(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(e Event) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

// mustLevel builds a level or fails the test.
func mustLevel(t *testing.T, sink AudioSink, plan ...string) *Level {
	t.Helper()
	lvl, err := New(plan, Options{Sink: sink, Seed: 7})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return lvl
}

// firstOfKind returns the first live actor of the given kind.
func firstOfKind(lvl *Level, kind Kind) Actor {
	for _, a := range lvl.Actors() {
		if a.Kind() == kind {
			return a
		}
	}
	return nil
}
