package world

import "math"

// ActorState is the rendering view of one actor.
type ActorState struct {
	Kind Kind
	X, Y float64
	W, H float64
}

// Snapshot contains the observable state of a level for rendering,
// replay checks and determinism tests. Uses primitive types only.
type Snapshot struct {
	Width       int
	Height      int
	Status      string
	FinishDelay float64
	Steps       int
	Elapsed     float64
	FishTotal   int
	FishLeft    int
	Actors      []ActorState
}

// Snapshot returns the current level state.
func (l *Level) Snapshot() Snapshot {
	actors := l.Actors()
	states := make([]ActorState, len(actors))
	for i, a := range actors {
		pos, size := a.Pos(), a.Size()
		states[i] = ActorState{
			Kind: a.Kind(),
			X:    pos.X,
			Y:    pos.Y,
			W:    size.X,
			H:    size.Y,
		}
	}

	return Snapshot{
		Width:       l.width,
		Height:      l.height,
		Status:      l.status.String(),
		FinishDelay: l.finishDelay,
		Steps:       l.steps,
		Elapsed:     l.elapsed,
		FishTotal:   l.fishTotal,
		FishLeft:    l.FishRemaining(),
		Actors:      states,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Width)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Height)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Steps)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FishLeft) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.FinishDelay)
	h = h*31 + math.Float64bits(snap.Elapsed)
	for _, r := range snap.Status {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, a := range snap.Actors {
		for _, r := range a.Kind {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
		h = h*31 + math.Float64bits(a.X)
		h = h*31 + math.Float64bits(a.Y)
		h = h*31 + math.Float64bits(a.W)
		h = h*31 + math.Float64bits(a.H)
	}

	return h
}
