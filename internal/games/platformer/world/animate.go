package world

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// stepEpsilon absorbs floating point residue left after splitting a delta
// into MaxStep slices, so 0.3s is six steps and not six plus a sliver.
const stepEpsilon = 1e-9

// MaxDelta caps the time one Animate call consumes. Hosts clamp slow
// frames far below this; the cap keeps a runaway delta from stalling the
// caller in millions of sub-steps.
const MaxDelta = 60.0

// Animate advances the level by dt seconds of wall-clock time.
//
// Once the level is decided the finish delay counts down by dt. The delta
// is then consumed in sub-steps of at most Physics.MaxStep, and every actor
// acts once per sub-step in list order. The intent is a value, so all
// sub-steps of one call observe the same input.
//
// NaN, infinite and non-positive deltas are ignored. Deltas above MaxDelta
// are cut to MaxDelta; callers are expected to clamp frame time themselves.
func (l *Level) Animate(dt float64, in core.Intent) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return
	}
	dt = math.Min(dt, MaxDelta)
	if l.status != StatusPlaying {
		l.finishDelay -= dt
	}

	for dt > stepEpsilon {
		step := math.Min(dt, l.physics.MaxStep)
		for _, a := range l.actors {
			if l.isRemoved(a) {
				continue
			}
			a.Act(step, l, in)
		}
		l.compact()
		l.steps++
		l.elapsed += step
		dt -= step
	}
}
