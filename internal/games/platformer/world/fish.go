package world

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Fish is the collectible. It bobs around a fixed anchor and never collides.
type Fish struct {
	basePos core.Vector
	pos     core.Vector
	size    core.Vector
	wobble  float64
}

func newFish(pos core.Vector, _ byte, b *builder) Actor {
	base := pos.Plus(core.V(0.2, 0.1))
	return &Fish{
		basePos: base,
		pos:     base,
		size:    core.V(0.8, 0.5),
		wobble:  b.rng.Float64() * math.Pi * 2,
	}
}

func (f *Fish) Kind() Kind           { return KindFish }
func (f *Fish) Pos() core.Vector     { return f.pos }
func (f *Fish) Size() core.Vector    { return f.size }
func (f *Fish) BasePos() core.Vector { return f.basePos }

// Act advances the wobble phase.
func (f *Fish) Act(dt float64, lvl *Level, _ core.Intent) {
	f.wobble += dt * lvl.physics.WobbleSpeed
	offset := math.Sin(f.wobble) * lvl.physics.WobbleDist
	f.pos = f.basePos.Plus(core.V(0, offset))
}
