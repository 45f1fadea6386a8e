package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Lava is a moving hazard block.
//
//	'=' sweeps horizontally and bounces off obstacles
//	'|' sweeps vertically and bounces off obstacles
//	'v' drips downward and restarts from its spawn point
type Lava struct {
	pos       core.Vector
	size      core.Vector
	speed     core.Vector
	repeatPos core.Vector
	repeats   bool
}

func newLava(pos core.Vector, ch byte, b *builder) Actor {
	l := &Lava{
		pos:  pos,
		size: core.V(1, 1),
	}
	switch ch {
	case '=':
		l.speed = core.V(2, 0)
	case '|':
		l.speed = core.V(0, 2)
	case 'v':
		l.speed = core.V(0, 3)
		l.repeatPos = pos
		l.repeats = true
	}
	l.speed = l.speed.Times(b.physics.HazardSpeed)
	return l
}

func (l *Lava) Kind() Kind         { return KindLava }
func (l *Lava) Pos() core.Vector   { return l.pos }
func (l *Lava) Size() core.Vector  { return l.size }
func (l *Lava) Speed() core.Vector { return l.speed }

// Dripping reports whether the lava resets to its spawn instead of bouncing.
func (l *Lava) Dripping() bool { return l.repeats }

// Act moves the lava, resetting or reversing it when blocked.
func (l *Lava) Act(dt float64, lvl *Level, _ core.Intent) {
	newPos := l.pos.Plus(l.speed.Times(dt))
	switch {
	case lvl.ObstacleAt(newPos, l.size) == FieldNone:
		l.pos = newPos
	case l.repeats:
		l.pos = l.repeatPos
	default:
		l.speed = l.speed.Times(-1)
	}
}
