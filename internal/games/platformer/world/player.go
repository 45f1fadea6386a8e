package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Player is the actor driven by intent. It is taller than a tile, so it
// spawns half a tile above its glyph.
type Player struct {
	pos   core.Vector
	size  core.Vector
	speed core.Vector
}

func newPlayer(pos core.Vector, _ byte, _ *builder) Actor {
	return &Player{
		pos:  pos.Plus(core.V(0, -0.5)),
		size: core.V(1.5, 1.5),
	}
}

func (p *Player) Kind() Kind         { return KindPlayer }
func (p *Player) Pos() core.Vector   { return p.pos }
func (p *Player) Size() core.Vector  { return p.size }
func (p *Player) Speed() core.Vector { return p.speed }

// Act moves horizontally, then vertically, then resolves actor contact.
// Once the level is lost only the sinking animation keeps running.
func (p *Player) Act(dt float64, lvl *Level, in core.Intent) {
	p.moveX(dt, lvl, in)
	p.moveY(dt, lvl, in)

	if other := lvl.ActorAt(p); other != nil {
		lvl.PlayerTouched(other.Kind(), other)
	}

	if lvl.Status() == StatusLost {
		p.pos.Y += dt
		p.size.Y -= dt
		if p.size.Y < 0 {
			p.size.Y = 0
		}
	}
}

func (p *Player) moveX(dt float64, lvl *Level, in core.Intent) {
	if lvl.Status() == StatusLost {
		return
	}

	p.speed.X = 0
	if in.Left {
		p.speed.X -= lvl.physics.PlayerXSpeed
	}
	if in.Right {
		p.speed.X += lvl.physics.PlayerXSpeed
	}

	newPos := p.pos.Plus(core.V(p.speed.X*dt, 0))
	if obstacle := lvl.ObstacleAt(newPos, p.size); obstacle != FieldNone {
		lvl.PlayerTouched(obstacle.Kind(), nil)
		return
	}
	p.pos = newPos
}

func (p *Player) moveY(dt float64, lvl *Level, in core.Intent) {
	if lvl.Status() == StatusLost {
		return
	}

	// Gliding cancels gravity entirely while held.
	if in.Shift {
		p.speed.Y = 0
		return
	}

	p.speed.Y += dt * lvl.physics.Gravity
	newPos := p.pos.Plus(core.V(0, p.speed.Y*dt))
	obstacle := lvl.ObstacleAt(newPos, p.size)
	if obstacle == FieldNone {
		p.pos = newPos
		return
	}

	lvl.PlayerTouched(obstacle.Kind(), nil)
	// Only a downward contact counts as standing on a floor.
	if in.Up && p.speed.Y > 0 {
		p.speed.Y = -lvl.physics.JumpSpeed
		lvl.emit(EventJump)
	} else {
		p.speed.Y = 0
	}
}
