package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Dog is an enemy that only falls and bounces. Any obstacle it meets,
// floor, wall or ceiling, makes it jump again.
type Dog struct {
	pos   core.Vector
	size  core.Vector
	speed core.Vector
}

func newDog(pos core.Vector, _ byte, _ *builder) Actor {
	return &Dog{
		pos:  pos.Plus(core.V(0, -0.5)),
		size: core.V(1.5, 1.5),
	}
}

func (d *Dog) Kind() Kind         { return KindDog }
func (d *Dog) Pos() core.Vector   { return d.pos }
func (d *Dog) Size() core.Vector  { return d.size }
func (d *Dog) Speed() core.Vector { return d.speed }

// Act applies gravity and bounces on contact. The obstacle is reported to
// the level as a contact, so a dog landing in lava loses the level.
func (d *Dog) Act(dt float64, lvl *Level, _ core.Intent) {
	d.speed.Y += dt * lvl.physics.Gravity
	newPos := d.pos.Plus(core.V(0, d.speed.Y*dt))

	obstacle := lvl.ObstacleAt(newPos, d.size)
	if obstacle == FieldNone {
		d.pos = newPos
		return
	}

	lvl.PlayerTouched(obstacle.Kind(), nil)
	d.speed.Y = -lvl.physics.JumpSpeed
	lvl.emit(EventDogJump)
}
