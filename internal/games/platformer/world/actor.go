package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Kind names what an actor or obstacle is when something touches it.
type Kind string

const (
	KindNone   Kind = ""
	KindWall   Kind = "wall"
	KindLava   Kind = "lava"
	KindPlayer Kind = "player"
	KindFish   Kind = "fish"
	KindDog    Kind = "dog"
)

// Actor is any simulated entity that moves or animates inside a level.
// Act advances the actor by one sub-step of dt seconds.
type Actor interface {
	Kind() Kind
	Pos() core.Vector
	Size() core.Vector
	Act(dt float64, lvl *Level, in core.Intent)
}

// actorFactory creates an actor spawned at the integer tile pos.
type actorFactory func(pos core.Vector, ch byte, b *builder) Actor

// builder carries construction-time state shared by actor factories.
type builder struct {
	physics Physics
	rng     *rand.Rand
}

// actorGlyphs is the static glyph-to-constructor table.
var actorGlyphs = map[byte]actorFactory{
	'@': newPlayer,
	'o': newFish,
	'=': newLava,
	'|': newLava,
	'v': newLava,
	'd': newDog,
}

// IsActorGlyph reports whether ch spawns an actor.
func IsActorGlyph(ch byte) bool {
	_, ok := actorGlyphs[ch]
	return ok
}
