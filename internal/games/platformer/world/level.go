// Package world implements the platformer simulation: a static tile grid,
// the actors moving over it, and the won/lost progression of a level.
// It depends only on core and has no knowledge of rendering, input devices
// or audio playback.
package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Status is the progression state of a level.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

// String returns "", "lost" or "won".
func (s Status) String() string {
	switch s {
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return ""
	}
}

// Options configures level construction.
type Options struct {
	// Physics defaults to DefaultPhysics when left zero.
	Physics Physics
	// Sink receives audio events; nil discards them.
	Sink AudioSink
	// Seed makes fish wobble phases reproducible.
	Seed int64
}

// Level is a single playable level built from a textual plan.
type Level struct {
	width  int
	height int
	grid   [][]FieldType
	actors []Actor
	player *Player

	// removed holds actors taken out during the current sub-step; the
	// actors slice is compacted once the whole actor pass is over.
	removed map[Actor]struct{}

	status      Status
	finishDelay float64
	fishTotal   int
	steps       int
	elapsed     float64

	physics Physics
	sink    AudioSink
}

// New parses a rectangular plan into a level. Each string is one row.
// It returns a *MalformedLevelError when the plan is empty or ragged,
// contains an unknown glyph, or does not have exactly one player.
func New(plan []string, opts Options) (*Level, error) {
	physics := opts.Physics
	if physics == (Physics{}) {
		physics = DefaultPhysics()
	}
	if err := physics.Validate(); err != nil {
		return nil, err
	}

	if len(plan) == 0 {
		return nil, malformed(-1, -1, "plan has no rows")
	}
	width := len(plan[0])
	if width == 0 {
		return nil, malformed(0, -1, "plan rows are empty")
	}
	for y, row := range plan {
		if len(row) != width {
			return nil, malformed(y, -1, "row length %d differs from width %d", len(row), width)
		}
	}

	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}

	l := &Level{
		width:   width,
		height:  len(plan),
		grid:    make([][]FieldType, len(plan)),
		removed: make(map[Actor]struct{}),
		physics: physics,
		sink:    sink,
	}

	b := &builder{
		physics: physics,
		rng:     rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- gameplay randomness only
	}

	for y, row := range plan {
		line := make([]FieldType, width)
		for x := 0; x < width; x++ {
			ch := row[x]
			if factory, ok := actorGlyphs[ch]; ok {
				actor := factory(core.V(float64(x), float64(y)), ch, b)
				if p, isPlayer := actor.(*Player); isPlayer {
					if l.player != nil {
						return nil, malformed(y, x, "second player spawn '@'")
					}
					l.player = p
				}
				if actor.Kind() == KindFish {
					l.fishTotal++
				}
				l.actors = append(l.actors, actor)
				continue
			}

			field, ok := fieldForGlyph(ch)
			if !ok {
				return nil, malformed(y, x, "unknown glyph %q", ch)
			}
			line[x] = field
		}
		l.grid[y] = line
	}

	if l.player == nil {
		return nil, malformed(-1, -1, "no player spawn '@'")
	}

	return l, nil
}

// Width returns the grid width in tiles.
func (l *Level) Width() int { return l.width }

// Height returns the grid height in tiles.
func (l *Level) Height() int { return l.height }

// FieldAt returns the static field at a cell, or FieldNone outside the grid.
func (l *Level) FieldAt(x, y int) FieldType {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return FieldNone
	}
	return l.grid[y][x]
}

// Grid returns a copy of the static grid indexed [y][x].
func (l *Level) Grid() [][]FieldType {
	out := make([][]FieldType, len(l.grid))
	for y, row := range l.grid {
		out[y] = append([]FieldType(nil), row...)
	}
	return out
}

// Actors returns the live actors in list order. The slice is a copy.
func (l *Level) Actors() []Actor {
	out := make([]Actor, 0, len(l.actors))
	for _, a := range l.actors {
		if !l.isRemoved(a) {
			out = append(out, a)
		}
	}
	return out
}

// Player returns the unique player actor.
func (l *Level) Player() *Player { return l.player }

// Status returns the level progression state.
func (l *Level) Status() Status { return l.status }

// FinishDelay returns the remaining terminal animation time.
// It is only meaningful once Status is no longer StatusPlaying.
func (l *Level) FinishDelay() float64 { return l.finishDelay }

// IsFinished reports whether the level is decided and its finish delay has run out.
func (l *Level) IsFinished() bool {
	return l.status != StatusPlaying && l.finishDelay < 0
}

// Physics returns the constants the level was built with.
func (l *Level) Physics() Physics { return l.physics }

// Steps returns the number of sub-steps simulated so far.
func (l *Level) Steps() int { return l.steps }

// Elapsed returns the simulated time in seconds.
func (l *Level) Elapsed() float64 { return l.elapsed }

// FishTotal returns how many fish the plan spawned.
func (l *Level) FishTotal() int { return l.fishTotal }

// FishRemaining returns how many fish are still uncollected.
func (l *Level) FishRemaining() int {
	n := 0
	for _, a := range l.actors {
		if a.Kind() == KindFish && !l.isRemoved(a) {
			n++
		}
	}
	return n
}

// ObstacleAt returns the first static obstacle overlapped by the box at pos
// with size, scanning cells in row-major order. The left, right and top
// borders count as walls; anything below the bottom border counts as lava.
func (l *Level) ObstacleAt(pos, size core.Vector) FieldType {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	if xStart < 0 || xEnd > l.width || yStart < 0 {
		return FieldWall
	}
	if yEnd > l.height {
		return FieldLava
	}
	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if field := l.grid[y][x]; field != FieldNone {
				return field
			}
		}
	}
	return FieldNone
}

// ActorAt returns the first other live actor whose box strictly overlaps a's box.
func (l *Level) ActorAt(a Actor) Actor {
	pos, size := a.Pos(), a.Size()
	for _, other := range l.actors {
		if other == a || l.isRemoved(other) {
			continue
		}
		if core.Overlaps(pos, size, other.Pos(), other.Size()) {
			return other
		}
	}
	return nil
}

// PlayerTouched resolves a contact of the given kind into a status change.
// Lava and dogs lose the level while it is still being played. Fish are
// collected whatever the status; collecting the last one wins a level that
// is still being played. Other kinds are ignored.
func (l *Level) PlayerTouched(kind Kind, other Actor) {
	switch kind {
	case KindLava, KindDog:
		if l.status != StatusPlaying {
			return
		}
		l.status = StatusLost
		l.finishDelay = l.physics.LoseDelay
		l.emit(EventDeath)

	case KindFish:
		l.emit(EventCoin)
		l.remove(other)
		if l.FishRemaining() == 0 && l.status == StatusPlaying {
			l.status = StatusWon
			l.finishDelay = l.physics.WinDelay
		}
	}
}

// emit forwards an event to the audio sink.
func (l *Level) emit(e Event) {
	l.sink.Play(e)
}

// remove marks an actor as gone. The player is never removed.
func (l *Level) remove(a Actor) {
	if a == nil || a == Actor(l.player) {
		return
	}
	l.removed[a] = struct{}{}
}

func (l *Level) isRemoved(a Actor) bool {
	_, gone := l.removed[a]
	return gone
}

// compact drops removed actors from the list, preserving order.
func (l *Level) compact() {
	if len(l.removed) == 0 {
		return
	}
	kept := l.actors[:0]
	for _, a := range l.actors {
		if !l.isRemoved(a) {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(l.actors); i++ {
		l.actors[i] = nil
	}
	l.actors = kept
	clear(l.removed)
}
