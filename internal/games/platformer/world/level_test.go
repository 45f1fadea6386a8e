package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestNewSinglePlayer(t *testing.T) {
	lvl := mustLevel(t, nil,
		"      ",
		" @ o d",
		"xxxxxx",
	)

	players := 0
	for _, a := range lvl.Actors() {
		if a.Kind() == KindPlayer {
			players++
		}
	}
	if players != 1 {
		t.Errorf("expected exactly one player, got %d", players)
	}
	if lvl.Player() == nil {
		t.Fatal("Player() should not be nil")
	}
	if lvl.Player().Pos() != core.V(1, 0.5) {
		t.Errorf("player should spawn half a tile up, got %v", lvl.Player().Pos())
	}
	if lvl.Width() != 6 || lvl.Height() != 3 {
		t.Errorf("dimensions = %dx%d, expected 6x3", lvl.Width(), lvl.Height())
	}
	if lvl.Status() != StatusPlaying {
		t.Errorf("new level status = %q, expected playing", lvl.Status())
	}
}

func TestNewMalformed(t *testing.T) {
	tests := []struct {
		name string
		plan []string
	}{
		{"no player", []string{"  o ", "xxxx"}},
		{"two players", []string{"@  @", "xxxx"}},
		{"ragged rows", []string{"@   ", "xxx"}},
		{"empty plan", nil},
		{"empty rows", []string{"", ""}},
		{"unknown glyph", []string{"@ # ", "xxxx"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := New(tc.plan, Options{})
			if err == nil {
				t.Fatalf("expected error, got level %v", lvl)
			}
			if !errors.Is(err, ErrMalformedLevel) {
				t.Errorf("error should wrap ErrMalformedLevel: %v", err)
			}
			var mle *MalformedLevelError
			if !errors.As(err, &mle) {
				t.Errorf("error should be a *MalformedLevelError: %T", err)
			}
		})
	}
}

func TestNewMalformedPosition(t *testing.T) {
	_, err := New([]string{"@  ", " @ "}, Options{})

	var mle *MalformedLevelError
	if !errors.As(err, &mle) {
		t.Fatalf("expected *MalformedLevelError, got %v", err)
	}
	if mle.Row != 1 || mle.Col != 1 {
		t.Errorf("second spawn reported at row %d col %d, expected 1,1", mle.Row, mle.Col)
	}
}

func TestNewInvalidPhysics(t *testing.T) {
	p := DefaultPhysics()
	p.MaxStep = 0

	_, err := New([]string{"@", "x"}, Options{Physics: p})
	if !errors.Is(err, ErrInvalidPhysics) {
		t.Errorf("expected ErrInvalidPhysics, got %v", err)
	}
}

func TestNewGrid(t *testing.T) {
	lvl := mustLevel(t, nil,
		"x!@o",
		"=|vd",
	)

	expected := [][]FieldType{
		{FieldWall, FieldLava, FieldNone, FieldNone},
		{FieldNone, FieldNone, FieldNone, FieldNone},
	}
	grid := lvl.Grid()
	for y := range expected {
		for x := range expected[y] {
			if grid[y][x] != expected[y][x] {
				t.Errorf("grid[%d][%d] = %q, expected %q", y, x, grid[y][x], expected[y][x])
			}
		}
	}

	// Grid returns a copy
	grid[0][0] = FieldNone
	if lvl.FieldAt(0, 0) != FieldWall {
		t.Error("modifying Grid() result must not change the level")
	}

	if got := len(lvl.Actors()); got != 6 {
		t.Errorf("expected 6 actors, got %d", got)
	}
	if lvl.FishTotal() != 1 {
		t.Errorf("FishTotal() = %d, expected 1", lvl.FishTotal())
	}
}

func TestObstacleAtBounds(t *testing.T) {
	lvl := mustLevel(t, nil,
		"     ",
		"  @  ",
		"     ",
	)

	tests := []struct {
		name     string
		pos      core.Vector
		size     core.Vector
		expected FieldType
	}{
		{"inside empty", core.V(1, 0), core.V(1, 1), FieldNone},
		{"past left", core.V(-0.5, 1), core.V(1, 1), FieldWall},
		{"fully left", core.V(-5, 1), core.V(1, 1), FieldWall},
		{"past right", core.V(4.5, 1), core.V(1, 1), FieldWall},
		{"past top", core.V(1, -0.1), core.V(1, 1), FieldWall},
		{"past bottom", core.V(1, 2.5), core.V(1, 1), FieldLava},
		{"fully below", core.V(1, 10), core.V(1, 1), FieldLava},
		{"left wins over bottom", core.V(-1, 10), core.V(1, 1), FieldWall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lvl.ObstacleAt(tc.pos, tc.size); got != tc.expected {
				t.Errorf("ObstacleAt(%v, %v) = %q, expected %q", tc.pos, tc.size, got, tc.expected)
			}
		})
	}
}

func TestObstacleAtRowMajor(t *testing.T) {
	lvl := mustLevel(t, nil,
		"@   ",
		" !x ",
		" x  ",
	)

	// Row 1 is scanned before row 2, and within row 1 lava comes first
	if got := lvl.ObstacleAt(core.V(1, 1), core.V(2, 2)); got != FieldLava {
		t.Errorf("expected lava from row-major scan, got %q", got)
	}
	if got := lvl.ObstacleAt(core.V(2, 1), core.V(1, 2)); got != FieldWall {
		t.Errorf("expected wall, got %q", got)
	}
	// Exact tile edges do not reach into the next cell
	if got := lvl.ObstacleAt(core.V(0, 0), core.V(1, 1)); got != FieldNone {
		t.Errorf("box ending on a tile edge should be clear, got %q", got)
	}
}

func TestObstacleAtMonotonic(t *testing.T) {
	lvl := mustLevel(t, nil,
		"        ",
		"  x   ! ",
		" @      ",
		"   xx   ",
		"        ",
	)

	for px := -1.0; px <= 8; px += 0.5 {
		for py := -1.0; py <= 5; py += 0.5 {
			pos := core.V(px, py)
			small := core.V(0.5, 0.5)
			if lvl.ObstacleAt(pos, small) == FieldNone {
				continue
			}
			for _, grow := range []core.Vector{core.V(0.5, 0), core.V(0, 0.5), core.V(1.5, 1.5)} {
				if lvl.ObstacleAt(pos, small.Plus(grow)) == FieldNone {
					t.Fatalf("enlarging box at %v by %v removed the obstruction", pos, grow)
				}
			}
		}
	}
}

func TestActorAtStrictOverlap(t *testing.T) {
	lvl := mustLevel(t, nil,
		"@o  o",
		"xxxxx",
	)
	player := lvl.Player()

	// Player spans x in [0, 1.5), the first fish starts at 1.2
	other := lvl.ActorAt(player)
	if other == nil || other.Kind() != KindFish {
		t.Fatalf("expected to find the adjacent fish, got %v", other)
	}

	// A fish whose left edge touches the player's right edge is not overlap
	fish := other.(*Fish)
	fish.pos = core.V(1.5, 0.1)
	if got := lvl.ActorAt(player); got != nil {
		t.Errorf("touching edges should not overlap, got %v", got.Kind())
	}

	// An actor never reports itself
	if got := lvl.ActorAt(fish); got != nil {
		t.Errorf("fish should not overlap anything, got %v", got.Kind())
	}
}

func TestPlayerTouchedLava(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec, "@ ", "xx")

	lvl.PlayerTouched(KindLava, nil)
	if lvl.Status() != StatusLost || lvl.FinishDelay() != 3 {
		t.Fatalf("status=%q delay=%v, expected lost and 3", lvl.Status(), lvl.FinishDelay())
	}

	// A second deadly contact does not restart the delay or replay the sound
	lvl.finishDelay = 1.5
	lvl.PlayerTouched(KindDog, nil)
	if lvl.FinishDelay() != 1.5 {
		t.Errorf("second contact changed finish delay to %v", lvl.FinishDelay())
	}
	if rec.count(EventDeath) != 1 {
		t.Errorf("death events = %d, expected 1", rec.count(EventDeath))
	}

	// Walls and unknown kinds are ignored
	lvl.PlayerTouched(KindWall, nil)
	lvl.PlayerTouched(KindNone, nil)
	if len(rec.events) != 1 {
		t.Errorf("unexpected events: %v", rec.events)
	}
}

func TestPlayerTouchedFishAfterLoss(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec, "@ o", "xxx")
	fish := firstOfKind(lvl, KindFish)

	lvl.PlayerTouched(KindLava, nil)
	lvl.PlayerTouched(KindFish, fish)

	// The fish is still collected, but a lost level stays lost
	if lvl.FishRemaining() != 0 {
		t.Errorf("fish should be collected after loss, %d remaining", lvl.FishRemaining())
	}
	if rec.count(EventCoin) != 1 {
		t.Errorf("coin events = %d, expected 1", rec.count(EventCoin))
	}
	if lvl.Status() != StatusLost {
		t.Errorf("status = %q, expected lost", lvl.Status())
	}
}

func TestPlayerTouchedDeferredRemoval(t *testing.T) {
	lvl := mustLevel(t, nil, "@ o o", "xxxxx")
	fish := firstOfKind(lvl, KindFish)

	lvl.PlayerTouched(KindFish, fish)

	// The fish is gone from every query right away
	for _, a := range lvl.Actors() {
		if a == fish {
			t.Fatal("collected fish still listed by Actors()")
		}
	}
	if lvl.FishRemaining() != 1 {
		t.Errorf("FishRemaining() = %d, expected 1", lvl.FishRemaining())
	}
	if lvl.Status() != StatusPlaying {
		t.Errorf("status = %q, one fish is left", lvl.Status())
	}

	// The backing list is compacted by the next step
	lvl.Animate(0.01, core.Intent{})
	if len(lvl.actors) != 2 {
		t.Errorf("actor list should be compacted to 2, got %d", len(lvl.actors))
	}
}

func TestIsFinished(t *testing.T) {
	lvl := mustLevel(t, nil, "@", "x")

	if lvl.IsFinished() {
		t.Error("playing level must not be finished")
	}
	lvl.status = StatusWon
	lvl.finishDelay = 0
	if lvl.IsFinished() {
		t.Error("finish delay of exactly zero is not finished")
	}
	lvl.finishDelay = -0.01
	if !lvl.IsFinished() {
		t.Error("decided level with negative delay should be finished")
	}
}
