package world

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// tallPlan leaves enough headroom for a full jump.
var tallPlan = []string{
	"            ",
	"            ",
	"            ",
	"            ",
	"            ",
	"            ",
	"            ",
	"            ",
	"   @        ",
	"xxxxxxxxxxxx",
}

func TestPlayerJump(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec, tallPlan...)
	player := lvl.Player()

	lvl.Animate(0.05, core.Intent{Up: true})

	if player.Speed().Y != -17 {
		t.Fatalf("speed.Y = %v after jump, expected -17", player.Speed().Y)
	}
	if rec.count(EventJump) != 1 {
		t.Fatalf("jump events = %d, expected 1", rec.count(EventJump))
	}

	// Holding jump in the air does nothing
	for i := 0; i < 5; i++ {
		lvl.Animate(0.05, core.Intent{Up: true})
	}
	if rec.count(EventJump) != 1 {
		t.Errorf("airborne jump emitted events: %d", rec.count(EventJump))
	}
	if player.Pos().Y >= 7.5 {
		t.Errorf("player should be rising, y = %v", player.Pos().Y)
	}

	// Land again
	for i := 0; i < 40; i++ {
		lvl.Animate(0.05, core.Intent{})
	}
	if math.Abs(player.Pos().Y-7.5) > 0.1 || player.Speed().Y != 0 {
		t.Errorf("player should stand on the floor again, pos=%v speed=%v", player.Pos(), player.Speed())
	}
	if lvl.Status() != StatusPlaying {
		t.Errorf("status = %q, expected playing", lvl.Status())
	}
}

func TestPlayerCeilingStopsWithoutJump(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec,
		"xxxxx",
		"     ",
		"     ",
		"  @  ",
		"xxxxx",
	)
	player := lvl.Player()
	player.pos = core.V(2, 1.05)
	player.speed = core.V(0, -10)

	lvl.Animate(0.05, core.Intent{Up: true})

	if player.Speed().Y != 0 {
		t.Errorf("head bump should zero vertical speed, got %v", player.Speed().Y)
	}
	if player.Pos().Y != 1.05 {
		t.Errorf("blocked move should not commit, y = %v", player.Pos().Y)
	}
	if rec.count(EventJump) != 0 {
		t.Error("hitting a ceiling must not count as a jump")
	}
}

func TestPlayerHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		in       core.Intent
		expected float64
	}{
		{"idle", core.Intent{}, 3},
		{"right", core.Intent{Right: true}, 6.5},
		{"left", core.Intent{Left: true}, 0.2},
		{"both cancel", core.Intent{Left: true, Right: true}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := mustLevel(t, nil,
				"            ",
				"            ",
				"   @        ",
				"xxxxxxxxxxxx",
			)
			// Right runs 3.5 tiles; left stops short of the border
			for i := 0; i < 10; i++ {
				lvl.Animate(0.05, tc.in)
			}
			if got := lvl.Player().Pos().X; math.Abs(got-tc.expected) > 1e-6 {
				t.Errorf("x = %v, expected about %v", got, tc.expected)
			}
		})
	}
}

func TestPlayerWallBlocks(t *testing.T) {
	lvl := mustLevel(t, nil,
		"       ",
		"  @  x ",
		"xxxxxxx",
	)
	for i := 0; i < 20; i++ {
		lvl.Animate(0.05, core.Intent{Right: true})
	}

	p := lvl.Player()
	if right := p.Pos().X + p.Size().X; right > 5 {
		t.Errorf("player moved into the wall, right edge %v", right)
	}
	if lvl.Status() != StatusPlaying {
		t.Errorf("walls are harmless, status = %q", lvl.Status())
	}
}

func TestPlayerGlide(t *testing.T) {
	lvl := mustLevel(t, nil, tallPlan...)
	p := lvl.Player()
	p.pos = core.V(3, 3)
	p.speed = core.V(0, 5)

	lvl.Animate(0.5, core.Intent{Shift: true})

	if p.Pos().Y != 3 || p.Speed().Y != 0 {
		t.Errorf("gliding should hold altitude, pos=%v speed=%v", p.Pos(), p.Speed())
	}
}

func TestPlayerDiesInLava(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec,
		"      ",
		"  @   ",
		"!!!!!!",
	)
	p := lvl.Player()

	lvl.Animate(0.05, core.Intent{})
	if lvl.Status() != StatusLost {
		t.Fatalf("status = %q, expected lost", lvl.Status())
	}
	if lvl.FinishDelay() != 3 {
		t.Errorf("FinishDelay() = %v, expected 3", lvl.FinishDelay())
	}

	x := p.Pos().X
	y := p.Pos().Y
	for i := 0; i < 59; i++ {
		lvl.Animate(0.05, core.Intent{Right: true, Up: true})
	}
	if p.Pos().X != x {
		t.Errorf("a lost player must ignore input, x moved %v -> %v", x, p.Pos().X)
	}
	if p.Pos().Y <= y {
		t.Errorf("a lost player sinks, y stayed at %v", p.Pos().Y)
	}
	if p.Size().Y < 0 {
		t.Errorf("player height went negative: %v", p.Size().Y)
	}
	if lvl.IsFinished() {
		t.Error("level finished before the lose delay ran out")
	}

	lvl.Animate(0.1, core.Intent{})
	if !lvl.IsFinished() {
		t.Errorf("level should be finished, delay %v", lvl.FinishDelay())
	}
	if rec.count(EventDeath) != 1 {
		t.Errorf("death events = %d, expected 1", rec.count(EventDeath))
	}
	if rec.count(EventJump) != 0 {
		t.Error("a lost player must not jump")
	}
}

func TestPlayerWalksIntoLava(t *testing.T) {
	lvl := mustLevel(t, nil,
		"       ",
		"   @ ! ",
		"xxxxxxx",
	)
	for i := 0; i < 4; i++ {
		lvl.Animate(0.05, core.Intent{Right: true})
	}
	if lvl.Status() != StatusLost {
		t.Errorf("side contact with lava should lose, status = %q", lvl.Status())
	}
}

func TestPlayerCollectsFish(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec,
		"       ",
		"  @o   ",
		"xxxxxxx",
	)

	lvl.Animate(0.05, core.Intent{})

	if lvl.Status() != StatusWon {
		t.Fatalf("status = %q, expected won", lvl.Status())
	}
	if lvl.FinishDelay() != 1 {
		t.Errorf("FinishDelay() = %v, expected 1", lvl.FinishDelay())
	}
	if rec.count(EventCoin) != 1 {
		t.Errorf("coin events = %d, expected 1", rec.count(EventCoin))
	}
	if firstOfKind(lvl, KindFish) != nil {
		t.Error("collected fish is still live")
	}

	lvl.Animate(0.5, core.Intent{})
	if lvl.IsFinished() {
		t.Error("won level finished too early")
	}
	lvl.Animate(0.6, core.Intent{})
	if !lvl.IsFinished() {
		t.Error("won level should be finished")
	}
}

func TestPlayerCollectsOneOfTwoFish(t *testing.T) {
	lvl := mustLevel(t, nil,
		"         ",
		"  @o   o ",
		"xxxxxxxxx",
	)

	lvl.Animate(0.05, core.Intent{})

	if lvl.Status() != StatusPlaying {
		t.Errorf("status = %q, one fish is left", lvl.Status())
	}
	if lvl.FishRemaining() != 1 || lvl.FishTotal() != 2 {
		t.Errorf("fish remaining=%d total=%d, expected 1 and 2", lvl.FishRemaining(), lvl.FishTotal())
	}
}

func TestFishWobbleBounded(t *testing.T) {
	lvl := mustLevel(t, nil,
		"         ",
		"       o ",
		" @       ",
		"xxxxxxxxx",
	)
	fish := firstOfKind(lvl, KindFish).(*Fish)
	base := fish.BasePos()
	if math.Abs(base.X-7.2) > epsilon || math.Abs(base.Y-1.1) > epsilon {
		t.Fatalf("fish anchor = %v, expected (7.2, 1.1)", base)
	}

	amplitude := lvl.Physics().WobbleDist
	for i := 0; i < 300; i++ {
		lvl.Animate(1.0/60, core.Intent{})
		pos := fish.Pos()
		if pos.X != base.X {
			t.Fatalf("fish drifted horizontally to %v", pos.X)
		}
		if math.Abs(pos.Y-base.Y) > amplitude+epsilon {
			t.Fatalf("fish wobbled %v from its anchor", pos.Y-base.Y)
		}
	}
}

func TestDogBouncesOffSideWall(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec,
		"     ",
		"     ",
		"@   d",
		"xxxxx",
	)
	dog := firstOfKind(lvl, KindDog).(*Dog)
	start := dog.Pos()

	lvl.Animate(0.05, core.Intent{})

	if dog.Speed().Y != -17 {
		t.Errorf("dog speed.Y = %v, expected -17", dog.Speed().Y)
	}
	if dog.Pos() != start {
		t.Errorf("blocked dog moved from %v to %v", start, dog.Pos())
	}
	if rec.count(EventDogJump) != 1 {
		t.Errorf("dog jump events = %d, expected 1", rec.count(EventDogJump))
	}
	if lvl.Status() != StatusPlaying {
		t.Errorf("walls are harmless, status = %q", lvl.Status())
	}
}

func TestDogKeepsBouncing(t *testing.T) {
	rec := &recorder{}
	plan := append([]string(nil), tallPlan...)
	plan[8] = "   @    d   "
	lvl := mustLevel(t, rec, plan...)

	for i := 0; i < 60; i++ {
		lvl.Animate(0.05, core.Intent{})
	}
	if rec.count(EventDogJump) < 2 {
		t.Errorf("dog bounced %d times in 3s, expected at least 2", rec.count(EventDogJump))
	}
	if lvl.Status() != StatusPlaying {
		t.Errorf("status = %q, expected playing", lvl.Status())
	}
}

func TestDogInLavaLosesLevel(t *testing.T) {
	lvl := mustLevel(t, nil,
		"          ",
		"@     d   ",
		"xxxx!!!!!!",
	)

	lvl.Animate(0.05, core.Intent{})

	if lvl.Status() != StatusLost {
		t.Errorf("dog landing in lava should lose the level, status = %q", lvl.Status())
	}
}

func TestPlayerTouchingDogLoses(t *testing.T) {
	rec := &recorder{}
	lvl := mustLevel(t, rec,
		"      ",
		" @d   ",
		"xxxxxx",
	)

	lvl.Animate(0.05, core.Intent{})

	if lvl.Status() != StatusLost {
		t.Errorf("status = %q, expected lost", lvl.Status())
	}
	if rec.count(EventDeath) != 1 {
		t.Errorf("death events = %d, expected 1", rec.count(EventDeath))
	}
}

func TestLavaBounces(t *testing.T) {
	lvl := mustLevel(t, nil,
		"x=   x",
		"      ",
		"  @   ",
		"xxxxxx",
	)
	lava := firstOfKind(lvl, KindLava).(*Lava)

	reversed := false
	for i := 0; i < 60 && !reversed; i++ {
		lvl.Animate(0.05, core.Intent{})
		reversed = lava.Speed().X < 0
	}
	if !reversed {
		t.Fatal("lava never reversed at the wall")
	}
	if right := lava.Pos().X + lava.Size().X; right > 5 {
		t.Errorf("lava entered the wall, right edge %v", right)
	}
}

func TestLavaDrips(t *testing.T) {
	lvl := mustLevel(t, nil,
		"  v    ",
		"       ",
		"       ",
		"@      ",
		"xxxxxxx",
	)
	lava := firstOfKind(lvl, KindLava).(*Lava)
	spawn := lava.Pos()
	if !lava.Dripping() {
		t.Fatal("'v' lava should drip")
	}

	moved, reset := false, false
	for i := 0; i < 40 && !reset; i++ {
		lvl.Animate(0.05, core.Intent{})
		if lava.Pos().Y > spawn.Y {
			moved = true
		} else if moved && lava.Pos() == spawn {
			reset = true
		}
	}
	if !reset {
		t.Error("dripping lava never restarted from its spawn")
	}
	if lava.Speed() != core.V(0, 3) {
		t.Errorf("dripping lava speed changed to %v", lava.Speed())
	}
}

func TestHazardSpeedScalesLava(t *testing.T) {
	p := DefaultPhysics()
	p.HazardSpeed = 2

	lvl, err := New([]string{"=|v", "   ", "@  ", "xxx"}, Options{Physics: p})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	expected := []core.Vector{core.V(4, 0), core.V(0, 4), core.V(0, 6)}
	i := 0
	for _, a := range lvl.Actors() {
		lava, ok := a.(*Lava)
		if !ok {
			continue
		}
		if lava.Speed() != expected[i] {
			t.Errorf("lava %d speed = %v, expected %v", i, lava.Speed(), expected[i])
		}
		i++
	}
}

func TestPhysicsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Physics)
		ok     bool
	}{
		{"default", func(*Physics) {}, true},
		{"zero step", func(p *Physics) { p.MaxStep = 0 }, false},
		{"negative step", func(p *Physics) { p.MaxStep = -0.1 }, false},
		{"nan gravity", func(p *Physics) { p.Gravity = math.NaN() }, false},
		{"infinite jump", func(p *Physics) { p.JumpSpeed = math.Inf(1) }, false},
		{"negative wobble", func(p *Physics) { p.WobbleDist = -1 }, false},
		{"low gravity", func(p *Physics) { p.Gravity = 5 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultPhysics()
			tc.mutate(&p)
			err := p.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}
}
