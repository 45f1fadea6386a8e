package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

var rightIntent = core.Intent{Right: true}

func TestFollowMargins(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		pos    float64
		want   int
	}{
		{"inside middle third", 0, 15, 0},
		{"left of margin", 20, 25, 15},
		{"right of margin", 0, 25, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := follow(tt.offset, 30, tt.pos, 2); got != tt.want {
				t.Errorf("follow(%d, 30, %v, 2) = %d, want %d", tt.offset, tt.pos, got, tt.want)
			}
		})
	}
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name                 string
		offset, view, extent int
		wantOffset, wantPad  int
	}{
		{"before start", -5, 30, 100, 0, 0},
		{"past end", 90, 30, 100, 70, 0},
		{"inside", 40, 30, 100, 40, 0},
		{"level smaller than view", 3, 30, 20, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, pad := clampAxis(tt.offset, tt.view, tt.extent)
			if offset != tt.wantOffset || pad != tt.wantPad {
				t.Errorf("clampAxis = (%d, %d), want (%d, %d)", offset, pad, tt.wantOffset, tt.wantPad)
			}
		})
	}
}

func TestCameraKeepsPlayerVisible(t *testing.T) {
	row := "@" + strings.Repeat(" ", 98) + "o"
	lvl, err := world.New([]string{
		strings.Repeat(" ", 100),
		row,
		strings.Repeat("x", 100),
	}, world.Options{Seed: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var cam Camera
	cam.Resize(40, 10)
	cam.Center(lvl)
	if cam.X != 0 {
		t.Errorf("camera should clamp to the left edge, X=%d", cam.X)
	}
	if cam.PadY != 3 {
		t.Errorf("short level should be padded vertically, PadY=%d", cam.PadY)
	}

	for range 200 {
		lvl.Animate(0.05, rightIntent)
		cam.Follow(lvl)

		x, _, w, _ := playerCells(lvl)
		sx, _ := cam.ToScreen(int(x), 0)
		ex, _ := cam.ToScreen(int(x+w), 0)
		if sx < 0 || ex > cam.W {
			t.Fatalf("player left the viewport: cells %d..%d, camera %+v", sx, ex, cam)
		}
	}
	if cam.X == 0 {
		t.Error("camera should have scrolled right")
	}
}

func TestCameraVisible(t *testing.T) {
	cam := Camera{W: 10, H: 4}

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 3, true},
		{10, 0, false},
		{0, 4, false},
		{-1, 2, false},
		{5, -1, false},
	}

	for _, tc := range tests {
		if got := cam.Visible(tc.x, tc.y); got != tc.want {
			t.Errorf("Visible(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}
