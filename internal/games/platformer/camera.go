package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// tileCols is the number of terminal columns per tile. Terminal cells are
// roughly twice as tall as wide, so a tile spans two columns and one row.
const tileCols = 2

// Camera is a viewport over the level, measured in screen cells.
// Levels smaller than the viewport are centered through the pad offsets.
type Camera struct {
	X, Y       int // Top-left visible cell of the level
	W, H       int // Viewport size
	PadX, PadY int // Screen offset when the level is smaller than the viewport
}

// Resize sets the viewport size.
func (c *Camera) Resize(w, h int) {
	c.W = max(w, 0)
	c.H = max(h, 0)
}

// Center puts the player in the middle of the viewport.
func (c *Camera) Center(lvl *world.Level) {
	x, y, w, h := playerCells(lvl)
	c.X = int(math.Floor(x+w/2)) - c.W/2
	c.Y = int(math.Floor(y+h/2)) - c.H/2
	c.clamp(lvl)
}

// Follow scrolls just enough to keep the player out of the outer third of
// the viewport on every side.
func (c *Camera) Follow(lvl *world.Level) {
	x, y, w, h := playerCells(lvl)
	c.X = follow(c.X, c.W, x, w)
	c.Y = follow(c.Y, c.H, y, h)
	c.clamp(lvl)
}

// ToScreen converts level cell coordinates to screen coordinates relative
// to the top-left corner of the viewport.
func (c *Camera) ToScreen(cx, cy int) (int, int) {
	return cx - c.X + c.PadX, cy - c.Y + c.PadY
}

// Visible reports whether a viewport-relative cell is inside the viewport.
func (c *Camera) Visible(sx, sy int) bool {
	return core.NewRect(0, 0, c.W, c.H).Contains(sx, sy)
}

func (c *Camera) clamp(lvl *world.Level) {
	c.X, c.PadX = clampAxis(c.X, c.W, lvl.Width()*tileCols)
	c.Y, c.PadY = clampAxis(c.Y, c.H, lvl.Height())
}

// follow returns the new offset along one axis for a target at pos with
// the given size.
func follow(offset, view int, pos, size float64) int {
	margin := float64(view) / 3
	lo := float64(offset) + margin
	hi := float64(offset+view) - margin
	switch {
	case pos < lo:
		return int(math.Floor(pos - margin))
	case pos+size > hi:
		return int(math.Ceil(pos+size+margin)) - view
	}
	return offset
}

// clampAxis keeps the viewport inside the level, or centers the level when
// it is smaller than the viewport.
func clampAxis(offset, view, extent int) (int, int) {
	if extent <= view {
		return 0, (view - extent) / 2
	}
	return core.Clamp(offset, 0, extent-view), 0
}

// playerCells returns the player's box in level cells.
func playerCells(lvl *world.Level) (x, y, w, h float64) {
	p := lvl.Player()
	pos, size := p.Pos(), p.Size()
	return pos.X * tileCols, pos.Y, size.X * tileCols, size.Y
}
