package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Glyphs
const (
	WallChar       = '█'
	LavaChar       = '~'
	MovingLavaChar = '▓'
	PlayerChar     = '@'
	DeadPlayerChar = 'x'
	FishChar       = 'o'
	DogChar        = 'd'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.state == stateFailed {
		g.renderError(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderActors(dst)
	g.renderOverlay(dst)
}

// renderHUD draws level, fish, score, attempt and time on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	plan := g.plans[g.index]
	left := fmt.Sprintf("%d/%d %s", g.index+1, len(g.plans), plan.Title())
	right := fmt.Sprintf("Fish %d/%d  Score %d  Try %d  %5.1fs",
		g.collected(), g.level.FishTotal(), g.Score(), g.attempts, g.level.Elapsed())

	if room := dst.Width() - len(right) - 3; len([]rune(left)) > room {
		left = truncate(left, room)
	}
	dst.DrawTextColored(1, 0, left, core.ColorHUD)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorHUD)
}

// renderGrid draws walls and static lava inside the viewport.
func (g *Game) renderGrid(dst *core.Screen) {
	for y := range g.level.Height() {
		for x := range g.level.Width() {
			switch g.level.FieldAt(x, y) {
			case world.FieldWall:
				g.fillTile(dst, x, y, WallChar, core.ColorWall)
			case world.FieldLava:
				g.fillTile(dst, x, y, LavaChar, core.ColorLava)
			}
		}
	}
}

// renderActors draws every live actor, player last so it stays on top.
func (g *Game) renderActors(dst *core.Screen) {
	for _, a := range g.level.Actors() {
		switch a.Kind() {
		case world.KindFish:
			g.fillBox(dst, a.Pos(), a.Size(), FishChar, core.ColorFish)
		case world.KindDog:
			g.fillBox(dst, a.Pos(), a.Size(), DogChar, core.ColorDog)
		case world.KindLava:
			g.fillBox(dst, a.Pos(), a.Size(), MovingLavaChar, core.ColorOrange)
		}
	}

	p := g.level.Player()
	glyph, color := rune(PlayerChar), core.ColorPlayer
	switch g.level.Status() {
	case world.StatusLost:
		glyph, color = DeadPlayerChar, core.ColorRed
	case world.StatusWon:
		color = core.ColorGreen
	}
	g.fillBox(dst, p.Pos(), p.Size(), glyph, color)
}

// fillTile paints one grid tile.
func (g *Game) fillTile(dst *core.Screen, x, y int, r rune, c core.Color) {
	for dx := range tileCols {
		g.plot(dst, x*tileCols+dx, y, r, c)
	}
}

// fillBox paints every cell a level-space box touches.
func (g *Game) fillBox(dst *core.Screen, pos, size core.Vector, r rune, c core.Color) {
	x0 := int(math.Floor(pos.X * tileCols))
	x1 := int(math.Ceil((pos.X + size.X) * tileCols))
	y0 := int(math.Floor(pos.Y))
	y1 := int(math.Ceil(pos.Y + size.Y))
	for y := y0; y < max(y1, y0+1); y++ {
		for x := x0; x < max(x1, x0+1); x++ {
			g.plot(dst, x, y, r, c)
		}
	}
}

// plot draws a level cell if it falls inside the viewport.
func (g *Game) plot(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	sx, sy := g.camera.ToScreen(cx, cy)
	if !g.camera.Visible(sx, sy) {
		return
	}
	dst.SetColored(sx, sy+hudRows, r, c)
}

// renderOverlay draws pause and progression messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case statePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	case stateComplete:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.Score())
		g.drawCenteredBox(dst, "CAMPAIGN COMPLETE", subtitle)
		return
	}

	remaining := math.Max(g.level.FinishDelay(), 0)
	switch g.level.Status() {
	case world.StatusLost:
		g.drawCenteredBox(dst, "YOU DIED", fmt.Sprintf("Retrying in %.1fs", remaining))
	case world.StatusWon:
		g.drawCenteredBox(dst, "LEVEL CLEAR", fmt.Sprintf("Time %.2fs", g.runTime))
	}
}

// renderError shows why the campaign could not start.
func (g *Game) renderError(dst *core.Screen) {
	msg := "unknown error"
	if g.loadErr != nil {
		msg = g.loadErr.Error()
	}
	g.drawCenteredBox(dst, "LEVEL ERROR", truncate(msg, dst.Width()-6))
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// truncate shortens s to at most n runes, marking the cut with "…".
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
