package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	ProjectileChar = '•'
	ObstacleChar   = '▓'
	FlameChar      = '░'
	WreckChar      = '✕'
)

// shipGlyphs holds one glyph per 45-degree heading octant, starting at
// 0 degrees (up) and going counter-clockwise.
var shipGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()

	// Draw obstacles
	for _, o := range snap.Obstacles {
		drawObstacle(dst, o)
	}

	// Draw projectiles
	for _, p := range snap.Projectiles {
		dst.SetCell(roundToCell(p.X), roundToCell(p.Y), ProjectileChar, core.ColorBrightYellow)
	}

	// Draw ship, with the exhaust flame one cell behind it while thrusting
	shipX := roundToCell(snap.Ship.X)
	shipY := roundToCell(snap.Ship.Y)
	if snap.Ship.Alive {
		if snap.Ship.Thrusting {
			drawFlame(dst, snap.Ship)
		}
		dst.SetCell(shipX, shipY, shipGlyph(snap.Ship.Heading), core.ColorBrightCyan)
	} else {
		dst.SetCell(shipX, shipY, WreckChar, core.ColorBrightRed)
	}

	if snap.State.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}

	if snap.State.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Press R to restart", snap.State.Cause), core.ColorBrightRed)
	}
}

// shipGlyph picks the glyph for the octant nearest to the given heading.
func shipGlyph(heading float64) rune {
	octant := int(math.Round(heading/45)) % 8
	return shipGlyphs[octant]
}

// drawFlame renders the exhaust cell directly behind the ship, opposite its
// heading, wrapped like everything else on the field.
func drawFlame(dst *core.Screen, s ShipView) {
	pos := core.Vec2{X: s.X, Y: s.Y}.Sub(core.FromHeading(s.Heading))
	pos = core.Wrap(pos, float64(dst.Width()), float64(dst.Height()))
	dst.SetCell(roundToCell(pos.X), roundToCell(pos.Y), FlameChar, core.ColorOrange)
}

// drawObstacle renders a single obstacle as a filled block matching its hitbox.
func drawObstacle(dst *core.Screen, o ObstacleView) {
	w := int(math.Round(o.W))
	h := int(math.Round(o.H))
	left := roundToCell(o.X - o.W/2)
	top := roundToCell(o.Y - o.H/2)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(left+dx, top+dy, ObstacleChar, core.ColorGray)
		}
	}
}

// roundToCell maps a continuous field coordinate to its screen cell.
func roundToCell(v float64) int {
	return int(math.Round(v))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, titleColor)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
