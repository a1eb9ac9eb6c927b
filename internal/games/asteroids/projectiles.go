package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Projectile is a short-lived shot travelling at a fixed velocity.
type Projectile struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life int // Remaining ticks
}

// Box returns the projectile's collision box.
func (p Projectile) Box(w, h float64) core.Box {
	return core.BoxAround(p.Pos, w, h)
}

// advanceProjectiles drops projectiles whose lifetime ran out on a previous
// tick, then integrates and ages the survivors. An expired projectile is
// therefore gone before this tick's collision pass, and a projectile fired
// with lifetime L is live for exactly L ticks.
func (g *Game) advanceProjectiles() {
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Life <= 0 {
			continue
		}
		p.Pos = core.Wrap(p.Pos.Add(p.Vel), g.fieldW, g.fieldH)
		p.Life--
		live = append(live, p)
	}
	g.projectiles = live
}
