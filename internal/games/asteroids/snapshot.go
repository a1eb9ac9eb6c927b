package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// ShipView is the renderable state of the ship.
type ShipView struct {
	X, Y      float64
	Heading   float64 // Degrees; 0 = up, counter-clockwise positive
	Alive     bool    // False once an obstacle destroyed the ship
	Thrusting bool    // Thrust held on the last simulated tick
}

// ProjectileView is the renderable state of one projectile.
type ProjectileView struct {
	X, Y float64
	Life int
}

// ObstacleView is the renderable state of one obstacle.
type ObstacleView struct {
	X, Y float64
	W, H float64
}

// Snapshot is a plain-data record of one tick: everything a display layer
// needs and nothing it could simulate with. The renderer consumes it without
// touching game internals.
type Snapshot struct {
	Tick        int
	Ship        ShipView
	Projectiles []ProjectileView
	Obstacles   []ObstacleView
	State       core.GameState
}

// Snapshot captures the entity states at the end of the current tick.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: g.tickCount,
		Ship: ShipView{
			X:         g.ship.Pos.X,
			Y:         g.ship.Pos.Y,
			Heading:   g.ship.Heading,
			Alive:     !(g.gameOver && g.cause == core.CauseShipDestroyed),
			Thrusting: g.thrusting,
		},
		Projectiles: make([]ProjectileView, 0, len(g.projectiles)),
		Obstacles:   make([]ObstacleView, 0, g.obstacles.Len()),
		State:       g.State(),
	}

	for _, p := range g.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{X: p.Pos.X, Y: p.Pos.Y, Life: p.Life})
	}
	for _, o := range g.obstacles.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			X: o.Pos.X,
			Y: o.Pos.Y,
			W: g.cfg.Obstacles.Width,
			H: g.cfg.Obstacles.Height,
		})
	}
	return snap
}
