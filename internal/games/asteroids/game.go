// Package asteroids implements a minimal Asteroids-style arcade game.
// The player pilots a ship with inertia across a toroidal field, firing
// projectiles at drifting obstacles; any contact with an obstacle ends the
// run. Single level, single life, no score.
package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// GameID is the registry identifier for this game.
const GameID = "asteroids"

// Game implements the asteroids simulation. All state advances in fixed
// ticks through Step; there is no clock, goroutine, or I/O anywhere below
// this type.
type Game struct {
	ship        Ship
	projectiles []Projectile
	obstacles   *ObstacleField
	fieldW      float64
	fieldH      float64
	gameOver    bool
	paused      bool
	cause       core.EndCause
	runtime     core.RuntimeConfig
	cfg         config.AsteroidsConfig
	tickCount   int
	fireHeld    bool // Previous tick's fire bit, for edge detection
	thrusting   bool // Thrust held on the last simulated tick, drives the exhaust flame
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new asteroids game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the run. The ship spawns at rest at the
// field center facing up; obstacles are re-rolled from the runtime seed, so
// the same seed reproduces the same layout.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.fieldW = float64(runtime.ScreenW)
	g.fieldH = float64(runtime.ScreenH)

	// Load game config
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	g.cfg = cfg

	g.ship = NewShip(core.Vec2{X: g.fieldW / 2, Y: g.fieldH / 2})
	g.projectiles = g.projectiles[:0]
	g.gameOver = false
	g.paused = false
	g.cause = core.CauseNone
	g.tickCount = 0
	g.fireHeld = false
	g.thrusting = false

	if g.obstacles == nil {
		g.obstacles = NewObstacleField(runtime.Seed, g.fieldW, g.fieldH, &g.cfg.Obstacles)
	} else {
		g.obstacles.UpdateFieldSize(g.fieldW, g.fieldH)
		g.obstacles.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick. Phase order is fixed: input intents,
// ship motion, projectile motion, obstacle motion, projectile hits, ship
// hit. Once the run is over, Step latches and returns the terminal state
// untouched; only Reset starts a new run.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// A quit intent ends the run before any simulation this tick.
	if in.Has(core.ActionQuit) {
		g.gameOver = true
		g.cause = core.CausePlayerQuit
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Rotation and thrust are held intents; fire is edge-triggered, so a
	// held fire bit spawns exactly one projectile until released.
	g.ship.Steer(in, &g.cfg.Ship)
	g.thrusting = in.Has(core.ActionThrust)
	fireDown := in.Has(core.ActionFire)
	if fireDown && !g.fireHeld {
		p := g.ship.Fire(&g.cfg)
		p.Pos = core.Wrap(p.Pos, g.fieldW, g.fieldH)
		g.projectiles = append(g.projectiles, p)
	}
	g.fireHeld = fireDown

	// Motion: integrate, wrap, drag
	g.ship.Advance(g.fieldW, g.fieldH, g.cfg.Ship.Drag)
	g.advanceProjectiles()
	g.obstacles.Advance()

	// Collisions: projectile hits clear obstacles first, then the ship check
	g.resolveProjectileHits()
	if g.obstacles.HitsBox(g.ship.Box(&g.cfg.Ship)) {
		g.gameOver = true
		g.cause = core.CauseShipDestroyed
	}

	return core.StepResult{State: g.State()}
}

// resolveProjectileHits removes every projectile/obstacle pair that overlaps
// this tick. Obstacles are scanned in order and a projectile strikes at most
// one of them; the struck obstacle is gone before the next projectile scans.
func (g *Game) resolveProjectileHits() {
	if len(g.projectiles) == 0 || g.obstacles.Len() == 0 {
		return
	}

	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		box := p.Box(g.cfg.Projectiles.Width, g.cfg.Projectiles.Height)
		if g.obstacles.RemoveFirstHit(box) {
			continue
		}
		live = append(live, p)
	}
	g.projectiles = live
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
		Cause:    g.cause,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
