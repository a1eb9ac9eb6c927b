package asteroids

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGameDeterminism(t *testing.T) {
	// Test that given the same seed and inputs, the game produces identical results
	seed := int64(12345)
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}

	// Define a sequence of inputs: turn, thrust in bursts, fire now and then
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i < 40 {
			inputSequence[i].Set(core.ActionRotateLeft)
		}
		if i%3 == 0 {
			inputSequence[i].Set(core.ActionThrust)
		}
		if i%15 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
	}

	run := func() (Snapshot, int) {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot(), g.tickCount
	}

	snap1, ticks1 := run()
	snap2, ticks2 := run()

	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Determinism failed: snapshots differ.\nRun1=%+v\nRun2=%+v", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}

	g := New()
	g.Reset(cfg)

	layout := g.Snapshot().Obstacles

	// Play a few ticks
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionThrust)
		if i%10 == 0 {
			in.Set(core.ActionFire)
		}
		g.Step(in)
	}

	// Reset should clear state and rebuild the same layout for the same seed
	g.Reset(cfg)

	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.cause != core.CauseNone {
		t.Errorf("Reset should clear end cause, got %v", g.cause)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if len(g.projectiles) != 0 {
		t.Errorf("Reset should clear projectiles, got %d", len(g.projectiles))
	}
	if !approxEq(g.ship.Pos.X, 40) || !approxEq(g.ship.Pos.Y, 12) {
		t.Errorf("Reset should place ship at field center, got %+v", g.ship.Pos)
	}
	if !approxEq(g.ship.Vel.X, 0) || !approxEq(g.ship.Vel.Y, 0) {
		t.Errorf("Reset should leave ship at rest, got %+v", g.ship.Vel)
	}
	if !approxEq(g.ship.Heading, 0) {
		t.Errorf("Reset should face ship up, got %f", g.ship.Heading)
	}
	if !reflect.DeepEqual(g.Snapshot().Obstacles, layout) {
		t.Error("Reset with the same seed should reproduce the obstacle layout")
	}
}

func TestShipThrust(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	// Thrust at heading 0 accelerates straight up
	thrustInput := core.NewInputFrame()
	thrustInput.Set(core.ActionThrust)
	g.Step(thrustInput)

	if g.ship.Vel.Y >= 0 {
		t.Errorf("Thrust at heading 0 should accelerate up, velY=%f", g.ship.Vel.Y)
	}
	if !approxEq(g.ship.Vel.X, 0) {
		t.Errorf("Thrust at heading 0 should not accelerate sideways, velX=%f", g.ship.Vel.X)
	}
	if g.ship.Pos.Y >= 12 {
		t.Errorf("Thrust should move ship up, posY=%f", g.ship.Pos.Y)
	}

	// Without thrust the ship keeps coasting in the same direction
	yBefore := g.ship.Pos.Y
	g.Step(core.NewInputFrame())
	if g.ship.Pos.Y >= yBefore {
		t.Errorf("Ship should coast after thrusting, was %f, now %f", yBefore, g.ship.Pos.Y)
	}

	// Thrust at heading 90 (rotated a quarter turn left) accelerates straight
	// left on screen
	g2 := New()
	g2.Reset(cfg)
	g2.cfg = config.DefaultAsteroidsConfig()
	g2.obstacles.obstacles = nil

	rotateInput := core.NewInputFrame()
	rotateInput.Set(core.ActionRotateLeft)
	steps := int(90 / g2.cfg.Ship.RotationStep)
	for i := 0; i < steps; i++ {
		g2.Step(rotateInput)
	}
	if !approxEq(g2.ship.Heading, 90) {
		t.Fatalf("Expected heading 90 after %d rotation ticks, got %f", steps, g2.ship.Heading)
	}

	g2.Step(thrustInput)
	if g2.ship.Vel.X >= 0 {
		t.Errorf("Thrust at heading 90 should accelerate left, velX=%f", g2.ship.Vel.X)
	}
	if !approxEq(g2.ship.Vel.Y, 0) {
		t.Errorf("Thrust at heading 90 should not accelerate vertically, velY=%f", g2.ship.Vel.Y)
	}
}

func TestShipRotation(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	step := g.cfg.Ship.RotationStep

	left := core.NewInputFrame()
	left.Set(core.ActionRotateLeft)
	g.Step(left)

	if !approxEq(g.ship.Heading, step) {
		t.Errorf("One left turn should set heading to %f, got %f", step, g.ship.Heading)
	}

	// Two right turns from there wrap below zero into [0, 360)
	right := core.NewInputFrame()
	right.Set(core.ActionRotateRight)
	g.Step(right)
	g.Step(right)

	want := 360 - step
	if !approxEq(g.ship.Heading, want) {
		t.Errorf("Heading should normalize to %f, got %f", want, g.ship.Heading)
	}
	// Rotation alone never moves the ship
	if !approxEq(g.ship.Vel.X, 0) || !approxEq(g.ship.Vel.Y, 0) {
		t.Errorf("Rotation should not create velocity, got %+v", g.ship.Vel)
	}
}

func TestShipDrag(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	g.ship.Vel = core.Vec2{X: 2, Y: 0}

	// Coasting speed decays every tick but never flips direction
	noInput := core.NewInputFrame()
	prev := g.ship.Vel.Len()
	for i := 0; i < 10; i++ {
		g.Step(noInput)
		speed := g.ship.Vel.Len()
		if speed >= prev {
			t.Fatalf("Drag should shrink speed every tick, was %f, now %f", prev, speed)
		}
		if g.ship.Vel.X <= 0 {
			t.Fatalf("Drag should not reverse direction, velX=%f", g.ship.Vel.X)
		}
		prev = speed
	}
}

func TestShipWrapsAtEdges(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	noInput := core.NewInputFrame()

	// Exit left, reappear on the right
	g.ship.Pos = core.Vec2{X: 0.5, Y: 12}
	g.ship.Vel = core.Vec2{X: -1, Y: 0}
	g.Step(noInput)
	if !approxEq(g.ship.Pos.X, 79.5) {
		t.Errorf("Ship should wrap to x=79.5, got %f", g.ship.Pos.X)
	}

	// Exit bottom, reappear on top
	g.ship.Pos = core.Vec2{X: 40, Y: 23.5}
	g.ship.Vel = core.Vec2{X: 0, Y: 1}
	g.Step(noInput)
	if !approxEq(g.ship.Pos.Y, 0.5) {
		t.Errorf("Ship should wrap to y=0.5, got %f", g.ship.Pos.Y)
	}
}

func TestFireEdgeTrigger(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	noInput := core.NewInputFrame()

	// Holding fire across five ticks spawns exactly one projectile
	for i := 0; i < 5; i++ {
		g.Step(fire)
	}
	if len(g.projectiles) != 1 {
		t.Fatalf("Held fire should spawn one projectile, got %d", len(g.projectiles))
	}

	// Release and press again: a second rising edge, a second projectile
	g.Step(noInput)
	for i := 0; i < 3; i++ {
		g.Step(fire)
	}
	if len(g.projectiles) != 2 {
		t.Errorf("Second press should spawn a second projectile, got %d", len(g.projectiles))
	}
}

func TestProjectileSpawnsAtMuzzle(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	if len(g.projectiles) != 1 {
		t.Fatalf("Expected one projectile, got %d", len(g.projectiles))
	}
	p := g.projectiles[0]

	// Heading 0 fires straight up: spawned ahead of the ship, moved once
	wantY := 12 - g.cfg.Ship.MuzzleOffset - g.cfg.Projectiles.Speed
	if !approxEq(p.Pos.X, 40) || !approxEq(p.Pos.Y, wantY) {
		t.Errorf("Projectile should sit at (40, %f), got %+v", wantY, p.Pos)
	}
	if !approxEq(p.Vel.X, 0) || !approxEq(p.Vel.Y, -g.cfg.Projectiles.Speed) {
		t.Errorf("Projectile should fly up at speed %f, got %+v", g.cfg.Projectiles.Speed, p.Vel)
	}
}

func TestProjectileLifetime(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	lifetime := g.cfg.Projectiles.Lifetime
	noInput := core.NewInputFrame()

	// The projectile stays live through its final tick...
	for i := 0; i < lifetime-1; i++ {
		g.Step(noInput)
	}
	if len(g.projectiles) != 1 {
		t.Fatalf("Projectile should still exist on tick %d, got %d projectiles", lifetime, len(g.projectiles))
	}
	if g.projectiles[0].Life != 0 {
		t.Errorf("Projectile should have no life left on its final tick, got %d", g.projectiles[0].Life)
	}

	// ...and is gone on the next one
	g.Step(noInput)
	if len(g.projectiles) != 0 {
		t.Errorf("Projectile should expire after %d ticks, got %d projectiles", lifetime, len(g.projectiles))
	}
}

func TestProjectileDestroysObstacle(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()

	// Stage a stationary obstacle far from the ship with a projectile on top
	g.obstacles.obstacles = []Obstacle{{Pos: core.Vec2{X: 60, Y: 6}}}
	g.projectiles = append(g.projectiles, Projectile{Pos: core.Vec2{X: 60, Y: 6}, Life: 5})

	g.Step(core.NewInputFrame())

	if g.obstacles.Len() != 0 {
		t.Errorf("Obstacle should be destroyed, %d left", g.obstacles.Len())
	}
	if len(g.projectiles) != 0 {
		t.Errorf("Projectile should be consumed by the hit, %d left", len(g.projectiles))
	}
	if g.gameOver {
		t.Error("Clearing an obstacle should not end the run")
	}
}

func TestProjectileHitsOnlyOneObstacle(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()

	// Two obstacles stacked on the same spot, one projectile overlapping both
	g.obstacles.obstacles = []Obstacle{
		{Pos: core.Vec2{X: 60, Y: 6}},
		{Pos: core.Vec2{X: 60, Y: 6}},
	}
	g.projectiles = append(g.projectiles, Projectile{Pos: core.Vec2{X: 60, Y: 6}, Life: 5})

	g.Step(core.NewInputFrame())

	if g.obstacles.Len() != 1 {
		t.Errorf("One projectile should destroy exactly one obstacle, %d left", g.obstacles.Len())
	}
	if len(g.projectiles) != 0 {
		t.Errorf("Projectile should be consumed by the hit, %d left", len(g.projectiles))
	}
}

func TestGameOverOnObstacleContact(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()

	// Park an obstacle directly on the ship
	g.obstacles.obstacles = []Obstacle{{Pos: core.Vec2{X: 40, Y: 12}}}

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Fatal("Game should be over when an obstacle hits the ship")
	}
	if result.State.Cause != core.CauseShipDestroyed {
		t.Errorf("End cause should be ship destruction, got %v", result.State.Cause)
	}
	if g.obstacles.Len() != 1 {
		t.Error("The obstacle that destroyed the ship should survive the collision")
	}

	// The terminal state latches: further steps simulate nothing
	ticksBefore := g.tickCount
	posBefore := g.ship.Pos
	thrustInput := core.NewInputFrame()
	thrustInput.Set(core.ActionThrust)
	result = g.Step(thrustInput)

	if !result.State.GameOver || result.State.Cause != core.CauseShipDestroyed {
		t.Error("Terminal state should persist across further steps")
	}
	if g.tickCount != ticksBefore {
		t.Errorf("Steps after game over should not advance ticks, was %d, now %d", ticksBefore, g.tickCount)
	}
	if g.ship.Pos != posBefore {
		t.Errorf("Steps after game over should not move the ship, was %+v, now %+v", posBefore, g.ship.Pos)
	}
}

func TestNoCollisionWithoutOverlap(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()

	noInput := core.NewInputFrame()

	// Ship box spans x in [38.5, 41.5]; a 5-wide obstacle at x=45 leaves a gap
	g.obstacles.obstacles = []Obstacle{{Pos: core.Vec2{X: 45, Y: 12}}}
	g.Step(noInput)
	if g.gameOver {
		t.Fatal("Separated boxes should not collide")
	}

	// Boxes that exactly share an edge still do not collide
	g.obstacles.obstacles[0].Pos = core.Vec2{X: 44, Y: 12}
	g.Step(noInput)
	if g.gameOver {
		t.Fatal("Edge-touching boxes should not collide")
	}

	// Any actual overlap does
	g.obstacles.obstacles[0].Pos = core.Vec2{X: 43.9, Y: 12}
	g.Step(noInput)
	if !g.gameOver {
		t.Error("Overlapping boxes should collide")
	}
}

func TestQuitEndsRun(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()

	quitInput := core.NewInputFrame()
	quitInput.Set(core.ActionQuit)
	quitInput.Set(core.ActionThrust)

	result := g.Step(quitInput)

	if !result.State.GameOver {
		t.Fatal("Quit should end the run")
	}
	if result.State.Cause != core.CausePlayerQuit {
		t.Errorf("End cause should be player quit, got %v", result.State.Cause)
	}
	// The quit tick simulates nothing, not even the thrust bundled with it
	if g.tickCount != 0 {
		t.Errorf("Quit tick should not advance the simulation, tickCount=%d", g.tickCount)
	}
	if !approxEq(g.ship.Vel.X, 0) || !approxEq(g.ship.Vel.Y, 0) {
		t.Errorf("Quit tick should not apply inputs, got velocity %+v", g.ship.Vel)
	}
}

func TestGamePause(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	g.ship.Vel = core.Vec2{X: 1, Y: 0}

	// Pause the game
	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if !g.paused {
		t.Error("Game should be paused")
	}

	// Record state
	xBefore := g.ship.Pos.X
	ticksBefore := g.tickCount

	// Step while paused (without pause toggle)
	noInput := core.NewInputFrame()
	g.Step(noInput)

	// Physics should not update while paused
	if !approxEq(g.ship.Pos.X, xBefore) {
		t.Errorf("Ship should not move while paused, was %f, now %f", xBefore, g.ship.Pos.X)
	}
	if g.tickCount != ticksBefore {
		t.Errorf("Ticks should not advance while paused, was %d, now %d", ticksBefore, g.tickCount)
	}

	// Unpause
	g.Step(pauseInput)

	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestObstacleSpawns(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     7,
	}

	g := New()
	g.Reset(cfg)

	oc := g.cfg.Obstacles
	if g.obstacles.Len() != oc.Count {
		t.Fatalf("Expected %d obstacles, got %d", oc.Count, g.obstacles.Len())
	}

	keepOut := core.BoxAround(core.Vec2{X: 40, Y: 12}, oc.SpawnClearance*2, oc.SpawnClearance*2)
	for i, o := range g.obstacles.Obstacles() {
		if core.BoxAround(o.Pos, oc.Width, oc.Height).Overlaps(keepOut) {
			t.Errorf("Obstacle %d spawned inside the ship clearance zone at %+v", i, o.Pos)
		}
		speed := o.Vel.Len()
		if speed < oc.MinSpeed-1e-9 || speed > oc.MaxSpeed+1e-9 {
			t.Errorf("Obstacle %d speed %f outside [%f, %f]", i, speed, oc.MinSpeed, oc.MaxSpeed)
		}
	}

	// A fresh run must survive its first tick
	result := g.Step(core.NewInputFrame())
	if result.State.GameOver {
		t.Error("Run should not end on the first tick after spawn")
	}
}

func TestSnapshot(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     3,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.projectiles = append(g.projectiles, Projectile{Pos: core.Vec2{X: 10, Y: 5}, Life: 9})

	snap := g.Snapshot()

	if snap.Tick != g.tickCount {
		t.Errorf("Snapshot tick mismatch: %d vs %d", snap.Tick, g.tickCount)
	}
	if !approxEq(snap.Ship.X, g.ship.Pos.X) || !approxEq(snap.Ship.Y, g.ship.Pos.Y) {
		t.Errorf("Snapshot ship position mismatch: (%f, %f)", snap.Ship.X, snap.Ship.Y)
	}
	if !snap.Ship.Alive {
		t.Error("Ship should be alive in a fresh run")
	}
	if snap.Ship.Thrusting {
		t.Error("Fresh snapshot should not report thrust")
	}
	if len(snap.Projectiles) != 1 || snap.Projectiles[0].Life != 9 {
		t.Errorf("Snapshot should carry the staged projectile, got %+v", snap.Projectiles)
	}
	if len(snap.Obstacles) != g.obstacles.Len() {
		t.Errorf("Snapshot obstacle count mismatch: %d vs %d", len(snap.Obstacles), g.obstacles.Len())
	}
	for _, o := range snap.Obstacles {
		if !approxEq(o.W, g.cfg.Obstacles.Width) || !approxEq(o.H, g.cfg.Obstacles.Height) {
			t.Errorf("Snapshot obstacle should carry configured dimensions, got %+v", o)
		}
	}
	if snap.State.GameOver || snap.State.Cause != core.CauseNone {
		t.Errorf("Fresh snapshot should not be terminal, got %+v", snap.State)
	}

	// The thrust flag mirrors the last simulated tick's input
	g.obstacles.obstacles = nil
	thrustInput := core.NewInputFrame()
	thrustInput.Set(core.ActionThrust)
	g.Step(thrustInput)
	if !g.Snapshot().Ship.Thrusting {
		t.Error("Snapshot should report thrust while it is held")
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Ship.Thrusting {
		t.Error("Snapshot should drop the thrust flag once released")
	}

	// After the ship is destroyed the snapshot reports it dead
	g.projectiles = nil
	g.obstacles.obstacles = []Obstacle{{Pos: core.Vec2{X: 40, Y: 12}}}
	g.Step(core.NewInputFrame())

	snap = g.Snapshot()
	if snap.Ship.Alive {
		t.Error("Snapshot should report the ship destroyed")
	}
	if !snap.State.GameOver || snap.State.Cause != core.CauseShipDestroyed {
		t.Errorf("Snapshot state should be terminal, got %+v", snap.State)
	}
}

func TestGameRender(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// The ship faces up at the field center on a fresh run
	cell := screen.GetCell(40, 12)
	if cell.Rune != shipGlyphs[0] {
		t.Errorf("Ship glyph should be %q at center, got %q", shipGlyphs[0], cell.Rune)
	}
	if cell.Color != core.ColorBrightCyan {
		t.Errorf("Ship should render bright cyan, got %v", cell.Color)
	}

	// Obstacles spawn on a fresh run, so some must be visible
	if !strings.ContainsRune(screen.String(), ObstacleChar) {
		t.Error("Render should draw the spawned obstacles")
	}

	// A staged projectile renders at its cell
	g.projectiles = append(g.projectiles, Projectile{Pos: core.Vec2{X: 10, Y: 5}, Life: 9})
	g.Render(screen)
	if screen.GetCell(10, 5).Rune != ProjectileChar {
		t.Errorf("Projectile should render at (10, 5), got %q", screen.GetCell(10, 5).Rune)
	}

	// While thrust is held, the exhaust flame shows behind the ship; at
	// heading 0 that is the cell below it
	g.obstacles.obstacles = nil
	thrustInput := core.NewInputFrame()
	thrustInput.Set(core.ActionThrust)
	g.Step(thrustInput)
	g.Render(screen)
	flame := screen.GetCell(40, 13)
	if flame.Rune != FlameChar {
		t.Errorf("Flame should render below the ship while thrusting, got %q", flame.Rune)
	}
	if flame.Color != core.ColorOrange {
		t.Errorf("Flame should render orange, got %v", flame.Color)
	}

	g.Step(core.NewInputFrame())
	g.Render(screen)
	if screen.GetCell(40, 13).Rune == FlameChar {
		t.Error("Flame should disappear once thrust is released")
	}
}

func TestRenderOverlays(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.cfg = config.DefaultAsteroidsConfig()
	g.obstacles.obstacles = nil

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Paused game should render the pause overlay")
	}

	// Unpause, then destroy the ship
	g.Step(pauseInput)
	g.obstacles.obstacles = []Obstacle{{Pos: core.Vec2{X: 40, Y: 12}}}
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Finished game should render the game over overlay")
	}
	if screen.GetCell(40, 12).Rune == shipGlyphs[0] {
		t.Error("Destroyed ship should not render its live glyph")
	}
}

func TestShipGlyphOctants(t *testing.T) {
	cases := []struct {
		heading float64
		want    rune
	}{
		{0, '▲'},
		{45, '◤'},
		{90, '◀'},
		{180, '▼'},
		{270, '▶'},
		{350, '▲'},
		{30, '◤'},
	}

	for _, tc := range cases {
		if got := shipGlyph(tc.heading); got != tc.want {
			t.Errorf("shipGlyph(%f) = %q, want %q", tc.heading, got, tc.want)
		}
	}
}
