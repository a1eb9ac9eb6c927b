package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Obstacle drifts across the field with the constant velocity it was born
// with. It never steers, never splits, and is removed only by a projectile.
type Obstacle struct {
	Pos core.Vec2
	Vel core.Vec2
}

// ObstacleField handles spawning, movement, and removal of obstacles.
// It owns the run's RNG, so a seed fully determines the initial layout.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	fieldW    float64
	fieldH    float64
	cfg       *config.ObstacleConfig
}

// spawnAttempts bounds the clearance re-rolls so a tiny field or a huge
// clearance cannot hang Reset.
const spawnAttempts = 32

// NewObstacleField creates the field and spawns the initial obstacles.
func NewObstacleField(seed int64, fieldW, fieldH float64, cfg *config.ObstacleConfig) *ObstacleField {
	of := &ObstacleField{
		obstacles: make([]Obstacle, 0, cfg.Count),
		fieldW:    fieldW,
		fieldH:    fieldH,
		cfg:       cfg,
	}
	of.Reset(seed)
	return of
}

// UpdateFieldSize updates the field dimensions.
func (of *ObstacleField) UpdateFieldSize(fieldW, fieldH float64) {
	of.fieldW = fieldW
	of.fieldH = fieldH
}

// Reset clears the field, reseeds the RNG, and spawns a fresh set of
// obstacles at random positions with random constant velocities.
func (of *ObstacleField) Reset(seed int64) {
	of.obstacles = of.obstacles[:0]
	of.rng = rand.New(rand.NewSource(seed))

	for i := 0; i < of.cfg.Count; i++ {
		of.obstacles = append(of.obstacles, of.spawnObstacle())
	}
}

// spawnObstacle rolls a random position and drift velocity. Positions whose
// box overlaps the keep-out zone around the ship spawn at field center are
// re-rolled a bounded number of times, so a fresh run cannot open with the
// ship already inside an obstacle.
func (of *ObstacleField) spawnObstacle() Obstacle {
	keepOut := core.BoxAround(
		core.Vec2{X: of.fieldW / 2, Y: of.fieldH / 2},
		of.cfg.SpawnClearance*2,
		of.cfg.SpawnClearance*2,
	)

	var pos core.Vec2
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		pos = core.Vec2{
			X: of.rng.Float64() * of.fieldW,
			Y: of.rng.Float64() * of.fieldH,
		}
		if !core.BoxAround(pos, of.cfg.Width, of.cfg.Height).Overlaps(keepOut) {
			break
		}
	}

	angle := of.rng.Float64() * 2 * math.Pi
	speed := of.cfg.MinSpeed + of.rng.Float64()*(of.cfg.MaxSpeed-of.cfg.MinSpeed)

	return Obstacle{
		Pos: pos,
		Vel: core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
	}
}

// Advance integrates and wraps every obstacle. Velocities never change.
func (of *ObstacleField) Advance() {
	for i := range of.obstacles {
		of.obstacles[i].Pos = core.Wrap(of.obstacles[i].Pos.Add(of.obstacles[i].Vel), of.fieldW, of.fieldH)
	}
}

// Obstacles returns the current list of obstacles.
func (of *ObstacleField) Obstacles() []Obstacle {
	return of.obstacles
}

// Len returns the number of live obstacles.
func (of *ObstacleField) Len() int {
	return len(of.obstacles)
}

// boxFor returns the collision box for an obstacle.
func (of *ObstacleField) boxFor(o Obstacle) core.Box {
	return core.BoxAround(o.Pos, of.cfg.Width, of.cfg.Height)
}

// HitsBox reports whether any obstacle overlaps the given box.
func (of *ObstacleField) HitsBox(box core.Box) bool {
	for _, o := range of.obstacles {
		if of.boxFor(o).Overlaps(box) {
			return true
		}
	}
	return false
}

// RemoveFirstHit removes the first obstacle overlapping the given box and
// reports whether one was removed.
func (of *ObstacleField) RemoveFirstHit(box core.Box) bool {
	for i, o := range of.obstacles {
		if of.boxFor(o).Overlaps(box) {
			of.obstacles = append(of.obstacles[:i], of.obstacles[i+1:]...)
			return true
		}
	}
	return false
}
