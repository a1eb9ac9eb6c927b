package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Ship is the player-controlled entity. Velocity carries over between ticks:
// thrust only ever adds to it and drag bleeds it off, so the ship coasts.
type Ship struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // Degrees; 0 = up, positive turns counter-clockwise
}

// NewShip creates a ship at rest at the given position, facing up.
func NewShip(pos core.Vec2) Ship {
	return Ship{Pos: pos}
}

// Steer applies this tick's rotation and thrust intents. The heading stays
// normalized to [0, 360).
func (s *Ship) Steer(in core.InputFrame, cfg *config.ShipConfig) {
	if in.Has(core.ActionRotateLeft) {
		s.Heading += cfg.RotationStep
	}
	if in.Has(core.ActionRotateRight) {
		s.Heading -= cfg.RotationStep
	}
	s.Heading = core.NormalizeDeg(s.Heading)

	if in.Has(core.ActionThrust) {
		s.Vel = s.Vel.Add(core.FromHeading(s.Heading).Scale(cfg.ThrustAccel))
	}
}

// Advance integrates position, wraps it onto the field, and applies drag.
// Drag is unconditional: velocity decays every tick whether or not the
// player is thrusting.
func (s *Ship) Advance(fieldW, fieldH, drag float64) {
	s.Pos = core.Wrap(s.Pos.Add(s.Vel), fieldW, fieldH)
	s.Vel = s.Vel.Scale(drag)
}

// Fire builds a projectile spawned at the muzzle offset along the current
// heading, moving the same way at the configured speed. Spawn offset and
// velocity share the heading basis used for thrust.
func (s *Ship) Fire(cfg *config.AsteroidsConfig) Projectile {
	dir := core.FromHeading(s.Heading)
	return Projectile{
		Pos:  s.Pos.Add(dir.Scale(cfg.Ship.MuzzleOffset)),
		Vel:  dir.Scale(cfg.Projectiles.Speed),
		Life: cfg.Projectiles.Lifetime,
	}
}

// Box returns the ship's collision box.
func (s *Ship) Box(cfg *config.ShipConfig) core.Box {
	return core.BoxAround(s.Pos, cfg.Width, cfg.Height)
}
