package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
// Tuned for an 80-column field at 60 ticks per second.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: ShipConfig{
			Width:        3,
			Height:       2,
			ThrustAccel:  0.025,
			RotationStep: 5,
			Drag:         0.99,
			MuzzleOffset: 1.5,
		},
		Projectiles: ProjectileConfig{
			Speed:    0.7,
			Lifetime: 60,
			Width:    1,
			Height:   1,
		},
		Obstacles: ObstacleConfig{
			Count:          5,
			MinSpeed:       0.1,
			MaxSpeed:       0.3,
			Width:          5,
			Height:         3,
			SpawnClearance: 8,
		},
	}
}
