// Package config provides YAML-based game configuration loading and
// startup validation for the asteroids game.
package config

import "fmt"

// AsteroidsConfig contains all tunable parameters for the asteroids game.
// Distances are in terminal cells, speeds in cells per tick, times in ticks.
type AsteroidsConfig struct {
	Ship        ShipConfig       `yaml:"ship"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
}

// ShipConfig defines ship handling and hitbox parameters.
type ShipConfig struct {
	Width        float64 `yaml:"width"`         // Hitbox width in cells
	Height       float64 `yaml:"height"`        // Hitbox height in cells
	ThrustAccel  float64 `yaml:"thrust_accel"`  // Acceleration per tick while thrusting
	RotationStep float64 `yaml:"rotation_step"` // Degrees turned per tick while rotating
	Drag         float64 `yaml:"drag"`          // Velocity multiplier applied every tick
	MuzzleOffset float64 `yaml:"muzzle_offset"` // Projectile spawn distance from ship center
}

// ProjectileConfig defines projectile parameters.
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`    // Fixed speed in cells per tick
	Lifetime int     `yaml:"lifetime"` // Ticks before a projectile expires
	Width    float64 `yaml:"width"`    // Hitbox width in cells
	Height   float64 `yaml:"height"`   // Hitbox height in cells
}

// ObstacleConfig defines obstacle spawning and hitbox parameters.
type ObstacleConfig struct {
	Count          int     `yaml:"count"`           // Obstacles spawned at run start
	MinSpeed       float64 `yaml:"min_speed"`       // Lower bound for random drift speed
	MaxSpeed       float64 `yaml:"max_speed"`       // Upper bound for random drift speed
	Width          float64 `yaml:"width"`           // Hitbox width in cells
	Height         float64 `yaml:"height"`          // Hitbox height in cells
	SpawnClearance float64 `yaml:"spawn_clearance"` // Keep-out radius around the ship spawn
}

// ConfigError describes a startup precondition violated by a config value.
// Any single violation is fatal: the game must not start ticking on it.
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate reports the first violated precondition, or nil if the
// configuration is playable.
func (c AsteroidsConfig) Validate() error {
	if c.Ship.Width <= 0 {
		return ConfigError{"ship.width", fmt.Sprintf("must be positive, got %v", c.Ship.Width)}
	}
	if c.Ship.Height <= 0 {
		return ConfigError{"ship.height", fmt.Sprintf("must be positive, got %v", c.Ship.Height)}
	}
	if c.Ship.ThrustAccel < 0 {
		return ConfigError{"ship.thrust_accel", fmt.Sprintf("must not be negative, got %v", c.Ship.ThrustAccel)}
	}
	if c.Ship.RotationStep < 0 {
		return ConfigError{"ship.rotation_step", fmt.Sprintf("must not be negative, got %v", c.Ship.RotationStep)}
	}
	if c.Ship.Drag <= 0 || c.Ship.Drag >= 1 {
		return ConfigError{"ship.drag", fmt.Sprintf("must be in (0, 1), got %v", c.Ship.Drag)}
	}
	if c.Ship.MuzzleOffset < 0 {
		return ConfigError{"ship.muzzle_offset", fmt.Sprintf("must not be negative, got %v", c.Ship.MuzzleOffset)}
	}
	if c.Projectiles.Speed <= 0 {
		return ConfigError{"projectiles.speed", fmt.Sprintf("must be positive, got %v", c.Projectiles.Speed)}
	}
	if c.Projectiles.Lifetime <= 0 {
		return ConfigError{"projectiles.lifetime", fmt.Sprintf("must be positive, got %v", c.Projectiles.Lifetime)}
	}
	if c.Projectiles.Width <= 0 || c.Projectiles.Height <= 0 {
		return ConfigError{"projectiles.width/height", fmt.Sprintf("must be positive, got %vx%v", c.Projectiles.Width, c.Projectiles.Height)}
	}
	if c.Obstacles.Count < 0 {
		return ConfigError{"obstacles.count", fmt.Sprintf("must not be negative, got %d", c.Obstacles.Count)}
	}
	if c.Obstacles.MinSpeed <= 0 {
		return ConfigError{"obstacles.min_speed", fmt.Sprintf("must be positive, got %v", c.Obstacles.MinSpeed)}
	}
	if c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed {
		return ConfigError{"obstacles.max_speed", fmt.Sprintf("must be >= min_speed, got %v < %v", c.Obstacles.MaxSpeed, c.Obstacles.MinSpeed)}
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		return ConfigError{"obstacles.width/height", fmt.Sprintf("must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)}
	}
	if c.Obstacles.SpawnClearance < 0 {
		return ConfigError{"obstacles.spawn_clearance", fmt.Sprintf("must not be negative, got %v", c.Obstacles.SpawnClearance)}
	}
	return nil
}
