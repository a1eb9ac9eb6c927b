package core

import "fmt"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its field and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Field width in characters
	ScreenH  int   // Field height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Validate reports the first violated startup precondition, or nil.
// A violation is fatal: the process must not start ticking on a degenerate
// field or a zero tick rate.
func (c RuntimeConfig) Validate() error {
	if c.ScreenW <= 0 {
		return fmt.Errorf("screen width must be positive, got %d", c.ScreenW)
	}
	if c.ScreenH <= 0 {
		return fmt.Errorf("screen height must be positive, got %d", c.ScreenH)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// EndCause records why a run reached game over.
type EndCause int

const (
	CauseNone          EndCause = iota // Run still in progress
	CauseShipDestroyed                 // Ship overlapped an obstacle
	CausePlayerQuit                    // Player asked to end the run
)

// String returns the human-readable outcome message for the cause.
func (c EndCause) String() string {
	switch c {
	case CauseNone:
		return "run in progress"
	case CauseShipDestroyed:
		return "ship destroyed by an obstacle"
	case CausePlayerQuit:
		return "quit by player"
	default:
		return "unknown"
	}
}

// GameState represents the current state of the run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool     // Whether the run has ended
	Paused   bool     // Whether the simulation is frozen
	Cause    EndCause // Why the run ended; CauseNone while in progress
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
