// asteroids is a terminal Asteroids-style game: pilot a drifting ship
// through wrapping space, shoot the obstacles, don't get hit.
//
// Usage:
//
//	asteroids play           - Play in the current terminal
//	asteroids serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "asteroids",
	Version: "0.1.0",
	Short:   "Asteroids - dodge and shoot drifting rocks in your terminal",
	Long: `Asteroids is a terminal arcade game. Your ship floats with inertia
on a field that wraps around at every edge; rotate, thrust, and shoot the
drifting obstacles before one of them hits you.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  asteroids play
  asteroids play --seed 42
  asteroids play --config ./my-tuning.yaml
  asteroids serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
