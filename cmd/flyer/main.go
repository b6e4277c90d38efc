// flyer is a side-scrolling arcade game played in the terminal.
//
// Usage:
//
//	flyer play               - Play the game
//	flyer serve              - Start SSH server for remote play
//	flyer scores             - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flyer/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-flyer/internal/games/flyer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyer",
	Short: "Ring Flyer - Thread the gates, don't touch the walls",
	Long: `Ring Flyer is a terminal arcade game: keep a constantly falling
flyer airborne with timed flaps and steer it through an endless stream
of gates. Every gate is a point, and the game gets harder as you score.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  flyer play
  flyer play --difficulty hard
  flyer serve --ssh :2222
  flyer scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flyer/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
