// bridgefall is a terminal timing game about repairing a collapsing bridge.
//
// Usage:
//
//	bridgefall play [difficulty]  - Cross the bridge (tutorial, easy, normal, hard)
//	bridgefall menu               - Start the interactive difficulty menu
//	bridgefall serve              - Start SSH server for remote play
//	bridgefall scores             - Show the leaderboard
//	bridgefall reset              - Clear saved runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible bridge layouts
//	--db <path>     - Set database path (default: ~/.bridgefall/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/okhmel/bridgefall/internal/games/bridge"
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
	Use:   "bridgefall",
	Short: "Bridgefall - Repair a collapsing bridge against the clock",
	Long: `Bridgefall is a terminal timing game. A single-lane bridge is failing
tile by tile; strike each platform to repair it, and catch the timing
window on fragile tiles before the whole chain comes down.

Available commands:
  play     - Start a run directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  reset    - Clear saved runs

Examples:
  bridgefall play
  bridgefall play hard
  bridgefall menu
  bridgefall serve --ssh :2222
  bridgefall scores normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bridgefall/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}
