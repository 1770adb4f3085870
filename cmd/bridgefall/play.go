package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhmel/bridgefall/internal/core"
	"github.com/okhmel/bridgefall/internal/games/bridge"
	"github.com/okhmel/bridgefall/internal/platform/tui"
	"github.com/okhmel/bridgefall/internal/registry"
	"github.com/okhmel/bridgefall/internal/storage"
)

var flagConfig string

var validTiers = map[string]bool{
	"tutorial": true,
	"easy":     true,
	"normal":   true,
	"hard":     true,
}

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Start a run",
	Long: `Start a bridge crossing at the given difficulty (default: normal).

Controls:
  Space      - Strike a platform / catch the timing window
  P/Esc      - Pause
  R          - Restart (after the run ends)
  Q/Ctrl+C   - Quit

Difficulties:
  tutorial - Short bridge, wide timing windows, no time pressure
  easy     - 8 tiles, forgiving windows
  normal   - 10 tiles, standard windows
  hard     - 12 tiles, narrow windows, mostly fragile

Examples:
  bridgefall play
  bridgefall play hard
  bridgefall play easy --config ./my-bridge.yaml
  bridgefall play normal --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom bridge config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	difficulty := bridge.GetDifficulty()
	if len(args) > 0 {
		difficulty = args[0]
	}

	if !validTiers[difficulty] {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", difficulty)
		fmt.Fprintln(os.Stderr, "Valid difficulties: tutorial, easy, normal, hard")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	bridge.SetConfigPath(flagConfig)
	bridge.SetDifficulty(difficulty)

	gameID := "bridge"
	if difficulty == "tutorial" {
		gameID = "bridge_tutorial"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
