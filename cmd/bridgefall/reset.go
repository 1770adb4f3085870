package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okhmel/bridgefall/internal/config"
	"github.com/okhmel/bridgefall/internal/storage"
)

var flagConfirm string

var resetCmd = &cobra.Command{
	Use:   "reset [difficulty]",
	Short: "Clear saved runs",
	Long: `Delete recorded runs from the database.

Without arguments all runs are cleared. With a difficulty argument only
that tier's leaderboard is cleared. The reset passphrase from the bridge
config must be supplied with --confirm.

Examples:
  bridgefall reset --confirm bridgefall
  bridgefall reset hard --confirm bridgefall
  bridgefall reset --db ./runs.db --confirm bridgefall`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagConfirm, "confirm", "", "Reset passphrase from the bridge config")
	resetCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom bridge config YAML")
}

func runReset(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadBridge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagConfirm == "" {
		fmt.Fprintln(os.Stderr, "Error: --confirm <passphrase> is required")
		os.Exit(1)
	}
	if flagConfirm != cfg.Reset.Passphrase {
		fmt.Fprintln(os.Stderr, "Error: wrong passphrase, runs not cleared")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) > 0 {
		difficulty := args[0]
		if !validTiers[difficulty] {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", difficulty)
			os.Exit(1)
		}
		if err := store.ClearRuns(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %s runs.\n", difficulty)
		return
	}

	if err := store.ClearAllRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Cleared all runs.")
}
