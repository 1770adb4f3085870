package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhmel/bridgefall/internal/platform/tui"
	"github.com/okhmel/bridgefall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the leaderboard",
	Long: `Display recorded runs.

Without arguments an interactive leaderboard opens, with tabs for each
difficulty. With a difficulty argument the top 10 runs for that tier
are printed as a plain table.

Examples:
  bridgefall scores
  bridgefall scores normal
  bridgefall scores hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	difficulty := args[0]
	if !validTiers[difficulty] {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", difficulty)
		fmt.Fprintln(os.Stderr, "Valid difficulties: tutorial, easy, normal, hard")
		os.Exit(1)
	}

	runs, err := store.TopRuns(difficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", difficulty)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bridgefall play %s' to set the first score!\n", difficulty)
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-7s  %-5s  %-5s  %-5s  %-7s  %s\n",
		"Place", "Score", "Grade", "Acc", "Combo", "Time", "Date")
	fmt.Printf("  %-5s  %-7s  %-5s  %-5s  %-5s  %-7s  %s\n",
		"-----", "-----", "-----", "---", "-----", "----", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-7d  %-5s  %4.0f%%  x%-4d  %6.1fs  %s\n",
			i+1, entry.Score, entry.Rank, entry.Accuracy, entry.MaxCombo,
			entry.DurationSecs, dateStr)
	}

	// Show best run
	best, err := store.BestRun(difficulty)
	if err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best: %d (%s)\n", best.Score, best.Rank)
	}
}
