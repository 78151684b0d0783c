package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndmitry/skyhop/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the top 10 runs with score, level reached and distance.

Examples:
  skyhop scores
  skyhop scores --db ./runs.db`,
	Run: runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns("skyhop", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs - Sky Hop")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyhop play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "Rank", "Score", "Level", "Distance", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-10s  %s\n",
			i+1, entry.Score, entry.Level, fmt.Sprintf("%dm", entry.Distance/100), dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore("skyhop"); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
