package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkurnosov/dasher/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 runs and overall statistics.

Examples:
  dasher scores
  dasher scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Dasher")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dasher play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.Ticks, dateStr)
	}

	stats, err := store.RunStats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
}
