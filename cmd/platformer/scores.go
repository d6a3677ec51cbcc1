package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the best finished runs, highest score first.

Examples:
  platformer scores
  platformer scores --limit 25
  platformer scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearRuns(platformer.ID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(out, "All runs cleared.")
		return nil
	}

	runs, err := store.TopRuns(platformer.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "Best Runs - %s\n\n", gameTitle())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'platformer play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Coins", "Lives", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, r := range runs {
		result := "lost"
		if r.Won() {
			result = "clear"
		}
		fmt.Fprintf(out, "  %-4d  %08d  %-5d  %-5d  %-6s  %s\n",
			i+1, r.Score, r.Coins, r.Lives, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(platformer.ID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d   Runs: %d   Cleared: %d\n", stats.HighScore, stats.Runs, stats.Wins)
	}
	return nil
}
