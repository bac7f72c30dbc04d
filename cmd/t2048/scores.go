package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [settings-id]",
	Short: "Show high scores",
	Long: `Without an argument, list every settings combination that has scores,
most played first. With a settings ID, show its top scores.

A settings ID is the board size and four tile chance, e.g. 4x4-25.

Examples:
  t2048 scores
  t2048 scores 4x4-25
  t2048 scores 5x5-25 --limit 20
  t2048 scores 3x3-25 --clear
  t2048 scores --all --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the given settings")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show the top scores across all settings")
}

func runScores(_ *cobra.Command, args []string) error {
	store := openStore()
	if store == nil {
		return errors.New("scores database is not available")
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return errors.New("--clear needs a settings ID")
		}
		if flagScoresAll {
			return listTopScores(store)
		}
		return listSummaries(store)
	}

	settingsID := args[0]
	if flagScoresClear {
		if err := store.ClearScores(settingsID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", settingsID)
		return nil
	}

	entries, err := store.ScoresBySettings(settingsID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", settingsID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 't2048 scores' to see which settings have scores.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	fmt.Println(entries[0].Settings)
	return nil
}

// listSummaries prints one line per settings combination.
func listSummaries(store *storage.Store) error {
	summaries, err := store.SettingsSummaries()
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Settings", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "--------", "-----", "----", "-------", "-----------")
	for _, s := range summaries {
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.0f  %s\n",
			s.SettingsID, s.Count, s.Best, s.AvgScore, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 't2048 scores <settings>' to see the top scores.")
	return nil
}

// listTopScores prints the best scores of every settings combination together.
func listTopScores(store *storage.Store) error {
	entries, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - all settings")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Settings", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "--------", "----")
	for i, entry := range entries {
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n",
			i+1, entry.Score, entry.SettingsID, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
