package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-guess/internal/games/colors"
	"github.com/vovakirdan/rgb-guess/internal/registry"
	"github.com/vovakirdan/rgb-guess/internal/storage"
)

var (
	flagRecent    int
	flagAllScores bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 scores, overall stats and the most recent rounds
for the specified game. Defaults to "colors".

Examples:
  rgbguess scores
  rgbguess scores colors_easy --recent 10
  rgbguess scores --all
  rgbguess scores colors_easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to show")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and round history for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagAllScores && flagClear {
		return errors.New("--all and --clear cannot be used together")
	}

	gameID := colors.IDHard
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'rgbguess list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Debug("cleared scores", "game", gameID)
		fmt.Fprintf(out, "Cleared all scores for %s.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'rgbguess play %s' to set the first high score!\n", gameID)
		return nil
	}

	printScores(out, scores)

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "\nRounds won: %d  Best: %d  Average: %.1f  Average misses: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.AvgMisses)
	}

	if flagRecent <= 0 {
		return nil
	}

	rounds, err := store.RecentRounds(gameID, flagRecent)
	if err != nil || len(rounds) == 0 {
		return err
	}

	fmt.Fprintln(out, "\nRecent rounds:")
	for _, r := range rounds {
		fmt.Fprintf(out, "  %s  %-18s  misses %d  points %d  (%s)\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Picked, r.Misses, r.Points, r.Source)
	}
	return nil
}

// printScores writes a ranked table. Equal points share a rank.
func printScores(out io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(out, "  %-4s  %-6s  %s\n", "Rank", "Points", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %s\n", "----", "------", "----")

	rank := 0
	for i, entry := range scores {
		if i == 0 || entry.Score != scores[i-1].Score {
			rank = i + 1
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %s\n", rank, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
