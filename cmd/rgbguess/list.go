package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-guess/internal/games/colors"
	"github.com/vovakirdan/rgb-guess/internal/registry"
	"github.com/vovakirdan/rgb-guess/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulty levels you can play",
	Long: `Shows every playable game ID with its difficulty, how many colors a
round offers and the best score recorded in the database.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	games := registry.List()
	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return nil
	}

	// A missing database only hides the Best column
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	} else {
		logger.Debug("listing without scores", "path", flagDBPath, "error", err)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tLEVEL\tCOLORS\tBEST\tTITLE")
	for _, g := range games {
		d := colors.DifficultyFor(g.ID)
		best := "-"
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil && high > 0 {
				best = fmt.Sprint(high)
			}
		}
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\t%s\n", g.ID, d, d.Tiles(), best, g.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nRun 'rgbguess play <id>' to start, or 'rgbguess play --difficulty easy'.\n")
	return nil
}
