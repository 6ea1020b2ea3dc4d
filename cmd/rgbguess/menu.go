package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-guess/internal/platform/tui"
	"github.com/vovakirdan/rgb-guess/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  rgbguess menu
  rgbguess menu --fps 30
  rgbguess menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyDifficulty(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed per game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}
	}
}
