package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rgb-guess/internal/config"
	"github.com/vovakirdan/rgb-guess/internal/core"
	"github.com/vovakirdan/rgb-guess/internal/games/colors"
	"github.com/vovakirdan/rgb-guess/internal/platform/tui"
	"github.com/vovakirdan/rgb-guess/internal/registry"
	"github.com/vovakirdan/rgb-guess/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game. Defaults to "colors".

Controls:
  1-6          - Pick a tile
  Arrows/WASD  - Move the cursor
  Enter/Space  - Pick the tile under the cursor
  E / H        - Switch to Easy (3 tiles) / Hard (6 tiles)
  N            - New colors
  Mouse        - Click tiles and controls
  Q/Ctrl+C     - Quit

Difficulty options (for "colors"):
  easy   - 3 tiles
  hard   - 6 tiles (default)

Examples:
  rgbguess play
  rgbguess play colors_easy
  rgbguess play --difficulty easy
  rgbguess play --config ./my-colors.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard")
}

// applyDifficulty validates --difficulty and hands it to the game.
func applyDifficulty() error {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
	}
	colors.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game runs without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := colors.IDHard
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'rgbguess list' to see available games", gameID)
	}
	if err := applyDifficulty(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
