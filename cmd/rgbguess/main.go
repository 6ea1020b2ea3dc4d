// rgbguess is a color guessing game for the terminal, SSH and HTTP.
//
// Usage:
//
//	rgbguess list              - List available games
//	rgbguess play [game]       - Play a game
//	rgbguess menu              - Start menu to pick games interactively
//	rgbguess serve             - Start SSH and HTTP servers for remote play
//	rgbguess scores [game]     - Show high scores for a game
//	rgbguess config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.rgbguess/scores.db)
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn or error
//
// RGBGUESS_DB and RGBGUESS_LOG_LEVEL, read from the environment or a .env
// file, replace the defaults of --db and --log-level.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-guess/internal/config"
	"github.com/vovakirdan/rgb-guess/internal/games/colors"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rgbguess",
	Short: "RGB Guess - guess the color from its rgb() value",
	Long: `RGB Guess shows an rgb(r, g, b) value and a board of colored tiles.
Pick the tile with that color. Wrong tiles disappear; the right one
paints the whole board.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH and HTTP servers for remote play
  scores   - View high scores
  config   - Print the default game config

Examples:
  rgbguess play
  rgbguess play colors_easy
  rgbguess menu
  rgbguess serve --ssh :2222 --http :8080
  rgbguess scores colors`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rgbguess/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies environment defaults, builds the logger and hands the
// config path to the game.
func setup(cmd *cobra.Command, _ []string) error {
	envDefault(cmd, "db", "RGBGUESS_DB", &flagDBPath)
	envDefault(cmd, "log-level", "RGBGUESS_LOG_LEVEL", &flagLogLevel)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rgbguess",
		Level:           level,
	})

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagConfig != "" {
		if _, err := config.LoadColors(flagConfig); err != nil {
			return err
		}
	}
	colors.SetConfigPath(flagConfig)
	colors.SetLogger(logger.WithPrefix("colors"))
	return nil
}

// envDefault sets *dst from the environment unless the flag was given.
func envDefault(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
