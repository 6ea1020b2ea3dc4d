package config

import (
	_ "embed"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

//go:embed defaults/colors.yaml
var defaultColorsYAML []byte

// DefaultColorsConfig returns the built-in configuration.
func DefaultColorsConfig() ColorsConfig {
	return ColorsConfig{
		Board: BoardConfig{
			Tiles:             HardTiles,
			DefaultDifficulty: DifficultyHard,
			HeaderColor:       core.RGB(64, 9, 96),
		},
		Message: MessageConfig{
			FadeDelayMS: 200,
			TryAgain:    "Try Again",
			Correct:     "Correct!",
		},
		Labels: LabelConfig{
			NewColors: "New Colors",
			PlayAgain: "Play Again?",
		},
		Scoring: ScoringConfig{
			MinPoints: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultColorsYAML
}
