// Package config provides YAML-based game configuration loading for
// the color guessing game.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

// HardTiles is the number of colors in a hard round, and the minimum
// number of tile slots a board can have.
const HardTiles = 6

// ColorsConfig contains all configuration for the color guessing game.
type ColorsConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Message MessageConfig `yaml:"message"`
	Labels  LabelConfig   `yaml:"labels"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the tile grid and the round defaults.
type BoardConfig struct {
	Tiles             int              `yaml:"tiles"`
	DefaultDifficulty DifficultyPreset `yaml:"default_difficulty"`
	HeaderColor       core.Color       `yaml:"header_color"` // Neutral header before a win
}

// MessageConfig defines the message area texts and the fade timing.
type MessageConfig struct {
	FadeDelayMS int    `yaml:"fade_delay_ms"`
	TryAgain    string `yaml:"try_again"`
	Correct     string `yaml:"correct"`
}

// FadeDelay returns the fade delay as a duration.
func (m MessageConfig) FadeDelay() time.Duration {
	return time.Duration(m.FadeDelayMS) * time.Millisecond
}

// LabelConfig defines the reset control labels.
type LabelConfig struct {
	NewColors string `yaml:"new_colors"`
	PlayAgain string `yaml:"play_again"`
}

// ScoringConfig defines how a won round is scored.
type ScoringConfig struct {
	MinPoints int `yaml:"min_points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// ParseDifficultyPreset parses "easy" or "hard" (case-insensitive).
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy or hard)", s)
	}
}

// Validate checks that the configuration can drive a game.
func (c ColorsConfig) Validate() error {
	if c.Board.Tiles < HardTiles {
		return fmt.Errorf("config: board.tiles must be at least %d, got %d", HardTiles, c.Board.Tiles)
	}
	if _, err := ParseDifficultyPreset(string(c.Board.DefaultDifficulty)); err != nil {
		return err
	}
	if c.Message.FadeDelayMS < 0 {
		return fmt.Errorf("config: message.fade_delay_ms must not be negative, got %d", c.Message.FadeDelayMS)
	}
	if c.Scoring.MinPoints < 0 {
		return fmt.Errorf("config: scoring.min_points must not be negative, got %d", c.Scoring.MinPoints)
	}
	return nil
}
