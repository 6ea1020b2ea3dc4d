package colors

import (
	"fmt"

	"github.com/vovakirdan/rgb-guess/internal/config"
)

// Difficulty selects how many colors a round offers.
type Difficulty int

const (
	Easy Difficulty = 1 // 3 colors, one row
	Hard Difficulty = 2 // 6 colors, two rows
)

// Tiles returns the number of colors generated for a round.
func (d Difficulty) Tiles() int {
	return int(d) * 3
}

// Valid reports whether d is Easy or Hard.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Hard
}

// String returns "easy", "hard" or "unknown".
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// MarshalText encodes the difficulty by name.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("colors: invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts "easy" or "hard" in any case.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	p, err := config.ParseDifficultyPreset(s)
	if err != nil {
		return 0, err
	}
	return FromPreset(p), nil
}

// FromPreset maps a config preset to a difficulty. Unknown presets map to Hard.
func FromPreset(p config.DifficultyPreset) Difficulty {
	if p == config.DifficultyEasy {
		return Easy
	}
	return Hard
}
