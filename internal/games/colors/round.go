package colors

import (
	"math/rand"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

// channelLimit is the exclusive upper bound of a color channel.
const channelLimit = 256

// RandomNumber returns a uniform integer in [0, limit).
// A non-positive limit yields 0.
func RandomNumber(rng *rand.Rand, limit int) int {
	if limit <= 0 {
		return 0
	}
	return rng.Intn(limit)
}

// RandomColor returns a color with each channel drawn independently.
func RandomColor(rng *rand.Rand) core.Color {
	return core.RGB(
		uint8(RandomNumber(rng, channelLimit)),
		uint8(RandomNumber(rng, channelLimit)),
		uint8(RandomNumber(rng, channelLimit)),
	)
}

// Round is one generated set of colors with its target.
type Round struct {
	Seq         uint64 // 1 for the first round of a controller
	Difficulty  Difficulty
	Colors      []core.Color
	Picked      core.Color
	PickedIndex int
}

// NewRound generates difficulty.Tiles() colors and picks one of them.
// Colors are not required to be distinct.
func NewRound(rng *rand.Rand, d Difficulty, seq uint64) Round {
	n := d.Tiles()
	colors := make([]core.Color, n)
	for i := range colors {
		colors[i] = RandomColor(rng)
	}
	idx := RandomNumber(rng, n)
	return Round{
		Seq:         seq,
		Difficulty:  d,
		Colors:      colors,
		Picked:      colors[idx],
		PickedIndex: idx,
	}
}

// Size returns the number of active tiles.
func (r Round) Size() int {
	return len(r.Colors)
}

// Active reports whether tile index i takes part in the round.
func (r Round) Active(i int) bool {
	return i >= 0 && i < len(r.Colors)
}

// Matches reports whether c is the picked color. Comparison is by channel value.
func (r Round) Matches(c core.Color) bool {
	return c == r.Picked
}

// Contains reports whether c is one of the round's colors.
func (r Round) Contains(c core.Color) bool {
	for _, rc := range r.Colors {
		if rc == c {
			return true
		}
	}
	return false
}
