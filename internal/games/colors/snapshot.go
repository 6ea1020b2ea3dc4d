package colors

import (
	"time"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

// Snapshot captures the controller and board state for determinism tests and the HTTP API.
type Snapshot struct {
	Round      uint64        `json:"round"`
	Difficulty Difficulty    `json:"difficulty"`
	Colors     []core.Color  `json:"colors"`
	Picked     core.Color    `json:"picked"`
	Misses     int           `json:"misses"`
	Won        bool          `json:"won"`
	Points     int           `json:"points"`
	Stats      Stats         `json:"stats"`
	Clock      time.Duration `json:"-"`
	Board      BoardView     `json:"board"`

	// MessagePending is set while a message write is scheduled. Clients poll until it clears.
	MessagePending bool `json:"message_pending"`
}

// TakeSnapshot captures c and the board it draws on.
func TakeSnapshot(c *Controller, b *Board) Snapshot {
	r := c.Round()
	return Snapshot{
		Round:      r.Seq,
		Difficulty: c.Difficulty(),
		Colors:     append([]core.Color(nil), r.Colors...),
		Picked:     r.Picked,
		Misses:     c.Misses(),
		Won:        c.Won(),
		Points:     c.RoundPoints(),
		Stats:      c.Stats(),
		Clock:      c.Now(),
		Board:      b.View(),

		MessagePending: c.MessagePending(),
	}
}
