package colors

import (
	"github.com/vovakirdan/rgb-guess/internal/core"
)

// Surface is the set of visible elements the controller drives.
// Implementations ignore out-of-range tile indices.
type Surface interface {
	TileCount() int
	TileColor(i int) core.Color
	TileHidden(i int) bool

	SetTileColor(i int, c core.Color)
	SetTileHidden(i int, hidden bool)
	SetHeaderColor(c core.Color)
	SetMessage(text string)
	SetMessageOpacity(opacity float64)
	SetReadout(text string)
	SelectDifficulty(d Difficulty)
	SetResetLabel(label string)
}

// TileView is the visible state of one tile.
type TileView struct {
	Color  core.Color `json:"color"`
	Hidden bool       `json:"hidden"`
}

// BoardView is a copy of everything a Board displays.
type BoardView struct {
	Tiles          []TileView `json:"tiles"`
	Header         core.Color `json:"header"`
	Readout        string     `json:"readout"`
	Message        string     `json:"message"`
	MessageOpacity float64    `json:"messageOpacity"`
	Selected       Difficulty `json:"selected"`
	ResetLabel     string     `json:"resetLabel"`
}

// Board is the in-memory Surface used by the terminal and HTTP front ends.
type Board struct {
	view BoardView
}

// NewBoard creates a board with n hidden tiles.
func NewBoard(n int) *Board {
	tiles := make([]TileView, n)
	for i := range tiles {
		tiles[i].Hidden = true
	}
	return &Board{view: BoardView{Tiles: tiles, Selected: Hard}}
}

// View returns a copy of the board state.
func (b *Board) View() BoardView {
	v := b.view
	v.Tiles = append([]TileView(nil), b.view.Tiles...)
	return v
}

func (b *Board) inRange(i int) bool {
	return i >= 0 && i < len(b.view.Tiles)
}

// TileCount returns the number of tiles on the board.
func (b *Board) TileCount() int {
	return len(b.view.Tiles)
}

// TileColor returns the color of tile i, or the zero color when i is out of range.
func (b *Board) TileColor(i int) core.Color {
	if !b.inRange(i) {
		return core.Color{}
	}
	return b.view.Tiles[i].Color
}

// TileHidden reports whether tile i is hidden. Out of range tiles count as hidden.
func (b *Board) TileHidden(i int) bool {
	if !b.inRange(i) {
		return true
	}
	return b.view.Tiles[i].Hidden
}

// SetTileColor paints tile i. Out of range indexes are ignored.
func (b *Board) SetTileColor(i int, c core.Color) {
	if b.inRange(i) {
		b.view.Tiles[i].Color = c
	}
}

// SetTileHidden hides or shows tile i. Out of range indexes are ignored.
func (b *Board) SetTileHidden(i int, hidden bool) {
	if b.inRange(i) {
		b.view.Tiles[i].Hidden = hidden
	}
}

// SetHeaderColor sets the header background.
func (b *Board) SetHeaderColor(c core.Color) {
	b.view.Header = c
}

// SetMessage replaces the status message.
func (b *Board) SetMessage(text string) {
	b.view.Message = text
}

// SetMessageOpacity sets the message opacity, clamped to [0, 1].
func (b *Board) SetMessageOpacity(opacity float64) {
	b.view.MessageOpacity = core.ClampF(opacity, 0, 1)
}

// SetReadout replaces the rgb readout.
func (b *Board) SetReadout(text string) {
	b.view.Readout = text
}

// SelectDifficulty highlights the control for d.
func (b *Board) SelectDifficulty(d Difficulty) {
	b.view.Selected = d
}

// SetResetLabel relabels the reset control.
func (b *Board) SetResetLabel(label string) {
	b.view.ResetLabel = label
}
