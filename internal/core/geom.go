// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned area of the screen, used for layout and hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Grid splits area into cols x rows cells separated by gapX/gapY.
// Cells are returned row by row. Leftover space is split evenly around the grid.
func Grid(area Rect, cols, rows, gapX, gapY int) []Rect {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	cellW := (area.W - gapX*(cols-1)) / cols
	cellH := (area.H - gapY*(rows-1)) / rows
	cellW = Max(cellW, 0)
	cellH = Max(cellH, 0)

	// Center the grid in the area
	usedW := cellW*cols + gapX*(cols-1)
	usedH := cellH*rows + gapY*(rows-1)
	offX := area.X + (area.W-usedW)/2
	offY := area.Y + (area.H-usedH)/2

	cells := make([]Rect, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells = append(cells, NewRect(
				offX+col*(cellW+gapX),
				offY+row*(cellH+gapY),
				cellW,
				cellH,
			))
		}
	}
	return cells
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
