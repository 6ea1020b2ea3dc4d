package colors

import (
	"unicode/utf8"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

const (
	headerH   = 3
	barY      = headerH
	gridTop   = headerH + 2
	footerH   = 2
	maxGridW  = 60
	tileGapX  = 2
	tileGapY  = 1
	levelSpan = 6 // Width of the EASY/HARD controls
)

type hitKind int

const (
	hitNone hitKind = iota
	hitTile
	hitEasy
	hitHard
	hitReset
)

type hitResult struct {
	kind  hitKind
	index int
}

// layout holds the screen rectangles of every clickable element.
type layout struct {
	header core.Rect
	reset  core.Rect
	easy   core.Rect
	hard   core.Rect
	tiles  []core.Rect
	status int // Row of the status line
	help   int // Row of the help line
}

// computeLayout places the header, control bar and tile grid for a w x h screen.
// The reset control is wide enough for the longest of labels.
func computeLayout(w, h, tiles int, labels ...string) layout {
	resetW := 0
	for _, label := range labels {
		resetW = core.Max(resetW, utf8.RuneCountInString(label)+4)
	}

	l := layout{
		header: core.NewRect(0, 0, w, headerH),
		reset:  core.NewRect(1, barY, resetW, 1),
		easy:   core.NewRect(w-2*levelSpan-2, barY, levelSpan, 1),
		hard:   core.NewRect(w-levelSpan-1, barY, levelSpan, 1),
		status: h - footerH,
		help:   h - 1,
	}

	rows := (tiles + gridCols - 1) / gridCols
	gridW := core.Min(w-4, maxGridW)
	area := core.NewRect((w-gridW)/2, gridTop, gridW, h-gridTop-footerH-1)
	l.tiles = core.Grid(area, gridCols, rows, tileGapX, tileGapY)[:tiles]
	return l
}

// hit finds the element under p.
func (l layout) hit(p core.Point) hitResult {
	for i, r := range l.tiles {
		if r.Contains(p.X, p.Y) {
			return hitResult{kind: hitTile, index: i}
		}
	}
	switch {
	case l.easy.Contains(p.X, p.Y):
		return hitResult{kind: hitEasy}
	case l.hard.Contains(p.X, p.Y):
		return hitResult{kind: hitHard}
	case l.reset.Contains(p.X, p.Y):
		return hitResult{kind: hitReset}
	}
	return hitResult{kind: hitNone}
}
