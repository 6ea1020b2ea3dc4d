package colors

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

var (
	bodyColor   = core.RGB(35, 35, 35)
	barColor    = core.ColorWhite
	accentColor = core.RGB(70, 130, 180)
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	v := g.board.View()
	dst.FillRect(core.NewRect(0, 0, g.screenW, g.screenH), core.Style{}.WithBg(bodyColor))

	g.renderHeader(dst, v)
	g.renderBar(dst, v)
	g.renderTiles(dst, v)
	if g.ctrl.Won() {
		g.renderWinBanner(dst)
	}
	g.renderFooter(dst)
}

// renderTooSmall shows a boxed "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	const title = "Window too small"
	w := core.Min(utf8.RuneCountInString(title)+4, g.screenW)
	y := g.screenH/2 - 1
	dst.DrawBox(core.NewRect((g.screenW-w)/2, y, w, 4))
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderWinBanner boxes the points of a solved round over the middle of the grid.
func (g *Game) renderWinBanner(dst *core.Screen) {
	tiles := g.layout.tiles
	if len(tiles) == 0 {
		return
	}
	text := fmt.Sprintf("+%d POINTS", g.ctrl.RoundPoints())
	if g.ctrl.RoundPoints() == 1 {
		text = "+1 POINT"
	}

	w := utf8.RuneCountInString(text) + 6
	mid := (tiles[0].Y + tiles[len(tiles)-1].Bottom()) / 2
	r := core.NewRect((g.screenW-w)/2, mid-1, w, 3)

	style := core.Style{}.WithBg(bodyColor).WithFg(barColor)
	dst.FillRect(r, style)
	dst.DrawBox(r)
	dst.DrawTextCenteredStyled(r.Y+1, text, style.WithBold())
}

// renderHeader draws the title band in the header color with the readout.
func (g *Game) renderHeader(dst *core.Screen, v BoardView) {
	style := core.Style{}.WithBg(v.Header).WithFg(v.Header.Contrast())
	dst.FillRect(g.layout.header, style)
	dst.DrawTextCenteredStyled(0, "THE GREAT", style)
	dst.DrawTextCenteredStyled(1, strings.ToUpper(v.Readout), style.WithBold())
	dst.DrawTextCenteredStyled(2, "GUESSING GAME", style)
}

// renderBar draws the reset control, the message and the difficulty controls.
func (g *Game) renderBar(dst *core.Screen, v BoardView) {
	bar := core.Style{}.WithBg(barColor).WithFg(accentColor)
	dst.FillRect(core.NewRect(0, barY, g.screenW, 1), bar)

	drawControl(dst, g.layout.reset, strings.ToUpper(v.ResetLabel), bar)
	drawControl(dst, g.layout.easy, "EASY", levelStyle(v.Selected == Easy, bar))
	drawControl(dst, g.layout.hard, "HARD", levelStyle(v.Selected == Hard, bar))

	// Opacity 0 leaves the message invisible; partial values blend into the bar
	if v.MessageOpacity > 0 && v.Message != "" {
		fg := barColor.Blend(accentColor, v.MessageOpacity)
		dst.DrawTextCenteredStyled(barY, strings.ToUpper(v.Message), bar.WithFg(fg).WithBold())
	}
}

func levelStyle(selected bool, bar core.Style) core.Style {
	if selected {
		return core.Style{}.WithBg(accentColor).WithFg(barColor)
	}
	return bar
}

// drawControl centers label inside r.
func drawControl(dst *core.Screen, r core.Rect, label string, style core.Style) {
	dst.FillRect(r, style)
	x := r.X + (r.W-utf8.RuneCountInString(label))/2
	dst.DrawTextStyled(x, r.Y, label, style)
}

// renderTiles paints visible tiles and marks the cursor.
func (g *Game) renderTiles(dst *core.Screen, v BoardView) {
	for i, r := range g.layout.tiles {
		if i >= len(v.Tiles) || r.Empty() {
			continue
		}
		t := v.Tiles[i]

		label := fmt.Sprintf(" %d ", i+1)
		if i == g.cursor {
			label = fmt.Sprintf("[%d]", i+1)
		}

		if t.Hidden {
			if i == g.cursor {
				dst.DrawTextStyled(r.X, r.Y, label, core.Style{}.WithBg(bodyColor).WithFg(core.ColorGray))
			}
			continue
		}

		dst.FillRect(r, core.Style{}.WithBg(t.Color))
		dst.DrawTextStyled(r.X, r.Y, label, core.Style{}.WithBg(t.Color).WithFg(t.Color.Contrast()))
	}
}

// renderFooter draws a rule, the session totals and the key help.
func (g *Game) renderFooter(dst *core.Screen) {
	style := core.Style{}.WithBg(bodyColor).WithFg(core.ColorGray)
	dst.DrawHLine(2, g.layout.status-1, g.screenW-4, '─')
	stats := g.ctrl.Stats()
	status := fmt.Sprintf("%s  Won: %d  Points: %d  Misses: %d",
		strings.ToUpper(g.ctrl.Difficulty().String()), stats.RoundsWon, stats.Points, g.ctrl.Misses())
	dst.DrawTextCenteredStyled(g.layout.status, status, style)

	help := fmt.Sprintf("1-%d/click pick  arrows+enter  e/h level  n new  q quit", g.ctrl.Round().Size())
	dst.DrawTextCenteredStyled(g.layout.help, help, style)
}
