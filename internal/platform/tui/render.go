package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

// styleFor maps a cell style to a truecolor lipgloss style.
func styleFor(s core.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.HasFg {
		style = style.Foreground(lipgloss.Color(s.Fg.Hex()))
	}
	if s.HasBg {
		style = style.Background(lipgloss.Color(s.Bg.Hex()))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Style]lipgloss.Style)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
