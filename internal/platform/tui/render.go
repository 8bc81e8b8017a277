package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/flagrun/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// styleFor builds a true-color lipgloss style for a cell color pair.
func styleFor(k cellStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.WithAlpha(0xff).Hex())).
		Background(lipgloss.Color(k.bg.WithAlpha(0xff).Hex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[key]
			if !ok {
				style = styleFor(key)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
