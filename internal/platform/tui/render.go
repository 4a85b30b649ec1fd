package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gemswap/internal/core"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// styleKey identifies one cell style.
type styleKey struct {
	color core.Color
	faint bool
}

// cellStyle returns the lipgloss style for a cell. Colors are passed
// through as ANSI codes ("245") or hex ("#e62323").
func cellStyle(k styleKey) lipgloss.Style {
	style := lipgloss.NewStyle()
	if k.color != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(string(k.color)))
	}
	if k.faint {
		style = style.Faint(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[styleKey]lipgloss.Style)

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{color: cell.Color, faint: cell.Faint}

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{color: cell.Color, faint: cell.Faint}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = cellStyle(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
