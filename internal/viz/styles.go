package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/aurasim/internal/dynamo"
)

const (
	panelCols = 30
	panelRows = 14
)

var (
	helpStyle = lipgloss.NewStyle().Italic(true).MarginTop(1)
)

func panelStyle(t Theme, emergency bool) lipgloss.Style {
	border := t.Border
	if emergency {
		border = t.Emergency
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(panelCols+2).
		Padding(0, 1)
}

func alertStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(t.Emergency).
		Width(panelCols - 2)
}

// foreground maps a scene color to a terminal color. Black text is drawn in
// the theme's text color so it stays readable on dark terminals.
func foreground(c dynamo.Color, t Theme) lipgloss.Color {
	if c == dynamo.Black {
		return t.Text
	}
	return lipgloss.Color(c.Hex())
}

// BatteryBar renders percent (0-100) as a bar of width cells.
func BatteryBar(percent float64, width int, c lipgloss.Color) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(c).Render(bar)
}
