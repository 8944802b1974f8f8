package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders playback progress as a filled bar with a percentage.
// The bar turns the theme's sorted colour once complete.
func ProgressBar(theme Theme, percent float64, width int) string {
	const suffix = 5 // " 100%"
	barWidth := max(1, width-suffix)
	filled := int(percent * float64(barWidth))
	filled = max(0, min(barWidth, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	color := theme.Accent
	if filled == barWidth {
		color = theme.Sorted
	}
	return lipgloss.NewStyle().Foreground(color).Render(bar) +
		lipgloss.NewStyle().Foreground(theme.Muted).Render(fmt.Sprintf(" %3d%%", int(percent*100)))
}
