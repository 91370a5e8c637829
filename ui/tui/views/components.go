package views

import (
	"strings"

	"kymera/internal/output"
	"kymera/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func ColorForTrend(trend string) lipgloss.Style {
	sStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch trend {
	case output.TrendBullish:
		return sStyle.Foreground(styles.Emerald).Background(lipgloss.Color("#0B3B2E"))
	case output.TrendBearish:
		return sStyle.Foreground(styles.Red).Background(lipgloss.Color("#3B0B0B"))
	}
	return sStyle.Foreground(styles.Yellow).Background(lipgloss.Color("#3A2F0B"))
}

// spread pushes right to the far edge of a block of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
