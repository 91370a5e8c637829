package views

import (
	"math"
	"strings"

	"kymera/internal/dashboard"
	"kymera/ui/tui/state"
	"kymera/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const TabWidth = 16

// TabZoneID is the bubblezone id of a tab button.
func TabZoneID(t dashboard.Tab) string {
	return "tab_" + string(t)
}

type TabsView struct{}

func (v TabsView) Render(s state.AppState, props ViewProps) string {
	tabs := dashboard.Tabs()

	var buttons []string
	for _, tab := range tabs {
		style := lipgloss.NewStyle().
			Width(TabWidth).
			Align(lipgloss.Center).
			Padding(0, 1)

		if tab == s.ActiveTab {
			style = style.Bold(true).
				Foreground(styles.Cyan).
				Background(styles.GlowFill(s.Glow))
		} else {
			style = style.Foreground(styles.Gray500)
		}

		buttons = append(buttons, mark(props.Zones, TabZoneID(tab), style.Render(tab.Label())))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	return lipgloss.JoinVertical(lipgloss.Left, row, indicator(len(tabs), props.IndicatorPos, s.Glow))
}

// indicator draws the rail under the tab row with a lit segment at pos,
// measured in tabs. pos may overshoot while the spring settles.
func indicator(count int, pos, glow float64) string {
	total := count * TabWidth
	offset := int(math.Round(pos * TabWidth))
	if offset < 0 {
		offset = 0
	}
	if offset > total-TabWidth {
		offset = total - TabWidth
	}

	rail := lipgloss.NewStyle().Foreground(styles.Subtle)
	lit := lipgloss.NewStyle().Foreground(styles.GlowColor(glow))

	return rail.Render(strings.Repeat("─", offset)) +
		lit.Render(strings.Repeat("━", TabWidth)) +
		rail.Render(strings.Repeat("─", total-offset-TabWidth))
}
