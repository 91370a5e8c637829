package views

import (
	"fmt"

	"kymera/internal/output"
	"kymera/ui/tui/state"
	"kymera/ui/tui/styles"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 100
	// Below this the side panels stack under the main panel.
	wideLayoutMin = 96
)

type DashboardView struct{}

func (v DashboardView) Render(s state.AppState, props ViewProps) string {
	width := props.Width
	if width <= 0 {
		width = defaultWidth
	}
	d := s.Dashboard

	header := v.header(s, props, width)
	tabs := RenderTabs(s, props)

	var content string
	if width >= wideLayoutMin {
		mainW := width*2/3 - 1
		sideW := width - mainW - 1
		side := lipgloss.JoinVertical(lipgloss.Left,
			v.statusPanel(s, sideW),
			v.performancePanel(s, sideW),
		)
		content = lipgloss.JoinHorizontal(lipgloss.Top, v.momentumPanel(s, mainW), " ", side)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left,
			v.momentumPanel(s, width),
			v.statusPanel(s, width),
			v.performancePanel(s, width),
		)
	}

	footer := styles.FooterStyle.Render(spread(
		d.Copyright,
		"LAST UPDATE: "+props.Now.Format("15:04:05"),
		width,
	))

	parts := []string{header, "", tabs, "", content, "", footer}
	if props.HelpView != "" {
		parts = append(parts, props.HelpView)
	}
	return scan(props.Zones, lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (v DashboardView) header(s state.AppState, props ViewProps, width int) string {
	accent := lipgloss.NewStyle().Foreground(styles.GlowColor(s.Glow)).Render("▌")
	title := lipgloss.JoinVertical(lipgloss.Left,
		accent+" "+styles.TitleStyle.Render(s.Dashboard.Title),
		styles.SubtitleStyle.Render(s.Dashboard.Subtitle),
	)
	if props.TraceView == "" || width < wideLayoutMin {
		return title
	}
	trace := lipgloss.NewStyle().Foreground(styles.GlowColor(s.Glow)).Render(props.TraceView)
	return spread(title, trace, width)
}

// panel wraps body in the glowing card used by every section. width is the
// outer width including border.
func panel(s state.AppState, id, title, body string, width int) string {
	style := styles.PanelStyle(s.Glow, s.Emphasized(id))
	return style.Width(innerWidth(s, id, width) + style.GetHorizontalPadding()).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.PanelTitleStyle.Render(title),
			body,
		),
	)
}

func innerWidth(s state.AppState, id string, width int) int {
	w := width - styles.PanelStyle(s.Glow, s.Emphasized(id)).GetHorizontalFrameSize()
	if w < 10 {
		w = 10
	}
	return w
}

func (v DashboardView) momentumPanel(s state.AppState, width int) string {
	d := s.Dashboard
	inner := innerWidth(s, output.PanelMomentum, width)

	rowStyle := lipgloss.NewStyle().
		Background(styles.Row).
		Padding(0, 1).
		Width(inner)

	var rows []string
	for _, m := range d.Momentum {
		left := lipgloss.NewStyle().Bold(true).Foreground(styles.Cyan).Render(fmt.Sprintf("%-6s", m.Timeframe)) +
			lipgloss.NewStyle().Foreground(styles.Subtle).Render(" ──── ") +
			styles.ValueStyle.Render(fmt.Sprintf("%.1f", m.Score))
		right := ColorForTrend(m.Trend).Render(m.Trend) + "  " + styles.StatusStyle.Render(m.Change)
		rows = append(rows, rowStyle.Render(spread(left, right, inner-2)))
	}

	signal := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(styles.Cyan).
		Foreground(styles.Gray300).
		PaddingLeft(1).
		MarginTop(1).
		Width(inner - 1).
		Render(lipgloss.NewStyle().Bold(true).Foreground(styles.Cyan).Render(">>") + " " + d.Signal)

	body := lipgloss.JoinVertical(lipgloss.Left, append(rows, signal)...)
	return panel(s, output.PanelMomentum, d.MomentumTitle, body, width)
}

func (v DashboardView) statusPanel(s state.AppState, width int) string {
	inner := innerWidth(s, output.PanelStatus, width)
	dot := lipgloss.NewStyle().Foreground(styles.PulseColor(s.Pulse)).Render("●")

	var rows []string
	for _, r := range s.Dashboard.Status {
		right := dot + " " + styles.StatusStyle.Render(r.Value)
		rows = append(rows, spread(styles.LabelStyle.Render(r.Label), right, inner))
	}
	return panel(s, output.PanelStatus, "SYSTEM STATUS", lipgloss.JoinVertical(lipgloss.Left, rows...), width)
}

func (v DashboardView) performancePanel(s state.AppState, width int) string {
	inner := innerWidth(s, output.PanelPerformance, width)
	gradients := [][2]string{styles.WinRateGradient, styles.SharpeGradient}

	var rows []string
	for i, b := range s.Dashboard.Performance {
		g := gradients[i%len(gradients)]
		bar := progress.New(
			progress.WithGradient(g[0], g[1]),
			progress.WithWidth(inner),
			progress.WithoutPercentage(),
		)
		bar.EmptyColor = styles.RowHex

		line := spread(styles.LabelStyle.Render(b.Label), styles.ValueStyle.Render(b.Value), inner)
		rows = append(rows, line, bar.ViewAs(b.Fill))
		if i < len(s.Dashboard.Performance)-1 {
			rows = append(rows, "")
		}
	}
	return panel(s, output.PanelPerformance, "PERFORMANCE", lipgloss.JoinVertical(lipgloss.Left, rows...), width)
}
