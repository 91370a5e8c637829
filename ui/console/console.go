package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"kymera/internal/dashboard"
	"kymera/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

const labelWidth = 22

// Print renders a one-shot plain-text snapshot of the dashboard. The panel
// emphasised by tab is marked with an arrow.
func Print(w io.Writer, view output.DashboardView, tab dashboard.Tab, now time.Time) {
	fmt.Fprintf(w, "%s%s■ %s%s\n", colorBold, colorCyan, view.Title, colorReset)
	fmt.Fprintf(w, "  %s\n", view.Subtitle)

	var tabs []string
	for _, t := range dashboard.Tabs() {
		if t == tab {
			tabs = append(tabs, fmt.Sprintf("%s[%s]%s", colorCyan, t.Label(), colorReset))
		} else {
			tabs = append(tabs, " "+t.Label()+" ")
		}
	}
	fmt.Fprintf(w, "%s\n", strings.Join(tabs, " "))

	emphasized := output.EmphasizedPanel(tab)

	section(w, view.MomentumTitle, emphasized == output.PanelMomentum)
	for _, m := range view.Momentum {
		value := fmt.Sprintf("%.1f %s%-7s%s %s", m.Score, colorFor(m.Trend), m.Trend, colorReset, m.Change)
		row(w, m.Timeframe, value)
	}
	fmt.Fprintf(w, "  %s>>%s %s\n", colorCyan, colorReset, view.Signal)

	section(w, "SYSTEM STATUS", emphasized == output.PanelStatus)
	for _, s := range view.Status {
		row(w, s.Label, fmt.Sprintf("%s●%s %s", colorGreen, colorReset, s.Value))
	}

	section(w, "PERFORMANCE", emphasized == output.PanelPerformance)
	for _, b := range view.Performance {
		row(w, b.Label, fmt.Sprintf("%s %s", b.Value, bar(b.Fill, 20)))
	}

	fmt.Fprintf(w, "%s─ %s | LAST UPDATE: %s%s\n\n", colorCyan, view.Copyright, now.Format("15:04:05"), colorReset)
}

func section(w io.Writer, title string, emphasized bool) {
	marker := "─"
	if emphasized {
		marker = "▶"
	}
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, marker, title, colorReset)
}

func row(w io.Writer, label, value string) {
	dots := strings.Repeat("·", max(labelWidth-len(label), 1))
	fmt.Fprintf(w, "  %s%s%s%s %s\n", label, colorCyan, dots, colorReset, value)
}

func bar(fill float64, width int) string {
	filled := int(fill*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func colorFor(trend string) string {
	switch trend {
	case output.TrendBullish:
		return colorGreen
	case output.TrendBearish:
		return colorRed
	default:
		return colorYellow
	}
}
