package output

import "kymera/internal/dashboard"

// Panel IDs to avoid hardcoded strings
const (
	PanelMomentum    = "momentum"
	PanelStatus      = "status"
	PanelPerformance = "performance"
)

const (
	TrendBullish = "BULLISH"
	TrendNeutral = "NEUTRAL"
	TrendBearish = "BEARISH"
)

// UI/view-model types (no printing here)
type MetricRow struct {
	Timeframe string
	Score     float64
	Trend     string
	Change    string
}

type StatusRow struct {
	Label  string
	Status string
	Value  string
}

type PerformanceBar struct {
	Label string
	Value string
	Fill  float64 // 0..1
}

type DashboardView struct {
	Title         string
	Subtitle      string
	MomentumTitle string
	Momentum      []MetricRow
	Signal        string
	Status        []StatusRow
	Performance   []PerformanceBar
	Copyright     string
}

// BuildDashboard returns the fixed dashboard content. Nothing here is
// derived from market data.
func BuildDashboard() DashboardView {
	return DashboardView{
		Title:         "KYMERA SYSTEMS",
		Subtitle:      "// ALGORITHMIC TRADING INTELLIGENCE PLATFORM",
		MomentumTitle: "SABR20 MOMENTUM ANALYSIS",
		Momentum: []MetricRow{
			{Timeframe: "15MIN", Score: 78.4, Trend: TrendBullish, Change: "+12.3%"},
			{Timeframe: "1HOUR", Score: 65.2, Trend: TrendNeutral, Change: "+3.7%"},
			{Timeframe: "4HOUR", Score: 82.1, Trend: TrendBullish, Change: "+18.9%"},
		},
		Signal: "SYSTEM STATUS: All momentum indicators converging on bullish reversal pattern. " +
			"Multi-timeframe confirmation at 87.3% probability threshold.",
		Status: []StatusRow{
			{Label: "MARKET DATA", Status: "ONLINE", Value: "99.98%"},
			{Label: "EXECUTION", Status: "ACTIVE", Value: "12ms"},
			{Label: "RISK ENGINE", Status: "OPTIMAL", Value: "1.8x"},
		},
		Performance: []PerformanceBar{
			{Label: "WIN RATE", Value: "67.3%", Fill: 0.673},
			{Label: "SHARPE RATIO", Value: "2.84", Fill: 0.90},
		},
		Copyright: "KYMERA SYSTEMS LLC © 2025",
	}
}

// EmphasizedPanel maps the active tab to the panel it highlights.
func EmphasizedPanel(tab dashboard.Tab) string {
	switch tab {
	case dashboard.TabMetrics:
		return PanelPerformance
	case dashboard.TabSystems:
		return PanelStatus
	default:
		return PanelMomentum
	}
}
