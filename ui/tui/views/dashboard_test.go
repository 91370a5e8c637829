package views

import (
	"strings"
	"testing"
	"time"

	"kymera/internal/dashboard"
	"kymera/ui/tui/state"
)

var renderTime = time.Date(2025, 6, 2, 14, 5, 9, 0, time.UTC)

func TestRenderDashboard_StaticContent(t *testing.T) {
	out := RenderDashboard(state.New(), ViewProps{Width: 120, Now: renderTime})

	for _, want := range []string{
		"KYMERA SYSTEMS",
		"// ALGORITHMIC TRADING INTELLIGENCE PLATFORM",
		"OVERVIEW", "METRICS", "SYSTEMS",
		"SABR20 MOMENTUM ANALYSIS",
		"15MIN", "78.4", "+12.3%",
		"1HOUR", "65.2", "NEUTRAL", "+3.7%",
		"4HOUR", "82.1", "+18.9%",
		"87.3%",
		"MARKET DATA", "99.98%",
		"EXECUTION", "12ms",
		"RISK ENGINE", "1.8x",
		"WIN RATE", "67.3%",
		"SHARPE RATIO", "2.84",
		"KYMERA SYSTEMS LLC © 2025",
		"LAST UPDATE: 14:05:09",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard output missing %q", want)
		}
	}
}

func TestRenderDashboard_OneEmphasizedPanel(t *testing.T) {
	for _, tab := range dashboard.Tabs() {
		s := state.New()
		s.ActiveTab = tab
		out := RenderDashboard(s, ViewProps{Width: 120, Now: renderTime})

		if n := strings.Count(out, "┏"); n != 1 {
			t.Errorf("tab %s: expected exactly one emphasized panel, found %d", tab, n)
		}
		if n := strings.Count(out, "╭"); n != 2 {
			t.Errorf("tab %s: expected two regular panels, found %d", tab, n)
		}
	}
}

func TestRenderDashboard_NarrowAndUnsized(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Render panicked: %v", r)
		}
	}()

	for _, w := range []int{0, 20, 60, 95, 96, 200} {
		out := RenderDashboard(state.New(), ViewProps{Width: w, Height: 40, Now: renderTime})
		if !strings.Contains(out, "SYSTEM STATUS") {
			t.Errorf("width %d: missing status panel", w)
		}
	}
}

func TestRenderDashboard_HelpAppended(t *testing.T) {
	out := RenderDashboard(state.New(), ViewProps{Width: 120, Now: renderTime, HelpView: "q quit"})
	if !strings.HasSuffix(strings.TrimSpace(out), "q quit") {
		t.Error("Expected help line at the bottom of the dashboard")
	}
}

func TestIndicator_Position(t *testing.T) {
	tests := []struct {
		pos     float64
		leading int
	}{
		{0, 0},
		{1, TabWidth},
		{2, 2 * TabWidth},
		{0.5, TabWidth / 2},
		{-0.4, 0},          // undershoot clamps
		{2.3, 2 * TabWidth}, // overshoot clamps
	}

	for _, tt := range tests {
		line := indicator(3, tt.pos, 0.3)
		if got := strings.Count(line, "━"); got != TabWidth {
			t.Errorf("pos %v: lit segment %d cells, want %d", tt.pos, got, TabWidth)
		}
		if got := strings.Count(line, "─"); got != 2*TabWidth {
			t.Errorf("pos %v: rail %d cells, want %d", tt.pos, got, 2*TabWidth)
		}
		lead := strings.Index(line, "━")
		if lead/len("─") != tt.leading {
			t.Errorf("pos %v: segment starts at %d, want %d", tt.pos, lead/len("─"), tt.leading)
		}
	}
}

func TestTabZoneID(t *testing.T) {
	if TabZoneID(dashboard.TabMetrics) != "tab_metrics" {
		t.Errorf("unexpected zone id %q", TabZoneID(dashboard.TabMetrics))
	}
}
