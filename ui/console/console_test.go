package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"kymera/internal/dashboard"
	"kymera/internal/output"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		trend    string
		expected string
	}{
		{output.TrendBullish, colorGreen},
		{output.TrendBearish, colorRed},
		{output.TrendNeutral, colorYellow},
		{"", colorYellow},
	}

	for _, tt := range tests {
		result := colorFor(tt.trend)
		if result != tt.expected {
			t.Errorf("colorFor(%q) = %q; want %q", tt.trend, result, tt.expected)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		fill   float64
		filled int
	}{
		{0, 0},
		{0.673, 13},
		{0.9, 18},
		{1, 20},
		{1.5, 20},
		{-0.2, 0},
	}
	for _, tt := range tests {
		b := bar(tt.fill, 20)
		if got := strings.Count(b, "█"); got != tt.filled {
			t.Errorf("bar(%v) filled %d, want %d", tt.fill, got, tt.filled)
		}
		if got := strings.Count(b, "█") + strings.Count(b, "░"); got != 20 {
			t.Errorf("bar(%v) width %d, want 20", tt.fill, got)
		}
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, 1, 1, 23, 59, 1, 0, time.UTC)

	Print(&buf, output.BuildDashboard(), dashboard.TabSystems, now)
	out := buf.String()

	for _, want := range []string{
		"KYMERA SYSTEMS",
		"[SYSTEMS]",
		"15MIN", "78.4", "BULLISH", "+12.3%",
		"▶ SYSTEM STATUS",
		"─ SABR20 MOMENTUM ANALYSIS",
		"RISK ENGINE", "1.8x",
		"SHARPE RATIO", "2.84",
		"LAST UPDATE: 23:59:01",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q", want)
		}
	}
}
