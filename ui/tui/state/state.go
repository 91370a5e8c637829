package state

import (
	"kymera/internal/dashboard"
	"kymera/internal/output"
)

// AppState holds what the views render from.
type AppState struct {
	Dashboard output.DashboardView
	ActiveTab dashboard.Tab
	Glow      float64
	Pulse     float64 // Glow normalised to [0, 1]
}

func New() AppState {
	return AppState{
		Dashboard: output.BuildDashboard(),
		ActiveTab: dashboard.TabOverview,
		Glow:      0.3,
		Pulse:     0.5,
	}
}

// Emphasized reports whether panel is the one highlighted by the active tab.
func (s AppState) Emphasized(panel string) bool {
	return output.EmphasizedPanel(s.ActiveTab) == panel
}
