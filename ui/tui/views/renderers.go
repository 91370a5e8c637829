package views

import (
	"kymera/ui/tui/state"
)

var (
	_ View = TabsView{}
	_ View = DashboardView{}
)

func RenderTabs(s state.AppState, props ViewProps) string {
	return TabsView{}.Render(s, props)
}

func RenderDashboard(s state.AppState, props ViewProps) string {
	return DashboardView{}.Render(s, props)
}
