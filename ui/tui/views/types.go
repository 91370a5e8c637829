package views

import (
	"time"

	"kymera/ui/tui/state"

	zone "github.com/lrstanley/bubblezone"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int
	Now           time.Time

	// Component States
	IndicatorPos float64 // spring-animated tab index
	TraceView    string
	HelpView     string

	// Zones is nil when rendering outside an interactive program.
	Zones *zone.Manager
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}

func scan(z *zone.Manager, s string) string {
	if z == nil {
		return s
	}
	return z.Scan(s)
}
