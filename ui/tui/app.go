package tui

import (
	"errors"
	"fmt"
	"time"

	"kymera/internal/clock"
	"kymera/internal/config"
	"kymera/internal/dashboard"
	"kymera/internal/glow"
	"kymera/ui/tui/components"
	"kymera/ui/tui/state"
	"kymera/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	ui    config.UIConfig
	log   *zap.Logger
	clock clock.Clock
	state state.AppState

	tabs *dashboard.Selector
	glow *glow.Oscillator

	// Tab indicator physics, stepped on every glow tick
	spring       harmonica.Spring
	indicatorPos float64
	velocity     float64

	trace    *components.GlowTrace
	zones    *zone.Manager
	help     help.Model
	keys     keyMap
	quitting bool
	tornDown bool
	width    int
	height   int
}

// Options are the collaborators of a MainModel. Zero values fall back to the
// wall clock, a no-op logger and the default UI settings.
type Options struct {
	Clock  clock.Clock
	Logger *zap.Logger
	UI     *config.UIConfig
}

func InitialModel(opts Options) *MainModel {
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ui := config.DefaultConfig().UI
	if opts.UI != nil {
		ui = *opts.UI
	}

	// The spring advances once per glow tick, so its time step is the tick period.
	spring := harmonica.NewSpring(harmonica.FPS(int(time.Second/glow.Interval)), 9.0, 0.85)

	var zones *zone.Manager
	if ui.Mouse {
		zones = zone.New()
	}

	return &MainModel{
		ui:     ui,
		log:    log,
		clock:  clk,
		state:  state.New(),
		tabs:   dashboard.NewSelector(),
		glow:   glow.New(clk),
		spring: spring,
		trace:  components.NewGlowTrace(30, 3),
		zones:  zones,
		help:   help.New(),
		keys:   keys,
	}
}

func (m *MainModel) Init() tea.Cmd {
	m.log.Info("dashboard started", zap.Int("oscillator", m.glow.ID()))
	return m.glow.Start()
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case glow.TickMsg:
		return m.handleGlowTick(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Teardown()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Overview):
		m.selectTab(dashboard.TabOverview)
	case key.Matches(msg, m.keys.Metrics):
		m.selectTab(dashboard.TabMetrics)
	case key.Matches(msg, m.keys.Systems):
		m.selectTab(dashboard.TabSystems)
	case key.Matches(msg, m.keys.Next):
		m.tabs.Next()
		m.syncTab()
	case key.Matches(msg, m.keys.Prev):
		m.tabs.Prev()
		m.syncTab()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *MainModel) selectTab(t dashboard.Tab) {
	if m.tabs.Select(t) {
		m.syncTab()
	}
}

func (m *MainModel) syncTab() {
	if m.state.ActiveTab == m.tabs.Current() {
		return
	}
	m.state.ActiveTab = m.tabs.Current()
	m.log.Debug("tab selected", zap.String("tab", m.state.ActiveTab.String()))
	if !m.ui.Animations {
		m.indicatorPos = float64(m.tabs.Index())
		m.velocity = 0
	}
}

func (m *MainModel) handleGlowTick(msg glow.TickMsg) (tea.Model, tea.Cmd) {
	cmd := m.glow.Update(msg)
	if cmd == nil {
		// Stale or post-teardown tick.
		return m, nil
	}

	m.state.Glow = m.glow.Intensity()
	m.state.Pulse = m.glow.Normalized()
	m.trace.Push(m.state.Glow)

	target := float64(m.tabs.Index())
	if m.ui.Animations {
		m.indicatorPos, m.velocity = m.spring.Update(m.indicatorPos, m.velocity, target)
	} else {
		m.indicatorPos = target
	}
	return m, cmd
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	traceW := msg.Width/4 - 2
	if traceW > 10 {
		m.trace.Resize(traceW, 3)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for _, t := range dashboard.Tabs() {
		if m.zones.Get(views.TabZoneID(t)).InBounds(msg) {
			m.selectTab(t)
			return m, nil
		}
	}
	return m, nil
}

// Teardown stops the glow timer and releases the zone manager. Only the
// first call has any effect.
func (m *MainModel) Teardown() {
	if m.tornDown {
		return
	}
	m.tornDown = true
	m.glow.Stop()
	if m.zones != nil {
		m.zones.Close()
	}
	m.log.Info("dashboard stopped",
		zap.Int("glow_updates", m.glow.Updates()),
		zap.String("tab", m.tabs.Current().String()),
	)
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}

	props := views.ViewProps{
		Width:        m.width,
		Height:       m.height,
		Now:          m.clock.Now(),
		IndicatorPos: m.indicatorPos,
		TraceView:    m.trace.View(),
		HelpView:     m.help.View(m.keys),
		Zones:        m.zones,
	}
	return views.RenderDashboard(m.state, props)
}

// Start runs the dashboard until the user quits. The glow timer is released
// on every return path.
func Start(ui config.UIConfig, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	m := InitialModel(Options{UI: &ui, Logger: log})
	defer m.Teardown()

	return run(tea.NewProgram(m, programOptions(ui)...), log)
}

func programOptions(ui config.UIConfig) []tea.ProgramOption {
	opts := []tea.ProgramOption{}
	if ui.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if ui.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// run executes p and records a recovered panic. Bubble Tea restores the
// terminal before Run returns tea.ErrProgramPanic.
func run(p *tea.Program, log *zap.Logger) error {
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramPanic) {
		log.Error("dashboard panic", zap.Error(err))
		return fmt.Errorf("dashboard: %w", err)
	}
	return err
}
