// Package glow drives the pulsing highlight of the dashboard.
//
// An Oscillator owns one recurring timer. Every Interval it recomputes
//
//	intensity = Base + sin(elapsed_ms / Period) * Amplitude
//
// where elapsed_ms is the time since Start. The timer is released by Stop and
// an oscillator never restarts once stopped.
package glow

import (
	"math"
	"sync/atomic"
	"time"

	"kymera/internal/clock"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	Interval  = 50 * time.Millisecond
	Base      = 0.3
	Amplitude = 0.1
	// Period is the divisor applied to elapsed milliseconds before sin.
	Period = 2000.0
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered on every timer firing.
type TickMsg struct {
	ID   int
	Time time.Time
}

type phase int

const (
	phaseIdle phase = iota
	phaseRunning
	phaseStopped
)

type Oscillator struct {
	id        int
	clk       clock.Clock
	phase     phase
	startedAt time.Time
	intensity float64
	updates   int
}

func New(clk clock.Clock) *Oscillator {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Oscillator{
		id:        nextID(),
		clk:       clk,
		intensity: Base,
	}
}

// IntensityAt evaluates the oscillation formula. Negative durations are
// treated as zero.
func IntensityAt(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	return Base + math.Sin(ms/Period)*Amplitude
}

// Start begins ticking and returns the command for the first tick. It returns
// nil if the oscillator is already running or has been stopped.
func (o *Oscillator) Start() tea.Cmd {
	if o.phase != phaseIdle {
		return nil
	}
	o.phase = phaseRunning
	o.startedAt = o.clk.Now()
	return o.tick()
}

// Stop releases the timer. Safe to call more than once.
func (o *Oscillator) Stop() {
	o.phase = phaseStopped
}

// Update handles this oscillator's ticks. Foreign ticks, and any tick that
// arrives after Stop, are dropped without scheduling another.
func (o *Oscillator) Update(msg tea.Msg) tea.Cmd {
	tm, ok := msg.(TickMsg)
	if !ok || tm.ID != o.id || o.phase != phaseRunning {
		return nil
	}
	o.intensity = IntensityAt(tm.Time.Sub(o.startedAt))
	o.updates++
	return o.tick()
}

func (o *Oscillator) tick() tea.Cmd {
	id := o.id
	return o.clk.Tick(Interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func (o *Oscillator) ID() int { return o.id }

func (o *Oscillator) Intensity() float64 { return o.intensity }

// Updates reports how many times the intensity has been recomputed.
func (o *Oscillator) Updates() int { return o.updates }

func (o *Oscillator) Running() bool { return o.phase == phaseRunning }

func (o *Oscillator) Stopped() bool { return o.phase == phaseStopped }

// Normalized maps the current intensity onto [0, 1] across the full swing.
func (o *Oscillator) Normalized() float64 {
	return (o.intensity - (Base - Amplitude)) / (2 * Amplitude)
}
