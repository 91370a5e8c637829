package clock

import (
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock is the time source for everything that ticks inside the TUI.
// Tick has the same contract as tea.Tick: the returned command produces
// exactly one message, fn(t), once d has elapsed.
type Clock interface {
	Now() time.Time
	Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

// Real is the wall clock, backed by the Bubble Tea runtime.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, fn)
}

type fakeTimer struct {
	at  time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

// Fake is a simulated clock. Timers are registered when Tick is called and
// only fire from Advance, in due-time order.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []fakeTimer
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Tick registers the timer immediately. The returned command is a no-op so
// callers can batch it like a real tick without blocking.
func (f *Fake) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	f.mu.Lock()
	f.seq++
	f.timers = append(f.timers, fakeTimer{at: f.now.Add(d), seq: f.seq, fn: fn})
	f.mu.Unlock()
	return func() tea.Msg { return nil }
}

// Pending returns the number of timers that have not fired yet.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// Advance moves the clock forward by d. Every timer due on or before the new
// time fires in order and its message is handed to deliver. Timers scheduled
// by deliver fire within the same call if they fall inside the window.
func (f *Fake) Advance(d time.Duration, deliver func(tea.Msg)) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		t, ok := f.popDue(target)
		if !ok {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.now = t.at
		f.mu.Unlock()

		msg := t.fn(t.at)
		if msg != nil && deliver != nil {
			deliver(msg)
		}
	}
}

// popDue must be called with f.mu held.
func (f *Fake) popDue(target time.Time) (fakeTimer, bool) {
	if len(f.timers) == 0 {
		return fakeTimer{}, false
	}
	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].at.Equal(f.timers[j].at) {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].at.Before(f.timers[j].at)
	})
	next := f.timers[0]
	if next.at.After(target) {
		return fakeTimer{}, false
	}
	f.timers = f.timers[1:]
	return next, true
}
