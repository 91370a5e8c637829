package dashboard

import (
	"errors"
	"fmt"
	"strings"
)

type Tab string

const (
	TabOverview Tab = "overview"
	TabMetrics  Tab = "metrics"
	TabSystems  Tab = "systems"
)

var ErrUnknownTab = errors.New("unknown tab")

var tabOrder = []Tab{TabOverview, TabMetrics, TabSystems}

// Tabs returns the fixed, ordered set of selectable tabs.
func Tabs() []Tab {
	out := make([]Tab, len(tabOrder))
	copy(out, tabOrder)
	return out
}

func (t Tab) Valid() bool {
	return t.Index() >= 0
}

// Index is the position of t in Tabs(), or -1.
func (t Tab) Index() int {
	for i, v := range tabOrder {
		if v == t {
			return i
		}
	}
	return -1
}

func (t Tab) String() string { return string(t) }

// Label is the upper-case caption shown on the tab button.
func (t Tab) Label() string { return strings.ToUpper(string(t)) }

// ParseTab accepts a tab name in any case.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}

// Selector holds the active tab. The zero value starts on TabOverview.
type Selector struct {
	current Tab
}

func NewSelector() *Selector {
	return &Selector{current: TabOverview}
}

func (s *Selector) Current() Tab {
	if s.current == "" {
		return TabOverview
	}
	return s.current
}

// Select makes t the active tab and reports whether the value changed.
// Reselecting the active tab is a no-op; tabs outside the set are ignored.
func (s *Selector) Select(t Tab) bool {
	if !t.Valid() || t == s.Current() {
		return false
	}
	s.current = t
	return true
}

// Next selects the following tab, wrapping around.
func (s *Selector) Next() Tab {
	i := (s.Current().Index() + 1) % len(tabOrder)
	s.Select(tabOrder[i])
	return s.Current()
}

// Prev selects the preceding tab, wrapping around.
func (s *Selector) Prev() Tab {
	i := (s.Current().Index() + len(tabOrder) - 1) % len(tabOrder)
	s.Select(tabOrder[i])
	return s.Current()
}

func (s *Selector) Index() int { return s.Current().Index() }
