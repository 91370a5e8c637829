package components

import (
	"testing"

	"kymera/internal/glow"
)

func TestGlowTrace_PushKeepsWindow(t *testing.T) {
	tr := NewGlowTrace(20, 3)
	for i := 0; i < traceSamples+15; i++ {
		tr.Push(glow.Base)
	}
	if len(tr.History) != traceSamples {
		t.Errorf("Expected %d samples, got %d", traceSamples, len(tr.History))
	}
}

func TestGlowTrace_ViewDoesNotPanic(t *testing.T) {
	tr := NewGlowTrace(20, 3)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("View panicked: %v", r)
		}
	}()

	_ = tr.View()
	tr.Push(0.25)
	tr.Push(0.35)
	tr.Resize(30, 4)
	if tr.View() == "" {
		t.Error("Expected a rendered chart")
	}
}

var _ Component = (*GlowTrace)(nil)
