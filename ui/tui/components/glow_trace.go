package components

import (
	"kymera/internal/glow"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
)

const traceSamples = 40

// GlowTrace plots the most recent glow intensities as a braille line.
type GlowTrace struct {
	Chart   linechart.Model
	History []float64
	Width   int
	Height  int
}

func NewGlowTrace(width, height int) *GlowTrace {
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, traceSamples-1, glow.Base-glow.Amplitude, glow.Base+glow.Amplitude)
	return &GlowTrace{
		Chart:   lc,
		History: make([]float64, 0, traceSamples),
		Width:   width,
		Height:  height,
	}
}

func (c *GlowTrace) Push(value float64) {
	c.History = append(c.History, value)
	if len(c.History) > traceSamples {
		c.History = c.History[1:]
	}
}

func (c *GlowTrace) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *GlowTrace) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.History)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.History[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.History[i+1]},
		)
	}
	return c.Chart.View()
}
