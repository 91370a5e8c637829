package styles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	BackgroundHex = "#0A0E1A"
	CardHex       = "#121826"
	RowHex        = "#1A2332"
	GlowHex       = "#00D9FF" // rgba(0, 217, 255, a) in the brand sheet
	EmeraldHex    = "#34D399"
	EmeraldDimHex = "#065F46"
)

var (
	Background = lipgloss.Color(BackgroundHex)
	Card       = lipgloss.Color(CardHex)
	Row        = lipgloss.Color(RowHex)
	Cyan       = lipgloss.Color("#22D3EE")
	CyanTitle  = lipgloss.Color("#67E8F9")
	Emerald    = lipgloss.Color(EmeraldHex)
	Yellow     = lipgloss.Color("#FACC15")
	Red        = lipgloss.Color("#F87171")
	White      = lipgloss.Color("#FFFFFF")
	Gray300    = lipgloss.Color("#D1D5DB")
	Gray400    = lipgloss.Color("#9CA3AF")
	Gray500    = lipgloss.Color("#6B7280")
	Subtle     = lipgloss.Color("#164E63")

	// Performance bar gradients: emerald-500 -> cyan-400, cyan-500 -> blue-400.
	WinRateGradient = [2]string{"#10B981", "#22D3EE"}
	SharpeGradient  = [2]string{"#06B6D4", "#60A5FA"}

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Gray400).
			MarginLeft(2)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(CyanTitle).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().Foreground(Gray400)

	ValueStyle = lipgloss.NewStyle().Bold(true).Foreground(White)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Emerald)

	FooterStyle = lipgloss.NewStyle().Foreground(Gray500)

	cardColor    = mustHex(CardHex)
	glowColor    = mustHex(GlowHex)
	emerald      = mustHex(EmeraldHex)
	emeraldDim   = mustHex(EmeraldDimHex)
	peakGlowBase = 0.4
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// GlowStrength scales a glow intensity so that the oscillator's peak maps
// to a fully lit border.
func GlowStrength(intensity float64) float64 {
	return clamp01(intensity / peakGlowBase)
}

// GlowColor is the card background lit by the cyan glow at the given
// intensity.
func GlowColor(intensity float64) lipgloss.Color {
	return lipgloss.Color(cardColor.BlendLab(glowColor, GlowStrength(intensity)).Clamped().Hex())
}

// GlowFill is a faint tint of the glow used behind the active tab.
func GlowFill(intensity float64) lipgloss.Color {
	return lipgloss.Color(cardColor.BlendLab(glowColor, 0.2*GlowStrength(intensity)).Clamped().Hex())
}

// PulseColor fades the status dots between dim and bright emerald; pulse is
// in [0, 1].
func PulseColor(pulse float64) lipgloss.Color {
	return lipgloss.Color(emeraldDim.BlendLab(emerald, clamp01(pulse)).Clamped().Hex())
}

func PanelStyle(intensity float64, emphasized bool) lipgloss.Style {
	border := lipgloss.RoundedBorder()
	if emphasized {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(GlowColor(intensity)).
		Padding(1, 2)
}
