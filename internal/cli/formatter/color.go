package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Guffawaffle/majel/internal/domain"
)

// LCARS-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#7fb347")
	ColorYellow = lipgloss.Color("#f5c542")
	ColorRed    = lipgloss.Color("#e4572e")
	ColorBlue   = lipgloss.Color("#6f9fd8")
	ColorPurple = lipgloss.Color("#b689c4")
	ColorDim    = lipgloss.Color("#8a8680")
	ColorFg     = lipgloss.Color("#ece5d8")
	ColorHeader = lipgloss.Color("#f0975a")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// VerdictStyle returns the style for a validation verdict.
func VerdictStyle(v domain.Verdict) lipgloss.Style {
	switch v {
	case domain.VerdictPass:
		return StyleGreen
	case domain.VerdictRepaired:
		return StyleYellow
	case domain.VerdictFail:
		return StyleRed
	default:
		return StyleDim
	}
}

// VerdictIndicator returns a colored verdict marker such as "● PASS".
func VerdictIndicator(v domain.Verdict) string {
	switch v {
	case domain.VerdictPass:
		return StyleGreen.Render("● PASS")
	case domain.VerdictRepaired:
		return StyleYellow.Render("● REPAIRED")
	case domain.VerdictFail:
		return StyleRed.Render("● FAIL")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}
