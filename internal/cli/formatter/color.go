package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

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

// ActivityStyle colors the three study activities consistently.
func ActivityStyle(a domain.Activity) lipgloss.Style {
	switch a {
	case domain.ActivityReading:
		return StyleBlue
	case domain.ActivityPractice:
		return StyleGreen
	case domain.ActivityRevision:
		return StylePurple
	default:
		return StyleFg
	}
}

// DifficultyBadge renders a difficulty tag such as "● EASY". An unconfident
// prediction is marked with a trailing "?".
func DifficultyBadge(d domain.Difficulty, confident bool) string {
	label := "● " + strings.ToUpper(string(d))
	if !confident {
		label += "?"
	}
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render(label)
	case domain.DifficultyMedium:
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// ScoreStyle colors a score in [0,1]: red below 0.5, yellow below 0.7.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score < 0.5:
		return StyleRed
	case score < 0.7:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
