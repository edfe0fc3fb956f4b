package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
)

// Palette. Status colours follow the dashboard's traffic-light bands.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(16)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Badge = lipgloss.NewStyle().
		Foreground(BgCard).
		Bold(true).
		Padding(0, 1)
)

// ProgressColor picks the bar colour for a percentage's band.
func ProgressColor(p analytics.Percent) color.Color {
	switch analytics.Band(p) {
	case analytics.BandGood:
		return Success
	case analytics.BandFair:
		return Warning
	case analytics.BandLow:
		return Error
	default:
		return TextDim
	}
}

// MasteryColor maps a mastery label to its badge colour.
func MasteryColor(level string) color.Color {
	switch level {
	case "Mastered":
		return Success
	case "Advanced":
		return Secondary
	case "Intermediate":
		return Warning
	default:
		return Error
	}
}

// MasteryBadge renders a coloured mastery label.
func MasteryBadge(level string) string {
	return Badge.Background(MasteryColor(level)).Render(level)
}
