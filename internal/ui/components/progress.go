package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a 0–100 value.
type ProgressBar struct {
	Label string
	// LabelWidth pads the label so bars in a list line up.
	LabelWidth  int
	Value       float64
	NoData      bool
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, value float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Value:       value,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar. A bar with NoData renders an empty track
// followed by "No data".
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(p.LabelWidth).
			Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 10
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)

	value := min(max(p.Value, 0), 100)
	if p.NoData {
		value = 0
	}
	filled := min(int(float64(barWidth)*value/100), barWidth)
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.ProgressColor(analytics.Percent{Value: value, Valid: !p.NoData})).
		Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		text := fmt.Sprintf("  %.1f%%", value)
		if p.NoData {
			text = "  No data"
		}
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
	}

	return result
}

// NewPercentBar draws an analytics percentage, showing "No data" when the
// value is undefined.
func NewPercentBar(label string, p analytics.Percent, width int) ProgressBar {
	bar := NewProgressBar(label, p.Rounded(), true, width)
	bar.NoData = !p.Valid
	return bar
}
