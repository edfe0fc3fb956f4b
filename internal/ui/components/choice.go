package components

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

// Choice selects one value from a fixed list with left/right.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
	Err      string
}

// NewChoice creates a choice with current preselected when present.
func NewChoice(label string, options []string, current string) Choice {
	return Choice{
		Label:    label,
		Options:  options,
		Selected: max(slices.Index(options, current), 0),
	}
}

// Update cycles through the options.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// Value returns the selected option, or "" for an empty list.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the options on one line with the selection highlighted.
func (c Choice) View() string {
	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		switch {
		case i == c.Selected && c.Focused:
			parts[i] = theme.Selected.Render("[" + opt + "]")
		case i == c.Selected:
			parts[i] = theme.Unselected.Bold(true).Render("[" + opt + "]")
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + opt + " ")
		}
	}

	prefix := "  "
	if c.Focused {
		prefix = theme.Selected.Render("◂ ")
	}
	view := theme.Label.Render(c.Label) + prefix + strings.Join(parts, " ")
	if c.Focused {
		view += theme.Selected.Render(" ▸")
	}
	if c.Err != "" {
		view += "\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			PaddingLeft(16).
			Render("✗ "+c.Err)
	}
	return view
}
