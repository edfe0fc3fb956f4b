// Package students lists the roster, optionally filtered by chapter.
package students

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/router"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/forms"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/profile"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/layout"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

// Screen is the student list.
type Screen struct {
	env    *screen.Env
	cursor int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the student list screen.
func New(env *screen.Env) *Screen {
	return &Screen{env: env}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Students"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Profile"},
		{Key: "e", Description: "Progress"},
		{Key: "a", Description: "Assessment"},
		{Key: "n", Description: "New"},
		{Key: "c", Description: "Clear filter"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible is the filtered roster shown by the list.
func (s *Screen) visible() roster.Roster {
	return analytics.FilterByChapter(s.env.Repo.Snapshot(), s.env.Filter.Chapter())
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	list := s.visible()
	s.cursor = min(s.cursor, max(len(list)-1, 0))

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "j":
		if s.cursor < len(list)-1 {
			s.cursor++
		}
		return s, nil
	case "n":
		return s, router.Push(forms.NewAddStudent(s.env))
	case "c":
		s.env.Filter.Clear()
		s.cursor = 0
		return s, nil
	}

	if len(list) == 0 {
		return s, nil
	}
	st := list[s.cursor]
	switch kmsg.String() {
	case "enter":
		return s, router.Push(profile.New(s.env, st.ID))
	case "e":
		return s, router.Push(forms.NewEditChapter(s.env, st))
	case "a":
		return s, router.Push(forms.NewAddAssessment(s.env, st))
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	list := s.visible()
	cursor := min(s.cursor, max(len(list)-1, 0))

	var b strings.Builder
	heading := fmt.Sprintf("%d students", len(list))
	if c := s.env.Filter.Chapter(); c != nil {
		heading += "  ·  chapter: " + *c
	}
	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	if len(list) == 0 {
		b.WriteString(theme.Subtitle.Render("No students match. Press n to add one."))
		return pad(b.String(), width, height)
	}

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %-22s %-8s %7s  %-7s %-6s  %s",
		"Name", "Year", "Average", "Current", "Target", "Status")))
	b.WriteString("\n")

	for i, st := range list {
		status := theme.Good.Render("on track")
		switch {
		case analytics.NeedsSupport(st):
			status = theme.Bad.Render("needs support")
		case !analytics.IsOnTrack(st):
			status = lipgloss.NewStyle().Foreground(theme.Warning).Render("behind target")
		}

		row := fmt.Sprintf("%-22s %-8s %7s  %-7s %-6s  ",
			truncate(st.Name, 22),
			strings.TrimPrefix(st.YearGroup, "Year "),
			analytics.StudentAverage(st).String(),
			st.CurrentGrade.Label(),
			st.TargetGrade.Label())

		if i == cursor {
			b.WriteString(theme.Selected.Render("▸ "+row) + status)
		} else {
			b.WriteString(theme.Unselected.Render("  "+row) + status)
		}
		b.WriteString("\n")
	}

	return pad(b.String(), width, height)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func pad(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(content)
}
