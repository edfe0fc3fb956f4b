// Package overview is the dashboard home screen.
package overview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/router"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/chapters"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/forms"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/insight"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/students"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/components"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/layout"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

// Screen is the class overview. Analytics are recomputed from a fresh
// snapshot on every render.
type Screen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)

// New creates the overview screen.
func New(env *screen.Env) *Screen {
	items := []components.MenuItem{
		{Label: "Students", Action: func() tea.Cmd {
			return router.Push(students.New(env))
		}},
		{Label: "Chapters", Action: func() tea.Cmd {
			return router.Push(chapters.New(env))
		}},
		{Label: "Add Student", Action: func() tea.Cmd {
			return router.Push(forms.NewAddStudent(env))
		}},
		{Label: "Class Report (AI)", Disabled: !env.Insights.Enabled(), Action: func() tea.Cmd {
			return router.Push(insight.NewClassReport(env))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &Screen{env: env, menu: components.NewMenu(items)}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Class Overview"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	r := analytics.FilterByChapter(s.env.Repo.Snapshot(), s.env.Filter.Chapter())
	ov := analytics.Overview(r, curriculum.Names())

	inner := width - 8
	compact := layout.IsCompactWidth(width)
	colWidth := inner
	if !compact {
		colWidth = inner/2 - 2
	}

	summary := theme.Card.Width(colWidth).Render(renderSummary(ov, s.env.Filter.Chapter()))
	grades := theme.Card.Width(colWidth).Render(renderGrades(ov.Distribution))
	chapterCard := theme.Card.Width(colWidth).Render(renderChapters(ov.Chapters, colWidth-4))
	menu := theme.Card.Width(colWidth).Render(theme.Section.Render("Menu") + "\n" + s.menu.View())

	var body string
	if compact {
		body = lipgloss.JoinVertical(lipgloss.Left, summary, chapterCard, grades, menu)
	} else {
		left := lipgloss.JoinVertical(lipgloss.Left, summary, grades)
		right := lipgloss.JoinVertical(lipgloss.Left, chapterCard, menu)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(body)
}

func stat(label, value string) string {
	return theme.Label.Render(label) + theme.Body.Bold(true).Render(value)
}

func renderSummary(ov analytics.ClassOverview, filter *string) string {
	title := "Class Overview"
	if filter != nil {
		title += " · " + *filter
	}
	lines := []string{
		theme.Section.Render(title),
		stat("Students", fmt.Sprint(ov.Total)),
		stat("On track", fmt.Sprintf("%d (%s)", ov.OnTrack, ov.OnTrackShare())),
		stat("Need support", fmt.Sprint(ov.NeedingSupport)),
		stat("Avg progress", ov.AverageProgress.String()),
	}
	return strings.Join(lines, "\n")
}

func renderGrades(d analytics.Distribution) string {
	lines := []string{theme.Section.Render("Grade Distribution")}
	if len(d.Counts) == 0 {
		lines = append(lines, theme.Hint.Render(analytics.NoData))
	}
	for _, c := range d.Counts {
		lines = append(lines, fmt.Sprintf("%s %s",
			theme.Label.Width(6).Render(c.Grade.Label()),
			theme.Body.Render(fmt.Sprintf("%d student(s)  %s", c.Count, d.Share(c.Grade)))))
	}
	return strings.Join(lines, "\n")
}

func renderChapters(cs []analytics.ChapterSummary, width int) string {
	lines := []string{theme.Section.Render("Chapter Performance")}
	for _, c := range cs {
		bar := components.NewPercentBar(c.Name, c.Progress, width)
		bar.LabelWidth = 11
		lines = append(lines, bar.View(), "  "+theme.MasteryBadge(string(c.Mastery)))
	}
	return strings.Join(lines, "\n")
}

// HeaderStats summarizes the class for the app header.
func HeaderStats(env *screen.Env) layout.HeaderStats {
	r := env.Repo.Snapshot()
	hs := layout.HeaderStats{
		Students: len(r),
		OnTrack:  analytics.StudentsOnTrack(r),
	}
	if ch := env.Filter.Chapter(); ch != nil {
		hs.Filter = *ch
	}
	return hs
}
