// Package profile renders one student's progress in detail.
package profile

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
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/insight"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/components"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/layout"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

// activityLimit is how many journal entries the profile lists.
const activityLimit = 5

// Screen shows a student's profile. The student is re-read from the
// repository on every render so edits made in child forms show up.
type Screen struct {
	env *screen.Env
	id  int
}

var _ screen.Screen = (*Screen)(nil)

// New creates a profile screen for the student with the given ID.
func New(env *screen.Env, id int) *Screen {
	return &Screen{env: env, id: id}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Student Profile"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "e", Description: "Edit"},
		{Key: "u", Description: "Update chapter"},
		{Key: "a", Description: "Add assessment"},
	}
	if s.env.Insights.Enabled() {
		hints = append(hints, layout.KeyHint{Key: "p", Description: "Study plan"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	st, err := s.env.Repo.Get(s.id)
	if err != nil {
		return s, nil
	}

	switch kmsg.String() {
	case "e":
		return s, router.Push(forms.NewEditProfile(s.env, st))
	case "u":
		return s, router.Push(forms.NewEditChapter(s.env, st))
	case "a":
		return s, router.Push(forms.NewAddAssessment(s.env, st))
	case "p":
		return s, router.Push(insight.NewStudyPlan(s.env, st))
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	st, err := s.env.Repo.Get(s.id)
	if err != nil {
		return lipgloss.NewStyle().Padding(1, 4).Render(theme.ErrorText.Render(err.Error()))
	}

	inner := width - 8
	colWidth := inner
	wide := !layout.IsCompactWidth(width)
	if wide {
		colWidth = inner/2 - 2
	}

	left := strings.Join([]string{
		renderIdentity(st),
		renderOverview(st, colWidth),
		renderChapters(st, colWidth),
	}, "\n\n")
	right := strings.Join([]string{
		renderStrengths(st),
		renderAssessments(st),
		s.renderActivity(),
	}, "\n\n")

	var body string
	if wide {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colWidth+4).Render(left),
			lipgloss.NewStyle().Width(colWidth).Render(right))
	} else {
		body = left + "\n\n" + right
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(body)
}

func renderIdentity(st roster.Student) string {
	lines := []string{
		theme.Title.Render(st.Name),
		theme.Subtitle.Render(st.Email + "  ·  " + st.YearGroup),
	}

	grades := fmt.Sprintf("Current %s  →  Target %s", st.CurrentGrade.Label(), st.TargetGrade.Label())
	status := theme.Good.Render("on track")
	if !analytics.IsOnTrack(st) {
		status = theme.Bad.Render(fmt.Sprintf("%d grades below target", analytics.GradeGap(st)))
	}
	lines = append(lines, theme.Body.Render(grades)+"   "+status)

	var extra []string
	if st.Attendance != nil {
		extra = append(extra, fmt.Sprintf("Attendance %.1f%%", *st.Attendance))
	}
	if st.StudyHours != nil {
		extra = append(extra, fmt.Sprintf("Study hours %.1f", *st.StudyHours))
	}
	if len(extra) > 0 {
		lines = append(lines, theme.Subtitle.Render(strings.Join(extra, "  ·  ")))
	}
	return strings.Join(lines, "\n")
}

func renderOverview(st roster.Student, width int) string {
	b := analytics.MasteryBreakdown(st)
	counts := fmt.Sprintf("%s strong   %s developing   %s needs focus",
		theme.Good.Render(fmt.Sprint(b.Strong)),
		lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render(fmt.Sprint(b.Developing)),
		theme.Bad.Render(fmt.Sprint(b.NeedsFocus)))

	return theme.Section.Render("Performance Overview") + "\n" +
		components.NewPercentBar("Overall", analytics.StudentAverage(st), width).View() + "\n" +
		counts + "\n" +
		theme.Subtitle.Render("Recent assessment average: "+analytics.RecentScore(st).String())
}

func renderChapters(st roster.Student, width int) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Chapters"))
	for _, c := range st.Chapters {
		bar := components.NewProgressBar(c.Name, float64(c.Progress), true, width-16)
		bar.LabelWidth = 11
		b.WriteString("\n" + bar.View() + " " + theme.MasteryBadge(string(c.Mastery)))
	}
	return b.String()
}

func renderStrengths(st roster.Student) string {
	strengths, weaknesses := analytics.StrengthsAndWeaknesses(st)
	list := func(cs []roster.ChapterProgress, style lipgloss.Style) string {
		if len(cs) == 0 {
			return theme.Hint.Render("  none")
		}
		parts := make([]string, len(cs))
		for i, c := range cs {
			parts[i] = style.Render(fmt.Sprintf("  %s %d%%", c.Name, c.Progress))
		}
		return strings.Join(parts, "\n")
	}
	return theme.Section.Render("Strengths") + "\n" + list(strengths, theme.Good) + "\n\n" +
		theme.Section.Render("Needs work") + "\n" + list(weaknesses, theme.Bad)
}

func renderAssessments(st roster.Student) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Recent Assessments"))
	if len(st.Assessments) == 0 {
		b.WriteString("\n" + theme.Hint.Render("  none recorded"))
	}
	for _, a := range st.Assessments {
		b.WriteString("\n" + theme.Body.Render(fmt.Sprintf("  %s  %-10s %-8s %3d%%", a.Date, a.Chapter, a.Type, a.Score)))
		if a.Feedback != "" {
			b.WriteString("\n" + theme.Hint.Render("    "+a.Feedback))
		}
	}
	return b.String()
}

func (s *Screen) renderActivity() string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Recent Activity"))
	if s.env.Journal == nil {
		return b.String()
	}
	events := s.env.Journal.ForStudent(s.id, activityLimit)
	if len(events) == 0 {
		b.WriteString("\n" + theme.Hint.Render("  nothing yet"))
	}
	for _, e := range events {
		b.WriteString("\n" + theme.Subtitle.Render("  "+e.Timestamp.Local().Format("15:04")+"  ") +
			theme.Body.Render(e.Summary))
	}
	return b.String()
}
