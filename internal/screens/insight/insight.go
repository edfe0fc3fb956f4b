// Package insight shows AI-generated study plans and class reports.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/insights"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/layout"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

const pollInterval = 250 * time.Millisecond

type pollMsg time.Time

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

type kind int

const (
	kindPlan kind = iota
	kindReport
)

// Screen requests an insight on Init and polls until it arrives.
type Screen struct {
	env     *screen.Env
	kind    kind
	student roster.Student

	loading bool
	cancel  context.CancelFunc
	started time.Time
	waited  time.Duration
	plan    *insights.StudyPlan
	report  *insights.ClassReport
	err     error
}

var (
	_ screen.Screen = (*Screen)(nil)
	_ screen.Closer = (*Screen)(nil)
)

// NewStudyPlan returns a screen generating a plan for s.
func NewStudyPlan(env *screen.Env, s roster.Student) *Screen {
	return &Screen{env: env, kind: kindPlan, student: s}
}

// NewClassReport returns a screen generating a report for the whole class.
func NewClassReport(env *screen.Env) *Screen {
	return &Screen{env: env, kind: kindReport}
}

func (s *Screen) Init() tea.Cmd {
	return s.request()
}

func (s *Screen) request() tea.Cmd {
	s.Close()
	s.plan, s.report, s.err = nil, nil, nil
	if !s.env.Insights.Enabled() {
		s.err = insights.ErrNoProvider
		return nil
	}

	s.loading = true
	s.started = time.Now()
	s.waited = 0
	ctx, cancel := s.env.Insights.RequestContext(context.Background())
	s.cancel = cancel
	switch s.kind {
	case kindPlan:
		s.env.Insights.RequestPlan(ctx, s.student)
	case kindReport:
		s.env.Insights.RequestReport(ctx, s.env.Repo.Snapshot())
	}
	return pollCmd()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if !s.loading {
			return s, nil
		}
		if s.consume() {
			s.loading = false
			s.Close()
			return s, nil
		}
		s.waited = time.Time(msg).Sub(s.started)
		return s, pollCmd()

	case tea.KeyMsg:
		if msg.String() == "r" && !s.loading {
			return s, s.request()
		}
	}
	return s, nil
}

// Close cancels the request in flight, if any.
func (s *Screen) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// consume collects a finished result, if there is one.
func (s *Screen) consume() bool {
	switch s.kind {
	case kindPlan:
		res, ok := s.env.Insights.ConsumePlan()
		if ok {
			s.plan, s.err = res.Plan, res.Err
		}
		return ok
	default:
		res, ok := s.env.Insights.ConsumeReport()
		if ok {
			s.report, s.err = res.Report, res.Err
		}
		return ok
	}
}

func (s *Screen) Title() string {
	if s.kind == kindPlan {
		return "Study Plan"
	}
	return "Class Report"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Regenerate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) View(width, height int) string {
	var body string
	switch {
	case s.loading:
		what := "class report"
		if s.kind == kindPlan {
			what = "study plan for " + s.student.Name
		}
		body = theme.Subtitle.Render(fmt.Sprintf("Generating %s... %ds", what, int(s.waited.Seconds())))
	case s.err != nil:
		body = renderError(s.err)
	case s.plan != nil:
		body = renderPlan(s.student, s.plan, width-8)
	case s.report != nil:
		body = renderReport(s.report, width-8)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(body)
}

func renderError(err error) string {
	switch {
	case errors.Is(err, insights.ErrNoProvider):
		return theme.ErrorText.Render("AI features are unavailable.") + "\n\n" +
			theme.Hint.Render("Set llm.provider and an API key in the config file, or export one of\n"+
				"GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY.")
	case errors.Is(err, context.DeadlineExceeded):
		return theme.ErrorText.Render("The AI provider did not respond in time.") + "\n\n" +
			theme.Hint.Render("Press r to try again, or raise llm.timeout.")
	case errors.Is(err, insights.ErrEmptyRoster):
		return theme.Subtitle.Render("There are no students yet. Add a student first.")
	default:
		return theme.ErrorText.Render("Could not generate insight:") + "\n\n" +
			theme.Body.Render(err.Error()) + "\n\n" +
			theme.Hint.Render("Press r to try again.")
	}
}

func bullets(items []string, width int) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(theme.Body.Width(width).Render("  • " + it))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPlan(st roster.Student, p *insights.StudyPlan, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Study plan: " + st.Name))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Render(p.Summary))
	b.WriteString("\n\n")

	for i, fc := range p.FocusChapters {
		b.WriteString(theme.Section.Render(fmt.Sprintf("%d. %s", i+1, fc.Chapter)))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render(fc.Reason))
		b.WriteString("\n")
		b.WriteString(bullets(fc.Actions, width))
		b.WriteString("\n")
	}
	if p.Encouragement != "" {
		b.WriteString(theme.Good.Width(width).Render(p.Encouragement))
	}
	return b.String()
}

func renderReport(r *insights.ClassReport, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Class progress report"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Render(r.Summary))
	b.WriteString("\n\n")

	if len(r.PriorityChapters) > 0 {
		b.WriteString(theme.Section.Render("Priority chapters"))
		b.WriteString("\n")
		b.WriteString(bullets(r.PriorityChapters, width))
		b.WriteString("\n")
	}
	if len(r.SupportNotes) > 0 {
		b.WriteString(theme.Section.Render("Support notes"))
		b.WriteString("\n")
		b.WriteString(bullets(r.SupportNotes, width))
	}
	return b.String()
}
