// Package chapters shows the curriculum with the class's standing in each
// chapter.
package chapters

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/router"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/students"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/components"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/layout"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

// Screen is the chapter tree. Enter toggles the selected chapter as the
// student list filter.
type Screen struct {
	env    *screen.Env
	cursor int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the chapter screen with the filtered chapter, if any,
// selected.
func New(env *screen.Env) *Screen {
	s := &Screen{env: env}
	if c := env.Filter.Chapter(); c != nil {
		for i, name := range curriculum.Names() {
			if name == *c {
				s.cursor = i
			}
		}
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Chapters"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle filter"},
		{Key: "s", Description: "Students"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < curriculum.Len()-1 {
			s.cursor++
		}
	case "enter", "space":
		s.env.Filter.Toggle(curriculum.All()[s.cursor].Name)
	case "s":
		return s, router.Push(students.New(s.env))
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	r := s.env.Repo.Snapshot()
	filter := s.env.Filter.Chapter()
	chapters := curriculum.All()
	inner := width - 8

	var b strings.Builder
	b.WriteString(theme.Title.Render("Mathematics"))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d chapters, %d students", len(chapters), len(r))))
	b.WriteString("\n\n")

	for i, ch := range chapters {
		branch := "├─"
		if i == len(chapters)-1 {
			branch = "└─"
		}
		marker := " "
		if filter != nil && *filter == ch.Name {
			marker = theme.Good.Render("●")
		}

		name := fmt.Sprintf("%s %s %-11s", branch, marker, ch.Name)
		if i == s.cursor {
			name = theme.Selected.Render(name)
		} else {
			name = theme.Unselected.Render(name)
		}

		bar := components.NewPercentBar("", analytics.ChapterProgress(r, ch.Name), inner-52)
		mastery := analytics.ChapterMasteryLevel(r, ch.Name)
		meta := theme.Subtitle.Render(fmt.Sprintf(" %2d%% of exam ", ch.Weightage))

		b.WriteString(name + " " + bar.View() + meta + theme.MasteryBadge(string(mastery)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderDetail(chapters[s.cursor], inner))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func renderDetail(ch curriculum.Chapter, width int) string {
	facts := fmt.Sprintf("%s tier  ·  %d exam questions  ·  about %d hours",
		ch.Difficulty, ch.ExamQuestions, ch.EstimatedHours)

	subtopics := make([]string, len(ch.Subtopics))
	for i, st := range ch.Subtopics {
		subtopics[i] = "  • " + st
	}

	return theme.Card.Width(width).Render(
		theme.Section.Render(ch.Name) + "\n" +
			theme.Body.Render(ch.Description) + "\n" +
			theme.Subtitle.Render(facts) + "\n\n" +
			theme.Body.Render(strings.Join(subtopics, "\n")),
	)
}
