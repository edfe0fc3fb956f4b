package insights

import (
	"fmt"
	"strings"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

const planSystemPrompt = `You are an experienced GCSE maths teacher in England. You write short, practical study plans for individual Year 7-11 students based on their chapter progress and recent assessments.`

const reportSystemPrompt = `You are a head of maths reviewing a GCSE class's progress data. You write concise progress reports for colleagues that highlight where whole-class teaching and individual support are needed.`

func buildPlanMessage(s roster.Student) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student: %s (%s)\n", s.Name, s.YearGroup)
	fmt.Fprintf(&b, "Current grade: %s, target grade: %s", s.CurrentGrade.Label(), s.TargetGrade.Label())
	switch gap := analytics.GradeGap(s); {
	case gap > 0:
		fmt.Fprintf(&b, " (%d below target)\n", gap)
	case gap == 0:
		b.WriteString(" (at target)\n")
	default:
		fmt.Fprintf(&b, " (%d above target)\n", -gap)
	}
	fmt.Fprintf(&b, "Overall progress: %s\n", analytics.StudentAverage(s))

	b.WriteString("\nChapters:\n")
	for _, c := range s.Chapters {
		line := fmt.Sprintf("- %s: %d%% (%s)", c.Name, c.Progress, c.Mastery)
		if ch, err := curriculum.ByName(c.Name); err == nil {
			line += fmt.Sprintf(", %d%% of the exam", ch.Weightage)
		}
		b.WriteString(line + "\n")
	}

	strengths, weaknesses := analytics.StrengthsAndWeaknesses(s)
	fmt.Fprintf(&b, "\nStrengths: %s\n", chapterList(strengths))
	fmt.Fprintf(&b, "Weaknesses: %s\n", chapterList(weaknesses))

	b.WriteString("\nRecent assessments:\n")
	if len(s.Assessments) == 0 {
		b.WriteString("None\n")
	}
	for _, a := range s.Assessments {
		fmt.Fprintf(&b, "- %s %s on %s: %d%%", a.Chapter, a.Type, a.Date, a.Score)
		if a.Feedback != "" {
			fmt.Fprintf(&b, " (%s)", a.Feedback)
		}
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
1. Pick the 1-3 chapters that would most improve the student's grade. Prefer weak chapters with a high exam weighting.
2. For each, give a one-sentence reason and 2-3 concrete revision activities.
3. Use chapter names exactly as listed above.
4. Keep the tone encouraging and specific to this student.`)

	return b.String()
}

func buildReportMessage(r roster.Roster) string {
	o := analytics.Overview(r, curriculum.Names())
	var b strings.Builder

	fmt.Fprintf(&b, "Class size: %d\n", o.Total)
	fmt.Fprintf(&b, "On track for target: %d (%s)\n", o.OnTrack, o.OnTrackShare())
	fmt.Fprintf(&b, "Average progress: %s\n", o.AverageProgress)
	fmt.Fprintf(&b, "Students with a chapter below 50%%: %d\n", o.NeedingSupport)

	b.WriteString("\nGrade distribution:\n")
	for _, gc := range o.Distribution.Counts {
		fmt.Fprintf(&b, "- %s: %d\n", gc.Grade.Label(), gc.Count)
	}

	b.WriteString("\nChapters:\n")
	for _, c := range o.Chapters {
		fmt.Fprintf(&b, "- %s: average %s, class mastery %s\n", c.Name, c.Progress, c.Mastery)
	}

	b.WriteString("\nStudents:\n")
	for _, s := range r {
		_, weaknesses := analytics.StrengthsAndWeaknesses(s)
		fmt.Fprintf(&b, "- %s: %s → %s, overall %s, weak in %s\n",
			s.Name, s.CurrentGrade.Label(), s.TargetGrade.Label(), analytics.StudentAverage(s), chapterList(weaknesses))
	}

	b.WriteString(`
Instructions:
1. Summarise the class's progress in 3-4 sentences.
2. List the chapters needing whole-class attention, most urgent first, using the chapter names above.
3. Add 1-4 short support notes naming students or groups who need help.`)

	return b.String()
}

func chapterList(chapters []roster.ChapterProgress) string {
	if len(chapters) == 0 {
		return "none"
	}
	parts := make([]string, len(chapters))
	for i, c := range chapters {
		parts[i] = fmt.Sprintf("%s (%d%%)", c.Name, c.Progress)
	}
	return strings.Join(parts, ", ")
}
