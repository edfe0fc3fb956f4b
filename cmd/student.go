package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Inspect students",
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students (optionally only those with a chapter)",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := chapterFilter(cmd)
		if err != nil {
			return err
		}
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		list := analytics.FilterByChapter(sess.repo.Snapshot(), filter)
		if len(list) == 0 {
			fmt.Fprintln(out, "No students found.")
			return nil
		}

		fmt.Fprintf(out, "%-4s  %-24s  %-8s  %8s  %-7s  %-6s  %s\n",
			"ID", "Name", "Year", "Average", "Current", "Target", "On track")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, s := range list {
			onTrack := "✓"
			if !analytics.IsOnTrack(s) {
				onTrack = "✗"
			}
			fmt.Fprintf(out, "%-4d  %-24s  %-8s  %8s  %-7s  %-6s  %s\n",
				s.ID, s.Name, s.YearGroup, analytics.StudentAverage(s),
				s.CurrentGrade.Label(), s.TargetGrade.Label(), onTrack)
		}
		return nil
	},
}

var studentShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a student's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		s, err := sess.repo.Get(id)
		if err != nil {
			return err
		}
		printStudent(cmd, s)
		return nil
	},
}

func init() {
	studentListCmd.Flags().String("chapter", "", "Only list students with this chapter")
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentShowCmd)
}

func printStudent(cmd *cobra.Command, s roster.Student) {
	out := cmd.OutOrStdout()
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(out, "%s (#%d)\n", s.Name, s.ID)
	fmt.Fprintf(out, "Email:     %s\n", s.Email)
	fmt.Fprintf(out, "Year:      %s\n", s.YearGroup)
	fmt.Fprintf(out, "Grades:    %s → %s", s.CurrentGrade.Label(), s.TargetGrade.Label())
	if analytics.IsOnTrack(s) {
		fmt.Fprintln(out, " (on track)")
	} else {
		fmt.Fprintf(out, " (%d below target)\n", analytics.GradeGap(s))
	}
	if s.Attendance != nil {
		fmt.Fprintf(out, "Attendance: %.1f%%\n", *s.Attendance)
	}
	if s.StudyHours != nil {
		fmt.Fprintf(out, "Study hours: %.1f\n", *s.StudyHours)
	}

	b := analytics.MasteryBreakdown(s)
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "Average progress: %s  (%d strong, %d developing, %d needs focus)\n",
		analytics.StudentAverage(s), b.Strong, b.Developing, b.NeedsFocus)
	for _, c := range s.Chapters {
		fmt.Fprintf(out, "  %-11s %3d%%  %s\n", c.Name, c.Progress, c.Mastery)
	}

	strengths, weaknesses := analytics.StrengthsAndWeaknesses(s)
	fmt.Fprintf(out, "Strengths:  %s\n", chapterList(strengths))
	fmt.Fprintf(out, "Weaknesses: %s\n", chapterList(weaknesses))

	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, "Recent assessments")
	if len(s.Assessments) == 0 {
		fmt.Fprintln(out, "  none")
	}
	for _, a := range s.Assessments {
		fmt.Fprintf(out, "  %s  %-11s %-8s %3d%%", a.Date, a.Chapter, a.Type, a.Score)
		if a.Feedback != "" {
			fmt.Fprintf(out, "  %s", a.Feedback)
		}
		fmt.Fprintln(out)
	}
}

func chapterList(cs []roster.ChapterProgress) string {
	if len(cs) == 0 {
		return "none"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%s (%d%%)", c.Name, c.Progress)
	}
	return strings.Join(parts, ", ")
}
