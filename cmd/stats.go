package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/analytics"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the class overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := chapterFilter(cmd)
		if err != nil {
			return err
		}
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}

		r := analytics.FilterByChapter(sess.repo.Snapshot(), filter)
		ov := analytics.Overview(r, curriculum.Names())
		out := cmd.OutOrStdout()

		title := "Class overview"
		if filter != nil {
			title += " (" + *filter + ")"
		}
		fmt.Fprintln(out, title)
		fmt.Fprintln(out, strings.Repeat("─", 60))
		fmt.Fprintf(out, "Students:          %d\n", ov.Total)
		fmt.Fprintf(out, "On track:          %d (%s)\n", ov.OnTrack, ov.OnTrackShare())
		fmt.Fprintf(out, "Needing support:   %d\n", ov.NeedingSupport)
		fmt.Fprintf(out, "Average progress:  %s\n", ov.AverageProgress)

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Grade distribution")
		if len(ov.Distribution.Counts) == 0 {
			fmt.Fprintln(out, "  "+analytics.NoData)
		}
		for _, c := range ov.Distribution.Counts {
			fmt.Fprintf(out, "  %-3s %3d  %s\n", c.Grade.Label(), c.Count, ov.Distribution.Share(c.Grade))
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-11s  %8s  %9s  %s\n", "Chapter", "Students", "Progress", "Mastery")
		for _, c := range ov.Chapters {
			fmt.Fprintf(out, "%-11s  %8d  %9s  %s\n", c.Name, c.Students, c.Progress, c.Mastery)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("chapter", "", "Only count students with this chapter")
}
