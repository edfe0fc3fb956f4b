package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Browse the curriculum",
}

var chapterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the curriculum chapters",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		verbose, _ := cmd.Flags().GetBool("subtopics")

		fmt.Fprintf(out, "%-3s  %-11s  %-10s  %6s  %8s  %5s  %s\n",
			"ID", "Chapter", "Tier", "Weight", "Exam Qs", "Hours", "Description")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, ch := range curriculum.All() {
			fmt.Fprintf(out, "%-3d  %-11s  %-10s  %5d%%  %8d  %5d  %s\n",
				ch.ID, ch.Name, ch.Difficulty, ch.Weightage, ch.ExamQuestions, ch.EstimatedHours, ch.Description)
			if verbose {
				for _, st := range ch.Subtopics {
					fmt.Fprintf(out, "       - %s\n", st)
				}
			}
		}
	},
}

func init() {
	chapterListCmd.Flags().Bool("subtopics", false, "Show each chapter's subtopics")
	chapterCmd.AddCommand(chapterListCmd)
}
