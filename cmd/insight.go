package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/insights"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
)

var insightCmd = &cobra.Command{
	Use:   "insight [<student-id>]",
	Short: "Generate an AI study plan for a student, or a class report with --class",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class, _ := cmd.Flags().GetBool("class")
		showUsage, _ := cmd.Flags().GetBool("usage")
		showTranscript, _ := cmd.Flags().GetBool("transcript")

		if class == (len(args) == 1) {
			return fmt.Errorf("pass a student ID or --class")
		}

		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		svc, err := sess.insights(cmd)
		if err != nil {
			return fmt.Errorf("AI insights unavailable: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), sess.cfg.LLM.Timeout)
		defer cancel()

		out := cmd.OutOrStdout()
		if class {
			report, err := svc.ClassReport(ctx, sess.repo.Snapshot())
			if err != nil {
				return err
			}
			printReport(out, report)
		} else {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid ID %q: %w", args[0], err)
			}
			st, err := sess.repo.Get(id)
			if err != nil {
				return err
			}
			plan, err := svc.PlanForStudent(ctx, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Study plan for %s\n\n", st.Name)
			printPlan(out, plan)
		}

		if showUsage {
			fmt.Fprintln(out)
			printUsage(out, sess.journal.LLMUsageByPurpose())
		}
		if showTranscript {
			fmt.Fprintln(out)
			printTranscripts(out, sess.journal.Query(journal.QueryOpts{Kind: journal.KindLLMRequest}))
		}
		return nil
	},
}

func init() {
	insightCmd.Flags().Bool("class", false, "Generate a class progress report instead of a study plan")
	insightCmd.Flags().Bool("usage", false, "Print token usage and estimated cost")
	insightCmd.Flags().Bool("transcript", false, "Print the raw LLM request and response")
}

func printPlan(out io.Writer, p *insights.StudyPlan) {
	fmt.Fprintln(out, p.Summary)
	for i, fc := range p.FocusChapters {
		fmt.Fprintf(out, "\n%d. %s: %s\n", i+1, fc.Chapter, fc.Reason)
		for _, a := range fc.Actions {
			fmt.Fprintf(out, "   - %s\n", a)
		}
	}
	if p.Encouragement != "" {
		fmt.Fprintf(out, "\n%s\n", p.Encouragement)
	}
}

func printReport(out io.Writer, r *insights.ClassReport) {
	fmt.Fprintln(out, "Class progress report")
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Summary)
	if len(r.PriorityChapters) > 0 {
		fmt.Fprintf(out, "\nPriority chapters: %s\n", strings.Join(r.PriorityChapters, ", "))
	}
	for _, n := range r.SupportNotes {
		fmt.Fprintf(out, "  - %s\n", n)
	}
}

func printUsage(out io.Writer, usage []journal.PurposeUsage) {
	fmt.Fprintf(out, "%-14s  %5s  %6s  %8s  %8s  %8s  %9s\n",
		"Purpose", "Calls", "Failed", "In", "Out", "Avg ms", "Cost $")
	fmt.Fprintln(out, strings.Repeat("─", 75))
	for _, u := range usage {
		fmt.Fprintf(out, "%-14s  %5d  %6d  %8d  %8d  %8d  %9.5f\n",
			u.Purpose, u.Calls, u.Failures, u.InputTokens, u.OutputTokens, u.AvgLatencyMs, u.CostUSD)
	}
}

func printTranscripts(out io.Writer, events []journal.Event) {
	sep := strings.Repeat("─", 60)
	for _, e := range events {
		if e.LLM == nil {
			continue
		}
		d := e.LLM
		fmt.Fprintf(out, "%s  %s/%s  %s  %dms  success=%v\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"), d.Provider, d.Model, d.Purpose, d.LatencyMs, d.Success)
		if d.ErrorMessage != "" {
			fmt.Fprintf(out, "Error: %s\n", d.ErrorMessage)
		}
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, "REQUEST")
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, d.RequestBody)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, "RESPONSE")
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, d.ResponseBody)
	}
}
