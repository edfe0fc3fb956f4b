package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/app"
)

// runApp loads the roster, builds the optional AI service and launches the
// TUI.
func runApp(cmd *cobra.Command) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Repo:    sess.repo,
		Journal: sess.journal,
		Splash:  true,
	}

	svc, err := sess.insights(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Insights = svc
	}

	return app.Run(opts)
}
