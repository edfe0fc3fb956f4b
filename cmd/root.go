package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathdash",
	Short: "Maths progress dashboard for a class",
	Long: "mathdash tracks a class's progress through the four-chapter maths curriculum:\n" +
		"grades against targets, chapter progress and mastery, recent assessments,\n" +
		"and optional AI study plans.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (YAML, JSON or TOML); defaults to ./mathdash.yaml")
	rootCmd.PersistentFlags().Bool("no-seed", false, "Start without the sample student")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(chapterCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
