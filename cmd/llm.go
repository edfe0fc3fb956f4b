package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/config"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which LLM provider AI features will use",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		out := cmd.OutOrStdout()
		if cfg.LLM.Provider == "" {
			fmt.Fprintln(out, "No LLM provider configured; AI features are disabled.")
			fmt.Fprintln(out, "Set llm.provider in the config file or export an API key such as ANTHROPIC_API_KEY.")
			return nil
		}

		fmt.Fprintf(out, "Provider:  %s\n", cfg.LLM.Provider)
		fmt.Fprintf(out, "Model:     %s\n", modelFor(cfg.LLM))
		fmt.Fprintf(out, "API key:   %s\n", maskKey(cfg.LLM.APIKey()))
		fmt.Fprintf(out, "Timeout:   %s\n", cfg.LLM.Timeout)
		fmt.Fprintf(out, "Retries:   %d attempts, %s to %s backoff\n",
			cfg.LLM.Retry.MaxAttempts, cfg.LLM.Retry.InitialWait, cfg.LLM.Retry.MaxWait)
		if err := cfg.LLM.Validate(); err != nil {
			fmt.Fprintf(out, "Status:    not usable: %v\n", err)
			return nil
		}
		fmt.Fprintln(out, "Status:    ready")
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
}

func modelFor(cfg llm.Config) string {
	switch cfg.Provider {
	case llm.ProviderAnthropic:
		return cfg.Anthropic.Model
	case llm.ProviderOpenAI:
		return cfg.OpenAI.Model
	case llm.ProviderGemini:
		return cfg.Gemini.Model
	case llm.ProviderOpenRouter:
		return cfg.OpenRouter.Model
	}
	return "mock"
}

// maskKey keeps the last four characters of a key.
func maskKey(k string) string {
	if k == "" {
		return "(not set)"
	}
	if len(k) <= 4 {
		return "****"
	}
	return "****" + k[len(k)-4:]
}
