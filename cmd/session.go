package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/config"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/insights"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/llm"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

// session is the state every command starts from: resolved config, the
// activity journal and a loaded roster.
type session struct {
	cfg     *config.Config
	journal *journal.Log
	repo    *roster.Repository
}

// openSession loads configuration and fills the roster. Students from the
// config file take precedence over the sample student.
func openSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	noSeed, _ := cmd.Flags().GetBool("no-seed")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := journal.NewLog()
	repo := roster.NewRepository(log)

	students := cfg.Students
	if len(students) == 0 && cfg.Seed && !noSeed {
		students = roster.DefaultSeed()
	}
	if err := repo.Load(cmd.Context(), students); err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	return &session{cfg: cfg, journal: log, repo: repo}, nil
}

// insights builds the study-plan service, or returns ErrNoProvider when no
// LLM provider is configured.
func (s *session) insights(cmd *cobra.Command) (*insights.Service, error) {
	if !s.cfg.LLMConfigured() {
		if s.cfg.LLM.Provider != "" {
			return nil, s.cfg.LLM.Validate()
		}
		return nil, insights.ErrNoProvider
	}
	provider, err := llm.NewProvider(cmd.Context(), s.cfg.LLM, s.journal)
	if err != nil {
		return nil, err
	}
	icfg := insights.DefaultConfig()
	icfg.Timeout = s.cfg.LLM.Timeout
	return insights.NewService(provider, icfg), nil
}

// chapterFilter reads and checks the --chapter flag.
func chapterFilter(cmd *cobra.Command) (*string, error) {
	name, _ := cmd.Flags().GetString("chapter")
	if name == "" {
		return nil, nil
	}
	if !curriculum.Has(name) {
		return nil, fmt.Errorf("unknown chapter %q (want one of %s)", name, strings.Join(curriculum.Names(), ", "))
	}
	return &name, nil
}
