package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/llm"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

// MaxFocusChapters caps the chapters kept from a generated plan.
const MaxFocusChapters = 3

// Service generates study plans and class reports.
type Service struct {
	provider llm.Provider
	cfg      Config

	plan   slot[PlanResult]
	report slot[ReportResult]
}

// NewService creates a service. A nil provider makes every call fail with
// ErrNoProvider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// RequestContext derives the context for one background request, bounded by
// Config.Timeout when it is set.
func (s *Service) RequestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s == nil || s.cfg.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, s.cfg.Timeout)
}

type planOutput struct {
	Summary       string `json:"summary"`
	FocusChapters []struct {
		Chapter string   `json:"chapter"`
		Reason  string   `json:"reason"`
		Actions []string `json:"actions"`
	} `json:"focus_chapters"`
	Encouragement string `json:"encouragement"`
}

// PlanForStudent generates a study plan. Focus chapters that are not in the
// curriculum are dropped and at most MaxFocusChapters are kept.
func (s *Service) PlanForStudent(ctx context.Context, st roster.Student) (*StudyPlan, error) {
	if !s.Enabled() {
		return nil, ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, "study-plan")

	req := llm.Prompt(planSystemPrompt, buildPlanMessage(st), StudyPlanSchema, s.cfg.PlanMaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study plan for student %d: %w", st.ID, err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse study plan: %w", err)
	}

	plan := &StudyPlan{
		StudentID:     st.ID,
		Summary:       out.Summary,
		Encouragement: out.Encouragement,
	}
	for _, fc := range out.FocusChapters {
		if !curriculum.Has(fc.Chapter) || len(plan.FocusChapters) == MaxFocusChapters {
			continue
		}
		plan.FocusChapters = append(plan.FocusChapters, FocusItem{
			Chapter: fc.Chapter,
			Reason:  fc.Reason,
			Actions: fc.Actions,
		})
	}
	return plan, nil
}

type reportOutput struct {
	Summary          string   `json:"summary"`
	PriorityChapters []string `json:"priority_chapters"`
	SupportNotes     []string `json:"support_notes"`
}

// ClassReport generates a class progress report. An empty roster returns
// ErrEmptyRoster without calling the provider.
func (s *Service) ClassReport(ctx context.Context, r roster.Roster) (*ClassReport, error) {
	if len(r) == 0 {
		return nil, ErrEmptyRoster
	}
	if !s.Enabled() {
		return nil, ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, "class-report")

	req := llm.Prompt(reportSystemPrompt, buildReportMessage(r), ClassReportSchema, s.cfg.ReportMaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("class report: %w", err)
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse class report: %w", err)
	}

	report := &ClassReport{Summary: out.Summary, SupportNotes: out.SupportNotes}
	seen := make(map[string]bool)
	for _, c := range out.PriorityChapters {
		if curriculum.Has(c) && !seen[c] {
			seen[c] = true
			report.PriorityChapters = append(report.PriorityChapters, c)
		}
	}
	return report, nil
}

// PlanResult is the outcome of a background plan request.
type PlanResult struct {
	Plan *StudyPlan
	Err  error
}

// ReportResult is the outcome of a background report request.
type ReportResult struct {
	Report *ClassReport
	Err    error
}

// RequestPlan starts generating a plan in the background. A new request
// replaces any result not yet consumed.
func (s *Service) RequestPlan(ctx context.Context, st roster.Student) {
	s.plan.start(func() PlanResult {
		p, err := s.PlanForStudent(ctx, st)
		return PlanResult{Plan: p, Err: err}
	})
}

// ConsumePlan returns the finished plan request, if any, and clears it.
func (s *Service) ConsumePlan() (PlanResult, bool) {
	return s.plan.consume()
}

// RequestReport starts generating a class report in the background.
func (s *Service) RequestReport(ctx context.Context, r roster.Roster) {
	s.report.start(func() ReportResult {
		rep, err := s.ClassReport(ctx, r)
		return ReportResult{Report: rep, Err: err}
	})
}

// ConsumeReport returns the finished report request, if any, and clears it.
func (s *Service) ConsumeReport() (ReportResult, bool) {
	return s.report.consume()
}

// slot holds the result of the latest background request. Results of
// superseded requests are discarded.
type slot[R any] struct {
	mu    sync.Mutex
	gen   int
	val   R
	ready bool
}

func (sl *slot[R]) start(fn func() R) {
	sl.mu.Lock()
	sl.gen++
	gen := sl.gen
	var zero R
	sl.val, sl.ready = zero, false
	sl.mu.Unlock()

	go func() {
		v := fn()
		sl.mu.Lock()
		defer sl.mu.Unlock()
		if gen == sl.gen {
			sl.val, sl.ready = v, true
		}
	}()
}

func (sl *slot[R]) consume() (R, bool) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	var zero R
	if !sl.ready {
		return zero, false
	}
	v := sl.val
	sl.val, sl.ready = zero, false
	return v, true
}
