package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
)

// JournalProvider records every call it forwards in the activity journal.
type JournalProvider struct {
	inner    Provider
	provider string
	rec      journal.Recorder
}

// WithJournal wraps p so each Generate call is appended to rec.
// providerName is stored alongside the model for usage reporting.
func WithJournal(p Provider, providerName string, rec journal.Recorder) Provider {
	if rec == nil {
		rec = journal.Nop{}
	}
	return &JournalProvider{inner: p, provider: providerName, rec: rec}
}

func (j *JournalProvider) ModelID() string { return j.inner.ModelID() }

func (j *JournalProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := j.inner.Generate(ctx, req)

	data := journal.LLMRequestData{
		Provider:    j.provider,
		Model:       j.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
		if cost := LookupCost(data.Model); cost != nil {
			data.CostUSD = cost.Cost(data.InputTokens, data.OutputTokens)
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Journal failures never fail the call, and timed-out calls are still recorded.
	if jerr := j.rec.AppendLLMRequest(context.WithoutCancel(ctx), data); jerr != nil {
		fmt.Fprintf(os.Stderr, "warning: journal llm request: %v\n", jerr)
	}
	return resp, err
}

// transcript renders a request the way it is shown in the journal.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "system: %s\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "schema %s: %s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
