package journal

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Log is an in-memory, append-only activity log. It lives as long as the
// process; nothing is written to disk.
//
// A single monotonic sequence is shared across all kinds so that events of
// different kinds can be ordered against each other.
type Log struct {
	mu     sync.RWMutex
	events []Event
	seq    int64
	now    func() time.Time
}

var _ Recorder = (*Log)(nil)

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// Record appends an event and assigns its ID, sequence and timestamp.
func (l *Log) Record(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.Kind == "" {
		return fmt.Errorf("record event: kind is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	e.ID = uuid.New()
	e.Sequence = l.seq
	e.Timestamp = l.now()
	l.events = append(l.events, e)
	return nil
}

// AppendLLMRequest records an LLM API call event.
func (l *Log) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	status := "ok"
	if !data.Success {
		status = "failed"
	}
	return l.Record(ctx, Event{
		Kind:    KindLLMRequest,
		Summary: fmt.Sprintf("%s via %s (%s, %dms)", data.Purpose, data.Model, status, data.LatencyMs),
		LLM:     &data,
	})
}

// Query returns matching events, newest first.
func (l *Log) Query(opts QueryOpts) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Event
	for i := len(l.events) - 1; i >= 0; i-- {
		e := l.events[i]
		if e.Sequence <= opts.After {
			break
		}
		if opts.Kind != "" && e.Kind != opts.Kind {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out
}

// ForStudent returns the newest events about one student.
func (l *Log) ForStudent(studentID, limit int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Event
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].StudentID != studentID {
			continue
		}
		out = append(out, l.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// PurposeUsage aggregates LLM usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	AvgLatencyMs int64
}

// LLMUsageByPurpose aggregates LLM request events by purpose, sorted by name.
func (l *Log) LLMUsageByPurpose() []PurposeUsage {
	l.mu.RLock()
	defer l.mu.RUnlock()

	byPurpose := make(map[string]*PurposeUsage)
	latency := make(map[string]int64)
	for _, e := range l.events {
		if e.Kind != KindLLMRequest || e.LLM == nil {
			continue
		}
		u, ok := byPurpose[e.LLM.Purpose]
		if !ok {
			u = &PurposeUsage{Purpose: e.LLM.Purpose}
			byPurpose[e.LLM.Purpose] = u
		}
		u.Calls++
		if !e.LLM.Success {
			u.Failures++
		}
		u.InputTokens += e.LLM.InputTokens
		u.OutputTokens += e.LLM.OutputTokens
		u.CostUSD += e.LLM.CostUSD
		latency[e.LLM.Purpose] += e.LLM.LatencyMs
	}

	out := make([]PurposeUsage, 0, len(byPurpose))
	for p, u := range byPurpose {
		u.AvgLatencyMs = latency[p] / int64(u.Calls)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out
}
