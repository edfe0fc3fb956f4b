package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what an event records.
type Kind string

const (
	KindStudentAdded    Kind = "student-added"
	KindChapterUpdated  Kind = "chapter-updated"
	KindAssessmentAdded Kind = "assessment-added"
	KindProfileUpdated  Kind = "profile-updated"
	KindLLMRequest      Kind = "llm-request"
)

// Event is a single entry in the activity log.
type Event struct {
	ID        uuid.UUID
	Sequence  int64
	Timestamp time.Time
	Kind      Kind
	StudentID int    // 0 for class-wide events
	Summary   string // human-readable one-liner
	LLM       *LLMRequestData
}

// LLMRequestData captures the data for a single LLM request.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64 // 0 when the model has no known pricing
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int   // max results, newest first (0 = unlimited)
	After int64 // sequence > After
	Kind  Kind  // empty matches every kind
}

// Recorder appends events to the activity log.
type Recorder interface {
	// Record appends an event. ID, Sequence and Timestamp are assigned
	// by the recorder.
	Record(ctx context.Context, e Event) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) Record(context.Context, Event) error                     { return nil }
func (Nop) AppendLLMRequest(context.Context, LLMRequestData) error { return nil }
