package insights

import "errors"

var (
	// ErrEmptyRoster is returned by ClassReport when there are no students.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrNoProvider is returned when no LLM provider is configured.
	ErrNoProvider = errors.New("no LLM provider configured")
)

// StudyPlan is a generated plan for one student, the "Identify Weak Areas"
// action.
type StudyPlan struct {
	StudentID     int
	Summary       string
	FocusChapters []FocusItem
	Encouragement string
}

// FocusItem is one chapter the student should work on.
type FocusItem struct {
	Chapter string
	Reason  string
	Actions []string
}

// ClassReport is a generated class summary, the "Generate Progress Report"
// action.
type ClassReport struct {
	Summary          string
	PriorityChapters []string
	SupportNotes     []string
}
