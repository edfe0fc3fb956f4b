package curriculum

import (
	"fmt"
	"strings"
)

// validateChapters performs all structural checks on a chapter set.
// Returns a combined error describing every problem found, or nil.
func validateChapters(chapters []Chapter) error {
	var errs []string

	if len(chapters) == 0 {
		return fmt.Errorf("curriculum validation failed: catalog is empty")
	}

	ids := make(map[int]bool, len(chapters))
	names := make(map[string]bool, len(chapters))
	weightage := 0

	for _, ch := range chapters {
		if ids[ch.ID] {
			errs = append(errs, fmt.Sprintf("duplicate chapter ID: %d", ch.ID))
		}
		ids[ch.ID] = true

		if ch.Name == "" {
			errs = append(errs, fmt.Sprintf("chapter %d has no name", ch.ID))
		} else if names[ch.Name] {
			errs = append(errs, fmt.Sprintf("duplicate chapter name: %q", ch.Name))
		}
		names[ch.Name] = true

		switch ch.Difficulty {
		case DifficultyFoundation, DifficultyHigher, DifficultyBoth:
		default:
			errs = append(errs, fmt.Sprintf("chapter %q: unknown difficulty %q", ch.Name, ch.Difficulty))
		}

		if len(ch.Subtopics) == 0 {
			errs = append(errs, fmt.Sprintf("chapter %q has no subtopics", ch.Name))
		}
		if ch.EstimatedHours <= 0 {
			errs = append(errs, fmt.Sprintf("chapter %q: EstimatedHours must be > 0, got %d", ch.Name, ch.EstimatedHours))
		}
		if ch.ExamQuestions < 0 {
			errs = append(errs, fmt.Sprintf("chapter %q: ExamQuestions must be >= 0, got %d", ch.Name, ch.ExamQuestions))
		}
		if ch.Weightage < 0 || ch.Weightage > 100 {
			errs = append(errs, fmt.Sprintf("chapter %q: Weightage must be in [0, 100], got %d", ch.Name, ch.Weightage))
		}
		weightage += ch.Weightage
	}

	if weightage != 100 {
		errs = append(errs, fmt.Sprintf("chapter weightages sum to %d, want 100", weightage))
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
