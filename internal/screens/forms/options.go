package forms

import (
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

func gradeOptions() []string {
	grades := roster.AllGrades()
	out := make([]string, len(grades))
	for i, g := range grades {
		out[i] = g.Label()
	}
	return out
}

func masteryOptions() []string {
	levels := roster.AllMasteryLevels()
	out := make([]string, len(levels))
	for i, m := range levels {
		out[i] = string(m)
	}
	return out
}

func assessmentTypeOptions() []string {
	types := roster.AllAssessmentTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

// grade converts a grade option back to its wire value. Options come from
// gradeOptions, so unknown labels pass through for validation to reject.
func grade(label string) roster.Grade {
	g, err := roster.ParseGrade(label)
	if err != nil {
		return roster.Grade(label)
	}
	return g
}
