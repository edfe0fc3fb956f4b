package insights

import (
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/llm"
)

func chapterEnum() []any {
	names := curriculum.Names()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

// StudyPlanSchema is the structured output for a student study plan.
var StudyPlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A short study plan for one GCSE maths student",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentences on where the student stands against their target grade",
			},
			"focus_chapters": map[string]any{
				"type":        "array",
				"description": "The 1-3 chapters to focus on, most important first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"chapter": map[string]any{"type": "string", "enum": chapterEnum()},
						"reason":  map[string]any{"type": "string", "description": "One sentence"},
						"actions": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-3 concrete revision activities",
						},
					},
					"required":             []any{"chapter", "reason", "actions"},
					"additionalProperties": false,
				},
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One encouraging sentence addressed to the student",
			},
		},
		"required":             []any{"summary", "focus_chapters", "encouragement"},
		"additionalProperties": false,
	},
}

// ClassReportSchema is the structured output for a class progress report.
var ClassReportSchema = &llm.Schema{
	Name:        "class-report",
	Description: "A progress report for a GCSE maths class",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-4 sentences on overall class progress",
			},
			"priority_chapters": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string", "enum": chapterEnum()},
				"description": "Chapters needing whole-class attention, most urgent first",
			},
			"support_notes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-4 short notes on students or groups needing support",
			},
		},
		"required":             []any{"summary", "priority_chapters", "support_notes"},
		"additionalProperties": false,
	},
}
