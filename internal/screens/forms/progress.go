package forms

import (
	"context"
	"fmt"
	"strconv"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
)

// NewEditChapter returns a form setting one chapter's progress and
// mastery. Switching chapter reloads that chapter's current values.
func NewEditChapter(env *screen.Env, s roster.Student) *Form {
	names := curriculum.Names()
	first, _ := s.Chapter(names[0])

	fields := []field{
		choiceField("chapter", "Chapter", names, first.Name),
		textField("progress", "Progress %", "0-100", strconv.Itoa(first.Progress), true, 3),
		choiceField("mastery", "Mastery", masteryOptions(), string(first.Mastery)),
	}
	id := s.ID
	f := newForm(fmt.Sprintf("Update progress: %s", s.Name), fields, func(ctx context.Context, v values) error {
		ch, ok := s.Chapter(v["chapter"])
		if !ok {
			return fmt.Errorf("chapter %s: %w", v["chapter"], roster.ErrChapterNotFound)
		}
		progress, err := v.number("progress")
		if err != nil {
			return err
		}
		_, err = env.Repo.UpdateChapter(ctx, id, ch.ID, progress, roster.MasteryLevel(v["mastery"]))
		return err
	})
	f.changed = func(f *Form, key string) {
		if key != "chapter" {
			return
		}
		chField, _ := f.field("chapter")
		ch, ok := s.Chapter(chField.value())
		if !ok {
			return
		}
		progress, _ := f.field("progress")
		progress.input.SetValue(strconv.Itoa(ch.Progress))
		mastery, _ := f.field("mastery")
		*mastery.choice = *choiceField("mastery", "Mastery", masteryOptions(), string(ch.Mastery)).choice
	}
	return f
}

// NewAddAssessment returns a form recording an assessment. A blank date
// means today.
func NewAddAssessment(env *screen.Env, s roster.Student) *Form {
	fields := []field{
		choiceField("chapter", "Chapter", curriculum.Names(), ""),
		textField("score", "Score %", "0-100", "", true, 3),
		choiceField("type", "Type", assessmentTypeOptions(), string(roster.AssessmentQuiz)),
		textField("date", "Date", "YYYY-MM-DD (blank for today)", "", false, 10),
		textField("feedback", "Feedback", "optional", "", false, 500),
	}
	id := s.ID
	return newForm(fmt.Sprintf("Add assessment: %s", s.Name), fields, func(ctx context.Context, v values) error {
		score, err := v.number("score")
		if err != nil {
			return err
		}
		_, err = env.Repo.AppendAssessment(ctx, id, roster.NewAssessment{
			Chapter:  v["chapter"],
			Score:    score,
			Type:     roster.AssessmentType(v["type"]),
			Date:     v["date"],
			Feedback: v["feedback"],
		})
		return err
	})
}
