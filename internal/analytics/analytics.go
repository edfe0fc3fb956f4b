// Package analytics derives read-only class and student metrics from a
// roster snapshot. Every function is pure: inputs are never mutated and
// results are recomputed on each call.
package analytics

import (
	"cmp"
	"slices"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

const (
	// StrengthThreshold is the minimum progress for a chapter to count as a strength.
	StrengthThreshold = 80
	// WeaknessThreshold is the progress below which a chapter is a weakness.
	WeaknessThreshold = 60
	// SupportThreshold is the progress below which a chapter needs support.
	SupportThreshold = 50

	// AdvancedShare and IntermediateShare are inclusive lower bounds on the
	// fraction of students at Advanced or Mastered.
	AdvancedShare     = 0.70
	IntermediateShare = 0.40
)

// GradeCount is one entry of a grade distribution.
type GradeCount struct {
	Grade roster.Grade
	Count int
}

// Distribution counts students per current grade. Grades appear in the
// order they were first seen; grades with no students are absent.
type Distribution struct {
	Counts []GradeCount
}

// Get returns the count for a grade.
func (d Distribution) Get(g roster.Grade) int {
	for _, c := range d.Counts {
		if c.Grade == g {
			return c.Count
		}
	}
	return 0
}

// Total returns the number of students counted.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d.Counts {
		n += c.Count
	}
	return n
}

// Share returns the percentage of students at grade g.
func (d Distribution) Share(g roster.Grade) Percent {
	return percentOf(float64(d.Get(g))*100, d.Total())
}

// GradeDistribution counts each student's current grade.
func GradeDistribution(r roster.Roster) Distribution {
	var d Distribution
	index := make(map[roster.Grade]int)
	for _, s := range r {
		i, ok := index[s.CurrentGrade]
		if !ok {
			i = len(d.Counts)
			index[s.CurrentGrade] = i
			d.Counts = append(d.Counts, GradeCount{Grade: s.CurrentGrade})
		}
		d.Counts[i].Count++
	}
	return d
}

// AverageProgress is the mean over students of each student's mean
// chapter progress.
func AverageProgress(r roster.Roster) Percent {
	sum, n := 0.0, 0
	for _, s := range r {
		avg := StudentAverage(s)
		if !avg.Valid {
			continue
		}
		sum += avg.Value
		n++
	}
	return percentOf(sum, n)
}

// IsOnTrack reports whether a student's current grade is at most one grade
// below target. A student with an unknown grade is never on track.
func IsOnTrack(s roster.Student) bool {
	if !s.CurrentGrade.Valid() || !s.TargetGrade.Valid() {
		return false
	}
	return s.CurrentGrade.Ordinal() >= s.TargetGrade.Ordinal()-1
}

// StudentsOnTrack counts students for whom IsOnTrack holds.
func StudentsOnTrack(r roster.Roster) int {
	n := 0
	for _, s := range r {
		if IsOnTrack(s) {
			n++
		}
	}
	return n
}

// ChapterProgress averages one chapter's progress over the students that
// have it.
func ChapterProgress(r roster.Roster, chapter string) Percent {
	sum, n := 0.0, 0
	for _, s := range r {
		if c, ok := s.Chapter(chapter); ok {
			sum += clampProgress(c.Progress)
			n++
		}
	}
	return percentOf(sum, n)
}

// ChapterMasteryLevel labels the class's mastery of a chapter from the
// fraction of students at Advanced or Mastered. With no students holding
// the chapter the label is Beginner.
func ChapterMasteryLevel(r roster.Roster, chapter string) roster.MasteryLevel {
	strong, n := 0, 0
	for _, s := range r {
		if c, ok := s.Chapter(chapter); ok {
			n++
			if c.Mastery.Strong() {
				strong++
			}
		}
	}
	if n == 0 {
		return roster.MasteryBeginner
	}
	// Compare strong/n against the cutoffs without floating-point division
	// so that exact boundaries like 7/10 land on the inclusive side.
	switch {
	case strong*100 >= int(AdvancedShare*100)*n:
		return roster.MasteryAdvanced
	case strong*100 >= int(IntermediateShare*100)*n:
		return roster.MasteryIntermediate
	default:
		return roster.MasteryBeginner
	}
}

// NeedsSupport reports whether any of the student's chapters is below
// SupportThreshold.
func NeedsSupport(s roster.Student) bool {
	for _, c := range s.Chapters {
		if clampProgress(c.Progress) < SupportThreshold {
			return true
		}
	}
	return false
}

// StudentsNeedingSupport counts students for whom NeedsSupport holds.
func StudentsNeedingSupport(r roster.Roster) int {
	n := 0
	for _, s := range r {
		if NeedsSupport(s) {
			n++
		}
	}
	return n
}

// StrengthsAndWeaknesses splits a student's chapters into strengths
// (progress ≥ 80, highest first) and weaknesses (progress < 60, lowest
// first). Ties keep the student's chapter order.
func StrengthsAndWeaknesses(s roster.Student) (strengths, weaknesses []roster.ChapterProgress) {
	for _, c := range s.Chapters {
		p := clampProgress(c.Progress)
		switch {
		case p >= StrengthThreshold:
			strengths = append(strengths, c)
		case p < WeaknessThreshold:
			weaknesses = append(weaknesses, c)
		}
	}
	slices.SortStableFunc(strengths, func(a, b roster.ChapterProgress) int {
		return cmp.Compare(clampProgress(b.Progress), clampProgress(a.Progress))
	})
	slices.SortStableFunc(weaknesses, func(a, b roster.ChapterProgress) int {
		return cmp.Compare(clampProgress(a.Progress), clampProgress(b.Progress))
	})
	return strengths, weaknesses
}

// FilterByChapter returns the students that have the named chapter, or
// the whole roster when chapter is nil. The result shares no slices with r.
func FilterByChapter(r roster.Roster, chapter *string) roster.Roster {
	if chapter == nil {
		return r.Clone()
	}
	out := roster.Roster{}
	for _, s := range r {
		if s.HasChapter(*chapter) {
			out = append(out, s.Clone())
		}
	}
	return out
}
