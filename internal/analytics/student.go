package analytics

import "github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"

// StudentAverage is the mean of a student's chapter progress.
func StudentAverage(s roster.Student) Percent {
	sum := 0.0
	for _, c := range s.Chapters {
		sum += clampProgress(c.Progress)
	}
	return percentOf(sum, len(s.Chapters))
}

// Breakdown counts a student's chapters by mastery group.
type Breakdown struct {
	Strong     int // Advanced or Mastered
	Developing int // Intermediate
	NeedsFocus int // Beginner
}

// MasteryBreakdown groups a student's chapters by mastery.
func MasteryBreakdown(s roster.Student) Breakdown {
	var b Breakdown
	for _, c := range s.Chapters {
		switch {
		case c.Mastery.Strong():
			b.Strong++
		case c.Mastery == roster.MasteryIntermediate:
			b.Developing++
		default:
			b.NeedsFocus++
		}
	}
	return b
}

// ProgressBand is the colour band a progress value is drawn in.
type ProgressBand int

const (
	BandNone ProgressBand = iota
	BandLow
	BandFair
	BandGood
)

func (b ProgressBand) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandFair:
		return "fair"
	case BandGood:
		return "good"
	default:
		return "none"
	}
}

// Band classifies a percentage: Good from 80, Fair from 60, Low below.
// Invalid percentages have no band.
func Band(p Percent) ProgressBand {
	switch {
	case !p.Valid:
		return BandNone
	case p.Value >= StrengthThreshold:
		return BandGood
	case p.Value >= WeaknessThreshold:
		return BandFair
	default:
		return BandLow
	}
}

// GradeGap is how many grades the student is below target. Negative values
// mean the student is above target.
func GradeGap(s roster.Student) int {
	return s.TargetGrade.Ordinal() - s.CurrentGrade.Ordinal()
}

// RecentScore is the mean of the student's recorded assessment scores.
func RecentScore(s roster.Student) Percent {
	sum := 0.0
	for _, a := range s.Assessments {
		sum += clampProgress(a.Score)
	}
	return percentOf(sum, len(s.Assessments))
}
