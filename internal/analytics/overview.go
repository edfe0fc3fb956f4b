package analytics

import "github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"

// ChapterSummary is the class's standing in one chapter.
type ChapterSummary struct {
	Name     string
	Students int
	Progress Percent
	Mastery  roster.MasteryLevel
}

// ChapterSummaries summarizes each named chapter, in the order given.
func ChapterSummaries(r roster.Roster, chapters []string) []ChapterSummary {
	out := make([]ChapterSummary, 0, len(chapters))
	for _, name := range chapters {
		n := 0
		for _, s := range r {
			if s.HasChapter(name) {
				n++
			}
		}
		out = append(out, ChapterSummary{
			Name:     name,
			Students: n,
			Progress: ChapterProgress(r, name),
			Mastery:  ChapterMasteryLevel(r, name),
		})
	}
	return out
}

// ClassOverview gathers the headline class metrics.
type ClassOverview struct {
	Total           int
	OnTrack         int
	NeedingSupport  int
	AverageProgress Percent
	Distribution    Distribution
	Chapters        []ChapterSummary
}

// OnTrackShare is the percentage of students on track.
func (o ClassOverview) OnTrackShare() Percent {
	return percentOf(float64(o.OnTrack)*100, o.Total)
}

// Overview computes the class overview over the given chapters.
func Overview(r roster.Roster, chapters []string) ClassOverview {
	return ClassOverview{
		Total:           len(r),
		OnTrack:         StudentsOnTrack(r),
		NeedingSupport:  StudentsNeedingSupport(r),
		AverageProgress: AverageProgress(r),
		Distribution:    GradeDistribution(r),
		Chapters:        ChapterSummaries(r, chapters),
	}
}
