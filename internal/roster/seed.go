package roster

import "github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"

// DefaultSeed returns the demonstration roster loaded on first start.
func DefaultSeed() []Student {
	return []Student{
		{
			ID:           1,
			Name:         "JoAnn Lu",
			Email:        "alice.johnson@school.edu",
			YearGroup:    "Year 10",
			CurrentGrade: GradeB,
			TargetGrade:  GradeAStar,
			Chapters: []ChapterProgress{
				{ID: 1, Name: curriculum.Number, Progress: 85, Mastery: MasteryAdvanced},
				{ID: 2, Name: curriculum.Algebra, Progress: 72, Mastery: MasteryIntermediate},
				{ID: 3, Name: curriculum.Geometry, Progress: 68, Mastery: MasteryIntermediate},
				{ID: 4, Name: curriculum.Statistics, Progress: 45, Mastery: MasteryBeginner},
			},
			Assessments: []AssessmentRecord{
				{ID: 1, Chapter: curriculum.Number, Score: 85, Date: "2024-01-15", Type: AssessmentQuiz},
				{ID: 2, Chapter: curriculum.Algebra, Score: 72, Date: "2024-01-10", Type: AssessmentTest},
				{ID: 3, Chapter: curriculum.Geometry, Score: 68, Date: "2024-01-05", Type: AssessmentHomework},
			},
		},
	}
}
