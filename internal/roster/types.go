package roster

import (
	"fmt"
	"strings"
)

// Grade is an exam grade. Grades are totally ordered U < G < ... < A < A*.
type Grade string

const (
	GradeU     Grade = "U"
	GradeG     Grade = "G"
	GradeF     Grade = "F"
	GradeE     Grade = "E"
	GradeD     Grade = "D"
	GradeC     Grade = "C"
	GradeB     Grade = "B"
	GradeA     Grade = "A"
	GradeAStar Grade = "A_STAR"
)

var gradeOrder = []Grade{GradeU, GradeG, GradeF, GradeE, GradeD, GradeC, GradeB, GradeA, GradeAStar}

// AllGrades returns every grade, lowest first.
func AllGrades() []Grade {
	out := make([]Grade, len(gradeOrder))
	copy(out, gradeOrder)
	return out
}

// Ordinal returns the grade's position in the total order, or -1 if the
// grade is not one of the known values.
func (g Grade) Ordinal() int {
	for i, o := range gradeOrder {
		if o == g {
			return i
		}
	}
	return -1
}

// Valid reports whether g is a known grade.
func (g Grade) Valid() bool {
	return g.Ordinal() >= 0
}

// Label returns the display form of the grade ("A*" rather than "A_STAR").
func (g Grade) Label() string {
	if g == GradeAStar {
		return "A*"
	}
	return string(g)
}

// ParseGrade accepts a grade in display or wire form, case-insensitively.
func ParseGrade(s string) (Grade, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch v {
	case "A*", "A_STAR", "ASTAR", "A-STAR":
		return GradeAStar, nil
	}
	g := Grade(v)
	if !g.Valid() {
		return "", fmt.Errorf("unknown grade %q", s)
	}
	return g, nil
}

// MasteryLevel is a qualitative proficiency label for a chapter.
type MasteryLevel string

const (
	MasteryBeginner     MasteryLevel = "Beginner"
	MasteryIntermediate MasteryLevel = "Intermediate"
	MasteryAdvanced     MasteryLevel = "Advanced"
	MasteryMastered     MasteryLevel = "Mastered"
)

var masteryOrder = []MasteryLevel{MasteryBeginner, MasteryIntermediate, MasteryAdvanced, MasteryMastered}

// AllMasteryLevels returns every mastery level, lowest first.
func AllMasteryLevels() []MasteryLevel {
	out := make([]MasteryLevel, len(masteryOrder))
	copy(out, masteryOrder)
	return out
}

// Rank returns the level's position (Beginner = 0), or -1 if unknown.
func (m MasteryLevel) Rank() int {
	for i, o := range masteryOrder {
		if o == m {
			return i
		}
	}
	return -1
}

// Valid reports whether m is a known mastery level.
func (m MasteryLevel) Valid() bool {
	return m.Rank() >= 0
}

// Strong reports whether the level counts as a strong area
// (Advanced or Mastered).
func (m MasteryLevel) Strong() bool {
	return m == MasteryAdvanced || m == MasteryMastered
}

// ParseMasteryLevel parses a mastery level case-insensitively.
func ParseMasteryLevel(s string) (MasteryLevel, error) {
	v := strings.TrimSpace(s)
	for _, m := range masteryOrder {
		if strings.EqualFold(v, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mastery level %q", s)
}

// AssessmentType tags how an assessment was taken.
type AssessmentType string

const (
	AssessmentQuiz     AssessmentType = "Quiz"
	AssessmentTest     AssessmentType = "Test"
	AssessmentHomework AssessmentType = "Homework"
	AssessmentExam     AssessmentType = "Exam"
	AssessmentPractice AssessmentType = "Practice"
)

var assessmentTypes = []AssessmentType{AssessmentQuiz, AssessmentTest, AssessmentHomework, AssessmentExam, AssessmentPractice}

// AllAssessmentTypes returns every assessment type in display order.
func AllAssessmentTypes() []AssessmentType {
	out := make([]AssessmentType, len(assessmentTypes))
	copy(out, assessmentTypes)
	return out
}

// Valid reports whether t is a known assessment type.
func (t AssessmentType) Valid() bool {
	for _, o := range assessmentTypes {
		if o == t {
			return true
		}
	}
	return false
}

// ParseAssessmentType parses an assessment type case-insensitively.
func ParseAssessmentType(s string) (AssessmentType, error) {
	v := strings.TrimSpace(s)
	for _, t := range assessmentTypes {
		if strings.EqualFold(v, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown assessment type %q", s)
}

// YearGroups lists the accepted year groups.
var YearGroups = []string{"Year 7", "Year 8", "Year 9", "Year 10", "Year 11"}

// MaxAssessmentHistory is how many assessments a student keeps.
const MaxAssessmentHistory = 3

// ChapterProgress is one student's standing in one catalog chapter.
type ChapterProgress struct {
	ID       int          `json:"id" mapstructure:"id"`
	Name     string       `json:"name" mapstructure:"name" validate:"required,catalog_chapter"`
	Progress int          `json:"progress" mapstructure:"progress" validate:"min=0,max=100"`
	Mastery  MasteryLevel `json:"mastery" mapstructure:"mastery" validate:"required,mastery"`
}

// AssessmentRecord is an immutable assessment log entry.
type AssessmentRecord struct {
	ID       int            `json:"id" mapstructure:"id"`
	Chapter  string         `json:"chapter" mapstructure:"chapter" validate:"required,catalog_chapter"`
	Score    int            `json:"score" mapstructure:"score" validate:"min=0,max=100"`
	Type     AssessmentType `json:"type" mapstructure:"type" validate:"required,assessment_type"`
	Date     string         `json:"date" mapstructure:"date" validate:"required,datetime=2006-01-02"`
	Feedback string         `json:"feedback,omitempty" mapstructure:"feedback" validate:"max=500"`
}

// Student is a single roster entry.
type Student struct {
	ID           int                `json:"id" mapstructure:"id" validate:"gt=0"`
	Name         string             `json:"name" mapstructure:"name" validate:"required,max=100"`
	Email        string             `json:"email" mapstructure:"email" validate:"required,email"`
	YearGroup    string             `json:"year_group" mapstructure:"year_group" validate:"required,year_group"`
	CurrentGrade Grade              `json:"current_grade" mapstructure:"current_grade" validate:"required,grade"`
	TargetGrade  Grade              `json:"target_grade" mapstructure:"target_grade" validate:"required,grade"`
	Chapters     []ChapterProgress  `json:"chapters" mapstructure:"chapters" validate:"dive"`
	Assessments  []AssessmentRecord `json:"assessments" mapstructure:"assessments" validate:"max=3,dive"`
	Attendance   *float64           `json:"attendance,omitempty" mapstructure:"attendance" validate:"omitempty,min=0,max=100"`
	StudyHours   *float64           `json:"study_hours,omitempty" mapstructure:"study_hours" validate:"omitempty,min=0"`
}

// Chapter returns the student's entry for the named chapter.
func (s Student) Chapter(name string) (ChapterProgress, bool) {
	for _, c := range s.Chapters {
		if c.Name == name {
			return c, true
		}
	}
	return ChapterProgress{}, false
}

// HasChapter reports whether the student has an entry for the named chapter.
func (s Student) HasChapter(name string) bool {
	_, ok := s.Chapter(name)
	return ok
}

// Clone returns a deep copy.
func (s Student) Clone() Student {
	out := s
	out.Chapters = append([]ChapterProgress(nil), s.Chapters...)
	out.Assessments = append([]AssessmentRecord(nil), s.Assessments...)
	if s.Attendance != nil {
		v := *s.Attendance
		out.Attendance = &v
	}
	if s.StudyHours != nil {
		v := *s.StudyHours
		out.StudyHours = &v
	}
	return out
}

// Roster is the ordered collection of students at a point in time.
type Roster []Student

// Clone returns a deep copy of the roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for i, s := range r {
		out[i] = s.Clone()
	}
	return out
}

// NewStudent holds the fields supplied when enrolling a student.
type NewStudent struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	YearGroup    string `json:"year_group" validate:"required,year_group"`
	CurrentGrade Grade  `json:"current_grade" validate:"required,grade"`
	TargetGrade  Grade  `json:"target_grade" validate:"required,grade"`
}

// NewAssessment holds the fields supplied when recording an assessment.
// Date defaults to today when empty.
type NewAssessment struct {
	Chapter  string         `json:"chapter" validate:"required,catalog_chapter"`
	Score    int            `json:"score" validate:"min=0,max=100"`
	Type     AssessmentType `json:"type" validate:"required,assessment_type"`
	Date     string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Feedback string         `json:"feedback" validate:"max=500"`
}

// ProfileUpdate holds editable profile fields. Nil pointers leave the
// current value untouched.
type ProfileUpdate struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	TargetGrade  Grade   `json:"target_grade" validate:"required,grade"`
	CurrentGrade *Grade  `json:"current_grade" validate:"omitempty,grade"`
	YearGroup    *string `json:"year_group" validate:"omitempty,year_group"`
}
