package analytics

import (
	"math"
	"testing"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// student builds a student with the four catalog chapters at the given
// progress values and Beginner mastery.
func student(id int, current, target roster.Grade, progress ...int) roster.Student {
	s := roster.Student{ID: id, CurrentGrade: current, TargetGrade: target}
	for i, ch := range curriculum.All() {
		p := 0
		if i < len(progress) {
			p = progress[i]
		}
		s.Chapters = append(s.Chapters, roster.ChapterProgress{
			ID: ch.ID, Name: ch.Name, Progress: p, Mastery: roster.MasteryBeginner,
		})
	}
	return s
}

func withMastery(s roster.Student, chapter string, m roster.MasteryLevel) roster.Student {
	s = s.Clone()
	for i := range s.Chapters {
		if s.Chapters[i].Name == chapter {
			s.Chapters[i].Mastery = m
		}
	}
	return s
}

func TestAverageProgress_SeedScenario(t *testing.T) {
	r := roster.Roster(roster.DefaultSeed())
	got := AverageProgress(r)
	if !got.Valid {
		t.Fatal("AverageProgress should be valid for a non-empty roster")
	}
	if !almostEqual(got.Value, 67.5) {
		t.Errorf("AverageProgress = %f, want 67.5", got.Value)
	}
	if got.String() != "67.5%" {
		t.Errorf("String() = %q, want 67.5%%", got.String())
	}
}

func TestAverageProgress_MeanOfStudentMeans(t *testing.T) {
	r := roster.Roster{
		student(1, roster.GradeB, roster.GradeA, 100, 100, 100, 100),
		student(2, roster.GradeB, roster.GradeA, 0, 0, 0, 40),
	}
	got := AverageProgress(r)
	if !almostEqual(got.Value, 55) {
		t.Errorf("AverageProgress = %f, want 55", got.Value)
	}
}

func TestAverageProgress_EmptyRoster(t *testing.T) {
	got := AverageProgress(nil)
	if got.Valid {
		t.Errorf("AverageProgress(empty) should be invalid, got %v", got.Value)
	}
	if got.String() != NoData {
		t.Errorf("String() = %q, want %q", got.String(), NoData)
	}
}

func TestAverageProgress_InRange(t *testing.T) {
	rosters := []roster.Roster{
		{student(1, roster.GradeU, roster.GradeAStar, 0, 0, 0, 0)},
		{student(1, roster.GradeU, roster.GradeAStar, 100, 100, 100, 100)},
		{student(1, roster.GradeU, roster.GradeAStar, 150, -20, 100, 100)},
		{
			student(1, roster.GradeC, roster.GradeB, 13, 57, 91, 3),
			student(2, roster.GradeA, roster.GradeA, 99, 1, 50, 77),
		},
	}
	for i, r := range rosters {
		got := AverageProgress(r)
		if !got.Valid || got.Value < 0 || got.Value > 100 {
			t.Errorf("roster %d: AverageProgress = %+v, want valid value in [0,100]", i, got)
		}
	}
}

func TestAverageProgress_ClampsOutOfRange(t *testing.T) {
	r := roster.Roster{student(1, roster.GradeB, roster.GradeA, 150, -50, 100, 0)}
	got := AverageProgress(r)
	if !almostEqual(got.Value, 50) {
		t.Errorf("AverageProgress = %f, want 50 after clamping", got.Value)
	}
}

func TestGradeDistribution_TwoStudents(t *testing.T) {
	r := roster.Roster{
		student(1, roster.GradeB, roster.GradeA),
		student(2, roster.GradeA, roster.GradeA),
	}
	d := GradeDistribution(r)
	if len(d.Counts) != 2 {
		t.Fatalf("len(Counts) = %d, want 2", len(d.Counts))
	}
	if d.Counts[0] != (GradeCount{Grade: roster.GradeB, Count: 1}) {
		t.Errorf("Counts[0] = %+v, want B:1", d.Counts[0])
	}
	if d.Counts[1] != (GradeCount{Grade: roster.GradeA, Count: 1}) {
		t.Errorf("Counts[1] = %+v, want A:1", d.Counts[1])
	}
	if d.Get(roster.GradeC) != 0 {
		t.Errorf("Get(C) = %d, want 0", d.Get(roster.GradeC))
	}
}

func TestGradeDistribution_SumsToRosterLength(t *testing.T) {
	grades := roster.AllGrades()
	for n := 0; n <= 20; n++ {
		var r roster.Roster
		for i := 0; i < n; i++ {
			r = append(r, student(i+1, grades[(i*7)%len(grades)], roster.GradeA))
		}
		if got := GradeDistribution(r).Total(); got != len(r) {
			t.Errorf("n=%d: Total = %d, want %d", n, got, len(r))
		}
	}
}

func TestGradeDistribution_FirstSeenOrder(t *testing.T) {
	r := roster.Roster{
		student(1, roster.GradeC, roster.GradeA),
		student(2, roster.GradeAStar, roster.GradeA),
		student(3, roster.GradeC, roster.GradeA),
		student(4, roster.GradeU, roster.GradeA),
	}
	d := GradeDistribution(r)
	want := []roster.Grade{roster.GradeC, roster.GradeAStar, roster.GradeU}
	if len(d.Counts) != len(want) {
		t.Fatalf("len(Counts) = %d, want %d", len(d.Counts), len(want))
	}
	for i, g := range want {
		if d.Counts[i].Grade != g {
			t.Errorf("Counts[%d].Grade = %s, want %s", i, d.Counts[i].Grade, g)
		}
	}
	if share := d.Share(roster.GradeC); !almostEqual(share.Value, 50) {
		t.Errorf("Share(C) = %f, want 50", share.Value)
	}
	if share := (Distribution{}).Share(roster.GradeC); share.Valid {
		t.Error("Share on empty distribution should be invalid")
	}
}

func TestIsOnTrack(t *testing.T) {
	tests := []struct {
		current, target roster.Grade
		want            bool
	}{
		{roster.GradeB, roster.GradeAStar, false},
		{roster.GradeA, roster.GradeAStar, true},
		{roster.GradeAStar, roster.GradeAStar, true},
		{roster.GradeAStar, roster.GradeC, true},
		{roster.GradeU, roster.GradeG, true},
		{roster.GradeU, roster.GradeF, false},
	}
	for _, tt := range tests {
		s := student(1, tt.current, tt.target)
		if got := IsOnTrack(s); got != tt.want {
			t.Errorf("IsOnTrack(%s→%s) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestIsOnTrack_UnknownGrades(t *testing.T) {
	tests := []struct {
		current, target roster.Grade
	}{
		{roster.GradeA, ""},
		{roster.GradeA, "Z"},
		{"", roster.GradeU},
		{"A*", roster.GradeB},
	}
	for _, tt := range tests {
		if IsOnTrack(student(1, tt.current, tt.target)) {
			t.Errorf("IsOnTrack(%q→%q) = true, want false", tt.current, tt.target)
		}
	}
	r := roster.Roster{student(1, roster.GradeA, "Z"), student(2, roster.GradeA, roster.GradeA)}
	if got := StudentsOnTrack(r); got != 1 {
		t.Errorf("StudentsOnTrack = %d, want 1", got)
	}
}

func TestStudentsOnTrack_MonotonicInCurrentGrade(t *testing.T) {
	others := roster.Roster{
		student(2, roster.GradeC, roster.GradeB),
		student(3, roster.GradeE, roster.GradeA),
	}
	prev := -1
	for _, g := range roster.AllGrades() {
		r := append(roster.Roster{student(1, g, roster.GradeA)}, others...)
		got := StudentsOnTrack(r)
		if got < prev {
			t.Errorf("StudentsOnTrack decreased from %d to %d when current grade rose to %s", prev, got, g)
		}
		prev = got
	}
}

func TestChapterProgress(t *testing.T) {
	r := roster.Roster{
		student(1, roster.GradeB, roster.GradeA, 80),
		student(2, roster.GradeB, roster.GradeA, 55),
	}
	got := ChapterProgress(r, curriculum.Number)
	if !got.Valid || !almostEqual(got.Value, 67.5) {
		t.Errorf("ChapterProgress = %+v, want 67.5", got)
	}
	if got := ChapterProgress(r, "Calculus"); got.Valid {
		t.Errorf("ChapterProgress(unknown) = %+v, want invalid", got)
	}
	if got := ChapterProgress(nil, curriculum.Number); got.Valid {
		t.Errorf("ChapterProgress(empty) = %+v, want invalid", got)
	}
}

// masteryRoster returns n students of which strong are Advanced in Algebra.
func masteryRoster(n, strong int) roster.Roster {
	r := make(roster.Roster, 0, n)
	for i := 0; i < n; i++ {
		s := student(i+1, roster.GradeB, roster.GradeA)
		if i < strong {
			m := roster.MasteryAdvanced
			if i%2 == 1 {
				m = roster.MasteryMastered
			}
			s = withMastery(s, curriculum.Algebra, m)
		}
		r = append(r, s)
	}
	return r
}

func TestChapterMasteryLevel_Boundaries(t *testing.T) {
	tests := []struct {
		n, strong int
		want      roster.MasteryLevel
	}{
		{10, 7, roster.MasteryAdvanced},
		{10, 10, roster.MasteryAdvanced},
		{10, 6, roster.MasteryIntermediate},
		{5, 2, roster.MasteryIntermediate},
		{10, 4, roster.MasteryIntermediate},
		{10, 3, roster.MasteryBeginner},
		{5, 1, roster.MasteryBeginner},
		{1, 0, roster.MasteryBeginner},
		{1, 1, roster.MasteryAdvanced},
	}
	for _, tt := range tests {
		got := ChapterMasteryLevel(masteryRoster(tt.n, tt.strong), curriculum.Algebra)
		if got != tt.want {
			t.Errorf("%d/%d strong: ChapterMasteryLevel = %s, want %s", tt.strong, tt.n, got, tt.want)
		}
	}
}

func TestChapterMasteryLevel_NoStudents(t *testing.T) {
	if got := ChapterMasteryLevel(nil, curriculum.Algebra); got != roster.MasteryBeginner {
		t.Errorf("ChapterMasteryLevel(empty) = %s, want Beginner", got)
	}
}

func TestStudentsNeedingSupport(t *testing.T) {
	r := roster.Roster{
		student(1, roster.GradeB, roster.GradeA, 50, 50, 50, 50),
		student(2, roster.GradeB, roster.GradeA, 90, 90, 90, 49),
		student(3, roster.GradeB, roster.GradeA, 0, 100, 100, 100),
	}
	if got := StudentsNeedingSupport(r); got != 2 {
		t.Errorf("StudentsNeedingSupport = %d, want 2", got)
	}
	if got := StudentsNeedingSupport(nil); got != 0 {
		t.Errorf("StudentsNeedingSupport(empty) = %d, want 0", got)
	}
}

func TestStrengthsAndWeaknesses_AllEighty(t *testing.T) {
	s := student(1, roster.GradeB, roster.GradeA, 80, 80, 80, 80)
	strengths, weaknesses := StrengthsAndWeaknesses(s)
	if len(strengths) != 4 {
		t.Errorf("len(strengths) = %d, want 4", len(strengths))
	}
	if len(weaknesses) != 0 {
		t.Errorf("len(weaknesses) = %d, want 0", len(weaknesses))
	}
}

func TestStrengthsAndWeaknesses_AllFiftyNine(t *testing.T) {
	s := student(1, roster.GradeB, roster.GradeA, 59, 59, 59, 59)
	strengths, weaknesses := StrengthsAndWeaknesses(s)
	if len(strengths) != 0 {
		t.Errorf("len(strengths) = %d, want 0", len(strengths))
	}
	if len(weaknesses) != 4 {
		t.Fatalf("len(weaknesses) = %d, want 4", len(weaknesses))
	}
	for i, name := range curriculum.Names() {
		if weaknesses[i].Name != name {
			t.Errorf("weaknesses[%d] = %s, want %s (stable order)", i, weaknesses[i].Name, name)
		}
	}
}

func TestStrengthsAndWeaknesses_Ordering(t *testing.T) {
	s := student(1, roster.GradeB, roster.GradeA, 81, 95, 20, 59)
	s.Chapters = append(s.Chapters, roster.ChapterProgress{ID: 9, Name: "Extra", Progress: 70})

	strengths, weaknesses := StrengthsAndWeaknesses(s)
	if len(strengths) != 2 || strengths[0].Name != curriculum.Algebra || strengths[1].Name != curriculum.Number {
		t.Errorf("strengths = %+v, want Algebra then Number", strengths)
	}
	if len(weaknesses) != 2 || weaknesses[0].Name != curriculum.Geometry || weaknesses[1].Name != curriculum.Statistics {
		t.Errorf("weaknesses = %+v, want Geometry then Statistics", weaknesses)
	}
}

func TestStrengthsAndWeaknesses_OrdersByClampedProgress(t *testing.T) {
	s := student(1, roster.GradeB, roster.GradeA, 100, 150, 90, -5)
	s.Chapters = append(s.Chapters, roster.ChapterProgress{ID: 9, Name: "Extra", Progress: -20})

	strengths, weaknesses := StrengthsAndWeaknesses(s)
	wantStrengths := []string{curriculum.Number, curriculum.Algebra, curriculum.Geometry}
	if len(strengths) != len(wantStrengths) {
		t.Fatalf("strengths = %+v", strengths)
	}
	for i, name := range wantStrengths {
		if strengths[i].Name != name {
			t.Errorf("strengths[%d] = %s, want %s", i, strengths[i].Name, name)
		}
	}
	if len(weaknesses) != 2 || weaknesses[0].Name != curriculum.Statistics || weaknesses[1].Name != "Extra" {
		t.Errorf("weaknesses = %+v, want Statistics then Extra (both clamp to 0)", weaknesses)
	}
}

func TestStrengthsAndWeaknesses_DoesNotMutate(t *testing.T) {
	s := student(1, roster.GradeB, roster.GradeA, 10, 95, 85, 20)
	StrengthsAndWeaknesses(s)
	want := []int{10, 95, 85, 20}
	for i, c := range s.Chapters {
		if c.Progress != want[i] {
			t.Errorf("chapter %d progress = %d, want %d", i, c.Progress, want[i])
		}
	}
}

func TestFilterByChapter(t *testing.T) {
	full := roster.Roster{
		student(1, roster.GradeB, roster.GradeA, 85, 72, 68, 45),
		student(2, roster.GradeC, roster.GradeA, 30, 60, 90, 75),
	}
	partial := student(3, roster.GradeC, roster.GradeA, 10, 10, 10, 10)
	partial.Chapters = partial.Chapters[1:]
	r := append(full.Clone(), partial)

	if got := FilterByChapter(r, nil); len(got) != 3 {
		t.Errorf("FilterByChapter(nil) len = %d, want 3", len(got))
	}
	name := curriculum.Number
	if got := FilterByChapter(r, &name); len(got) != 2 {
		t.Errorf("FilterByChapter(Number) len = %d, want 2", len(got))
	}
	unknown := "Calculus"
	if got := FilterByChapter(r, &unknown); len(got) != 0 {
		t.Errorf("FilterByChapter(Calculus) len = %d, want 0", len(got))
	}
}

func TestFilterByChapter_RoundTrip(t *testing.T) {
	r := roster.Roster{
		student(1, roster.GradeB, roster.GradeA, 85, 72, 68, 45),
		student(2, roster.GradeC, roster.GradeA, 30, 60, 90, 75),
		student(3, roster.GradeA, roster.GradeAStar, 100, 0, 50, 50),
	}
	for _, name := range curriculum.Names() {
		filtered := ChapterProgress(FilterByChapter(r, &name), name)
		direct := ChapterProgress(r, name)
		if filtered != direct {
			t.Errorf("%s: filtered = %+v, direct = %+v", name, filtered, direct)
		}
	}
}
