package analytics

import (
	"testing"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

func TestStudentAverage(t *testing.T) {
	s := roster.DefaultSeed()[0]
	if got := StudentAverage(s); !almostEqual(got.Value, 67.5) {
		t.Errorf("StudentAverage = %f, want 67.5", got.Value)
	}
	if got := StudentAverage(roster.Student{}); got.Valid {
		t.Error("StudentAverage with no chapters should be invalid")
	}
}

func TestMasteryBreakdown_Seed(t *testing.T) {
	got := MasteryBreakdown(roster.DefaultSeed()[0])
	want := Breakdown{Strong: 1, Developing: 2, NeedsFocus: 1}
	if got != want {
		t.Errorf("MasteryBreakdown = %+v, want %+v", got, want)
	}
}

func TestMasteryBreakdown_MasteredCountsAsStrong(t *testing.T) {
	s := withMastery(student(1, roster.GradeB, roster.GradeA), curriculum.Number, roster.MasteryMastered)
	if got := MasteryBreakdown(s); got.Strong != 1 || got.NeedsFocus != 3 {
		t.Errorf("MasteryBreakdown = %+v, want 1 strong and 3 needing focus", got)
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		p    Percent
		want ProgressBand
	}{
		{Percent{}, BandNone},
		{Percent{Value: 80, Valid: true}, BandGood},
		{Percent{Value: 79.9, Valid: true}, BandFair},
		{Percent{Value: 60, Valid: true}, BandFair},
		{Percent{Value: 59.9, Valid: true}, BandLow},
		{Percent{Value: 0, Valid: true}, BandLow},
	}
	for _, tt := range tests {
		if got := Band(tt.p); got != tt.want {
			t.Errorf("Band(%+v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestGradeGap(t *testing.T) {
	s := roster.DefaultSeed()[0]
	if got := GradeGap(s); got != 2 {
		t.Errorf("GradeGap(B→A*) = %d, want 2", got)
	}
	s.CurrentGrade = roster.GradeAStar
	s.TargetGrade = roster.GradeB
	if got := GradeGap(s); got != -2 {
		t.Errorf("GradeGap(A*→B) = %d, want -2", got)
	}
}

func TestRecentScore(t *testing.T) {
	s := roster.DefaultSeed()[0]
	if got := RecentScore(s); !almostEqual(got.Value, 75) {
		t.Errorf("RecentScore = %f, want 75", got.Value)
	}
	s.Assessments = nil
	if got := RecentScore(s); got.Valid {
		t.Error("RecentScore with no assessments should be invalid")
	}
}

func TestPercentString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{Percent{}, "No data"},
		{Percent{Value: 0, Valid: true}, "0%"},
		{Percent{Value: 67.5, Valid: true}, "67.5%"},
		{Percent{Value: 66.666, Valid: true}, "66.7%"},
		{Percent{Value: 100, Valid: true}, "100%"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
