package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade_Order(t *testing.T) {
	grades := AllGrades()
	require.Len(t, grades, 9)
	for i := 1; i < len(grades); i++ {
		assert.Less(t, grades[i-1].Ordinal(), grades[i].Ordinal())
	}
	assert.Equal(t, GradeU, grades[0])
	assert.Equal(t, GradeAStar, grades[len(grades)-1])
	assert.Equal(t, -1, Grade("Z").Ordinal())
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in   string
		want Grade
	}{
		{"A*", GradeAStar},
		{"a_star", GradeAStar},
		{" b ", GradeB},
		{"U", GradeU},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGrade(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseGrade("H")
	assert.Error(t, err)
}

func TestGrade_Label(t *testing.T) {
	assert.Equal(t, "A*", GradeAStar.Label())
	assert.Equal(t, "B", GradeB.Label())
}

func TestMasteryLevel(t *testing.T) {
	assert.Equal(t, 0, MasteryBeginner.Rank())
	assert.Equal(t, 3, MasteryMastered.Rank())
	assert.True(t, MasteryAdvanced.Strong())
	assert.True(t, MasteryMastered.Strong())
	assert.False(t, MasteryIntermediate.Strong())

	m, err := ParseMasteryLevel("advanced")
	require.NoError(t, err)
	assert.Equal(t, MasteryAdvanced, m)
	_, err = ParseMasteryLevel("expert")
	assert.Error(t, err)
}

func TestParseAssessmentType(t *testing.T) {
	at, err := ParseAssessmentType("homework")
	require.NoError(t, err)
	assert.Equal(t, AssessmentHomework, at)
	_, err = ParseAssessmentType("oral")
	assert.Error(t, err)
}

func TestStudentClone(t *testing.T) {
	hours := 12.5
	s := DefaultSeed()[0]
	s.StudyHours = &hours

	c := s.Clone()
	c.Chapters[0].Progress = 1
	c.Assessments[0].Score = 1
	*c.StudyHours = 99

	assert.Equal(t, 85, s.Chapters[0].Progress)
	assert.Equal(t, 85, s.Assessments[0].Score)
	assert.Equal(t, 12.5, *s.StudyHours)
}

func TestValidateStudent_DefaultSeed(t *testing.T) {
	for _, s := range DefaultSeed() {
		assert.NoError(t, ValidateStudent(s))
	}
}
