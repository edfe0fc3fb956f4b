package curriculum

// Difficulty is the exam tier a chapter is examined at.
type Difficulty string

const (
	DifficultyFoundation Difficulty = "Foundation"
	DifficultyHigher     Difficulty = "Higher"
	DifficultyBoth       Difficulty = "Both"
)

// Chapter is one topic of the fixed curriculum. It is static reference data;
// per-student progress lives in the roster.
type Chapter struct {
	ID             int
	Name           string
	Description    string
	Difficulty     Difficulty
	Weightage      int // percentage of the final exam
	Subtopics      []string
	ExamQuestions  int
	EstimatedHours int
}
