package roster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
)

// Repository is the in-memory, concurrency-safe store of the roster.
// Every successful mutation is recorded in the journal before it is applied.
type Repository struct {
	mu               sync.RWMutex
	students         []Student
	lastAssessmentID int
	recorder         journal.Recorder
	now              func() time.Time
}

// NewRepository creates an empty repository that journals to rec.
// A nil recorder disables journaling.
func NewRepository(rec journal.Recorder) *Repository {
	if rec == nil {
		rec = journal.Nop{}
	}
	return &Repository{recorder: rec, now: time.Now}
}

// SetClock overrides the clock used for default assessment dates.
func (r *Repository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Len returns the number of students.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}

// Snapshot returns a deep copy of the current roster in insertion order.
func (r *Repository) Snapshot() Roster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Roster(r.students).Clone()
}

// Get returns a copy of the student with the given ID.
func (r *Repository) Get(id int) (Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return Student{}, fmt.Errorf("student %d: %w", id, ErrStudentNotFound)
	}
	return r.students[i].Clone(), nil
}

// Load adds fully formed student records, such as the seed roster or
// students read from a config file. Either all records are added or none.
func (r *Repository) Load(ctx context.Context, students []Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, s := range students {
		if err := ValidateStudent(s); err != nil {
			return fmt.Errorf("student %d: %w", s.ID, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[int]bool, len(r.students)+len(students))
	for _, s := range r.students {
		ids[s.ID] = true
	}
	for _, s := range students {
		if ids[s.ID] {
			return fmt.Errorf("student %d: %w", s.ID, ErrDuplicateID)
		}
		ids[s.ID] = true
	}

	for _, s := range students {
		if err := r.recorder.Record(ctx, journal.Event{
			Kind:      journal.KindStudentAdded,
			StudentID: s.ID,
			Summary:   fmt.Sprintf("loaded %s (%s)", s.Name, s.YearGroup),
		}); err != nil {
			return fmt.Errorf("journal student %d: %w", s.ID, err)
		}
	}
	for _, s := range students {
		r.students = append(r.students, s.Clone())
		for _, a := range s.Assessments {
			r.lastAssessmentID = max(r.lastAssessmentID, a.ID)
		}
	}
	return nil
}

// AddStudent enrolls a new student. Every catalog chapter starts at
// 0% progress and Beginner mastery, with no assessments.
func (r *Repository) AddStudent(ctx context.Context, ns NewStudent) (Student, error) {
	if err := ctx.Err(); err != nil {
		return Student{}, err
	}
	if err := ValidateNewStudent(ns); err != nil {
		return Student{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := Student{
		ID:           r.nextStudentID(),
		Name:         ns.Name,
		Email:        ns.Email,
		YearGroup:    ns.YearGroup,
		CurrentGrade: ns.CurrentGrade,
		TargetGrade:  ns.TargetGrade,
		Chapters:     freshChapters(),
		Assessments:  []AssessmentRecord{},
	}
	if err := r.recorder.Record(ctx, journal.Event{
		Kind:      journal.KindStudentAdded,
		StudentID: s.ID,
		Summary:   fmt.Sprintf("enrolled %s (%s, %s → %s)", s.Name, s.YearGroup, s.CurrentGrade.Label(), s.TargetGrade.Label()),
	}); err != nil {
		return Student{}, fmt.Errorf("journal student %d: %w", s.ID, err)
	}
	r.students = append(r.students, s)
	return s.Clone(), nil
}

// UpdateChapter sets a student's progress and mastery for one chapter.
func (r *Repository) UpdateChapter(ctx context.Context, studentID, chapterID, progress int, mastery MasteryLevel) (Student, error) {
	if err := ctx.Err(); err != nil {
		return Student{}, err
	}
	var verr ValidationError
	if progress < 0 || progress > 100 {
		verr.Fields = append(verr.Fields, FieldError{Field: "progress", Message: "progress must be between 0 and 100"})
	}
	if !mastery.Valid() {
		verr.Fields = append(verr.Fields, FieldError{Field: "mastery", Message: "must be one of Beginner, Intermediate, Advanced, Mastered"})
	}
	if len(verr.Fields) > 0 {
		return Student{}, &verr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(studentID)
	if i < 0 {
		return Student{}, fmt.Errorf("student %d: %w", studentID, ErrStudentNotFound)
	}
	s := &r.students[i]
	ci := -1
	for j, c := range s.Chapters {
		if c.ID == chapterID {
			ci = j
			break
		}
	}
	if ci < 0 {
		return Student{}, fmt.Errorf("chapter %d: %w", chapterID, ErrChapterNotFound)
	}

	if err := r.recorder.Record(ctx, journal.Event{
		Kind:      journal.KindChapterUpdated,
		StudentID: studentID,
		Summary:   fmt.Sprintf("%s: %s %d%% → %d%% (%s)", s.Name, s.Chapters[ci].Name, s.Chapters[ci].Progress, progress, mastery),
	}); err != nil {
		return Student{}, fmt.Errorf("journal chapter update: %w", err)
	}
	s.Chapters[ci].Progress = progress
	s.Chapters[ci].Mastery = mastery
	return s.Clone(), nil
}

// AppendAssessment records a new assessment as the student's most recent,
// keeping at most MaxAssessmentHistory entries. IDs are unique across the
// whole roster.
func (r *Repository) AppendAssessment(ctx context.Context, studentID int, na NewAssessment) (Student, error) {
	if err := ctx.Err(); err != nil {
		return Student{}, err
	}
	if err := ValidateNewAssessment(na); err != nil {
		return Student{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(studentID)
	if i < 0 {
		return Student{}, fmt.Errorf("student %d: %w", studentID, ErrStudentNotFound)
	}
	s := &r.students[i]

	rec := AssessmentRecord{
		ID:       r.lastAssessmentID + 1,
		Chapter:  na.Chapter,
		Score:    na.Score,
		Type:     na.Type,
		Date:     na.Date,
		Feedback: na.Feedback,
	}
	if rec.Date == "" {
		rec.Date = r.now().Format(time.DateOnly)
	}

	if err := r.recorder.Record(ctx, journal.Event{
		Kind:      journal.KindAssessmentAdded,
		StudentID: studentID,
		Summary:   fmt.Sprintf("%s: %s %s scored %d%%", s.Name, rec.Chapter, rec.Type, rec.Score),
	}); err != nil {
		return Student{}, fmt.Errorf("journal assessment: %w", err)
	}

	history := make([]AssessmentRecord, 0, MaxAssessmentHistory)
	history = append(history, rec)
	for _, a := range s.Assessments {
		if len(history) == MaxAssessmentHistory {
			break
		}
		history = append(history, a)
	}
	s.Assessments = history
	r.lastAssessmentID = rec.ID
	return s.Clone(), nil
}

// UpdateProfile edits a student's name, email and grades.
func (r *Repository) UpdateProfile(ctx context.Context, id int, p ProfileUpdate) (Student, error) {
	if err := ctx.Err(); err != nil {
		return Student{}, err
	}
	if err := ValidateProfileUpdate(p); err != nil {
		return Student{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Student{}, fmt.Errorf("student %d: %w", id, ErrStudentNotFound)
	}
	s := &r.students[i]

	if err := r.recorder.Record(ctx, journal.Event{
		Kind:      journal.KindProfileUpdated,
		StudentID: id,
		Summary:   fmt.Sprintf("%s: profile updated (target %s)", p.Name, p.TargetGrade.Label()),
	}); err != nil {
		return Student{}, fmt.Errorf("journal profile update: %w", err)
	}
	s.Name = p.Name
	s.Email = p.Email
	s.TargetGrade = p.TargetGrade
	if p.CurrentGrade != nil {
		s.CurrentGrade = *p.CurrentGrade
	}
	if p.YearGroup != nil {
		s.YearGroup = *p.YearGroup
	}
	return s.Clone(), nil
}

func (r *Repository) indexOf(id int) int {
	for i, s := range r.students {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// nextStudentID is one more than the largest ID in use, or 1 when empty.
func (r *Repository) nextStudentID() int {
	id := 0
	for _, s := range r.students {
		id = max(id, s.ID)
	}
	return id + 1
}

func freshChapters() []ChapterProgress {
	chapters := curriculum.All()
	out := make([]ChapterProgress, len(chapters))
	for i, ch := range chapters {
		out[i] = ChapterProgress{ID: ch.ID, Name: ch.Name, Progress: 0, Mastery: MasteryBeginner}
	}
	return out
}
