package forms

import (
	"context"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
)

// NewAddStudent returns the enrolment form. The new student starts with
// every chapter at 0% and Beginner mastery.
func NewAddStudent(env *screen.Env) *Form {
	fields := []field{
		textField("name", "Name", "Full name", "", false, 100),
		textField("email", "Email", "name@school.edu", "", false, 254),
		choiceField("year_group", "Year group", roster.YearGroups, "Year 10"),
		choiceField("current_grade", "Current grade", gradeOptions(), "C"),
		choiceField("target_grade", "Target grade", gradeOptions(), "B"),
	}
	return newForm("Add Student", fields, func(ctx context.Context, v values) error {
		_, err := env.Repo.AddStudent(ctx, roster.NewStudent{
			Name:         v["name"],
			Email:        v["email"],
			YearGroup:    v["year_group"],
			CurrentGrade: grade(v["current_grade"]),
			TargetGrade:  grade(v["target_grade"]),
		})
		return err
	})
}

// NewEditProfile returns a form editing a student's details and grades.
func NewEditProfile(env *screen.Env, s roster.Student) *Form {
	fields := []field{
		textField("name", "Name", "Full name", s.Name, false, 100),
		textField("email", "Email", "name@school.edu", s.Email, false, 254),
		choiceField("year_group", "Year group", roster.YearGroups, s.YearGroup),
		choiceField("current_grade", "Current grade", gradeOptions(), s.CurrentGrade.Label()),
		choiceField("target_grade", "Target grade", gradeOptions(), s.TargetGrade.Label()),
	}
	id := s.ID
	return newForm("Edit "+s.Name, fields, func(ctx context.Context, v values) error {
		current := grade(v["current_grade"])
		year := v["year_group"]
		_, err := env.Repo.UpdateProfile(ctx, id, roster.ProfileUpdate{
			Name:         v["name"],
			Email:        v["email"],
			TargetGrade:  grade(v["target_grade"]),
			CurrentGrade: &current,
			YearGroup:    &year,
		})
		return err
	})
}
