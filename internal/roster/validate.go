package roster

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	gradeTag          = "grade"
	masteryTag        = "mastery"
	assessmentTypeTag = "assessment_type"
	catalogChapterTag = "catalog_chapter"
	yearGroupTag      = "year_group"
	chapterSetTag     = "chapter_set"
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report JSON field names rather than Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(gradeTag, func(fl validator.FieldLevel) bool {
		return Grade(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation(masteryTag, func(fl validator.FieldLevel) bool {
		return MasteryLevel(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation(assessmentTypeTag, func(fl validator.FieldLevel) bool {
		return AssessmentType(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation(catalogChapterTag, func(fl validator.FieldLevel) bool {
		return curriculum.Has(fl.Field().String())
	})
	_ = validate.RegisterValidation(yearGroupTag, func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, y := range YearGroups {
			if y == v {
				return true
			}
		}
		return false
	})
	validate.RegisterStructValidation(studentStructValidation, Student{})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{gradeTag, masteryTag, assessmentTypeTag, catalogChapterTag, yearGroupTag, chapterSetTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustom)
	}
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case gradeTag:
		return "must be one of U, G, F, E, D, C, B, A, A*"
	case masteryTag:
		return "must be one of Beginner, Intermediate, Advanced, Mastered"
	case assessmentTypeTag:
		return "must be one of Quiz, Test, Homework, Exam, Practice"
	case catalogChapterTag:
		return "must name a curriculum chapter"
	case yearGroupTag:
		return "must be one of " + strings.Join(YearGroups, ", ")
	case chapterSetTag:
		return fe.Param()
	default:
		return fe.Error()
	}
}

// studentStructValidation requires exactly one chapter entry per catalog
// chapter, with IDs matching the catalog.
func studentStructValidation(sl validator.StructLevel) {
	s := sl.Current().Interface().(Student)

	seen := make(map[string]bool, len(s.Chapters))
	for _, cp := range s.Chapters {
		if seen[cp.Name] {
			sl.ReportError(s.Chapters, "chapters", "Chapters", chapterSetTag, "duplicate chapter "+cp.Name)
			return
		}
		seen[cp.Name] = true
		if ch, err := curriculum.ByName(cp.Name); err == nil && ch.ID != cp.ID {
			sl.ReportError(s.Chapters, "chapters", "Chapters", chapterSetTag, "chapter "+cp.Name+" has the wrong ID")
			return
		}
	}
	for _, name := range curriculum.Names() {
		if !seen[name] {
			sl.ReportError(s.Chapters, "chapters", "Chapters", chapterSetTag, "missing chapter "+name)
			return
		}
	}
}

// check runs struct validation and converts failures into a *ValidationError.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fe.Translate(translator),
		})
	}
	return out
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// ValidateStudent checks a full student record.
func ValidateStudent(s Student) error { return check(s) }

// ValidateNewStudent checks an enrollment request.
func ValidateNewStudent(ns NewStudent) error { return check(ns) }

// ValidateNewAssessment checks an assessment request.
func ValidateNewAssessment(na NewAssessment) error { return check(na) }

// ValidateProfileUpdate checks a profile edit.
func ValidateProfileUpdate(p ProfileUpdate) error { return check(p) }
