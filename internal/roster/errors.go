package roster

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrDuplicateID     = errors.New("duplicate student ID")
	ErrValidation      = errors.New("validation failed")
)

// FieldError describes a problem with a single field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Field returns the message for the named field, if any.
func (e *ValidationError) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message, true
		}
	}
	return "", false
}
