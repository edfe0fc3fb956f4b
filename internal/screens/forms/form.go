// Package forms holds the data-entry screens: enrolling a student, editing
// a profile, updating chapter progress and recording an assessment.
package forms

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/router"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/components"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/layout"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

// field is either a text input or a choice, keyed by the JSON name the
// roster reports validation errors under.
type field struct {
	key    string
	input  *components.TextInput
	choice *components.Choice
}

func textField(key, label, placeholder, value string, numeric bool, limit int) field {
	in := components.NewTextInput(label, placeholder, numeric, limit)
	in.SetValue(value)
	return field{key: key, input: &in}
}

func choiceField(key, label string, options []string, current string) field {
	c := components.NewChoice(label, options, current)
	return field{key: key, choice: &c}
}

func (f field) value() string {
	if f.input != nil {
		return strings.TrimSpace(f.input.Value())
	}
	return f.choice.Value()
}

func (f field) setErr(msg string) {
	if f.input != nil {
		f.input.Err = msg
		return
	}
	f.choice.Err = msg
}

func (f field) view() string {
	if f.input != nil {
		return f.input.View()
	}
	return f.choice.View()
}

// values are the trimmed field values of a submitted form.
type values map[string]string

// number parses a whole-number field, reporting failures as a field error.
func (v values) number(key string) (int, error) {
	n, err := strconv.Atoi(v[key])
	if err != nil {
		return 0, &roster.ValidationError{Fields: []roster.FieldError{
			{Field: key, Message: "must be a whole number"},
		}}
	}
	return n, nil
}

// Form is a screen of labelled fields. Enter on the last field submits; on
// success the form pops itself, otherwise errors are shown inline and the
// roster is left untouched.
type Form struct {
	title   string
	fields  []field
	focus   int
	err     string
	submit  func(ctx context.Context, v values) error
	changed func(f *Form, key string)
}

var _ screen.Screen = (*Form)(nil)

func newForm(title string, fields []field, submit func(context.Context, values) error) *Form {
	f := &Form{title: title, fields: fields, submit: submit}
	f.focusField(0)
	return f
}

func (f *Form) Init() tea.Cmd {
	return f.focusField(f.focus)
}

func (f *Form) Title() string {
	return f.title
}

// field returns the field with the given key.
func (f *Form) field(key string) (field, bool) {
	for _, fl := range f.fields {
		if fl.key == key {
			return fl, true
		}
	}
	return field{}, false
}

func (f *Form) focusField(i int) tea.Cmd {
	for _, fl := range f.fields {
		if fl.input != nil {
			fl.input.Blur()
		} else {
			fl.choice.Focused = false
		}
	}
	f.focus = i
	fl := f.fields[i]
	if fl.input != nil {
		return fl.input.Focus()
	}
	fl.choice.Focused = true
	return nil
}

func (f *Form) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if in := f.fields[f.focus].input; in != nil {
			updated, cmd := in.Update(msg)
			*in = updated
			return f, cmd
		}
		return f, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return f, f.focusField((f.focus + 1) % len(f.fields))
	case "shift+tab", "up":
		return f, f.focusField((f.focus - 1 + len(f.fields)) % len(f.fields))
	case "enter":
		if f.focus < len(f.fields)-1 {
			return f, f.focusField(f.focus + 1)
		}
		return f, f.save()
	case "ctrl+s":
		return f, f.save()
	}

	fl := f.fields[f.focus]
	if fl.input != nil {
		updated, cmd := fl.input.Update(msg)
		*fl.input = updated
		return f, cmd
	}
	before := fl.choice.Value()
	updated, cmd := fl.choice.Update(msg)
	*fl.choice = updated
	if f.changed != nil && fl.choice.Value() != before {
		f.changed(f, fl.key)
	}
	return f, cmd
}

// save submits the form and pops it on success.
func (f *Form) save() tea.Cmd {
	f.err = ""
	v := make(values, len(f.fields))
	for _, fl := range f.fields {
		fl.setErr("")
		v[fl.key] = fl.value()
	}

	err := f.submit(context.Background(), v)
	if err == nil {
		return router.Pop()
	}

	var verr *roster.ValidationError
	if !errors.As(err, &verr) {
		f.err = err.Error()
		return nil
	}
	var unplaced []string
	for _, fe := range verr.Fields {
		if fl, ok := f.field(fe.Field); ok {
			fl.setErr(fe.Message)
		} else {
			unplaced = append(unplaced, fe.Field+": "+fe.Message)
		}
	}
	if len(unplaced) > 0 {
		f.err = strings.Join(unplaced, "; ")
	}
	return nil
}

func (f *Form) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(f.title))
	b.WriteString("\n\n")
	for i, fl := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = theme.Selected.Render("▸ ")
		}
		b.WriteString(marker + fl.view())
		b.WriteString("\n\n")
	}
	if f.err != "" {
		b.WriteString(theme.ErrorText.Render("✗ " + f.err))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("Enter on the last field or Ctrl+S saves. Esc cancels."))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (f *Form) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Next/Save"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}
