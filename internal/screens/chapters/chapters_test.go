package chapters

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/curriculum"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/router"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
)

func testEnv(t *testing.T, seed bool) *screen.Env {
	t.Helper()
	repo := roster.NewRepository(journal.Nop{})
	if seed {
		if err := repo.Load(context.Background(), roster.DefaultSeed()); err != nil {
			t.Fatal(err)
		}
	}
	return &screen.Env{Repo: repo, Filter: &screen.Filter{}}
}

func TestView(t *testing.T) {
	s := New(testEnv(t, true))
	view := s.View(120, 40)
	for _, want := range []string{"4 chapters, 1 students", "Number", "Algebra", "Geometry", "Statistics", "85.0%", "45.0%", "30% of exam", "Place Value & Ordering"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_EmptyRosterShowsNoData(t *testing.T) {
	s := New(testEnv(t, false))
	if !strings.Contains(s.View(120, 40), "No data") {
		t.Error("expected No data for an empty roster")
	}
}

func TestEnterTogglesFilter(t *testing.T) {
	env := testEnv(t, true)
	s := New(env)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if c := env.Filter.Chapter(); c == nil || *c != curriculum.Algebra {
		t.Fatalf("filter = %v, want Algebra", c)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if env.Filter.Chapter() != nil {
		t.Error("second enter should clear the filter")
	}
}

func TestNewSelectsFilteredChapter(t *testing.T) {
	env := testEnv(t, true)
	env.Filter.Toggle(curriculum.Statistics)
	if s := New(env); s.cursor != 3 {
		t.Errorf("cursor = %d, want 3", s.cursor)
	}
}

func TestStudentsShortcut(t *testing.T) {
	s := New(testEnv(t, true))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a push to the student list")
	}
}
