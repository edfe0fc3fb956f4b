package profile

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/router"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
)

func testEnv(t *testing.T) *screen.Env {
	t.Helper()
	log := journal.NewLog()
	repo := roster.NewRepository(log)
	if err := repo.Load(context.Background(), roster.DefaultSeed()); err != nil {
		t.Fatal(err)
	}
	return &screen.Env{Repo: repo, Journal: log, Filter: &screen.Filter{}}
}

func TestView(t *testing.T) {
	s := New(testEnv(t), 1)
	view := s.View(120, 40)
	for _, want := range []string{
		"JoAnn Lu",
		"Current B",
		"Target A*",
		"2 grades below target",
		"Performance Overview",
		"67.5%",
		"Needs work",
		"Statistics 45%",
		"Number 85%",
		"Recent Assessments",
		"Recent Activity",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_CompactWidth(t *testing.T) {
	s := New(testEnv(t), 1)
	if !strings.Contains(s.View(80, 60), "Recent Activity") {
		t.Error("compact layout should stack the right column below")
	}
}

func TestView_UnknownStudent(t *testing.T) {
	s := New(testEnv(t), 42)
	if !strings.Contains(s.View(100, 30), "student not found") {
		t.Error("expected a not-found message")
	}
}

func TestView_ReflectsEdits(t *testing.T) {
	env := testEnv(t)
	s := New(env, 1)

	if _, err := env.Repo.UpdateChapter(context.Background(), 1, 4, 82, roster.MasteryAdvanced); err != nil {
		t.Fatal(err)
	}
	view := s.View(120, 40)
	if !strings.Contains(view, "Statistics 82%") {
		t.Error("expected Statistics to move into strengths after the edit")
	}
	if !strings.Contains(view, "45% → 82%") {
		t.Error("expected the chapter update in recent activity")
	}
}

func TestKeysOpenForms(t *testing.T) {
	s := New(testEnv(t), 1)
	for _, k := range []rune{'e', 'u', 'a', 'p'} {
		_, cmd := s.Update(tea.KeyPressMsg{Code: k, Text: string(k)})
		if cmd == nil {
			t.Fatalf("key %q: expected a command", k)
		}
		push, ok := cmd().(router.PushScreenMsg)
		if !ok || push.Screen == nil {
			t.Errorf("key %q: expected a push", k)
		}
	}
}
