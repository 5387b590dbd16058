package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/screens/screentest"
	"github.com/abhisek/lingualearn/internal/session"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "history" }
func (s *stubScreen) Title() string                           { return "History" }

func TestEnterStartsLesson(t *testing.T) {
	e := screentest.SignedIn(t)
	d := New(e, nil)

	d.Update(screentest.Key("down"))
	d.Update(screentest.Key("enter"))

	if got := e.Session().Screen(); got != session.ScreenLesson {
		t.Fatalf("screen = %v, want lesson", got)
	}
	if got := e.Session().Lesson().ID; got != "Spanish-Basics-2" {
		t.Errorf("lesson = %q, want Spanish-Basics-2", got)
	}
}

func TestTabsCycleCategories(t *testing.T) {
	d := New(screentest.SignedIn(t), nil)
	if d.Category() != catalog.CategoryBasics {
		t.Fatalf("Category() = %v, want Basics", d.Category())
	}

	d.Update(screentest.Key("right"))
	if d.Category() != catalog.CategoryGreetings {
		t.Errorf("after right: %v, want Greetings", d.Category())
	}
	d.Update(screentest.Key("left"))
	d.Update(screentest.Key("left"))
	if d.Category() != catalog.CategoryConversation {
		t.Errorf("after wrap: %v, want Conversation", d.Category())
	}
}

func TestOpensOnFirstUnfinishedCategory(t *testing.T) {
	e := screentest.SignedIn(t)
	p := e.CurrentProgress()
	for i := 1; i <= 5; i++ {
		p.MarkLessonCompleted(catalog.LessonID("Spanish", catalog.CategoryBasics, i))
	}

	d := New(e, nil)
	if d.Category() != catalog.CategoryGreetings {
		t.Errorf("Category() = %v, want Greetings", d.Category())
	}
	if d.done[catalog.CategoryBasics] != 5 {
		t.Errorf("done[Basics] = %d, want 5", d.done[catalog.CategoryBasics])
	}
}

func TestShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want session.Screen
	}{
		{"v", session.ScreenVocabulary},
		{"p", session.ScreenProfile},
		{"l", session.ScreenLanguageSelection},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d := New(screentest.SignedIn(t), nil)
			_, cmd := d.Update(screentest.Key(tt.key))
			if got, ok := screentest.Navigation(cmd); !ok || got != tt.want {
				t.Errorf("%s navigated to %v (%v), want %v", tt.key, got, ok, tt.want)
			}
		})
	}
}

func TestHistoryOverlay(t *testing.T) {
	d := New(screentest.SignedIn(t), nil)
	if _, cmd := d.Update(screentest.Key("h")); cmd != nil {
		t.Error("h without a history factory should do nothing")
	}

	d = New(screentest.SignedIn(t), func() screen.Screen { return &stubScreen{} })
	_, cmd := d.Update(screentest.Key("h"))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestViewShowsStats(t *testing.T) {
	e := screentest.SignedIn(t)
	e.CurrentProgress().AwardXP(30)

	view := New(e, nil).View(100, 40)
	for _, want := range []string{"Spanish", "XP", "70 XP to level 2", "Basics 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLevelFraction(t *testing.T) {
	tests := []struct {
		level, xp int
		want      float64
	}{
		{1, 0, 0},
		{1, 50, 0.5},
		{2, 100, 0},
		{2, 175, 0.75},
		{3, 999, 1},
	}
	for _, tt := range tests {
		p := &progress.LanguageProgress{Level: tt.level, XP: tt.xp}
		if got := levelFraction(p); got != tt.want {
			t.Errorf("levelFraction(L%d, %d XP) = %v, want %v", tt.level, tt.xp, got, tt.want)
		}
	}
}
