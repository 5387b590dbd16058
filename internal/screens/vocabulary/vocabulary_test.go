package vocabulary

import (
	"strings"
	"testing"

	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screens/screentest"
	"github.com/abhisek/lingualearn/internal/session"
)

func withWords(t *testing.T, words ...string) *engine.Engine {
	t.Helper()
	e := screentest.SignedIn(t)
	for _, w := range words {
		if err := e.AddVocabularyWord(w, w+"-en", ""); err != nil {
			t.Fatalf("AddVocabularyWord: %v", err)
		}
	}
	return e
}

func TestEmptyList(t *testing.T) {
	s := New(screentest.SignedIn(t))
	if s.Selected() != -1 {
		t.Errorf("Selected() = %d, want -1", s.Selected())
	}
	if !strings.Contains(s.View(80, 24), "No words yet") {
		t.Error("expected empty message")
	}
}

func TestScrollAndReview(t *testing.T) {
	e := withWords(t, "hola", "adiós", "gracias")
	s := New(e)

	s.Update(screentest.Key("down"))
	if s.Selected() != 1 {
		t.Fatalf("Selected() = %d, want 1", s.Selected())
	}

	s.Update(screentest.Key("y"))
	p := e.CurrentProgress()
	if p.Vocabulary[1].MasteryLevel != 1 {
		t.Errorf("mastery = %d, want 1", p.Vocabulary[1].MasteryLevel)
	}
	if len(p.Vocabulary[1].ReviewDates) != 1 {
		t.Errorf("review dates = %d, want 1", len(p.Vocabulary[1].ReviewDates))
	}

	s.Update(screentest.Key("n"))
	if p.Vocabulary[1].MasteryLevel != 0 {
		t.Errorf("mastery after miss = %d, want 0", p.Vocabulary[1].MasteryLevel)
	}
}

func TestDueFilterHidesTranslationUntilRevealed(t *testing.T) {
	e := withWords(t, "hola", "gracias")
	s := New(e)

	s.Update(screentest.Key("tab"))
	if s.filter != filterDue {
		t.Fatal("tab should switch to due words")
	}
	if strings.Contains(s.View(100, 30), "hola-en") {
		t.Error("translation should be hidden before reveal")
	}
	s.Update(screentest.Key("space"))
	if !strings.Contains(s.View(100, 30), "hola-en") {
		t.Error("translation should show after reveal")
	}

	// A reviewed word is scheduled ahead and leaves the due list.
	s.Update(screentest.Key("y"))
	if got := len(s.rows()); got != 1 {
		t.Errorf("due rows = %d, want 1", got)
	}
	if s.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", s.Selected())
	}
}

func TestAddWordOverlay(t *testing.T) {
	e := screentest.SignedIn(t)
	s := New(e)

	_, cmd := s.Update(screentest.Key("a"))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	add := push.Screen.(*AddWordScreen)

	for _, m := range screentest.Type("hola") {
		add.Update(m)
	}
	add.Update(screentest.Key("tab"))
	for _, m := range screentest.Type("hello") {
		add.Update(m)
	}
	add.Update(screentest.Key("tab"))
	_, cmd = add.Update(screentest.Key("enter"))

	if cmd == nil {
		t.Fatal("expected pop command after save")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	voc := e.CurrentProgress().Vocabulary
	if len(voc) != 1 || voc[0].Word != "hola" || voc[0].Translation != "hello" {
		t.Errorf("vocabulary = %+v", voc)
	}
}

func TestAddWordRequiresTranslation(t *testing.T) {
	e := screentest.SignedIn(t)
	add := NewAddWord(e)

	for _, m := range screentest.Type("hola") {
		add.Update(m)
	}
	add.Update(screentest.Key("enter"))
	add.Update(screentest.Key("enter"))
	add.Update(screentest.Key("enter"))

	if field, _ := add.form.Error(); field != "translation" {
		t.Errorf("error on %q, want translation", field)
	}
	if len(e.CurrentProgress().Vocabulary) != 0 {
		t.Error("word should not be saved")
	}
}

func TestMasteryDots(t *testing.T) {
	got := masteryDots(2)
	if strings.Count(got, "●") != 2 || strings.Count(got, "○") != 3 {
		t.Errorf("masteryDots(2) = %q", got)
	}
}

func TestBack(t *testing.T) {
	if got := New(screentest.SignedIn(t)).Back(); got != session.ScreenLanguageDashboard {
		t.Errorf("Back() = %v, want languageDashboard", got)
	}
}
