package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screens/auth"
	"github.com/abhisek/lingualearn/internal/screens/history"
	"github.com/abhisek/lingualearn/internal/screens/lesson"
	"github.com/abhisek/lingualearn/internal/screens/screentest"
	"github.com/abhisek/lingualearn/internal/screens/welcome"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/store"
)

type noEvents struct{}

func (noEvents) QueryProgressEvents(context.Context, store.QueryOpts, ...string) ([]store.ProgressEventRecord, error) {
	return nil, nil
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestInitShowsEngineScreen(t *testing.T) {
	m := newAppModel(screentest.Engine(t), nil)
	m.Init()

	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active = %T, want welcome", m.router.Active())
	}
}

func TestNavigateMsgMovesEngine(t *testing.T) {
	e := screentest.Engine(t)
	m := newAppModel(e, nil)
	m.Init()

	m, _ = update(m, router.NavigateMsg{Screen: session.ScreenLogin})

	if e.Session().Screen() != session.ScreenLogin {
		t.Errorf("engine screen = %v, want login", e.Session().Screen())
	}
	if _, ok := m.router.Active().(*auth.LoginScreen); !ok {
		t.Errorf("active = %T, want login", m.router.Active())
	}
}

func TestWelcomeShortcutNavigates(t *testing.T) {
	e := screentest.Engine(t)
	m := newAppModel(e, nil)
	m.Init()

	_, cmd := update(m, screentest.Key("r"))
	got, ok := screentest.Navigation(cmd)
	if !ok || got != session.ScreenRegister {
		t.Errorf("got %v (%v), want register", got, ok)
	}
}

func TestEscFollowsBack(t *testing.T) {
	e := screentest.Engine(t)
	m := newAppModel(e, nil)
	m.Init()
	m, _ = update(m, router.NavigateMsg{Screen: session.ScreenLogin})

	m, _ = update(m, screentest.Key("esc"))

	if e.Session().Screen() != session.ScreenWelcome {
		t.Errorf("engine screen = %v, want welcome", e.Session().Screen())
	}
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want welcome", m.router.Active())
	}
}

func TestEngineMoveRebuildsView(t *testing.T) {
	e := screentest.SignedIn(t)
	m := newAppModel(e, nil)
	m.Init()

	m, _ = update(m, screentest.Key("enter"))

	if e.Session().Screen() != session.ScreenLesson {
		t.Fatalf("engine screen = %v, want lesson", e.Session().Screen())
	}
	if _, ok := m.router.Active().(*lesson.LessonScreen); !ok {
		t.Errorf("active = %T, want lesson", m.router.Active())
	}
}

func TestHistoryOverlay(t *testing.T) {
	e := screentest.SignedIn(t)
	m := newAppModel(e, noEvents{})
	m.Init()

	m, cmd := update(m, screentest.Key("h"))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	m, _ = update(m, cmd())
	if _, ok := m.router.Active().(*history.HistoryScreen); !ok {
		t.Fatalf("active = %T, want history", m.router.Active())
	}

	m, cmd = update(m, screentest.Key("esc"))
	m, _ = update(m, cmd())
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1 after esc", m.router.Depth())
	}
	if e.Session().Screen() != session.ScreenLanguageDashboard {
		t.Errorf("esc on an overlay should not move the engine, got %v", e.Session().Screen())
	}
}

func TestNotificationsRespectSettings(t *testing.T) {
	e := screentest.SignedIn(t)
	m := newAppModel(e, nil)
	m.Init()
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if !strings.Contains(m.notices(), "Spanish") {
		t.Fatalf("expected language notification, got %q", m.notices())
	}

	s := e.User().Settings
	s.Notifications = false
	if err := e.UpdateSettings(s); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if got := m.notices(); got != "" {
		t.Errorf("notifications should be hidden, got %q", got)
	}
}

func TestDismissNewestNotification(t *testing.T) {
	e := screentest.SignedIn(t)
	m := newAppModel(e, nil)
	m.Init()

	before := len(e.Notifications())
	if before == 0 {
		t.Fatal("expected notifications after sign-in")
	}
	update(m, screentest.Key("x"))
	if got := len(e.Notifications()); got != before-1 {
		t.Errorf("notifications = %d, want %d", got, before-1)
	}
}

func TestViewFrame(t *testing.T) {
	e := screentest.SignedIn(t)
	m := newAppModel(e, nil)
	m.Init()
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.render()
	for _, want := range []string{"LinguaLearn", "Lv 1", "Ctrl+C"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestDarkModeBackground(t *testing.T) {
	e := screentest.SignedIn(t)
	m := newAppModel(e, nil)
	m.Init()

	if m.View().BackgroundColor != nil {
		t.Error("default settings should keep the terminal background")
	}

	s := e.User().Settings
	s.DarkMode = true
	if err := e.UpdateSettings(s); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if m.View().BackgroundColor == nil {
		t.Error("dark mode should set a background color")
	}
}
