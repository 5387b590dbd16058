package auth

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/screens/screentest"
	"github.com/abhisek/lingualearn/internal/session"
)

func send(s screen.Screen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func fill(s screen.Screen, values ...string) {
	for i, v := range values {
		send(s, screentest.Type(v)...)
		if i < len(values)-1 {
			send(s, screentest.Key("tab"))
		}
	}
}

func TestRegister_Success(t *testing.T) {
	e := screentest.Engine(t)
	s := NewRegister(e)

	fill(s, "ana", "ana@example.com", "pw", "pw")
	send(s, screentest.Key("enter"))

	if e.User() == nil || e.User().Username != "ana" {
		t.Fatalf("expected user ana, got %+v", e.User())
	}
	if e.User().Email != "ana@example.com" {
		t.Errorf("Email = %q", e.User().Email)
	}
	if got := e.Session().Screen(); got != session.ScreenLanguageSelection {
		t.Errorf("screen = %v, want languageSelection", got)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		field  string
	}{
		{"missing username", []string{"", "a@b.co", "pw", "pw"}, "username"},
		{"bad email", []string{"ana", "not-an-email", "pw", "pw"}, "email"},
		{"missing password", []string{"ana", "a@b.co", "", ""}, "password"},
		{"mismatch", []string{"ana", "a@b.co", "pw", "px"}, "confirm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := screentest.Engine(t)
			s := NewRegister(e)
			fill(s, tt.values...)
			send(s, screentest.Key("enter"))

			if e.User() != nil {
				t.Fatal("user should not be registered")
			}
			if field, msg := s.form.Error(); field != tt.field || msg == "" {
				t.Fatalf("error on %q (%q), want field %q", field, msg, tt.field)
			}
			if got := s.form.FocusedName(); got != tt.field {
				t.Errorf("focus on %q, want %q", got, tt.field)
			}
		})
	}
}

func TestEnterMovesToNextField(t *testing.T) {
	s := NewRegister(screentest.Engine(t))
	send(s, screentest.Key("enter"))
	if s.form.FocusedName() != "email" {
		t.Errorf("focus on %q, want email", s.form.FocusedName())
	}
	send(s, screentest.Key("up"))
	if s.form.FocusedName() != "username" {
		t.Errorf("focus on %q, want username", s.form.FocusedName())
	}
}

func TestLogin_Success(t *testing.T) {
	e := screentest.SignedIn(t)
	e.Navigate(session.ScreenLogin)

	s := NewLogin(e)
	fill(s, "ana", "anything")
	send(s, screentest.Key("enter"))

	if got := e.Session().Screen(); got != session.ScreenLanguageDashboard {
		t.Errorf("screen = %v, want languageDashboard", got)
	}
	if _, msg := s.form.Error(); msg != "" {
		t.Errorf("unexpected form error %q", msg)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	e := screentest.Engine(t)
	e.Navigate(session.ScreenLogin)

	s := NewLogin(e)
	fill(s, "bob", "pw")
	send(s, screentest.Key("enter"))

	if got := e.Session().Screen(); got != session.ScreenLogin {
		t.Errorf("screen = %v, want login", got)
	}
	if !strings.Contains(s.View(80, 24), "User not found") {
		t.Error("expected inline failure message")
	}
}

func TestLogin_RequiresPassword(t *testing.T) {
	e := screentest.SignedIn(t)
	e.Navigate(session.ScreenLogin)

	s := NewLogin(e)
	fill(s, "ana", "")
	send(s, screentest.Key("enter"))

	if field, _ := s.form.Error(); field != "password" {
		t.Fatalf("error on %q, want password", field)
	}
	if got := e.Session().Screen(); got != session.ScreenLogin {
		t.Errorf("screen = %v, want login", got)
	}
}

func TestSwitchBetweenForms(t *testing.T) {
	e := screentest.Engine(t)

	cmd := send(NewLogin(e), tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if got, ok := screentest.Navigation(cmd); !ok || got != session.ScreenRegister {
		t.Errorf("ctrl+r: got %v (%v), want register", got, ok)
	}

	cmd = send(NewRegister(e), tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	if got, ok := screentest.Navigation(cmd); !ok || got != session.ScreenLogin {
		t.Errorf("ctrl+l: got %v (%v), want login", got, ok)
	}
}

func TestBackAndTyping(t *testing.T) {
	e := screentest.Engine(t)
	for _, s := range []interface {
		screen.BackProvider
		screen.TextEntry
	}{NewLogin(e), NewRegister(e)} {
		if s.Back() != session.ScreenWelcome {
			t.Errorf("%T.Back() = %v, want welcome", s, s.Back())
		}
		if !s.Typing() {
			t.Errorf("%T should capture typing", s)
		}
	}
}
