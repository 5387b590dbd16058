// Package screentest builds engines and key messages for screen tests.
package screentest

import (
	"context"
	"io"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/notify"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/session"
)

// Now is the fixed clock used by engines built here.
var Now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.Local)

// Users is an in-memory engine.Persister.
type Users struct {
	Saved map[string]*progress.User
}

func (u *Users) Load(_ context.Context, key string) (*progress.User, error) {
	return u.Saved[key], nil
}

func (u *Users) Save(_ context.Context, key string, usr *progress.User) error {
	if u.Saved == nil {
		u.Saved = make(map[string]*progress.User)
	}
	u.Saved[key] = usr
	return nil
}

type heldTimer struct{}

func (heldTimer) Stop() bool { return true }

// Engine returns an engine over Spanish and French with no user.
// Notifications never expire.
func Engine(t *testing.T) *engine.Engine {
	t.Helper()
	q := notify.New(notify.WithScheduler(func(time.Duration, func()) notify.Timer {
		return heldTimer{}
	}))
	return engine.New(engine.Options{
		Languages: []catalog.Language{"Spanish", "French"},
		Users:     &Users{},
		Queue:     q,
		Now:       func() time.Time { return Now },
		Warn:      io.Discard,
		SessionID: "screen-test",
	})
}

// SignedIn returns an engine with user "ana" registered and Spanish selected.
func SignedIn(t *testing.T) *engine.Engine {
	t.Helper()
	e := Engine(t)
	e.RegisterUser("ana", "secret", "ana@example.com")
	if err := e.SelectLanguage("Spanish"); err != nil {
		t.Fatalf("SelectLanguage: %v", err)
	}
	return e
}

// Key builds a key press for a named key such as "enter" or "esc", or a
// single printable character.
func Key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Type returns one key press per rune of s.
func Type(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// Navigation runs cmd and returns the screen it navigates to.
// ok is false if cmd is nil or emits something else.
func Navigation(cmd tea.Cmd) (session.Screen, bool) {
	if cmd == nil {
		return 0, false
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok {
		return 0, false
	}
	return msg.Screen, true
}
