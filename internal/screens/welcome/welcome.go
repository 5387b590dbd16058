package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

// sparkle frames cycle beside the banner
var sparkleFrames = []string{"★", "✦", "✧"}

type tickMsg time.Time

// WelcomeScreen is the landing screen for signed-out learners.
type WelcomeScreen struct {
	menu      components.Menu
	returning string
	tickCount int
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. A saved learner is greeted by name.
func New(e *engine.Engine) *WelcomeScreen {
	w := &WelcomeScreen{}
	if u := e.User(); u != nil {
		w.returning = u.Username
	}

	w.menu = components.NewMenu([]components.MenuItem{
		{Label: "Log in", Action: func() tea.Cmd { return router.Navigate(session.ScreenLogin) }},
		{Label: "Create account", Action: func() tea.Cmd { return router.Navigate(session.ScreenRegister) }},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "l":
			return w, router.Navigate(session.ScreenLogin)
		case "r":
			return w, router.Navigate(session.ScreenRegister)
		}
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "l", Description: "Log in"},
		{Key: "r", Description: "Register"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
	accent := lipgloss.NewStyle().Foreground(theme.Accent)

	banner := RenderBanner(width)
	lines := strings.Split(banner, "\n")
	if n := len(lines); n > 1 {
		lines[n-2] = accent.Render(sparkle) + "  " + lines[n-2] + "  " + accent.Render(sparkle)
	}

	sections := []string{
		strings.Join(lines, "\n"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Learn a language, one lesson at a time."),
	}

	if w.returning != "" {
		sections = append(sections, "",
			theme.Hint.Render(fmt.Sprintf("Welcome back, %s. Log in to continue.", w.returning)))
	}

	sections = append(sections, "", theme.Card.Render(strings.TrimRight(w.menu.View(), "\n")))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
