// Package app wires the engine, router, and screens into the Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/screens/auth"
	"github.com/abhisek/lingualearn/internal/screens/dashboard"
	"github.com/abhisek/lingualearn/internal/screens/history"
	"github.com/abhisek/lingualearn/internal/screens/languages"
	"github.com/abhisek/lingualearn/internal/screens/lesson"
	"github.com/abhisek/lingualearn/internal/screens/profile"
	"github.com/abhisek/lingualearn/internal/screens/summary"
	"github.com/abhisek/lingualearn/internal/screens/vocabulary"
	"github.com/abhisek/lingualearn/internal/screens/welcome"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// notificationsChangedMsg is sent when a notification appears or expires.
type notificationsChangedMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine *engine.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen factories. events may be nil, which hides
// the history overlay.
func newAppModel(e *engine.Engine, events history.EventQuerier) AppModel {
	var historyView router.Factory
	if events != nil {
		historyView = func() screen.Screen { return history.New(events) }
	}

	factories := map[session.Screen]router.Factory{
		session.ScreenWelcome:           func() screen.Screen { return welcome.New(e) },
		session.ScreenLogin:             func() screen.Screen { return auth.NewLogin(e) },
		session.ScreenRegister:          func() screen.Screen { return auth.NewRegister(e) },
		session.ScreenLanguageSelection: func() screen.Screen { return languages.New(e) },
		session.ScreenLanguageDashboard: func() screen.Screen { return dashboard.New(e, historyView) },
		session.ScreenLesson:            func() screen.Screen { return lesson.New(e) },
		session.ScreenLessonComplete:    func() screen.Screen { return summary.New(e) },
		session.ScreenVocabulary:        func() screen.Screen { return vocabulary.New(e) },
		session.ScreenProfile:           func() screen.Screen { return profile.New(e, historyView) },
	}

	return AppModel{
		engine: e,
		router: router.New(factories),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Sync(m.engine.Session().Screen())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notificationsChangedMsg:
		return m, nil

	case router.NavigateMsg:
		m.engine.Navigate(msg.Screen)
		return m, m.sync()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			if bp, ok := m.router.Active().(screen.BackProvider); ok {
				m.engine.Navigate(bp.Back())
				return m, m.sync()
			}
			return m, nil
		case "x":
			if !m.typing() {
				m.dismissNewest()
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.sync())
}

// sync rebuilds the base view if the engine moved to another screen.
func (m AppModel) sync() tea.Cmd {
	return m.router.Sync(m.engine.Session().Screen())
}

func (m AppModel) typing() bool {
	te, ok := m.router.Active().(screen.TextEntry)
	return ok && te.Typing()
}

func (m AppModel) dismissNewest() {
	items := m.engine.Notifications()
	if len(items) > 0 {
		m.engine.Queue().Dismiss(items[len(items)-1].ID)
	}
}

// headerStats returns the figures for the header, or nil when signed out.
func (m AppModel) headerStats() *layout.HeaderStats {
	u := m.engine.User()
	if u == nil || m.engine.Session().Screen().SignedOut() {
		return nil
	}
	stats := &layout.HeaderStats{Streak: u.Streak}
	if p := m.engine.CurrentProgress(); p != nil {
		stats.Language = string(m.engine.Session().Language())
		stats.Level = p.Level
		stats.XP = p.XP
	}
	return stats
}

func (m AppModel) notices() string {
	if u := m.engine.User(); u != nil && !u.Settings.Notifications {
		return ""
	}
	return components.RenderNotifications(m.engine.Notifications(), m.width)
}

func (m AppModel) keyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if kh, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = kh.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if u := m.engine.User(); u != nil && u.Settings.DarkMode {
		v.BackgroundColor = theme.BgDark
	}

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := m.engine.Session().Screen().Title()
	if active := m.router.Active(); active != nil && active.Title() != "" {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)
	notices := m.notices()
	footer := layout.RenderFooter(m.keyHints(), m.width)

	used := lipgloss.Height(header) + lipgloss.Height(footer)
	if notices != "" {
		used += lipgloss.Height(notices)
	}
	contentHeight := max(m.height-used, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, notices, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. events feeds the history overlay and
// may be nil.
func Run(e *engine.Engine, events history.EventQuerier) error {
	p := tea.NewProgram(newAppModel(e, events))
	e.Queue().OnChange(func() {
		go p.Send(notificationsChangedMsg{})
	})

	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
