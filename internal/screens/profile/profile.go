// Package profile shows the learner's account, per-language standing and
// editable settings.
package profile

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

const goalStep = 5

const (
	rowDailyGoal = iota
	rowNotifications
	rowDarkMode
	rowCount
)

// ProfileScreen edits a draft of the settings; nothing changes until saved.
type ProfileScreen struct {
	engine  *engine.Engine
	history router.Factory
	draft   progress.Settings
	cursor  int
}

var (
	_ screen.Screen       = (*ProfileScreen)(nil)
	_ screen.BackProvider = (*ProfileScreen)(nil)
)

// New creates the profile screen. history builds the event history
// overlay; nil hides it.
func New(e *engine.Engine, history router.Factory) *ProfileScreen {
	s := &ProfileScreen{engine: e, history: history, draft: progress.DefaultSettings()}
	if u := e.User(); u != nil {
		s.draft = u.Settings
	}
	return s
}

func (s *ProfileScreen) Init() tea.Cmd { return nil }

func (s *ProfileScreen) Title() string { return "Profile" }

func (s *ProfileScreen) Back() session.Screen {
	if s.engine.Session().Language() != "" {
		return session.ScreenLanguageDashboard
	}
	return session.ScreenLanguageSelection
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→/Space", Description: "Change"},
		{Key: "s", Description: "Save"},
		{Key: "o", Description: "Log out"},
	}
	if s.history != nil {
		hints = append(hints, layout.KeyHint{Key: "h", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Dirty reports whether the draft differs from the saved settings.
func (s *ProfileScreen) Dirty() bool {
	u := s.engine.User()
	return u != nil && u.Settings != s.draft
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.cursor = (s.cursor - 1 + rowCount) % rowCount
	case "down", "j":
		s.cursor = (s.cursor + 1) % rowCount
	case "left", "-":
		s.change(-1)
	case "right", "+":
		s.change(1)
	case "space", "enter":
		s.change(1)
	case "s":
		if s.engine.UpdateSettings(s.draft) != nil {
			if u := s.engine.User(); u != nil {
				s.draft = u.Settings
			}
		}
	case "o":
		return s, router.Navigate(session.ScreenWelcome)
	case "h":
		if s.history != nil {
			overlay := s.history()
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: overlay} }
		}
	}
	return s, nil
}

// change adjusts the setting under the cursor in direction dir.
func (s *ProfileScreen) change(dir int) {
	switch s.cursor {
	case rowDailyGoal:
		s.draft.DailyGoal = min(max(s.draft.DailyGoal+dir*goalStep, 1), engine.MaxDailyGoal)
	case rowNotifications:
		s.draft.Notifications = !s.draft.Notifications
	case rowDarkMode:
		s.draft.DarkMode = !s.draft.DarkMode
	}
}

func (s *ProfileScreen) View(width, height int) string {
	u := s.engine.User()
	if u == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Log in to see your profile."))
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	account := strings.Join([]string{
		theme.Label.Render("Username") + value.Render(u.Username),
		theme.Label.Render("Email") + value.Render(u.Email),
		theme.Label.Render("Streak") + value.Render(fmt.Sprintf("%d days", u.Streak)),
		theme.Label.Render("Last login") + value.Render(u.LastLogin.Format("Mon Jan 2 15:04")),
		theme.Label.Render("Total XP") + value.Render(fmt.Sprint(u.TotalXP())),
	}, "\n")

	var langs []string
	keys := make([]catalog.Language, 0, len(u.Progress))
	for lang := range u.Progress {
		keys = append(keys, lang)
	}
	slices.Sort(keys)
	for _, lang := range keys {
		p := u.Progress[lang]
		if p == nil {
			continue
		}
		langs = append(langs, fmt.Sprintf("%-10s Lv %-3d %5d XP  %2d lessons  %3d words",
			lang, p.Level, p.XP, len(p.CompletedLessons), len(p.Vocabulary)))
	}
	if len(langs) == 0 {
		langs = append(langs, dim.Render("No languages started yet."))
	}

	rows := []string{
		fmt.Sprintf("Daily goal     ‹ %d min ›", s.draft.DailyGoal),
		fmt.Sprintf("Notifications  %s", onOff(s.draft.Notifications)),
		fmt.Sprintf("Dark mode      %s", onOff(s.draft.DarkMode)),
	}
	for i := range rows {
		if i == s.cursor {
			rows[i] = theme.Selected.Render("▸ " + rows[i])
		} else {
			rows[i] = theme.Unselected.Render("  " + rows[i])
		}
	}
	settings := strings.Join(rows, "\n")
	if s.Dirty() {
		settings += "\n\n" + lipgloss.NewStyle().Foreground(theme.Warning).Render("Unsaved changes. Press s to save.")
	}

	cw := min(width-4, 64)
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Card.Width(cw).Render(account),
		theme.Card.Width(cw).Render(dim.Render("Languages")+"\n"+strings.Join(langs, "\n")),
		theme.Card.Width(cw).Render(dim.Render("Settings")+"\n"+settings),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
