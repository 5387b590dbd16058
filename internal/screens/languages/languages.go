// Package languages is the language picker.
package languages

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// LanguagesScreen lists every catalog language with the learner's standing in it.
type LanguagesScreen struct {
	engine *engine.Engine
	menu   components.Menu
}

var (
	_ screen.Screen       = (*LanguagesScreen)(nil)
	_ screen.BackProvider = (*LanguagesScreen)(nil)
)

// New creates the language picker with the selected language highlighted.
func New(e *engine.Engine) *LanguagesScreen {
	s := &LanguagesScreen{engine: e}

	u := e.User()
	var items []components.MenuItem
	selected := 0
	for i, lang := range e.Languages() {
		detail := lang.NativeName()
		if p := u.ProgressFor(lang); p != nil {
			detail += fmt.Sprintf(" · Level %d · %d XP", p.Level, p.XP)
		}
		if u != nil && u.SelectedLanguage == lang {
			selected = i
		}
		items = append(items, components.MenuItem{
			Label:  string(lang),
			Detail: detail,
			Action: func() tea.Cmd {
				// The engine switches to the dashboard on success.
				_ = e.SelectLanguage(lang)
				return nil
			},
		})
	}
	s.menu = components.NewMenu(items)
	if len(items) > 0 {
		s.menu.Selected = selected
	}
	return s
}

func (s *LanguagesScreen) Init() tea.Cmd { return nil }

func (s *LanguagesScreen) Title() string { return "Choose a Language" }

// Back returns to the dashboard when a language is already active.
func (s *LanguagesScreen) Back() session.Screen {
	if s.engine.Session().Language() != "" {
		return session.ScreenLanguageDashboard
	}
	return session.ScreenWelcome
}

func (s *LanguagesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Study"},
		{Key: "p", Description: "Profile"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LanguagesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "p" {
		return s, router.Navigate(session.ScreenProfile)
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LanguagesScreen) View(width, height int) string {
	title := theme.Title.Render("What would you like to learn?")
	sub := theme.Subtitle.Render(fmt.Sprintf("%d languages · %d lessons each",
		len(s.engine.Languages()), s.lessonsPerLanguage()))
	card := theme.Card.Render(strings.TrimRight(s.menu.View(), "\n"))
	content := lipgloss.JoinVertical(lipgloss.Center, title, sub, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LanguagesScreen) lessonsPerLanguage() int {
	langs := s.engine.Languages()
	if len(langs) == 0 {
		return 0
	}
	return s.engine.Catalog().LessonCount(langs[0])
}

// Selected returns the highlighted language.
func (s *LanguagesScreen) Selected() catalog.Language {
	langs := s.engine.Languages()
	if s.menu.Selected < 0 || s.menu.Selected >= len(langs) {
		return ""
	}
	return langs[s.menu.Selected]
}
