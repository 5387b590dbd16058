package vocabulary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// AddWordScreen is an overlay form that saves a new word.
type AddWordScreen struct {
	engine *engine.Engine
	form   components.Form
}

var (
	_ screen.Screen    = (*AddWordScreen)(nil)
	_ screen.TextEntry = (*AddWordScreen)(nil)
)

// NewAddWord creates the add-word form.
func NewAddWord(e *engine.Engine) *AddWordScreen {
	return &AddWordScreen{
		engine: e,
		form: components.NewForm(
			components.FormField{Name: "word", Input: components.NewTextInput("Word", "hola", 64)},
			components.FormField{Name: "translation", Input: components.NewTextInput("Translation", "hello", 64)},
			components.FormField{Name: "context", Input: components.NewTextInput("Context", "optional example", 120)},
		),
	}
}

func (s *AddWordScreen) Init() tea.Cmd { return nil }

func (s *AddWordScreen) Title() string { return "Add Word" }

func (s *AddWordScreen) Typing() bool { return true }

func (s *AddWordScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *AddWordScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	submit, cmd := s.form.Update(msg)
	if !submit {
		return s, cmd
	}

	word := strings.TrimSpace(s.form.Value("word"))
	translation := strings.TrimSpace(s.form.Value("translation"))
	switch {
	case word == "":
		return s, s.form.SetError("word", "is required")
	case translation == "":
		return s, s.form.SetError("translation", "is required")
	}
	if err := s.engine.AddVocabularyWord(word, translation, strings.TrimSpace(s.form.Value("context"))); err != nil {
		return s, s.form.SetError("", err.Error())
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *AddWordScreen) View(width, height int) string {
	title := theme.Title.Render("New word for " + string(s.engine.Session().Language()))
	card := theme.Card.Width(min(width-4, 60)).Render(s.form.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", card))
}
