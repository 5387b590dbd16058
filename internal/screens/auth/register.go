package auth

import (
	"strings"

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

// RegisterScreen creates a new learner, replacing any saved one.
type RegisterScreen struct {
	engine *engine.Engine
	form   components.Form
}

var (
	_ screen.Screen          = (*RegisterScreen)(nil)
	_ screen.BackProvider    = (*RegisterScreen)(nil)
	_ screen.KeyHintProvider = (*RegisterScreen)(nil)
	_ screen.TextEntry       = (*RegisterScreen)(nil)
)

// NewRegister creates the sign-up form.
func NewRegister(e *engine.Engine) *RegisterScreen {
	return &RegisterScreen{
		engine: e,
		form: components.NewForm(
			components.FormField{Name: "username", Input: components.NewTextInput("Username", "your name", 32)},
			components.FormField{Name: "email", Input: components.NewTextInput("Email", "you@example.com", 64)},
			components.FormField{Name: "password", Input: components.NewPasswordInput("Password")},
			components.FormField{Name: "confirm", Input: components.NewPasswordInput("Confirm")},
		),
	}
}

func (s *RegisterScreen) Init() tea.Cmd { return nil }

func (s *RegisterScreen) Title() string { return "Create Account" }

func (s *RegisterScreen) Back() session.Screen { return session.ScreenWelcome }

func (s *RegisterScreen) Typing() bool { return true }

func (s *RegisterScreen) KeyHints() []layout.KeyHint {
	return formHints(layout.KeyHint{Key: "Ctrl+L", Description: "Log in"})
}

func (s *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "ctrl+l" {
		return s, router.Navigate(session.ScreenLogin)
	}

	submit, cmd := s.form.Update(msg)
	if !submit {
		return s, cmd
	}

	username := strings.TrimSpace(s.form.Value("username"))
	email := strings.TrimSpace(s.form.Value("email"))
	password := s.form.Value("password")
	if err := engine.ValidateRegistration(username, email, password, s.form.Value("confirm")); err != nil {
		return s, showError(&s.form, err)
	}
	s.engine.RegisterUser(username, password, email)
	return s, showError(&s.form, nil)
}

func (s *RegisterScreen) View(width, height int) string {
	title := theme.Title.Render("Start learning")
	var hint string
	if u := s.engine.User(); u != nil {
		hint = theme.Hint.Render("Registering replaces the saved learner " + u.Username + ".")
	} else {
		hint = theme.Hint.Render("Already registered? Press Ctrl+L to log in.")
	}
	card := theme.Card.Width(min(width-4, 56)).Render(s.form.View())
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", card, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
