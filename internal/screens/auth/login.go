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

// LoginScreen signs in the saved learner.
type LoginScreen struct {
	engine *engine.Engine
	form   components.Form
}

var (
	_ screen.Screen          = (*LoginScreen)(nil)
	_ screen.BackProvider    = (*LoginScreen)(nil)
	_ screen.KeyHintProvider = (*LoginScreen)(nil)
	_ screen.TextEntry       = (*LoginScreen)(nil)
)

// NewLogin creates the sign-in form.
func NewLogin(e *engine.Engine) *LoginScreen {
	return &LoginScreen{
		engine: e,
		form: components.NewForm(
			components.FormField{Name: "username", Input: components.NewTextInput("Username", "your name", 32)},
			components.FormField{Name: "password", Input: components.NewPasswordInput("Password")},
		),
	}
}

func (s *LoginScreen) Init() tea.Cmd { return nil }

func (s *LoginScreen) Title() string { return "Log In" }

func (s *LoginScreen) Back() session.Screen { return session.ScreenWelcome }

func (s *LoginScreen) Typing() bool { return true }

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return formHints(layout.KeyHint{Key: "Ctrl+R", Description: "Register"})
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "ctrl+r" {
		return s, router.Navigate(session.ScreenRegister)
	}

	submit, cmd := s.form.Update(msg)
	if !submit {
		return s, cmd
	}

	username := strings.TrimSpace(s.form.Value("username"))
	password := s.form.Value("password")
	if err := engine.ValidateLogin(username, password); err != nil {
		return s, showError(&s.form, err)
	}
	// The engine moves the session on success and notifies on failure.
	if err := s.engine.LoginUser(username, password); err != nil {
		return s, s.form.SetError("", "User not found or incorrect password.")
	}
	return s, showError(&s.form, nil)
}

func (s *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Welcome back")
	hint := theme.Hint.Render("No account yet? Press Ctrl+R to register.")
	card := theme.Card.Width(min(width-4, 56)).Render(s.form.View())
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", card, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
