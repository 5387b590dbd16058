// Package lesson presents the exercises of the active lesson one at a time.
package lesson

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// LessonScreen answers the engine's current exercise and hands the result
// back to it. The engine decides what comes next.
type LessonScreen struct {
	engine     *engine.Engine
	exerciseID string
	mc         components.MultiChoice
	input      components.TextInput
}

var (
	_ screen.Screen       = (*LessonScreen)(nil)
	_ screen.BackProvider = (*LessonScreen)(nil)
	_ screen.TextEntry    = (*LessonScreen)(nil)
)

// New creates a LessonScreen for the engine's active lesson.
func New(e *engine.Engine) *LessonScreen {
	s := &LessonScreen{engine: e}
	s.prepare()
	return s
}

// prepare rebuilds the answer widgets when the current exercise changed.
func (s *LessonScreen) prepare() tea.Cmd {
	ex := s.engine.Session().Exercise()
	if ex == nil {
		s.exerciseID = ""
		return nil
	}
	if ex.ID == s.exerciseID {
		return nil
	}
	s.exerciseID = ex.ID

	switch ex.Type {
	case catalog.ExerciseMultipleChoice:
		correct, _ := strconv.Atoi(ex.CorrectAnswer)
		s.mc = components.NewMultiChoice(ex.Prompt, ex.Options, correct)
	case catalog.ExerciseTranslation:
		s.input = components.NewTextInput("", "Type your translation here", 120)
		return s.input.Focus()
	case catalog.ExerciseListening:
		s.input = components.NewTextInput("", "Type what you hear", 120)
		return s.input.Focus()
	}
	return nil
}

func (s *LessonScreen) Init() tea.Cmd { return nil }

func (s *LessonScreen) Title() string {
	if l := s.engine.Session().Lesson(); l != nil {
		return l.Title
	}
	return "Lesson"
}

func (s *LessonScreen) Back() session.Screen { return session.ScreenLanguageDashboard }

// Typing reports whether the current exercise takes free text.
func (s *LessonScreen) Typing() bool {
	ex := s.engine.Session().Exercise()
	return ex != nil && (ex.Type == catalog.ExerciseTranslation || ex.Type == catalog.ExerciseListening)
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	ex := s.engine.Session().Exercise()
	if ex != nil && ex.Type == catalog.ExerciseMultipleChoice {
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave lesson"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave lesson"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	ex := s.engine.Session().Exercise()
	if ex == nil {
		return s, nil
	}

	switch ex.Type {
	case catalog.ExerciseMultipleChoice:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s, s.submit(ex, strconv.Itoa(s.mc.ChosenIndex))
		}
		return s, cmd

	case catalog.ExerciseTranslation, catalog.ExerciseListening:
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			return s, s.submit(ex, s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	default:
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && (kmsg.String() == "enter" || kmsg.String() == "space") {
			return s, s.submit(ex, "")
		}
	}
	return s, nil
}

// submit grades the answer and reports it to the engine.
func (s *LessonScreen) submit(ex *catalog.Exercise, answer string) tea.Cmd {
	s.engine.CompleteExercise(ex.ID, engine.Grade(ex, answer))
	return s.prepare()
}

func (s *LessonScreen) View(width, height int) string {
	l := s.engine.Session().Lesson()
	ex := s.engine.Session().Exercise()
	if l == nil || ex == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No lesson in progress."))
	}

	var b strings.Builder

	idx := l.ExerciseIndex(ex.ID)
	infoLeft := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %s · %s", l.Title, l.Difficulty))
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Exercise %d/%d  %s %d", idx+1, len(l.Exercises),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"), l.CompletedExercises()))
	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString(center.Foreground(theme.Accent).Render(ex.Type.DisplayName()))
	b.WriteString("\n\n")

	switch ex.Type {
	case catalog.ExerciseMultipleChoice:
		b.WriteString(center.Render(s.mc.View()))
	case catalog.ExerciseTranslation:
		b.WriteString(center.Foreground(theme.Text).Bold(true).Render(ex.Prompt))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.input.View()))
	case catalog.ExerciseListening:
		b.WriteString(center.Foreground(theme.Text).Bold(true).Render(ex.Prompt))
		b.WriteString("\n\n")
		b.WriteString(center.Render("🔊  Listen and type what you hear"))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.input.View()))
	case catalog.ExerciseSpeaking:
		b.WriteString(center.Foreground(theme.Text).Bold(true).Render(ex.Prompt))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Hint.Render("🎤  Say it out loud, then press Enter")))
	default:
		b.WriteString(center.Foreground(theme.Text).Bold(true).Render(ex.Prompt))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Hint.Render("Match the pairs, then press Enter")))
	}

	return b.String()
}
