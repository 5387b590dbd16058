// Package summary is shown after the last exercise of a lesson.
package summary

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
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// SummaryScreen displays the finished lesson and offers the next one.
type SummaryScreen struct {
	engine *engine.Engine
	lesson *catalog.Lesson
	next   *catalog.Lesson
}

var (
	_ screen.Screen          = (*SummaryScreen)(nil)
	_ screen.KeyHintProvider = (*SummaryScreen)(nil)
	_ screen.BackProvider    = (*SummaryScreen)(nil)
)

// New creates a SummaryScreen for the engine's active lesson.
func New(e *engine.Engine) *SummaryScreen {
	s := &SummaryScreen{engine: e, lesson: e.Session().Lesson()}
	if s.lesson != nil {
		lessons := e.Catalog().Lessons(e.Session().Language(), s.lesson.Category)
		for i, l := range lessons {
			if l.ID == s.lesson.ID && i+1 < len(lessons) {
				s.next = lessons[i+1]
			}
		}
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Complete"
}

func (s *SummaryScreen) Back() session.Screen { return session.ScreenLanguageDashboard }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.next != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next lesson"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Dashboard"})
	}
	return append(hints,
		layout.KeyHint{Key: "r", Description: "Retry"},
		layout.KeyHint{Key: "Esc", Description: "Dashboard"},
	)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.lesson == nil {
		return s, nil
	}
	switch kmsg.String() {
	case "enter":
		if s.next == nil {
			return s, router.Navigate(session.ScreenLanguageDashboard)
		}
		_ = s.engine.StartLesson(s.next.Category, s.next.ID)
	case "r":
		_ = s.engine.StartLesson(s.lesson.Category, s.lesson.ID)
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.lesson == nil {
		return ""
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Lesson complete!"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).
		Render(fmt.Sprintf("%s · %s · %d exercises", s.lesson.Title, s.lesson.Difficulty, len(s.lesson.Exercises))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if p := s.engine.CurrentProgress(); p != nil {
		done := len(p.CompletedLessons)
		total := s.engine.Catalog().LessonCount(s.engine.Session().Language())
		b.WriteString(center.Foreground(theme.Text).Render(
			fmt.Sprintf("Level %d        XP %d        Lessons %d/%d", p.Level, p.XP, done, total)))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d XP to level %d", p.XPToNextLevel(), p.Level+1)))
		b.WriteString("\n\n")
	}

	if s.next != nil {
		b.WriteString(center.Foreground(theme.Success).Render("Up next: " + s.next.Title))
	} else {
		b.WriteString(center.Foreground(theme.Success).
			Render(fmt.Sprintf("You finished every %s lesson.", s.lesson.Category)))
	}
	return b.String()
}
