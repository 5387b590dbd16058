// Package vocabulary lists, reviews and adds saved words for the active language.
package vocabulary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

type filter int

const (
	filterAll filter = iota
	filterDue
)

func (f filter) String() string {
	if f == filterDue {
		return "Due"
	}
	return "All"
}

// VocabularyScreen displays the learner's words with their mastery.
// In the due list translations stay hidden until revealed, flashcard style.
type VocabularyScreen struct {
	engine   *engine.Engine
	filter   filter
	cursor   int
	offset   int
	revealed bool
}

var (
	_ screen.Screen          = (*VocabularyScreen)(nil)
	_ screen.KeyHintProvider = (*VocabularyScreen)(nil)
	_ screen.BackProvider    = (*VocabularyScreen)(nil)
)

// New creates a new VocabularyScreen.
func New(e *engine.Engine) *VocabularyScreen {
	return &VocabularyScreen{engine: e}
}

func (s *VocabularyScreen) Init() tea.Cmd {
	return nil
}

func (s *VocabularyScreen) Title() string {
	return "Vocabulary"
}

func (s *VocabularyScreen) Back() session.Screen { return session.ScreenLanguageDashboard }

func (s *VocabularyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "All/Due"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Space", Description: "Reveal"},
		{Key: "y/n", Description: "Knew it / Forgot"},
		{Key: "a", Description: "Add word"},
		{Key: "Esc", Description: "Back"},
	}
}

// rows returns the vocabulary indices shown under the current filter.
func (s *VocabularyScreen) rows() []int {
	p := s.engine.CurrentProgress()
	if p == nil {
		return nil
	}
	if s.filter == filterDue {
		return p.DueWords(s.engine.Now())
	}
	rows := make([]int, len(p.Vocabulary))
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// Selected returns the vocabulary index under the cursor, or -1.
func (s *VocabularyScreen) Selected() int {
	rows := s.rows()
	if len(rows) == 0 {
		return -1
	}
	s.cursor = min(s.cursor, len(rows)-1)
	return rows[s.cursor]
}

func (s *VocabularyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "shift+tab":
		s.filter = 1 - s.filter
		s.cursor, s.offset, s.revealed = 0, 0, false
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
			s.revealed = false
		}
	case "down", "j":
		if s.cursor < len(s.rows())-1 {
			s.cursor++
			s.revealed = false
		}
	case "space":
		s.revealed = !s.revealed
	case "y", "n":
		if idx := s.Selected(); idx >= 0 {
			_ = s.engine.ReviewWord(idx, kmsg.String() == "y")
			s.revealed = false
			if n := len(s.rows()); s.cursor >= n {
				s.cursor = max(n-1, 0)
			}
		}
	case "a":
		overlay := NewAddWord(s.engine)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: overlay} }
	}
	return s, nil
}

func (s *VocabularyScreen) View(width, height int) string {
	p := s.engine.CurrentProgress()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if p == nil {
		return center.Foreground(theme.TextDim).Render("\n\nSelect a language to see its vocabulary.")
	}
	now := s.engine.Now()
	due := len(p.DueWords(now))

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Text).
		Render(fmt.Sprintf("\n%s · %d words · %d due\n", s.engine.Session().Language(), len(p.Vocabulary), due)))
	b.WriteString("\n")

	var tabs []string
	for _, f := range []filter{filterAll, filterDue} {
		label := f.String()
		if f == s.filter {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 64)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rows := s.rows()
	if len(rows) == 0 {
		msg := "No words yet. Press a to add one."
		if s.filter == filterDue {
			msg = "Nothing due. Come back later!"
		}
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render(msg))
		return b.String()
	}

	s.cursor = min(s.cursor, len(rows)-1)
	maxVisible := max(height-12, 3)
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+maxVisible {
		s.offset = s.cursor - maxVisible + 1
	}
	end := min(s.offset+maxVisible, len(rows))

	for i := s.offset; i < end; i++ {
		entry := p.Vocabulary[rows[i]]
		line := s.renderEntry(entry, i == s.cursor, now)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if end < len(rows) {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("... %d more", len(rows)-end)))
	}

	if idx := s.Selected(); idx >= 0 && p.Vocabulary[idx].Context != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).
			Render("“" + p.Vocabulary[idx].Context + "”"))
	}
	return b.String()
}

func (s *VocabularyScreen) renderEntry(e progress.VocabularyEntry, selected bool, now time.Time) string {
	translation := e.Translation
	if s.filter == filterDue && !(selected && s.revealed) {
		translation = strings.Repeat("·", len([]rune(e.Translation)))
	}

	when := "due now"
	if !e.IsDue(now) {
		when = e.NextReview().Format("Jan 02")
	}

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "▸ "
		style = theme.Selected
	}
	line := style.Render(fmt.Sprintf("%s%-18s %-22s", prefix, e.Word, translation))
	return line + " " + masteryDots(e.MasteryLevel) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(when)
}

// masteryDots renders mastery as filled and empty dots.
func masteryDots(level int) string {
	filled := lipgloss.NewStyle().Foreground(theme.Success).Render(strings.Repeat("●", level))
	empty := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("○", progress.MaxMastery-level))
	return filled + empty
}
