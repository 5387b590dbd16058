// Package history lists past app runs reconstructed from the progress log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/store"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// eventLimit caps how many recent events are read.
const eventLimit = 1000

// EventQuerier reads the progress log. store.EventRepo satisfies it.
type EventQuerier interface {
	QueryProgressEvents(ctx context.Context, opts store.QueryOpts, kinds ...string) ([]store.ProgressEventRecord, error)
}

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Err      error
}

// HistoryScreen displays past sessions; Enter expands one into its events.
type HistoryScreen struct {
	events   EventQuerier
	sessions []store.SessionSummary
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events EventQuerier) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.events.QueryProgressEvents(context.Background(), store.QueryOpts{Limit: eventLimit, Newest: true})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: store.SummarizeSessions(records)}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n  No sessions yet. Start a lesson!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		d := sess.Duration()
		line := fmt.Sprintf("%s%s  %d:%02d  %d exercises  %.0f%% correct  +%d XP",
			prefix, sess.Start.Local().Format("Jan 02, 2006 15:04"),
			int(d.Minutes()), int(d.Seconds())%60,
			sess.Exercises, sess.Accuracy()*100, sess.XP)
		if sess.LessonsCompleted > 0 {
			line += fmt.Sprintf("  %d lessons", sess.LessonsCompleted)
		}
		if len(sess.Languages) > 0 {
			line += "  " + strings.Join(sess.Languages, ", ")
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, e := range sess.Events {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(kindColor(e)).Render("    "+describe(e))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
