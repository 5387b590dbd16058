// Package dashboard shows the active language's lessons and the learner's
// standing in it.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/router"
	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/layout"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// DashboardScreen lists the lessons of one category at a time.
type DashboardScreen struct {
	engine   *engine.Engine
	history  router.Factory
	cats     []catalog.Category
	tab      int
	menu     components.Menu
	done     map[catalog.Category]int
	total    map[catalog.Category]int
	dueWords int
}

var (
	_ screen.Screen       = (*DashboardScreen)(nil)
	_ screen.BackProvider = (*DashboardScreen)(nil)
)

// New creates the dashboard for the engine's active language. history
// builds the event history overlay; nil hides it.
func New(e *engine.Engine, history router.Factory) *DashboardScreen {
	d := &DashboardScreen{
		engine:  e,
		history: history,
		cats:    catalog.AllCategories(),
		done:    make(map[catalog.Category]int),
		total:   make(map[catalog.Category]int),
	}

	lang := e.Session().Language()
	p := e.CurrentProgress()
	for _, c := range d.cats {
		lessons := e.Catalog().Lessons(lang, c)
		d.total[c] = len(lessons)
		d.done[c] = lo.CountBy(lessons, func(l *catalog.Lesson) bool {
			return l.Completed || (p != nil && p.HasCompleted(l.ID))
		})
	}
	if p != nil {
		d.dueWords = len(p.DueWords(e.Now()))
	}

	// Open on the first category with unfinished lessons.
	if _, i, ok := lo.FindIndexOf(d.cats, func(c catalog.Category) bool {
		return d.done[c] < d.total[c]
	}); ok {
		d.tab = i
	}
	d.buildMenu()
	return d
}

func (d *DashboardScreen) buildMenu() {
	lang := d.engine.Session().Language()
	cat := d.cats[d.tab]
	p := d.engine.CurrentProgress()

	var items []components.MenuItem
	for _, l := range d.engine.Catalog().Lessons(lang, cat) {
		detail := fmt.Sprintf("%s · %d exercises", l.Difficulty, len(l.Exercises))
		label := l.Title
		if l.Completed || (p != nil && p.HasCompleted(l.ID)) {
			label += " ✓"
		}
		items = append(items, components.MenuItem{
			Label:  label,
			Detail: detail,
			Action: func() tea.Cmd {
				// The engine moves to the lesson screen on success.
				_ = d.engine.StartLesson(cat, l.ID)
				return nil
			},
		})
	}
	d.menu = components.NewMenu(items)
}

func (d *DashboardScreen) Init() tea.Cmd { return nil }

func (d *DashboardScreen) Title() string { return "Dashboard" }

func (d *DashboardScreen) Back() session.Screen { return session.ScreenLanguageSelection }

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "Enter", Description: "Start"},
		{Key: "v", Description: "Vocabulary"},
		{Key: "p", Description: "Profile"},
		{Key: "l", Description: "Languages"},
	}
	if d.history != nil {
		hints = append(hints, layout.KeyHint{Key: "h", Description: "History"})
	}
	return hints
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "left", "shift+tab":
		d.tab = (d.tab - 1 + len(d.cats)) % len(d.cats)
		d.buildMenu()
		return d, nil
	case "right", "tab":
		d.tab = (d.tab + 1) % len(d.cats)
		d.buildMenu()
		return d, nil
	case "v":
		return d, router.Navigate(session.ScreenVocabulary)
	case "p":
		return d, router.Navigate(session.ScreenProfile)
	case "l":
		return d, router.Navigate(session.ScreenLanguageSelection)
	case "h":
		if d.history != nil {
			overlay := d.history()
			return d, func() tea.Msg { return router.PushScreenMsg{Screen: overlay} }
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

// Category returns the category whose lessons are listed.
func (d *DashboardScreen) Category() catalog.Category {
	return d.cats[d.tab]
}

func (d *DashboardScreen) View(width, height int) string {
	lang := d.engine.Session().Language()
	p := d.engine.CurrentProgress()
	cw := contentWidth(width)

	title := theme.Title.Render(fmt.Sprintf("%s · %s", lang, lang.NativeName()))

	var sections []string
	sections = append(sections, title)
	if p != nil {
		streak := 0
		if u := d.engine.User(); u != nil {
			streak = u.Streak
		}
		sections = append(sections, renderStatsBar(p, streak, d.dueWords, cw))
	}

	sections = append(sections,
		renderTabs(d.cats, d.done, d.total, d.tab),
		theme.Card.Width(cw).Render(strings.TrimRight(d.menu.View(), "\n")),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
