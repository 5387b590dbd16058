package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// levelFraction returns how far p is through its current level, in [0,1].
func levelFraction(p *progress.LanguageProgress) float64 {
	base := progress.LevelThreshold(p.Level - 1)
	hi := progress.LevelThreshold(p.Level)
	if hi <= base {
		return 0
	}
	f := float64(p.XP-base) / float64(hi-base)
	return min(max(f, 0), 1)
}

// renderStatsBar renders level, XP, streak and words in a bordered box.
func renderStatsBar(p *progress.LanguageProgress, streak, due, cw int) string {
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	cells := []string{
		dim.Render("Level ") + value.Render(fmt.Sprint(p.Level)),
		dim.Render("XP ") + value.Render(fmt.Sprint(p.XP)),
		dim.Render("Streak ") + value.Render(fmt.Sprintf("%d 🔥", streak)),
		dim.Render("Words ") + value.Render(fmt.Sprint(len(p.Vocabulary))),
	}
	if due > 0 {
		cells = append(cells, lipgloss.NewStyle().Foreground(theme.Warning).Render(fmt.Sprintf("%d due", due)))
	}
	row := strings.Join(cells, dim.Render("  │  "))

	bar := components.NewProgressBar(
		fmt.Sprintf("%d XP to level %d", p.XPToNextLevel(), p.Level+1),
		levelFraction(p), true, cw-4,
	).View()

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, row, bar))
}

// renderTabs renders the category tabs with the active one highlighted.
func renderTabs(cats []catalog.Category, done map[catalog.Category]int, total map[catalog.Category]int, active int) string {
	var tabs []string
	for i, c := range cats {
		label := fmt.Sprintf(" %s %d/%d ", c, done[c], total[c])
		if i == active {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.Text).Background(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return strings.Join(tabs, " ")
}
