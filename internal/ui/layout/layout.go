package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/ui/theme"
)

const (
	MinWidth  = 72
	MinHeight = 20
)

// AppName is shown in the header.
const AppName = "LinguaLearn"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats are the learner figures shown on the right of the header.
// A nil value hides the stats, e.g. before sign-in.
type HeaderStats struct {
	Language string
	Level    int
	XP       int
	Streak   int
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the application header bar.
func RenderHeader(title string, stats *HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + AppName)

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := ""
	if stats != nil {
		accent := lipgloss.NewStyle().Foreground(theme.Accent)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		if stats.Language != "" {
			right = dim.Render(stats.Language+"  ") +
				accent.Render(fmt.Sprintf("Lv %d", stats.Level)) +
				dim.Render("  ") +
				accent.Render(fmt.Sprintf("%d XP", stats.XP)) +
				dim.Render("   ")
		}
		right += accent.Render(fmt.Sprintf("🔥 %d day", stats.Streak))
	}

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0)

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   · "+AppName)

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame composes the full frame: header, notifications, content, footer.
func RenderFrame(header, notices, content, footer string, width, height int) string {
	used := lipgloss.Height(header) + lipgloss.Height(footer)
	top := header
	if notices != "" {
		used += lipgloss.Height(notices)
		top += "\n" + notices
	}

	contentHeight := max(height-used, 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return top + "\n" + styledContent + "\n" + footer
}
