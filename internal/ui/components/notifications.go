package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingualearn/internal/notify"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// MaxVisibleNotifications caps how many notifications are drawn at once.
const MaxVisibleNotifications = 3

var severityIcons = map[notify.Severity]string{
	notify.SeverityInfo:    "ℹ",
	notify.SeveritySuccess: "✓",
	notify.SeverityWarning: "!",
	notify.SeverityError:   "✗",
}

// RenderNotifications draws the newest notifications, one line each,
// right-aligned. Returns "" when there are none.
func RenderNotifications(items []notify.Notification, width int) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) > MaxVisibleNotifications {
		items = items[len(items)-MaxVisibleNotifications:]
	}

	lines := make([]string, 0, len(items))
	for _, n := range items {
		style := lipgloss.NewStyle().
			Foreground(theme.SeverityColor(string(n.Severity))).
			Bold(n.Severity == notify.SeverityError)
		icon := severityIcons[n.Severity]
		if icon == "" {
			icon = severityIcons[notify.SeverityInfo]
		}
		lines = append(lines, style.Render(icon+" "+n.Message))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(2).
		Render(strings.Join(lines, "\n"))
}
