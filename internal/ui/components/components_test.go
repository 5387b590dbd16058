package components

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/notify"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	chosen := ""
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd { chosen = s; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a", Action: pick("a")},
		{Label: "off2", Disabled: true},
		{Label: "b", Action: pick("b")},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyEnter))
	if chosen != "b" {
		t.Errorf("chosen = %q, want b", chosen)
	}
	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("after up = %d, want 1", m.Selected)
	}
}

func TestMultiChoice(t *testing.T) {
	mc := NewMultiChoice("Pick", []string{"w", "x", "y", "z"}, 0)

	mc, _ = mc.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if mc.Selected != 2 {
		t.Fatalf("selected = %d, want 2", mc.Selected)
	}
	mc, _ = mc.Update(key(tea.KeyEnter))
	if !mc.Submitted || mc.ChosenIndex != 2 || mc.IsCorrect() {
		t.Errorf("got submitted=%v chosen=%d correct=%v", mc.Submitted, mc.ChosenIndex, mc.IsCorrect())
	}

	// Submitted choices are frozen.
	mc, _ = mc.Update(key(tea.KeyUp))
	if mc.Selected != 2 {
		t.Errorf("selection moved after submit")
	}
	if !strings.Contains(mc.View(), "C)  y") {
		t.Errorf("view missing option label:\n%s", mc.View())
	}
}

func TestRenderNotifications(t *testing.T) {
	if got := RenderNotifications(nil, 80); got != "" {
		t.Errorf("empty = %q, want \"\"", got)
	}

	now := time.Now()
	var items []notify.Notification
	for i, msg := range []string{"one", "two", "three", "four"} {
		items = append(items, notify.Notification{ID: int64(i), Message: msg, Severity: notify.SeverityInfo, CreatedAt: now})
	}
	out := RenderNotifications(items, 80)
	if strings.Contains(out, "one") {
		t.Error("oldest notification should be dropped beyond the cap")
	}
	for _, want := range []string{"two", "three", "four"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestProgressBarClamps(t *testing.T) {
	bar := NewProgressBar("", 1.5, true, 20)
	if !strings.Contains(bar.View(), "100%") {
		t.Errorf("percent label missing: %q", bar.View())
	}
	if strings.Contains(bar.View(), "─") {
		t.Errorf("overfull bar should have no empty cells: %q", bar.View())
	}

	empty := NewProgressBar("", -1, false, 10)
	if strings.Contains(empty.View(), "━") {
		t.Errorf("negative fraction should draw an empty bar: %q", empty.View())
	}
}
