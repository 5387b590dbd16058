package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackProvider is an optional interface for screens that Esc leaves.
// Back returns the session screen to go to.
type BackProvider interface {
	Back() session.Screen
}

// TextEntry is an optional interface for screens that are capturing typed
// text, so global single-key shortcuts are not applied.
type TextEntry interface {
	Typing() bool
}
