package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/screen"
	"github.com/abhisek/lingualearn/internal/session"
)

// NavigateMsg asks the app to move the session to another screen.
type NavigateMsg struct {
	Screen session.Screen
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(s session.Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Screen: s} }
}

// PushScreenMsg requests the router to push an overlay on top of the current screen.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the top overlay.
type PopScreenMsg struct{}

// Factory builds the view for a session screen.
type Factory func() screen.Screen

// Router shows one view per session screen, plus a stack of overlays
// (forms and dialogs) on top of it. Views are rebuilt whenever the session
// screen changes so they always render fresh engine state.
type Router struct {
	factories map[session.Screen]Factory
	current   session.Screen
	stack     []screen.Screen
}

// New creates a router. Call Sync to build the first view.
func New(factories map[session.Screen]Factory) *Router {
	return &Router{
		factories: factories,
		current:   -1,
	}
}

// Sync switches to the view for s if it is not already showing.
// Overlays are discarded on a switch.
func (r *Router) Sync(s session.Screen) tea.Cmd {
	if s == r.current && len(r.stack) > 0 {
		return nil
	}
	f, ok := r.factories[s]
	if !ok {
		return nil
	}
	r.current = s
	v := f()
	r.stack = []screen.Screen{v}
	return v.Init()
}

// Current returns the session screen being shown.
func (r *Router) Current() session.Screen {
	return r.current
}

// Push adds an overlay on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top overlay. No-op if only the base view is left.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles overlay messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
