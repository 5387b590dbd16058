// Package auth holds the sign-in and sign-up forms.
package auth

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/ui/components"
	"github.com/abhisek/lingualearn/internal/ui/layout"
)

// showError puts a validation error under its field and anything else
// below the form. A nil err clears the error.
func showError(f *components.Form, err error) tea.Cmd {
	if err == nil {
		return f.SetError("", "")
	}
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		return f.SetError(verr.Field, verr.Message)
	}
	return f.SetError("", err.Error())
}

func formHints(extra ...layout.KeyHint) []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
	}
	hints = append(hints, extra...)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}
