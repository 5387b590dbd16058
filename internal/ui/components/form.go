package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// FormField is one named input of a Form.
type FormField struct {
	Name  string
	Input TextInput
}

// Form is a vertical list of inputs with one focused at a time.
// Errors are shown under the field they name, or below the form.
type Form struct {
	Fields []FormField
	Focus  int

	errField string
	errMsg   string
}

// NewForm creates a form with the first field focused.
func NewForm(fields ...FormField) Form {
	f := Form{Fields: fields}
	if len(f.Fields) > 0 {
		f.Fields[0].Input.Focus()
	}
	return f
}

// Value returns the value of the named field, or "".
func (f *Form) Value(name string) string {
	for _, fl := range f.Fields {
		if fl.Name == name {
			return fl.Input.Value()
		}
	}
	return ""
}

// FocusedName returns the name of the focused field.
func (f *Form) FocusedName() string {
	if f.Focus < 0 || f.Focus >= len(f.Fields) {
		return ""
	}
	return f.Fields[f.Focus].Name
}

// SetFocus focuses field i.
func (f *Form) SetFocus(i int) tea.Cmd {
	if i < 0 || i >= len(f.Fields) {
		return nil
	}
	f.Fields[f.Focus].Input.Blur()
	f.Focus = i
	return f.Fields[i].Input.Focus()
}

// SetError shows msg under the named field and focuses it. An empty or
// unknown name shows msg below the form. An empty msg clears the error.
func (f *Form) SetError(field, msg string) tea.Cmd {
	f.errField, f.errMsg = field, msg
	if msg == "" {
		return nil
	}
	for i, fl := range f.Fields {
		if fl.Name == field {
			return f.SetFocus(i)
		}
	}
	f.errField = ""
	return nil
}

// Error returns the field and message of the error shown, if any.
func (f *Form) Error() (field, msg string) {
	return f.errField, f.errMsg
}

// Update moves focus on tab and arrow keys and reports whether enter was
// pressed on the last field. Other messages go to the focused input.
func (f *Form) Update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	if len(f.Fields) == 0 {
		return false, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return false, f.SetFocus((f.Focus + 1) % len(f.Fields))
		case "shift+tab", "up":
			return false, f.SetFocus((f.Focus - 1 + len(f.Fields)) % len(f.Fields))
		case "enter":
			if f.Focus < len(f.Fields)-1 {
				return false, f.SetFocus(f.Focus + 1)
			}
			return true, nil
		}
	}
	f.Fields[f.Focus].Input, cmd = f.Fields[f.Focus].Input.Update(msg)
	return false, cmd
}

// View renders the fields one per line.
func (f *Form) View() string {
	var b strings.Builder
	for _, fl := range f.Fields {
		b.WriteString(fl.Input.View())
		b.WriteString("\n")
		if f.errMsg != "" && f.errField == fl.Name {
			b.WriteString(theme.FieldError.Render("  " + f.errMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if f.errMsg != "" && f.errField == "" {
		b.WriteString(theme.FieldError.Render(f.errMsg))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
