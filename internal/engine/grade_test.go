package engine

import (
	"testing"

	"github.com/abhisek/lingualearn/internal/catalog"
)

func TestGrade(t *testing.T) {
	mc := &catalog.Exercise{Type: catalog.ExerciseMultipleChoice, CorrectAnswer: "0"}
	tr := &catalog.Exercise{Type: catalog.ExerciseTranslation, CorrectAnswer: "Sample answer"}
	listening := &catalog.Exercise{Type: catalog.ExerciseListening}

	tests := []struct {
		name   string
		ex     *catalog.Exercise
		answer string
		want   bool
	}{
		{"mc correct index", mc, "0", true},
		{"mc padded index", mc, " 0 ", true},
		{"mc wrong index", mc, "2", false},
		{"mc not a number", mc, "Correct option", false},
		{"translation exact", tr, "Sample answer", true},
		{"translation case folded", tr, "SAMPLE ANSWER", true},
		{"translation extra spaces", tr, "  sample   answer ", true},
		{"translation wrong", tr, "sample", false},
		{"listening always correct", listening, "", true},
		{"nil exercise", nil, "0", false},
	}

	for _, tt := range tests {
		if got := Grade(tt.ex, tt.answer); got != tt.want {
			t.Errorf("%s: Grade(%q) = %v, want %v", tt.name, tt.answer, got, tt.want)
		}
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name                               string
		username, email, password, confirm string
		wantField                          string
	}{
		{"ok", "ana", "ana@example.com", "pw", "pw", ""},
		{"no username", " ", "ana@example.com", "pw", "pw", "username"},
		{"no email", "ana", "", "pw", "pw", "email"},
		{"bad email", "ana", "not-an-email", "pw", "pw", "email"},
		{"no password", "ana", "ana@example.com", "", "", "password"},
		{"mismatch", "ana", "ana@example.com", "pw", "px", "confirm"},
	}

	for _, tt := range tests {
		err := ValidateRegistration(tt.username, tt.email, tt.password, tt.confirm)
		if tt.wantField == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		verr, ok := err.(*ValidationError)
		if !ok {
			t.Errorf("%s: error = %v, want *ValidationError", tt.name, err)
			continue
		}
		if verr.Field != tt.wantField {
			t.Errorf("%s: field = %q, want %q", tt.name, verr.Field, tt.wantField)
		}
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("ana", "pw"); err != nil {
		t.Errorf("ValidateLogin(ok) = %v", err)
	}
	if err := ValidateLogin("", "pw"); err == nil {
		t.Error("ValidateLogin(no username) = nil, want error")
	}
	if err := ValidateLogin("ana", ""); err == nil {
		t.Error("ValidateLogin(no password) = nil, want error")
	}
}
