package engine

import (
	"errors"
	"fmt"

	"github.com/abhisek/lingualearn/internal/catalog"
)

// ErrNotSignedIn is returned by operations that need a user when none is loaded.
var ErrNotSignedIn = errors.New("no user is signed in")

// InvalidLanguageError indicates a language that is not in the catalog.
type InvalidLanguageError struct {
	Language catalog.Language
}

func (e *InvalidLanguageError) Error() string {
	if e.Language == "" {
		return "no language selected"
	}
	return fmt.Sprintf("language %s not available", e.Language)
}

// LessonNotFoundError indicates a lesson lookup that matched nothing.
type LessonNotFoundError struct {
	Language catalog.Language
	Category catalog.Category
	LessonID string
}

func (e *LessonNotFoundError) Error() string {
	return fmt.Sprintf("lesson %q not found in %s/%s", e.LessonID, e.Language, e.Category)
}

// AuthenticationError indicates a login for a username that has no record.
type AuthenticationError struct {
	Username string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login failed for %q: user not found or incorrect password", e.Username)
}

// ValidationError describes a form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
