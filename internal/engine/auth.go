package engine

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/store"
)

// ValidateRegistration checks the registration form before RegisterUser is called.
func ValidateRegistration(username, email, password, confirm string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return &ValidationError{Field: "username", Message: "is required"}
	case strings.TrimSpace(email) == "":
		return &ValidationError{Field: "email", Message: "is required"}
	case password == "":
		return &ValidationError{Field: "password", Message: "is required"}
	case password != confirm:
		return &ValidationError{Field: "confirm", Message: "passwords do not match"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	return nil
}

// ValidateLogin checks the login form before LoginUser is called.
func ValidateLogin(username, password string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return &ValidationError{Field: "username", Message: "is required"}
	case password == "":
		return &ValidationError{Field: "password", Message: "is required"}
	}
	return nil
}

// RegisterUser replaces any current user with a fresh one and moves to
// language selection. The password is not stored.
func (e *Engine) RegisterUser(username, password, email string) {
	e.user = progress.NewUser(username, email, e.now())
	e.queue.Info(fmt.Sprintf("Welcome, %s!", username))
	e.nav.GoTo(session.ScreenLanguageSelection)

	e.record(store.ProgressEventData{Kind: store.KindRegister, Detail: username})
	e.save()
}

// LoginUser succeeds when a user is loaded and its username matches.
// It updates the streak and resumes the selected language, if any.
func (e *Engine) LoginUser(username, password string) error {
	if e.user == nil || e.user.Username != username {
		e.queue.Error("Login failed. User not found or incorrect password.")
		return &AuthenticationError{Username: username}
	}

	e.applyStreak()
	e.queue.Info(fmt.Sprintf("Welcome back, %s!", username))

	if lang := e.user.SelectedLanguage; lang != "" && e.catalog.Has(lang) {
		e.nav.SetLanguage(lang)
		e.nav.GoTo(session.ScreenLanguageDashboard)
	} else {
		e.nav.GoTo(session.ScreenLanguageSelection)
	}

	e.record(store.ProgressEventData{Kind: store.KindLogin, Detail: username})
	e.save()
	return nil
}
