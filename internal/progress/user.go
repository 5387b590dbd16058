package progress

import (
	"time"

	"github.com/abhisek/lingualearn/internal/catalog"
)

// Settings are learner preferences shown on the profile screen.
type Settings struct {
	DailyGoal     int  `json:"dailyGoal"` // minutes
	Notifications bool `json:"notifications"`
	DarkMode      bool `json:"darkMode"`
}

// DefaultSettings returns the settings given to newly registered users.
func DefaultSettings() Settings {
	return Settings{
		DailyGoal:     10,
		Notifications: true,
		DarkMode:      false,
	}
}

// User is the single learner record. It is persisted as a whole.
type User struct {
	Username         string                                 `json:"username"`
	Email            string                                 `json:"email"`
	SelectedLanguage catalog.Language                       `json:"selectedLanguage,omitempty"`
	Progress         map[catalog.Language]*LanguageProgress `json:"progress"`
	Streak           int                                    `json:"streak"`
	LastLogin        time.Time                              `json:"lastLogin"`
	Settings         Settings                               `json:"settings"`
}

// NewUser creates a user with no progress, a zero streak, and default settings.
func NewUser(username, email string, now time.Time) *User {
	return &User{
		Username:  username,
		Email:     email,
		Progress:  make(map[catalog.Language]*LanguageProgress),
		Streak:    0,
		LastLogin: now,
		Settings:  DefaultSettings(),
	}
}

// InitProgress creates progress for a language the first time it is selected.
// Existing progress is never replaced. Returns the language's progress.
func (u *User) InitProgress(lang catalog.Language) *LanguageProgress {
	if u.Progress == nil {
		u.Progress = make(map[catalog.Language]*LanguageProgress)
	}
	if p, ok := u.Progress[lang]; ok && p != nil {
		return p
	}
	p := NewLanguageProgress()
	u.Progress[lang] = p
	return p
}

// ProgressFor returns the progress for a language, or nil if never selected.
func (u *User) ProgressFor(lang catalog.Language) *LanguageProgress {
	if u == nil || u.Progress == nil {
		return nil
	}
	return u.Progress[lang]
}

// SelectLanguage records the active language and ensures its progress exists.
func (u *User) SelectLanguage(lang catalog.Language) *LanguageProgress {
	u.SelectedLanguage = lang
	return u.InitProgress(lang)
}

// TotalXP sums XP across every language.
func (u *User) TotalXP() int {
	total := 0
	for _, p := range u.Progress {
		if p != nil {
			total += p.XP
		}
	}
	return total
}
