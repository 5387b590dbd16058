package engine

import (
	"fmt"

	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/store"
)

// MaxDailyGoal caps the daily goal in minutes.
const MaxDailyGoal = 240

// UpdateSettings replaces the user's settings.
func (e *Engine) UpdateSettings(s progress.Settings) error {
	if e.user == nil {
		e.queue.Error("Please log in first")
		return ErrNotSignedIn
	}
	if s.DailyGoal < 1 || s.DailyGoal > MaxDailyGoal {
		err := &ValidationError{
			Field:   "dailyGoal",
			Message: fmt.Sprintf("must be between 1 and %d minutes", MaxDailyGoal),
		}
		e.queue.Error(err.Error())
		return err
	}

	e.user.Settings = s
	e.queue.Success("Settings saved")

	e.record(store.ProgressEventData{
		Kind:   store.KindSettingsUpdated,
		Detail: fmt.Sprintf("dailyGoal=%d notifications=%t darkMode=%t", s.DailyGoal, s.Notifications, s.DarkMode),
	})
	e.save()
	return nil
}
