package history

import (
	"fmt"
	"image/color"

	"github.com/abhisek/lingualearn/internal/store"
	"github.com/abhisek/lingualearn/internal/ui/theme"
)

// describe renders one event as a short sentence.
func describe(e store.ProgressEventRecord) string {
	at := e.Timestamp.Local().Format("15:04")
	switch e.Kind {
	case store.KindSessionStart:
		return at + "  App opened"
	case store.KindRegister:
		return fmt.Sprintf("%s  Registered as %s", at, e.Detail)
	case store.KindLogin:
		return fmt.Sprintf("%s  Logged in as %s", at, e.Detail)
	case store.KindLanguageSelected:
		return fmt.Sprintf("%s  Studying %s", at, e.Language)
	case store.KindLessonStarted:
		return fmt.Sprintf("%s  Started %s", at, e.LessonID)
	case store.KindExerciseCompleted:
		if e.Correct != nil && *e.Correct {
			return fmt.Sprintf("%s  ✓ %s  +%d XP", at, e.ExerciseID, e.XPDelta)
		}
		return fmt.Sprintf("%s  ✗ %s", at, e.ExerciseID)
	case store.KindLessonCompleted:
		return fmt.Sprintf("%s  Completed %s  +%d XP", at, e.LessonID, e.XPDelta)
	case store.KindLevelUp:
		return fmt.Sprintf("%s  Reached level %d in %s", at, e.Level, e.Language)
	case store.KindWordAdded:
		return fmt.Sprintf("%s  Added %s", at, e.Detail)
	case store.KindWordReviewed:
		return fmt.Sprintf("%s  Reviewed %s (mastery %d)", at, e.Detail, e.Level)
	case store.KindSettingsUpdated:
		return at + "  Updated settings"
	default:
		return fmt.Sprintf("%s  %s", at, e.Kind)
	}
}

func kindColor(e store.ProgressEventRecord) color.Color {
	switch e.Kind {
	case store.KindLevelUp, store.KindLessonCompleted:
		return theme.Accent
	case store.KindExerciseCompleted:
		if e.Correct != nil && *e.Correct {
			return theme.Success
		}
		return theme.Error
	case store.KindSessionStart, store.KindLogin, store.KindRegister:
		return theme.TextDim
	default:
		return theme.Text
	}
}
