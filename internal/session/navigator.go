package session

import "github.com/abhisek/lingualearn/internal/catalog"

// Screen is the screen the learner is currently on.
type Screen int

const (
	ScreenWelcome           Screen = iota // Landing screen for signed-out learners
	ScreenLogin                           // Sign-in form
	ScreenRegister                        // Sign-up form
	ScreenLanguageSelection               // Pick a language to study
	ScreenLanguageDashboard               // Lessons and progress for the active language
	ScreenLesson                          // Working through a lesson's exercises
	ScreenLessonComplete                  // Shown after the last exercise of a lesson
	ScreenVocabulary                      // Saved words for the active language
	ScreenProfile                         // Account details and settings
)

// AllScreens returns every screen in declaration order.
func AllScreens() []Screen {
	return []Screen{
		ScreenWelcome,
		ScreenLogin,
		ScreenRegister,
		ScreenLanguageSelection,
		ScreenLanguageDashboard,
		ScreenLesson,
		ScreenLessonComplete,
		ScreenVocabulary,
		ScreenProfile,
	}
}

// String returns the screen's stable identifier.
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenLanguageSelection:
		return "languageSelection"
	case ScreenLanguageDashboard:
		return "languageDashboard"
	case ScreenLesson:
		return "lesson"
	case ScreenLessonComplete:
		return "lessonComplete"
	case ScreenVocabulary:
		return "vocabulary"
	case ScreenProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Title returns the header label for the screen.
func (s Screen) Title() string {
	switch s {
	case ScreenWelcome:
		return ""
	case ScreenLogin:
		return "Log In"
	case ScreenRegister:
		return "Sign Up"
	case ScreenLanguageSelection:
		return "Choose a Language"
	case ScreenLanguageDashboard:
		return "Dashboard"
	case ScreenLesson:
		return "Lesson"
	case ScreenLessonComplete:
		return "Lesson Complete"
	case ScreenVocabulary:
		return "Vocabulary"
	case ScreenProfile:
		return "Profile"
	default:
		return ""
	}
}

// ParseScreen returns the screen with the given identifier.
func ParseScreen(name string) (Screen, bool) {
	for _, s := range AllScreens() {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// InLessonFlow reports whether the screen belongs to an active lesson.
func (s Screen) InLessonFlow() bool {
	return s == ScreenLesson || s == ScreenLessonComplete
}

// SignedOut reports whether the screen is shown before authentication.
func (s Screen) SignedOut() bool {
	return s == ScreenWelcome || s == ScreenLogin || s == ScreenRegister
}

// Navigator is the screen state machine. It holds a label and the current
// language, lesson, and exercise; it makes no decisions of its own.
type Navigator struct {
	screen   Screen
	language catalog.Language
	lesson   *catalog.Lesson
	exercise *catalog.Exercise
}

// NewNavigator returns a navigator on the welcome screen.
func NewNavigator() *Navigator {
	return &Navigator{screen: ScreenWelcome}
}

// Screen returns the current screen.
func (n *Navigator) Screen() Screen { return n.screen }

// Language returns the active language, or "" if none.
func (n *Navigator) Language() catalog.Language { return n.language }

// Lesson returns the active lesson, or nil.
func (n *Navigator) Lesson() *catalog.Lesson { return n.lesson }

// Exercise returns the active exercise, or nil.
func (n *Navigator) Exercise() *catalog.Exercise { return n.exercise }

// GoTo moves to a screen. Leaving the lesson flow clears the lesson and
// exercise; returning to a signed-out screen also clears the language.
func (n *Navigator) GoTo(s Screen) {
	if !s.InLessonFlow() {
		n.lesson = nil
		n.exercise = nil
	}
	if s.SignedOut() {
		n.language = ""
	}
	n.screen = s
}

// SetLanguage sets the active language.
func (n *Navigator) SetLanguage(lang catalog.Language) {
	n.language = lang
}

// EnterLesson makes the lesson active, points at its first exercise, and
// shows the lesson screen.
func (n *Navigator) EnterLesson(l *catalog.Lesson) {
	n.lesson = l
	n.exercise = nil
	if len(l.Exercises) > 0 {
		n.exercise = l.Exercises[0]
	}
	n.screen = ScreenLesson
}

// SetExercise points at another exercise of the active lesson.
func (n *Navigator) SetExercise(ex *catalog.Exercise) {
	n.exercise = ex
}

// Reset returns to the welcome screen with nothing active.
func (n *Navigator) Reset() {
	n.GoTo(ScreenWelcome)
}
