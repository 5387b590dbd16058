package catalog

// Language is a learnable language, identified by its English name.
type Language string

// Category groups lessons by topic.
type Category string

const (
	CategoryBasics       Category = "Basics"
	CategoryGreetings    Category = "Greetings"
	CategoryNumbers      Category = "Numbers"
	CategoryFood         Category = "Food"
	CategoryTravel       Category = "Travel"
	CategoryConversation Category = "Conversation"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBasics,
		CategoryGreetings,
		CategoryNumbers,
		CategoryFood,
		CategoryTravel,
		CategoryConversation,
	}
}

// Difficulty is the difficulty band of a lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// DifficultyForIndex maps a 1-based lesson index to its difficulty band.
func DifficultyForIndex(n int) Difficulty {
	switch {
	case n <= 2:
		return DifficultyBeginner
	case n <= 4:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

// ExerciseType identifies how an exercise is presented and graded.
type ExerciseType string

const (
	ExerciseMultipleChoice ExerciseType = "MultipleChoice"
	ExerciseTranslation    ExerciseType = "Translation"
	ExerciseListening      ExerciseType = "Listening"
	ExerciseSpeaking       ExerciseType = "Speaking"
	ExerciseMatching       ExerciseType = "Matching"
)

// AllExerciseTypes returns the exercise types in the order lessons cycle through them.
func AllExerciseTypes() []ExerciseType {
	return []ExerciseType{
		ExerciseMultipleChoice,
		ExerciseTranslation,
		ExerciseListening,
		ExerciseSpeaking,
		ExerciseMatching,
	}
}

// DisplayName returns a human-readable label for the exercise type.
func (t ExerciseType) DisplayName() string {
	switch t {
	case ExerciseMultipleChoice:
		return "Multiple Choice"
	case ExerciseTranslation:
		return "Translation"
	case ExerciseListening:
		return "Listening"
	case ExerciseSpeaking:
		return "Speaking"
	case ExerciseMatching:
		return "Matching"
	default:
		return string(t)
	}
}

// Exercise is a single graded step within a lesson.
type Exercise struct {
	ID     string
	Type   ExerciseType
	Prompt string

	// Options is only set for multiple-choice exercises.
	Options []string

	// CorrectAnswer is the option index for multiple choice, the expected
	// text for translation, and empty for ungraded types.
	CorrectAnswer string

	Completed bool
}

// Lesson is an ordered list of exercises within a category.
type Lesson struct {
	ID         string
	Title      string
	Category   Category
	Difficulty Difficulty
	Exercises  []*Exercise
	Completed  bool
}

// ExerciseIndex returns the position of the exercise with the given ID, or -1.
func (l *Lesson) ExerciseIndex(exerciseID string) int {
	for i, ex := range l.Exercises {
		if ex.ID == exerciseID {
			return i
		}
	}
	return -1
}

// AllExercisesCompleted reports whether every exercise in the lesson is completed.
func (l *Lesson) AllExercisesCompleted() bool {
	for _, ex := range l.Exercises {
		if !ex.Completed {
			return false
		}
	}
	return true
}

// CompletedExercises returns the number of completed exercises.
func (l *Lesson) CompletedExercises() int {
	n := 0
	for _, ex := range l.Exercises {
		if ex.Completed {
			n++
		}
	}
	return n
}
