package catalog

import "fmt"

const (
	// LessonsPerCategory is the number of lessons generated for each category.
	LessonsPerCategory = 5

	// ExercisesPerLesson is the number of exercises generated for each lesson.
	ExercisesPerLesson = 5
)

// multipleChoiceOptions are placeholder options. The correct option is always index 0.
var multipleChoiceOptions = []string{
	"Correct option",
	"Wrong option 1",
	"Wrong option 2",
	"Wrong option 3",
}

// translationAnswer is the placeholder expected answer for translation exercises.
const translationAnswer = "Sample answer"

// Generate builds the full lesson tree for the given languages.
// The result depends only on the input: ids, titles, and exercise types are
// derived from position, never from randomness.
func Generate(languages []Language) Catalog {
	c := make(Catalog, len(languages))
	for _, lang := range languages {
		c[lang] = generateLanguage(lang)
	}
	return c
}

func generateLanguage(lang Language) map[Category][]*Lesson {
	byCategory := make(map[Category][]*Lesson, len(AllCategories()))
	for _, cat := range AllCategories() {
		byCategory[cat] = generateCategory(lang, cat)
	}
	return byCategory
}

func generateCategory(lang Language, cat Category) []*Lesson {
	lessons := make([]*Lesson, 0, LessonsPerCategory)
	for n := 1; n <= LessonsPerCategory; n++ {
		lessons = append(lessons, &Lesson{
			ID:         LessonID(lang, cat, n),
			Title:      fmt.Sprintf("%s %d", cat, n),
			Category:   cat,
			Difficulty: DifficultyForIndex(n),
			Exercises:  generateExercises(lang, cat, n),
		})
	}
	return lessons
}

func generateExercises(lang Language, cat Category, lessonNum int) []*Exercise {
	types := AllExerciseTypes()
	exercises := make([]*Exercise, 0, ExercisesPerLesson)
	for i := 1; i <= ExercisesPerLesson; i++ {
		typ := types[(i-1)%len(types)]
		ex := &Exercise{
			ID:     fmt.Sprintf("%s-ex-%d", LessonID(lang, cat, lessonNum), i),
			Type:   typ,
			Prompt: fmt.Sprintf("Exercise %d for %s lesson %d", i, cat, lessonNum),
		}
		switch typ {
		case ExerciseMultipleChoice:
			ex.Options = append([]string(nil), multipleChoiceOptions...)
			ex.CorrectAnswer = "0"
		case ExerciseTranslation:
			ex.CorrectAnswer = translationAnswer
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

// LessonID returns the deterministic id of the n-th lesson (1-based) of a category.
func LessonID(lang Language, cat Category, n int) string {
	return fmt.Sprintf("%s-%s-%d", lang, cat, n)
}
