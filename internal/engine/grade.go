package engine

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/abhisek/lingualearn/internal/catalog"
)

// Grade compares an answer to the exercise's expected answer.
// Multiple choice compares option indexes; translation compares text
// case-insensitively after trimming. Other exercise types have no
// machine-checkable answer and are always correct.
func Grade(ex *catalog.Exercise, answer string) bool {
	if ex == nil {
		return false
	}
	switch ex.Type {
	case catalog.ExerciseMultipleChoice:
		got, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return false
		}
		want, err := strconv.Atoi(ex.CorrectAnswer)
		return err == nil && got == want
	case catalog.ExerciseTranslation:
		return foldEqual(answer, ex.CorrectAnswer)
	default:
		return true
	}
}

func foldEqual(a, b string) bool {
	fold := cases.Fold()
	return fold.String(normalizeSpace(a)) == fold.String(normalizeSpace(b))
}

// normalizeSpace trims and collapses internal runs of whitespace.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
