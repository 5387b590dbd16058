package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingualearn/internal/catalog"
)

func TestScreenStringsRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range AllScreens() {
		name := s.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate screen name %q", name)
		seen[name] = true

		parsed, ok := ParseScreen(name)
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	assert.Len(t, seen, 9)

	_, ok := ParseScreen("settings")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Screen(99).String())
}

func TestNewNavigator(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, ScreenWelcome, n.Screen())
	assert.Empty(t, n.Language())
	assert.Nil(t, n.Lesson())
	assert.Nil(t, n.Exercise())
}

func TestEnterLesson(t *testing.T) {
	c := catalog.Generate([]catalog.Language{"Spanish"})
	lesson := c.Lessons("Spanish", catalog.CategoryBasics)[0]

	n := NewNavigator()
	n.SetLanguage("Spanish")
	n.EnterLesson(lesson)

	assert.Equal(t, ScreenLesson, n.Screen())
	assert.Same(t, lesson, n.Lesson())
	assert.Same(t, lesson.Exercises[0], n.Exercise())

	n.SetExercise(lesson.Exercises[1])
	n.GoTo(ScreenLessonComplete)
	assert.Same(t, lesson, n.Lesson(), "lesson stays active on the completion screen")
	assert.Same(t, lesson.Exercises[1], n.Exercise())
}

func TestGoTo_LeavingLessonFlowClearsPointers(t *testing.T) {
	c := catalog.Generate([]catalog.Language{"Spanish"})
	lesson := c.Lessons("Spanish", catalog.CategoryBasics)[0]

	n := NewNavigator()
	n.SetLanguage("Spanish")
	n.EnterLesson(lesson)
	n.GoTo(ScreenVocabulary)

	assert.Nil(t, n.Lesson())
	assert.Nil(t, n.Exercise())
	assert.Equal(t, catalog.Language("Spanish"), n.Language())

	n.GoTo(ScreenWelcome)
	assert.Empty(t, n.Language())
}

func TestInLessonFlow(t *testing.T) {
	for _, s := range AllScreens() {
		want := s == ScreenLesson || s == ScreenLessonComplete
		assert.Equal(t, want, s.InLessonFlow(), s.String())
	}
}
