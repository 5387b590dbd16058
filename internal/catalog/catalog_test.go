package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	c := Generate([]Language{"Spanish", "French"})

	assert.True(t, c.Has("Spanish"))
	assert.False(t, c.Has("Klingon"))
	assert.Equal(t, []Language{"French", "Spanish"}, c.Languages())

	l, ok := c.Lesson("Spanish", CategoryNumbers, "Spanish-Numbers-2")
	require.True(t, ok)
	assert.Equal(t, "Numbers 2", l.Title)

	_, ok = c.Lesson("Spanish", CategoryFood, "Spanish-Numbers-2")
	assert.False(t, ok, "lesson must be looked up within its own category")

	l, ok = c.LessonByID("French", "French-Conversation-5")
	require.True(t, ok)
	assert.Equal(t, CategoryConversation, l.Category)

	_, ok = c.LessonByID("Klingon", "Klingon-Basics-1")
	assert.False(t, ok)
}

func TestCatalogMarkCompleted(t *testing.T) {
	c := Generate([]Language{"Spanish"})

	n := c.MarkCompleted("Spanish", []string{"Spanish-Basics-1", "Spanish-Food-4", "bogus"})
	assert.Equal(t, 2, n)

	l, _ := c.LessonByID("Spanish", "Spanish-Food-4")
	assert.True(t, l.Completed)
	l, _ = c.LessonByID("Spanish", "Spanish-Food-3")
	assert.False(t, l.Completed)
}

func TestLessonProgressHelpers(t *testing.T) {
	c := Generate([]Language{"Spanish"})
	l := c.Lessons("Spanish", CategoryBasics)[0]

	assert.Equal(t, 2, l.ExerciseIndex("Spanish-Basics-1-ex-3"))
	assert.Equal(t, -1, l.ExerciseIndex("Spanish-Basics-2-ex-3"))
	assert.False(t, l.AllExercisesCompleted())

	for _, ex := range l.Exercises {
		ex.Completed = true
	}
	assert.True(t, l.AllExercisesCompleted())
	assert.Equal(t, 5, l.CompletedExercises())
}

func TestLanguageTag(t *testing.T) {
	assert.Equal(t, "es", Language("Spanish").Tag().String())
	assert.Equal(t, "und", Language("Klingon").Tag().String())
	assert.Equal(t, "Klingon", Language("Klingon").NativeName())
	assert.NotEmpty(t, Language("Japanese").NativeName())
}
