package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWord_KeepsDuplicates(t *testing.T) {
	p := NewLanguageProgress()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	p.AddWord("hola", "hello", "greeting", now)
	p.AddWord("hola", "hello", "greeting", now)

	require.Len(t, p.Vocabulary, 2)
	for _, e := range p.Vocabulary {
		assert.Equal(t, 0, e.MasteryLevel)
		assert.Empty(t, e.ReviewDates)
		assert.Equal(t, now, e.DateAdded)
	}
}

func TestReviewWord_Schedules(t *testing.T) {
	p := NewLanguageProgress()
	added := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	p.AddWord("gato", "cat", "animals", added)

	now := added.AddDate(0, 0, 1)
	e, err := p.ReviewWord(0, true, now)
	require.NoError(t, err)
	assert.Equal(t, 1, e.MasteryLevel)
	require.Len(t, e.ReviewDates, 1)
	assert.Equal(t, now.AddDate(0, 0, 3), e.ReviewDates[0])

	e, err = p.ReviewWord(0, false, now)
	require.NoError(t, err)
	assert.Equal(t, 0, e.MasteryLevel)
	assert.Len(t, e.ReviewDates, 2, "review dates are append-only")
	assert.Equal(t, now.AddDate(0, 0, 1), e.NextReview())
}

func TestReviewWord_Clamps(t *testing.T) {
	p := NewLanguageProgress()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	p.AddWord("perro", "dog", "", now)

	for i := 0; i < 10; i++ {
		_, err := p.ReviewWord(0, true, now)
		require.NoError(t, err)
	}
	assert.Equal(t, MaxMastery, p.Vocabulary[0].MasteryLevel)
	assert.Equal(t, now.AddDate(0, 0, 60), p.Vocabulary[0].NextReview())

	p2 := NewLanguageProgress()
	p2.AddWord("perro", "dog", "", now)
	_, err := p2.ReviewWord(0, false, now)
	require.NoError(t, err)
	assert.Equal(t, 0, p2.Vocabulary[0].MasteryLevel)
}

func TestReviewWord_OutOfRange(t *testing.T) {
	p := NewLanguageProgress()
	_, err := p.ReviewWord(0, true, time.Now())
	assert.Error(t, err)
}

func TestDueWords(t *testing.T) {
	p := NewLanguageProgress()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	p.AddWord("uno", "one", "", now.AddDate(0, 0, -5))
	p.AddWord("dos", "two", "", now.AddDate(0, 0, -5))
	p.AddWord("tres", "three", "", now)

	_, err := p.ReviewWord(1, true, now) // next review in 3 days
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, p.DueWords(now))
	assert.Equal(t, []int{0, 1, 2}, p.DueWords(now.AddDate(0, 0, 3)))
}
