package progress

import (
	"fmt"
	"time"
)

// MaxMastery is the highest vocabulary mastery level.
const MaxMastery = 5

// ReviewIntervals are the days until the next review, indexed by mastery level.
var ReviewIntervals = []int{1, 3, 7, 14, 30, 60}

// VocabularyEntry is a word the learner saved for spaced repetition.
type VocabularyEntry struct {
	Word         string      `json:"word"`
	Translation  string      `json:"translation"`
	Context      string      `json:"context"`
	DateAdded    time.Time   `json:"dateAdded"`
	ReviewDates  []time.Time `json:"reviewDates"`
	MasteryLevel int         `json:"masteryLevel"`
}

// NextReview returns when the entry should next be reviewed.
// New words are due immediately.
func (e *VocabularyEntry) NextReview() time.Time {
	if len(e.ReviewDates) == 0 {
		return e.DateAdded
	}
	return e.ReviewDates[len(e.ReviewDates)-1]
}

// IsDue returns true if the entry is at or past its next review.
func (e *VocabularyEntry) IsDue(now time.Time) bool {
	return !now.Before(e.NextReview())
}

// AddWord appends a vocabulary entry. Duplicates are kept.
func (p *LanguageProgress) AddWord(word, translation, context string, now time.Time) *VocabularyEntry {
	p.Vocabulary = append(p.Vocabulary, VocabularyEntry{
		Word:         word,
		Translation:  translation,
		Context:      context,
		DateAdded:    now,
		ReviewDates:  []time.Time{},
		MasteryLevel: 0,
	})
	return &p.Vocabulary[len(p.Vocabulary)-1]
}

// ReviewWord records a review of the entry at index. A correct recall raises
// mastery by one, a miss lowers it by one, both clamped to [0, MaxMastery].
// The next review date is scheduled from the new mastery level.
func (p *LanguageProgress) ReviewWord(index int, correct bool, now time.Time) (*VocabularyEntry, error) {
	if index < 0 || index >= len(p.Vocabulary) {
		return nil, fmt.Errorf("vocabulary index %d out of range [0, %d)", index, len(p.Vocabulary))
	}
	e := &p.Vocabulary[index]

	if correct {
		e.MasteryLevel = min(e.MasteryLevel+1, MaxMastery)
	} else {
		e.MasteryLevel = max(e.MasteryLevel-1, 0)
	}

	next := now.AddDate(0, 0, ReviewIntervals[e.MasteryLevel])
	e.ReviewDates = append(e.ReviewDates, next)
	return e, nil
}

// DueWords returns the indices of entries due for review at now, in list order.
func (p *LanguageProgress) DueWords(now time.Time) []int {
	var due []int
	for i := range p.Vocabulary {
		if p.Vocabulary[i].IsDue(now) {
			due = append(due, i)
		}
	}
	return due
}
