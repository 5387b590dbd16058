package progress

import (
	"slices"
)

// LanguageProgress tracks a learner's standing in one language.
// XP never decreases and Level only increases.
type LanguageProgress struct {
	Level            int               `json:"level"`
	XP               int               `json:"xp"`
	CompletedLessons []string          `json:"completedLessons"`
	Vocabulary       []VocabularyEntry `json:"vocabulary"`
}

// NewLanguageProgress returns progress for a language that was just selected.
func NewLanguageProgress() *LanguageProgress {
	return &LanguageProgress{
		Level:            1,
		XP:               0,
		CompletedLessons: []string{},
		Vocabulary:       []VocabularyEntry{},
	}
}

// AwardXP adds XP. Non-positive amounts are ignored.
// Levels are not re-evaluated here; call ApplyLevelUps for that.
func (p *LanguageProgress) AwardXP(amount int) {
	if amount <= 0 {
		return
	}
	p.XP += amount
}

// ApplyLevelUps raises the level while XP meets the current level's threshold.
// Returns every level reached, in order, so each one can be reported.
func (p *LanguageProgress) ApplyLevelUps() []int {
	if p.Level < 1 {
		p.Level = 1
	}
	var reached []int
	for p.XP >= LevelThreshold(p.Level) {
		p.Level++
		reached = append(reached, p.Level)
	}
	return reached
}

// XPToNextLevel returns how much XP is still needed to leave the current level.
func (p *LanguageProgress) XPToNextLevel() int {
	return LevelThreshold(p.Level) - p.XP
}

// HasCompleted reports whether the lesson is in the completed set.
func (p *LanguageProgress) HasCompleted(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// MarkLessonCompleted adds the lesson to the completed set.
// Returns false if it was already there.
func (p *LanguageProgress) MarkLessonCompleted(lessonID string) bool {
	if p.HasCompleted(lessonID) {
		return false
	}
	p.CompletedLessons = append(p.CompletedLessons, lessonID)
	return true
}
