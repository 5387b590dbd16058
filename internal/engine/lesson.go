package engine

import (
	"fmt"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/store"
)

// SelectLanguage makes lang the active language, creating its progress on
// first selection, and shows its dashboard.
func (e *Engine) SelectLanguage(lang catalog.Language) error {
	if !e.catalog.Has(lang) {
		e.queue.Error(fmt.Sprintf("Language %s not available", lang))
		return &InvalidLanguageError{Language: lang}
	}
	if e.user == nil {
		e.queue.Error("Please log in first")
		return ErrNotSignedIn
	}

	e.user.SelectLanguage(lang)
	e.nav.SetLanguage(lang)
	e.nav.GoTo(session.ScreenLanguageDashboard)
	e.queue.Info(fmt.Sprintf("You've selected %s!", lang))

	e.record(store.ProgressEventData{Kind: store.KindLanguageSelected, Language: string(lang)})
	e.save()
	return nil
}

// StartLesson opens a lesson of the active language at its first exercise.
func (e *Engine) StartLesson(cat catalog.Category, lessonID string) error {
	lang := e.nav.Language()
	lesson, ok := e.catalog.Lesson(lang, cat, lessonID)
	if !ok {
		e.queue.Error("Lesson not found")
		return &LessonNotFoundError{Language: lang, Category: cat, LessonID: lessonID}
	}

	e.nav.EnterLesson(lesson)
	e.queue.Info(fmt.Sprintf("Starting lesson: %s", lesson.Title))

	e.record(store.ProgressEventData{
		Kind:     store.KindLessonStarted,
		Language: string(lang),
		LessonID: lesson.ID,
	})
	return nil
}

// CompleteExercise records an answer to an exercise of the active lesson.
// It does nothing when no lesson is active or the id is not one of its
// exercises. The exercise is marked completed whether or not the answer
// was correct; only a correct answer earns XP. Completing the last
// outstanding exercise completes the lesson.
func (e *Engine) CompleteExercise(exerciseID string, correct bool) {
	lesson := e.nav.Lesson()
	if lesson == nil || e.user == nil {
		return
	}
	idx := lesson.ExerciseIndex(exerciseID)
	if idx < 0 {
		return
	}
	lang := e.nav.Language()
	p := e.user.InitProgress(lang)

	lesson.Exercises[idx].Completed = true

	xp := 0
	if correct {
		xp = progress.ExerciseXP
		e.queue.Success(fmt.Sprintf("Correct! +%dXP", progress.ExerciseXP))
	} else {
		e.queue.Warning("Not quite right. Try again!")
	}
	e.record(store.ProgressEventData{
		Kind:       store.KindExerciseCompleted,
		Language:   string(lang),
		LessonID:   lesson.ID,
		ExerciseID: exerciseID,
		Correct:    &correct,
		XPDelta:    xp,
	})
	e.awardXP(p, xp)

	if lesson.AllExercisesCompleted() {
		e.completeLesson(lesson.ID)
	}

	if idx < len(lesson.Exercises)-1 {
		e.nav.SetExercise(lesson.Exercises[idx+1])
	} else {
		e.nav.GoTo(session.ScreenLessonComplete)
	}
	e.save()
}

// completeLesson flags the lesson in the catalog and, the first time only,
// adds it to the completed set with a bonus.
func (e *Engine) completeLesson(lessonID string) {
	lang := e.nav.Language()
	if lesson, ok := e.catalog.LessonByID(lang, lessonID); ok {
		lesson.Completed = true
	}

	p := e.user.InitProgress(lang)
	if !p.MarkLessonCompleted(lessonID) {
		return
	}

	e.queue.Success(fmt.Sprintf("Lesson completed! +%dXP bonus", progress.LessonBonusXP))
	e.record(store.ProgressEventData{
		Kind:     store.KindLessonCompleted,
		Language: string(lang),
		LessonID: lessonID,
		XPDelta:  progress.LessonBonusXP,
	})
	e.awardXP(p, progress.LessonBonusXP)
}
