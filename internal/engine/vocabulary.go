package engine

import (
	"fmt"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/store"
)

// WordInput is one word for ImportVocabulary.
type WordInput struct {
	Word        string
	Translation string
	Context     string
}

// activeProgress returns the user's progress in the active language.
func (e *Engine) activeProgress() (*progress.LanguageProgress, error) {
	if e.user == nil {
		return nil, ErrNotSignedIn
	}
	lang := e.nav.Language()
	if lang == "" || !e.catalog.Has(lang) {
		return nil, &InvalidLanguageError{Language: lang}
	}
	return e.user.InitProgress(lang), nil
}

// AddVocabularyWord saves a word in the active language. Duplicates are kept.
func (e *Engine) AddVocabularyWord(word, translation, context string) error {
	p, err := e.activeProgress()
	if err != nil {
		e.queue.Error("Select a language before adding words")
		return err
	}

	p.AddWord(word, translation, context, e.now())
	e.queue.Success(fmt.Sprintf("%q added to vocabulary", word))

	e.record(store.ProgressEventData{
		Kind:     store.KindWordAdded,
		Language: string(e.nav.Language()),
		Detail:   word,
	})
	e.save()
	return nil
}

// ImportVocabulary adds words to lang in one batch and saves once.
// Rows without a word or translation are skipped. Returns the number added.
func (e *Engine) ImportVocabulary(lang catalog.Language, words []WordInput) (int, error) {
	if e.user == nil {
		return 0, ErrNotSignedIn
	}
	if !e.catalog.Has(lang) {
		return 0, &InvalidLanguageError{Language: lang}
	}

	p := e.user.InitProgress(lang)
	now := e.now()
	var added []string
	for _, w := range words {
		if w.Word == "" || w.Translation == "" {
			continue
		}
		p.AddWord(w.Word, w.Translation, w.Context, now)
		added = append(added, w.Word)
	}
	if len(added) == 0 {
		return 0, nil
	}

	e.queue.Success(fmt.Sprintf("%d words added to vocabulary", len(added)))
	// One event per word so session summaries and stats count imports
	// the same as single adds.
	for _, w := range added {
		e.record(store.ProgressEventData{
			Kind:     store.KindWordAdded,
			Language: string(lang),
			Detail:   w,
		})
	}
	e.save()
	return len(added), nil
}

// ReviewWord grades a recall of the vocabulary entry at index in the
// active language and schedules its next review.
func (e *Engine) ReviewWord(index int, correct bool) error {
	p, err := e.activeProgress()
	if err != nil {
		e.queue.Error("Select a language before reviewing words")
		return err
	}

	entry, err := p.ReviewWord(index, correct, e.now())
	if err != nil {
		e.queue.Error("Word not found")
		return fmt.Errorf("review word: %w", err)
	}

	if correct {
		e.queue.Success(fmt.Sprintf("%q mastery %d/%d", entry.Word, entry.MasteryLevel, progress.MaxMastery))
	} else {
		e.queue.Info(fmt.Sprintf("Keep practicing %q", entry.Word))
	}

	e.record(store.ProgressEventData{
		Kind:     store.KindWordReviewed,
		Language: string(e.nav.Language()),
		Correct:  &correct,
		Level:    entry.MasteryLevel,
		Detail:   entry.Word,
	})
	e.save()
	return nil
}
