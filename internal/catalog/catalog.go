package catalog

import (
	"sort"

	"github.com/samber/lo"
)

// Catalog maps each language to its lessons grouped by category.
// Lessons and exercises are shared pointers: marking one completed is
// visible to every holder of the catalog.
type Catalog map[Language]map[Category][]*Lesson

// Has reports whether the language is part of the catalog.
func (c Catalog) Has(lang Language) bool {
	_, ok := c[lang]
	return ok
}

// Languages returns the catalog languages sorted by name.
func (c Catalog) Languages() []Language {
	langs := lo.Keys(c)
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Lessons returns the lessons of a category in order, or nil.
func (c Catalog) Lessons(lang Language, cat Category) []*Lesson {
	return c[lang][cat]
}

// Lesson finds a lesson by id within a category.
func (c Catalog) Lesson(lang Language, cat Category, lessonID string) (*Lesson, bool) {
	return lo.Find(c[lang][cat], func(l *Lesson) bool {
		return l.ID == lessonID
	})
}

// LessonByID finds a lesson by id across all categories of a language.
func (c Catalog) LessonByID(lang Language, lessonID string) (*Lesson, bool) {
	for _, cat := range AllCategories() {
		if l, ok := c.Lesson(lang, cat, lessonID); ok {
			return l, true
		}
	}
	return nil, false
}

// LessonCount returns the number of lessons available for a language.
func (c Catalog) LessonCount(lang Language) int {
	return lo.SumBy(lo.Values(c[lang]), func(ls []*Lesson) int { return len(ls) })
}

// ExerciseCount returns the number of exercises available for a language.
func (c Catalog) ExerciseCount(lang Language) int {
	total := 0
	for _, lessons := range c[lang] {
		total += lo.SumBy(lessons, func(l *Lesson) int { return len(l.Exercises) })
	}
	return total
}

// MarkCompleted flags the given lessons as completed. Unknown ids are ignored.
// Used to restore lesson state from persisted progress.
func (c Catalog) MarkCompleted(lang Language, lessonIDs []string) int {
	marked := 0
	for _, id := range lessonIDs {
		if l, ok := c.LessonByID(lang, id); ok {
			l.Completed = true
			marked++
		}
	}
	return marked
}
