package store

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

// SessionSummary aggregates the progress events of one app run.
type SessionSummary struct {
	SessionID        string
	Start            time.Time
	End              time.Time
	Exercises        int
	Correct          int
	XP               int
	LessonsCompleted int
	LevelUps         int
	WordsAdded       int
	WordsReviewed    int
	Languages        []string
	Events           []ProgressEventRecord // oldest first
}

// Duration returns the time between the first and last event.
func (s SessionSummary) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Accuracy returns the share of correct exercises, or 0 with none answered.
func (s SessionSummary) Accuracy() float64 {
	if s.Exercises == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Exercises)
}

// SummarizeSessions groups events by session id, newest session first.
// Events without a session id are skipped.
func SummarizeSessions(events []ProgressEventRecord) []SessionSummary {
	events = lo.Filter(events, func(e ProgressEventRecord, _ int) bool { return e.SessionID != "" })
	slices.SortFunc(events, func(a, b ProgressEventRecord) int {
		switch {
		case a.Sequence < b.Sequence:
			return -1
		case a.Sequence > b.Sequence:
			return 1
		}
		return 0
	})

	bySession := lo.GroupBy(events, func(e ProgressEventRecord) string { return e.SessionID })

	out := make([]SessionSummary, 0, len(bySession))
	for id, evs := range bySession {
		s := SessionSummary{
			SessionID: id,
			Start:     evs[0].Timestamp,
			End:       evs[len(evs)-1].Timestamp,
			Events:    evs,
		}
		for _, e := range evs {
			s.XP += e.XPDelta
			switch e.Kind {
			case KindExerciseCompleted:
				s.Exercises++
				if e.Correct != nil && *e.Correct {
					s.Correct++
				}
			case KindLessonCompleted:
				s.LessonsCompleted++
			case KindLevelUp:
				s.LevelUps++
			case KindWordAdded:
				s.WordsAdded++
			case KindWordReviewed:
				s.WordsReviewed++
			}
		}
		s.Languages = lo.Uniq(lo.FilterMap(evs, func(e ProgressEventRecord, _ int) (string, bool) {
			return e.Language, e.Language != ""
		}))
		out = append(out, s)
	}

	slices.SortFunc(out, func(a, b SessionSummary) int {
		if c := b.Start.Compare(a.Start); c != 0 {
			return c
		}
		return int(b.Events[0].Sequence - a.Events[0].Sequence)
	})
	return out
}
