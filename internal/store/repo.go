package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Before   int64     // sequence < Before
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	Language string    // exact language match when non-empty
	Newest   bool      // order by sequence descending
}

// Event kinds recorded in the progress log.
const (
	KindSessionStart      = "session_start"
	KindRegister          = "register"
	KindLogin             = "login"
	KindLanguageSelected  = "language_selected"
	KindLessonStarted     = "lesson_started"
	KindExerciseCompleted = "exercise_completed"
	KindLessonCompleted   = "lesson_completed"
	KindLevelUp           = "level_up"
	KindWordAdded         = "word_added"
	KindWordReviewed      = "word_reviewed"
	KindSettingsUpdated   = "settings_updated"
)

// ProgressEventData captures one learning activity. Optional fields left at
// their zero value are stored as NULL.
type ProgressEventData struct {
	SessionID  string
	Kind       string
	Language   string
	LessonID   string
	ExerciseID string
	Correct    *bool
	XPDelta    int
	Level      int
	Detail     string
}

// ProgressEventRecord is a stored progress event.
type ProgressEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// EventRepo provides append and query access to the progress event log.
type EventRepo interface {
	// AppendProgressEvent records a progress event with the next global sequence.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// QueryProgressEvents returns events matching opts, optionally limited to kinds.
	QueryProgressEvents(ctx context.Context, opts QueryOpts, kinds ...string) ([]ProgressEventRecord, error)

	// CountByKind returns the number of events per kind.
	CountByKind(ctx context.Context) (map[string]int, error)

	// Purge deletes every progress event.
	Purge(ctx context.Context) error
}
