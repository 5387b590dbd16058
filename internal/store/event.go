package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out the global monotonic sequence stamped on every
// progress event. Timestamps can collide within a millisecond; the sequence
// gives a total order that survives restarts.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the progress_events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	if data.Kind == "" {
		return fmt.Errorf("append progress event: empty kind")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(ProgressEventsTable.Name).
		Columns(
			"sequence", "timestamp", "session_id", "kind", "language",
			"lesson_id", "exercise_id", "correct", "xp_delta", "level", "detail",
		).
		Values(
			seqNum,
			time.Now().UTC(),
			data.SessionID,
			data.Kind,
			nullString(data.Language),
			nullString(data.LessonID),
			nullString(data.ExerciseID),
			nullBool(data.Correct),
			data.XPDelta,
			nullInt(data.Level),
			nullString(data.Detail),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryProgressEvents(ctx context.Context, opts QueryOpts, kinds ...string) ([]ProgressEventRecord, error) {
	sel := builder().
		Select(
			"id", "sequence", "timestamp", "session_id", "kind", "language",
			"lesson_id", "exercise_id", "correct", "xp_delta", "level", "detail",
		).
		From(entsql.Table(ProgressEventsTable.Name))

	var preds []*entsql.Predicate
	if len(kinds) > 0 {
		vals := make([]any, len(kinds))
		for i, k := range kinds {
			vals[i] = k
		}
		preds = append(preds, entsql.In("kind", vals...))
	}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Language != "" {
		preds = append(preds, entsql.EQ("language", opts.Language))
	}
	if len(preds) > 0 {
		sel = sel.Where(entsql.And(preds...))
	}

	if opts.Newest {
		sel = sel.OrderBy(entsql.Desc("sequence"))
	} else {
		sel = sel.OrderBy(entsql.Asc("sequence"))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query progress events: %w", err)
	}
	defer rows.Close()

	var out []ProgressEventRecord
	for rows.Next() {
		var (
			rec                            ProgressEventRecord
			language, lessonID, exerciseID sql.NullString
			detail                         sql.NullString
			correct                        sql.NullBool
			level                          sql.NullInt64
		)
		err := rows.Scan(
			&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Kind,
			&language, &lessonID, &exerciseID, &correct, &rec.XPDelta, &level, &detail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan progress event: %w", err)
		}
		rec.Language = language.String
		rec.LessonID = lessonID.String
		rec.ExerciseID = exerciseID.String
		rec.Detail = detail.String
		rec.Level = int(level.Int64)
		if correct.Valid {
			c := correct.Bool
			rec.Correct = &c
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) CountByKind(ctx context.Context) (map[string]int, error) {
	query, args := builder().
		Select("kind", entsql.Count("*")).
		From(entsql.Table(ProgressEventsTable.Name)).
		GroupBy("kind").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count progress events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

func (r *eventRepo) Purge(ctx context.Context) error {
	query, args := builder().Delete(ProgressEventsTable.Name).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("purge progress events: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
