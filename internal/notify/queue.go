package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient message describing the outcome of an operation.
type Notification struct {
	ID        int64
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// Timer is a scheduled expiry that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. time.AfterFunc satisfies it.
type Scheduler func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Queue holds visible notifications. Each pushed notification removes itself
// after the TTL; Dismiss removes it early and cancels its timer.
// All methods are safe for concurrent use, since expiry runs on timer goroutines.
type Queue struct {
	mu       sync.Mutex
	items    []Notification
	timers   map[int64]Timer
	lastID   int64
	ttl      time.Duration
	now      func() time.Time
	schedule Scheduler
	onChange func()
}

// Option configures a Queue.
type Option func(*Queue)

// WithTTL overrides the display duration.
func WithTTL(d time.Duration) Option {
	return func(q *Queue) { q.ttl = d }
}

// WithClock overrides the time source used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// WithScheduler overrides how expiry is scheduled.
func WithScheduler(s Scheduler) Option {
	return func(q *Queue) { q.schedule = s }
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{
		timers:   make(map[int64]Timer),
		ttl:      DefaultTTL,
		now:      time.Now,
		schedule: afterFunc,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// OnChange registers a callback invoked after every push or removal.
// It runs outside the queue lock, possibly on a timer goroutine.
func (q *Queue) OnChange(f func()) {
	q.mu.Lock()
	q.onChange = f
	q.mu.Unlock()
}

// Push appends a notification and schedules its removal.
func (q *Queue) Push(message string, severity Severity) Notification {
	if severity == "" {
		severity = SeverityInfo
	}

	q.mu.Lock()
	now := q.now()
	id := now.UnixMilli()
	if id <= q.lastID {
		id = q.lastID + 1
	}
	q.lastID = id

	n := Notification{
		ID:        id,
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
	}
	q.items = append(q.items, n)
	q.timers[id] = q.schedule(q.ttl, func() { q.remove(id) })
	cb := q.onChange
	q.mu.Unlock()

	if cb != nil {
		cb()
	}
	return n
}

// Info pushes an info notification.
func (q *Queue) Info(message string) Notification { return q.Push(message, SeverityInfo) }

// Success pushes a success notification.
func (q *Queue) Success(message string) Notification { return q.Push(message, SeveritySuccess) }

// Warning pushes a warning notification.
func (q *Queue) Warning(message string) Notification { return q.Push(message, SeverityWarning) }

// Error pushes an error notification.
func (q *Queue) Error(message string) Notification { return q.Push(message, SeverityError) }

// Items returns a copy of the visible notifications, oldest first.
func (q *Queue) Items() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of visible notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Dismiss removes a notification before it expires and cancels its timer.
// Returns false if the notification was already gone.
func (q *Queue) Dismiss(id int64) bool {
	q.mu.Lock()
	if t, ok := q.timers[id]; ok {
		t.Stop()
	}
	q.mu.Unlock()
	return q.remove(id)
}

// Close cancels every pending expiry and clears the queue.
func (q *Queue) Close() {
	q.mu.Lock()
	for _, t := range q.timers {
		t.Stop()
	}
	q.timers = make(map[int64]Timer)
	q.items = nil
	q.mu.Unlock()
}

// remove deletes the notification with id. Removing a missing id is a no-op.
func (q *Queue) remove(id int64) bool {
	q.mu.Lock()
	delete(q.timers, id)
	idx := -1
	for i, n := range q.items {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items[:idx], q.items[idx+1:]...)
	cb := q.onChange
	q.mu.Unlock()

	if cb != nil {
		cb()
	}
	return true
}
