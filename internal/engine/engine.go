// Package engine owns the learner's state and applies every rule that
// changes it: XP, levels, streaks, lesson completion, and vocabulary.
// The view layer calls its operations and re-renders from its getters.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/notify"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/session"
	"github.com/abhisek/lingualearn/internal/store"
)

// Persister loads and saves the whole user record. store.UserRepo satisfies it.
type Persister interface {
	Load(ctx context.Context, key string) (*progress.User, error)
	Save(ctx context.Context, key string, u *progress.User) error
}

// EventLog records progress events. store.EventRepo satisfies it.
type EventLog interface {
	AppendProgressEvent(ctx context.Context, data store.ProgressEventData) error
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Languages []catalog.Language // default catalog.DefaultLanguages
	Users     Persister          // nil disables persistence
	Events    EventLog           // nil disables the event log
	UserKey   string             // default store.DefaultUserKey
	Queue     *notify.Queue      // default notify.New()
	Now       func() time.Time   // default time.Now
	Warn      io.Writer          // default os.Stderr
	SessionID string             // default a random UUID
}

// Engine is the single owner of learner state for one run of the app.
// Operations are synchronous and must be called from one goroutine.
type Engine struct {
	languages []catalog.Language
	catalog   catalog.Catalog
	user      *progress.User
	nav       *session.Navigator
	queue     *notify.Queue

	users     Persister
	events    EventLog
	userKey   string
	now       func() time.Time
	warn      io.Writer
	sessionID string
}

// New creates an engine with a freshly generated catalog and no user.
func New(opts Options) *Engine {
	e := &Engine{
		languages: opts.Languages,
		users:     opts.Users,
		events:    opts.Events,
		userKey:   opts.UserKey,
		queue:     opts.Queue,
		now:       opts.Now,
		warn:      opts.Warn,
		sessionID: opts.SessionID,
		nav:       session.NewNavigator(),
	}
	if len(e.languages) == 0 {
		e.languages = catalog.DefaultLanguages
	}
	if e.userKey == "" {
		e.userKey = store.DefaultUserKey
	}
	if e.queue == nil {
		e.queue = notify.New()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.warn == nil {
		e.warn = os.Stderr
	}
	if e.sessionID == "" {
		e.sessionID = uuid.NewString()
	}
	e.catalog = catalog.Generate(e.languages)
	return e
}

// Start restores a saved user, if any. A restored user gets a streak update
// and their completed lessons flagged in the catalog; with a selected
// language the session resumes on that language's dashboard.
func (e *Engine) Start(ctx context.Context) error {
	e.record(store.ProgressEventData{Kind: store.KindSessionStart})

	if e.users == nil {
		return nil
	}
	u, err := e.users.Load(ctx, e.userKey)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		return nil
	}

	e.user = u
	for lang, p := range u.Progress {
		if p != nil {
			e.catalog.MarkCompleted(lang, p.CompletedLessons)
		}
	}
	e.applyStreak()

	if u.SelectedLanguage != "" && e.catalog.Has(u.SelectedLanguage) {
		e.nav.SetLanguage(u.SelectedLanguage)
		e.nav.GoTo(session.ScreenLanguageDashboard)
	}
	e.save()
	return nil
}

// User returns the current user, or nil when none is registered or loaded.
func (e *Engine) User() *progress.User { return e.user }

// Languages returns the configured languages in catalog order.
func (e *Engine) Languages() []catalog.Language { return e.languages }

// Catalog returns the generated lesson tree.
func (e *Engine) Catalog() catalog.Catalog { return e.catalog }

// Session returns the navigator holding the current screen and selections.
func (e *Engine) Session() *session.Navigator { return e.nav }

// Notifications returns the visible notifications, oldest first.
func (e *Engine) Notifications() []notify.Notification { return e.queue.Items() }

// Queue returns the notification queue, for subscribing to changes.
func (e *Engine) Queue() *notify.Queue { return e.queue }

// SessionID returns the id stamped on this run's progress events.
func (e *Engine) SessionID() string { return e.sessionID }

// CurrentProgress returns the active language's progress, or nil.
func (e *Engine) CurrentProgress() *progress.LanguageProgress {
	if e.user == nil {
		return nil
	}
	return e.user.ProgressFor(e.nav.Language())
}

// Now returns the engine's clock reading.
func (e *Engine) Now() time.Time { return e.now() }

// Navigate moves to a screen on request of the view.
func (e *Engine) Navigate(s session.Screen) {
	e.nav.GoTo(s)
}

// applyStreak runs the streak calculator for the current user and reports it.
func (e *Engine) applyStreak() {
	upd := progress.UpdateStreak(e.user, e.now())
	switch upd.Outcome {
	case progress.StreakContinued:
		e.queue.Success(fmt.Sprintf("You're on a %d day streak!", upd.Streak))
	case progress.StreakReset:
		e.queue.Info("New day, new streak!")
	}
}

// awardXP adds XP to p and applies any level-ups it unlocks, one
// notification per level reached.
func (e *Engine) awardXP(p *progress.LanguageProgress, amount int) {
	if amount <= 0 {
		return
	}
	p.AwardXP(amount)
	for _, level := range p.ApplyLevelUps() {
		e.queue.Success(fmt.Sprintf("Level Up! You are now level %d", level))
		e.record(store.ProgressEventData{
			Kind:     store.KindLevelUp,
			Language: string(e.nav.Language()),
			Level:    level,
		})
	}
}
