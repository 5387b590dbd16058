package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"user_records", "progress_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	u := progress.NewUser("ana", "ana@example.com", time.Now())
	if err := s.UserRepo().Save(ctx, DefaultUserKey, u); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.UserRepo().Load(ctx, DefaultUserKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Username != "ana" {
		t.Fatalf("loaded user = %+v, want ana", got)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	got, err := DefaultDBPath(filepath.Join(dir, "nested", "x.db"))
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if got != filepath.Join(dir, "nested", "x.db") {
		t.Errorf("override path = %q", got)
	}

	t.Setenv("XDG_DATA_HOME", dir)
	got, err = DefaultDBPath("")
	if err != nil {
		t.Fatalf("xdg: %v", err)
	}
	want := filepath.Join(dir, "lingualearn", "lingualearn.db")
	if got != want {
		t.Errorf("xdg path = %q, want %q", got, want)
	}
}

// seedUser builds a user with progress in one language.
func seedUser(now time.Time) *progress.User {
	u := progress.NewUser("ana", "ana@example.com", now)
	p := u.SelectLanguage(catalog.Language("Spanish"))
	p.AwardXP(120)
	p.ApplyLevelUps()
	p.MarkLessonCompleted("Spanish-Basics-1")
	p.AddWord("hola", "hello", "greeting", now)
	u.Streak = 3
	return u
}
