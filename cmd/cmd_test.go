package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/store"
)

func init() {
	color.NoColor = true
}

var now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func sampleUser() *progress.User {
	u := progress.NewUser("ana", "ana@example.com", now)
	p := u.SelectLanguage("Spanish")
	p.AwardXP(120)
	p.ApplyLevelUps()
	p.MarkLessonCompleted("Spanish-Basics-1")
	p.AddWord("hola", "hello", "", now.Add(-48*time.Hour))
	p.AddWord("gato", "cat", "", now.Add(time.Hour))
	u.Streak = 3
	return u
}

// run executes the root command against a database in dir.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPrintStats(t *testing.T) {
	var out bytes.Buffer
	printStats(&out, statsInput{
		User:    sampleUser(),
		Catalog: catalog.Generate([]catalog.Language{"Spanish"}),
		Counts:  map[string]int{store.KindExerciseCompleted: 4},
		Sessions: []store.SessionSummary{
			{SessionID: "a", Exercises: 4, Correct: 3},
		},
		Now: now,
	})

	s := out.String()
	assert.Contains(t, s, "ana <ana@example.com>")
	assert.Contains(t, s, "3 day(s)")
	assert.Contains(t, s, "* Spanish")
	assert.Contains(t, s, "1/30")
	assert.Contains(t, s, "Accuracy: 75%")
	assert.Contains(t, s, "exercise_completed")
}

func TestPrintStats_NoUser(t *testing.T) {
	var out bytes.Buffer
	printStats(&out, statsInput{})
	assert.Contains(t, out.String(), "No learner registered")
}

func TestPrintHistory(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, []store.SessionSummary{{
		SessionID: "a",
		Start:     now,
		End:       now.Add(90 * time.Second),
		Exercises: 2,
		Correct:   1,
		XP:        10,
		Languages: []string{"Spanish"},
	}})

	s := out.String()
	assert.Contains(t, s, "1:30")
	assert.Contains(t, s, "50%")
	assert.Contains(t, s, "Spanish")
	assert.Contains(t, s, "1 sessions")

	out.Reset()
	printHistory(&out, nil)
	assert.Contains(t, out.String(), "No sessions found")
}

func TestPrintVocabulary(t *testing.T) {
	p := sampleUser().ProgressFor("Spanish")

	var out bytes.Buffer
	printVocabulary(&out, p, now, false)
	assert.Contains(t, out.String(), "hola")
	assert.Contains(t, out.String(), "gato")
	assert.Contains(t, out.String(), "2 words (1 due)")

	out.Reset()
	printVocabulary(&out, p, now, true)
	assert.Contains(t, out.String(), "hola")
	assert.NotContains(t, out.String(), "gato")
}

func TestPrintCatalog(t *testing.T) {
	c := catalog.Generate([]catalog.Language{"Spanish", "French"})

	var out bytes.Buffer
	printCatalog(&out, c, []catalog.Language{"French"})

	s := out.String()
	assert.Contains(t, s, "French-Basics-1")
	assert.NotContains(t, s, "Spanish-")
	assert.Contains(t, s, "30 lessons")
}

func TestWriteRecord(t *testing.T) {
	raw := []byte(`{"username":"ana","streak":3}`)

	var out bytes.Buffer
	require.NoError(t, writeRecord(&out, raw, "yaml"))
	assert.Contains(t, out.String(), "username: ana")
	assert.Contains(t, out.String(), "streak: 3")

	out.Reset()
	require.NoError(t, writeRecord(&out, raw, "json"))
	assert.Equal(t, string(raw)+"\n", out.String())
}

func TestCommands(t *testing.T) {
	t.Setenv("LINGUALEARN_LANGUAGES", "Spanish,French")
	dbPath := filepath.Join(t.TempDir(), "lingualearn.db")

	_, err := run(t, dbPath, "export", "--format", "json")
	require.Error(t, err, "export without a learner")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.UserRepo().Save(context.Background(), store.DefaultUserKey, sampleUser()))
	require.NoError(t, st.Close())

	out, err := run(t, dbPath, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "username: ana")

	out, err = run(t, dbPath, "catalog", "Spanish")
	require.NoError(t, err)
	assert.Contains(t, out, "Spanish-Food-4")

	_, err = run(t, dbPath, "catalog", "Klingon")
	require.Error(t, err)

	_, err = run(t, dbPath, "reset")
	require.Error(t, err, "reset needs --yes")

	_, err = run(t, dbPath, "reset", "--yes")
	require.NoError(t, err)

	out, err = run(t, dbPath, "stats")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "No learner registered"), out)
}
