package schema

import (
	"testing"

	"entgo.io/ent"
	entschema "entgo.io/ent/dialect/sql/schema"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lingualearn/internal/store"
)

type column struct {
	Name     string
	Nullable bool
}

func fromFields(fields ...[]ent.Field) []column {
	var out []column
	for _, fs := range fields {
		for _, f := range fs {
			d := f.Descriptor()
			out = append(out, column{Name: d.Name, Nullable: d.Optional})
		}
	}
	return out
}

func fromTable(t *entschema.Table) []column {
	var out []column
	for _, c := range t.Columns {
		if c.Name == "id" {
			continue
		}
		out = append(out, column{Name: c.Name, Nullable: c.Nullable})
	}
	return out
}

func TestProgressEventMatchesStoreTable(t *testing.T) {
	want := fromFields(EventMixin{}.Fields(), ProgressEvent{}.Fields())
	assert.Equal(t, want, fromTable(store.ProgressEventsTable))
}

func TestUserRecordMatchesStoreTable(t *testing.T) {
	assert.Equal(t, fromFields(UserRecord{}.Fields()), fromTable(store.UserRecordsTable))
}
