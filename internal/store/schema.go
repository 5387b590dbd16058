package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// UserRecordsColumns holds the columns for the "user_records" table.
	UserRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserRecordsTable holds the whole-record snapshots of learners, one row per key.
	UserRecordsTable = &schema.Table{
		Name:       "user_records",
		Columns:    UserRecordsColumns,
		PrimaryKey: []*schema.Column{UserRecordsColumns[0]},
	}

	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "lesson_id", Type: field.TypeString, Nullable: true},
		{Name: "exercise_id", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool, Nullable: true},
		{Name: "xp_delta", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true},
	}
	// ProgressEventsTable holds the append-only log of learning activity.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[4]},
			},
			{
				Name:    "progressevent_language",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[5]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		UserRecordsTable,
		ProgressEventsTable,
	}
)
