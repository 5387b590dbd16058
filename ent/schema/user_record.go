package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserRecord stores a whole learner snapshot as versioned JSON.
type UserRecord struct {
	ent.Schema
}

func (UserRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.Int("version").
			Comment("Record layout version, upgraded on read"),
		field.JSON("data", json.RawMessage{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
