package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent records one learning activity: sign-in, lesson progress,
// level-ups, vocabulary changes, settings updates.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Run of the app the event belongs to"),
		field.String("kind").
			NotEmpty(),
		field.String("language").
			Optional().
			Nillable(),
		field.String("lesson_id").
			Optional().
			Nillable(),
		field.String("exercise_id").
			Optional().
			Nillable(),
		field.Bool("correct").
			Optional().
			Nillable().
			Comment("Set on exercise_completed and word_reviewed"),
		field.Int("xp_delta").
			Default(0),
		field.Int("level").
			Optional().
			Nillable().
			Comment("Level reached, or mastery after a review"),
		field.String("detail").
			Optional().
			Nillable(),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("language"),
	}
}
