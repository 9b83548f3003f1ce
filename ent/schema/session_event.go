package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("mode").
			NotEmpty().
			Comment("endless, drill or sprint"),
		field.String("operation").
			NotEmpty(),
		field.Int("digits"),
		field.Bool("adaptive").
			Default(false),
		field.Int("questions").
			Default(0).
			Comment("Total questions (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("best_streak").
			Default(0).
			Comment("Longest correct run (on end only)"),
		field.Float("avg_time").
			Default(0).
			Comment("Average seconds per question (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Active duration in seconds, pauses excluded (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
