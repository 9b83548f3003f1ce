package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one scored answer. The attempt log is append-only;
// attempt ids continue monotonically across sessions.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("attempt_id").
			Unique().
			Immutable().
			Comment("Question id assigned at generation time"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("operation").
			NotEmpty(),
		field.Int("digits"),
		field.String("question").
			Comment("Display expression, e.g. \"17 + 48\""),
		field.Int("num1").
			Default(0).
			Comment("First operand (0 for complex patterns)"),
		field.Int("num2").
			Default(0).
			Comment("Second operand (0 for complex patterns)"),
		field.Float("user_answer").
			Comment("Parsed submission; NaN is stored as 0 with correct=false"),
		field.Float("correct_answer"),
		field.Bool("correct"),
		field.Float("time_taken").
			Comment("Seconds, paused intervals excluded"),
		field.Bool("weakness_target").
			Default(false),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation", "digits"),
		index.Fields("session_id"),
		index.Fields("attempt_id"),
	}
}
