package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AchievementEvent records a badge unlock. At most one event per code.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			NotEmpty().
			Unique().
			Comment("Stable badge identifier, e.g. \"sniper\""),
		field.String("name").
			NotEmpty(),
		field.String("session_id").
			Optional().
			Comment("Session that triggered the unlock"),
	}
}
