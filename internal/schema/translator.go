package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Translator is the interpreter profile of a back-office user with the
// TRANSLATOR role. Identity (name, email, phone) lives on the user row;
// this holds only the roster data used for booking assignments.
type Translator struct {
	ent.Schema
}

func (Translator) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		ArchiveMixin{},
	}
}

func (Translator) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id, one profile per user"),

		field.JSON("languages", []string{}).
			Comment(`Working languages, e.g. ["Arabic","English","Hindi"]`),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Base city; assignments prefer local translators"),

		field.Enum("status").
			Values("AVAILABLE", "BUSY", "OFFLINE").
			Default("AVAILABLE"),

		field.Text("bio").
			Optional(),

		field.Float("day_rate").
			Optional().
			Nillable().
			Comment("USD per day, informational"),
	}
}

func (Translator) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}

func (Translator) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("translator_profile").
			Unique().
			Required().
			Field("user_id"),
	}
}
