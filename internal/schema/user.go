package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a back-office account. The public site has no user accounts;
// patients interact only through booking enquiries.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		ArchiveMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(100),

		field.String("email").
			NotEmpty().
			Unique().
			MaxLen(255),

		field.String("password_hash").
			NotEmpty().
			Sensitive(),

		field.Enum("role").
			Values("ADMIN", "EDITOR", "TRANSLATOR").
			Default("EDITOR"),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.Enum("locale").
			Values("en", "ar").
			Default("en").
			Comment("Preferred back-office UI language"),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Bool("must_change_password").
			Default(true),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("translator_profile", Translator.Type).
			Unique(),
	}
}
