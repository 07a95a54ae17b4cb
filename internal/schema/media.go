package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Media is an uploaded asset stored in the S3 bucket. Catalog entities
// reference media by URL; this table is the upload registry.
type Media struct {
	ent.Schema
}

func (Media) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		ArchiveMixin{},
	}
}

func (Media) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			MaxLen(500).
			Immutable().
			Comment("S3 object key, media/{entity}/{uuid}.{ext}"),

		field.String("content_type").
			NotEmpty().
			MaxLen(100),

		field.Int64("size_bytes").
			NonNegative(),

		field.String("alt_en").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("alt_ar").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("entity").
			Optional().
			Nillable().
			MaxLen(50).
			Comment(`What the asset belongs to: "hospital", "doctor", "treatment", "content_page"`),
	}
}

func (Media) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity"),
	}
}
