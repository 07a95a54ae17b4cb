package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/shifaalhind/backend/internal/content"
)

// ContentPage is editorial content: blog posts and static pages (about,
// how-it-works, FAQ). Both body sides use the same typed block format.
type ContentPage struct {
	ent.Schema
}

func (ContentPage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		PublishMixin{},
		ArchiveMixin{},
	}
}

func (ContentPage) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").
			Values("BLOG", "STATIC").
			Default("BLOG"),

		field.String("title_en").
			NotEmpty().
			MaxLen(255),

		field.String("title_ar").
			NotEmpty().
			MaxLen(255),

		field.String("slug").
			MaxLen(160).
			NotEmpty().
			Unique(),

		field.Text("excerpt_en").
			Optional(),

		field.Text("excerpt_ar").
			Optional(),

		field.JSON("body_en", content.Document{}).
			Optional(),

		field.JSON("body_ar", content.Document{}).
			Optional(),

		field.String("meta_title_en").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("meta_title_ar").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("meta_description_en").
			Optional(),

		field.Text("meta_description_ar").
			Optional(),

		field.String("cover_image").
			Optional().
			Nillable().
			MaxLen(500),

		field.JSON("tags", []string{}).
			Optional(),

		field.JSON("faq", []content.FAQItem{}).
			Optional(),

		field.String("author_name").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Display byline; may differ from the owning user"),

		field.UUID("author_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),
	}
}

func (ContentPage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("kind", "published", "is_archived"),
	}
}

func (ContentPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("author", User.Type).
			Unique().
			Field("author_id"),
	}
}
