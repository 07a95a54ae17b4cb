package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/shifaalhind/backend/internal/content"
)

// Treatment is a medical procedure marketed on the site, with long-form
// bilingual body content and an indicative cost range.
type Treatment struct {
	ent.Schema
}

func (Treatment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		PublishMixin{},
		ArchiveMixin{},
	}
}

func (Treatment) Fields() []ent.Field {
	return []ent.Field{
		field.String("name_en").
			NotEmpty().
			MaxLen(255),

		field.String("name_ar").
			NotEmpty().
			MaxLen(255),

		field.String("slug").
			MaxLen(160).
			NotEmpty().
			Unique(),

		field.String("category_en").
			Optional().
			Nillable().
			MaxLen(100).
			Comment(`e.g. "Orthopedics", "Cardiology"`),

		field.String("category_ar").
			Optional().
			Nillable().
			MaxLen(100),

		field.Text("summary_en").
			Optional(),

		field.Text("summary_ar").
			Optional(),

		field.JSON("body_en", content.Document{}).
			Optional().
			Comment("Long-form page body as typed content blocks"),

		field.JSON("body_ar", content.Document{}).
			Optional(),

		field.Float("cost_min").
			Min(0).
			Comment("Lower bound of the indicative price range"),

		field.Float("cost_max").
			Min(0).
			Comment("Upper bound; must be >= cost_min"),

		field.String("currency").
			Default("USD").
			MaxLen(3),

		field.Int("stay_days_min").
			Optional().
			Nillable().
			Comment("Typical hospital stay, lower bound"),

		field.Int("stay_days_max").
			Optional().
			Nillable(),

		field.JSON("faq", []content.FAQItem{}).
			Optional(),

		field.JSON("images", content.Images{}).
			Optional(),

		field.Bool("featured").
			Default(false),

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
	}
}

func (Treatment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("published", "is_archived"),
		index.Fields("category_en"),
	}
}

func (Treatment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("hospitals", Hospital.Type).
			Comment("Hospitals that offer this procedure"),
		edge.To("packages", CarePackage.Type),
	}
}
