package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/shifaalhind/backend/internal/content"
)

// Hospital is a partner facility in India. All display text is stored as
// English/Arabic pairs; the public API resolves one side per request.
type Hospital struct {
	ent.Schema
}

func (Hospital) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		PublishMixin{},
		ArchiveMixin{},
	}
}

func (Hospital) Fields() []ent.Field {
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
			Unique().
			Comment("URL-friendly identifier, shared across both locales"),

		field.Text("description_en").
			Optional(),

		field.Text("description_ar").
			Optional(),

		field.String("city_en").
			NotEmpty().
			MaxLen(100),

		field.String("city_ar").
			NotEmpty().
			MaxLen(100),

		field.String("country_en").
			Default("India").
			MaxLen(100),

		field.String("country_ar").
			Default("الهند").
			MaxLen(100),

		field.String("address").
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.JSON("accreditations", []string{}).
			Optional().
			Comment(`Certification bodies, e.g. ["JCI","NABH"]`),

		field.JSON("images", content.Images{}).
			Optional(),

		field.Int("established_year").
			Optional().
			Nillable(),

		field.Int("bed_count").
			Optional().
			Nillable(),

		field.JSON("languages_supported", []string{}).
			Optional().
			Comment(`Languages the international patient desk covers`),

		field.Bool("featured").
			Default(false).
			Comment("Featured hospitals surface on the home page"),

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

func (Hospital) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("published", "is_archived"),
	}
}

func (Hospital) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("doctors", Doctor.Type),
		edge.To("packages", CarePackage.Type),
		edge.From("treatments", Treatment.Type).
			Ref("hospitals"),
	}
}
