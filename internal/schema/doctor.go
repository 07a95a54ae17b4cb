package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor is a physician profile attached to exactly one hospital.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		PublishMixin{},
		ArchiveMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("hospital_id", uuid.UUID{}).
			Comment("FK → hospitals.id"),

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

		field.String("title_en").
			Optional().
			Nillable().
			MaxLen(255).
			Comment(`Professional title, e.g. "Senior Consultant, Cardiology"`),

		field.String("title_ar").
			Optional().
			Nillable().
			MaxLen(255),

		field.JSON("specialties_en", []string{}).
			Optional(),

		field.JSON("specialties_ar", []string{}).
			Optional(),

		field.JSON("qualifications", []string{}).
			Optional().
			Comment(`Degrees and fellowships, e.g. ["MBBS","MD","DM Cardiology"]`),

		field.Int("experience_years").
			Default(0).
			NonNegative(),

		field.JSON("languages", []string{}).
			Optional().
			Comment(`Languages spoken with patients, e.g. ["English","Arabic","Hindi"]`),

		field.Text("bio_en").
			Optional(),

		field.Text("bio_ar").
			Optional(),

		field.String("image").
			Optional().
			Nillable().
			MaxLen(500),

		field.Float("consultation_fee").
			Optional().
			Nillable().
			Comment("USD, informational only"),

		field.Bool("telemedicine_available").
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

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("hospital_id"),
		index.Fields("published", "is_archived"),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hospital", Hospital.Type).
			Ref("doctors").
			Unique().
			Required().
			Field("hospital_id"),
	}
}
