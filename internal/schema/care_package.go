package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CarePackage is a fixed-price care bundle: treatment plus travel and
// accommodation services, priced as a single figure. The type cannot be
// called Package because entc lowercases it for the predicate package name.
type CarePackage struct {
	ent.Schema
}

func (CarePackage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "packages"},
	}
}

func (CarePackage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		PublishMixin{},
		ArchiveMixin{},
	}
}

func (CarePackage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("treatment_id", uuid.UUID{}).
			Comment("FK → treatments.id"),

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

		field.Text("description_en").
			Optional(),

		field.Text("description_ar").
			Optional(),

		field.Float("price").
			Min(0).
			Comment("All-inclusive price"),

		field.String("currency").
			Default("USD").
			MaxLen(3),

		field.Int("duration_days").
			Optional().
			Nillable().
			Comment("Total stay covered by the package"),

		field.JSON("inclusions_en", []string{}).
			Optional().
			Comment(`What the price covers, e.g. ["Surgery","Airport transfers","7 nights hotel"]`),

		field.JSON("inclusions_ar", []string{}).
			Optional(),

		field.JSON("exclusions_en", []string{}).
			Optional(),

		field.JSON("exclusions_ar", []string{}).
			Optional(),

		field.Bool("featured").
			Default(false),
	}
}

func (CarePackage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("treatment_id"),
		index.Fields("hospital_id"),
		index.Fields("published", "is_archived"),
	}
}

func (CarePackage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("treatment", Treatment.Type).
			Ref("packages").
			Unique().
			Required().
			Field("treatment_id"),
		edge.From("hospital", Hospital.Type).
			Ref("packages").
			Unique().
			Required().
			Field("hospital_id"),
	}
}
