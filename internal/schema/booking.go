package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Booking is a patient enquiry. Every record starts life as a LEAD from the
// public enquiry form and moves through the coordinator workflow from there.
type Booking struct {
	ent.Schema
}

func (Booking) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		ArchiveMixin{},
	}
}

func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.String("patient_name").
			NotEmpty().
			MaxLen(255),

		field.String("patient_email").
			NotEmpty().
			MaxLen(255),

		field.String("patient_phone").
			NotEmpty().
			MaxLen(20).
			Comment("E.164 normalized"),

		field.String("country").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Patient's home country, from the enquiry form"),

		field.String("locale").
			Default("en").
			MaxLen(2).
			Comment("Language the enquiry was submitted in; drives follow-up emails"),

		field.UUID("treatment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → treatments.id"),

		field.UUID("hospital_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → hospitals.id"),

		field.UUID("package_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → packages.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → doctors.id"),

		field.UUID("translator_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → translators.id, assigned when the stay is scheduled"),

		field.UUID("assigned_user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id, the coordinator handling this lead"),

		field.Time("preferred_start").
			Optional().
			Nillable().
			Comment("Start of the patient's preferred travel window"),

		field.Time("preferred_end").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional(),

		field.Enum("status").
			Values("LEAD", "CONTACTED", "CONFIRMED", "SCHEDULED", "IN_TREATMENT", "DISCHARGED", "CANCELLED").
			Default("LEAD"),

		field.Time("confirmed_at").
			Optional().
			Nillable().
			Comment("Set on the LEAD/CONTACTED → CONFIRMED transition"),

		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set on the → DISCHARGED transition"),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional(),
	}
}

func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("patient_email"),
		index.Fields("treatment_id"),
		index.Fields("assigned_user_id"),
	}
}

func (Booking) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("treatment", Treatment.Type).
			Unique().
			Field("treatment_id"),
		edge.To("hospital", Hospital.Type).
			Unique().
			Field("hospital_id"),
		edge.To("package", CarePackage.Type).
			Unique().
			Field("package_id"),
		edge.To("doctor", Doctor.Type).
			Unique().
			Field("doctor_id"),
		edge.To("translator", Translator.Type).
			Unique().
			Field("translator_id"),
		edge.To("assigned_user", User.Type).
			Unique().
			Field("assigned_user_id"),
	}
}
