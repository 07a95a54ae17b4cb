// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
)

// Doctor is the model entity for the Doctor schema.
type Doctor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Published holds the value of the "published" field.
	Published bool `json:"published,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// IsArchived holds the value of the "is_archived" field.
	IsArchived bool `json:"is_archived,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// FK → hospitals.id
	HospitalID uuid.UUID `json:"hospital_id,omitempty"`
	// NameEn holds the value of the "name_en" field.
	NameEn string `json:"name_en,omitempty"`
	// NameAr holds the value of the "name_ar" field.
	NameAr string `json:"name_ar,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Professional title, e.g. "Senior Consultant, Cardiology"
	TitleEn *string `json:"title_en,omitempty"`
	// TitleAr holds the value of the "title_ar" field.
	TitleAr *string `json:"title_ar,omitempty"`
	// SpecialtiesEn holds the value of the "specialties_en" field.
	SpecialtiesEn []string `json:"specialties_en,omitempty"`
	// SpecialtiesAr holds the value of the "specialties_ar" field.
	SpecialtiesAr []string `json:"specialties_ar,omitempty"`
	// Degrees and fellowships, e.g. ["MBBS","MD","DM Cardiology"]
	Qualifications []string `json:"qualifications,omitempty"`
	// ExperienceYears holds the value of the "experience_years" field.
	ExperienceYears int `json:"experience_years,omitempty"`
	// Languages spoken with patients, e.g. ["English","Arabic","Hindi"]
	Languages []string `json:"languages,omitempty"`
	// BioEn holds the value of the "bio_en" field.
	BioEn string `json:"bio_en,omitempty"`
	// BioAr holds the value of the "bio_ar" field.
	BioAr string `json:"bio_ar,omitempty"`
	// Image holds the value of the "image" field.
	Image *string `json:"image,omitempty"`
	// USD, informational only
	ConsultationFee *float64 `json:"consultation_fee,omitempty"`
	// TelemedicineAvailable holds the value of the "telemedicine_available" field.
	TelemedicineAvailable bool `json:"telemedicine_available,omitempty"`
	// MetaTitleEn holds the value of the "meta_title_en" field.
	MetaTitleEn *string `json:"meta_title_en,omitempty"`
	// MetaTitleAr holds the value of the "meta_title_ar" field.
	MetaTitleAr *string `json:"meta_title_ar,omitempty"`
	// MetaDescriptionEn holds the value of the "meta_description_en" field.
	MetaDescriptionEn string `json:"meta_description_en,omitempty"`
	// MetaDescriptionAr holds the value of the "meta_description_ar" field.
	MetaDescriptionAr string `json:"meta_description_ar,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoctorQuery when eager-loading is set.
	Edges        DoctorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoctorEdges holds the relations/edges for other nodes in the graph.
type DoctorEdges struct {
	// Hospital holds the value of the hospital edge.
	Hospital *Hospital `json:"hospital,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HospitalOrErr returns the Hospital value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoctorEdges) HospitalOrErr() (*Hospital, error) {
	if e.Hospital != nil {
		return e.Hospital, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: hospital.Label}
	}
	return nil, &NotLoadedError{edge: "hospital"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Doctor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctor.FieldSpecialtiesEn, doctor.FieldSpecialtiesAr, doctor.FieldQualifications, doctor.FieldLanguages:
			values[i] = new([]byte)
		case doctor.FieldPublished, doctor.FieldIsArchived, doctor.FieldTelemedicineAvailable:
			values[i] = new(sql.NullBool)
		case doctor.FieldConsultationFee:
			values[i] = new(sql.NullFloat64)
		case doctor.FieldExperienceYears:
			values[i] = new(sql.NullInt64)
		case doctor.FieldNameEn, doctor.FieldNameAr, doctor.FieldSlug, doctor.FieldTitleEn, doctor.FieldTitleAr, doctor.FieldBioEn, doctor.FieldBioAr, doctor.FieldImage, doctor.FieldMetaTitleEn, doctor.FieldMetaTitleAr, doctor.FieldMetaDescriptionEn, doctor.FieldMetaDescriptionAr:
			values[i] = new(sql.NullString)
		case doctor.FieldCreatedAt, doctor.FieldUpdatedAt, doctor.FieldPublishedAt, doctor.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		case doctor.FieldID, doctor.FieldHospitalID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Doctor fields.
func (_m *Doctor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctor.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case doctor.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case doctor.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case doctor.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case doctor.FieldHospitalID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field hospital_id", values[i])
			} else if value != nil {
				_m.HospitalID = *value
			}
		case doctor.FieldNameEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_en", values[i])
			} else if value.Valid {
				_m.NameEn = value.String
			}
		case doctor.FieldNameAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_ar", values[i])
			} else if value.Valid {
				_m.NameAr = value.String
			}
		case doctor.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case doctor.FieldTitleEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title_en", values[i])
			} else if value.Valid {
				_m.TitleEn = new(string)
				*_m.TitleEn = value.String
			}
		case doctor.FieldTitleAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title_ar", values[i])
			} else if value.Valid {
				_m.TitleAr = new(string)
				*_m.TitleAr = value.String
			}
		case doctor.FieldSpecialtiesEn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specialties_en", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpecialtiesEn); err != nil {
					return fmt.Errorf("unmarshal field specialties_en: %w", err)
				}
			}
		case doctor.FieldSpecialtiesAr:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specialties_ar", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpecialtiesAr); err != nil {
					return fmt.Errorf("unmarshal field specialties_ar: %w", err)
				}
			}
		case doctor.FieldQualifications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field qualifications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Qualifications); err != nil {
					return fmt.Errorf("unmarshal field qualifications: %w", err)
				}
			}
		case doctor.FieldExperienceYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experience_years", values[i])
			} else if value.Valid {
				_m.ExperienceYears = int(value.Int64)
			}
		case doctor.FieldLanguages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field languages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Languages); err != nil {
					return fmt.Errorf("unmarshal field languages: %w", err)
				}
			}
		case doctor.FieldBioEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio_en", values[i])
			} else if value.Valid {
				_m.BioEn = value.String
			}
		case doctor.FieldBioAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio_ar", values[i])
			} else if value.Valid {
				_m.BioAr = value.String
			}
		case doctor.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				_m.Image = new(string)
				*_m.Image = value.String
			}
		case doctor.FieldConsultationFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_fee", values[i])
			} else if value.Valid {
				_m.ConsultationFee = new(float64)
				*_m.ConsultationFee = value.Float64
			}
		case doctor.FieldTelemedicineAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field telemedicine_available", values[i])
			} else if value.Valid {
				_m.TelemedicineAvailable = value.Bool
			}
		case doctor.FieldMetaTitleEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_en", values[i])
			} else if value.Valid {
				_m.MetaTitleEn = new(string)
				*_m.MetaTitleEn = value.String
			}
		case doctor.FieldMetaTitleAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_ar", values[i])
			} else if value.Valid {
				_m.MetaTitleAr = new(string)
				*_m.MetaTitleAr = value.String
			}
		case doctor.FieldMetaDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description_en", values[i])
			} else if value.Valid {
				_m.MetaDescriptionEn = value.String
			}
		case doctor.FieldMetaDescriptionAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description_ar", values[i])
			} else if value.Valid {
				_m.MetaDescriptionAr = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Doctor.
// This includes values selected through modifiers, order, etc.
func (_m *Doctor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHospital queries the "hospital" edge of the Doctor entity.
func (_m *Doctor) QueryHospital() *HospitalQuery {
	return NewDoctorClient(_m.config).QueryHospital(_m)
}

// Update returns a builder for updating this Doctor.
// Note that you need to call Doctor.Unwrap() before calling this method if this Doctor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Doctor) Update() *DoctorUpdateOne {
	return NewDoctorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Doctor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Doctor) Unwrap() *Doctor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Doctor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Doctor) String() string {
	var builder strings.Builder
	builder.WriteString("Doctor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("published=")
	builder.WriteString(fmt.Sprintf("%v", _m.Published))
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsArchived))
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("hospital_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HospitalID))
	builder.WriteString(", ")
	builder.WriteString("name_en=")
	builder.WriteString(_m.NameEn)
	builder.WriteString(", ")
	builder.WriteString("name_ar=")
	builder.WriteString(_m.NameAr)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	if v := _m.TitleEn; v != nil {
		builder.WriteString("title_en=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TitleAr; v != nil {
		builder.WriteString("title_ar=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("specialties_en=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecialtiesEn))
	builder.WriteString(", ")
	builder.WriteString("specialties_ar=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecialtiesAr))
	builder.WriteString(", ")
	builder.WriteString("qualifications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Qualifications))
	builder.WriteString(", ")
	builder.WriteString("experience_years=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperienceYears))
	builder.WriteString(", ")
	builder.WriteString("languages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Languages))
	builder.WriteString(", ")
	builder.WriteString("bio_en=")
	builder.WriteString(_m.BioEn)
	builder.WriteString(", ")
	builder.WriteString("bio_ar=")
	builder.WriteString(_m.BioAr)
	builder.WriteString(", ")
	if v := _m.Image; v != nil {
		builder.WriteString("image=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConsultationFee; v != nil {
		builder.WriteString("consultation_fee=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("telemedicine_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.TelemedicineAvailable))
	builder.WriteString(", ")
	if v := _m.MetaTitleEn; v != nil {
		builder.WriteString("meta_title_en=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MetaTitleAr; v != nil {
		builder.WriteString("meta_title_ar=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("meta_description_en=")
	builder.WriteString(_m.MetaDescriptionEn)
	builder.WriteString(", ")
	builder.WriteString("meta_description_ar=")
	builder.WriteString(_m.MetaDescriptionAr)
	builder.WriteByte(')')
	return builder.String()
}

// Doctors is a parsable slice of Doctor.
type Doctors []*Doctor
