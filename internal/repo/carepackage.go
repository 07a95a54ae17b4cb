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
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// CarePackage is the model entity for the CarePackage schema.
type CarePackage struct {
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
	// FK → treatments.id
	TreatmentID uuid.UUID `json:"treatment_id,omitempty"`
	// FK → hospitals.id
	HospitalID uuid.UUID `json:"hospital_id,omitempty"`
	// NameEn holds the value of the "name_en" field.
	NameEn string `json:"name_en,omitempty"`
	// NameAr holds the value of the "name_ar" field.
	NameAr string `json:"name_ar,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// DescriptionEn holds the value of the "description_en" field.
	DescriptionEn string `json:"description_en,omitempty"`
	// DescriptionAr holds the value of the "description_ar" field.
	DescriptionAr string `json:"description_ar,omitempty"`
	// All-inclusive price
	Price float64 `json:"price,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Total stay covered by the package
	DurationDays *int `json:"duration_days,omitempty"`
	// What the price covers, e.g. ["Surgery","Airport transfers","7 nights hotel"]
	InclusionsEn []string `json:"inclusions_en,omitempty"`
	// InclusionsAr holds the value of the "inclusions_ar" field.
	InclusionsAr []string `json:"inclusions_ar,omitempty"`
	// ExclusionsEn holds the value of the "exclusions_en" field.
	ExclusionsEn []string `json:"exclusions_en,omitempty"`
	// ExclusionsAr holds the value of the "exclusions_ar" field.
	ExclusionsAr []string `json:"exclusions_ar,omitempty"`
	// Featured holds the value of the "featured" field.
	Featured bool `json:"featured,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CarePackageQuery when eager-loading is set.
	Edges        CarePackageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CarePackageEdges holds the relations/edges for other nodes in the graph.
type CarePackageEdges struct {
	// Treatment holds the value of the treatment edge.
	Treatment *Treatment `json:"treatment,omitempty"`
	// Hospital holds the value of the hospital edge.
	Hospital *Hospital `json:"hospital,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TreatmentOrErr returns the Treatment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CarePackageEdges) TreatmentOrErr() (*Treatment, error) {
	if e.Treatment != nil {
		return e.Treatment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: treatment.Label}
	}
	return nil, &NotLoadedError{edge: "treatment"}
}

// HospitalOrErr returns the Hospital value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CarePackageEdges) HospitalOrErr() (*Hospital, error) {
	if e.Hospital != nil {
		return e.Hospital, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: hospital.Label}
	}
	return nil, &NotLoadedError{edge: "hospital"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CarePackage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case carepackage.FieldInclusionsEn, carepackage.FieldInclusionsAr, carepackage.FieldExclusionsEn, carepackage.FieldExclusionsAr:
			values[i] = new([]byte)
		case carepackage.FieldPublished, carepackage.FieldIsArchived, carepackage.FieldFeatured:
			values[i] = new(sql.NullBool)
		case carepackage.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case carepackage.FieldDurationDays:
			values[i] = new(sql.NullInt64)
		case carepackage.FieldNameEn, carepackage.FieldNameAr, carepackage.FieldSlug, carepackage.FieldDescriptionEn, carepackage.FieldDescriptionAr, carepackage.FieldCurrency:
			values[i] = new(sql.NullString)
		case carepackage.FieldCreatedAt, carepackage.FieldUpdatedAt, carepackage.FieldPublishedAt, carepackage.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		case carepackage.FieldID, carepackage.FieldTreatmentID, carepackage.FieldHospitalID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CarePackage fields.
func (_m *CarePackage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case carepackage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case carepackage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case carepackage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case carepackage.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case carepackage.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case carepackage.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case carepackage.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case carepackage.FieldTreatmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_id", values[i])
			} else if value != nil {
				_m.TreatmentID = *value
			}
		case carepackage.FieldHospitalID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field hospital_id", values[i])
			} else if value != nil {
				_m.HospitalID = *value
			}
		case carepackage.FieldNameEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_en", values[i])
			} else if value.Valid {
				_m.NameEn = value.String
			}
		case carepackage.FieldNameAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_ar", values[i])
			} else if value.Valid {
				_m.NameAr = value.String
			}
		case carepackage.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case carepackage.FieldDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_en", values[i])
			} else if value.Valid {
				_m.DescriptionEn = value.String
			}
		case carepackage.FieldDescriptionAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_ar", values[i])
			} else if value.Valid {
				_m.DescriptionAr = value.String
			}
		case carepackage.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case carepackage.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case carepackage.FieldDurationDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_days", values[i])
			} else if value.Valid {
				_m.DurationDays = new(int)
				*_m.DurationDays = int(value.Int64)
			}
		case carepackage.FieldInclusionsEn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inclusions_en", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InclusionsEn); err != nil {
					return fmt.Errorf("unmarshal field inclusions_en: %w", err)
				}
			}
		case carepackage.FieldInclusionsAr:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inclusions_ar", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InclusionsAr); err != nil {
					return fmt.Errorf("unmarshal field inclusions_ar: %w", err)
				}
			}
		case carepackage.FieldExclusionsEn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exclusions_en", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExclusionsEn); err != nil {
					return fmt.Errorf("unmarshal field exclusions_en: %w", err)
				}
			}
		case carepackage.FieldExclusionsAr:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exclusions_ar", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExclusionsAr); err != nil {
					return fmt.Errorf("unmarshal field exclusions_ar: %w", err)
				}
			}
		case carepackage.FieldFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field featured", values[i])
			} else if value.Valid {
				_m.Featured = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CarePackage.
// This includes values selected through modifiers, order, etc.
func (_m *CarePackage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTreatment queries the "treatment" edge of the CarePackage entity.
func (_m *CarePackage) QueryTreatment() *TreatmentQuery {
	return NewCarePackageClient(_m.config).QueryTreatment(_m)
}

// QueryHospital queries the "hospital" edge of the CarePackage entity.
func (_m *CarePackage) QueryHospital() *HospitalQuery {
	return NewCarePackageClient(_m.config).QueryHospital(_m)
}

// Update returns a builder for updating this CarePackage.
// Note that you need to call CarePackage.Unwrap() before calling this method if this CarePackage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CarePackage) Update() *CarePackageUpdateOne {
	return NewCarePackageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CarePackage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CarePackage) Unwrap() *CarePackage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CarePackage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CarePackage) String() string {
	var builder strings.Builder
	builder.WriteString("CarePackage(")
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
	builder.WriteString("treatment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TreatmentID))
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
	builder.WriteString("description_en=")
	builder.WriteString(_m.DescriptionEn)
	builder.WriteString(", ")
	builder.WriteString("description_ar=")
	builder.WriteString(_m.DescriptionAr)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.DurationDays; v != nil {
		builder.WriteString("duration_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("inclusions_en=")
	builder.WriteString(fmt.Sprintf("%v", _m.InclusionsEn))
	builder.WriteString(", ")
	builder.WriteString("inclusions_ar=")
	builder.WriteString(fmt.Sprintf("%v", _m.InclusionsAr))
	builder.WriteString(", ")
	builder.WriteString("exclusions_en=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExclusionsEn))
	builder.WriteString(", ")
	builder.WriteString("exclusions_ar=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExclusionsAr))
	builder.WriteString(", ")
	builder.WriteString("featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Featured))
	builder.WriteByte(')')
	return builder.String()
}

// CarePackages is a parsable slice of CarePackage.
type CarePackages []*CarePackage
