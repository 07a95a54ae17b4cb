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
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// Treatment is the model entity for the Treatment schema.
type Treatment struct {
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
	// NameEn holds the value of the "name_en" field.
	NameEn string `json:"name_en,omitempty"`
	// NameAr holds the value of the "name_ar" field.
	NameAr string `json:"name_ar,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// e.g. "Orthopedics", "Cardiology"
	CategoryEn *string `json:"category_en,omitempty"`
	// CategoryAr holds the value of the "category_ar" field.
	CategoryAr *string `json:"category_ar,omitempty"`
	// SummaryEn holds the value of the "summary_en" field.
	SummaryEn string `json:"summary_en,omitempty"`
	// SummaryAr holds the value of the "summary_ar" field.
	SummaryAr string `json:"summary_ar,omitempty"`
	// Long-form page body as typed content blocks
	BodyEn content.Document `json:"body_en,omitempty"`
	// BodyAr holds the value of the "body_ar" field.
	BodyAr content.Document `json:"body_ar,omitempty"`
	// Lower bound of the indicative price range
	CostMin float64 `json:"cost_min,omitempty"`
	// Upper bound; must be >= cost_min
	CostMax float64 `json:"cost_max,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Typical hospital stay, lower bound
	StayDaysMin *int `json:"stay_days_min,omitempty"`
	// StayDaysMax holds the value of the "stay_days_max" field.
	StayDaysMax *int `json:"stay_days_max,omitempty"`
	// Faq holds the value of the "faq" field.
	Faq []content.FAQItem `json:"faq,omitempty"`
	// Images holds the value of the "images" field.
	Images content.Images `json:"images,omitempty"`
	// Featured holds the value of the "featured" field.
	Featured bool `json:"featured,omitempty"`
	// MetaTitleEn holds the value of the "meta_title_en" field.
	MetaTitleEn *string `json:"meta_title_en,omitempty"`
	// MetaTitleAr holds the value of the "meta_title_ar" field.
	MetaTitleAr *string `json:"meta_title_ar,omitempty"`
	// MetaDescriptionEn holds the value of the "meta_description_en" field.
	MetaDescriptionEn string `json:"meta_description_en,omitempty"`
	// MetaDescriptionAr holds the value of the "meta_description_ar" field.
	MetaDescriptionAr string `json:"meta_description_ar,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TreatmentQuery when eager-loading is set.
	Edges        TreatmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TreatmentEdges holds the relations/edges for other nodes in the graph.
type TreatmentEdges struct {
	// Hospitals that offer this procedure
	Hospitals []*Hospital `json:"hospitals,omitempty"`
	// Packages holds the value of the packages edge.
	Packages []*CarePackage `json:"packages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// HospitalsOrErr returns the Hospitals value or an error if the edge
// was not loaded in eager-loading.
func (e TreatmentEdges) HospitalsOrErr() ([]*Hospital, error) {
	if e.loadedTypes[0] {
		return e.Hospitals, nil
	}
	return nil, &NotLoadedError{edge: "hospitals"}
}

// PackagesOrErr returns the Packages value or an error if the edge
// was not loaded in eager-loading.
func (e TreatmentEdges) PackagesOrErr() ([]*CarePackage, error) {
	if e.loadedTypes[1] {
		return e.Packages, nil
	}
	return nil, &NotLoadedError{edge: "packages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Treatment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case treatment.FieldBodyEn, treatment.FieldBodyAr, treatment.FieldFaq, treatment.FieldImages:
			values[i] = new([]byte)
		case treatment.FieldPublished, treatment.FieldIsArchived, treatment.FieldFeatured:
			values[i] = new(sql.NullBool)
		case treatment.FieldCostMin, treatment.FieldCostMax:
			values[i] = new(sql.NullFloat64)
		case treatment.FieldStayDaysMin, treatment.FieldStayDaysMax:
			values[i] = new(sql.NullInt64)
		case treatment.FieldNameEn, treatment.FieldNameAr, treatment.FieldSlug, treatment.FieldCategoryEn, treatment.FieldCategoryAr, treatment.FieldSummaryEn, treatment.FieldSummaryAr, treatment.FieldCurrency, treatment.FieldMetaTitleEn, treatment.FieldMetaTitleAr, treatment.FieldMetaDescriptionEn, treatment.FieldMetaDescriptionAr:
			values[i] = new(sql.NullString)
		case treatment.FieldCreatedAt, treatment.FieldUpdatedAt, treatment.FieldPublishedAt, treatment.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		case treatment.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Treatment fields.
func (_m *Treatment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case treatment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case treatment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case treatment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case treatment.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case treatment.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case treatment.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case treatment.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case treatment.FieldNameEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_en", values[i])
			} else if value.Valid {
				_m.NameEn = value.String
			}
		case treatment.FieldNameAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_ar", values[i])
			} else if value.Valid {
				_m.NameAr = value.String
			}
		case treatment.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case treatment.FieldCategoryEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_en", values[i])
			} else if value.Valid {
				_m.CategoryEn = new(string)
				*_m.CategoryEn = value.String
			}
		case treatment.FieldCategoryAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_ar", values[i])
			} else if value.Valid {
				_m.CategoryAr = new(string)
				*_m.CategoryAr = value.String
			}
		case treatment.FieldSummaryEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_en", values[i])
			} else if value.Valid {
				_m.SummaryEn = value.String
			}
		case treatment.FieldSummaryAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_ar", values[i])
			} else if value.Valid {
				_m.SummaryAr = value.String
			}
		case treatment.FieldBodyEn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field body_en", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BodyEn); err != nil {
					return fmt.Errorf("unmarshal field body_en: %w", err)
				}
			}
		case treatment.FieldBodyAr:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field body_ar", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BodyAr); err != nil {
					return fmt.Errorf("unmarshal field body_ar: %w", err)
				}
			}
		case treatment.FieldCostMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_min", values[i])
			} else if value.Valid {
				_m.CostMin = value.Float64
			}
		case treatment.FieldCostMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_max", values[i])
			} else if value.Valid {
				_m.CostMax = value.Float64
			}
		case treatment.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case treatment.FieldStayDaysMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stay_days_min", values[i])
			} else if value.Valid {
				_m.StayDaysMin = new(int)
				*_m.StayDaysMin = int(value.Int64)
			}
		case treatment.FieldStayDaysMax:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stay_days_max", values[i])
			} else if value.Valid {
				_m.StayDaysMax = new(int)
				*_m.StayDaysMax = int(value.Int64)
			}
		case treatment.FieldFaq:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field faq", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Faq); err != nil {
					return fmt.Errorf("unmarshal field faq: %w", err)
				}
			}
		case treatment.FieldImages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field images", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Images); err != nil {
					return fmt.Errorf("unmarshal field images: %w", err)
				}
			}
		case treatment.FieldFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field featured", values[i])
			} else if value.Valid {
				_m.Featured = value.Bool
			}
		case treatment.FieldMetaTitleEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_en", values[i])
			} else if value.Valid {
				_m.MetaTitleEn = new(string)
				*_m.MetaTitleEn = value.String
			}
		case treatment.FieldMetaTitleAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_ar", values[i])
			} else if value.Valid {
				_m.MetaTitleAr = new(string)
				*_m.MetaTitleAr = value.String
			}
		case treatment.FieldMetaDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description_en", values[i])
			} else if value.Valid {
				_m.MetaDescriptionEn = value.String
			}
		case treatment.FieldMetaDescriptionAr:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Treatment.
// This includes values selected through modifiers, order, etc.
func (_m *Treatment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHospitals queries the "hospitals" edge of the Treatment entity.
func (_m *Treatment) QueryHospitals() *HospitalQuery {
	return NewTreatmentClient(_m.config).QueryHospitals(_m)
}

// QueryPackages queries the "packages" edge of the Treatment entity.
func (_m *Treatment) QueryPackages() *CarePackageQuery {
	return NewTreatmentClient(_m.config).QueryPackages(_m)
}

// Update returns a builder for updating this Treatment.
// Note that you need to call Treatment.Unwrap() before calling this method if this Treatment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Treatment) Update() *TreatmentUpdateOne {
	return NewTreatmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Treatment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Treatment) Unwrap() *Treatment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Treatment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Treatment) String() string {
	var builder strings.Builder
	builder.WriteString("Treatment(")
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
	builder.WriteString("name_en=")
	builder.WriteString(_m.NameEn)
	builder.WriteString(", ")
	builder.WriteString("name_ar=")
	builder.WriteString(_m.NameAr)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	if v := _m.CategoryEn; v != nil {
		builder.WriteString("category_en=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CategoryAr; v != nil {
		builder.WriteString("category_ar=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("summary_en=")
	builder.WriteString(_m.SummaryEn)
	builder.WriteString(", ")
	builder.WriteString("summary_ar=")
	builder.WriteString(_m.SummaryAr)
	builder.WriteString(", ")
	builder.WriteString("body_en=")
	builder.WriteString(fmt.Sprintf("%v", _m.BodyEn))
	builder.WriteString(", ")
	builder.WriteString("body_ar=")
	builder.WriteString(fmt.Sprintf("%v", _m.BodyAr))
	builder.WriteString(", ")
	builder.WriteString("cost_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostMin))
	builder.WriteString(", ")
	builder.WriteString("cost_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostMax))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.StayDaysMin; v != nil {
		builder.WriteString("stay_days_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StayDaysMax; v != nil {
		builder.WriteString("stay_days_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("faq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Faq))
	builder.WriteString(", ")
	builder.WriteString("images=")
	builder.WriteString(fmt.Sprintf("%v", _m.Images))
	builder.WriteString(", ")
	builder.WriteString("featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Featured))
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

// Treatments is a parsable slice of Treatment.
type Treatments []*Treatment
