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
	"github.com/shifaalhind/backend/internal/repo/hospital"
)

// Hospital is the model entity for the Hospital schema.
type Hospital struct {
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
	// URL-friendly identifier, shared across both locales
	Slug string `json:"slug,omitempty"`
	// DescriptionEn holds the value of the "description_en" field.
	DescriptionEn string `json:"description_en,omitempty"`
	// DescriptionAr holds the value of the "description_ar" field.
	DescriptionAr string `json:"description_ar,omitempty"`
	// CityEn holds the value of the "city_en" field.
	CityEn string `json:"city_en,omitempty"`
	// CityAr holds the value of the "city_ar" field.
	CityAr string `json:"city_ar,omitempty"`
	// CountryEn holds the value of the "country_en" field.
	CountryEn string `json:"country_en,omitempty"`
	// CountryAr holds the value of the "country_ar" field.
	CountryAr string `json:"country_ar,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Certification bodies, e.g. ["JCI","NABH"]
	Accreditations []string `json:"accreditations,omitempty"`
	// Images holds the value of the "images" field.
	Images content.Images `json:"images,omitempty"`
	// EstablishedYear holds the value of the "established_year" field.
	EstablishedYear *int `json:"established_year,omitempty"`
	// BedCount holds the value of the "bed_count" field.
	BedCount *int `json:"bed_count,omitempty"`
	// Languages the international patient desk covers
	LanguagesSupported []string `json:"languages_supported,omitempty"`
	// Featured hospitals surface on the home page
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
	// The values are being populated by the HospitalQuery when eager-loading is set.
	Edges        HospitalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HospitalEdges holds the relations/edges for other nodes in the graph.
type HospitalEdges struct {
	// Doctors holds the value of the doctors edge.
	Doctors []*Doctor `json:"doctors,omitempty"`
	// Packages holds the value of the packages edge.
	Packages []*CarePackage `json:"packages,omitempty"`
	// Treatments holds the value of the treatments edge.
	Treatments []*Treatment `json:"treatments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DoctorsOrErr returns the Doctors value or an error if the edge
// was not loaded in eager-loading.
func (e HospitalEdges) DoctorsOrErr() ([]*Doctor, error) {
	if e.loadedTypes[0] {
		return e.Doctors, nil
	}
	return nil, &NotLoadedError{edge: "doctors"}
}

// PackagesOrErr returns the Packages value or an error if the edge
// was not loaded in eager-loading.
func (e HospitalEdges) PackagesOrErr() ([]*CarePackage, error) {
	if e.loadedTypes[1] {
		return e.Packages, nil
	}
	return nil, &NotLoadedError{edge: "packages"}
}

// TreatmentsOrErr returns the Treatments value or an error if the edge
// was not loaded in eager-loading.
func (e HospitalEdges) TreatmentsOrErr() ([]*Treatment, error) {
	if e.loadedTypes[2] {
		return e.Treatments, nil
	}
	return nil, &NotLoadedError{edge: "treatments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Hospital) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hospital.FieldAccreditations, hospital.FieldImages, hospital.FieldLanguagesSupported:
			values[i] = new([]byte)
		case hospital.FieldPublished, hospital.FieldIsArchived, hospital.FieldFeatured:
			values[i] = new(sql.NullBool)
		case hospital.FieldEstablishedYear, hospital.FieldBedCount:
			values[i] = new(sql.NullInt64)
		case hospital.FieldNameEn, hospital.FieldNameAr, hospital.FieldSlug, hospital.FieldDescriptionEn, hospital.FieldDescriptionAr, hospital.FieldCityEn, hospital.FieldCityAr, hospital.FieldCountryEn, hospital.FieldCountryAr, hospital.FieldAddress, hospital.FieldPhone, hospital.FieldEmail, hospital.FieldMetaTitleEn, hospital.FieldMetaTitleAr, hospital.FieldMetaDescriptionEn, hospital.FieldMetaDescriptionAr:
			values[i] = new(sql.NullString)
		case hospital.FieldCreatedAt, hospital.FieldUpdatedAt, hospital.FieldPublishedAt, hospital.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		case hospital.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Hospital fields.
func (_m *Hospital) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hospital.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case hospital.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hospital.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hospital.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case hospital.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case hospital.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case hospital.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case hospital.FieldNameEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_en", values[i])
			} else if value.Valid {
				_m.NameEn = value.String
			}
		case hospital.FieldNameAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_ar", values[i])
			} else if value.Valid {
				_m.NameAr = value.String
			}
		case hospital.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case hospital.FieldDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_en", values[i])
			} else if value.Valid {
				_m.DescriptionEn = value.String
			}
		case hospital.FieldDescriptionAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_ar", values[i])
			} else if value.Valid {
				_m.DescriptionAr = value.String
			}
		case hospital.FieldCityEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city_en", values[i])
			} else if value.Valid {
				_m.CityEn = value.String
			}
		case hospital.FieldCityAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city_ar", values[i])
			} else if value.Valid {
				_m.CityAr = value.String
			}
		case hospital.FieldCountryEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_en", values[i])
			} else if value.Valid {
				_m.CountryEn = value.String
			}
		case hospital.FieldCountryAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_ar", values[i])
			} else if value.Valid {
				_m.CountryAr = value.String
			}
		case hospital.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case hospital.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case hospital.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case hospital.FieldAccreditations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field accreditations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Accreditations); err != nil {
					return fmt.Errorf("unmarshal field accreditations: %w", err)
				}
			}
		case hospital.FieldImages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field images", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Images); err != nil {
					return fmt.Errorf("unmarshal field images: %w", err)
				}
			}
		case hospital.FieldEstablishedYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field established_year", values[i])
			} else if value.Valid {
				_m.EstablishedYear = new(int)
				*_m.EstablishedYear = int(value.Int64)
			}
		case hospital.FieldBedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bed_count", values[i])
			} else if value.Valid {
				_m.BedCount = new(int)
				*_m.BedCount = int(value.Int64)
			}
		case hospital.FieldLanguagesSupported:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field languages_supported", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LanguagesSupported); err != nil {
					return fmt.Errorf("unmarshal field languages_supported: %w", err)
				}
			}
		case hospital.FieldFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field featured", values[i])
			} else if value.Valid {
				_m.Featured = value.Bool
			}
		case hospital.FieldMetaTitleEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_en", values[i])
			} else if value.Valid {
				_m.MetaTitleEn = new(string)
				*_m.MetaTitleEn = value.String
			}
		case hospital.FieldMetaTitleAr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title_ar", values[i])
			} else if value.Valid {
				_m.MetaTitleAr = new(string)
				*_m.MetaTitleAr = value.String
			}
		case hospital.FieldMetaDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description_en", values[i])
			} else if value.Valid {
				_m.MetaDescriptionEn = value.String
			}
		case hospital.FieldMetaDescriptionAr:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Hospital.
// This includes values selected through modifiers, order, etc.
func (_m *Hospital) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoctors queries the "doctors" edge of the Hospital entity.
func (_m *Hospital) QueryDoctors() *DoctorQuery {
	return NewHospitalClient(_m.config).QueryDoctors(_m)
}

// QueryPackages queries the "packages" edge of the Hospital entity.
func (_m *Hospital) QueryPackages() *CarePackageQuery {
	return NewHospitalClient(_m.config).QueryPackages(_m)
}

// QueryTreatments queries the "treatments" edge of the Hospital entity.
func (_m *Hospital) QueryTreatments() *TreatmentQuery {
	return NewHospitalClient(_m.config).QueryTreatments(_m)
}

// Update returns a builder for updating this Hospital.
// Note that you need to call Hospital.Unwrap() before calling this method if this Hospital
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Hospital) Update() *HospitalUpdateOne {
	return NewHospitalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Hospital entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Hospital) Unwrap() *Hospital {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Hospital is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Hospital) String() string {
	var builder strings.Builder
	builder.WriteString("Hospital(")
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
	builder.WriteString("description_en=")
	builder.WriteString(_m.DescriptionEn)
	builder.WriteString(", ")
	builder.WriteString("description_ar=")
	builder.WriteString(_m.DescriptionAr)
	builder.WriteString(", ")
	builder.WriteString("city_en=")
	builder.WriteString(_m.CityEn)
	builder.WriteString(", ")
	builder.WriteString("city_ar=")
	builder.WriteString(_m.CityAr)
	builder.WriteString(", ")
	builder.WriteString("country_en=")
	builder.WriteString(_m.CountryEn)
	builder.WriteString(", ")
	builder.WriteString("country_ar=")
	builder.WriteString(_m.CountryAr)
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("accreditations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accreditations))
	builder.WriteString(", ")
	builder.WriteString("images=")
	builder.WriteString(fmt.Sprintf("%v", _m.Images))
	builder.WriteString(", ")
	if v := _m.EstablishedYear; v != nil {
		builder.WriteString("established_year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BedCount; v != nil {
		builder.WriteString("bed_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("languages_supported=")
	builder.WriteString(fmt.Sprintf("%v", _m.LanguagesSupported))
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

// Hospitals is a parsable slice of Hospital.
type Hospitals []*Hospital
