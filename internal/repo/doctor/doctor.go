// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctor type in the database.
	Label = "doctor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPublished holds the string denoting the published field in the database.
	FieldPublished = "published"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldIsArchived holds the string denoting the is_archived field in the database.
	FieldIsArchived = "is_archived"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// FieldHospitalID holds the string denoting the hospital_id field in the database.
	FieldHospitalID = "hospital_id"
	// FieldNameEn holds the string denoting the name_en field in the database.
	FieldNameEn = "name_en"
	// FieldNameAr holds the string denoting the name_ar field in the database.
	FieldNameAr = "name_ar"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldTitleEn holds the string denoting the title_en field in the database.
	FieldTitleEn = "title_en"
	// FieldTitleAr holds the string denoting the title_ar field in the database.
	FieldTitleAr = "title_ar"
	// FieldSpecialtiesEn holds the string denoting the specialties_en field in the database.
	FieldSpecialtiesEn = "specialties_en"
	// FieldSpecialtiesAr holds the string denoting the specialties_ar field in the database.
	FieldSpecialtiesAr = "specialties_ar"
	// FieldQualifications holds the string denoting the qualifications field in the database.
	FieldQualifications = "qualifications"
	// FieldExperienceYears holds the string denoting the experience_years field in the database.
	FieldExperienceYears = "experience_years"
	// FieldLanguages holds the string denoting the languages field in the database.
	FieldLanguages = "languages"
	// FieldBioEn holds the string denoting the bio_en field in the database.
	FieldBioEn = "bio_en"
	// FieldBioAr holds the string denoting the bio_ar field in the database.
	FieldBioAr = "bio_ar"
	// FieldImage holds the string denoting the image field in the database.
	FieldImage = "image"
	// FieldConsultationFee holds the string denoting the consultation_fee field in the database.
	FieldConsultationFee = "consultation_fee"
	// FieldTelemedicineAvailable holds the string denoting the telemedicine_available field in the database.
	FieldTelemedicineAvailable = "telemedicine_available"
	// FieldMetaTitleEn holds the string denoting the meta_title_en field in the database.
	FieldMetaTitleEn = "meta_title_en"
	// FieldMetaTitleAr holds the string denoting the meta_title_ar field in the database.
	FieldMetaTitleAr = "meta_title_ar"
	// FieldMetaDescriptionEn holds the string denoting the meta_description_en field in the database.
	FieldMetaDescriptionEn = "meta_description_en"
	// FieldMetaDescriptionAr holds the string denoting the meta_description_ar field in the database.
	FieldMetaDescriptionAr = "meta_description_ar"
	// EdgeHospital holds the string denoting the hospital edge name in mutations.
	EdgeHospital = "hospital"
	// Table holds the table name of the doctor in the database.
	Table = "doctors"
	// HospitalTable is the table that holds the hospital relation/edge.
	HospitalTable = "doctors"
	// HospitalInverseTable is the table name for the Hospital entity.
	// It exists in this package in order to avoid circular dependency with the "hospital" package.
	HospitalInverseTable = "hospitals"
	// HospitalColumn is the table column denoting the hospital relation/edge.
	HospitalColumn = "hospital_id"
)

// Columns holds all SQL columns for doctor fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPublished,
	FieldPublishedAt,
	FieldIsArchived,
	FieldArchivedAt,
	FieldHospitalID,
	FieldNameEn,
	FieldNameAr,
	FieldSlug,
	FieldTitleEn,
	FieldTitleAr,
	FieldSpecialtiesEn,
	FieldSpecialtiesAr,
	FieldQualifications,
	FieldExperienceYears,
	FieldLanguages,
	FieldBioEn,
	FieldBioAr,
	FieldImage,
	FieldConsultationFee,
	FieldTelemedicineAvailable,
	FieldMetaTitleEn,
	FieldMetaTitleAr,
	FieldMetaDescriptionEn,
	FieldMetaDescriptionAr,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultPublished holds the default value on creation for the "published" field.
	DefaultPublished bool
	// DefaultIsArchived holds the default value on creation for the "is_archived" field.
	DefaultIsArchived bool
	// NameEnValidator is a validator for the "name_en" field. It is called by the builders before save.
	NameEnValidator func(string) error
	// NameArValidator is a validator for the "name_ar" field. It is called by the builders before save.
	NameArValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// TitleEnValidator is a validator for the "title_en" field. It is called by the builders before save.
	TitleEnValidator func(string) error
	// TitleArValidator is a validator for the "title_ar" field. It is called by the builders before save.
	TitleArValidator func(string) error
	// DefaultExperienceYears holds the default value on creation for the "experience_years" field.
	DefaultExperienceYears int
	// ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	ExperienceYearsValidator func(int) error
	// ImageValidator is a validator for the "image" field. It is called by the builders before save.
	ImageValidator func(string) error
	// DefaultTelemedicineAvailable holds the default value on creation for the "telemedicine_available" field.
	DefaultTelemedicineAvailable bool
	// MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	MetaTitleEnValidator func(string) error
	// MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	MetaTitleArValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Doctor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPublished orders the results by the published field.
func ByPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublished, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByIsArchived orders the results by the is_archived field.
func ByIsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsArchived, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}

// ByHospitalID orders the results by the hospital_id field.
func ByHospitalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHospitalID, opts...).ToFunc()
}

// ByNameEn orders the results by the name_en field.
func ByNameEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameEn, opts...).ToFunc()
}

// ByNameAr orders the results by the name_ar field.
func ByNameAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameAr, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByTitleEn orders the results by the title_en field.
func ByTitleEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleEn, opts...).ToFunc()
}

// ByTitleAr orders the results by the title_ar field.
func ByTitleAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleAr, opts...).ToFunc()
}

// ByExperienceYears orders the results by the experience_years field.
func ByExperienceYears(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceYears, opts...).ToFunc()
}

// ByBioEn orders the results by the bio_en field.
func ByBioEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBioEn, opts...).ToFunc()
}

// ByBioAr orders the results by the bio_ar field.
func ByBioAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBioAr, opts...).ToFunc()
}

// ByImage orders the results by the image field.
func ByImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImage, opts...).ToFunc()
}

// ByConsultationFee orders the results by the consultation_fee field.
func ByConsultationFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationFee, opts...).ToFunc()
}

// ByTelemedicineAvailable orders the results by the telemedicine_available field.
func ByTelemedicineAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelemedicineAvailable, opts...).ToFunc()
}

// ByMetaTitleEn orders the results by the meta_title_en field.
func ByMetaTitleEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaTitleEn, opts...).ToFunc()
}

// ByMetaTitleAr orders the results by the meta_title_ar field.
func ByMetaTitleAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaTitleAr, opts...).ToFunc()
}

// ByMetaDescriptionEn orders the results by the meta_description_en field.
func ByMetaDescriptionEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaDescriptionEn, opts...).ToFunc()
}

// ByMetaDescriptionAr orders the results by the meta_description_ar field.
func ByMetaDescriptionAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaDescriptionAr, opts...).ToFunc()
}

// ByHospitalField orders the results by hospital field.
func ByHospitalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHospitalStep(), sql.OrderByField(field, opts...))
	}
}
func newHospitalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HospitalInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HospitalTable, HospitalColumn),
	)
}
