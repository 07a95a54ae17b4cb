// Code generated by ent, DO NOT EDIT.

package hospital

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the hospital type in the database.
	Label = "hospital"
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
	// FieldNameEn holds the string denoting the name_en field in the database.
	FieldNameEn = "name_en"
	// FieldNameAr holds the string denoting the name_ar field in the database.
	FieldNameAr = "name_ar"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldDescriptionEn holds the string denoting the description_en field in the database.
	FieldDescriptionEn = "description_en"
	// FieldDescriptionAr holds the string denoting the description_ar field in the database.
	FieldDescriptionAr = "description_ar"
	// FieldCityEn holds the string denoting the city_en field in the database.
	FieldCityEn = "city_en"
	// FieldCityAr holds the string denoting the city_ar field in the database.
	FieldCityAr = "city_ar"
	// FieldCountryEn holds the string denoting the country_en field in the database.
	FieldCountryEn = "country_en"
	// FieldCountryAr holds the string denoting the country_ar field in the database.
	FieldCountryAr = "country_ar"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldAccreditations holds the string denoting the accreditations field in the database.
	FieldAccreditations = "accreditations"
	// FieldImages holds the string denoting the images field in the database.
	FieldImages = "images"
	// FieldEstablishedYear holds the string denoting the established_year field in the database.
	FieldEstablishedYear = "established_year"
	// FieldBedCount holds the string denoting the bed_count field in the database.
	FieldBedCount = "bed_count"
	// FieldLanguagesSupported holds the string denoting the languages_supported field in the database.
	FieldLanguagesSupported = "languages_supported"
	// FieldFeatured holds the string denoting the featured field in the database.
	FieldFeatured = "featured"
	// FieldMetaTitleEn holds the string denoting the meta_title_en field in the database.
	FieldMetaTitleEn = "meta_title_en"
	// FieldMetaTitleAr holds the string denoting the meta_title_ar field in the database.
	FieldMetaTitleAr = "meta_title_ar"
	// FieldMetaDescriptionEn holds the string denoting the meta_description_en field in the database.
	FieldMetaDescriptionEn = "meta_description_en"
	// FieldMetaDescriptionAr holds the string denoting the meta_description_ar field in the database.
	FieldMetaDescriptionAr = "meta_description_ar"
	// EdgeDoctors holds the string denoting the doctors edge name in mutations.
	EdgeDoctors = "doctors"
	// EdgePackages holds the string denoting the packages edge name in mutations.
	EdgePackages = "packages"
	// EdgeTreatments holds the string denoting the treatments edge name in mutations.
	EdgeTreatments = "treatments"
	// Table holds the table name of the hospital in the database.
	Table = "hospitals"
	// DoctorsTable is the table that holds the doctors relation/edge.
	DoctorsTable = "doctors"
	// DoctorsInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	DoctorsInverseTable = "doctors"
	// DoctorsColumn is the table column denoting the doctors relation/edge.
	DoctorsColumn = "hospital_id"
	// PackagesTable is the table that holds the packages relation/edge.
	PackagesTable = "packages"
	// PackagesInverseTable is the table name for the CarePackage entity.
	// It exists in this package in order to avoid circular dependency with the "carepackage" package.
	PackagesInverseTable = "packages"
	// PackagesColumn is the table column denoting the packages relation/edge.
	PackagesColumn = "hospital_id"
	// TreatmentsTable is the table that holds the treatments relation/edge. The primary key declared below.
	TreatmentsTable = "treatment_hospitals"
	// TreatmentsInverseTable is the table name for the Treatment entity.
	// It exists in this package in order to avoid circular dependency with the "treatment" package.
	TreatmentsInverseTable = "treatments"
)

// Columns holds all SQL columns for hospital fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPublished,
	FieldPublishedAt,
	FieldIsArchived,
	FieldArchivedAt,
	FieldNameEn,
	FieldNameAr,
	FieldSlug,
	FieldDescriptionEn,
	FieldDescriptionAr,
	FieldCityEn,
	FieldCityAr,
	FieldCountryEn,
	FieldCountryAr,
	FieldAddress,
	FieldPhone,
	FieldEmail,
	FieldAccreditations,
	FieldImages,
	FieldEstablishedYear,
	FieldBedCount,
	FieldLanguagesSupported,
	FieldFeatured,
	FieldMetaTitleEn,
	FieldMetaTitleAr,
	FieldMetaDescriptionEn,
	FieldMetaDescriptionAr,
}

var (
	// TreatmentsPrimaryKey and TreatmentsColumn2 are the table columns denoting the
	// primary key for the treatments relation (M2M).
	TreatmentsPrimaryKey = []string{"treatment_id", "hospital_id"}
)

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
	// CityEnValidator is a validator for the "city_en" field. It is called by the builders before save.
	CityEnValidator func(string) error
	// CityArValidator is a validator for the "city_ar" field. It is called by the builders before save.
	CityArValidator func(string) error
	// DefaultCountryEn holds the default value on creation for the "country_en" field.
	DefaultCountryEn string
	// CountryEnValidator is a validator for the "country_en" field. It is called by the builders before save.
	CountryEnValidator func(string) error
	// DefaultCountryAr holds the default value on creation for the "country_ar" field.
	DefaultCountryAr string
	// CountryArValidator is a validator for the "country_ar" field. It is called by the builders before save.
	CountryArValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultFeatured holds the default value on creation for the "featured" field.
	DefaultFeatured bool
	// MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	MetaTitleEnValidator func(string) error
	// MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	MetaTitleArValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Hospital queries.
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

// ByDescriptionEn orders the results by the description_en field.
func ByDescriptionEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionEn, opts...).ToFunc()
}

// ByDescriptionAr orders the results by the description_ar field.
func ByDescriptionAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionAr, opts...).ToFunc()
}

// ByCityEn orders the results by the city_en field.
func ByCityEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCityEn, opts...).ToFunc()
}

// ByCityAr orders the results by the city_ar field.
func ByCityAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCityAr, opts...).ToFunc()
}

// ByCountryEn orders the results by the country_en field.
func ByCountryEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryEn, opts...).ToFunc()
}

// ByCountryAr orders the results by the country_ar field.
func ByCountryAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryAr, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByEstablishedYear orders the results by the established_year field.
func ByEstablishedYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstablishedYear, opts...).ToFunc()
}

// ByBedCount orders the results by the bed_count field.
func ByBedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBedCount, opts...).ToFunc()
}

// ByFeatured orders the results by the featured field.
func ByFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatured, opts...).ToFunc()
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

// ByDoctorsCount orders the results by doctors count.
func ByDoctorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDoctorsStep(), opts...)
	}
}

// ByDoctors orders the results by doctors terms.
func ByDoctors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPackagesCount orders the results by packages count.
func ByPackagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPackagesStep(), opts...)
	}
}

// ByPackages orders the results by packages terms.
func ByPackages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPackagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTreatmentsCount orders the results by treatments count.
func ByTreatmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTreatmentsStep(), opts...)
	}
}

// ByTreatments orders the results by treatments terms.
func ByTreatments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTreatmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDoctorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DoctorsTable, DoctorsColumn),
	)
}
func newPackagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PackagesTable, PackagesColumn),
	)
}
func newTreatmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TreatmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, TreatmentsTable, TreatmentsPrimaryKey...),
	)
}
