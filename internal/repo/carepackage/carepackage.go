// Code generated by ent, DO NOT EDIT.

package carepackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the carepackage type in the database.
	Label = "care_package"
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
	// FieldTreatmentID holds the string denoting the treatment_id field in the database.
	FieldTreatmentID = "treatment_id"
	// FieldHospitalID holds the string denoting the hospital_id field in the database.
	FieldHospitalID = "hospital_id"
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
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldDurationDays holds the string denoting the duration_days field in the database.
	FieldDurationDays = "duration_days"
	// FieldInclusionsEn holds the string denoting the inclusions_en field in the database.
	FieldInclusionsEn = "inclusions_en"
	// FieldInclusionsAr holds the string denoting the inclusions_ar field in the database.
	FieldInclusionsAr = "inclusions_ar"
	// FieldExclusionsEn holds the string denoting the exclusions_en field in the database.
	FieldExclusionsEn = "exclusions_en"
	// FieldExclusionsAr holds the string denoting the exclusions_ar field in the database.
	FieldExclusionsAr = "exclusions_ar"
	// FieldFeatured holds the string denoting the featured field in the database.
	FieldFeatured = "featured"
	// EdgeTreatment holds the string denoting the treatment edge name in mutations.
	EdgeTreatment = "treatment"
	// EdgeHospital holds the string denoting the hospital edge name in mutations.
	EdgeHospital = "hospital"
	// Table holds the table name of the carepackage in the database.
	Table = "packages"
	// TreatmentTable is the table that holds the treatment relation/edge.
	TreatmentTable = "packages"
	// TreatmentInverseTable is the table name for the Treatment entity.
	// It exists in this package in order to avoid circular dependency with the "treatment" package.
	TreatmentInverseTable = "treatments"
	// TreatmentColumn is the table column denoting the treatment relation/edge.
	TreatmentColumn = "treatment_id"
	// HospitalTable is the table that holds the hospital relation/edge.
	HospitalTable = "packages"
	// HospitalInverseTable is the table name for the Hospital entity.
	// It exists in this package in order to avoid circular dependency with the "hospital" package.
	HospitalInverseTable = "hospitals"
	// HospitalColumn is the table column denoting the hospital relation/edge.
	HospitalColumn = "hospital_id"
)

// Columns holds all SQL columns for carepackage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPublished,
	FieldPublishedAt,
	FieldIsArchived,
	FieldArchivedAt,
	FieldTreatmentID,
	FieldHospitalID,
	FieldNameEn,
	FieldNameAr,
	FieldSlug,
	FieldDescriptionEn,
	FieldDescriptionAr,
	FieldPrice,
	FieldCurrency,
	FieldDurationDays,
	FieldInclusionsEn,
	FieldInclusionsAr,
	FieldExclusionsEn,
	FieldExclusionsAr,
	FieldFeatured,
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
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(float64) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultFeatured holds the default value on creation for the "featured" field.
	DefaultFeatured bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CarePackage queries.
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

// ByTreatmentID orders the results by the treatment_id field.
func ByTreatmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTreatmentID, opts...).ToFunc()
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

// ByDescriptionEn orders the results by the description_en field.
func ByDescriptionEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionEn, opts...).ToFunc()
}

// ByDescriptionAr orders the results by the description_ar field.
func ByDescriptionAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionAr, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByDurationDays orders the results by the duration_days field.
func ByDurationDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationDays, opts...).ToFunc()
}

// ByFeatured orders the results by the featured field.
func ByFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatured, opts...).ToFunc()
}

// ByTreatmentField orders the results by treatment field.
func ByTreatmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTreatmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByHospitalField orders the results by hospital field.
func ByHospitalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHospitalStep(), sql.OrderByField(field, opts...))
	}
}
func newTreatmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TreatmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TreatmentTable, TreatmentColumn),
	)
}
func newHospitalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HospitalInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HospitalTable, HospitalColumn),
	)
}
