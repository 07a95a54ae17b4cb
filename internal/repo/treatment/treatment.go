// Code generated by ent, DO NOT EDIT.

package treatment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the treatment type in the database.
	Label = "treatment"
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
	// FieldCategoryEn holds the string denoting the category_en field in the database.
	FieldCategoryEn = "category_en"
	// FieldCategoryAr holds the string denoting the category_ar field in the database.
	FieldCategoryAr = "category_ar"
	// FieldSummaryEn holds the string denoting the summary_en field in the database.
	FieldSummaryEn = "summary_en"
	// FieldSummaryAr holds the string denoting the summary_ar field in the database.
	FieldSummaryAr = "summary_ar"
	// FieldBodyEn holds the string denoting the body_en field in the database.
	FieldBodyEn = "body_en"
	// FieldBodyAr holds the string denoting the body_ar field in the database.
	FieldBodyAr = "body_ar"
	// FieldCostMin holds the string denoting the cost_min field in the database.
	FieldCostMin = "cost_min"
	// FieldCostMax holds the string denoting the cost_max field in the database.
	FieldCostMax = "cost_max"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldStayDaysMin holds the string denoting the stay_days_min field in the database.
	FieldStayDaysMin = "stay_days_min"
	// FieldStayDaysMax holds the string denoting the stay_days_max field in the database.
	FieldStayDaysMax = "stay_days_max"
	// FieldFaq holds the string denoting the faq field in the database.
	FieldFaq = "faq"
	// FieldImages holds the string denoting the images field in the database.
	FieldImages = "images"
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
	// EdgeHospitals holds the string denoting the hospitals edge name in mutations.
	EdgeHospitals = "hospitals"
	// EdgePackages holds the string denoting the packages edge name in mutations.
	EdgePackages = "packages"
	// Table holds the table name of the treatment in the database.
	Table = "treatments"
	// HospitalsTable is the table that holds the hospitals relation/edge. The primary key declared below.
	HospitalsTable = "treatment_hospitals"
	// HospitalsInverseTable is the table name for the Hospital entity.
	// It exists in this package in order to avoid circular dependency with the "hospital" package.
	HospitalsInverseTable = "hospitals"
	// PackagesTable is the table that holds the packages relation/edge.
	PackagesTable = "packages"
	// PackagesInverseTable is the table name for the CarePackage entity.
	// It exists in this package in order to avoid circular dependency with the "carepackage" package.
	PackagesInverseTable = "packages"
	// PackagesColumn is the table column denoting the packages relation/edge.
	PackagesColumn = "treatment_id"
)

// Columns holds all SQL columns for treatment fields.
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
	FieldCategoryEn,
	FieldCategoryAr,
	FieldSummaryEn,
	FieldSummaryAr,
	FieldBodyEn,
	FieldBodyAr,
	FieldCostMin,
	FieldCostMax,
	FieldCurrency,
	FieldStayDaysMin,
	FieldStayDaysMax,
	FieldFaq,
	FieldImages,
	FieldFeatured,
	FieldMetaTitleEn,
	FieldMetaTitleAr,
	FieldMetaDescriptionEn,
	FieldMetaDescriptionAr,
}

var (
	// HospitalsPrimaryKey and HospitalsColumn2 are the table columns denoting the
	// primary key for the hospitals relation (M2M).
	HospitalsPrimaryKey = []string{"treatment_id", "hospital_id"}
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
	// CategoryEnValidator is a validator for the "category_en" field. It is called by the builders before save.
	CategoryEnValidator func(string) error
	// CategoryArValidator is a validator for the "category_ar" field. It is called by the builders before save.
	CategoryArValidator func(string) error
	// CostMinValidator is a validator for the "cost_min" field. It is called by the builders before save.
	CostMinValidator func(float64) error
	// CostMaxValidator is a validator for the "cost_max" field. It is called by the builders before save.
	CostMaxValidator func(float64) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultFeatured holds the default value on creation for the "featured" field.
	DefaultFeatured bool
	// MetaTitleEnValidator is a validator for the "meta_title_en" field. It is called by the builders before save.
	MetaTitleEnValidator func(string) error
	// MetaTitleArValidator is a validator for the "meta_title_ar" field. It is called by the builders before save.
	MetaTitleArValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Treatment queries.
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

// ByCategoryEn orders the results by the category_en field.
func ByCategoryEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryEn, opts...).ToFunc()
}

// ByCategoryAr orders the results by the category_ar field.
func ByCategoryAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryAr, opts...).ToFunc()
}

// BySummaryEn orders the results by the summary_en field.
func BySummaryEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryEn, opts...).ToFunc()
}

// BySummaryAr orders the results by the summary_ar field.
func BySummaryAr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryAr, opts...).ToFunc()
}

// ByCostMin orders the results by the cost_min field.
func ByCostMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostMin, opts...).ToFunc()
}

// ByCostMax orders the results by the cost_max field.
func ByCostMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostMax, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByStayDaysMin orders the results by the stay_days_min field.
func ByStayDaysMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStayDaysMin, opts...).ToFunc()
}

// ByStayDaysMax orders the results by the stay_days_max field.
func ByStayDaysMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStayDaysMax, opts...).ToFunc()
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

// ByHospitalsCount orders the results by hospitals count.
func ByHospitalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHospitalsStep(), opts...)
	}
}

// ByHospitals orders the results by hospitals terms.
func ByHospitals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHospitalsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newHospitalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HospitalsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, HospitalsTable, HospitalsPrimaryKey...),
	)
}
func newPackagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PackagesTable, PackagesColumn),
	)
}
