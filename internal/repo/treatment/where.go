// Code generated by ent, DO NOT EDIT.

package treatment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldUpdatedAt, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPublished, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPublishedAt, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldArchivedAt, v))
}

// NameEn applies equality check predicate on the "name_en" field. It's identical to NameEnEQ.
func NameEn(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldNameEn, v))
}

// NameAr applies equality check predicate on the "name_ar" field. It's identical to NameArEQ.
func NameAr(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldNameAr, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSlug, v))
}

// CategoryEn applies equality check predicate on the "category_en" field. It's identical to CategoryEnEQ.
func CategoryEn(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCategoryEn, v))
}

// CategoryAr applies equality check predicate on the "category_ar" field. It's identical to CategoryArEQ.
func CategoryAr(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCategoryAr, v))
}

// SummaryEn applies equality check predicate on the "summary_en" field. It's identical to SummaryEnEQ.
func SummaryEn(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSummaryEn, v))
}

// SummaryAr applies equality check predicate on the "summary_ar" field. It's identical to SummaryArEQ.
func SummaryAr(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSummaryAr, v))
}

// CostMin applies equality check predicate on the "cost_min" field. It's identical to CostMinEQ.
func CostMin(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCostMin, v))
}

// CostMax applies equality check predicate on the "cost_max" field. It's identical to CostMaxEQ.
func CostMax(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCostMax, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCurrency, v))
}

// StayDaysMin applies equality check predicate on the "stay_days_min" field. It's identical to StayDaysMinEQ.
func StayDaysMin(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldStayDaysMin, v))
}

// StayDaysMax applies equality check predicate on the "stay_days_max" field. It's identical to StayDaysMaxEQ.
func StayDaysMax(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldStayDaysMax, v))
}

// Featured applies equality check predicate on the "featured" field. It's identical to FeaturedEQ.
func Featured(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldFeatured, v))
}

// MetaTitleEn applies equality check predicate on the "meta_title_en" field. It's identical to MetaTitleEnEQ.
func MetaTitleEn(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleAr applies equality check predicate on the "meta_title_ar" field. It's identical to MetaTitleArEQ.
func MetaTitleAr(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaDescriptionEn applies equality check predicate on the "meta_description_en" field. It's identical to MetaDescriptionEnEQ.
func MetaDescriptionEn(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionAr applies equality check predicate on the "meta_description_ar" field. It's identical to MetaDescriptionArEQ.
func MetaDescriptionAr(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldUpdatedAt, v))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldPublished, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldPublishedAt))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldArchivedAt))
}

// NameEnEQ applies the EQ predicate on the "name_en" field.
func NameEnEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldNameEn, v))
}

// NameEnNEQ applies the NEQ predicate on the "name_en" field.
func NameEnNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldNameEn, v))
}

// NameEnIn applies the In predicate on the "name_en" field.
func NameEnIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldNameEn, vs...))
}

// NameEnNotIn applies the NotIn predicate on the "name_en" field.
func NameEnNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldNameEn, vs...))
}

// NameEnGT applies the GT predicate on the "name_en" field.
func NameEnGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldNameEn, v))
}

// NameEnGTE applies the GTE predicate on the "name_en" field.
func NameEnGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldNameEn, v))
}

// NameEnLT applies the LT predicate on the "name_en" field.
func NameEnLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldNameEn, v))
}

// NameEnLTE applies the LTE predicate on the "name_en" field.
func NameEnLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldNameEn, v))
}

// NameEnContains applies the Contains predicate on the "name_en" field.
func NameEnContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldNameEn, v))
}

// NameEnHasPrefix applies the HasPrefix predicate on the "name_en" field.
func NameEnHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldNameEn, v))
}

// NameEnHasSuffix applies the HasSuffix predicate on the "name_en" field.
func NameEnHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldNameEn, v))
}

// NameEnEqualFold applies the EqualFold predicate on the "name_en" field.
func NameEnEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldNameEn, v))
}

// NameEnContainsFold applies the ContainsFold predicate on the "name_en" field.
func NameEnContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldNameEn, v))
}

// NameArEQ applies the EQ predicate on the "name_ar" field.
func NameArEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldNameAr, v))
}

// NameArNEQ applies the NEQ predicate on the "name_ar" field.
func NameArNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldNameAr, v))
}

// NameArIn applies the In predicate on the "name_ar" field.
func NameArIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldNameAr, vs...))
}

// NameArNotIn applies the NotIn predicate on the "name_ar" field.
func NameArNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldNameAr, vs...))
}

// NameArGT applies the GT predicate on the "name_ar" field.
func NameArGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldNameAr, v))
}

// NameArGTE applies the GTE predicate on the "name_ar" field.
func NameArGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldNameAr, v))
}

// NameArLT applies the LT predicate on the "name_ar" field.
func NameArLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldNameAr, v))
}

// NameArLTE applies the LTE predicate on the "name_ar" field.
func NameArLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldNameAr, v))
}

// NameArContains applies the Contains predicate on the "name_ar" field.
func NameArContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldNameAr, v))
}

// NameArHasPrefix applies the HasPrefix predicate on the "name_ar" field.
func NameArHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldNameAr, v))
}

// NameArHasSuffix applies the HasSuffix predicate on the "name_ar" field.
func NameArHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldNameAr, v))
}

// NameArEqualFold applies the EqualFold predicate on the "name_ar" field.
func NameArEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldNameAr, v))
}

// NameArContainsFold applies the ContainsFold predicate on the "name_ar" field.
func NameArContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldNameAr, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldSlug, v))
}

// CategoryEnEQ applies the EQ predicate on the "category_en" field.
func CategoryEnEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCategoryEn, v))
}

// CategoryEnNEQ applies the NEQ predicate on the "category_en" field.
func CategoryEnNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCategoryEn, v))
}

// CategoryEnIn applies the In predicate on the "category_en" field.
func CategoryEnIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCategoryEn, vs...))
}

// CategoryEnNotIn applies the NotIn predicate on the "category_en" field.
func CategoryEnNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCategoryEn, vs...))
}

// CategoryEnGT applies the GT predicate on the "category_en" field.
func CategoryEnGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCategoryEn, v))
}

// CategoryEnGTE applies the GTE predicate on the "category_en" field.
func CategoryEnGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCategoryEn, v))
}

// CategoryEnLT applies the LT predicate on the "category_en" field.
func CategoryEnLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCategoryEn, v))
}

// CategoryEnLTE applies the LTE predicate on the "category_en" field.
func CategoryEnLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCategoryEn, v))
}

// CategoryEnContains applies the Contains predicate on the "category_en" field.
func CategoryEnContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldCategoryEn, v))
}

// CategoryEnHasPrefix applies the HasPrefix predicate on the "category_en" field.
func CategoryEnHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldCategoryEn, v))
}

// CategoryEnHasSuffix applies the HasSuffix predicate on the "category_en" field.
func CategoryEnHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldCategoryEn, v))
}

// CategoryEnIsNil applies the IsNil predicate on the "category_en" field.
func CategoryEnIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldCategoryEn))
}

// CategoryEnNotNil applies the NotNil predicate on the "category_en" field.
func CategoryEnNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldCategoryEn))
}

// CategoryEnEqualFold applies the EqualFold predicate on the "category_en" field.
func CategoryEnEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldCategoryEn, v))
}

// CategoryEnContainsFold applies the ContainsFold predicate on the "category_en" field.
func CategoryEnContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldCategoryEn, v))
}

// CategoryArEQ applies the EQ predicate on the "category_ar" field.
func CategoryArEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCategoryAr, v))
}

// CategoryArNEQ applies the NEQ predicate on the "category_ar" field.
func CategoryArNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCategoryAr, v))
}

// CategoryArIn applies the In predicate on the "category_ar" field.
func CategoryArIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCategoryAr, vs...))
}

// CategoryArNotIn applies the NotIn predicate on the "category_ar" field.
func CategoryArNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCategoryAr, vs...))
}

// CategoryArGT applies the GT predicate on the "category_ar" field.
func CategoryArGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCategoryAr, v))
}

// CategoryArGTE applies the GTE predicate on the "category_ar" field.
func CategoryArGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCategoryAr, v))
}

// CategoryArLT applies the LT predicate on the "category_ar" field.
func CategoryArLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCategoryAr, v))
}

// CategoryArLTE applies the LTE predicate on the "category_ar" field.
func CategoryArLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCategoryAr, v))
}

// CategoryArContains applies the Contains predicate on the "category_ar" field.
func CategoryArContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldCategoryAr, v))
}

// CategoryArHasPrefix applies the HasPrefix predicate on the "category_ar" field.
func CategoryArHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldCategoryAr, v))
}

// CategoryArHasSuffix applies the HasSuffix predicate on the "category_ar" field.
func CategoryArHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldCategoryAr, v))
}

// CategoryArIsNil applies the IsNil predicate on the "category_ar" field.
func CategoryArIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldCategoryAr))
}

// CategoryArNotNil applies the NotNil predicate on the "category_ar" field.
func CategoryArNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldCategoryAr))
}

// CategoryArEqualFold applies the EqualFold predicate on the "category_ar" field.
func CategoryArEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldCategoryAr, v))
}

// CategoryArContainsFold applies the ContainsFold predicate on the "category_ar" field.
func CategoryArContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldCategoryAr, v))
}

// SummaryEnEQ applies the EQ predicate on the "summary_en" field.
func SummaryEnEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSummaryEn, v))
}

// SummaryEnNEQ applies the NEQ predicate on the "summary_en" field.
func SummaryEnNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldSummaryEn, v))
}

// SummaryEnIn applies the In predicate on the "summary_en" field.
func SummaryEnIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldSummaryEn, vs...))
}

// SummaryEnNotIn applies the NotIn predicate on the "summary_en" field.
func SummaryEnNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldSummaryEn, vs...))
}

// SummaryEnGT applies the GT predicate on the "summary_en" field.
func SummaryEnGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldSummaryEn, v))
}

// SummaryEnGTE applies the GTE predicate on the "summary_en" field.
func SummaryEnGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldSummaryEn, v))
}

// SummaryEnLT applies the LT predicate on the "summary_en" field.
func SummaryEnLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldSummaryEn, v))
}

// SummaryEnLTE applies the LTE predicate on the "summary_en" field.
func SummaryEnLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldSummaryEn, v))
}

// SummaryEnContains applies the Contains predicate on the "summary_en" field.
func SummaryEnContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldSummaryEn, v))
}

// SummaryEnHasPrefix applies the HasPrefix predicate on the "summary_en" field.
func SummaryEnHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldSummaryEn, v))
}

// SummaryEnHasSuffix applies the HasSuffix predicate on the "summary_en" field.
func SummaryEnHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldSummaryEn, v))
}

// SummaryEnIsNil applies the IsNil predicate on the "summary_en" field.
func SummaryEnIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldSummaryEn))
}

// SummaryEnNotNil applies the NotNil predicate on the "summary_en" field.
func SummaryEnNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldSummaryEn))
}

// SummaryEnEqualFold applies the EqualFold predicate on the "summary_en" field.
func SummaryEnEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldSummaryEn, v))
}

// SummaryEnContainsFold applies the ContainsFold predicate on the "summary_en" field.
func SummaryEnContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldSummaryEn, v))
}

// SummaryArEQ applies the EQ predicate on the "summary_ar" field.
func SummaryArEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSummaryAr, v))
}

// SummaryArNEQ applies the NEQ predicate on the "summary_ar" field.
func SummaryArNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldSummaryAr, v))
}

// SummaryArIn applies the In predicate on the "summary_ar" field.
func SummaryArIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldSummaryAr, vs...))
}

// SummaryArNotIn applies the NotIn predicate on the "summary_ar" field.
func SummaryArNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldSummaryAr, vs...))
}

// SummaryArGT applies the GT predicate on the "summary_ar" field.
func SummaryArGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldSummaryAr, v))
}

// SummaryArGTE applies the GTE predicate on the "summary_ar" field.
func SummaryArGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldSummaryAr, v))
}

// SummaryArLT applies the LT predicate on the "summary_ar" field.
func SummaryArLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldSummaryAr, v))
}

// SummaryArLTE applies the LTE predicate on the "summary_ar" field.
func SummaryArLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldSummaryAr, v))
}

// SummaryArContains applies the Contains predicate on the "summary_ar" field.
func SummaryArContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldSummaryAr, v))
}

// SummaryArHasPrefix applies the HasPrefix predicate on the "summary_ar" field.
func SummaryArHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldSummaryAr, v))
}

// SummaryArHasSuffix applies the HasSuffix predicate on the "summary_ar" field.
func SummaryArHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldSummaryAr, v))
}

// SummaryArIsNil applies the IsNil predicate on the "summary_ar" field.
func SummaryArIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldSummaryAr))
}

// SummaryArNotNil applies the NotNil predicate on the "summary_ar" field.
func SummaryArNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldSummaryAr))
}

// SummaryArEqualFold applies the EqualFold predicate on the "summary_ar" field.
func SummaryArEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldSummaryAr, v))
}

// SummaryArContainsFold applies the ContainsFold predicate on the "summary_ar" field.
func SummaryArContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldSummaryAr, v))
}

// BodyEnIsNil applies the IsNil predicate on the "body_en" field.
func BodyEnIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldBodyEn))
}

// BodyEnNotNil applies the NotNil predicate on the "body_en" field.
func BodyEnNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldBodyEn))
}

// BodyArIsNil applies the IsNil predicate on the "body_ar" field.
func BodyArIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldBodyAr))
}

// BodyArNotNil applies the NotNil predicate on the "body_ar" field.
func BodyArNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldBodyAr))
}

// CostMinEQ applies the EQ predicate on the "cost_min" field.
func CostMinEQ(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCostMin, v))
}

// CostMinNEQ applies the NEQ predicate on the "cost_min" field.
func CostMinNEQ(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCostMin, v))
}

// CostMinIn applies the In predicate on the "cost_min" field.
func CostMinIn(vs ...float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCostMin, vs...))
}

// CostMinNotIn applies the NotIn predicate on the "cost_min" field.
func CostMinNotIn(vs ...float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCostMin, vs...))
}

// CostMinGT applies the GT predicate on the "cost_min" field.
func CostMinGT(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCostMin, v))
}

// CostMinGTE applies the GTE predicate on the "cost_min" field.
func CostMinGTE(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCostMin, v))
}

// CostMinLT applies the LT predicate on the "cost_min" field.
func CostMinLT(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCostMin, v))
}

// CostMinLTE applies the LTE predicate on the "cost_min" field.
func CostMinLTE(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCostMin, v))
}

// CostMaxEQ applies the EQ predicate on the "cost_max" field.
func CostMaxEQ(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCostMax, v))
}

// CostMaxNEQ applies the NEQ predicate on the "cost_max" field.
func CostMaxNEQ(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCostMax, v))
}

// CostMaxIn applies the In predicate on the "cost_max" field.
func CostMaxIn(vs ...float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCostMax, vs...))
}

// CostMaxNotIn applies the NotIn predicate on the "cost_max" field.
func CostMaxNotIn(vs ...float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCostMax, vs...))
}

// CostMaxGT applies the GT predicate on the "cost_max" field.
func CostMaxGT(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCostMax, v))
}

// CostMaxGTE applies the GTE predicate on the "cost_max" field.
func CostMaxGTE(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCostMax, v))
}

// CostMaxLT applies the LT predicate on the "cost_max" field.
func CostMaxLT(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCostMax, v))
}

// CostMaxLTE applies the LTE predicate on the "cost_max" field.
func CostMaxLTE(v float64) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCostMax, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldCurrency, v))
}

// StayDaysMinEQ applies the EQ predicate on the "stay_days_min" field.
func StayDaysMinEQ(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldStayDaysMin, v))
}

// StayDaysMinNEQ applies the NEQ predicate on the "stay_days_min" field.
func StayDaysMinNEQ(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldStayDaysMin, v))
}

// StayDaysMinIn applies the In predicate on the "stay_days_min" field.
func StayDaysMinIn(vs ...int) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldStayDaysMin, vs...))
}

// StayDaysMinNotIn applies the NotIn predicate on the "stay_days_min" field.
func StayDaysMinNotIn(vs ...int) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldStayDaysMin, vs...))
}

// StayDaysMinGT applies the GT predicate on the "stay_days_min" field.
func StayDaysMinGT(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldStayDaysMin, v))
}

// StayDaysMinGTE applies the GTE predicate on the "stay_days_min" field.
func StayDaysMinGTE(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldStayDaysMin, v))
}

// StayDaysMinLT applies the LT predicate on the "stay_days_min" field.
func StayDaysMinLT(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldStayDaysMin, v))
}

// StayDaysMinLTE applies the LTE predicate on the "stay_days_min" field.
func StayDaysMinLTE(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldStayDaysMin, v))
}

// StayDaysMinIsNil applies the IsNil predicate on the "stay_days_min" field.
func StayDaysMinIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldStayDaysMin))
}

// StayDaysMinNotNil applies the NotNil predicate on the "stay_days_min" field.
func StayDaysMinNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldStayDaysMin))
}

// StayDaysMaxEQ applies the EQ predicate on the "stay_days_max" field.
func StayDaysMaxEQ(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldStayDaysMax, v))
}

// StayDaysMaxNEQ applies the NEQ predicate on the "stay_days_max" field.
func StayDaysMaxNEQ(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldStayDaysMax, v))
}

// StayDaysMaxIn applies the In predicate on the "stay_days_max" field.
func StayDaysMaxIn(vs ...int) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldStayDaysMax, vs...))
}

// StayDaysMaxNotIn applies the NotIn predicate on the "stay_days_max" field.
func StayDaysMaxNotIn(vs ...int) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldStayDaysMax, vs...))
}

// StayDaysMaxGT applies the GT predicate on the "stay_days_max" field.
func StayDaysMaxGT(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldStayDaysMax, v))
}

// StayDaysMaxGTE applies the GTE predicate on the "stay_days_max" field.
func StayDaysMaxGTE(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldStayDaysMax, v))
}

// StayDaysMaxLT applies the LT predicate on the "stay_days_max" field.
func StayDaysMaxLT(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldStayDaysMax, v))
}

// StayDaysMaxLTE applies the LTE predicate on the "stay_days_max" field.
func StayDaysMaxLTE(v int) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldStayDaysMax, v))
}

// StayDaysMaxIsNil applies the IsNil predicate on the "stay_days_max" field.
func StayDaysMaxIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldStayDaysMax))
}

// StayDaysMaxNotNil applies the NotNil predicate on the "stay_days_max" field.
func StayDaysMaxNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldStayDaysMax))
}

// FaqIsNil applies the IsNil predicate on the "faq" field.
func FaqIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldFaq))
}

// FaqNotNil applies the NotNil predicate on the "faq" field.
func FaqNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldFaq))
}

// ImagesIsNil applies the IsNil predicate on the "images" field.
func ImagesIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldImages))
}

// ImagesNotNil applies the NotNil predicate on the "images" field.
func ImagesNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldImages))
}

// FeaturedEQ applies the EQ predicate on the "featured" field.
func FeaturedEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldFeatured, v))
}

// FeaturedNEQ applies the NEQ predicate on the "featured" field.
func FeaturedNEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldFeatured, v))
}

// MetaTitleEnEQ applies the EQ predicate on the "meta_title_en" field.
func MetaTitleEnEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnNEQ applies the NEQ predicate on the "meta_title_en" field.
func MetaTitleEnNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnIn applies the In predicate on the "meta_title_en" field.
func MetaTitleEnIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnNotIn applies the NotIn predicate on the "meta_title_en" field.
func MetaTitleEnNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnGT applies the GT predicate on the "meta_title_en" field.
func MetaTitleEnGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldMetaTitleEn, v))
}

// MetaTitleEnGTE applies the GTE predicate on the "meta_title_en" field.
func MetaTitleEnGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldMetaTitleEn, v))
}

// MetaTitleEnLT applies the LT predicate on the "meta_title_en" field.
func MetaTitleEnLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldMetaTitleEn, v))
}

// MetaTitleEnLTE applies the LTE predicate on the "meta_title_en" field.
func MetaTitleEnLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldMetaTitleEn, v))
}

// MetaTitleEnContains applies the Contains predicate on the "meta_title_en" field.
func MetaTitleEnContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldMetaTitleEn, v))
}

// MetaTitleEnHasPrefix applies the HasPrefix predicate on the "meta_title_en" field.
func MetaTitleEnHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldMetaTitleEn, v))
}

// MetaTitleEnHasSuffix applies the HasSuffix predicate on the "meta_title_en" field.
func MetaTitleEnHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldMetaTitleEn, v))
}

// MetaTitleEnIsNil applies the IsNil predicate on the "meta_title_en" field.
func MetaTitleEnIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldMetaTitleEn))
}

// MetaTitleEnNotNil applies the NotNil predicate on the "meta_title_en" field.
func MetaTitleEnNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldMetaTitleEn))
}

// MetaTitleEnEqualFold applies the EqualFold predicate on the "meta_title_en" field.
func MetaTitleEnEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldMetaTitleEn, v))
}

// MetaTitleEnContainsFold applies the ContainsFold predicate on the "meta_title_en" field.
func MetaTitleEnContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldMetaTitleEn, v))
}

// MetaTitleArEQ applies the EQ predicate on the "meta_title_ar" field.
func MetaTitleArEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaTitleArNEQ applies the NEQ predicate on the "meta_title_ar" field.
func MetaTitleArNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldMetaTitleAr, v))
}

// MetaTitleArIn applies the In predicate on the "meta_title_ar" field.
func MetaTitleArIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArNotIn applies the NotIn predicate on the "meta_title_ar" field.
func MetaTitleArNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArGT applies the GT predicate on the "meta_title_ar" field.
func MetaTitleArGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldMetaTitleAr, v))
}

// MetaTitleArGTE applies the GTE predicate on the "meta_title_ar" field.
func MetaTitleArGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldMetaTitleAr, v))
}

// MetaTitleArLT applies the LT predicate on the "meta_title_ar" field.
func MetaTitleArLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldMetaTitleAr, v))
}

// MetaTitleArLTE applies the LTE predicate on the "meta_title_ar" field.
func MetaTitleArLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldMetaTitleAr, v))
}

// MetaTitleArContains applies the Contains predicate on the "meta_title_ar" field.
func MetaTitleArContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldMetaTitleAr, v))
}

// MetaTitleArHasPrefix applies the HasPrefix predicate on the "meta_title_ar" field.
func MetaTitleArHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldMetaTitleAr, v))
}

// MetaTitleArHasSuffix applies the HasSuffix predicate on the "meta_title_ar" field.
func MetaTitleArHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldMetaTitleAr, v))
}

// MetaTitleArIsNil applies the IsNil predicate on the "meta_title_ar" field.
func MetaTitleArIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldMetaTitleAr))
}

// MetaTitleArNotNil applies the NotNil predicate on the "meta_title_ar" field.
func MetaTitleArNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldMetaTitleAr))
}

// MetaTitleArEqualFold applies the EqualFold predicate on the "meta_title_ar" field.
func MetaTitleArEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldMetaTitleAr, v))
}

// MetaTitleArContainsFold applies the ContainsFold predicate on the "meta_title_ar" field.
func MetaTitleArContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldMetaTitleAr, v))
}

// MetaDescriptionEnEQ applies the EQ predicate on the "meta_description_en" field.
func MetaDescriptionEnEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnNEQ applies the NEQ predicate on the "meta_description_en" field.
func MetaDescriptionEnNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIn applies the In predicate on the "meta_description_en" field.
func MetaDescriptionEnIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnNotIn applies the NotIn predicate on the "meta_description_en" field.
func MetaDescriptionEnNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnGT applies the GT predicate on the "meta_description_en" field.
func MetaDescriptionEnGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnGTE applies the GTE predicate on the "meta_description_en" field.
func MetaDescriptionEnGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLT applies the LT predicate on the "meta_description_en" field.
func MetaDescriptionEnLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLTE applies the LTE predicate on the "meta_description_en" field.
func MetaDescriptionEnLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContains applies the Contains predicate on the "meta_description_en" field.
func MetaDescriptionEnContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasPrefix applies the HasPrefix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasSuffix applies the HasSuffix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIsNil applies the IsNil predicate on the "meta_description_en" field.
func MetaDescriptionEnIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnNotNil applies the NotNil predicate on the "meta_description_en" field.
func MetaDescriptionEnNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnEqualFold applies the EqualFold predicate on the "meta_description_en" field.
func MetaDescriptionEnEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContainsFold applies the ContainsFold predicate on the "meta_description_en" field.
func MetaDescriptionEnContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionArEQ applies the EQ predicate on the "meta_description_ar" field.
func MetaDescriptionArEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArNEQ applies the NEQ predicate on the "meta_description_ar" field.
func MetaDescriptionArNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIn applies the In predicate on the "meta_description_ar" field.
func MetaDescriptionArIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArNotIn applies the NotIn predicate on the "meta_description_ar" field.
func MetaDescriptionArNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArGT applies the GT predicate on the "meta_description_ar" field.
func MetaDescriptionArGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArGTE applies the GTE predicate on the "meta_description_ar" field.
func MetaDescriptionArGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLT applies the LT predicate on the "meta_description_ar" field.
func MetaDescriptionArLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLTE applies the LTE predicate on the "meta_description_ar" field.
func MetaDescriptionArLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContains applies the Contains predicate on the "meta_description_ar" field.
func MetaDescriptionArContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasPrefix applies the HasPrefix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasSuffix applies the HasSuffix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIsNil applies the IsNil predicate on the "meta_description_ar" field.
func MetaDescriptionArIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArNotNil applies the NotNil predicate on the "meta_description_ar" field.
func MetaDescriptionArNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArEqualFold applies the EqualFold predicate on the "meta_description_ar" field.
func MetaDescriptionArEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContainsFold applies the ContainsFold predicate on the "meta_description_ar" field.
func MetaDescriptionArContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldMetaDescriptionAr, v))
}

// HasHospitals applies the HasEdge predicate on the "hospitals" edge.
func HasHospitals() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, HospitalsTable, HospitalsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHospitalsWith applies the HasEdge predicate on the "hospitals" edge with a given conditions (other predicates).
func HasHospitalsWith(preds ...predicate.Hospital) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newHospitalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPackages applies the HasEdge predicate on the "packages" edge.
func HasPackages() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PackagesTable, PackagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackagesWith applies the HasEdge predicate on the "packages" edge with a given conditions (other predicates).
func HasPackagesWith(preds ...predicate.CarePackage) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newPackagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.NotPredicates(p))
}
