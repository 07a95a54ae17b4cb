// Code generated by ent, DO NOT EDIT.

package carepackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldUpdatedAt, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldPublished, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldPublishedAt, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldArchivedAt, v))
}

// TreatmentID applies equality check predicate on the "treatment_id" field. It's identical to TreatmentIDEQ.
func TreatmentID(v uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldTreatmentID, v))
}

// HospitalID applies equality check predicate on the "hospital_id" field. It's identical to HospitalIDEQ.
func HospitalID(v uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldHospitalID, v))
}

// NameEn applies equality check predicate on the "name_en" field. It's identical to NameEnEQ.
func NameEn(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldNameEn, v))
}

// NameAr applies equality check predicate on the "name_ar" field. It's identical to NameArEQ.
func NameAr(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldNameAr, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldSlug, v))
}

// DescriptionEn applies equality check predicate on the "description_en" field. It's identical to DescriptionEnEQ.
func DescriptionEn(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldDescriptionEn, v))
}

// DescriptionAr applies equality check predicate on the "description_ar" field. It's identical to DescriptionArEQ.
func DescriptionAr(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldDescriptionAr, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldPrice, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldCurrency, v))
}

// DurationDays applies equality check predicate on the "duration_days" field. It's identical to DurationDaysEQ.
func DurationDays(v int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldDurationDays, v))
}

// Featured applies equality check predicate on the "featured" field. It's identical to FeaturedEQ.
func Featured(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldFeatured, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldUpdatedAt, v))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldPublished, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldPublishedAt))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldArchivedAt))
}

// TreatmentIDEQ applies the EQ predicate on the "treatment_id" field.
func TreatmentIDEQ(v uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldTreatmentID, v))
}

// TreatmentIDNEQ applies the NEQ predicate on the "treatment_id" field.
func TreatmentIDNEQ(v uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldTreatmentID, v))
}

// TreatmentIDIn applies the In predicate on the "treatment_id" field.
func TreatmentIDIn(vs ...uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldTreatmentID, vs...))
}

// TreatmentIDNotIn applies the NotIn predicate on the "treatment_id" field.
func TreatmentIDNotIn(vs ...uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldTreatmentID, vs...))
}

// HospitalIDEQ applies the EQ predicate on the "hospital_id" field.
func HospitalIDEQ(v uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldHospitalID, v))
}

// HospitalIDNEQ applies the NEQ predicate on the "hospital_id" field.
func HospitalIDNEQ(v uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldHospitalID, v))
}

// HospitalIDIn applies the In predicate on the "hospital_id" field.
func HospitalIDIn(vs ...uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldHospitalID, vs...))
}

// HospitalIDNotIn applies the NotIn predicate on the "hospital_id" field.
func HospitalIDNotIn(vs ...uuid.UUID) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldHospitalID, vs...))
}

// NameEnEQ applies the EQ predicate on the "name_en" field.
func NameEnEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldNameEn, v))
}

// NameEnNEQ applies the NEQ predicate on the "name_en" field.
func NameEnNEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldNameEn, v))
}

// NameEnIn applies the In predicate on the "name_en" field.
func NameEnIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldNameEn, vs...))
}

// NameEnNotIn applies the NotIn predicate on the "name_en" field.
func NameEnNotIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldNameEn, vs...))
}

// NameEnGT applies the GT predicate on the "name_en" field.
func NameEnGT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldNameEn, v))
}

// NameEnGTE applies the GTE predicate on the "name_en" field.
func NameEnGTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldNameEn, v))
}

// NameEnLT applies the LT predicate on the "name_en" field.
func NameEnLT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldNameEn, v))
}

// NameEnLTE applies the LTE predicate on the "name_en" field.
func NameEnLTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldNameEn, v))
}

// NameEnContains applies the Contains predicate on the "name_en" field.
func NameEnContains(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContains(FieldNameEn, v))
}

// NameEnHasPrefix applies the HasPrefix predicate on the "name_en" field.
func NameEnHasPrefix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasPrefix(FieldNameEn, v))
}

// NameEnHasSuffix applies the HasSuffix predicate on the "name_en" field.
func NameEnHasSuffix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasSuffix(FieldNameEn, v))
}

// NameEnEqualFold applies the EqualFold predicate on the "name_en" field.
func NameEnEqualFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEqualFold(FieldNameEn, v))
}

// NameEnContainsFold applies the ContainsFold predicate on the "name_en" field.
func NameEnContainsFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContainsFold(FieldNameEn, v))
}

// NameArEQ applies the EQ predicate on the "name_ar" field.
func NameArEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldNameAr, v))
}

// NameArNEQ applies the NEQ predicate on the "name_ar" field.
func NameArNEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldNameAr, v))
}

// NameArIn applies the In predicate on the "name_ar" field.
func NameArIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldNameAr, vs...))
}

// NameArNotIn applies the NotIn predicate on the "name_ar" field.
func NameArNotIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldNameAr, vs...))
}

// NameArGT applies the GT predicate on the "name_ar" field.
func NameArGT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldNameAr, v))
}

// NameArGTE applies the GTE predicate on the "name_ar" field.
func NameArGTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldNameAr, v))
}

// NameArLT applies the LT predicate on the "name_ar" field.
func NameArLT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldNameAr, v))
}

// NameArLTE applies the LTE predicate on the "name_ar" field.
func NameArLTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldNameAr, v))
}

// NameArContains applies the Contains predicate on the "name_ar" field.
func NameArContains(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContains(FieldNameAr, v))
}

// NameArHasPrefix applies the HasPrefix predicate on the "name_ar" field.
func NameArHasPrefix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasPrefix(FieldNameAr, v))
}

// NameArHasSuffix applies the HasSuffix predicate on the "name_ar" field.
func NameArHasSuffix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasSuffix(FieldNameAr, v))
}

// NameArEqualFold applies the EqualFold predicate on the "name_ar" field.
func NameArEqualFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEqualFold(FieldNameAr, v))
}

// NameArContainsFold applies the ContainsFold predicate on the "name_ar" field.
func NameArContainsFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContainsFold(FieldNameAr, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEnEQ applies the EQ predicate on the "description_en" field.
func DescriptionEnEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldDescriptionEn, v))
}

// DescriptionEnNEQ applies the NEQ predicate on the "description_en" field.
func DescriptionEnNEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldDescriptionEn, v))
}

// DescriptionEnIn applies the In predicate on the "description_en" field.
func DescriptionEnIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldDescriptionEn, vs...))
}

// DescriptionEnNotIn applies the NotIn predicate on the "description_en" field.
func DescriptionEnNotIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldDescriptionEn, vs...))
}

// DescriptionEnGT applies the GT predicate on the "description_en" field.
func DescriptionEnGT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldDescriptionEn, v))
}

// DescriptionEnGTE applies the GTE predicate on the "description_en" field.
func DescriptionEnGTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldDescriptionEn, v))
}

// DescriptionEnLT applies the LT predicate on the "description_en" field.
func DescriptionEnLT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldDescriptionEn, v))
}

// DescriptionEnLTE applies the LTE predicate on the "description_en" field.
func DescriptionEnLTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldDescriptionEn, v))
}

// DescriptionEnContains applies the Contains predicate on the "description_en" field.
func DescriptionEnContains(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContains(FieldDescriptionEn, v))
}

// DescriptionEnHasPrefix applies the HasPrefix predicate on the "description_en" field.
func DescriptionEnHasPrefix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasPrefix(FieldDescriptionEn, v))
}

// DescriptionEnHasSuffix applies the HasSuffix predicate on the "description_en" field.
func DescriptionEnHasSuffix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasSuffix(FieldDescriptionEn, v))
}

// DescriptionEnIsNil applies the IsNil predicate on the "description_en" field.
func DescriptionEnIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldDescriptionEn))
}

// DescriptionEnNotNil applies the NotNil predicate on the "description_en" field.
func DescriptionEnNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldDescriptionEn))
}

// DescriptionEnEqualFold applies the EqualFold predicate on the "description_en" field.
func DescriptionEnEqualFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEqualFold(FieldDescriptionEn, v))
}

// DescriptionEnContainsFold applies the ContainsFold predicate on the "description_en" field.
func DescriptionEnContainsFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContainsFold(FieldDescriptionEn, v))
}

// DescriptionArEQ applies the EQ predicate on the "description_ar" field.
func DescriptionArEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldDescriptionAr, v))
}

// DescriptionArNEQ applies the NEQ predicate on the "description_ar" field.
func DescriptionArNEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldDescriptionAr, v))
}

// DescriptionArIn applies the In predicate on the "description_ar" field.
func DescriptionArIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldDescriptionAr, vs...))
}

// DescriptionArNotIn applies the NotIn predicate on the "description_ar" field.
func DescriptionArNotIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldDescriptionAr, vs...))
}

// DescriptionArGT applies the GT predicate on the "description_ar" field.
func DescriptionArGT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldDescriptionAr, v))
}

// DescriptionArGTE applies the GTE predicate on the "description_ar" field.
func DescriptionArGTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldDescriptionAr, v))
}

// DescriptionArLT applies the LT predicate on the "description_ar" field.
func DescriptionArLT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldDescriptionAr, v))
}

// DescriptionArLTE applies the LTE predicate on the "description_ar" field.
func DescriptionArLTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldDescriptionAr, v))
}

// DescriptionArContains applies the Contains predicate on the "description_ar" field.
func DescriptionArContains(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContains(FieldDescriptionAr, v))
}

// DescriptionArHasPrefix applies the HasPrefix predicate on the "description_ar" field.
func DescriptionArHasPrefix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasPrefix(FieldDescriptionAr, v))
}

// DescriptionArHasSuffix applies the HasSuffix predicate on the "description_ar" field.
func DescriptionArHasSuffix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasSuffix(FieldDescriptionAr, v))
}

// DescriptionArIsNil applies the IsNil predicate on the "description_ar" field.
func DescriptionArIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldDescriptionAr))
}

// DescriptionArNotNil applies the NotNil predicate on the "description_ar" field.
func DescriptionArNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldDescriptionAr))
}

// DescriptionArEqualFold applies the EqualFold predicate on the "description_ar" field.
func DescriptionArEqualFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEqualFold(FieldDescriptionAr, v))
}

// DescriptionArContainsFold applies the ContainsFold predicate on the "description_ar" field.
func DescriptionArContainsFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContainsFold(FieldDescriptionAr, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldPrice, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldContainsFold(FieldCurrency, v))
}

// DurationDaysEQ applies the EQ predicate on the "duration_days" field.
func DurationDaysEQ(v int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldDurationDays, v))
}

// DurationDaysNEQ applies the NEQ predicate on the "duration_days" field.
func DurationDaysNEQ(v int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldDurationDays, v))
}

// DurationDaysIn applies the In predicate on the "duration_days" field.
func DurationDaysIn(vs ...int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIn(FieldDurationDays, vs...))
}

// DurationDaysNotIn applies the NotIn predicate on the "duration_days" field.
func DurationDaysNotIn(vs ...int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotIn(FieldDurationDays, vs...))
}

// DurationDaysGT applies the GT predicate on the "duration_days" field.
func DurationDaysGT(v int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGT(FieldDurationDays, v))
}

// DurationDaysGTE applies the GTE predicate on the "duration_days" field.
func DurationDaysGTE(v int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldGTE(FieldDurationDays, v))
}

// DurationDaysLT applies the LT predicate on the "duration_days" field.
func DurationDaysLT(v int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLT(FieldDurationDays, v))
}

// DurationDaysLTE applies the LTE predicate on the "duration_days" field.
func DurationDaysLTE(v int) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldLTE(FieldDurationDays, v))
}

// DurationDaysIsNil applies the IsNil predicate on the "duration_days" field.
func DurationDaysIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldDurationDays))
}

// DurationDaysNotNil applies the NotNil predicate on the "duration_days" field.
func DurationDaysNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldDurationDays))
}

// InclusionsEnIsNil applies the IsNil predicate on the "inclusions_en" field.
func InclusionsEnIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldInclusionsEn))
}

// InclusionsEnNotNil applies the NotNil predicate on the "inclusions_en" field.
func InclusionsEnNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldInclusionsEn))
}

// InclusionsArIsNil applies the IsNil predicate on the "inclusions_ar" field.
func InclusionsArIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldInclusionsAr))
}

// InclusionsArNotNil applies the NotNil predicate on the "inclusions_ar" field.
func InclusionsArNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldInclusionsAr))
}

// ExclusionsEnIsNil applies the IsNil predicate on the "exclusions_en" field.
func ExclusionsEnIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldExclusionsEn))
}

// ExclusionsEnNotNil applies the NotNil predicate on the "exclusions_en" field.
func ExclusionsEnNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldExclusionsEn))
}

// ExclusionsArIsNil applies the IsNil predicate on the "exclusions_ar" field.
func ExclusionsArIsNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldIsNull(FieldExclusionsAr))
}

// ExclusionsArNotNil applies the NotNil predicate on the "exclusions_ar" field.
func ExclusionsArNotNil() predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNotNull(FieldExclusionsAr))
}

// FeaturedEQ applies the EQ predicate on the "featured" field.
func FeaturedEQ(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldEQ(FieldFeatured, v))
}

// FeaturedNEQ applies the NEQ predicate on the "featured" field.
func FeaturedNEQ(v bool) predicate.CarePackage {
	return predicate.CarePackage(sql.FieldNEQ(FieldFeatured, v))
}

// HasTreatment applies the HasEdge predicate on the "treatment" edge.
func HasTreatment() predicate.CarePackage {
	return predicate.CarePackage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TreatmentTable, TreatmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentWith applies the HasEdge predicate on the "treatment" edge with a given conditions (other predicates).
func HasTreatmentWith(preds ...predicate.Treatment) predicate.CarePackage {
	return predicate.CarePackage(func(s *sql.Selector) {
		step := newTreatmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHospital applies the HasEdge predicate on the "hospital" edge.
func HasHospital() predicate.CarePackage {
	return predicate.CarePackage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HospitalTable, HospitalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHospitalWith applies the HasEdge predicate on the "hospital" edge with a given conditions (other predicates).
func HasHospitalWith(preds ...predicate.Hospital) predicate.CarePackage {
	return predicate.CarePackage(func(s *sql.Selector) {
		step := newHospitalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CarePackage) predicate.CarePackage {
	return predicate.CarePackage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CarePackage) predicate.CarePackage {
	return predicate.CarePackage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CarePackage) predicate.CarePackage {
	return predicate.CarePackage(sql.NotPredicates(p))
}
