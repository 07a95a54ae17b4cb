// Code generated by ent, DO NOT EDIT.

package hospital

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldUpdatedAt, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldPublished, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldPublishedAt, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldArchivedAt, v))
}

// NameEn applies equality check predicate on the "name_en" field. It's identical to NameEnEQ.
func NameEn(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldNameEn, v))
}

// NameAr applies equality check predicate on the "name_ar" field. It's identical to NameArEQ.
func NameAr(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldNameAr, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldSlug, v))
}

// DescriptionEn applies equality check predicate on the "description_en" field. It's identical to DescriptionEnEQ.
func DescriptionEn(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldDescriptionEn, v))
}

// DescriptionAr applies equality check predicate on the "description_ar" field. It's identical to DescriptionArEQ.
func DescriptionAr(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldDescriptionAr, v))
}

// CityEn applies equality check predicate on the "city_en" field. It's identical to CityEnEQ.
func CityEn(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCityEn, v))
}

// CityAr applies equality check predicate on the "city_ar" field. It's identical to CityArEQ.
func CityAr(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCityAr, v))
}

// CountryEn applies equality check predicate on the "country_en" field. It's identical to CountryEnEQ.
func CountryEn(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCountryEn, v))
}

// CountryAr applies equality check predicate on the "country_ar" field. It's identical to CountryArEQ.
func CountryAr(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCountryAr, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldAddress, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldEmail, v))
}

// EstablishedYear applies equality check predicate on the "established_year" field. It's identical to EstablishedYearEQ.
func EstablishedYear(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldEstablishedYear, v))
}

// BedCount applies equality check predicate on the "bed_count" field. It's identical to BedCountEQ.
func BedCount(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldBedCount, v))
}

// Featured applies equality check predicate on the "featured" field. It's identical to FeaturedEQ.
func Featured(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldFeatured, v))
}

// MetaTitleEn applies equality check predicate on the "meta_title_en" field. It's identical to MetaTitleEnEQ.
func MetaTitleEn(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleAr applies equality check predicate on the "meta_title_ar" field. It's identical to MetaTitleArEQ.
func MetaTitleAr(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaDescriptionEn applies equality check predicate on the "meta_description_en" field. It's identical to MetaDescriptionEnEQ.
func MetaDescriptionEn(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionAr applies equality check predicate on the "meta_description_ar" field. It's identical to MetaDescriptionArEQ.
func MetaDescriptionAr(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldUpdatedAt, v))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldPublished, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldPublishedAt))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldArchivedAt))
}

// NameEnEQ applies the EQ predicate on the "name_en" field.
func NameEnEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldNameEn, v))
}

// NameEnNEQ applies the NEQ predicate on the "name_en" field.
func NameEnNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldNameEn, v))
}

// NameEnIn applies the In predicate on the "name_en" field.
func NameEnIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldNameEn, vs...))
}

// NameEnNotIn applies the NotIn predicate on the "name_en" field.
func NameEnNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldNameEn, vs...))
}

// NameEnGT applies the GT predicate on the "name_en" field.
func NameEnGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldNameEn, v))
}

// NameEnGTE applies the GTE predicate on the "name_en" field.
func NameEnGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldNameEn, v))
}

// NameEnLT applies the LT predicate on the "name_en" field.
func NameEnLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldNameEn, v))
}

// NameEnLTE applies the LTE predicate on the "name_en" field.
func NameEnLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldNameEn, v))
}

// NameEnContains applies the Contains predicate on the "name_en" field.
func NameEnContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldNameEn, v))
}

// NameEnHasPrefix applies the HasPrefix predicate on the "name_en" field.
func NameEnHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldNameEn, v))
}

// NameEnHasSuffix applies the HasSuffix predicate on the "name_en" field.
func NameEnHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldNameEn, v))
}

// NameEnEqualFold applies the EqualFold predicate on the "name_en" field.
func NameEnEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldNameEn, v))
}

// NameEnContainsFold applies the ContainsFold predicate on the "name_en" field.
func NameEnContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldNameEn, v))
}

// NameArEQ applies the EQ predicate on the "name_ar" field.
func NameArEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldNameAr, v))
}

// NameArNEQ applies the NEQ predicate on the "name_ar" field.
func NameArNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldNameAr, v))
}

// NameArIn applies the In predicate on the "name_ar" field.
func NameArIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldNameAr, vs...))
}

// NameArNotIn applies the NotIn predicate on the "name_ar" field.
func NameArNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldNameAr, vs...))
}

// NameArGT applies the GT predicate on the "name_ar" field.
func NameArGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldNameAr, v))
}

// NameArGTE applies the GTE predicate on the "name_ar" field.
func NameArGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldNameAr, v))
}

// NameArLT applies the LT predicate on the "name_ar" field.
func NameArLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldNameAr, v))
}

// NameArLTE applies the LTE predicate on the "name_ar" field.
func NameArLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldNameAr, v))
}

// NameArContains applies the Contains predicate on the "name_ar" field.
func NameArContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldNameAr, v))
}

// NameArHasPrefix applies the HasPrefix predicate on the "name_ar" field.
func NameArHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldNameAr, v))
}

// NameArHasSuffix applies the HasSuffix predicate on the "name_ar" field.
func NameArHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldNameAr, v))
}

// NameArEqualFold applies the EqualFold predicate on the "name_ar" field.
func NameArEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldNameAr, v))
}

// NameArContainsFold applies the ContainsFold predicate on the "name_ar" field.
func NameArContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldNameAr, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEnEQ applies the EQ predicate on the "description_en" field.
func DescriptionEnEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldDescriptionEn, v))
}

// DescriptionEnNEQ applies the NEQ predicate on the "description_en" field.
func DescriptionEnNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldDescriptionEn, v))
}

// DescriptionEnIn applies the In predicate on the "description_en" field.
func DescriptionEnIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldDescriptionEn, vs...))
}

// DescriptionEnNotIn applies the NotIn predicate on the "description_en" field.
func DescriptionEnNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldDescriptionEn, vs...))
}

// DescriptionEnGT applies the GT predicate on the "description_en" field.
func DescriptionEnGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldDescriptionEn, v))
}

// DescriptionEnGTE applies the GTE predicate on the "description_en" field.
func DescriptionEnGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldDescriptionEn, v))
}

// DescriptionEnLT applies the LT predicate on the "description_en" field.
func DescriptionEnLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldDescriptionEn, v))
}

// DescriptionEnLTE applies the LTE predicate on the "description_en" field.
func DescriptionEnLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldDescriptionEn, v))
}

// DescriptionEnContains applies the Contains predicate on the "description_en" field.
func DescriptionEnContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldDescriptionEn, v))
}

// DescriptionEnHasPrefix applies the HasPrefix predicate on the "description_en" field.
func DescriptionEnHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldDescriptionEn, v))
}

// DescriptionEnHasSuffix applies the HasSuffix predicate on the "description_en" field.
func DescriptionEnHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldDescriptionEn, v))
}

// DescriptionEnIsNil applies the IsNil predicate on the "description_en" field.
func DescriptionEnIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldDescriptionEn))
}

// DescriptionEnNotNil applies the NotNil predicate on the "description_en" field.
func DescriptionEnNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldDescriptionEn))
}

// DescriptionEnEqualFold applies the EqualFold predicate on the "description_en" field.
func DescriptionEnEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldDescriptionEn, v))
}

// DescriptionEnContainsFold applies the ContainsFold predicate on the "description_en" field.
func DescriptionEnContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldDescriptionEn, v))
}

// DescriptionArEQ applies the EQ predicate on the "description_ar" field.
func DescriptionArEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldDescriptionAr, v))
}

// DescriptionArNEQ applies the NEQ predicate on the "description_ar" field.
func DescriptionArNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldDescriptionAr, v))
}

// DescriptionArIn applies the In predicate on the "description_ar" field.
func DescriptionArIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldDescriptionAr, vs...))
}

// DescriptionArNotIn applies the NotIn predicate on the "description_ar" field.
func DescriptionArNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldDescriptionAr, vs...))
}

// DescriptionArGT applies the GT predicate on the "description_ar" field.
func DescriptionArGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldDescriptionAr, v))
}

// DescriptionArGTE applies the GTE predicate on the "description_ar" field.
func DescriptionArGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldDescriptionAr, v))
}

// DescriptionArLT applies the LT predicate on the "description_ar" field.
func DescriptionArLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldDescriptionAr, v))
}

// DescriptionArLTE applies the LTE predicate on the "description_ar" field.
func DescriptionArLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldDescriptionAr, v))
}

// DescriptionArContains applies the Contains predicate on the "description_ar" field.
func DescriptionArContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldDescriptionAr, v))
}

// DescriptionArHasPrefix applies the HasPrefix predicate on the "description_ar" field.
func DescriptionArHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldDescriptionAr, v))
}

// DescriptionArHasSuffix applies the HasSuffix predicate on the "description_ar" field.
func DescriptionArHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldDescriptionAr, v))
}

// DescriptionArIsNil applies the IsNil predicate on the "description_ar" field.
func DescriptionArIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldDescriptionAr))
}

// DescriptionArNotNil applies the NotNil predicate on the "description_ar" field.
func DescriptionArNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldDescriptionAr))
}

// DescriptionArEqualFold applies the EqualFold predicate on the "description_ar" field.
func DescriptionArEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldDescriptionAr, v))
}

// DescriptionArContainsFold applies the ContainsFold predicate on the "description_ar" field.
func DescriptionArContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldDescriptionAr, v))
}

// CityEnEQ applies the EQ predicate on the "city_en" field.
func CityEnEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCityEn, v))
}

// CityEnNEQ applies the NEQ predicate on the "city_en" field.
func CityEnNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldCityEn, v))
}

// CityEnIn applies the In predicate on the "city_en" field.
func CityEnIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldCityEn, vs...))
}

// CityEnNotIn applies the NotIn predicate on the "city_en" field.
func CityEnNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldCityEn, vs...))
}

// CityEnGT applies the GT predicate on the "city_en" field.
func CityEnGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldCityEn, v))
}

// CityEnGTE applies the GTE predicate on the "city_en" field.
func CityEnGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldCityEn, v))
}

// CityEnLT applies the LT predicate on the "city_en" field.
func CityEnLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldCityEn, v))
}

// CityEnLTE applies the LTE predicate on the "city_en" field.
func CityEnLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldCityEn, v))
}

// CityEnContains applies the Contains predicate on the "city_en" field.
func CityEnContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldCityEn, v))
}

// CityEnHasPrefix applies the HasPrefix predicate on the "city_en" field.
func CityEnHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldCityEn, v))
}

// CityEnHasSuffix applies the HasSuffix predicate on the "city_en" field.
func CityEnHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldCityEn, v))
}

// CityEnEqualFold applies the EqualFold predicate on the "city_en" field.
func CityEnEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldCityEn, v))
}

// CityEnContainsFold applies the ContainsFold predicate on the "city_en" field.
func CityEnContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldCityEn, v))
}

// CityArEQ applies the EQ predicate on the "city_ar" field.
func CityArEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCityAr, v))
}

// CityArNEQ applies the NEQ predicate on the "city_ar" field.
func CityArNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldCityAr, v))
}

// CityArIn applies the In predicate on the "city_ar" field.
func CityArIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldCityAr, vs...))
}

// CityArNotIn applies the NotIn predicate on the "city_ar" field.
func CityArNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldCityAr, vs...))
}

// CityArGT applies the GT predicate on the "city_ar" field.
func CityArGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldCityAr, v))
}

// CityArGTE applies the GTE predicate on the "city_ar" field.
func CityArGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldCityAr, v))
}

// CityArLT applies the LT predicate on the "city_ar" field.
func CityArLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldCityAr, v))
}

// CityArLTE applies the LTE predicate on the "city_ar" field.
func CityArLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldCityAr, v))
}

// CityArContains applies the Contains predicate on the "city_ar" field.
func CityArContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldCityAr, v))
}

// CityArHasPrefix applies the HasPrefix predicate on the "city_ar" field.
func CityArHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldCityAr, v))
}

// CityArHasSuffix applies the HasSuffix predicate on the "city_ar" field.
func CityArHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldCityAr, v))
}

// CityArEqualFold applies the EqualFold predicate on the "city_ar" field.
func CityArEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldCityAr, v))
}

// CityArContainsFold applies the ContainsFold predicate on the "city_ar" field.
func CityArContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldCityAr, v))
}

// CountryEnEQ applies the EQ predicate on the "country_en" field.
func CountryEnEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCountryEn, v))
}

// CountryEnNEQ applies the NEQ predicate on the "country_en" field.
func CountryEnNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldCountryEn, v))
}

// CountryEnIn applies the In predicate on the "country_en" field.
func CountryEnIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldCountryEn, vs...))
}

// CountryEnNotIn applies the NotIn predicate on the "country_en" field.
func CountryEnNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldCountryEn, vs...))
}

// CountryEnGT applies the GT predicate on the "country_en" field.
func CountryEnGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldCountryEn, v))
}

// CountryEnGTE applies the GTE predicate on the "country_en" field.
func CountryEnGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldCountryEn, v))
}

// CountryEnLT applies the LT predicate on the "country_en" field.
func CountryEnLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldCountryEn, v))
}

// CountryEnLTE applies the LTE predicate on the "country_en" field.
func CountryEnLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldCountryEn, v))
}

// CountryEnContains applies the Contains predicate on the "country_en" field.
func CountryEnContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldCountryEn, v))
}

// CountryEnHasPrefix applies the HasPrefix predicate on the "country_en" field.
func CountryEnHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldCountryEn, v))
}

// CountryEnHasSuffix applies the HasSuffix predicate on the "country_en" field.
func CountryEnHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldCountryEn, v))
}

// CountryEnEqualFold applies the EqualFold predicate on the "country_en" field.
func CountryEnEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldCountryEn, v))
}

// CountryEnContainsFold applies the ContainsFold predicate on the "country_en" field.
func CountryEnContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldCountryEn, v))
}

// CountryArEQ applies the EQ predicate on the "country_ar" field.
func CountryArEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldCountryAr, v))
}

// CountryArNEQ applies the NEQ predicate on the "country_ar" field.
func CountryArNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldCountryAr, v))
}

// CountryArIn applies the In predicate on the "country_ar" field.
func CountryArIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldCountryAr, vs...))
}

// CountryArNotIn applies the NotIn predicate on the "country_ar" field.
func CountryArNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldCountryAr, vs...))
}

// CountryArGT applies the GT predicate on the "country_ar" field.
func CountryArGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldCountryAr, v))
}

// CountryArGTE applies the GTE predicate on the "country_ar" field.
func CountryArGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldCountryAr, v))
}

// CountryArLT applies the LT predicate on the "country_ar" field.
func CountryArLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldCountryAr, v))
}

// CountryArLTE applies the LTE predicate on the "country_ar" field.
func CountryArLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldCountryAr, v))
}

// CountryArContains applies the Contains predicate on the "country_ar" field.
func CountryArContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldCountryAr, v))
}

// CountryArHasPrefix applies the HasPrefix predicate on the "country_ar" field.
func CountryArHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldCountryAr, v))
}

// CountryArHasSuffix applies the HasSuffix predicate on the "country_ar" field.
func CountryArHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldCountryAr, v))
}

// CountryArEqualFold applies the EqualFold predicate on the "country_ar" field.
func CountryArEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldCountryAr, v))
}

// CountryArContainsFold applies the ContainsFold predicate on the "country_ar" field.
func CountryArContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldCountryAr, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldAddress, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldEmail, v))
}

// AccreditationsIsNil applies the IsNil predicate on the "accreditations" field.
func AccreditationsIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldAccreditations))
}

// AccreditationsNotNil applies the NotNil predicate on the "accreditations" field.
func AccreditationsNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldAccreditations))
}

// ImagesIsNil applies the IsNil predicate on the "images" field.
func ImagesIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldImages))
}

// ImagesNotNil applies the NotNil predicate on the "images" field.
func ImagesNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldImages))
}

// EstablishedYearEQ applies the EQ predicate on the "established_year" field.
func EstablishedYearEQ(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldEstablishedYear, v))
}

// EstablishedYearNEQ applies the NEQ predicate on the "established_year" field.
func EstablishedYearNEQ(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldEstablishedYear, v))
}

// EstablishedYearIn applies the In predicate on the "established_year" field.
func EstablishedYearIn(vs ...int) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldEstablishedYear, vs...))
}

// EstablishedYearNotIn applies the NotIn predicate on the "established_year" field.
func EstablishedYearNotIn(vs ...int) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldEstablishedYear, vs...))
}

// EstablishedYearGT applies the GT predicate on the "established_year" field.
func EstablishedYearGT(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldEstablishedYear, v))
}

// EstablishedYearGTE applies the GTE predicate on the "established_year" field.
func EstablishedYearGTE(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldEstablishedYear, v))
}

// EstablishedYearLT applies the LT predicate on the "established_year" field.
func EstablishedYearLT(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldEstablishedYear, v))
}

// EstablishedYearLTE applies the LTE predicate on the "established_year" field.
func EstablishedYearLTE(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldEstablishedYear, v))
}

// EstablishedYearIsNil applies the IsNil predicate on the "established_year" field.
func EstablishedYearIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldEstablishedYear))
}

// EstablishedYearNotNil applies the NotNil predicate on the "established_year" field.
func EstablishedYearNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldEstablishedYear))
}

// BedCountEQ applies the EQ predicate on the "bed_count" field.
func BedCountEQ(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldBedCount, v))
}

// BedCountNEQ applies the NEQ predicate on the "bed_count" field.
func BedCountNEQ(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldBedCount, v))
}

// BedCountIn applies the In predicate on the "bed_count" field.
func BedCountIn(vs ...int) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldBedCount, vs...))
}

// BedCountNotIn applies the NotIn predicate on the "bed_count" field.
func BedCountNotIn(vs ...int) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldBedCount, vs...))
}

// BedCountGT applies the GT predicate on the "bed_count" field.
func BedCountGT(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldBedCount, v))
}

// BedCountGTE applies the GTE predicate on the "bed_count" field.
func BedCountGTE(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldBedCount, v))
}

// BedCountLT applies the LT predicate on the "bed_count" field.
func BedCountLT(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldBedCount, v))
}

// BedCountLTE applies the LTE predicate on the "bed_count" field.
func BedCountLTE(v int) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldBedCount, v))
}

// BedCountIsNil applies the IsNil predicate on the "bed_count" field.
func BedCountIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldBedCount))
}

// BedCountNotNil applies the NotNil predicate on the "bed_count" field.
func BedCountNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldBedCount))
}

// LanguagesSupportedIsNil applies the IsNil predicate on the "languages_supported" field.
func LanguagesSupportedIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldLanguagesSupported))
}

// LanguagesSupportedNotNil applies the NotNil predicate on the "languages_supported" field.
func LanguagesSupportedNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldLanguagesSupported))
}

// FeaturedEQ applies the EQ predicate on the "featured" field.
func FeaturedEQ(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldFeatured, v))
}

// FeaturedNEQ applies the NEQ predicate on the "featured" field.
func FeaturedNEQ(v bool) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldFeatured, v))
}

// MetaTitleEnEQ applies the EQ predicate on the "meta_title_en" field.
func MetaTitleEnEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnNEQ applies the NEQ predicate on the "meta_title_en" field.
func MetaTitleEnNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnIn applies the In predicate on the "meta_title_en" field.
func MetaTitleEnIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnNotIn applies the NotIn predicate on the "meta_title_en" field.
func MetaTitleEnNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnGT applies the GT predicate on the "meta_title_en" field.
func MetaTitleEnGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldMetaTitleEn, v))
}

// MetaTitleEnGTE applies the GTE predicate on the "meta_title_en" field.
func MetaTitleEnGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldMetaTitleEn, v))
}

// MetaTitleEnLT applies the LT predicate on the "meta_title_en" field.
func MetaTitleEnLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldMetaTitleEn, v))
}

// MetaTitleEnLTE applies the LTE predicate on the "meta_title_en" field.
func MetaTitleEnLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldMetaTitleEn, v))
}

// MetaTitleEnContains applies the Contains predicate on the "meta_title_en" field.
func MetaTitleEnContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldMetaTitleEn, v))
}

// MetaTitleEnHasPrefix applies the HasPrefix predicate on the "meta_title_en" field.
func MetaTitleEnHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldMetaTitleEn, v))
}

// MetaTitleEnHasSuffix applies the HasSuffix predicate on the "meta_title_en" field.
func MetaTitleEnHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldMetaTitleEn, v))
}

// MetaTitleEnIsNil applies the IsNil predicate on the "meta_title_en" field.
func MetaTitleEnIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldMetaTitleEn))
}

// MetaTitleEnNotNil applies the NotNil predicate on the "meta_title_en" field.
func MetaTitleEnNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldMetaTitleEn))
}

// MetaTitleEnEqualFold applies the EqualFold predicate on the "meta_title_en" field.
func MetaTitleEnEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldMetaTitleEn, v))
}

// MetaTitleEnContainsFold applies the ContainsFold predicate on the "meta_title_en" field.
func MetaTitleEnContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldMetaTitleEn, v))
}

// MetaTitleArEQ applies the EQ predicate on the "meta_title_ar" field.
func MetaTitleArEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaTitleArNEQ applies the NEQ predicate on the "meta_title_ar" field.
func MetaTitleArNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldMetaTitleAr, v))
}

// MetaTitleArIn applies the In predicate on the "meta_title_ar" field.
func MetaTitleArIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArNotIn applies the NotIn predicate on the "meta_title_ar" field.
func MetaTitleArNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArGT applies the GT predicate on the "meta_title_ar" field.
func MetaTitleArGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldMetaTitleAr, v))
}

// MetaTitleArGTE applies the GTE predicate on the "meta_title_ar" field.
func MetaTitleArGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldMetaTitleAr, v))
}

// MetaTitleArLT applies the LT predicate on the "meta_title_ar" field.
func MetaTitleArLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldMetaTitleAr, v))
}

// MetaTitleArLTE applies the LTE predicate on the "meta_title_ar" field.
func MetaTitleArLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldMetaTitleAr, v))
}

// MetaTitleArContains applies the Contains predicate on the "meta_title_ar" field.
func MetaTitleArContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldMetaTitleAr, v))
}

// MetaTitleArHasPrefix applies the HasPrefix predicate on the "meta_title_ar" field.
func MetaTitleArHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldMetaTitleAr, v))
}

// MetaTitleArHasSuffix applies the HasSuffix predicate on the "meta_title_ar" field.
func MetaTitleArHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldMetaTitleAr, v))
}

// MetaTitleArIsNil applies the IsNil predicate on the "meta_title_ar" field.
func MetaTitleArIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldMetaTitleAr))
}

// MetaTitleArNotNil applies the NotNil predicate on the "meta_title_ar" field.
func MetaTitleArNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldMetaTitleAr))
}

// MetaTitleArEqualFold applies the EqualFold predicate on the "meta_title_ar" field.
func MetaTitleArEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldMetaTitleAr, v))
}

// MetaTitleArContainsFold applies the ContainsFold predicate on the "meta_title_ar" field.
func MetaTitleArContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldMetaTitleAr, v))
}

// MetaDescriptionEnEQ applies the EQ predicate on the "meta_description_en" field.
func MetaDescriptionEnEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnNEQ applies the NEQ predicate on the "meta_description_en" field.
func MetaDescriptionEnNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIn applies the In predicate on the "meta_description_en" field.
func MetaDescriptionEnIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnNotIn applies the NotIn predicate on the "meta_description_en" field.
func MetaDescriptionEnNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnGT applies the GT predicate on the "meta_description_en" field.
func MetaDescriptionEnGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnGTE applies the GTE predicate on the "meta_description_en" field.
func MetaDescriptionEnGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLT applies the LT predicate on the "meta_description_en" field.
func MetaDescriptionEnLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLTE applies the LTE predicate on the "meta_description_en" field.
func MetaDescriptionEnLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContains applies the Contains predicate on the "meta_description_en" field.
func MetaDescriptionEnContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasPrefix applies the HasPrefix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasSuffix applies the HasSuffix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIsNil applies the IsNil predicate on the "meta_description_en" field.
func MetaDescriptionEnIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnNotNil applies the NotNil predicate on the "meta_description_en" field.
func MetaDescriptionEnNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnEqualFold applies the EqualFold predicate on the "meta_description_en" field.
func MetaDescriptionEnEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContainsFold applies the ContainsFold predicate on the "meta_description_en" field.
func MetaDescriptionEnContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionArEQ applies the EQ predicate on the "meta_description_ar" field.
func MetaDescriptionArEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArNEQ applies the NEQ predicate on the "meta_description_ar" field.
func MetaDescriptionArNEQ(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIn applies the In predicate on the "meta_description_ar" field.
func MetaDescriptionArIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArNotIn applies the NotIn predicate on the "meta_description_ar" field.
func MetaDescriptionArNotIn(vs ...string) predicate.Hospital {
	return predicate.Hospital(sql.FieldNotIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArGT applies the GT predicate on the "meta_description_ar" field.
func MetaDescriptionArGT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArGTE applies the GTE predicate on the "meta_description_ar" field.
func MetaDescriptionArGTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldGTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLT applies the LT predicate on the "meta_description_ar" field.
func MetaDescriptionArLT(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLTE applies the LTE predicate on the "meta_description_ar" field.
func MetaDescriptionArLTE(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldLTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContains applies the Contains predicate on the "meta_description_ar" field.
func MetaDescriptionArContains(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContains(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasPrefix applies the HasPrefix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasPrefix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasPrefix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasSuffix applies the HasSuffix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasSuffix(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldHasSuffix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIsNil applies the IsNil predicate on the "meta_description_ar" field.
func MetaDescriptionArIsNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldIsNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArNotNil applies the NotNil predicate on the "meta_description_ar" field.
func MetaDescriptionArNotNil() predicate.Hospital {
	return predicate.Hospital(sql.FieldNotNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArEqualFold applies the EqualFold predicate on the "meta_description_ar" field.
func MetaDescriptionArEqualFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldEqualFold(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContainsFold applies the ContainsFold predicate on the "meta_description_ar" field.
func MetaDescriptionArContainsFold(v string) predicate.Hospital {
	return predicate.Hospital(sql.FieldContainsFold(FieldMetaDescriptionAr, v))
}

// HasDoctors applies the HasEdge predicate on the "doctors" edge.
func HasDoctors() predicate.Hospital {
	return predicate.Hospital(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DoctorsTable, DoctorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorsWith applies the HasEdge predicate on the "doctors" edge with a given conditions (other predicates).
func HasDoctorsWith(preds ...predicate.Doctor) predicate.Hospital {
	return predicate.Hospital(func(s *sql.Selector) {
		step := newDoctorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPackages applies the HasEdge predicate on the "packages" edge.
func HasPackages() predicate.Hospital {
	return predicate.Hospital(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PackagesTable, PackagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackagesWith applies the HasEdge predicate on the "packages" edge with a given conditions (other predicates).
func HasPackagesWith(preds ...predicate.CarePackage) predicate.Hospital {
	return predicate.Hospital(func(s *sql.Selector) {
		step := newPackagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTreatments applies the HasEdge predicate on the "treatments" edge.
func HasTreatments() predicate.Hospital {
	return predicate.Hospital(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, TreatmentsTable, TreatmentsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentsWith applies the HasEdge predicate on the "treatments" edge with a given conditions (other predicates).
func HasTreatmentsWith(preds ...predicate.Treatment) predicate.Hospital {
	return predicate.Hospital(func(s *sql.Selector) {
		step := newTreatmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Hospital) predicate.Hospital {
	return predicate.Hospital(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Hospital) predicate.Hospital {
	return predicate.Hospital(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Hospital) predicate.Hospital {
	return predicate.Hospital(sql.NotPredicates(p))
}
