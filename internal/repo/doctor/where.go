// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldPublished, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldPublishedAt, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldArchivedAt, v))
}

// HospitalID applies equality check predicate on the "hospital_id" field. It's identical to HospitalIDEQ.
func HospitalID(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldHospitalID, v))
}

// NameEn applies equality check predicate on the "name_en" field. It's identical to NameEnEQ.
func NameEn(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldNameEn, v))
}

// NameAr applies equality check predicate on the "name_ar" field. It's identical to NameArEQ.
func NameAr(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldNameAr, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldSlug, v))
}

// TitleEn applies equality check predicate on the "title_en" field. It's identical to TitleEnEQ.
func TitleEn(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTitleEn, v))
}

// TitleAr applies equality check predicate on the "title_ar" field. It's identical to TitleArEQ.
func TitleAr(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTitleAr, v))
}

// ExperienceYears applies equality check predicate on the "experience_years" field. It's identical to ExperienceYearsEQ.
func ExperienceYears(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldExperienceYears, v))
}

// BioEn applies equality check predicate on the "bio_en" field. It's identical to BioEnEQ.
func BioEn(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldBioEn, v))
}

// BioAr applies equality check predicate on the "bio_ar" field. It's identical to BioArEQ.
func BioAr(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldBioAr, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldImage, v))
}

// ConsultationFee applies equality check predicate on the "consultation_fee" field. It's identical to ConsultationFeeEQ.
func ConsultationFee(v float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultationFee, v))
}

// TelemedicineAvailable applies equality check predicate on the "telemedicine_available" field. It's identical to TelemedicineAvailableEQ.
func TelemedicineAvailable(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTelemedicineAvailable, v))
}

// MetaTitleEn applies equality check predicate on the "meta_title_en" field. It's identical to MetaTitleEnEQ.
func MetaTitleEn(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleAr applies equality check predicate on the "meta_title_ar" field. It's identical to MetaTitleArEQ.
func MetaTitleAr(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaDescriptionEn applies equality check predicate on the "meta_description_en" field. It's identical to MetaDescriptionEnEQ.
func MetaDescriptionEn(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionAr applies equality check predicate on the "meta_description_ar" field. It's identical to MetaDescriptionArEQ.
func MetaDescriptionAr(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldUpdatedAt, v))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldPublished, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldPublishedAt))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldArchivedAt))
}

// HospitalIDEQ applies the EQ predicate on the "hospital_id" field.
func HospitalIDEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldHospitalID, v))
}

// HospitalIDNEQ applies the NEQ predicate on the "hospital_id" field.
func HospitalIDNEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldHospitalID, v))
}

// HospitalIDIn applies the In predicate on the "hospital_id" field.
func HospitalIDIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldHospitalID, vs...))
}

// HospitalIDNotIn applies the NotIn predicate on the "hospital_id" field.
func HospitalIDNotIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldHospitalID, vs...))
}

// NameEnEQ applies the EQ predicate on the "name_en" field.
func NameEnEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldNameEn, v))
}

// NameEnNEQ applies the NEQ predicate on the "name_en" field.
func NameEnNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldNameEn, v))
}

// NameEnIn applies the In predicate on the "name_en" field.
func NameEnIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldNameEn, vs...))
}

// NameEnNotIn applies the NotIn predicate on the "name_en" field.
func NameEnNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldNameEn, vs...))
}

// NameEnGT applies the GT predicate on the "name_en" field.
func NameEnGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldNameEn, v))
}

// NameEnGTE applies the GTE predicate on the "name_en" field.
func NameEnGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldNameEn, v))
}

// NameEnLT applies the LT predicate on the "name_en" field.
func NameEnLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldNameEn, v))
}

// NameEnLTE applies the LTE predicate on the "name_en" field.
func NameEnLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldNameEn, v))
}

// NameEnContains applies the Contains predicate on the "name_en" field.
func NameEnContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldNameEn, v))
}

// NameEnHasPrefix applies the HasPrefix predicate on the "name_en" field.
func NameEnHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldNameEn, v))
}

// NameEnHasSuffix applies the HasSuffix predicate on the "name_en" field.
func NameEnHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldNameEn, v))
}

// NameEnEqualFold applies the EqualFold predicate on the "name_en" field.
func NameEnEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldNameEn, v))
}

// NameEnContainsFold applies the ContainsFold predicate on the "name_en" field.
func NameEnContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldNameEn, v))
}

// NameArEQ applies the EQ predicate on the "name_ar" field.
func NameArEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldNameAr, v))
}

// NameArNEQ applies the NEQ predicate on the "name_ar" field.
func NameArNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldNameAr, v))
}

// NameArIn applies the In predicate on the "name_ar" field.
func NameArIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldNameAr, vs...))
}

// NameArNotIn applies the NotIn predicate on the "name_ar" field.
func NameArNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldNameAr, vs...))
}

// NameArGT applies the GT predicate on the "name_ar" field.
func NameArGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldNameAr, v))
}

// NameArGTE applies the GTE predicate on the "name_ar" field.
func NameArGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldNameAr, v))
}

// NameArLT applies the LT predicate on the "name_ar" field.
func NameArLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldNameAr, v))
}

// NameArLTE applies the LTE predicate on the "name_ar" field.
func NameArLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldNameAr, v))
}

// NameArContains applies the Contains predicate on the "name_ar" field.
func NameArContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldNameAr, v))
}

// NameArHasPrefix applies the HasPrefix predicate on the "name_ar" field.
func NameArHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldNameAr, v))
}

// NameArHasSuffix applies the HasSuffix predicate on the "name_ar" field.
func NameArHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldNameAr, v))
}

// NameArEqualFold applies the EqualFold predicate on the "name_ar" field.
func NameArEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldNameAr, v))
}

// NameArContainsFold applies the ContainsFold predicate on the "name_ar" field.
func NameArContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldNameAr, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldSlug, v))
}

// TitleEnEQ applies the EQ predicate on the "title_en" field.
func TitleEnEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTitleEn, v))
}

// TitleEnNEQ applies the NEQ predicate on the "title_en" field.
func TitleEnNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldTitleEn, v))
}

// TitleEnIn applies the In predicate on the "title_en" field.
func TitleEnIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldTitleEn, vs...))
}

// TitleEnNotIn applies the NotIn predicate on the "title_en" field.
func TitleEnNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldTitleEn, vs...))
}

// TitleEnGT applies the GT predicate on the "title_en" field.
func TitleEnGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldTitleEn, v))
}

// TitleEnGTE applies the GTE predicate on the "title_en" field.
func TitleEnGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldTitleEn, v))
}

// TitleEnLT applies the LT predicate on the "title_en" field.
func TitleEnLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldTitleEn, v))
}

// TitleEnLTE applies the LTE predicate on the "title_en" field.
func TitleEnLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldTitleEn, v))
}

// TitleEnContains applies the Contains predicate on the "title_en" field.
func TitleEnContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldTitleEn, v))
}

// TitleEnHasPrefix applies the HasPrefix predicate on the "title_en" field.
func TitleEnHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldTitleEn, v))
}

// TitleEnHasSuffix applies the HasSuffix predicate on the "title_en" field.
func TitleEnHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldTitleEn, v))
}

// TitleEnIsNil applies the IsNil predicate on the "title_en" field.
func TitleEnIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldTitleEn))
}

// TitleEnNotNil applies the NotNil predicate on the "title_en" field.
func TitleEnNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldTitleEn))
}

// TitleEnEqualFold applies the EqualFold predicate on the "title_en" field.
func TitleEnEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldTitleEn, v))
}

// TitleEnContainsFold applies the ContainsFold predicate on the "title_en" field.
func TitleEnContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldTitleEn, v))
}

// TitleArEQ applies the EQ predicate on the "title_ar" field.
func TitleArEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTitleAr, v))
}

// TitleArNEQ applies the NEQ predicate on the "title_ar" field.
func TitleArNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldTitleAr, v))
}

// TitleArIn applies the In predicate on the "title_ar" field.
func TitleArIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldTitleAr, vs...))
}

// TitleArNotIn applies the NotIn predicate on the "title_ar" field.
func TitleArNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldTitleAr, vs...))
}

// TitleArGT applies the GT predicate on the "title_ar" field.
func TitleArGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldTitleAr, v))
}

// TitleArGTE applies the GTE predicate on the "title_ar" field.
func TitleArGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldTitleAr, v))
}

// TitleArLT applies the LT predicate on the "title_ar" field.
func TitleArLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldTitleAr, v))
}

// TitleArLTE applies the LTE predicate on the "title_ar" field.
func TitleArLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldTitleAr, v))
}

// TitleArContains applies the Contains predicate on the "title_ar" field.
func TitleArContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldTitleAr, v))
}

// TitleArHasPrefix applies the HasPrefix predicate on the "title_ar" field.
func TitleArHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldTitleAr, v))
}

// TitleArHasSuffix applies the HasSuffix predicate on the "title_ar" field.
func TitleArHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldTitleAr, v))
}

// TitleArIsNil applies the IsNil predicate on the "title_ar" field.
func TitleArIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldTitleAr))
}

// TitleArNotNil applies the NotNil predicate on the "title_ar" field.
func TitleArNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldTitleAr))
}

// TitleArEqualFold applies the EqualFold predicate on the "title_ar" field.
func TitleArEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldTitleAr, v))
}

// TitleArContainsFold applies the ContainsFold predicate on the "title_ar" field.
func TitleArContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldTitleAr, v))
}

// SpecialtiesEnIsNil applies the IsNil predicate on the "specialties_en" field.
func SpecialtiesEnIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldSpecialtiesEn))
}

// SpecialtiesEnNotNil applies the NotNil predicate on the "specialties_en" field.
func SpecialtiesEnNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldSpecialtiesEn))
}

// SpecialtiesArIsNil applies the IsNil predicate on the "specialties_ar" field.
func SpecialtiesArIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldSpecialtiesAr))
}

// SpecialtiesArNotNil applies the NotNil predicate on the "specialties_ar" field.
func SpecialtiesArNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldSpecialtiesAr))
}

// QualificationsIsNil applies the IsNil predicate on the "qualifications" field.
func QualificationsIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldQualifications))
}

// QualificationsNotNil applies the NotNil predicate on the "qualifications" field.
func QualificationsNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldQualifications))
}

// ExperienceYearsEQ applies the EQ predicate on the "experience_years" field.
func ExperienceYearsEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldExperienceYears, v))
}

// ExperienceYearsNEQ applies the NEQ predicate on the "experience_years" field.
func ExperienceYearsNEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldExperienceYears, v))
}

// ExperienceYearsIn applies the In predicate on the "experience_years" field.
func ExperienceYearsIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldExperienceYears, vs...))
}

// ExperienceYearsNotIn applies the NotIn predicate on the "experience_years" field.
func ExperienceYearsNotIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldExperienceYears, vs...))
}

// ExperienceYearsGT applies the GT predicate on the "experience_years" field.
func ExperienceYearsGT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldExperienceYears, v))
}

// ExperienceYearsGTE applies the GTE predicate on the "experience_years" field.
func ExperienceYearsGTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldExperienceYears, v))
}

// ExperienceYearsLT applies the LT predicate on the "experience_years" field.
func ExperienceYearsLT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldExperienceYears, v))
}

// ExperienceYearsLTE applies the LTE predicate on the "experience_years" field.
func ExperienceYearsLTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldExperienceYears, v))
}

// LanguagesIsNil applies the IsNil predicate on the "languages" field.
func LanguagesIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldLanguages))
}

// LanguagesNotNil applies the NotNil predicate on the "languages" field.
func LanguagesNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldLanguages))
}

// BioEnEQ applies the EQ predicate on the "bio_en" field.
func BioEnEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldBioEn, v))
}

// BioEnNEQ applies the NEQ predicate on the "bio_en" field.
func BioEnNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldBioEn, v))
}

// BioEnIn applies the In predicate on the "bio_en" field.
func BioEnIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldBioEn, vs...))
}

// BioEnNotIn applies the NotIn predicate on the "bio_en" field.
func BioEnNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldBioEn, vs...))
}

// BioEnGT applies the GT predicate on the "bio_en" field.
func BioEnGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldBioEn, v))
}

// BioEnGTE applies the GTE predicate on the "bio_en" field.
func BioEnGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldBioEn, v))
}

// BioEnLT applies the LT predicate on the "bio_en" field.
func BioEnLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldBioEn, v))
}

// BioEnLTE applies the LTE predicate on the "bio_en" field.
func BioEnLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldBioEn, v))
}

// BioEnContains applies the Contains predicate on the "bio_en" field.
func BioEnContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldBioEn, v))
}

// BioEnHasPrefix applies the HasPrefix predicate on the "bio_en" field.
func BioEnHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldBioEn, v))
}

// BioEnHasSuffix applies the HasSuffix predicate on the "bio_en" field.
func BioEnHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldBioEn, v))
}

// BioEnIsNil applies the IsNil predicate on the "bio_en" field.
func BioEnIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldBioEn))
}

// BioEnNotNil applies the NotNil predicate on the "bio_en" field.
func BioEnNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldBioEn))
}

// BioEnEqualFold applies the EqualFold predicate on the "bio_en" field.
func BioEnEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldBioEn, v))
}

// BioEnContainsFold applies the ContainsFold predicate on the "bio_en" field.
func BioEnContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldBioEn, v))
}

// BioArEQ applies the EQ predicate on the "bio_ar" field.
func BioArEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldBioAr, v))
}

// BioArNEQ applies the NEQ predicate on the "bio_ar" field.
func BioArNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldBioAr, v))
}

// BioArIn applies the In predicate on the "bio_ar" field.
func BioArIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldBioAr, vs...))
}

// BioArNotIn applies the NotIn predicate on the "bio_ar" field.
func BioArNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldBioAr, vs...))
}

// BioArGT applies the GT predicate on the "bio_ar" field.
func BioArGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldBioAr, v))
}

// BioArGTE applies the GTE predicate on the "bio_ar" field.
func BioArGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldBioAr, v))
}

// BioArLT applies the LT predicate on the "bio_ar" field.
func BioArLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldBioAr, v))
}

// BioArLTE applies the LTE predicate on the "bio_ar" field.
func BioArLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldBioAr, v))
}

// BioArContains applies the Contains predicate on the "bio_ar" field.
func BioArContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldBioAr, v))
}

// BioArHasPrefix applies the HasPrefix predicate on the "bio_ar" field.
func BioArHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldBioAr, v))
}

// BioArHasSuffix applies the HasSuffix predicate on the "bio_ar" field.
func BioArHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldBioAr, v))
}

// BioArIsNil applies the IsNil predicate on the "bio_ar" field.
func BioArIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldBioAr))
}

// BioArNotNil applies the NotNil predicate on the "bio_ar" field.
func BioArNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldBioAr))
}

// BioArEqualFold applies the EqualFold predicate on the "bio_ar" field.
func BioArEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldBioAr, v))
}

// BioArContainsFold applies the ContainsFold predicate on the "bio_ar" field.
func BioArContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldBioAr, v))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldImage, v))
}

// ImageIsNil applies the IsNil predicate on the "image" field.
func ImageIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldImage))
}

// ImageNotNil applies the NotNil predicate on the "image" field.
func ImageNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldImage))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldImage, v))
}

// ConsultationFeeEQ applies the EQ predicate on the "consultation_fee" field.
func ConsultationFeeEQ(v float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultationFee, v))
}

// ConsultationFeeNEQ applies the NEQ predicate on the "consultation_fee" field.
func ConsultationFeeNEQ(v float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldConsultationFee, v))
}

// ConsultationFeeIn applies the In predicate on the "consultation_fee" field.
func ConsultationFeeIn(vs ...float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldConsultationFee, vs...))
}

// ConsultationFeeNotIn applies the NotIn predicate on the "consultation_fee" field.
func ConsultationFeeNotIn(vs ...float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldConsultationFee, vs...))
}

// ConsultationFeeGT applies the GT predicate on the "consultation_fee" field.
func ConsultationFeeGT(v float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldConsultationFee, v))
}

// ConsultationFeeGTE applies the GTE predicate on the "consultation_fee" field.
func ConsultationFeeGTE(v float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldConsultationFee, v))
}

// ConsultationFeeLT applies the LT predicate on the "consultation_fee" field.
func ConsultationFeeLT(v float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldConsultationFee, v))
}

// ConsultationFeeLTE applies the LTE predicate on the "consultation_fee" field.
func ConsultationFeeLTE(v float64) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldConsultationFee, v))
}

// ConsultationFeeIsNil applies the IsNil predicate on the "consultation_fee" field.
func ConsultationFeeIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldConsultationFee))
}

// ConsultationFeeNotNil applies the NotNil predicate on the "consultation_fee" field.
func ConsultationFeeNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldConsultationFee))
}

// TelemedicineAvailableEQ applies the EQ predicate on the "telemedicine_available" field.
func TelemedicineAvailableEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTelemedicineAvailable, v))
}

// TelemedicineAvailableNEQ applies the NEQ predicate on the "telemedicine_available" field.
func TelemedicineAvailableNEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldTelemedicineAvailable, v))
}

// MetaTitleEnEQ applies the EQ predicate on the "meta_title_en" field.
func MetaTitleEnEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnNEQ applies the NEQ predicate on the "meta_title_en" field.
func MetaTitleEnNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnIn applies the In predicate on the "meta_title_en" field.
func MetaTitleEnIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnNotIn applies the NotIn predicate on the "meta_title_en" field.
func MetaTitleEnNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnGT applies the GT predicate on the "meta_title_en" field.
func MetaTitleEnGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldMetaTitleEn, v))
}

// MetaTitleEnGTE applies the GTE predicate on the "meta_title_en" field.
func MetaTitleEnGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldMetaTitleEn, v))
}

// MetaTitleEnLT applies the LT predicate on the "meta_title_en" field.
func MetaTitleEnLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldMetaTitleEn, v))
}

// MetaTitleEnLTE applies the LTE predicate on the "meta_title_en" field.
func MetaTitleEnLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldMetaTitleEn, v))
}

// MetaTitleEnContains applies the Contains predicate on the "meta_title_en" field.
func MetaTitleEnContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldMetaTitleEn, v))
}

// MetaTitleEnHasPrefix applies the HasPrefix predicate on the "meta_title_en" field.
func MetaTitleEnHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldMetaTitleEn, v))
}

// MetaTitleEnHasSuffix applies the HasSuffix predicate on the "meta_title_en" field.
func MetaTitleEnHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldMetaTitleEn, v))
}

// MetaTitleEnIsNil applies the IsNil predicate on the "meta_title_en" field.
func MetaTitleEnIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldMetaTitleEn))
}

// MetaTitleEnNotNil applies the NotNil predicate on the "meta_title_en" field.
func MetaTitleEnNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldMetaTitleEn))
}

// MetaTitleEnEqualFold applies the EqualFold predicate on the "meta_title_en" field.
func MetaTitleEnEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldMetaTitleEn, v))
}

// MetaTitleEnContainsFold applies the ContainsFold predicate on the "meta_title_en" field.
func MetaTitleEnContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldMetaTitleEn, v))
}

// MetaTitleArEQ applies the EQ predicate on the "meta_title_ar" field.
func MetaTitleArEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaTitleArNEQ applies the NEQ predicate on the "meta_title_ar" field.
func MetaTitleArNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldMetaTitleAr, v))
}

// MetaTitleArIn applies the In predicate on the "meta_title_ar" field.
func MetaTitleArIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArNotIn applies the NotIn predicate on the "meta_title_ar" field.
func MetaTitleArNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArGT applies the GT predicate on the "meta_title_ar" field.
func MetaTitleArGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldMetaTitleAr, v))
}

// MetaTitleArGTE applies the GTE predicate on the "meta_title_ar" field.
func MetaTitleArGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldMetaTitleAr, v))
}

// MetaTitleArLT applies the LT predicate on the "meta_title_ar" field.
func MetaTitleArLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldMetaTitleAr, v))
}

// MetaTitleArLTE applies the LTE predicate on the "meta_title_ar" field.
func MetaTitleArLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldMetaTitleAr, v))
}

// MetaTitleArContains applies the Contains predicate on the "meta_title_ar" field.
func MetaTitleArContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldMetaTitleAr, v))
}

// MetaTitleArHasPrefix applies the HasPrefix predicate on the "meta_title_ar" field.
func MetaTitleArHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldMetaTitleAr, v))
}

// MetaTitleArHasSuffix applies the HasSuffix predicate on the "meta_title_ar" field.
func MetaTitleArHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldMetaTitleAr, v))
}

// MetaTitleArIsNil applies the IsNil predicate on the "meta_title_ar" field.
func MetaTitleArIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldMetaTitleAr))
}

// MetaTitleArNotNil applies the NotNil predicate on the "meta_title_ar" field.
func MetaTitleArNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldMetaTitleAr))
}

// MetaTitleArEqualFold applies the EqualFold predicate on the "meta_title_ar" field.
func MetaTitleArEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldMetaTitleAr, v))
}

// MetaTitleArContainsFold applies the ContainsFold predicate on the "meta_title_ar" field.
func MetaTitleArContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldMetaTitleAr, v))
}

// MetaDescriptionEnEQ applies the EQ predicate on the "meta_description_en" field.
func MetaDescriptionEnEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnNEQ applies the NEQ predicate on the "meta_description_en" field.
func MetaDescriptionEnNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIn applies the In predicate on the "meta_description_en" field.
func MetaDescriptionEnIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnNotIn applies the NotIn predicate on the "meta_description_en" field.
func MetaDescriptionEnNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnGT applies the GT predicate on the "meta_description_en" field.
func MetaDescriptionEnGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnGTE applies the GTE predicate on the "meta_description_en" field.
func MetaDescriptionEnGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLT applies the LT predicate on the "meta_description_en" field.
func MetaDescriptionEnLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLTE applies the LTE predicate on the "meta_description_en" field.
func MetaDescriptionEnLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContains applies the Contains predicate on the "meta_description_en" field.
func MetaDescriptionEnContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasPrefix applies the HasPrefix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasSuffix applies the HasSuffix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIsNil applies the IsNil predicate on the "meta_description_en" field.
func MetaDescriptionEnIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnNotNil applies the NotNil predicate on the "meta_description_en" field.
func MetaDescriptionEnNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnEqualFold applies the EqualFold predicate on the "meta_description_en" field.
func MetaDescriptionEnEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContainsFold applies the ContainsFold predicate on the "meta_description_en" field.
func MetaDescriptionEnContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionArEQ applies the EQ predicate on the "meta_description_ar" field.
func MetaDescriptionArEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArNEQ applies the NEQ predicate on the "meta_description_ar" field.
func MetaDescriptionArNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIn applies the In predicate on the "meta_description_ar" field.
func MetaDescriptionArIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArNotIn applies the NotIn predicate on the "meta_description_ar" field.
func MetaDescriptionArNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArGT applies the GT predicate on the "meta_description_ar" field.
func MetaDescriptionArGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArGTE applies the GTE predicate on the "meta_description_ar" field.
func MetaDescriptionArGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLT applies the LT predicate on the "meta_description_ar" field.
func MetaDescriptionArLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLTE applies the LTE predicate on the "meta_description_ar" field.
func MetaDescriptionArLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContains applies the Contains predicate on the "meta_description_ar" field.
func MetaDescriptionArContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasPrefix applies the HasPrefix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasSuffix applies the HasSuffix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIsNil applies the IsNil predicate on the "meta_description_ar" field.
func MetaDescriptionArIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArNotNil applies the NotNil predicate on the "meta_description_ar" field.
func MetaDescriptionArNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArEqualFold applies the EqualFold predicate on the "meta_description_ar" field.
func MetaDescriptionArEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContainsFold applies the ContainsFold predicate on the "meta_description_ar" field.
func MetaDescriptionArContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldMetaDescriptionAr, v))
}

// HasHospital applies the HasEdge predicate on the "hospital" edge.
func HasHospital() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HospitalTable, HospitalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHospitalWith applies the HasEdge predicate on the "hospital" edge with a given conditions (other predicates).
func HasHospitalWith(preds ...predicate.Hospital) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newHospitalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.NotPredicates(p))
}
