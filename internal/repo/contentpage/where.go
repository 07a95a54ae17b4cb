// Code generated by ent, DO NOT EDIT.

package contentpage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldUpdatedAt, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldPublished, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldPublishedAt, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldArchivedAt, v))
}

// TitleEn applies equality check predicate on the "title_en" field. It's identical to TitleEnEQ.
func TitleEn(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldTitleEn, v))
}

// TitleAr applies equality check predicate on the "title_ar" field. It's identical to TitleArEQ.
func TitleAr(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldTitleAr, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldSlug, v))
}

// ExcerptEn applies equality check predicate on the "excerpt_en" field. It's identical to ExcerptEnEQ.
func ExcerptEn(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldExcerptEn, v))
}

// ExcerptAr applies equality check predicate on the "excerpt_ar" field. It's identical to ExcerptArEQ.
func ExcerptAr(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldExcerptAr, v))
}

// MetaTitleEn applies equality check predicate on the "meta_title_en" field. It's identical to MetaTitleEnEQ.
func MetaTitleEn(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleAr applies equality check predicate on the "meta_title_ar" field. It's identical to MetaTitleArEQ.
func MetaTitleAr(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaDescriptionEn applies equality check predicate on the "meta_description_en" field. It's identical to MetaDescriptionEnEQ.
func MetaDescriptionEn(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionAr applies equality check predicate on the "meta_description_ar" field. It's identical to MetaDescriptionArEQ.
func MetaDescriptionAr(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// CoverImage applies equality check predicate on the "cover_image" field. It's identical to CoverImageEQ.
func CoverImage(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldCoverImage, v))
}

// AuthorName applies equality check predicate on the "author_name" field. It's identical to AuthorNameEQ.
func AuthorName(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldAuthorID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldUpdatedAt, v))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldPublished, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldPublishedAt))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldArchivedAt))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldKind, vs...))
}

// TitleEnEQ applies the EQ predicate on the "title_en" field.
func TitleEnEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldTitleEn, v))
}

// TitleEnNEQ applies the NEQ predicate on the "title_en" field.
func TitleEnNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldTitleEn, v))
}

// TitleEnIn applies the In predicate on the "title_en" field.
func TitleEnIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldTitleEn, vs...))
}

// TitleEnNotIn applies the NotIn predicate on the "title_en" field.
func TitleEnNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldTitleEn, vs...))
}

// TitleEnGT applies the GT predicate on the "title_en" field.
func TitleEnGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldTitleEn, v))
}

// TitleEnGTE applies the GTE predicate on the "title_en" field.
func TitleEnGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldTitleEn, v))
}

// TitleEnLT applies the LT predicate on the "title_en" field.
func TitleEnLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldTitleEn, v))
}

// TitleEnLTE applies the LTE predicate on the "title_en" field.
func TitleEnLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldTitleEn, v))
}

// TitleEnContains applies the Contains predicate on the "title_en" field.
func TitleEnContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldTitleEn, v))
}

// TitleEnHasPrefix applies the HasPrefix predicate on the "title_en" field.
func TitleEnHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldTitleEn, v))
}

// TitleEnHasSuffix applies the HasSuffix predicate on the "title_en" field.
func TitleEnHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldTitleEn, v))
}

// TitleEnEqualFold applies the EqualFold predicate on the "title_en" field.
func TitleEnEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldTitleEn, v))
}

// TitleEnContainsFold applies the ContainsFold predicate on the "title_en" field.
func TitleEnContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldTitleEn, v))
}

// TitleArEQ applies the EQ predicate on the "title_ar" field.
func TitleArEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldTitleAr, v))
}

// TitleArNEQ applies the NEQ predicate on the "title_ar" field.
func TitleArNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldTitleAr, v))
}

// TitleArIn applies the In predicate on the "title_ar" field.
func TitleArIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldTitleAr, vs...))
}

// TitleArNotIn applies the NotIn predicate on the "title_ar" field.
func TitleArNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldTitleAr, vs...))
}

// TitleArGT applies the GT predicate on the "title_ar" field.
func TitleArGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldTitleAr, v))
}

// TitleArGTE applies the GTE predicate on the "title_ar" field.
func TitleArGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldTitleAr, v))
}

// TitleArLT applies the LT predicate on the "title_ar" field.
func TitleArLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldTitleAr, v))
}

// TitleArLTE applies the LTE predicate on the "title_ar" field.
func TitleArLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldTitleAr, v))
}

// TitleArContains applies the Contains predicate on the "title_ar" field.
func TitleArContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldTitleAr, v))
}

// TitleArHasPrefix applies the HasPrefix predicate on the "title_ar" field.
func TitleArHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldTitleAr, v))
}

// TitleArHasSuffix applies the HasSuffix predicate on the "title_ar" field.
func TitleArHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldTitleAr, v))
}

// TitleArEqualFold applies the EqualFold predicate on the "title_ar" field.
func TitleArEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldTitleAr, v))
}

// TitleArContainsFold applies the ContainsFold predicate on the "title_ar" field.
func TitleArContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldTitleAr, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldSlug, v))
}

// ExcerptEnEQ applies the EQ predicate on the "excerpt_en" field.
func ExcerptEnEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldExcerptEn, v))
}

// ExcerptEnNEQ applies the NEQ predicate on the "excerpt_en" field.
func ExcerptEnNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldExcerptEn, v))
}

// ExcerptEnIn applies the In predicate on the "excerpt_en" field.
func ExcerptEnIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldExcerptEn, vs...))
}

// ExcerptEnNotIn applies the NotIn predicate on the "excerpt_en" field.
func ExcerptEnNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldExcerptEn, vs...))
}

// ExcerptEnGT applies the GT predicate on the "excerpt_en" field.
func ExcerptEnGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldExcerptEn, v))
}

// ExcerptEnGTE applies the GTE predicate on the "excerpt_en" field.
func ExcerptEnGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldExcerptEn, v))
}

// ExcerptEnLT applies the LT predicate on the "excerpt_en" field.
func ExcerptEnLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldExcerptEn, v))
}

// ExcerptEnLTE applies the LTE predicate on the "excerpt_en" field.
func ExcerptEnLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldExcerptEn, v))
}

// ExcerptEnContains applies the Contains predicate on the "excerpt_en" field.
func ExcerptEnContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldExcerptEn, v))
}

// ExcerptEnHasPrefix applies the HasPrefix predicate on the "excerpt_en" field.
func ExcerptEnHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldExcerptEn, v))
}

// ExcerptEnHasSuffix applies the HasSuffix predicate on the "excerpt_en" field.
func ExcerptEnHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldExcerptEn, v))
}

// ExcerptEnIsNil applies the IsNil predicate on the "excerpt_en" field.
func ExcerptEnIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldExcerptEn))
}

// ExcerptEnNotNil applies the NotNil predicate on the "excerpt_en" field.
func ExcerptEnNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldExcerptEn))
}

// ExcerptEnEqualFold applies the EqualFold predicate on the "excerpt_en" field.
func ExcerptEnEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldExcerptEn, v))
}

// ExcerptEnContainsFold applies the ContainsFold predicate on the "excerpt_en" field.
func ExcerptEnContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldExcerptEn, v))
}

// ExcerptArEQ applies the EQ predicate on the "excerpt_ar" field.
func ExcerptArEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldExcerptAr, v))
}

// ExcerptArNEQ applies the NEQ predicate on the "excerpt_ar" field.
func ExcerptArNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldExcerptAr, v))
}

// ExcerptArIn applies the In predicate on the "excerpt_ar" field.
func ExcerptArIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldExcerptAr, vs...))
}

// ExcerptArNotIn applies the NotIn predicate on the "excerpt_ar" field.
func ExcerptArNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldExcerptAr, vs...))
}

// ExcerptArGT applies the GT predicate on the "excerpt_ar" field.
func ExcerptArGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldExcerptAr, v))
}

// ExcerptArGTE applies the GTE predicate on the "excerpt_ar" field.
func ExcerptArGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldExcerptAr, v))
}

// ExcerptArLT applies the LT predicate on the "excerpt_ar" field.
func ExcerptArLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldExcerptAr, v))
}

// ExcerptArLTE applies the LTE predicate on the "excerpt_ar" field.
func ExcerptArLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldExcerptAr, v))
}

// ExcerptArContains applies the Contains predicate on the "excerpt_ar" field.
func ExcerptArContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldExcerptAr, v))
}

// ExcerptArHasPrefix applies the HasPrefix predicate on the "excerpt_ar" field.
func ExcerptArHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldExcerptAr, v))
}

// ExcerptArHasSuffix applies the HasSuffix predicate on the "excerpt_ar" field.
func ExcerptArHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldExcerptAr, v))
}

// ExcerptArIsNil applies the IsNil predicate on the "excerpt_ar" field.
func ExcerptArIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldExcerptAr))
}

// ExcerptArNotNil applies the NotNil predicate on the "excerpt_ar" field.
func ExcerptArNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldExcerptAr))
}

// ExcerptArEqualFold applies the EqualFold predicate on the "excerpt_ar" field.
func ExcerptArEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldExcerptAr, v))
}

// ExcerptArContainsFold applies the ContainsFold predicate on the "excerpt_ar" field.
func ExcerptArContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldExcerptAr, v))
}

// BodyEnIsNil applies the IsNil predicate on the "body_en" field.
func BodyEnIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldBodyEn))
}

// BodyEnNotNil applies the NotNil predicate on the "body_en" field.
func BodyEnNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldBodyEn))
}

// BodyArIsNil applies the IsNil predicate on the "body_ar" field.
func BodyArIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldBodyAr))
}

// BodyArNotNil applies the NotNil predicate on the "body_ar" field.
func BodyArNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldBodyAr))
}

// MetaTitleEnEQ applies the EQ predicate on the "meta_title_en" field.
func MetaTitleEnEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnNEQ applies the NEQ predicate on the "meta_title_en" field.
func MetaTitleEnNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldMetaTitleEn, v))
}

// MetaTitleEnIn applies the In predicate on the "meta_title_en" field.
func MetaTitleEnIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnNotIn applies the NotIn predicate on the "meta_title_en" field.
func MetaTitleEnNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldMetaTitleEn, vs...))
}

// MetaTitleEnGT applies the GT predicate on the "meta_title_en" field.
func MetaTitleEnGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldMetaTitleEn, v))
}

// MetaTitleEnGTE applies the GTE predicate on the "meta_title_en" field.
func MetaTitleEnGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldMetaTitleEn, v))
}

// MetaTitleEnLT applies the LT predicate on the "meta_title_en" field.
func MetaTitleEnLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldMetaTitleEn, v))
}

// MetaTitleEnLTE applies the LTE predicate on the "meta_title_en" field.
func MetaTitleEnLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldMetaTitleEn, v))
}

// MetaTitleEnContains applies the Contains predicate on the "meta_title_en" field.
func MetaTitleEnContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldMetaTitleEn, v))
}

// MetaTitleEnHasPrefix applies the HasPrefix predicate on the "meta_title_en" field.
func MetaTitleEnHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldMetaTitleEn, v))
}

// MetaTitleEnHasSuffix applies the HasSuffix predicate on the "meta_title_en" field.
func MetaTitleEnHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldMetaTitleEn, v))
}

// MetaTitleEnIsNil applies the IsNil predicate on the "meta_title_en" field.
func MetaTitleEnIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldMetaTitleEn))
}

// MetaTitleEnNotNil applies the NotNil predicate on the "meta_title_en" field.
func MetaTitleEnNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldMetaTitleEn))
}

// MetaTitleEnEqualFold applies the EqualFold predicate on the "meta_title_en" field.
func MetaTitleEnEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldMetaTitleEn, v))
}

// MetaTitleEnContainsFold applies the ContainsFold predicate on the "meta_title_en" field.
func MetaTitleEnContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldMetaTitleEn, v))
}

// MetaTitleArEQ applies the EQ predicate on the "meta_title_ar" field.
func MetaTitleArEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaTitleAr, v))
}

// MetaTitleArNEQ applies the NEQ predicate on the "meta_title_ar" field.
func MetaTitleArNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldMetaTitleAr, v))
}

// MetaTitleArIn applies the In predicate on the "meta_title_ar" field.
func MetaTitleArIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArNotIn applies the NotIn predicate on the "meta_title_ar" field.
func MetaTitleArNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldMetaTitleAr, vs...))
}

// MetaTitleArGT applies the GT predicate on the "meta_title_ar" field.
func MetaTitleArGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldMetaTitleAr, v))
}

// MetaTitleArGTE applies the GTE predicate on the "meta_title_ar" field.
func MetaTitleArGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldMetaTitleAr, v))
}

// MetaTitleArLT applies the LT predicate on the "meta_title_ar" field.
func MetaTitleArLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldMetaTitleAr, v))
}

// MetaTitleArLTE applies the LTE predicate on the "meta_title_ar" field.
func MetaTitleArLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldMetaTitleAr, v))
}

// MetaTitleArContains applies the Contains predicate on the "meta_title_ar" field.
func MetaTitleArContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldMetaTitleAr, v))
}

// MetaTitleArHasPrefix applies the HasPrefix predicate on the "meta_title_ar" field.
func MetaTitleArHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldMetaTitleAr, v))
}

// MetaTitleArHasSuffix applies the HasSuffix predicate on the "meta_title_ar" field.
func MetaTitleArHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldMetaTitleAr, v))
}

// MetaTitleArIsNil applies the IsNil predicate on the "meta_title_ar" field.
func MetaTitleArIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldMetaTitleAr))
}

// MetaTitleArNotNil applies the NotNil predicate on the "meta_title_ar" field.
func MetaTitleArNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldMetaTitleAr))
}

// MetaTitleArEqualFold applies the EqualFold predicate on the "meta_title_ar" field.
func MetaTitleArEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldMetaTitleAr, v))
}

// MetaTitleArContainsFold applies the ContainsFold predicate on the "meta_title_ar" field.
func MetaTitleArContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldMetaTitleAr, v))
}

// MetaDescriptionEnEQ applies the EQ predicate on the "meta_description_en" field.
func MetaDescriptionEnEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnNEQ applies the NEQ predicate on the "meta_description_en" field.
func MetaDescriptionEnNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIn applies the In predicate on the "meta_description_en" field.
func MetaDescriptionEnIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnNotIn applies the NotIn predicate on the "meta_description_en" field.
func MetaDescriptionEnNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldMetaDescriptionEn, vs...))
}

// MetaDescriptionEnGT applies the GT predicate on the "meta_description_en" field.
func MetaDescriptionEnGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnGTE applies the GTE predicate on the "meta_description_en" field.
func MetaDescriptionEnGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLT applies the LT predicate on the "meta_description_en" field.
func MetaDescriptionEnLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnLTE applies the LTE predicate on the "meta_description_en" field.
func MetaDescriptionEnLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContains applies the Contains predicate on the "meta_description_en" field.
func MetaDescriptionEnContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasPrefix applies the HasPrefix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnHasSuffix applies the HasSuffix predicate on the "meta_description_en" field.
func MetaDescriptionEnHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnIsNil applies the IsNil predicate on the "meta_description_en" field.
func MetaDescriptionEnIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnNotNil applies the NotNil predicate on the "meta_description_en" field.
func MetaDescriptionEnNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldMetaDescriptionEn))
}

// MetaDescriptionEnEqualFold applies the EqualFold predicate on the "meta_description_en" field.
func MetaDescriptionEnEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionEnContainsFold applies the ContainsFold predicate on the "meta_description_en" field.
func MetaDescriptionEnContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldMetaDescriptionEn, v))
}

// MetaDescriptionArEQ applies the EQ predicate on the "meta_description_ar" field.
func MetaDescriptionArEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArNEQ applies the NEQ predicate on the "meta_description_ar" field.
func MetaDescriptionArNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIn applies the In predicate on the "meta_description_ar" field.
func MetaDescriptionArIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArNotIn applies the NotIn predicate on the "meta_description_ar" field.
func MetaDescriptionArNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldMetaDescriptionAr, vs...))
}

// MetaDescriptionArGT applies the GT predicate on the "meta_description_ar" field.
func MetaDescriptionArGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArGTE applies the GTE predicate on the "meta_description_ar" field.
func MetaDescriptionArGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLT applies the LT predicate on the "meta_description_ar" field.
func MetaDescriptionArLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArLTE applies the LTE predicate on the "meta_description_ar" field.
func MetaDescriptionArLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContains applies the Contains predicate on the "meta_description_ar" field.
func MetaDescriptionArContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasPrefix applies the HasPrefix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArHasSuffix applies the HasSuffix predicate on the "meta_description_ar" field.
func MetaDescriptionArHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArIsNil applies the IsNil predicate on the "meta_description_ar" field.
func MetaDescriptionArIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArNotNil applies the NotNil predicate on the "meta_description_ar" field.
func MetaDescriptionArNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldMetaDescriptionAr))
}

// MetaDescriptionArEqualFold applies the EqualFold predicate on the "meta_description_ar" field.
func MetaDescriptionArEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldMetaDescriptionAr, v))
}

// MetaDescriptionArContainsFold applies the ContainsFold predicate on the "meta_description_ar" field.
func MetaDescriptionArContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldMetaDescriptionAr, v))
}

// CoverImageEQ applies the EQ predicate on the "cover_image" field.
func CoverImageEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldCoverImage, v))
}

// CoverImageNEQ applies the NEQ predicate on the "cover_image" field.
func CoverImageNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldCoverImage, v))
}

// CoverImageIn applies the In predicate on the "cover_image" field.
func CoverImageIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldCoverImage, vs...))
}

// CoverImageNotIn applies the NotIn predicate on the "cover_image" field.
func CoverImageNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldCoverImage, vs...))
}

// CoverImageGT applies the GT predicate on the "cover_image" field.
func CoverImageGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldCoverImage, v))
}

// CoverImageGTE applies the GTE predicate on the "cover_image" field.
func CoverImageGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldCoverImage, v))
}

// CoverImageLT applies the LT predicate on the "cover_image" field.
func CoverImageLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldCoverImage, v))
}

// CoverImageLTE applies the LTE predicate on the "cover_image" field.
func CoverImageLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldCoverImage, v))
}

// CoverImageContains applies the Contains predicate on the "cover_image" field.
func CoverImageContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldCoverImage, v))
}

// CoverImageHasPrefix applies the HasPrefix predicate on the "cover_image" field.
func CoverImageHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldCoverImage, v))
}

// CoverImageHasSuffix applies the HasSuffix predicate on the "cover_image" field.
func CoverImageHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldCoverImage, v))
}

// CoverImageIsNil applies the IsNil predicate on the "cover_image" field.
func CoverImageIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldCoverImage))
}

// CoverImageNotNil applies the NotNil predicate on the "cover_image" field.
func CoverImageNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldCoverImage))
}

// CoverImageEqualFold applies the EqualFold predicate on the "cover_image" field.
func CoverImageEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldCoverImage, v))
}

// CoverImageContainsFold applies the ContainsFold predicate on the "cover_image" field.
func CoverImageContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldCoverImage, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldTags))
}

// FaqIsNil applies the IsNil predicate on the "faq" field.
func FaqIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldFaq))
}

// FaqNotNil applies the NotNil predicate on the "faq" field.
func FaqNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldFaq))
}

// AuthorNameEQ applies the EQ predicate on the "author_name" field.
func AuthorNameEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorNameNEQ applies the NEQ predicate on the "author_name" field.
func AuthorNameNEQ(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldAuthorName, v))
}

// AuthorNameIn applies the In predicate on the "author_name" field.
func AuthorNameIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldAuthorName, vs...))
}

// AuthorNameNotIn applies the NotIn predicate on the "author_name" field.
func AuthorNameNotIn(vs ...string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldAuthorName, vs...))
}

// AuthorNameGT applies the GT predicate on the "author_name" field.
func AuthorNameGT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGT(FieldAuthorName, v))
}

// AuthorNameGTE applies the GTE predicate on the "author_name" field.
func AuthorNameGTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldGTE(FieldAuthorName, v))
}

// AuthorNameLT applies the LT predicate on the "author_name" field.
func AuthorNameLT(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLT(FieldAuthorName, v))
}

// AuthorNameLTE applies the LTE predicate on the "author_name" field.
func AuthorNameLTE(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldLTE(FieldAuthorName, v))
}

// AuthorNameContains applies the Contains predicate on the "author_name" field.
func AuthorNameContains(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContains(FieldAuthorName, v))
}

// AuthorNameHasPrefix applies the HasPrefix predicate on the "author_name" field.
func AuthorNameHasPrefix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasPrefix(FieldAuthorName, v))
}

// AuthorNameHasSuffix applies the HasSuffix predicate on the "author_name" field.
func AuthorNameHasSuffix(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldHasSuffix(FieldAuthorName, v))
}

// AuthorNameIsNil applies the IsNil predicate on the "author_name" field.
func AuthorNameIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldAuthorName))
}

// AuthorNameNotNil applies the NotNil predicate on the "author_name" field.
func AuthorNameNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldAuthorName))
}

// AuthorNameEqualFold applies the EqualFold predicate on the "author_name" field.
func AuthorNameEqualFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEqualFold(FieldAuthorName, v))
}

// AuthorNameContainsFold applies the ContainsFold predicate on the "author_name" field.
func AuthorNameContainsFold(v string) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldContainsFold(FieldAuthorName, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...uuid.UUID) predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDIsNil applies the IsNil predicate on the "author_id" field.
func AuthorIDIsNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldIsNull(FieldAuthorID))
}

// AuthorIDNotNil applies the NotNil predicate on the "author_id" field.
func AuthorIDNotNil() predicate.ContentPage {
	return predicate.ContentPage(sql.FieldNotNull(FieldAuthorID))
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.ContentPage {
	return predicate.ContentPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.User) predicate.ContentPage {
	return predicate.ContentPage(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentPage) predicate.ContentPage {
	return predicate.ContentPage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentPage) predicate.ContentPage {
	return predicate.ContentPage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentPage) predicate.ContentPage {
	return predicate.ContentPage(sql.NotPredicates(p))
}
