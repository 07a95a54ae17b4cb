// Code generated by ent, DO NOT EDIT.

package media

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldUpdatedAt, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldArchivedAt, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldKey, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldContentType, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int64) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldSizeBytes, v))
}

// AltEn applies equality check predicate on the "alt_en" field. It's identical to AltEnEQ.
func AltEn(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldAltEn, v))
}

// AltAr applies equality check predicate on the "alt_ar" field. It's identical to AltArEQ.
func AltAr(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldAltAr, v))
}

// Entity applies equality check predicate on the "entity" field. It's identical to EntityEQ.
func Entity(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldEntity, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldUpdatedAt, v))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Media {
	return predicate.Media(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Media {
	return predicate.Media(sql.FieldNotNull(FieldArchivedAt))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.Media {
	return predicate.Media(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.Media {
	return predicate.Media(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.Media {
	return predicate.Media(sql.FieldContainsFold(FieldKey, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Media {
	return predicate.Media(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Media {
	return predicate.Media(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Media {
	return predicate.Media(sql.FieldContainsFold(FieldContentType, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int64) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int64) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int64) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int64) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int64) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int64) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int64) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int64) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldSizeBytes, v))
}

// AltEnEQ applies the EQ predicate on the "alt_en" field.
func AltEnEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldAltEn, v))
}

// AltEnNEQ applies the NEQ predicate on the "alt_en" field.
func AltEnNEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldAltEn, v))
}

// AltEnIn applies the In predicate on the "alt_en" field.
func AltEnIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldAltEn, vs...))
}

// AltEnNotIn applies the NotIn predicate on the "alt_en" field.
func AltEnNotIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldAltEn, vs...))
}

// AltEnGT applies the GT predicate on the "alt_en" field.
func AltEnGT(v string) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldAltEn, v))
}

// AltEnGTE applies the GTE predicate on the "alt_en" field.
func AltEnGTE(v string) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldAltEn, v))
}

// AltEnLT applies the LT predicate on the "alt_en" field.
func AltEnLT(v string) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldAltEn, v))
}

// AltEnLTE applies the LTE predicate on the "alt_en" field.
func AltEnLTE(v string) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldAltEn, v))
}

// AltEnContains applies the Contains predicate on the "alt_en" field.
func AltEnContains(v string) predicate.Media {
	return predicate.Media(sql.FieldContains(FieldAltEn, v))
}

// AltEnHasPrefix applies the HasPrefix predicate on the "alt_en" field.
func AltEnHasPrefix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasPrefix(FieldAltEn, v))
}

// AltEnHasSuffix applies the HasSuffix predicate on the "alt_en" field.
func AltEnHasSuffix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasSuffix(FieldAltEn, v))
}

// AltEnIsNil applies the IsNil predicate on the "alt_en" field.
func AltEnIsNil() predicate.Media {
	return predicate.Media(sql.FieldIsNull(FieldAltEn))
}

// AltEnNotNil applies the NotNil predicate on the "alt_en" field.
func AltEnNotNil() predicate.Media {
	return predicate.Media(sql.FieldNotNull(FieldAltEn))
}

// AltEnEqualFold applies the EqualFold predicate on the "alt_en" field.
func AltEnEqualFold(v string) predicate.Media {
	return predicate.Media(sql.FieldEqualFold(FieldAltEn, v))
}

// AltEnContainsFold applies the ContainsFold predicate on the "alt_en" field.
func AltEnContainsFold(v string) predicate.Media {
	return predicate.Media(sql.FieldContainsFold(FieldAltEn, v))
}

// AltArEQ applies the EQ predicate on the "alt_ar" field.
func AltArEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldAltAr, v))
}

// AltArNEQ applies the NEQ predicate on the "alt_ar" field.
func AltArNEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldAltAr, v))
}

// AltArIn applies the In predicate on the "alt_ar" field.
func AltArIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldAltAr, vs...))
}

// AltArNotIn applies the NotIn predicate on the "alt_ar" field.
func AltArNotIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldAltAr, vs...))
}

// AltArGT applies the GT predicate on the "alt_ar" field.
func AltArGT(v string) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldAltAr, v))
}

// AltArGTE applies the GTE predicate on the "alt_ar" field.
func AltArGTE(v string) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldAltAr, v))
}

// AltArLT applies the LT predicate on the "alt_ar" field.
func AltArLT(v string) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldAltAr, v))
}

// AltArLTE applies the LTE predicate on the "alt_ar" field.
func AltArLTE(v string) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldAltAr, v))
}

// AltArContains applies the Contains predicate on the "alt_ar" field.
func AltArContains(v string) predicate.Media {
	return predicate.Media(sql.FieldContains(FieldAltAr, v))
}

// AltArHasPrefix applies the HasPrefix predicate on the "alt_ar" field.
func AltArHasPrefix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasPrefix(FieldAltAr, v))
}

// AltArHasSuffix applies the HasSuffix predicate on the "alt_ar" field.
func AltArHasSuffix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasSuffix(FieldAltAr, v))
}

// AltArIsNil applies the IsNil predicate on the "alt_ar" field.
func AltArIsNil() predicate.Media {
	return predicate.Media(sql.FieldIsNull(FieldAltAr))
}

// AltArNotNil applies the NotNil predicate on the "alt_ar" field.
func AltArNotNil() predicate.Media {
	return predicate.Media(sql.FieldNotNull(FieldAltAr))
}

// AltArEqualFold applies the EqualFold predicate on the "alt_ar" field.
func AltArEqualFold(v string) predicate.Media {
	return predicate.Media(sql.FieldEqualFold(FieldAltAr, v))
}

// AltArContainsFold applies the ContainsFold predicate on the "alt_ar" field.
func AltArContainsFold(v string) predicate.Media {
	return predicate.Media(sql.FieldContainsFold(FieldAltAr, v))
}

// EntityEQ applies the EQ predicate on the "entity" field.
func EntityEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldEQ(FieldEntity, v))
}

// EntityNEQ applies the NEQ predicate on the "entity" field.
func EntityNEQ(v string) predicate.Media {
	return predicate.Media(sql.FieldNEQ(FieldEntity, v))
}

// EntityIn applies the In predicate on the "entity" field.
func EntityIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldIn(FieldEntity, vs...))
}

// EntityNotIn applies the NotIn predicate on the "entity" field.
func EntityNotIn(vs ...string) predicate.Media {
	return predicate.Media(sql.FieldNotIn(FieldEntity, vs...))
}

// EntityGT applies the GT predicate on the "entity" field.
func EntityGT(v string) predicate.Media {
	return predicate.Media(sql.FieldGT(FieldEntity, v))
}

// EntityGTE applies the GTE predicate on the "entity" field.
func EntityGTE(v string) predicate.Media {
	return predicate.Media(sql.FieldGTE(FieldEntity, v))
}

// EntityLT applies the LT predicate on the "entity" field.
func EntityLT(v string) predicate.Media {
	return predicate.Media(sql.FieldLT(FieldEntity, v))
}

// EntityLTE applies the LTE predicate on the "entity" field.
func EntityLTE(v string) predicate.Media {
	return predicate.Media(sql.FieldLTE(FieldEntity, v))
}

// EntityContains applies the Contains predicate on the "entity" field.
func EntityContains(v string) predicate.Media {
	return predicate.Media(sql.FieldContains(FieldEntity, v))
}

// EntityHasPrefix applies the HasPrefix predicate on the "entity" field.
func EntityHasPrefix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasPrefix(FieldEntity, v))
}

// EntityHasSuffix applies the HasSuffix predicate on the "entity" field.
func EntityHasSuffix(v string) predicate.Media {
	return predicate.Media(sql.FieldHasSuffix(FieldEntity, v))
}

// EntityIsNil applies the IsNil predicate on the "entity" field.
func EntityIsNil() predicate.Media {
	return predicate.Media(sql.FieldIsNull(FieldEntity))
}

// EntityNotNil applies the NotNil predicate on the "entity" field.
func EntityNotNil() predicate.Media {
	return predicate.Media(sql.FieldNotNull(FieldEntity))
}

// EntityEqualFold applies the EqualFold predicate on the "entity" field.
func EntityEqualFold(v string) predicate.Media {
	return predicate.Media(sql.FieldEqualFold(FieldEntity, v))
}

// EntityContainsFold applies the ContainsFold predicate on the "entity" field.
func EntityContainsFold(v string) predicate.Media {
	return predicate.Media(sql.FieldContainsFold(FieldEntity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Media) predicate.Media {
	return predicate.Media(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Media) predicate.Media {
	return predicate.Media(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Media) predicate.Media {
	return predicate.Media(sql.NotPredicates(p))
}
