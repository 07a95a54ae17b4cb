// Code generated by ent, DO NOT EDIT.

package booking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUpdatedAt, v))
}

// IsArchived applies equality check predicate on the "is_archived" field. It's identical to IsArchivedEQ.
func IsArchived(v bool) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldIsArchived, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldArchivedAt, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPatientName, v))
}

// PatientEmail applies equality check predicate on the "patient_email" field. It's identical to PatientEmailEQ.
func PatientEmail(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPatientEmail, v))
}

// PatientPhone applies equality check predicate on the "patient_phone" field. It's identical to PatientPhoneEQ.
func PatientPhone(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPatientPhone, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCountry, v))
}

// Locale applies equality check predicate on the "locale" field. It's identical to LocaleEQ.
func Locale(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldLocale, v))
}

// TreatmentID applies equality check predicate on the "treatment_id" field. It's identical to TreatmentIDEQ.
func TreatmentID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTreatmentID, v))
}

// HospitalID applies equality check predicate on the "hospital_id" field. It's identical to HospitalIDEQ.
func HospitalID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldHospitalID, v))
}

// PackageID applies equality check predicate on the "package_id" field. It's identical to PackageIDEQ.
func PackageID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPackageID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldDoctorID, v))
}

// TranslatorID applies equality check predicate on the "translator_id" field. It's identical to TranslatorIDEQ.
func TranslatorID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTranslatorID, v))
}

// AssignedUserID applies equality check predicate on the "assigned_user_id" field. It's identical to AssignedUserIDEQ.
func AssignedUserID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldAssignedUserID, v))
}

// PreferredStart applies equality check predicate on the "preferred_start" field. It's identical to PreferredStartEQ.
func PreferredStart(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPreferredStart, v))
}

// PreferredEnd applies equality check predicate on the "preferred_end" field. It's identical to PreferredEndEQ.
func PreferredEnd(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPreferredEnd, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldNotes, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldConfirmedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCompletedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledAt, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancellationReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldUpdatedAt, v))
}

// IsArchivedEQ applies the EQ predicate on the "is_archived" field.
func IsArchivedEQ(v bool) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldIsArchived, v))
}

// IsArchivedNEQ applies the NEQ predicate on the "is_archived" field.
func IsArchivedNEQ(v bool) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldIsArchived, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldArchivedAt))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientEmailEQ applies the EQ predicate on the "patient_email" field.
func PatientEmailEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPatientEmail, v))
}

// PatientEmailNEQ applies the NEQ predicate on the "patient_email" field.
func PatientEmailNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPatientEmail, v))
}

// PatientEmailIn applies the In predicate on the "patient_email" field.
func PatientEmailIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPatientEmail, vs...))
}

// PatientEmailNotIn applies the NotIn predicate on the "patient_email" field.
func PatientEmailNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPatientEmail, vs...))
}

// PatientEmailGT applies the GT predicate on the "patient_email" field.
func PatientEmailGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPatientEmail, v))
}

// PatientEmailGTE applies the GTE predicate on the "patient_email" field.
func PatientEmailGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPatientEmail, v))
}

// PatientEmailLT applies the LT predicate on the "patient_email" field.
func PatientEmailLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPatientEmail, v))
}

// PatientEmailLTE applies the LTE predicate on the "patient_email" field.
func PatientEmailLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPatientEmail, v))
}

// PatientEmailContains applies the Contains predicate on the "patient_email" field.
func PatientEmailContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldPatientEmail, v))
}

// PatientEmailHasPrefix applies the HasPrefix predicate on the "patient_email" field.
func PatientEmailHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldPatientEmail, v))
}

// PatientEmailHasSuffix applies the HasSuffix predicate on the "patient_email" field.
func PatientEmailHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldPatientEmail, v))
}

// PatientEmailEqualFold applies the EqualFold predicate on the "patient_email" field.
func PatientEmailEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldPatientEmail, v))
}

// PatientEmailContainsFold applies the ContainsFold predicate on the "patient_email" field.
func PatientEmailContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldPatientEmail, v))
}

// PatientPhoneEQ applies the EQ predicate on the "patient_phone" field.
func PatientPhoneEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPatientPhone, v))
}

// PatientPhoneNEQ applies the NEQ predicate on the "patient_phone" field.
func PatientPhoneNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPatientPhone, v))
}

// PatientPhoneIn applies the In predicate on the "patient_phone" field.
func PatientPhoneIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPatientPhone, vs...))
}

// PatientPhoneNotIn applies the NotIn predicate on the "patient_phone" field.
func PatientPhoneNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPatientPhone, vs...))
}

// PatientPhoneGT applies the GT predicate on the "patient_phone" field.
func PatientPhoneGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPatientPhone, v))
}

// PatientPhoneGTE applies the GTE predicate on the "patient_phone" field.
func PatientPhoneGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPatientPhone, v))
}

// PatientPhoneLT applies the LT predicate on the "patient_phone" field.
func PatientPhoneLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPatientPhone, v))
}

// PatientPhoneLTE applies the LTE predicate on the "patient_phone" field.
func PatientPhoneLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPatientPhone, v))
}

// PatientPhoneContains applies the Contains predicate on the "patient_phone" field.
func PatientPhoneContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldPatientPhone, v))
}

// PatientPhoneHasPrefix applies the HasPrefix predicate on the "patient_phone" field.
func PatientPhoneHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldPatientPhone, v))
}

// PatientPhoneHasSuffix applies the HasSuffix predicate on the "patient_phone" field.
func PatientPhoneHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldPatientPhone, v))
}

// PatientPhoneEqualFold applies the EqualFold predicate on the "patient_phone" field.
func PatientPhoneEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldPatientPhone, v))
}

// PatientPhoneContainsFold applies the ContainsFold predicate on the "patient_phone" field.
func PatientPhoneContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldPatientPhone, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldCountry, v))
}

// LocaleEQ applies the EQ predicate on the "locale" field.
func LocaleEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldLocale, v))
}

// LocaleNEQ applies the NEQ predicate on the "locale" field.
func LocaleNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldLocale, v))
}

// LocaleIn applies the In predicate on the "locale" field.
func LocaleIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldLocale, vs...))
}

// LocaleNotIn applies the NotIn predicate on the "locale" field.
func LocaleNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldLocale, vs...))
}

// LocaleGT applies the GT predicate on the "locale" field.
func LocaleGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldLocale, v))
}

// LocaleGTE applies the GTE predicate on the "locale" field.
func LocaleGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldLocale, v))
}

// LocaleLT applies the LT predicate on the "locale" field.
func LocaleLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldLocale, v))
}

// LocaleLTE applies the LTE predicate on the "locale" field.
func LocaleLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldLocale, v))
}

// LocaleContains applies the Contains predicate on the "locale" field.
func LocaleContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldLocale, v))
}

// LocaleHasPrefix applies the HasPrefix predicate on the "locale" field.
func LocaleHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldLocale, v))
}

// LocaleHasSuffix applies the HasSuffix predicate on the "locale" field.
func LocaleHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldLocale, v))
}

// LocaleEqualFold applies the EqualFold predicate on the "locale" field.
func LocaleEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldLocale, v))
}

// LocaleContainsFold applies the ContainsFold predicate on the "locale" field.
func LocaleContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldLocale, v))
}

// TreatmentIDEQ applies the EQ predicate on the "treatment_id" field.
func TreatmentIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTreatmentID, v))
}

// TreatmentIDNEQ applies the NEQ predicate on the "treatment_id" field.
func TreatmentIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldTreatmentID, v))
}

// TreatmentIDIn applies the In predicate on the "treatment_id" field.
func TreatmentIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldTreatmentID, vs...))
}

// TreatmentIDNotIn applies the NotIn predicate on the "treatment_id" field.
func TreatmentIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldTreatmentID, vs...))
}

// TreatmentIDIsNil applies the IsNil predicate on the "treatment_id" field.
func TreatmentIDIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldTreatmentID))
}

// TreatmentIDNotNil applies the NotNil predicate on the "treatment_id" field.
func TreatmentIDNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldTreatmentID))
}

// HospitalIDEQ applies the EQ predicate on the "hospital_id" field.
func HospitalIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldHospitalID, v))
}

// HospitalIDNEQ applies the NEQ predicate on the "hospital_id" field.
func HospitalIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldHospitalID, v))
}

// HospitalIDIn applies the In predicate on the "hospital_id" field.
func HospitalIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldHospitalID, vs...))
}

// HospitalIDNotIn applies the NotIn predicate on the "hospital_id" field.
func HospitalIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldHospitalID, vs...))
}

// HospitalIDIsNil applies the IsNil predicate on the "hospital_id" field.
func HospitalIDIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldHospitalID))
}

// HospitalIDNotNil applies the NotNil predicate on the "hospital_id" field.
func HospitalIDNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldHospitalID))
}

// PackageIDEQ applies the EQ predicate on the "package_id" field.
func PackageIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPackageID, v))
}

// PackageIDNEQ applies the NEQ predicate on the "package_id" field.
func PackageIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPackageID, v))
}

// PackageIDIn applies the In predicate on the "package_id" field.
func PackageIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPackageID, vs...))
}

// PackageIDNotIn applies the NotIn predicate on the "package_id" field.
func PackageIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPackageID, vs...))
}

// PackageIDIsNil applies the IsNil predicate on the "package_id" field.
func PackageIDIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldPackageID))
}

// PackageIDNotNil applies the NotNil predicate on the "package_id" field.
func PackageIDNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldPackageID))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDIsNil applies the IsNil predicate on the "doctor_id" field.
func DoctorIDIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldDoctorID))
}

// DoctorIDNotNil applies the NotNil predicate on the "doctor_id" field.
func DoctorIDNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldDoctorID))
}

// TranslatorIDEQ applies the EQ predicate on the "translator_id" field.
func TranslatorIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTranslatorID, v))
}

// TranslatorIDNEQ applies the NEQ predicate on the "translator_id" field.
func TranslatorIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldTranslatorID, v))
}

// TranslatorIDIn applies the In predicate on the "translator_id" field.
func TranslatorIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldTranslatorID, vs...))
}

// TranslatorIDNotIn applies the NotIn predicate on the "translator_id" field.
func TranslatorIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldTranslatorID, vs...))
}

// TranslatorIDIsNil applies the IsNil predicate on the "translator_id" field.
func TranslatorIDIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldTranslatorID))
}

// TranslatorIDNotNil applies the NotNil predicate on the "translator_id" field.
func TranslatorIDNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldTranslatorID))
}

// AssignedUserIDEQ applies the EQ predicate on the "assigned_user_id" field.
func AssignedUserIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldAssignedUserID, v))
}

// AssignedUserIDNEQ applies the NEQ predicate on the "assigned_user_id" field.
func AssignedUserIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldAssignedUserID, v))
}

// AssignedUserIDIn applies the In predicate on the "assigned_user_id" field.
func AssignedUserIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldAssignedUserID, vs...))
}

// AssignedUserIDNotIn applies the NotIn predicate on the "assigned_user_id" field.
func AssignedUserIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldAssignedUserID, vs...))
}

// AssignedUserIDIsNil applies the IsNil predicate on the "assigned_user_id" field.
func AssignedUserIDIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldAssignedUserID))
}

// AssignedUserIDNotNil applies the NotNil predicate on the "assigned_user_id" field.
func AssignedUserIDNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldAssignedUserID))
}

// PreferredStartEQ applies the EQ predicate on the "preferred_start" field.
func PreferredStartEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPreferredStart, v))
}

// PreferredStartNEQ applies the NEQ predicate on the "preferred_start" field.
func PreferredStartNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPreferredStart, v))
}

// PreferredStartIn applies the In predicate on the "preferred_start" field.
func PreferredStartIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPreferredStart, vs...))
}

// PreferredStartNotIn applies the NotIn predicate on the "preferred_start" field.
func PreferredStartNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPreferredStart, vs...))
}

// PreferredStartGT applies the GT predicate on the "preferred_start" field.
func PreferredStartGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPreferredStart, v))
}

// PreferredStartGTE applies the GTE predicate on the "preferred_start" field.
func PreferredStartGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPreferredStart, v))
}

// PreferredStartLT applies the LT predicate on the "preferred_start" field.
func PreferredStartLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPreferredStart, v))
}

// PreferredStartLTE applies the LTE predicate on the "preferred_start" field.
func PreferredStartLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPreferredStart, v))
}

// PreferredStartIsNil applies the IsNil predicate on the "preferred_start" field.
func PreferredStartIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldPreferredStart))
}

// PreferredStartNotNil applies the NotNil predicate on the "preferred_start" field.
func PreferredStartNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldPreferredStart))
}

// PreferredEndEQ applies the EQ predicate on the "preferred_end" field.
func PreferredEndEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPreferredEnd, v))
}

// PreferredEndNEQ applies the NEQ predicate on the "preferred_end" field.
func PreferredEndNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPreferredEnd, v))
}

// PreferredEndIn applies the In predicate on the "preferred_end" field.
func PreferredEndIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPreferredEnd, vs...))
}

// PreferredEndNotIn applies the NotIn predicate on the "preferred_end" field.
func PreferredEndNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPreferredEnd, vs...))
}

// PreferredEndGT applies the GT predicate on the "preferred_end" field.
func PreferredEndGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPreferredEnd, v))
}

// PreferredEndGTE applies the GTE predicate on the "preferred_end" field.
func PreferredEndGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPreferredEnd, v))
}

// PreferredEndLT applies the LT predicate on the "preferred_end" field.
func PreferredEndLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPreferredEnd, v))
}

// PreferredEndLTE applies the LTE predicate on the "preferred_end" field.
func PreferredEndLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPreferredEnd, v))
}

// PreferredEndIsNil applies the IsNil predicate on the "preferred_end" field.
func PreferredEndIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldPreferredEnd))
}

// PreferredEndNotNil applies the NotNil predicate on the "preferred_end" field.
func PreferredEndNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldPreferredEnd))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldNotes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldStatus, vs...))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldConfirmedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCompletedAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCancelledAt))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldCancellationReason, v))
}

// HasTreatment applies the HasEdge predicate on the "treatment" edge.
func HasTreatment() predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, TreatmentTable, TreatmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentWith applies the HasEdge predicate on the "treatment" edge with a given conditions (other predicates).
func HasTreatmentWith(preds ...predicate.Treatment) predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := newTreatmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHospital applies the HasEdge predicate on the "hospital" edge.
func HasHospital() predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, HospitalTable, HospitalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHospitalWith applies the HasEdge predicate on the "hospital" edge with a given conditions (other predicates).
func HasHospitalWith(preds ...predicate.Hospital) predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := newHospitalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPackage applies the HasEdge predicate on the "package" edge.
func HasPackage() predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, PackageTable, PackageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackageWith applies the HasEdge predicate on the "package" edge with a given conditions (other predicates).
func HasPackageWith(preds ...predicate.CarePackage) predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := newPackageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTranslator applies the HasEdge predicate on the "translator" edge.
func HasTranslator() predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, TranslatorTable, TranslatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranslatorWith applies the HasEdge predicate on the "translator" edge with a given conditions (other predicates).
func HasTranslatorWith(preds ...predicate.Translator) predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := newTranslatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedUser applies the HasEdge predicate on the "assigned_user" edge.
func HasAssignedUser() predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AssignedUserTable, AssignedUserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedUserWith applies the HasEdge predicate on the "assigned_user" edge with a given conditions (other predicates).
func HasAssignedUserWith(preds ...predicate.User) predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := newAssignedUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.NotPredicates(p))
}
