// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/booking"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// BookingUpdate is the builder for updating Booking entities.
type BookingUpdate struct {
	config
	hooks    []Hook
	mutation *BookingMutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdate) Where(ps ...predicate.Booking) *BookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdate) SetUpdatedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *BookingUpdate) SetIsArchived(v bool) *BookingUpdate {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableIsArchived(v *bool) *BookingUpdate {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *BookingUpdate) SetArchivedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableArchivedAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *BookingUpdate) ClearArchivedAt() *BookingUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *BookingUpdate) SetPatientName(v string) *BookingUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePatientName(v *string) *BookingUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientEmail sets the "patient_email" field.
func (_u *BookingUpdate) SetPatientEmail(v string) *BookingUpdate {
	_u.mutation.SetPatientEmail(v)
	return _u
}

// SetNillablePatientEmail sets the "patient_email" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePatientEmail(v *string) *BookingUpdate {
	if v != nil {
		_u.SetPatientEmail(*v)
	}
	return _u
}

// SetPatientPhone sets the "patient_phone" field.
func (_u *BookingUpdate) SetPatientPhone(v string) *BookingUpdate {
	_u.mutation.SetPatientPhone(v)
	return _u
}

// SetNillablePatientPhone sets the "patient_phone" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePatientPhone(v *string) *BookingUpdate {
	if v != nil {
		_u.SetPatientPhone(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *BookingUpdate) SetCountry(v string) *BookingUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCountry(v *string) *BookingUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *BookingUpdate) ClearCountry() *BookingUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetLocale sets the "locale" field.
func (_u *BookingUpdate) SetLocale(v string) *BookingUpdate {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableLocale(v *string) *BookingUpdate {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *BookingUpdate) SetTreatmentID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableTreatmentID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// ClearTreatmentID clears the value of the "treatment_id" field.
func (_u *BookingUpdate) ClearTreatmentID() *BookingUpdate {
	_u.mutation.ClearTreatmentID()
	return _u
}

// SetHospitalID sets the "hospital_id" field.
func (_u *BookingUpdate) SetHospitalID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetHospitalID(v)
	return _u
}

// SetNillableHospitalID sets the "hospital_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableHospitalID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetHospitalID(*v)
	}
	return _u
}

// ClearHospitalID clears the value of the "hospital_id" field.
func (_u *BookingUpdate) ClearHospitalID() *BookingUpdate {
	_u.mutation.ClearHospitalID()
	return _u
}

// SetPackageID sets the "package_id" field.
func (_u *BookingUpdate) SetPackageID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePackageID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// ClearPackageID clears the value of the "package_id" field.
func (_u *BookingUpdate) ClearPackageID() *BookingUpdate {
	_u.mutation.ClearPackageID()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *BookingUpdate) SetDoctorID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableDoctorID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *BookingUpdate) ClearDoctorID() *BookingUpdate {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetTranslatorID sets the "translator_id" field.
func (_u *BookingUpdate) SetTranslatorID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetTranslatorID(v)
	return _u
}

// SetNillableTranslatorID sets the "translator_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableTranslatorID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetTranslatorID(*v)
	}
	return _u
}

// ClearTranslatorID clears the value of the "translator_id" field.
func (_u *BookingUpdate) ClearTranslatorID() *BookingUpdate {
	_u.mutation.ClearTranslatorID()
	return _u
}

// SetAssignedUserID sets the "assigned_user_id" field.
func (_u *BookingUpdate) SetAssignedUserID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetAssignedUserID(v)
	return _u
}

// SetNillableAssignedUserID sets the "assigned_user_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableAssignedUserID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetAssignedUserID(*v)
	}
	return _u
}

// ClearAssignedUserID clears the value of the "assigned_user_id" field.
func (_u *BookingUpdate) ClearAssignedUserID() *BookingUpdate {
	_u.mutation.ClearAssignedUserID()
	return _u
}

// SetPreferredStart sets the "preferred_start" field.
func (_u *BookingUpdate) SetPreferredStart(v time.Time) *BookingUpdate {
	_u.mutation.SetPreferredStart(v)
	return _u
}

// SetNillablePreferredStart sets the "preferred_start" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePreferredStart(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetPreferredStart(*v)
	}
	return _u
}

// ClearPreferredStart clears the value of the "preferred_start" field.
func (_u *BookingUpdate) ClearPreferredStart() *BookingUpdate {
	_u.mutation.ClearPreferredStart()
	return _u
}

// SetPreferredEnd sets the "preferred_end" field.
func (_u *BookingUpdate) SetPreferredEnd(v time.Time) *BookingUpdate {
	_u.mutation.SetPreferredEnd(v)
	return _u
}

// SetNillablePreferredEnd sets the "preferred_end" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePreferredEnd(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetPreferredEnd(*v)
	}
	return _u
}

// ClearPreferredEnd clears the value of the "preferred_end" field.
func (_u *BookingUpdate) ClearPreferredEnd() *BookingUpdate {
	_u.mutation.ClearPreferredEnd()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdate) SetNotes(v string) *BookingUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableNotes(v *string) *BookingUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BookingUpdate) ClearNotes() *BookingUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdate) SetStatus(v booking.Status) *BookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStatus(v *booking.Status) *BookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *BookingUpdate) SetConfirmedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableConfirmedAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *BookingUpdate) ClearConfirmedAt() *BookingUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdate) SetCompletedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCompletedAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdate) ClearCompletedAt() *BookingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdate) SetCancelledAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancelledAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdate) ClearCancelledAt() *BookingUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *BookingUpdate) SetCancellationReason(v string) *BookingUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancellationReason(v *string) *BookingUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *BookingUpdate) ClearCancellationReason() *BookingUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *BookingUpdate) SetTreatment(v *Treatment) *BookingUpdate {
	return _u.SetTreatmentID(v.ID)
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_u *BookingUpdate) SetHospital(v *Hospital) *BookingUpdate {
	return _u.SetHospitalID(v.ID)
}

// SetPackage sets the "package" edge to the CarePackage entity.
func (_u *BookingUpdate) SetPackage(v *CarePackage) *BookingUpdate {
	return _u.SetPackageID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *BookingUpdate) SetDoctor(v *Doctor) *BookingUpdate {
	return _u.SetDoctorID(v.ID)
}

// SetTranslator sets the "translator" edge to the Translator entity.
func (_u *BookingUpdate) SetTranslator(v *Translator) *BookingUpdate {
	return _u.SetTranslatorID(v.ID)
}

// SetAssignedUser sets the "assigned_user" edge to the User entity.
func (_u *BookingUpdate) SetAssignedUser(v *User) *BookingUpdate {
	return _u.SetAssignedUserID(v.ID)
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdate) Mutation() *BookingMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *BookingUpdate) ClearTreatment() *BookingUpdate {
	_u.mutation.ClearTreatment()
	return _u
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (_u *BookingUpdate) ClearHospital() *BookingUpdate {
	_u.mutation.ClearHospital()
	return _u
}

// ClearPackage clears the "package" edge to the CarePackage entity.
func (_u *BookingUpdate) ClearPackage() *BookingUpdate {
	_u.mutation.ClearPackage()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *BookingUpdate) ClearDoctor() *BookingUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearTranslator clears the "translator" edge to the Translator entity.
func (_u *BookingUpdate) ClearTranslator() *BookingUpdate {
	_u.mutation.ClearTranslator()
	return _u
}

// ClearAssignedUser clears the "assigned_user" edge to the User entity.
func (_u *BookingUpdate) ClearAssignedUser() *BookingUpdate {
	_u.mutation.ClearAssignedUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdate) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := booking.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientEmail(); ok {
		if err := booking.PatientEmailValidator(v); err != nil {
			return &ValidationError{Name: "patient_email", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientPhone(); ok {
		if err := booking.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := booking.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "Booking.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Locale(); ok {
		if err := booking.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`repo: validator failed for field "Booking.locale": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(booking.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(booking.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(booking.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(booking.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientEmail(); ok {
		_spec.SetField(booking.FieldPatientEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientPhone(); ok {
		_spec.SetField(booking.FieldPatientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(booking.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(booking.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(booking.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredStart(); ok {
		_spec.SetField(booking.FieldPreferredStart, field.TypeTime, value)
	}
	if _u.mutation.PreferredStartCleared() {
		_spec.ClearField(booking.FieldPreferredStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PreferredEnd(); ok {
		_spec.SetField(booking.FieldPreferredEnd, field.TypeTime, value)
	}
	if _u.mutation.PreferredEndCleared() {
		_spec.ClearField(booking.FieldPreferredEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(booking.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(booking.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(booking.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(booking.FieldCancellationReason, field.TypeString)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TreatmentTable,
			Columns: []string{booking.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TreatmentTable,
			Columns: []string{booking.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HospitalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.HospitalTable,
			Columns: []string{booking.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HospitalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.HospitalTable,
			Columns: []string{booking.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.PackageTable,
			Columns: []string{booking.PackageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.PackageTable,
			Columns: []string{booking.PackageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.DoctorTable,
			Columns: []string{booking.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.DoctorTable,
			Columns: []string{booking.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranslatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TranslatorTable,
			Columns: []string{booking.TranslatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(translator.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranslatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TranslatorTable,
			Columns: []string{booking.TranslatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(translator.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedUserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.AssignedUserTable,
			Columns: []string{booking.AssignedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedUserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.AssignedUserTable,
			Columns: []string{booking.AssignedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingUpdateOne is the builder for updating a single Booking entity.
type BookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdateOne) SetUpdatedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsArchived sets the "is_archived" field.
func (_u *BookingUpdateOne) SetIsArchived(v bool) *BookingUpdateOne {
	_u.mutation.SetIsArchived(v)
	return _u
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableIsArchived(v *bool) *BookingUpdateOne {
	if v != nil {
		_u.SetIsArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *BookingUpdateOne) SetArchivedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableArchivedAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *BookingUpdateOne) ClearArchivedAt() *BookingUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *BookingUpdateOne) SetPatientName(v string) *BookingUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePatientName(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientEmail sets the "patient_email" field.
func (_u *BookingUpdateOne) SetPatientEmail(v string) *BookingUpdateOne {
	_u.mutation.SetPatientEmail(v)
	return _u
}

// SetNillablePatientEmail sets the "patient_email" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePatientEmail(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetPatientEmail(*v)
	}
	return _u
}

// SetPatientPhone sets the "patient_phone" field.
func (_u *BookingUpdateOne) SetPatientPhone(v string) *BookingUpdateOne {
	_u.mutation.SetPatientPhone(v)
	return _u
}

// SetNillablePatientPhone sets the "patient_phone" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePatientPhone(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetPatientPhone(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *BookingUpdateOne) SetCountry(v string) *BookingUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCountry(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *BookingUpdateOne) ClearCountry() *BookingUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetLocale sets the "locale" field.
func (_u *BookingUpdateOne) SetLocale(v string) *BookingUpdateOne {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableLocale(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *BookingUpdateOne) SetTreatmentID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableTreatmentID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// ClearTreatmentID clears the value of the "treatment_id" field.
func (_u *BookingUpdateOne) ClearTreatmentID() *BookingUpdateOne {
	_u.mutation.ClearTreatmentID()
	return _u
}

// SetHospitalID sets the "hospital_id" field.
func (_u *BookingUpdateOne) SetHospitalID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetHospitalID(v)
	return _u
}

// SetNillableHospitalID sets the "hospital_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableHospitalID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetHospitalID(*v)
	}
	return _u
}

// ClearHospitalID clears the value of the "hospital_id" field.
func (_u *BookingUpdateOne) ClearHospitalID() *BookingUpdateOne {
	_u.mutation.ClearHospitalID()
	return _u
}

// SetPackageID sets the "package_id" field.
func (_u *BookingUpdateOne) SetPackageID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetPackageID(v)
	return _u
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePackageID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetPackageID(*v)
	}
	return _u
}

// ClearPackageID clears the value of the "package_id" field.
func (_u *BookingUpdateOne) ClearPackageID() *BookingUpdateOne {
	_u.mutation.ClearPackageID()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *BookingUpdateOne) SetDoctorID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableDoctorID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *BookingUpdateOne) ClearDoctorID() *BookingUpdateOne {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetTranslatorID sets the "translator_id" field.
func (_u *BookingUpdateOne) SetTranslatorID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetTranslatorID(v)
	return _u
}

// SetNillableTranslatorID sets the "translator_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableTranslatorID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetTranslatorID(*v)
	}
	return _u
}

// ClearTranslatorID clears the value of the "translator_id" field.
func (_u *BookingUpdateOne) ClearTranslatorID() *BookingUpdateOne {
	_u.mutation.ClearTranslatorID()
	return _u
}

// SetAssignedUserID sets the "assigned_user_id" field.
func (_u *BookingUpdateOne) SetAssignedUserID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetAssignedUserID(v)
	return _u
}

// SetNillableAssignedUserID sets the "assigned_user_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableAssignedUserID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetAssignedUserID(*v)
	}
	return _u
}

// ClearAssignedUserID clears the value of the "assigned_user_id" field.
func (_u *BookingUpdateOne) ClearAssignedUserID() *BookingUpdateOne {
	_u.mutation.ClearAssignedUserID()
	return _u
}

// SetPreferredStart sets the "preferred_start" field.
func (_u *BookingUpdateOne) SetPreferredStart(v time.Time) *BookingUpdateOne {
	_u.mutation.SetPreferredStart(v)
	return _u
}

// SetNillablePreferredStart sets the "preferred_start" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePreferredStart(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetPreferredStart(*v)
	}
	return _u
}

// ClearPreferredStart clears the value of the "preferred_start" field.
func (_u *BookingUpdateOne) ClearPreferredStart() *BookingUpdateOne {
	_u.mutation.ClearPreferredStart()
	return _u
}

// SetPreferredEnd sets the "preferred_end" field.
func (_u *BookingUpdateOne) SetPreferredEnd(v time.Time) *BookingUpdateOne {
	_u.mutation.SetPreferredEnd(v)
	return _u
}

// SetNillablePreferredEnd sets the "preferred_end" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePreferredEnd(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetPreferredEnd(*v)
	}
	return _u
}

// ClearPreferredEnd clears the value of the "preferred_end" field.
func (_u *BookingUpdateOne) ClearPreferredEnd() *BookingUpdateOne {
	_u.mutation.ClearPreferredEnd()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdateOne) SetNotes(v string) *BookingUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableNotes(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BookingUpdateOne) ClearNotes() *BookingUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdateOne) SetStatus(v booking.Status) *BookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStatus(v *booking.Status) *BookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *BookingUpdateOne) SetConfirmedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableConfirmedAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *BookingUpdateOne) ClearConfirmedAt() *BookingUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdateOne) SetCompletedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCompletedAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdateOne) ClearCompletedAt() *BookingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdateOne) SetCancelledAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancelledAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdateOne) ClearCancelledAt() *BookingUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *BookingUpdateOne) SetCancellationReason(v string) *BookingUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancellationReason(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *BookingUpdateOne) ClearCancellationReason() *BookingUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *BookingUpdateOne) SetTreatment(v *Treatment) *BookingUpdateOne {
	return _u.SetTreatmentID(v.ID)
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_u *BookingUpdateOne) SetHospital(v *Hospital) *BookingUpdateOne {
	return _u.SetHospitalID(v.ID)
}

// SetPackage sets the "package" edge to the CarePackage entity.
func (_u *BookingUpdateOne) SetPackage(v *CarePackage) *BookingUpdateOne {
	return _u.SetPackageID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *BookingUpdateOne) SetDoctor(v *Doctor) *BookingUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// SetTranslator sets the "translator" edge to the Translator entity.
func (_u *BookingUpdateOne) SetTranslator(v *Translator) *BookingUpdateOne {
	return _u.SetTranslatorID(v.ID)
}

// SetAssignedUser sets the "assigned_user" edge to the User entity.
func (_u *BookingUpdateOne) SetAssignedUser(v *User) *BookingUpdateOne {
	return _u.SetAssignedUserID(v.ID)
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdateOne) Mutation() *BookingMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *BookingUpdateOne) ClearTreatment() *BookingUpdateOne {
	_u.mutation.ClearTreatment()
	return _u
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (_u *BookingUpdateOne) ClearHospital() *BookingUpdateOne {
	_u.mutation.ClearHospital()
	return _u
}

// ClearPackage clears the "package" edge to the CarePackage entity.
func (_u *BookingUpdateOne) ClearPackage() *BookingUpdateOne {
	_u.mutation.ClearPackage()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *BookingUpdateOne) ClearDoctor() *BookingUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearTranslator clears the "translator" edge to the Translator entity.
func (_u *BookingUpdateOne) ClearTranslator() *BookingUpdateOne {
	_u.mutation.ClearTranslator()
	return _u
}

// ClearAssignedUser clears the "assigned_user" edge to the User entity.
func (_u *BookingUpdateOne) ClearAssignedUser() *BookingUpdateOne {
	_u.mutation.ClearAssignedUser()
	return _u
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdateOne) Where(ps ...predicate.Booking) *BookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingUpdateOne) Select(field string, fields ...string) *BookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Booking entity.
func (_u *BookingUpdateOne) Save(ctx context.Context) (*Booking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdateOne) SaveX(ctx context.Context) *Booking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdateOne) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := booking.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientEmail(); ok {
		if err := booking.PatientEmailValidator(v); err != nil {
			return &ValidationError{Name: "patient_email", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientPhone(); ok {
		if err := booking.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := booking.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "Booking.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Locale(); ok {
		if err := booking.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`repo: validator failed for field "Booking.locale": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdateOne) sqlSave(ctx context.Context) (_node *Booking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Booking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for _, f := range fields {
			if !booking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != booking.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsArchived(); ok {
		_spec.SetField(booking.FieldIsArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(booking.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(booking.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(booking.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientEmail(); ok {
		_spec.SetField(booking.FieldPatientEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientPhone(); ok {
		_spec.SetField(booking.FieldPatientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(booking.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(booking.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(booking.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredStart(); ok {
		_spec.SetField(booking.FieldPreferredStart, field.TypeTime, value)
	}
	if _u.mutation.PreferredStartCleared() {
		_spec.ClearField(booking.FieldPreferredStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PreferredEnd(); ok {
		_spec.SetField(booking.FieldPreferredEnd, field.TypeTime, value)
	}
	if _u.mutation.PreferredEndCleared() {
		_spec.ClearField(booking.FieldPreferredEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(booking.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(booking.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(booking.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(booking.FieldCancellationReason, field.TypeString)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TreatmentTable,
			Columns: []string{booking.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TreatmentTable,
			Columns: []string{booking.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HospitalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.HospitalTable,
			Columns: []string{booking.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HospitalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.HospitalTable,
			Columns: []string{booking.HospitalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.PackageTable,
			Columns: []string{booking.PackageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.PackageTable,
			Columns: []string{booking.PackageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.DoctorTable,
			Columns: []string{booking.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.DoctorTable,
			Columns: []string{booking.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranslatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TranslatorTable,
			Columns: []string{booking.TranslatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(translator.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranslatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.TranslatorTable,
			Columns: []string{booking.TranslatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(translator.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedUserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.AssignedUserTable,
			Columns: []string{booking.AssignedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedUserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   booking.AssignedUserTable,
			Columns: []string{booking.AssignedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Booking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
