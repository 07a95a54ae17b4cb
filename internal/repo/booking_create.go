// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/booking"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// BookingCreate is the builder for creating a Booking entity.
type BookingCreate struct {
	config
	mutation *BookingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookingCreate) SetCreatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCreatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BookingCreate) SetUpdatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableUpdatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIsArchived sets the "is_archived" field.
func (_c *BookingCreate) SetIsArchived(v bool) *BookingCreate {
	_c.mutation.SetIsArchived(v)
	return _c
}

// SetNillableIsArchived sets the "is_archived" field if the given value is not nil.
func (_c *BookingCreate) SetNillableIsArchived(v *bool) *BookingCreate {
	if v != nil {
		_c.SetIsArchived(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *BookingCreate) SetArchivedAt(v time.Time) *BookingCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableArchivedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *BookingCreate) SetPatientName(v string) *BookingCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientEmail sets the "patient_email" field.
func (_c *BookingCreate) SetPatientEmail(v string) *BookingCreate {
	_c.mutation.SetPatientEmail(v)
	return _c
}

// SetPatientPhone sets the "patient_phone" field.
func (_c *BookingCreate) SetPatientPhone(v string) *BookingCreate {
	_c.mutation.SetPatientPhone(v)
	return _c
}

// SetCountry sets the "country" field.
func (_c *BookingCreate) SetCountry(v string) *BookingCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCountry(v *string) *BookingCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetLocale sets the "locale" field.
func (_c *BookingCreate) SetLocale(v string) *BookingCreate {
	_c.mutation.SetLocale(v)
	return _c
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_c *BookingCreate) SetNillableLocale(v *string) *BookingCreate {
	if v != nil {
		_c.SetLocale(*v)
	}
	return _c
}

// SetTreatmentID sets the "treatment_id" field.
func (_c *BookingCreate) SetTreatmentID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetTreatmentID(v)
	return _c
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableTreatmentID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetTreatmentID(*v)
	}
	return _c
}

// SetHospitalID sets the "hospital_id" field.
func (_c *BookingCreate) SetHospitalID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetHospitalID(v)
	return _c
}

// SetNillableHospitalID sets the "hospital_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableHospitalID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetHospitalID(*v)
	}
	return _c
}

// SetPackageID sets the "package_id" field.
func (_c *BookingCreate) SetPackageID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetPackageID(v)
	return _c
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePackageID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetPackageID(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *BookingCreate) SetDoctorID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableDoctorID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetDoctorID(*v)
	}
	return _c
}

// SetTranslatorID sets the "translator_id" field.
func (_c *BookingCreate) SetTranslatorID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetTranslatorID(v)
	return _c
}

// SetNillableTranslatorID sets the "translator_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableTranslatorID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetTranslatorID(*v)
	}
	return _c
}

// SetAssignedUserID sets the "assigned_user_id" field.
func (_c *BookingCreate) SetAssignedUserID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetAssignedUserID(v)
	return _c
}

// SetNillableAssignedUserID sets the "assigned_user_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableAssignedUserID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetAssignedUserID(*v)
	}
	return _c
}

// SetPreferredStart sets the "preferred_start" field.
func (_c *BookingCreate) SetPreferredStart(v time.Time) *BookingCreate {
	_c.mutation.SetPreferredStart(v)
	return _c
}

// SetNillablePreferredStart sets the "preferred_start" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePreferredStart(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetPreferredStart(*v)
	}
	return _c
}

// SetPreferredEnd sets the "preferred_end" field.
func (_c *BookingCreate) SetPreferredEnd(v time.Time) *BookingCreate {
	_c.mutation.SetPreferredEnd(v)
	return _c
}

// SetNillablePreferredEnd sets the "preferred_end" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePreferredEnd(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetPreferredEnd(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BookingCreate) SetNotes(v string) *BookingCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BookingCreate) SetNillableNotes(v *string) *BookingCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BookingCreate) SetStatus(v booking.Status) *BookingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BookingCreate) SetNillableStatus(v *booking.Status) *BookingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *BookingCreate) SetConfirmedAt(v time.Time) *BookingCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableConfirmedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BookingCreate) SetCompletedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCompletedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *BookingCreate) SetCancelledAt(v time.Time) *BookingCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancelledAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *BookingCreate) SetCancellationReason(v string) *BookingCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancellationReason(v *string) *BookingCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BookingCreate) SetID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_c *BookingCreate) SetTreatment(v *Treatment) *BookingCreate {
	return _c.SetTreatmentID(v.ID)
}

// SetHospital sets the "hospital" edge to the Hospital entity.
func (_c *BookingCreate) SetHospital(v *Hospital) *BookingCreate {
	return _c.SetHospitalID(v.ID)
}

// SetPackage sets the "package" edge to the CarePackage entity.
func (_c *BookingCreate) SetPackage(v *CarePackage) *BookingCreate {
	return _c.SetPackageID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *BookingCreate) SetDoctor(v *Doctor) *BookingCreate {
	return _c.SetDoctorID(v.ID)
}

// SetTranslator sets the "translator" edge to the Translator entity.
func (_c *BookingCreate) SetTranslator(v *Translator) *BookingCreate {
	return _c.SetTranslatorID(v.ID)
}

// SetAssignedUser sets the "assigned_user" edge to the User entity.
func (_c *BookingCreate) SetAssignedUser(v *User) *BookingCreate {
	return _c.SetAssignedUserID(v.ID)
}

// Mutation returns the BookingMutation object of the builder.
func (_c *BookingCreate) Mutation() *BookingMutation {
	return _c.mutation
}

// Save creates the Booking in the database.
func (_c *BookingCreate) Save(ctx context.Context) (*Booking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookingCreate) SaveX(ctx context.Context) *Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := booking.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := booking.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		v := booking.DefaultIsArchived
		_c.mutation.SetIsArchived(v)
	}
	if _, ok := _c.mutation.Locale(); !ok {
		v := booking.DefaultLocale
		_c.mutation.SetLocale(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := booking.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := booking.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Booking.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Booking.updated_at"`)}
	}
	if _, ok := _c.mutation.IsArchived(); !ok {
		return &ValidationError{Name: "is_archived", err: errors.New(`repo: missing required field "Booking.is_archived"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Booking.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := booking.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientEmail(); !ok {
		return &ValidationError{Name: "patient_email", err: errors.New(`repo: missing required field "Booking.patient_email"`)}
	}
	if v, ok := _c.mutation.PatientEmail(); ok {
		if err := booking.PatientEmailValidator(v); err != nil {
			return &ValidationError{Name: "patient_email", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientPhone(); !ok {
		return &ValidationError{Name: "patient_phone", err: errors.New(`repo: missing required field "Booking.patient_phone"`)}
	}
	if v, ok := _c.mutation.PatientPhone(); ok {
		if err := booking.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Booking.patient_phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := booking.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "Booking.country": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Locale(); !ok {
		return &ValidationError{Name: "locale", err: errors.New(`repo: missing required field "Booking.locale"`)}
	}
	if v, ok := _c.mutation.Locale(); ok {
		if err := booking.LocaleValidator(v); err != nil {
			return &ValidationError{Name: "locale", err: fmt.Errorf(`repo: validator failed for field "Booking.locale": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Booking.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_c *BookingCreate) sqlSave(ctx context.Context) (*Booking, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BookingCreate) createSpec() (*Booking, *sqlgraph.CreateSpec) {
	var (
		_node = &Booking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(booking.Table, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(booking.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.IsArchived(); ok {
		_spec.SetField(booking.FieldIsArchived, field.TypeBool, value)
		_node.IsArchived = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(booking.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(booking.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientEmail(); ok {
		_spec.SetField(booking.FieldPatientEmail, field.TypeString, value)
		_node.PatientEmail = value
	}
	if value, ok := _c.mutation.PatientPhone(); ok {
		_spec.SetField(booking.FieldPatientPhone, field.TypeString, value)
		_node.PatientPhone = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(booking.FieldCountry, field.TypeString, value)
		_node.Country = &value
	}
	if value, ok := _c.mutation.Locale(); ok {
		_spec.SetField(booking.FieldLocale, field.TypeString, value)
		_node.Locale = value
	}
	if value, ok := _c.mutation.PreferredStart(); ok {
		_spec.SetField(booking.FieldPreferredStart, field.TypeTime, value)
		_node.PreferredStart = &value
	}
	if value, ok := _c.mutation.PreferredEnd(); ok {
		_spec.SetField(booking.FieldPreferredEnd, field.TypeTime, value)
		_node.PreferredEnd = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(booking.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = value
	}
	if nodes := _c.mutation.TreatmentIDs(); len(nodes) > 0 {
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
		_node.TreatmentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HospitalIDs(); len(nodes) > 0 {
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
		_node.HospitalID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PackageIDs(); len(nodes) > 0 {
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
		_node.PackageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_node.DoctorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TranslatorIDs(); len(nodes) > 0 {
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
		_node.TranslatorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignedUserIDs(); len(nodes) > 0 {
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
		_node.AssignedUserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Booking.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BookingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BookingCreate) OnConflict(opts ...sql.ConflictOption) *BookingUpsertOne {
	_c.conflict = opts
	return &BookingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BookingCreate) OnConflictColumns(columns ...string) *BookingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BookingUpsertOne{
		create: _c,
	}
}

type (
	// BookingUpsertOne is the builder for "upsert"-ing
	//  one Booking node.
	BookingUpsertOne struct {
		create *BookingCreate
	}

	// BookingUpsert is the "OnConflict" setter.
	BookingUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BookingUpsert) SetUpdatedAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateUpdatedAt() *BookingUpsert {
	u.SetExcluded(booking.FieldUpdatedAt)
	return u
}

// SetIsArchived sets the "is_archived" field.
func (u *BookingUpsert) SetIsArchived(v bool) *BookingUpsert {
	u.Set(booking.FieldIsArchived, v)
	return u
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *BookingUpsert) UpdateIsArchived() *BookingUpsert {
	u.SetExcluded(booking.FieldIsArchived)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *BookingUpsert) SetArchivedAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateArchivedAt() *BookingUpsert {
	u.SetExcluded(booking.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *BookingUpsert) ClearArchivedAt() *BookingUpsert {
	u.SetNull(booking.FieldArchivedAt)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *BookingUpsert) SetPatientName(v string) *BookingUpsert {
	u.Set(booking.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePatientName() *BookingUpsert {
	u.SetExcluded(booking.FieldPatientName)
	return u
}

// SetPatientEmail sets the "patient_email" field.
func (u *BookingUpsert) SetPatientEmail(v string) *BookingUpsert {
	u.Set(booking.FieldPatientEmail, v)
	return u
}

// UpdatePatientEmail sets the "patient_email" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePatientEmail() *BookingUpsert {
	u.SetExcluded(booking.FieldPatientEmail)
	return u
}

// SetPatientPhone sets the "patient_phone" field.
func (u *BookingUpsert) SetPatientPhone(v string) *BookingUpsert {
	u.Set(booking.FieldPatientPhone, v)
	return u
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePatientPhone() *BookingUpsert {
	u.SetExcluded(booking.FieldPatientPhone)
	return u
}

// SetCountry sets the "country" field.
func (u *BookingUpsert) SetCountry(v string) *BookingUpsert {
	u.Set(booking.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCountry() *BookingUpsert {
	u.SetExcluded(booking.FieldCountry)
	return u
}

// ClearCountry clears the value of the "country" field.
func (u *BookingUpsert) ClearCountry() *BookingUpsert {
	u.SetNull(booking.FieldCountry)
	return u
}

// SetLocale sets the "locale" field.
func (u *BookingUpsert) SetLocale(v string) *BookingUpsert {
	u.Set(booking.FieldLocale, v)
	return u
}

// UpdateLocale sets the "locale" field to the value that was provided on create.
func (u *BookingUpsert) UpdateLocale() *BookingUpsert {
	u.SetExcluded(booking.FieldLocale)
	return u
}

// SetTreatmentID sets the "treatment_id" field.
func (u *BookingUpsert) SetTreatmentID(v uuid.UUID) *BookingUpsert {
	u.Set(booking.FieldTreatmentID, v)
	return u
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateTreatmentID() *BookingUpsert {
	u.SetExcluded(booking.FieldTreatmentID)
	return u
}

// ClearTreatmentID clears the value of the "treatment_id" field.
func (u *BookingUpsert) ClearTreatmentID() *BookingUpsert {
	u.SetNull(booking.FieldTreatmentID)
	return u
}

// SetHospitalID sets the "hospital_id" field.
func (u *BookingUpsert) SetHospitalID(v uuid.UUID) *BookingUpsert {
	u.Set(booking.FieldHospitalID, v)
	return u
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateHospitalID() *BookingUpsert {
	u.SetExcluded(booking.FieldHospitalID)
	return u
}

// ClearHospitalID clears the value of the "hospital_id" field.
func (u *BookingUpsert) ClearHospitalID() *BookingUpsert {
	u.SetNull(booking.FieldHospitalID)
	return u
}

// SetPackageID sets the "package_id" field.
func (u *BookingUpsert) SetPackageID(v uuid.UUID) *BookingUpsert {
	u.Set(booking.FieldPackageID, v)
	return u
}

// UpdatePackageID sets the "package_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePackageID() *BookingUpsert {
	u.SetExcluded(booking.FieldPackageID)
	return u
}

// ClearPackageID clears the value of the "package_id" field.
func (u *BookingUpsert) ClearPackageID() *BookingUpsert {
	u.SetNull(booking.FieldPackageID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *BookingUpsert) SetDoctorID(v uuid.UUID) *BookingUpsert {
	u.Set(booking.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateDoctorID() *BookingUpsert {
	u.SetExcluded(booking.FieldDoctorID)
	return u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (u *BookingUpsert) ClearDoctorID() *BookingUpsert {
	u.SetNull(booking.FieldDoctorID)
	return u
}

// SetTranslatorID sets the "translator_id" field.
func (u *BookingUpsert) SetTranslatorID(v uuid.UUID) *BookingUpsert {
	u.Set(booking.FieldTranslatorID, v)
	return u
}

// UpdateTranslatorID sets the "translator_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateTranslatorID() *BookingUpsert {
	u.SetExcluded(booking.FieldTranslatorID)
	return u
}

// ClearTranslatorID clears the value of the "translator_id" field.
func (u *BookingUpsert) ClearTranslatorID() *BookingUpsert {
	u.SetNull(booking.FieldTranslatorID)
	return u
}

// SetAssignedUserID sets the "assigned_user_id" field.
func (u *BookingUpsert) SetAssignedUserID(v uuid.UUID) *BookingUpsert {
	u.Set(booking.FieldAssignedUserID, v)
	return u
}

// UpdateAssignedUserID sets the "assigned_user_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateAssignedUserID() *BookingUpsert {
	u.SetExcluded(booking.FieldAssignedUserID)
	return u
}

// ClearAssignedUserID clears the value of the "assigned_user_id" field.
func (u *BookingUpsert) ClearAssignedUserID() *BookingUpsert {
	u.SetNull(booking.FieldAssignedUserID)
	return u
}

// SetPreferredStart sets the "preferred_start" field.
func (u *BookingUpsert) SetPreferredStart(v time.Time) *BookingUpsert {
	u.Set(booking.FieldPreferredStart, v)
	return u
}

// UpdatePreferredStart sets the "preferred_start" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePreferredStart() *BookingUpsert {
	u.SetExcluded(booking.FieldPreferredStart)
	return u
}

// ClearPreferredStart clears the value of the "preferred_start" field.
func (u *BookingUpsert) ClearPreferredStart() *BookingUpsert {
	u.SetNull(booking.FieldPreferredStart)
	return u
}

// SetPreferredEnd sets the "preferred_end" field.
func (u *BookingUpsert) SetPreferredEnd(v time.Time) *BookingUpsert {
	u.Set(booking.FieldPreferredEnd, v)
	return u
}

// UpdatePreferredEnd sets the "preferred_end" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePreferredEnd() *BookingUpsert {
	u.SetExcluded(booking.FieldPreferredEnd)
	return u
}

// ClearPreferredEnd clears the value of the "preferred_end" field.
func (u *BookingUpsert) ClearPreferredEnd() *BookingUpsert {
	u.SetNull(booking.FieldPreferredEnd)
	return u
}

// SetNotes sets the "notes" field.
func (u *BookingUpsert) SetNotes(v string) *BookingUpsert {
	u.Set(booking.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BookingUpsert) UpdateNotes() *BookingUpsert {
	u.SetExcluded(booking.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *BookingUpsert) ClearNotes() *BookingUpsert {
	u.SetNull(booking.FieldNotes)
	return u
}

// SetStatus sets the "status" field.
func (u *BookingUpsert) SetStatus(v booking.Status) *BookingUpsert {
	u.Set(booking.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsert) UpdateStatus() *BookingUpsert {
	u.SetExcluded(booking.FieldStatus)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *BookingUpsert) SetConfirmedAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateConfirmedAt() *BookingUpsert {
	u.SetExcluded(booking.FieldConfirmedAt)
	return u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *BookingUpsert) ClearConfirmedAt() *BookingUpsert {
	u.SetNull(booking.FieldConfirmedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *BookingUpsert) SetCompletedAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCompletedAt() *BookingUpsert {
	u.SetExcluded(booking.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BookingUpsert) ClearCompletedAt() *BookingUpsert {
	u.SetNull(booking.FieldCompletedAt)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *BookingUpsert) SetCancelledAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCancelledAt() *BookingUpsert {
	u.SetExcluded(booking.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *BookingUpsert) ClearCancelledAt() *BookingUpsert {
	u.SetNull(booking.FieldCancelledAt)
	return u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *BookingUpsert) SetCancellationReason(v string) *BookingUpsert {
	u.Set(booking.FieldCancellationReason, v)
	return u
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCancellationReason() *BookingUpsert {
	u.SetExcluded(booking.FieldCancellationReason)
	return u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *BookingUpsert) ClearCancellationReason() *BookingUpsert {
	u.SetNull(booking.FieldCancellationReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(booking.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BookingUpsertOne) UpdateNewValues() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(booking.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(booking.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BookingUpsertOne) Ignore() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BookingUpsertOne) DoNothing() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BookingCreate.OnConflict
// documentation for more info.
func (u *BookingUpsertOne) Update(set func(*BookingUpsert)) *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BookingUpsertOne) SetUpdatedAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateUpdatedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *BookingUpsertOne) SetIsArchived(v bool) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateIsArchived() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *BookingUpsertOne) SetArchivedAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateArchivedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *BookingUpsertOne) ClearArchivedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearArchivedAt()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *BookingUpsertOne) SetPatientName(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePatientName() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePatientName()
	})
}

// SetPatientEmail sets the "patient_email" field.
func (u *BookingUpsertOne) SetPatientEmail(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPatientEmail(v)
	})
}

// UpdatePatientEmail sets the "patient_email" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePatientEmail() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePatientEmail()
	})
}

// SetPatientPhone sets the "patient_phone" field.
func (u *BookingUpsertOne) SetPatientPhone(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPatientPhone(v)
	})
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePatientPhone() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePatientPhone()
	})
}

// SetCountry sets the "country" field.
func (u *BookingUpsertOne) SetCountry(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCountry() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *BookingUpsertOne) ClearCountry() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCountry()
	})
}

// SetLocale sets the "locale" field.
func (u *BookingUpsertOne) SetLocale(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetLocale(v)
	})
}

// UpdateLocale sets the "locale" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateLocale() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateLocale()
	})
}

// SetTreatmentID sets the "treatment_id" field.
func (u *BookingUpsertOne) SetTreatmentID(v uuid.UUID) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateTreatmentID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTreatmentID()
	})
}

// ClearTreatmentID clears the value of the "treatment_id" field.
func (u *BookingUpsertOne) ClearTreatmentID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearTreatmentID()
	})
}

// SetHospitalID sets the "hospital_id" field.
func (u *BookingUpsertOne) SetHospitalID(v uuid.UUID) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetHospitalID(v)
	})
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateHospitalID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateHospitalID()
	})
}

// ClearHospitalID clears the value of the "hospital_id" field.
func (u *BookingUpsertOne) ClearHospitalID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearHospitalID()
	})
}

// SetPackageID sets the "package_id" field.
func (u *BookingUpsertOne) SetPackageID(v uuid.UUID) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPackageID(v)
	})
}

// UpdatePackageID sets the "package_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePackageID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePackageID()
	})
}

// ClearPackageID clears the value of the "package_id" field.
func (u *BookingUpsertOne) ClearPackageID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPackageID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *BookingUpsertOne) SetDoctorID(v uuid.UUID) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateDoctorID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateDoctorID()
	})
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (u *BookingUpsertOne) ClearDoctorID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearDoctorID()
	})
}

// SetTranslatorID sets the "translator_id" field.
func (u *BookingUpsertOne) SetTranslatorID(v uuid.UUID) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetTranslatorID(v)
	})
}

// UpdateTranslatorID sets the "translator_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateTranslatorID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTranslatorID()
	})
}

// ClearTranslatorID clears the value of the "translator_id" field.
func (u *BookingUpsertOne) ClearTranslatorID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearTranslatorID()
	})
}

// SetAssignedUserID sets the "assigned_user_id" field.
func (u *BookingUpsertOne) SetAssignedUserID(v uuid.UUID) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetAssignedUserID(v)
	})
}

// UpdateAssignedUserID sets the "assigned_user_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateAssignedUserID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateAssignedUserID()
	})
}

// ClearAssignedUserID clears the value of the "assigned_user_id" field.
func (u *BookingUpsertOne) ClearAssignedUserID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearAssignedUserID()
	})
}

// SetPreferredStart sets the "preferred_start" field.
func (u *BookingUpsertOne) SetPreferredStart(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPreferredStart(v)
	})
}

// UpdatePreferredStart sets the "preferred_start" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePreferredStart() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePreferredStart()
	})
}

// ClearPreferredStart clears the value of the "preferred_start" field.
func (u *BookingUpsertOne) ClearPreferredStart() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPreferredStart()
	})
}

// SetPreferredEnd sets the "preferred_end" field.
func (u *BookingUpsertOne) SetPreferredEnd(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPreferredEnd(v)
	})
}

// UpdatePreferredEnd sets the "preferred_end" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePreferredEnd() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePreferredEnd()
	})
}

// ClearPreferredEnd clears the value of the "preferred_end" field.
func (u *BookingUpsertOne) ClearPreferredEnd() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPreferredEnd()
	})
}

// SetNotes sets the "notes" field.
func (u *BookingUpsertOne) SetNotes(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateNotes() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *BookingUpsertOne) ClearNotes() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *BookingUpsertOne) SetStatus(v booking.Status) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateStatus() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStatus()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *BookingUpsertOne) SetConfirmedAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateConfirmedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *BookingUpsertOne) ClearConfirmedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BookingUpsertOne) SetCompletedAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCompletedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BookingUpsertOne) ClearCompletedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *BookingUpsertOne) SetCancelledAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCancelledAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *BookingUpsertOne) ClearCancelledAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *BookingUpsertOne) SetCancellationReason(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCancellationReason() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *BookingUpsertOne) ClearCancellationReason() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancellationReason()
	})
}

// Exec executes the query.
func (u *BookingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BookingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BookingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BookingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BookingUpsertOne.ID is not supported by MySQL driver. Use BookingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BookingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BookingCreateBulk is the builder for creating many Booking entities in bulk.
type BookingCreateBulk struct {
	config
	err      error
	builders []*BookingCreate
	conflict []sql.ConflictOption
}

// Save creates the Booking entities in the database.
func (_c *BookingCreateBulk) Save(ctx context.Context) ([]*Booking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Booking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BookingCreateBulk) SaveX(ctx context.Context) []*Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Booking.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BookingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BookingCreateBulk) OnConflict(opts ...sql.ConflictOption) *BookingUpsertBulk {
	_c.conflict = opts
	return &BookingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BookingCreateBulk) OnConflictColumns(columns ...string) *BookingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BookingUpsertBulk{
		create: _c,
	}
}

// BookingUpsertBulk is the builder for "upsert"-ing
// a bulk of Booking nodes.
type BookingUpsertBulk struct {
	create *BookingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(booking.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BookingUpsertBulk) UpdateNewValues() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(booking.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(booking.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BookingUpsertBulk) Ignore() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BookingUpsertBulk) DoNothing() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BookingCreateBulk.OnConflict
// documentation for more info.
func (u *BookingUpsertBulk) Update(set func(*BookingUpsert)) *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BookingUpsertBulk) SetUpdatedAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateUpdatedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetIsArchived sets the "is_archived" field.
func (u *BookingUpsertBulk) SetIsArchived(v bool) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetIsArchived(v)
	})
}

// UpdateIsArchived sets the "is_archived" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateIsArchived() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateIsArchived()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *BookingUpsertBulk) SetArchivedAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateArchivedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *BookingUpsertBulk) ClearArchivedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearArchivedAt()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *BookingUpsertBulk) SetPatientName(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePatientName() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePatientName()
	})
}

// SetPatientEmail sets the "patient_email" field.
func (u *BookingUpsertBulk) SetPatientEmail(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPatientEmail(v)
	})
}

// UpdatePatientEmail sets the "patient_email" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePatientEmail() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePatientEmail()
	})
}

// SetPatientPhone sets the "patient_phone" field.
func (u *BookingUpsertBulk) SetPatientPhone(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPatientPhone(v)
	})
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePatientPhone() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePatientPhone()
	})
}

// SetCountry sets the "country" field.
func (u *BookingUpsertBulk) SetCountry(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCountry() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *BookingUpsertBulk) ClearCountry() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCountry()
	})
}

// SetLocale sets the "locale" field.
func (u *BookingUpsertBulk) SetLocale(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetLocale(v)
	})
}

// UpdateLocale sets the "locale" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateLocale() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateLocale()
	})
}

// SetTreatmentID sets the "treatment_id" field.
func (u *BookingUpsertBulk) SetTreatmentID(v uuid.UUID) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetTreatmentID(v)
	})
}

// UpdateTreatmentID sets the "treatment_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateTreatmentID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTreatmentID()
	})
}

// ClearTreatmentID clears the value of the "treatment_id" field.
func (u *BookingUpsertBulk) ClearTreatmentID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearTreatmentID()
	})
}

// SetHospitalID sets the "hospital_id" field.
func (u *BookingUpsertBulk) SetHospitalID(v uuid.UUID) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetHospitalID(v)
	})
}

// UpdateHospitalID sets the "hospital_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateHospitalID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateHospitalID()
	})
}

// ClearHospitalID clears the value of the "hospital_id" field.
func (u *BookingUpsertBulk) ClearHospitalID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearHospitalID()
	})
}

// SetPackageID sets the "package_id" field.
func (u *BookingUpsertBulk) SetPackageID(v uuid.UUID) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPackageID(v)
	})
}

// UpdatePackageID sets the "package_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePackageID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePackageID()
	})
}

// ClearPackageID clears the value of the "package_id" field.
func (u *BookingUpsertBulk) ClearPackageID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPackageID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *BookingUpsertBulk) SetDoctorID(v uuid.UUID) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateDoctorID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateDoctorID()
	})
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (u *BookingUpsertBulk) ClearDoctorID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearDoctorID()
	})
}

// SetTranslatorID sets the "translator_id" field.
func (u *BookingUpsertBulk) SetTranslatorID(v uuid.UUID) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetTranslatorID(v)
	})
}

// UpdateTranslatorID sets the "translator_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateTranslatorID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTranslatorID()
	})
}

// ClearTranslatorID clears the value of the "translator_id" field.
func (u *BookingUpsertBulk) ClearTranslatorID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearTranslatorID()
	})
}

// SetAssignedUserID sets the "assigned_user_id" field.
func (u *BookingUpsertBulk) SetAssignedUserID(v uuid.UUID) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetAssignedUserID(v)
	})
}

// UpdateAssignedUserID sets the "assigned_user_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateAssignedUserID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateAssignedUserID()
	})
}

// ClearAssignedUserID clears the value of the "assigned_user_id" field.
func (u *BookingUpsertBulk) ClearAssignedUserID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearAssignedUserID()
	})
}

// SetPreferredStart sets the "preferred_start" field.
func (u *BookingUpsertBulk) SetPreferredStart(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPreferredStart(v)
	})
}

// UpdatePreferredStart sets the "preferred_start" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePreferredStart() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePreferredStart()
	})
}

// ClearPreferredStart clears the value of the "preferred_start" field.
func (u *BookingUpsertBulk) ClearPreferredStart() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPreferredStart()
	})
}

// SetPreferredEnd sets the "preferred_end" field.
func (u *BookingUpsertBulk) SetPreferredEnd(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPreferredEnd(v)
	})
}

// UpdatePreferredEnd sets the "preferred_end" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePreferredEnd() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePreferredEnd()
	})
}

// ClearPreferredEnd clears the value of the "preferred_end" field.
func (u *BookingUpsertBulk) ClearPreferredEnd() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPreferredEnd()
	})
}

// SetNotes sets the "notes" field.
func (u *BookingUpsertBulk) SetNotes(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateNotes() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *BookingUpsertBulk) ClearNotes() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *BookingUpsertBulk) SetStatus(v booking.Status) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateStatus() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStatus()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *BookingUpsertBulk) SetConfirmedAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateConfirmedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *BookingUpsertBulk) ClearConfirmedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BookingUpsertBulk) SetCompletedAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCompletedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BookingUpsertBulk) ClearCompletedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *BookingUpsertBulk) SetCancelledAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCancelledAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *BookingUpsertBulk) ClearCancelledAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *BookingUpsertBulk) SetCancellationReason(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCancellationReason() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *BookingUpsertBulk) ClearCancellationReason() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancellationReason()
	})
}

// Exec executes the query.
func (u *BookingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BookingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BookingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BookingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
