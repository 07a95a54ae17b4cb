// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/content"
	"github.com/shifaalhind/backend/internal/repo/booking"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/contentpage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/media"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/internal/repo/user"
	"github.com/shifaalhind/backend/internal/repo/usersession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBooking     = "Booking"
	TypeCarePackage = "CarePackage"
	TypeContentPage = "ContentPage"
	TypeDoctor      = "Doctor"
	TypeHospital    = "Hospital"
	TypeMedia       = "Media"
	TypeTranslator  = "Translator"
	TypeTreatment   = "Treatment"
	TypeUser        = "User"
	TypeUserSession = "UserSession"
)

// BookingMutation represents an operation that mutates the Booking nodes in the graph.
type BookingMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	is_archived          *bool
	archived_at          *time.Time
	patient_name         *string
	patient_email        *string
	patient_phone        *string
	country              *string
	locale               *string
	preferred_start      *time.Time
	preferred_end        *time.Time
	notes                *string
	status               *booking.Status
	confirmed_at         *time.Time
	completed_at         *time.Time
	cancelled_at         *time.Time
	cancellation_reason  *string
	clearedFields        map[string]struct{}
	treatment            *uuid.UUID
	clearedtreatment     bool
	hospital             *uuid.UUID
	clearedhospital      bool
	_package             *uuid.UUID
	cleared_package      bool
	doctor               *uuid.UUID
	cleareddoctor        bool
	translator           *uuid.UUID
	clearedtranslator    bool
	assigned_user        *uuid.UUID
	clearedassigned_user bool
	done                 bool
	oldValue             func(context.Context) (*Booking, error)
	predicates           []predicate.Booking
}

var _ ent.Mutation = (*BookingMutation)(nil)

// bookingOption allows management of the mutation configuration using functional options.
type bookingOption func(*BookingMutation)

// newBookingMutation creates new mutation for the Booking entity.
func newBookingMutation(c config, op Op, opts ...bookingOption) *BookingMutation {
	m := &BookingMutation{
		config:        c,
		op:            op,
		typ:           TypeBooking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookingID sets the ID field of the mutation.
func withBookingID(id uuid.UUID) bookingOption {
	return func(m *BookingMutation) {
		var (
			err   error
			once  sync.Once
			value *Booking
		)
		m.oldValue = func(ctx context.Context) (*Booking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Booking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBooking sets the old Booking of the mutation.
func withBooking(node *Booking) bookingOption {
	return func(m *BookingMutation) {
		m.oldValue = func(context.Context) (*Booking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Booking entities.
func (m *BookingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Booking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BookingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BookingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BookingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BookingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BookingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BookingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetIsArchived sets the "is_archived" field.
func (m *BookingMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *BookingMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *BookingMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *BookingMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *BookingMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *BookingMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[booking.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *BookingMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[booking.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *BookingMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, booking.FieldArchivedAt)
}

// SetPatientName sets the "patient_name" field.
func (m *BookingMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *BookingMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *BookingMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetPatientEmail sets the "patient_email" field.
func (m *BookingMutation) SetPatientEmail(s string) {
	m.patient_email = &s
}

// PatientEmail returns the value of the "patient_email" field in the mutation.
func (m *BookingMutation) PatientEmail() (r string, exists bool) {
	v := m.patient_email
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientEmail returns the old "patient_email" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldPatientEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientEmail: %w", err)
	}
	return oldValue.PatientEmail, nil
}

// ResetPatientEmail resets all changes to the "patient_email" field.
func (m *BookingMutation) ResetPatientEmail() {
	m.patient_email = nil
}

// SetPatientPhone sets the "patient_phone" field.
func (m *BookingMutation) SetPatientPhone(s string) {
	m.patient_phone = &s
}

// PatientPhone returns the value of the "patient_phone" field in the mutation.
func (m *BookingMutation) PatientPhone() (r string, exists bool) {
	v := m.patient_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientPhone returns the old "patient_phone" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldPatientPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientPhone: %w", err)
	}
	return oldValue.PatientPhone, nil
}

// ResetPatientPhone resets all changes to the "patient_phone" field.
func (m *BookingMutation) ResetPatientPhone() {
	m.patient_phone = nil
}

// SetCountry sets the "country" field.
func (m *BookingMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *BookingMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *BookingMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[booking.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *BookingMutation) CountryCleared() bool {
	_, ok := m.clearedFields[booking.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *BookingMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, booking.FieldCountry)
}

// SetLocale sets the "locale" field.
func (m *BookingMutation) SetLocale(s string) {
	m.locale = &s
}

// Locale returns the value of the "locale" field in the mutation.
func (m *BookingMutation) Locale() (r string, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldLocale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ResetLocale resets all changes to the "locale" field.
func (m *BookingMutation) ResetLocale() {
	m.locale = nil
}

// SetTreatmentID sets the "treatment_id" field.
func (m *BookingMutation) SetTreatmentID(u uuid.UUID) {
	m.treatment = &u
}

// TreatmentID returns the value of the "treatment_id" field in the mutation.
func (m *BookingMutation) TreatmentID() (r uuid.UUID, exists bool) {
	v := m.treatment
	if v == nil {
		return
	}
	return *v, true
}

// OldTreatmentID returns the old "treatment_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldTreatmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTreatmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTreatmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTreatmentID: %w", err)
	}
	return oldValue.TreatmentID, nil
}

// ClearTreatmentID clears the value of the "treatment_id" field.
func (m *BookingMutation) ClearTreatmentID() {
	m.treatment = nil
	m.clearedFields[booking.FieldTreatmentID] = struct{}{}
}

// TreatmentIDCleared returns if the "treatment_id" field was cleared in this mutation.
func (m *BookingMutation) TreatmentIDCleared() bool {
	_, ok := m.clearedFields[booking.FieldTreatmentID]
	return ok
}

// ResetTreatmentID resets all changes to the "treatment_id" field.
func (m *BookingMutation) ResetTreatmentID() {
	m.treatment = nil
	delete(m.clearedFields, booking.FieldTreatmentID)
}

// SetHospitalID sets the "hospital_id" field.
func (m *BookingMutation) SetHospitalID(u uuid.UUID) {
	m.hospital = &u
}

// HospitalID returns the value of the "hospital_id" field in the mutation.
func (m *BookingMutation) HospitalID() (r uuid.UUID, exists bool) {
	v := m.hospital
	if v == nil {
		return
	}
	return *v, true
}

// OldHospitalID returns the old "hospital_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldHospitalID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHospitalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHospitalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHospitalID: %w", err)
	}
	return oldValue.HospitalID, nil
}

// ClearHospitalID clears the value of the "hospital_id" field.
func (m *BookingMutation) ClearHospitalID() {
	m.hospital = nil
	m.clearedFields[booking.FieldHospitalID] = struct{}{}
}

// HospitalIDCleared returns if the "hospital_id" field was cleared in this mutation.
func (m *BookingMutation) HospitalIDCleared() bool {
	_, ok := m.clearedFields[booking.FieldHospitalID]
	return ok
}

// ResetHospitalID resets all changes to the "hospital_id" field.
func (m *BookingMutation) ResetHospitalID() {
	m.hospital = nil
	delete(m.clearedFields, booking.FieldHospitalID)
}

// SetPackageID sets the "package_id" field.
func (m *BookingMutation) SetPackageID(u uuid.UUID) {
	m._package = &u
}

// PackageID returns the value of the "package_id" field in the mutation.
func (m *BookingMutation) PackageID() (r uuid.UUID, exists bool) {
	v := m._package
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageID returns the old "package_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldPackageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageID: %w", err)
	}
	return oldValue.PackageID, nil
}

// ClearPackageID clears the value of the "package_id" field.
func (m *BookingMutation) ClearPackageID() {
	m._package = nil
	m.clearedFields[booking.FieldPackageID] = struct{}{}
}

// PackageIDCleared returns if the "package_id" field was cleared in this mutation.
func (m *BookingMutation) PackageIDCleared() bool {
	_, ok := m.clearedFields[booking.FieldPackageID]
	return ok
}

// ResetPackageID resets all changes to the "package_id" field.
func (m *BookingMutation) ResetPackageID() {
	m._package = nil
	delete(m.clearedFields, booking.FieldPackageID)
}

// SetDoctorID sets the "doctor_id" field.
func (m *BookingMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *BookingMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldDoctorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (m *BookingMutation) ClearDoctorID() {
	m.doctor = nil
	m.clearedFields[booking.FieldDoctorID] = struct{}{}
}

// DoctorIDCleared returns if the "doctor_id" field was cleared in this mutation.
func (m *BookingMutation) DoctorIDCleared() bool {
	_, ok := m.clearedFields[booking.FieldDoctorID]
	return ok
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *BookingMutation) ResetDoctorID() {
	m.doctor = nil
	delete(m.clearedFields, booking.FieldDoctorID)
}

// SetTranslatorID sets the "translator_id" field.
func (m *BookingMutation) SetTranslatorID(u uuid.UUID) {
	m.translator = &u
}

// TranslatorID returns the value of the "translator_id" field in the mutation.
func (m *BookingMutation) TranslatorID() (r uuid.UUID, exists bool) {
	v := m.translator
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslatorID returns the old "translator_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldTranslatorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslatorID: %w", err)
	}
	return oldValue.TranslatorID, nil
}

// ClearTranslatorID clears the value of the "translator_id" field.
func (m *BookingMutation) ClearTranslatorID() {
	m.translator = nil
	m.clearedFields[booking.FieldTranslatorID] = struct{}{}
}

// TranslatorIDCleared returns if the "translator_id" field was cleared in this mutation.
func (m *BookingMutation) TranslatorIDCleared() bool {
	_, ok := m.clearedFields[booking.FieldTranslatorID]
	return ok
}

// ResetTranslatorID resets all changes to the "translator_id" field.
func (m *BookingMutation) ResetTranslatorID() {
	m.translator = nil
	delete(m.clearedFields, booking.FieldTranslatorID)
}

// SetAssignedUserID sets the "assigned_user_id" field.
func (m *BookingMutation) SetAssignedUserID(u uuid.UUID) {
	m.assigned_user = &u
}

// AssignedUserID returns the value of the "assigned_user_id" field in the mutation.
func (m *BookingMutation) AssignedUserID() (r uuid.UUID, exists bool) {
	v := m.assigned_user
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedUserID returns the old "assigned_user_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldAssignedUserID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedUserID: %w", err)
	}
	return oldValue.AssignedUserID, nil
}

// ClearAssignedUserID clears the value of the "assigned_user_id" field.
func (m *BookingMutation) ClearAssignedUserID() {
	m.assigned_user = nil
	m.clearedFields[booking.FieldAssignedUserID] = struct{}{}
}

// AssignedUserIDCleared returns if the "assigned_user_id" field was cleared in this mutation.
func (m *BookingMutation) AssignedUserIDCleared() bool {
	_, ok := m.clearedFields[booking.FieldAssignedUserID]
	return ok
}

// ResetAssignedUserID resets all changes to the "assigned_user_id" field.
func (m *BookingMutation) ResetAssignedUserID() {
	m.assigned_user = nil
	delete(m.clearedFields, booking.FieldAssignedUserID)
}

// SetPreferredStart sets the "preferred_start" field.
func (m *BookingMutation) SetPreferredStart(t time.Time) {
	m.preferred_start = &t
}

// PreferredStart returns the value of the "preferred_start" field in the mutation.
func (m *BookingMutation) PreferredStart() (r time.Time, exists bool) {
	v := m.preferred_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredStart returns the old "preferred_start" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldPreferredStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredStart: %w", err)
	}
	return oldValue.PreferredStart, nil
}

// ClearPreferredStart clears the value of the "preferred_start" field.
func (m *BookingMutation) ClearPreferredStart() {
	m.preferred_start = nil
	m.clearedFields[booking.FieldPreferredStart] = struct{}{}
}

// PreferredStartCleared returns if the "preferred_start" field was cleared in this mutation.
func (m *BookingMutation) PreferredStartCleared() bool {
	_, ok := m.clearedFields[booking.FieldPreferredStart]
	return ok
}

// ResetPreferredStart resets all changes to the "preferred_start" field.
func (m *BookingMutation) ResetPreferredStart() {
	m.preferred_start = nil
	delete(m.clearedFields, booking.FieldPreferredStart)
}

// SetPreferredEnd sets the "preferred_end" field.
func (m *BookingMutation) SetPreferredEnd(t time.Time) {
	m.preferred_end = &t
}

// PreferredEnd returns the value of the "preferred_end" field in the mutation.
func (m *BookingMutation) PreferredEnd() (r time.Time, exists bool) {
	v := m.preferred_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredEnd returns the old "preferred_end" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldPreferredEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredEnd: %w", err)
	}
	return oldValue.PreferredEnd, nil
}

// ClearPreferredEnd clears the value of the "preferred_end" field.
func (m *BookingMutation) ClearPreferredEnd() {
	m.preferred_end = nil
	m.clearedFields[booking.FieldPreferredEnd] = struct{}{}
}

// PreferredEndCleared returns if the "preferred_end" field was cleared in this mutation.
func (m *BookingMutation) PreferredEndCleared() bool {
	_, ok := m.clearedFields[booking.FieldPreferredEnd]
	return ok
}

// ResetPreferredEnd resets all changes to the "preferred_end" field.
func (m *BookingMutation) ResetPreferredEnd() {
	m.preferred_end = nil
	delete(m.clearedFields, booking.FieldPreferredEnd)
}

// SetNotes sets the "notes" field.
func (m *BookingMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *BookingMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *BookingMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[booking.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *BookingMutation) NotesCleared() bool {
	_, ok := m.clearedFields[booking.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *BookingMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, booking.FieldNotes)
}

// SetStatus sets the "status" field.
func (m *BookingMutation) SetStatus(b booking.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BookingMutation) Status() (r booking.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldStatus(ctx context.Context) (v booking.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BookingMutation) ResetStatus() {
	m.status = nil
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *BookingMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *BookingMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (m *BookingMutation) ClearConfirmedAt() {
	m.confirmed_at = nil
	m.clearedFields[booking.FieldConfirmedAt] = struct{}{}
}

// ConfirmedAtCleared returns if the "confirmed_at" field was cleared in this mutation.
func (m *BookingMutation) ConfirmedAtCleared() bool {
	_, ok := m.clearedFields[booking.FieldConfirmedAt]
	return ok
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *BookingMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
	delete(m.clearedFields, booking.FieldConfirmedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *BookingMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BookingMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BookingMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[booking.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BookingMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[booking.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BookingMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, booking.FieldCompletedAt)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *BookingMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *BookingMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *BookingMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[booking.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *BookingMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[booking.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *BookingMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, booking.FieldCancelledAt)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *BookingMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *BookingMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldCancellationReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *BookingMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[booking.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *BookingMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[booking.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *BookingMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, booking.FieldCancellationReason)
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (m *BookingMutation) ClearTreatment() {
	m.clearedtreatment = true
	m.clearedFields[booking.FieldTreatmentID] = struct{}{}
}

// TreatmentCleared reports if the "treatment" edge to the Treatment entity was cleared.
func (m *BookingMutation) TreatmentCleared() bool {
	return m.TreatmentIDCleared() || m.clearedtreatment
}

// TreatmentIDs returns the "treatment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TreatmentID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) TreatmentIDs() (ids []uuid.UUID) {
	if id := m.treatment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTreatment resets all changes to the "treatment" edge.
func (m *BookingMutation) ResetTreatment() {
	m.treatment = nil
	m.clearedtreatment = false
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (m *BookingMutation) ClearHospital() {
	m.clearedhospital = true
	m.clearedFields[booking.FieldHospitalID] = struct{}{}
}

// HospitalCleared reports if the "hospital" edge to the Hospital entity was cleared.
func (m *BookingMutation) HospitalCleared() bool {
	return m.HospitalIDCleared() || m.clearedhospital
}

// HospitalIDs returns the "hospital" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HospitalID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) HospitalIDs() (ids []uuid.UUID) {
	if id := m.hospital; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHospital resets all changes to the "hospital" edge.
func (m *BookingMutation) ResetHospital() {
	m.hospital = nil
	m.clearedhospital = false
}

// ClearPackage clears the "package" edge to the CarePackage entity.
func (m *BookingMutation) ClearPackage() {
	m.cleared_package = true
	m.clearedFields[booking.FieldPackageID] = struct{}{}
}

// PackageCleared reports if the "package" edge to the CarePackage entity was cleared.
func (m *BookingMutation) PackageCleared() bool {
	return m.PackageIDCleared() || m.cleared_package
}

// PackageIDs returns the "package" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PackageID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) PackageIDs() (ids []uuid.UUID) {
	if id := m._package; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPackage resets all changes to the "package" edge.
func (m *BookingMutation) ResetPackage() {
	m._package = nil
	m.cleared_package = false
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *BookingMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[booking.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *BookingMutation) DoctorCleared() bool {
	return m.DoctorIDCleared() || m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *BookingMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// ClearTranslator clears the "translator" edge to the Translator entity.
func (m *BookingMutation) ClearTranslator() {
	m.clearedtranslator = true
	m.clearedFields[booking.FieldTranslatorID] = struct{}{}
}

// TranslatorCleared reports if the "translator" edge to the Translator entity was cleared.
func (m *BookingMutation) TranslatorCleared() bool {
	return m.TranslatorIDCleared() || m.clearedtranslator
}

// TranslatorIDs returns the "translator" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranslatorID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) TranslatorIDs() (ids []uuid.UUID) {
	if id := m.translator; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranslator resets all changes to the "translator" edge.
func (m *BookingMutation) ResetTranslator() {
	m.translator = nil
	m.clearedtranslator = false
}

// ClearAssignedUser clears the "assigned_user" edge to the User entity.
func (m *BookingMutation) ClearAssignedUser() {
	m.clearedassigned_user = true
	m.clearedFields[booking.FieldAssignedUserID] = struct{}{}
}

// AssignedUserCleared reports if the "assigned_user" edge to the User entity was cleared.
func (m *BookingMutation) AssignedUserCleared() bool {
	return m.AssignedUserIDCleared() || m.clearedassigned_user
}

// AssignedUserIDs returns the "assigned_user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedUserID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) AssignedUserIDs() (ids []uuid.UUID) {
	if id := m.assigned_user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedUser resets all changes to the "assigned_user" edge.
func (m *BookingMutation) ResetAssignedUser() {
	m.assigned_user = nil
	m.clearedassigned_user = false
}

// Where appends a list predicates to the BookingMutation builder.
func (m *BookingMutation) Where(ps ...predicate.Booking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Booking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Booking).
func (m *BookingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookingMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.created_at != nil {
		fields = append(fields, booking.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, booking.FieldUpdatedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, booking.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, booking.FieldArchivedAt)
	}
	if m.patient_name != nil {
		fields = append(fields, booking.FieldPatientName)
	}
	if m.patient_email != nil {
		fields = append(fields, booking.FieldPatientEmail)
	}
	if m.patient_phone != nil {
		fields = append(fields, booking.FieldPatientPhone)
	}
	if m.country != nil {
		fields = append(fields, booking.FieldCountry)
	}
	if m.locale != nil {
		fields = append(fields, booking.FieldLocale)
	}
	if m.treatment != nil {
		fields = append(fields, booking.FieldTreatmentID)
	}
	if m.hospital != nil {
		fields = append(fields, booking.FieldHospitalID)
	}
	if m._package != nil {
		fields = append(fields, booking.FieldPackageID)
	}
	if m.doctor != nil {
		fields = append(fields, booking.FieldDoctorID)
	}
	if m.translator != nil {
		fields = append(fields, booking.FieldTranslatorID)
	}
	if m.assigned_user != nil {
		fields = append(fields, booking.FieldAssignedUserID)
	}
	if m.preferred_start != nil {
		fields = append(fields, booking.FieldPreferredStart)
	}
	if m.preferred_end != nil {
		fields = append(fields, booking.FieldPreferredEnd)
	}
	if m.notes != nil {
		fields = append(fields, booking.FieldNotes)
	}
	if m.status != nil {
		fields = append(fields, booking.FieldStatus)
	}
	if m.confirmed_at != nil {
		fields = append(fields, booking.FieldConfirmedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, booking.FieldCompletedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, booking.FieldCancelledAt)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, booking.FieldCancellationReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case booking.FieldCreatedAt:
		return m.CreatedAt()
	case booking.FieldUpdatedAt:
		return m.UpdatedAt()
	case booking.FieldIsArchived:
		return m.IsArchived()
	case booking.FieldArchivedAt:
		return m.ArchivedAt()
	case booking.FieldPatientName:
		return m.PatientName()
	case booking.FieldPatientEmail:
		return m.PatientEmail()
	case booking.FieldPatientPhone:
		return m.PatientPhone()
	case booking.FieldCountry:
		return m.Country()
	case booking.FieldLocale:
		return m.Locale()
	case booking.FieldTreatmentID:
		return m.TreatmentID()
	case booking.FieldHospitalID:
		return m.HospitalID()
	case booking.FieldPackageID:
		return m.PackageID()
	case booking.FieldDoctorID:
		return m.DoctorID()
	case booking.FieldTranslatorID:
		return m.TranslatorID()
	case booking.FieldAssignedUserID:
		return m.AssignedUserID()
	case booking.FieldPreferredStart:
		return m.PreferredStart()
	case booking.FieldPreferredEnd:
		return m.PreferredEnd()
	case booking.FieldNotes:
		return m.Notes()
	case booking.FieldStatus:
		return m.Status()
	case booking.FieldConfirmedAt:
		return m.ConfirmedAt()
	case booking.FieldCompletedAt:
		return m.CompletedAt()
	case booking.FieldCancelledAt:
		return m.CancelledAt()
	case booking.FieldCancellationReason:
		return m.CancellationReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case booking.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case booking.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case booking.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case booking.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case booking.FieldPatientName:
		return m.OldPatientName(ctx)
	case booking.FieldPatientEmail:
		return m.OldPatientEmail(ctx)
	case booking.FieldPatientPhone:
		return m.OldPatientPhone(ctx)
	case booking.FieldCountry:
		return m.OldCountry(ctx)
	case booking.FieldLocale:
		return m.OldLocale(ctx)
	case booking.FieldTreatmentID:
		return m.OldTreatmentID(ctx)
	case booking.FieldHospitalID:
		return m.OldHospitalID(ctx)
	case booking.FieldPackageID:
		return m.OldPackageID(ctx)
	case booking.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case booking.FieldTranslatorID:
		return m.OldTranslatorID(ctx)
	case booking.FieldAssignedUserID:
		return m.OldAssignedUserID(ctx)
	case booking.FieldPreferredStart:
		return m.OldPreferredStart(ctx)
	case booking.FieldPreferredEnd:
		return m.OldPreferredEnd(ctx)
	case booking.FieldNotes:
		return m.OldNotes(ctx)
	case booking.FieldStatus:
		return m.OldStatus(ctx)
	case booking.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	case booking.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case booking.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case booking.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	}
	return nil, fmt.Errorf("unknown Booking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case booking.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case booking.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case booking.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case booking.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case booking.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case booking.FieldPatientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientEmail(v)
		return nil
	case booking.FieldPatientPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientPhone(v)
		return nil
	case booking.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case booking.FieldLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case booking.FieldTreatmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTreatmentID(v)
		return nil
	case booking.FieldHospitalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHospitalID(v)
		return nil
	case booking.FieldPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageID(v)
		return nil
	case booking.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case booking.FieldTranslatorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslatorID(v)
		return nil
	case booking.FieldAssignedUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedUserID(v)
		return nil
	case booking.FieldPreferredStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredStart(v)
		return nil
	case booking.FieldPreferredEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredEnd(v)
		return nil
	case booking.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case booking.FieldStatus:
		v, ok := value.(booking.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case booking.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	case booking.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case booking.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case booking.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Booking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(booking.FieldArchivedAt) {
		fields = append(fields, booking.FieldArchivedAt)
	}
	if m.FieldCleared(booking.FieldCountry) {
		fields = append(fields, booking.FieldCountry)
	}
	if m.FieldCleared(booking.FieldTreatmentID) {
		fields = append(fields, booking.FieldTreatmentID)
	}
	if m.FieldCleared(booking.FieldHospitalID) {
		fields = append(fields, booking.FieldHospitalID)
	}
	if m.FieldCleared(booking.FieldPackageID) {
		fields = append(fields, booking.FieldPackageID)
	}
	if m.FieldCleared(booking.FieldDoctorID) {
		fields = append(fields, booking.FieldDoctorID)
	}
	if m.FieldCleared(booking.FieldTranslatorID) {
		fields = append(fields, booking.FieldTranslatorID)
	}
	if m.FieldCleared(booking.FieldAssignedUserID) {
		fields = append(fields, booking.FieldAssignedUserID)
	}
	if m.FieldCleared(booking.FieldPreferredStart) {
		fields = append(fields, booking.FieldPreferredStart)
	}
	if m.FieldCleared(booking.FieldPreferredEnd) {
		fields = append(fields, booking.FieldPreferredEnd)
	}
	if m.FieldCleared(booking.FieldNotes) {
		fields = append(fields, booking.FieldNotes)
	}
	if m.FieldCleared(booking.FieldConfirmedAt) {
		fields = append(fields, booking.FieldConfirmedAt)
	}
	if m.FieldCleared(booking.FieldCompletedAt) {
		fields = append(fields, booking.FieldCompletedAt)
	}
	if m.FieldCleared(booking.FieldCancelledAt) {
		fields = append(fields, booking.FieldCancelledAt)
	}
	if m.FieldCleared(booking.FieldCancellationReason) {
		fields = append(fields, booking.FieldCancellationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookingMutation) ClearField(name string) error {
	switch name {
	case booking.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case booking.FieldCountry:
		m.ClearCountry()
		return nil
	case booking.FieldTreatmentID:
		m.ClearTreatmentID()
		return nil
	case booking.FieldHospitalID:
		m.ClearHospitalID()
		return nil
	case booking.FieldPackageID:
		m.ClearPackageID()
		return nil
	case booking.FieldDoctorID:
		m.ClearDoctorID()
		return nil
	case booking.FieldTranslatorID:
		m.ClearTranslatorID()
		return nil
	case booking.FieldAssignedUserID:
		m.ClearAssignedUserID()
		return nil
	case booking.FieldPreferredStart:
		m.ClearPreferredStart()
		return nil
	case booking.FieldPreferredEnd:
		m.ClearPreferredEnd()
		return nil
	case booking.FieldNotes:
		m.ClearNotes()
		return nil
	case booking.FieldConfirmedAt:
		m.ClearConfirmedAt()
		return nil
	case booking.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case booking.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case booking.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown Booking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookingMutation) ResetField(name string) error {
	switch name {
	case booking.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case booking.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case booking.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case booking.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case booking.FieldPatientName:
		m.ResetPatientName()
		return nil
	case booking.FieldPatientEmail:
		m.ResetPatientEmail()
		return nil
	case booking.FieldPatientPhone:
		m.ResetPatientPhone()
		return nil
	case booking.FieldCountry:
		m.ResetCountry()
		return nil
	case booking.FieldLocale:
		m.ResetLocale()
		return nil
	case booking.FieldTreatmentID:
		m.ResetTreatmentID()
		return nil
	case booking.FieldHospitalID:
		m.ResetHospitalID()
		return nil
	case booking.FieldPackageID:
		m.ResetPackageID()
		return nil
	case booking.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case booking.FieldTranslatorID:
		m.ResetTranslatorID()
		return nil
	case booking.FieldAssignedUserID:
		m.ResetAssignedUserID()
		return nil
	case booking.FieldPreferredStart:
		m.ResetPreferredStart()
		return nil
	case booking.FieldPreferredEnd:
		m.ResetPreferredEnd()
		return nil
	case booking.FieldNotes:
		m.ResetNotes()
		return nil
	case booking.FieldStatus:
		m.ResetStatus()
		return nil
	case booking.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	case booking.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case booking.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case booking.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookingMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.treatment != nil {
		edges = append(edges, booking.EdgeTreatment)
	}
	if m.hospital != nil {
		edges = append(edges, booking.EdgeHospital)
	}
	if m._package != nil {
		edges = append(edges, booking.EdgePackage)
	}
	if m.doctor != nil {
		edges = append(edges, booking.EdgeDoctor)
	}
	if m.translator != nil {
		edges = append(edges, booking.EdgeTranslator)
	}
	if m.assigned_user != nil {
		edges = append(edges, booking.EdgeAssignedUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case booking.EdgeTreatment:
		if id := m.treatment; id != nil {
			return []ent.Value{*id}
		}
	case booking.EdgeHospital:
		if id := m.hospital; id != nil {
			return []ent.Value{*id}
		}
	case booking.EdgePackage:
		if id := m._package; id != nil {
			return []ent.Value{*id}
		}
	case booking.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	case booking.EdgeTranslator:
		if id := m.translator; id != nil {
			return []ent.Value{*id}
		}
	case booking.EdgeAssignedUser:
		if id := m.assigned_user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedtreatment {
		edges = append(edges, booking.EdgeTreatment)
	}
	if m.clearedhospital {
		edges = append(edges, booking.EdgeHospital)
	}
	if m.cleared_package {
		edges = append(edges, booking.EdgePackage)
	}
	if m.cleareddoctor {
		edges = append(edges, booking.EdgeDoctor)
	}
	if m.clearedtranslator {
		edges = append(edges, booking.EdgeTranslator)
	}
	if m.clearedassigned_user {
		edges = append(edges, booking.EdgeAssignedUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookingMutation) EdgeCleared(name string) bool {
	switch name {
	case booking.EdgeTreatment:
		return m.clearedtreatment
	case booking.EdgeHospital:
		return m.clearedhospital
	case booking.EdgePackage:
		return m.cleared_package
	case booking.EdgeDoctor:
		return m.cleareddoctor
	case booking.EdgeTranslator:
		return m.clearedtranslator
	case booking.EdgeAssignedUser:
		return m.clearedassigned_user
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookingMutation) ClearEdge(name string) error {
	switch name {
	case booking.EdgeTreatment:
		m.ClearTreatment()
		return nil
	case booking.EdgeHospital:
		m.ClearHospital()
		return nil
	case booking.EdgePackage:
		m.ClearPackage()
		return nil
	case booking.EdgeDoctor:
		m.ClearDoctor()
		return nil
	case booking.EdgeTranslator:
		m.ClearTranslator()
		return nil
	case booking.EdgeAssignedUser:
		m.ClearAssignedUser()
		return nil
	}
	return fmt.Errorf("unknown Booking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookingMutation) ResetEdge(name string) error {
	switch name {
	case booking.EdgeTreatment:
		m.ResetTreatment()
		return nil
	case booking.EdgeHospital:
		m.ResetHospital()
		return nil
	case booking.EdgePackage:
		m.ResetPackage()
		return nil
	case booking.EdgeDoctor:
		m.ResetDoctor()
		return nil
	case booking.EdgeTranslator:
		m.ResetTranslator()
		return nil
	case booking.EdgeAssignedUser:
		m.ResetAssignedUser()
		return nil
	}
	return fmt.Errorf("unknown Booking edge %s", name)
}

// CarePackageMutation represents an operation that mutates the CarePackage nodes in the graph.
type CarePackageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	published           *bool
	published_at        *time.Time
	is_archived         *bool
	archived_at         *time.Time
	name_en             *string
	name_ar             *string
	slug                *string
	description_en      *string
	description_ar      *string
	price               *float64
	addprice            *float64
	currency            *string
	duration_days       *int
	addduration_days    *int
	inclusions_en       *[]string
	appendinclusions_en []string
	inclusions_ar       *[]string
	appendinclusions_ar []string
	exclusions_en       *[]string
	appendexclusions_en []string
	exclusions_ar       *[]string
	appendexclusions_ar []string
	featured            *bool
	clearedFields       map[string]struct{}
	treatment           *uuid.UUID
	clearedtreatment    bool
	hospital            *uuid.UUID
	clearedhospital     bool
	done                bool
	oldValue            func(context.Context) (*CarePackage, error)
	predicates          []predicate.CarePackage
}

var _ ent.Mutation = (*CarePackageMutation)(nil)

// carepackageOption allows management of the mutation configuration using functional options.
type carepackageOption func(*CarePackageMutation)

// newCarePackageMutation creates new mutation for the CarePackage entity.
func newCarePackageMutation(c config, op Op, opts ...carepackageOption) *CarePackageMutation {
	m := &CarePackageMutation{
		config:        c,
		op:            op,
		typ:           TypeCarePackage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCarePackageID sets the ID field of the mutation.
func withCarePackageID(id uuid.UUID) carepackageOption {
	return func(m *CarePackageMutation) {
		var (
			err   error
			once  sync.Once
			value *CarePackage
		)
		m.oldValue = func(ctx context.Context) (*CarePackage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CarePackage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCarePackage sets the old CarePackage of the mutation.
func withCarePackage(node *CarePackage) carepackageOption {
	return func(m *CarePackageMutation) {
		m.oldValue = func(context.Context) (*CarePackage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CarePackageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CarePackageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CarePackage entities.
func (m *CarePackageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CarePackageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CarePackageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CarePackage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CarePackageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CarePackageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CarePackageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CarePackageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CarePackageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CarePackageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPublished sets the "published" field.
func (m *CarePackageMutation) SetPublished(b bool) {
	m.published = &b
}

// Published returns the value of the "published" field in the mutation.
func (m *CarePackageMutation) Published() (r bool, exists bool) {
	v := m.published
	if v == nil {
		return
	}
	return *v, true
}

// OldPublished returns the old "published" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublished: %w", err)
	}
	return oldValue.Published, nil
}

// ResetPublished resets all changes to the "published" field.
func (m *CarePackageMutation) ResetPublished() {
	m.published = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *CarePackageMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *CarePackageMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *CarePackageMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[carepackage.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *CarePackageMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *CarePackageMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, carepackage.FieldPublishedAt)
}

// SetIsArchived sets the "is_archived" field.
func (m *CarePackageMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *CarePackageMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *CarePackageMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *CarePackageMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *CarePackageMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *CarePackageMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[carepackage.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *CarePackageMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *CarePackageMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, carepackage.FieldArchivedAt)
}

// SetTreatmentID sets the "treatment_id" field.
func (m *CarePackageMutation) SetTreatmentID(u uuid.UUID) {
	m.treatment = &u
}

// TreatmentID returns the value of the "treatment_id" field in the mutation.
func (m *CarePackageMutation) TreatmentID() (r uuid.UUID, exists bool) {
	v := m.treatment
	if v == nil {
		return
	}
	return *v, true
}

// OldTreatmentID returns the old "treatment_id" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldTreatmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTreatmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTreatmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTreatmentID: %w", err)
	}
	return oldValue.TreatmentID, nil
}

// ResetTreatmentID resets all changes to the "treatment_id" field.
func (m *CarePackageMutation) ResetTreatmentID() {
	m.treatment = nil
}

// SetHospitalID sets the "hospital_id" field.
func (m *CarePackageMutation) SetHospitalID(u uuid.UUID) {
	m.hospital = &u
}

// HospitalID returns the value of the "hospital_id" field in the mutation.
func (m *CarePackageMutation) HospitalID() (r uuid.UUID, exists bool) {
	v := m.hospital
	if v == nil {
		return
	}
	return *v, true
}

// OldHospitalID returns the old "hospital_id" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldHospitalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHospitalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHospitalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHospitalID: %w", err)
	}
	return oldValue.HospitalID, nil
}

// ResetHospitalID resets all changes to the "hospital_id" field.
func (m *CarePackageMutation) ResetHospitalID() {
	m.hospital = nil
}

// SetNameEn sets the "name_en" field.
func (m *CarePackageMutation) SetNameEn(s string) {
	m.name_en = &s
}

// NameEn returns the value of the "name_en" field in the mutation.
func (m *CarePackageMutation) NameEn() (r string, exists bool) {
	v := m.name_en
	if v == nil {
		return
	}
	return *v, true
}

// OldNameEn returns the old "name_en" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldNameEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameEn: %w", err)
	}
	return oldValue.NameEn, nil
}

// ResetNameEn resets all changes to the "name_en" field.
func (m *CarePackageMutation) ResetNameEn() {
	m.name_en = nil
}

// SetNameAr sets the "name_ar" field.
func (m *CarePackageMutation) SetNameAr(s string) {
	m.name_ar = &s
}

// NameAr returns the value of the "name_ar" field in the mutation.
func (m *CarePackageMutation) NameAr() (r string, exists bool) {
	v := m.name_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldNameAr returns the old "name_ar" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldNameAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameAr: %w", err)
	}
	return oldValue.NameAr, nil
}

// ResetNameAr resets all changes to the "name_ar" field.
func (m *CarePackageMutation) ResetNameAr() {
	m.name_ar = nil
}

// SetSlug sets the "slug" field.
func (m *CarePackageMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *CarePackageMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *CarePackageMutation) ResetSlug() {
	m.slug = nil
}

// SetDescriptionEn sets the "description_en" field.
func (m *CarePackageMutation) SetDescriptionEn(s string) {
	m.description_en = &s
}

// DescriptionEn returns the value of the "description_en" field in the mutation.
func (m *CarePackageMutation) DescriptionEn() (r string, exists bool) {
	v := m.description_en
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionEn returns the old "description_en" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldDescriptionEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionEn: %w", err)
	}
	return oldValue.DescriptionEn, nil
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (m *CarePackageMutation) ClearDescriptionEn() {
	m.description_en = nil
	m.clearedFields[carepackage.FieldDescriptionEn] = struct{}{}
}

// DescriptionEnCleared returns if the "description_en" field was cleared in this mutation.
func (m *CarePackageMutation) DescriptionEnCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldDescriptionEn]
	return ok
}

// ResetDescriptionEn resets all changes to the "description_en" field.
func (m *CarePackageMutation) ResetDescriptionEn() {
	m.description_en = nil
	delete(m.clearedFields, carepackage.FieldDescriptionEn)
}

// SetDescriptionAr sets the "description_ar" field.
func (m *CarePackageMutation) SetDescriptionAr(s string) {
	m.description_ar = &s
}

// DescriptionAr returns the value of the "description_ar" field in the mutation.
func (m *CarePackageMutation) DescriptionAr() (r string, exists bool) {
	v := m.description_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionAr returns the old "description_ar" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldDescriptionAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionAr: %w", err)
	}
	return oldValue.DescriptionAr, nil
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (m *CarePackageMutation) ClearDescriptionAr() {
	m.description_ar = nil
	m.clearedFields[carepackage.FieldDescriptionAr] = struct{}{}
}

// DescriptionArCleared returns if the "description_ar" field was cleared in this mutation.
func (m *CarePackageMutation) DescriptionArCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldDescriptionAr]
	return ok
}

// ResetDescriptionAr resets all changes to the "description_ar" field.
func (m *CarePackageMutation) ResetDescriptionAr() {
	m.description_ar = nil
	delete(m.clearedFields, carepackage.FieldDescriptionAr)
}

// SetPrice sets the "price" field.
func (m *CarePackageMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *CarePackageMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *CarePackageMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *CarePackageMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *CarePackageMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetCurrency sets the "currency" field.
func (m *CarePackageMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *CarePackageMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *CarePackageMutation) ResetCurrency() {
	m.currency = nil
}

// SetDurationDays sets the "duration_days" field.
func (m *CarePackageMutation) SetDurationDays(i int) {
	m.duration_days = &i
	m.addduration_days = nil
}

// DurationDays returns the value of the "duration_days" field in the mutation.
func (m *CarePackageMutation) DurationDays() (r int, exists bool) {
	v := m.duration_days
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationDays returns the old "duration_days" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldDurationDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationDays: %w", err)
	}
	return oldValue.DurationDays, nil
}

// AddDurationDays adds i to the "duration_days" field.
func (m *CarePackageMutation) AddDurationDays(i int) {
	if m.addduration_days != nil {
		*m.addduration_days += i
	} else {
		m.addduration_days = &i
	}
}

// AddedDurationDays returns the value that was added to the "duration_days" field in this mutation.
func (m *CarePackageMutation) AddedDurationDays() (r int, exists bool) {
	v := m.addduration_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationDays clears the value of the "duration_days" field.
func (m *CarePackageMutation) ClearDurationDays() {
	m.duration_days = nil
	m.addduration_days = nil
	m.clearedFields[carepackage.FieldDurationDays] = struct{}{}
}

// DurationDaysCleared returns if the "duration_days" field was cleared in this mutation.
func (m *CarePackageMutation) DurationDaysCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldDurationDays]
	return ok
}

// ResetDurationDays resets all changes to the "duration_days" field.
func (m *CarePackageMutation) ResetDurationDays() {
	m.duration_days = nil
	m.addduration_days = nil
	delete(m.clearedFields, carepackage.FieldDurationDays)
}

// SetInclusionsEn sets the "inclusions_en" field.
func (m *CarePackageMutation) SetInclusionsEn(s []string) {
	m.inclusions_en = &s
	m.appendinclusions_en = nil
}

// InclusionsEn returns the value of the "inclusions_en" field in the mutation.
func (m *CarePackageMutation) InclusionsEn() (r []string, exists bool) {
	v := m.inclusions_en
	if v == nil {
		return
	}
	return *v, true
}

// OldInclusionsEn returns the old "inclusions_en" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldInclusionsEn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInclusionsEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInclusionsEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInclusionsEn: %w", err)
	}
	return oldValue.InclusionsEn, nil
}

// AppendInclusionsEn adds s to the "inclusions_en" field.
func (m *CarePackageMutation) AppendInclusionsEn(s []string) {
	m.appendinclusions_en = append(m.appendinclusions_en, s...)
}

// AppendedInclusionsEn returns the list of values that were appended to the "inclusions_en" field in this mutation.
func (m *CarePackageMutation) AppendedInclusionsEn() ([]string, bool) {
	if len(m.appendinclusions_en) == 0 {
		return nil, false
	}
	return m.appendinclusions_en, true
}

// ClearInclusionsEn clears the value of the "inclusions_en" field.
func (m *CarePackageMutation) ClearInclusionsEn() {
	m.inclusions_en = nil
	m.appendinclusions_en = nil
	m.clearedFields[carepackage.FieldInclusionsEn] = struct{}{}
}

// InclusionsEnCleared returns if the "inclusions_en" field was cleared in this mutation.
func (m *CarePackageMutation) InclusionsEnCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldInclusionsEn]
	return ok
}

// ResetInclusionsEn resets all changes to the "inclusions_en" field.
func (m *CarePackageMutation) ResetInclusionsEn() {
	m.inclusions_en = nil
	m.appendinclusions_en = nil
	delete(m.clearedFields, carepackage.FieldInclusionsEn)
}

// SetInclusionsAr sets the "inclusions_ar" field.
func (m *CarePackageMutation) SetInclusionsAr(s []string) {
	m.inclusions_ar = &s
	m.appendinclusions_ar = nil
}

// InclusionsAr returns the value of the "inclusions_ar" field in the mutation.
func (m *CarePackageMutation) InclusionsAr() (r []string, exists bool) {
	v := m.inclusions_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldInclusionsAr returns the old "inclusions_ar" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldInclusionsAr(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInclusionsAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInclusionsAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInclusionsAr: %w", err)
	}
	return oldValue.InclusionsAr, nil
}

// AppendInclusionsAr adds s to the "inclusions_ar" field.
func (m *CarePackageMutation) AppendInclusionsAr(s []string) {
	m.appendinclusions_ar = append(m.appendinclusions_ar, s...)
}

// AppendedInclusionsAr returns the list of values that were appended to the "inclusions_ar" field in this mutation.
func (m *CarePackageMutation) AppendedInclusionsAr() ([]string, bool) {
	if len(m.appendinclusions_ar) == 0 {
		return nil, false
	}
	return m.appendinclusions_ar, true
}

// ClearInclusionsAr clears the value of the "inclusions_ar" field.
func (m *CarePackageMutation) ClearInclusionsAr() {
	m.inclusions_ar = nil
	m.appendinclusions_ar = nil
	m.clearedFields[carepackage.FieldInclusionsAr] = struct{}{}
}

// InclusionsArCleared returns if the "inclusions_ar" field was cleared in this mutation.
func (m *CarePackageMutation) InclusionsArCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldInclusionsAr]
	return ok
}

// ResetInclusionsAr resets all changes to the "inclusions_ar" field.
func (m *CarePackageMutation) ResetInclusionsAr() {
	m.inclusions_ar = nil
	m.appendinclusions_ar = nil
	delete(m.clearedFields, carepackage.FieldInclusionsAr)
}

// SetExclusionsEn sets the "exclusions_en" field.
func (m *CarePackageMutation) SetExclusionsEn(s []string) {
	m.exclusions_en = &s
	m.appendexclusions_en = nil
}

// ExclusionsEn returns the value of the "exclusions_en" field in the mutation.
func (m *CarePackageMutation) ExclusionsEn() (r []string, exists bool) {
	v := m.exclusions_en
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusionsEn returns the old "exclusions_en" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldExclusionsEn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusionsEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusionsEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusionsEn: %w", err)
	}
	return oldValue.ExclusionsEn, nil
}

// AppendExclusionsEn adds s to the "exclusions_en" field.
func (m *CarePackageMutation) AppendExclusionsEn(s []string) {
	m.appendexclusions_en = append(m.appendexclusions_en, s...)
}

// AppendedExclusionsEn returns the list of values that were appended to the "exclusions_en" field in this mutation.
func (m *CarePackageMutation) AppendedExclusionsEn() ([]string, bool) {
	if len(m.appendexclusions_en) == 0 {
		return nil, false
	}
	return m.appendexclusions_en, true
}

// ClearExclusionsEn clears the value of the "exclusions_en" field.
func (m *CarePackageMutation) ClearExclusionsEn() {
	m.exclusions_en = nil
	m.appendexclusions_en = nil
	m.clearedFields[carepackage.FieldExclusionsEn] = struct{}{}
}

// ExclusionsEnCleared returns if the "exclusions_en" field was cleared in this mutation.
func (m *CarePackageMutation) ExclusionsEnCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldExclusionsEn]
	return ok
}

// ResetExclusionsEn resets all changes to the "exclusions_en" field.
func (m *CarePackageMutation) ResetExclusionsEn() {
	m.exclusions_en = nil
	m.appendexclusions_en = nil
	delete(m.clearedFields, carepackage.FieldExclusionsEn)
}

// SetExclusionsAr sets the "exclusions_ar" field.
func (m *CarePackageMutation) SetExclusionsAr(s []string) {
	m.exclusions_ar = &s
	m.appendexclusions_ar = nil
}

// ExclusionsAr returns the value of the "exclusions_ar" field in the mutation.
func (m *CarePackageMutation) ExclusionsAr() (r []string, exists bool) {
	v := m.exclusions_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusionsAr returns the old "exclusions_ar" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldExclusionsAr(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusionsAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusionsAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusionsAr: %w", err)
	}
	return oldValue.ExclusionsAr, nil
}

// AppendExclusionsAr adds s to the "exclusions_ar" field.
func (m *CarePackageMutation) AppendExclusionsAr(s []string) {
	m.appendexclusions_ar = append(m.appendexclusions_ar, s...)
}

// AppendedExclusionsAr returns the list of values that were appended to the "exclusions_ar" field in this mutation.
func (m *CarePackageMutation) AppendedExclusionsAr() ([]string, bool) {
	if len(m.appendexclusions_ar) == 0 {
		return nil, false
	}
	return m.appendexclusions_ar, true
}

// ClearExclusionsAr clears the value of the "exclusions_ar" field.
func (m *CarePackageMutation) ClearExclusionsAr() {
	m.exclusions_ar = nil
	m.appendexclusions_ar = nil
	m.clearedFields[carepackage.FieldExclusionsAr] = struct{}{}
}

// ExclusionsArCleared returns if the "exclusions_ar" field was cleared in this mutation.
func (m *CarePackageMutation) ExclusionsArCleared() bool {
	_, ok := m.clearedFields[carepackage.FieldExclusionsAr]
	return ok
}

// ResetExclusionsAr resets all changes to the "exclusions_ar" field.
func (m *CarePackageMutation) ResetExclusionsAr() {
	m.exclusions_ar = nil
	m.appendexclusions_ar = nil
	delete(m.clearedFields, carepackage.FieldExclusionsAr)
}

// SetFeatured sets the "featured" field.
func (m *CarePackageMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *CarePackageMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the CarePackage entity.
// If the CarePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarePackageMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *CarePackageMutation) ResetFeatured() {
	m.featured = nil
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (m *CarePackageMutation) ClearTreatment() {
	m.clearedtreatment = true
	m.clearedFields[carepackage.FieldTreatmentID] = struct{}{}
}

// TreatmentCleared reports if the "treatment" edge to the Treatment entity was cleared.
func (m *CarePackageMutation) TreatmentCleared() bool {
	return m.clearedtreatment
}

// TreatmentIDs returns the "treatment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TreatmentID instead. It exists only for internal usage by the builders.
func (m *CarePackageMutation) TreatmentIDs() (ids []uuid.UUID) {
	if id := m.treatment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTreatment resets all changes to the "treatment" edge.
func (m *CarePackageMutation) ResetTreatment() {
	m.treatment = nil
	m.clearedtreatment = false
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (m *CarePackageMutation) ClearHospital() {
	m.clearedhospital = true
	m.clearedFields[carepackage.FieldHospitalID] = struct{}{}
}

// HospitalCleared reports if the "hospital" edge to the Hospital entity was cleared.
func (m *CarePackageMutation) HospitalCleared() bool {
	return m.clearedhospital
}

// HospitalIDs returns the "hospital" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HospitalID instead. It exists only for internal usage by the builders.
func (m *CarePackageMutation) HospitalIDs() (ids []uuid.UUID) {
	if id := m.hospital; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHospital resets all changes to the "hospital" edge.
func (m *CarePackageMutation) ResetHospital() {
	m.hospital = nil
	m.clearedhospital = false
}

// Where appends a list predicates to the CarePackageMutation builder.
func (m *CarePackageMutation) Where(ps ...predicate.CarePackage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CarePackageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CarePackageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CarePackage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CarePackageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CarePackageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CarePackage).
func (m *CarePackageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CarePackageMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, carepackage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, carepackage.FieldUpdatedAt)
	}
	if m.published != nil {
		fields = append(fields, carepackage.FieldPublished)
	}
	if m.published_at != nil {
		fields = append(fields, carepackage.FieldPublishedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, carepackage.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, carepackage.FieldArchivedAt)
	}
	if m.treatment != nil {
		fields = append(fields, carepackage.FieldTreatmentID)
	}
	if m.hospital != nil {
		fields = append(fields, carepackage.FieldHospitalID)
	}
	if m.name_en != nil {
		fields = append(fields, carepackage.FieldNameEn)
	}
	if m.name_ar != nil {
		fields = append(fields, carepackage.FieldNameAr)
	}
	if m.slug != nil {
		fields = append(fields, carepackage.FieldSlug)
	}
	if m.description_en != nil {
		fields = append(fields, carepackage.FieldDescriptionEn)
	}
	if m.description_ar != nil {
		fields = append(fields, carepackage.FieldDescriptionAr)
	}
	if m.price != nil {
		fields = append(fields, carepackage.FieldPrice)
	}
	if m.currency != nil {
		fields = append(fields, carepackage.FieldCurrency)
	}
	if m.duration_days != nil {
		fields = append(fields, carepackage.FieldDurationDays)
	}
	if m.inclusions_en != nil {
		fields = append(fields, carepackage.FieldInclusionsEn)
	}
	if m.inclusions_ar != nil {
		fields = append(fields, carepackage.FieldInclusionsAr)
	}
	if m.exclusions_en != nil {
		fields = append(fields, carepackage.FieldExclusionsEn)
	}
	if m.exclusions_ar != nil {
		fields = append(fields, carepackage.FieldExclusionsAr)
	}
	if m.featured != nil {
		fields = append(fields, carepackage.FieldFeatured)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CarePackageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case carepackage.FieldCreatedAt:
		return m.CreatedAt()
	case carepackage.FieldUpdatedAt:
		return m.UpdatedAt()
	case carepackage.FieldPublished:
		return m.Published()
	case carepackage.FieldPublishedAt:
		return m.PublishedAt()
	case carepackage.FieldIsArchived:
		return m.IsArchived()
	case carepackage.FieldArchivedAt:
		return m.ArchivedAt()
	case carepackage.FieldTreatmentID:
		return m.TreatmentID()
	case carepackage.FieldHospitalID:
		return m.HospitalID()
	case carepackage.FieldNameEn:
		return m.NameEn()
	case carepackage.FieldNameAr:
		return m.NameAr()
	case carepackage.FieldSlug:
		return m.Slug()
	case carepackage.FieldDescriptionEn:
		return m.DescriptionEn()
	case carepackage.FieldDescriptionAr:
		return m.DescriptionAr()
	case carepackage.FieldPrice:
		return m.Price()
	case carepackage.FieldCurrency:
		return m.Currency()
	case carepackage.FieldDurationDays:
		return m.DurationDays()
	case carepackage.FieldInclusionsEn:
		return m.InclusionsEn()
	case carepackage.FieldInclusionsAr:
		return m.InclusionsAr()
	case carepackage.FieldExclusionsEn:
		return m.ExclusionsEn()
	case carepackage.FieldExclusionsAr:
		return m.ExclusionsAr()
	case carepackage.FieldFeatured:
		return m.Featured()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CarePackageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case carepackage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case carepackage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case carepackage.FieldPublished:
		return m.OldPublished(ctx)
	case carepackage.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case carepackage.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case carepackage.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case carepackage.FieldTreatmentID:
		return m.OldTreatmentID(ctx)
	case carepackage.FieldHospitalID:
		return m.OldHospitalID(ctx)
	case carepackage.FieldNameEn:
		return m.OldNameEn(ctx)
	case carepackage.FieldNameAr:
		return m.OldNameAr(ctx)
	case carepackage.FieldSlug:
		return m.OldSlug(ctx)
	case carepackage.FieldDescriptionEn:
		return m.OldDescriptionEn(ctx)
	case carepackage.FieldDescriptionAr:
		return m.OldDescriptionAr(ctx)
	case carepackage.FieldPrice:
		return m.OldPrice(ctx)
	case carepackage.FieldCurrency:
		return m.OldCurrency(ctx)
	case carepackage.FieldDurationDays:
		return m.OldDurationDays(ctx)
	case carepackage.FieldInclusionsEn:
		return m.OldInclusionsEn(ctx)
	case carepackage.FieldInclusionsAr:
		return m.OldInclusionsAr(ctx)
	case carepackage.FieldExclusionsEn:
		return m.OldExclusionsEn(ctx)
	case carepackage.FieldExclusionsAr:
		return m.OldExclusionsAr(ctx)
	case carepackage.FieldFeatured:
		return m.OldFeatured(ctx)
	}
	return nil, fmt.Errorf("unknown CarePackage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CarePackageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case carepackage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case carepackage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case carepackage.FieldPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublished(v)
		return nil
	case carepackage.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case carepackage.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case carepackage.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case carepackage.FieldTreatmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTreatmentID(v)
		return nil
	case carepackage.FieldHospitalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHospitalID(v)
		return nil
	case carepackage.FieldNameEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameEn(v)
		return nil
	case carepackage.FieldNameAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameAr(v)
		return nil
	case carepackage.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case carepackage.FieldDescriptionEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionEn(v)
		return nil
	case carepackage.FieldDescriptionAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionAr(v)
		return nil
	case carepackage.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case carepackage.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case carepackage.FieldDurationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationDays(v)
		return nil
	case carepackage.FieldInclusionsEn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInclusionsEn(v)
		return nil
	case carepackage.FieldInclusionsAr:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInclusionsAr(v)
		return nil
	case carepackage.FieldExclusionsEn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusionsEn(v)
		return nil
	case carepackage.FieldExclusionsAr:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusionsAr(v)
		return nil
	case carepackage.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	}
	return fmt.Errorf("unknown CarePackage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CarePackageMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, carepackage.FieldPrice)
	}
	if m.addduration_days != nil {
		fields = append(fields, carepackage.FieldDurationDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CarePackageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case carepackage.FieldPrice:
		return m.AddedPrice()
	case carepackage.FieldDurationDays:
		return m.AddedDurationDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CarePackageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case carepackage.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case carepackage.FieldDurationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationDays(v)
		return nil
	}
	return fmt.Errorf("unknown CarePackage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CarePackageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(carepackage.FieldPublishedAt) {
		fields = append(fields, carepackage.FieldPublishedAt)
	}
	if m.FieldCleared(carepackage.FieldArchivedAt) {
		fields = append(fields, carepackage.FieldArchivedAt)
	}
	if m.FieldCleared(carepackage.FieldDescriptionEn) {
		fields = append(fields, carepackage.FieldDescriptionEn)
	}
	if m.FieldCleared(carepackage.FieldDescriptionAr) {
		fields = append(fields, carepackage.FieldDescriptionAr)
	}
	if m.FieldCleared(carepackage.FieldDurationDays) {
		fields = append(fields, carepackage.FieldDurationDays)
	}
	if m.FieldCleared(carepackage.FieldInclusionsEn) {
		fields = append(fields, carepackage.FieldInclusionsEn)
	}
	if m.FieldCleared(carepackage.FieldInclusionsAr) {
		fields = append(fields, carepackage.FieldInclusionsAr)
	}
	if m.FieldCleared(carepackage.FieldExclusionsEn) {
		fields = append(fields, carepackage.FieldExclusionsEn)
	}
	if m.FieldCleared(carepackage.FieldExclusionsAr) {
		fields = append(fields, carepackage.FieldExclusionsAr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CarePackageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CarePackageMutation) ClearField(name string) error {
	switch name {
	case carepackage.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case carepackage.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case carepackage.FieldDescriptionEn:
		m.ClearDescriptionEn()
		return nil
	case carepackage.FieldDescriptionAr:
		m.ClearDescriptionAr()
		return nil
	case carepackage.FieldDurationDays:
		m.ClearDurationDays()
		return nil
	case carepackage.FieldInclusionsEn:
		m.ClearInclusionsEn()
		return nil
	case carepackage.FieldInclusionsAr:
		m.ClearInclusionsAr()
		return nil
	case carepackage.FieldExclusionsEn:
		m.ClearExclusionsEn()
		return nil
	case carepackage.FieldExclusionsAr:
		m.ClearExclusionsAr()
		return nil
	}
	return fmt.Errorf("unknown CarePackage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CarePackageMutation) ResetField(name string) error {
	switch name {
	case carepackage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case carepackage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case carepackage.FieldPublished:
		m.ResetPublished()
		return nil
	case carepackage.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case carepackage.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case carepackage.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case carepackage.FieldTreatmentID:
		m.ResetTreatmentID()
		return nil
	case carepackage.FieldHospitalID:
		m.ResetHospitalID()
		return nil
	case carepackage.FieldNameEn:
		m.ResetNameEn()
		return nil
	case carepackage.FieldNameAr:
		m.ResetNameAr()
		return nil
	case carepackage.FieldSlug:
		m.ResetSlug()
		return nil
	case carepackage.FieldDescriptionEn:
		m.ResetDescriptionEn()
		return nil
	case carepackage.FieldDescriptionAr:
		m.ResetDescriptionAr()
		return nil
	case carepackage.FieldPrice:
		m.ResetPrice()
		return nil
	case carepackage.FieldCurrency:
		m.ResetCurrency()
		return nil
	case carepackage.FieldDurationDays:
		m.ResetDurationDays()
		return nil
	case carepackage.FieldInclusionsEn:
		m.ResetInclusionsEn()
		return nil
	case carepackage.FieldInclusionsAr:
		m.ResetInclusionsAr()
		return nil
	case carepackage.FieldExclusionsEn:
		m.ResetExclusionsEn()
		return nil
	case carepackage.FieldExclusionsAr:
		m.ResetExclusionsAr()
		return nil
	case carepackage.FieldFeatured:
		m.ResetFeatured()
		return nil
	}
	return fmt.Errorf("unknown CarePackage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CarePackageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.treatment != nil {
		edges = append(edges, carepackage.EdgeTreatment)
	}
	if m.hospital != nil {
		edges = append(edges, carepackage.EdgeHospital)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CarePackageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case carepackage.EdgeTreatment:
		if id := m.treatment; id != nil {
			return []ent.Value{*id}
		}
	case carepackage.EdgeHospital:
		if id := m.hospital; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CarePackageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CarePackageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CarePackageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtreatment {
		edges = append(edges, carepackage.EdgeTreatment)
	}
	if m.clearedhospital {
		edges = append(edges, carepackage.EdgeHospital)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CarePackageMutation) EdgeCleared(name string) bool {
	switch name {
	case carepackage.EdgeTreatment:
		return m.clearedtreatment
	case carepackage.EdgeHospital:
		return m.clearedhospital
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CarePackageMutation) ClearEdge(name string) error {
	switch name {
	case carepackage.EdgeTreatment:
		m.ClearTreatment()
		return nil
	case carepackage.EdgeHospital:
		m.ClearHospital()
		return nil
	}
	return fmt.Errorf("unknown CarePackage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CarePackageMutation) ResetEdge(name string) error {
	switch name {
	case carepackage.EdgeTreatment:
		m.ResetTreatment()
		return nil
	case carepackage.EdgeHospital:
		m.ResetHospital()
		return nil
	}
	return fmt.Errorf("unknown CarePackage edge %s", name)
}

// ContentPageMutation represents an operation that mutates the ContentPage nodes in the graph.
type ContentPageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	published           *bool
	published_at        *time.Time
	is_archived         *bool
	archived_at         *time.Time
	kind                *contentpage.Kind
	title_en            *string
	title_ar            *string
	slug                *string
	excerpt_en          *string
	excerpt_ar          *string
	body_en             *content.Document
	body_ar             *content.Document
	meta_title_en       *string
	meta_title_ar       *string
	meta_description_en *string
	meta_description_ar *string
	cover_image         *string
	tags                *[]string
	appendtags          []string
	faq                 *[]content.FAQItem
	appendfaq           []content.FAQItem
	author_name         *string
	clearedFields       map[string]struct{}
	author              *uuid.UUID
	clearedauthor       bool
	done                bool
	oldValue            func(context.Context) (*ContentPage, error)
	predicates          []predicate.ContentPage
}

var _ ent.Mutation = (*ContentPageMutation)(nil)

// contentpageOption allows management of the mutation configuration using functional options.
type contentpageOption func(*ContentPageMutation)

// newContentPageMutation creates new mutation for the ContentPage entity.
func newContentPageMutation(c config, op Op, opts ...contentpageOption) *ContentPageMutation {
	m := &ContentPageMutation{
		config:        c,
		op:            op,
		typ:           TypeContentPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentPageID sets the ID field of the mutation.
func withContentPageID(id uuid.UUID) contentpageOption {
	return func(m *ContentPageMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentPage
		)
		m.oldValue = func(ctx context.Context) (*ContentPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentPage sets the old ContentPage of the mutation.
func withContentPage(node *ContentPage) contentpageOption {
	return func(m *ContentPageMutation) {
		m.oldValue = func(context.Context) (*ContentPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentPage entities.
func (m *ContentPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ContentPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContentPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContentPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContentPageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContentPageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContentPageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPublished sets the "published" field.
func (m *ContentPageMutation) SetPublished(b bool) {
	m.published = &b
}

// Published returns the value of the "published" field in the mutation.
func (m *ContentPageMutation) Published() (r bool, exists bool) {
	v := m.published
	if v == nil {
		return
	}
	return *v, true
}

// OldPublished returns the old "published" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublished: %w", err)
	}
	return oldValue.Published, nil
}

// ResetPublished resets all changes to the "published" field.
func (m *ContentPageMutation) ResetPublished() {
	m.published = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *ContentPageMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *ContentPageMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *ContentPageMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[contentpage.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *ContentPageMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *ContentPageMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, contentpage.FieldPublishedAt)
}

// SetIsArchived sets the "is_archived" field.
func (m *ContentPageMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *ContentPageMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *ContentPageMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *ContentPageMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *ContentPageMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *ContentPageMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[contentpage.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *ContentPageMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *ContentPageMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, contentpage.FieldArchivedAt)
}

// SetKind sets the "kind" field.
func (m *ContentPageMutation) SetKind(c contentpage.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ContentPageMutation) Kind() (r contentpage.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldKind(ctx context.Context) (v contentpage.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ContentPageMutation) ResetKind() {
	m.kind = nil
}

// SetTitleEn sets the "title_en" field.
func (m *ContentPageMutation) SetTitleEn(s string) {
	m.title_en = &s
}

// TitleEn returns the value of the "title_en" field in the mutation.
func (m *ContentPageMutation) TitleEn() (r string, exists bool) {
	v := m.title_en
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleEn returns the old "title_en" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldTitleEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleEn: %w", err)
	}
	return oldValue.TitleEn, nil
}

// ResetTitleEn resets all changes to the "title_en" field.
func (m *ContentPageMutation) ResetTitleEn() {
	m.title_en = nil
}

// SetTitleAr sets the "title_ar" field.
func (m *ContentPageMutation) SetTitleAr(s string) {
	m.title_ar = &s
}

// TitleAr returns the value of the "title_ar" field in the mutation.
func (m *ContentPageMutation) TitleAr() (r string, exists bool) {
	v := m.title_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleAr returns the old "title_ar" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldTitleAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleAr: %w", err)
	}
	return oldValue.TitleAr, nil
}

// ResetTitleAr resets all changes to the "title_ar" field.
func (m *ContentPageMutation) ResetTitleAr() {
	m.title_ar = nil
}

// SetSlug sets the "slug" field.
func (m *ContentPageMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ContentPageMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ContentPageMutation) ResetSlug() {
	m.slug = nil
}

// SetExcerptEn sets the "excerpt_en" field.
func (m *ContentPageMutation) SetExcerptEn(s string) {
	m.excerpt_en = &s
}

// ExcerptEn returns the value of the "excerpt_en" field in the mutation.
func (m *ContentPageMutation) ExcerptEn() (r string, exists bool) {
	v := m.excerpt_en
	if v == nil {
		return
	}
	return *v, true
}

// OldExcerptEn returns the old "excerpt_en" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldExcerptEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcerptEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcerptEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcerptEn: %w", err)
	}
	return oldValue.ExcerptEn, nil
}

// ClearExcerptEn clears the value of the "excerpt_en" field.
func (m *ContentPageMutation) ClearExcerptEn() {
	m.excerpt_en = nil
	m.clearedFields[contentpage.FieldExcerptEn] = struct{}{}
}

// ExcerptEnCleared returns if the "excerpt_en" field was cleared in this mutation.
func (m *ContentPageMutation) ExcerptEnCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldExcerptEn]
	return ok
}

// ResetExcerptEn resets all changes to the "excerpt_en" field.
func (m *ContentPageMutation) ResetExcerptEn() {
	m.excerpt_en = nil
	delete(m.clearedFields, contentpage.FieldExcerptEn)
}

// SetExcerptAr sets the "excerpt_ar" field.
func (m *ContentPageMutation) SetExcerptAr(s string) {
	m.excerpt_ar = &s
}

// ExcerptAr returns the value of the "excerpt_ar" field in the mutation.
func (m *ContentPageMutation) ExcerptAr() (r string, exists bool) {
	v := m.excerpt_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldExcerptAr returns the old "excerpt_ar" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldExcerptAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcerptAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcerptAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcerptAr: %w", err)
	}
	return oldValue.ExcerptAr, nil
}

// ClearExcerptAr clears the value of the "excerpt_ar" field.
func (m *ContentPageMutation) ClearExcerptAr() {
	m.excerpt_ar = nil
	m.clearedFields[contentpage.FieldExcerptAr] = struct{}{}
}

// ExcerptArCleared returns if the "excerpt_ar" field was cleared in this mutation.
func (m *ContentPageMutation) ExcerptArCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldExcerptAr]
	return ok
}

// ResetExcerptAr resets all changes to the "excerpt_ar" field.
func (m *ContentPageMutation) ResetExcerptAr() {
	m.excerpt_ar = nil
	delete(m.clearedFields, contentpage.FieldExcerptAr)
}

// SetBodyEn sets the "body_en" field.
func (m *ContentPageMutation) SetBodyEn(c content.Document) {
	m.body_en = &c
}

// BodyEn returns the value of the "body_en" field in the mutation.
func (m *ContentPageMutation) BodyEn() (r content.Document, exists bool) {
	v := m.body_en
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyEn returns the old "body_en" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldBodyEn(ctx context.Context) (v content.Document, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyEn: %w", err)
	}
	return oldValue.BodyEn, nil
}

// ClearBodyEn clears the value of the "body_en" field.
func (m *ContentPageMutation) ClearBodyEn() {
	m.body_en = nil
	m.clearedFields[contentpage.FieldBodyEn] = struct{}{}
}

// BodyEnCleared returns if the "body_en" field was cleared in this mutation.
func (m *ContentPageMutation) BodyEnCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldBodyEn]
	return ok
}

// ResetBodyEn resets all changes to the "body_en" field.
func (m *ContentPageMutation) ResetBodyEn() {
	m.body_en = nil
	delete(m.clearedFields, contentpage.FieldBodyEn)
}

// SetBodyAr sets the "body_ar" field.
func (m *ContentPageMutation) SetBodyAr(c content.Document) {
	m.body_ar = &c
}

// BodyAr returns the value of the "body_ar" field in the mutation.
func (m *ContentPageMutation) BodyAr() (r content.Document, exists bool) {
	v := m.body_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyAr returns the old "body_ar" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldBodyAr(ctx context.Context) (v content.Document, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyAr: %w", err)
	}
	return oldValue.BodyAr, nil
}

// ClearBodyAr clears the value of the "body_ar" field.
func (m *ContentPageMutation) ClearBodyAr() {
	m.body_ar = nil
	m.clearedFields[contentpage.FieldBodyAr] = struct{}{}
}

// BodyArCleared returns if the "body_ar" field was cleared in this mutation.
func (m *ContentPageMutation) BodyArCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldBodyAr]
	return ok
}

// ResetBodyAr resets all changes to the "body_ar" field.
func (m *ContentPageMutation) ResetBodyAr() {
	m.body_ar = nil
	delete(m.clearedFields, contentpage.FieldBodyAr)
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (m *ContentPageMutation) SetMetaTitleEn(s string) {
	m.meta_title_en = &s
}

// MetaTitleEn returns the value of the "meta_title_en" field in the mutation.
func (m *ContentPageMutation) MetaTitleEn() (r string, exists bool) {
	v := m.meta_title_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleEn returns the old "meta_title_en" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldMetaTitleEn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleEn: %w", err)
	}
	return oldValue.MetaTitleEn, nil
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (m *ContentPageMutation) ClearMetaTitleEn() {
	m.meta_title_en = nil
	m.clearedFields[contentpage.FieldMetaTitleEn] = struct{}{}
}

// MetaTitleEnCleared returns if the "meta_title_en" field was cleared in this mutation.
func (m *ContentPageMutation) MetaTitleEnCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldMetaTitleEn]
	return ok
}

// ResetMetaTitleEn resets all changes to the "meta_title_en" field.
func (m *ContentPageMutation) ResetMetaTitleEn() {
	m.meta_title_en = nil
	delete(m.clearedFields, contentpage.FieldMetaTitleEn)
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (m *ContentPageMutation) SetMetaTitleAr(s string) {
	m.meta_title_ar = &s
}

// MetaTitleAr returns the value of the "meta_title_ar" field in the mutation.
func (m *ContentPageMutation) MetaTitleAr() (r string, exists bool) {
	v := m.meta_title_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleAr returns the old "meta_title_ar" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldMetaTitleAr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleAr: %w", err)
	}
	return oldValue.MetaTitleAr, nil
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (m *ContentPageMutation) ClearMetaTitleAr() {
	m.meta_title_ar = nil
	m.clearedFields[contentpage.FieldMetaTitleAr] = struct{}{}
}

// MetaTitleArCleared returns if the "meta_title_ar" field was cleared in this mutation.
func (m *ContentPageMutation) MetaTitleArCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldMetaTitleAr]
	return ok
}

// ResetMetaTitleAr resets all changes to the "meta_title_ar" field.
func (m *ContentPageMutation) ResetMetaTitleAr() {
	m.meta_title_ar = nil
	delete(m.clearedFields, contentpage.FieldMetaTitleAr)
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (m *ContentPageMutation) SetMetaDescriptionEn(s string) {
	m.meta_description_en = &s
}

// MetaDescriptionEn returns the value of the "meta_description_en" field in the mutation.
func (m *ContentPageMutation) MetaDescriptionEn() (r string, exists bool) {
	v := m.meta_description_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionEn returns the old "meta_description_en" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldMetaDescriptionEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionEn: %w", err)
	}
	return oldValue.MetaDescriptionEn, nil
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (m *ContentPageMutation) ClearMetaDescriptionEn() {
	m.meta_description_en = nil
	m.clearedFields[contentpage.FieldMetaDescriptionEn] = struct{}{}
}

// MetaDescriptionEnCleared returns if the "meta_description_en" field was cleared in this mutation.
func (m *ContentPageMutation) MetaDescriptionEnCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldMetaDescriptionEn]
	return ok
}

// ResetMetaDescriptionEn resets all changes to the "meta_description_en" field.
func (m *ContentPageMutation) ResetMetaDescriptionEn() {
	m.meta_description_en = nil
	delete(m.clearedFields, contentpage.FieldMetaDescriptionEn)
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (m *ContentPageMutation) SetMetaDescriptionAr(s string) {
	m.meta_description_ar = &s
}

// MetaDescriptionAr returns the value of the "meta_description_ar" field in the mutation.
func (m *ContentPageMutation) MetaDescriptionAr() (r string, exists bool) {
	v := m.meta_description_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionAr returns the old "meta_description_ar" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldMetaDescriptionAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionAr: %w", err)
	}
	return oldValue.MetaDescriptionAr, nil
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (m *ContentPageMutation) ClearMetaDescriptionAr() {
	m.meta_description_ar = nil
	m.clearedFields[contentpage.FieldMetaDescriptionAr] = struct{}{}
}

// MetaDescriptionArCleared returns if the "meta_description_ar" field was cleared in this mutation.
func (m *ContentPageMutation) MetaDescriptionArCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldMetaDescriptionAr]
	return ok
}

// ResetMetaDescriptionAr resets all changes to the "meta_description_ar" field.
func (m *ContentPageMutation) ResetMetaDescriptionAr() {
	m.meta_description_ar = nil
	delete(m.clearedFields, contentpage.FieldMetaDescriptionAr)
}

// SetCoverImage sets the "cover_image" field.
func (m *ContentPageMutation) SetCoverImage(s string) {
	m.cover_image = &s
}

// CoverImage returns the value of the "cover_image" field in the mutation.
func (m *ContentPageMutation) CoverImage() (r string, exists bool) {
	v := m.cover_image
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverImage returns the old "cover_image" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldCoverImage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverImage: %w", err)
	}
	return oldValue.CoverImage, nil
}

// ClearCoverImage clears the value of the "cover_image" field.
func (m *ContentPageMutation) ClearCoverImage() {
	m.cover_image = nil
	m.clearedFields[contentpage.FieldCoverImage] = struct{}{}
}

// CoverImageCleared returns if the "cover_image" field was cleared in this mutation.
func (m *ContentPageMutation) CoverImageCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldCoverImage]
	return ok
}

// ResetCoverImage resets all changes to the "cover_image" field.
func (m *ContentPageMutation) ResetCoverImage() {
	m.cover_image = nil
	delete(m.clearedFields, contentpage.FieldCoverImage)
}

// SetTags sets the "tags" field.
func (m *ContentPageMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ContentPageMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ContentPageMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ContentPageMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ContentPageMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[contentpage.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ContentPageMutation) TagsCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ContentPageMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, contentpage.FieldTags)
}

// SetFaq sets the "faq" field.
func (m *ContentPageMutation) SetFaq(ci []content.FAQItem) {
	m.faq = &ci
	m.appendfaq = nil
}

// Faq returns the value of the "faq" field in the mutation.
func (m *ContentPageMutation) Faq() (r []content.FAQItem, exists bool) {
	v := m.faq
	if v == nil {
		return
	}
	return *v, true
}

// OldFaq returns the old "faq" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldFaq(ctx context.Context) (v []content.FAQItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaq: %w", err)
	}
	return oldValue.Faq, nil
}

// AppendFaq adds ci to the "faq" field.
func (m *ContentPageMutation) AppendFaq(ci []content.FAQItem) {
	m.appendfaq = append(m.appendfaq, ci...)
}

// AppendedFaq returns the list of values that were appended to the "faq" field in this mutation.
func (m *ContentPageMutation) AppendedFaq() ([]content.FAQItem, bool) {
	if len(m.appendfaq) == 0 {
		return nil, false
	}
	return m.appendfaq, true
}

// ClearFaq clears the value of the "faq" field.
func (m *ContentPageMutation) ClearFaq() {
	m.faq = nil
	m.appendfaq = nil
	m.clearedFields[contentpage.FieldFaq] = struct{}{}
}

// FaqCleared returns if the "faq" field was cleared in this mutation.
func (m *ContentPageMutation) FaqCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldFaq]
	return ok
}

// ResetFaq resets all changes to the "faq" field.
func (m *ContentPageMutation) ResetFaq() {
	m.faq = nil
	m.appendfaq = nil
	delete(m.clearedFields, contentpage.FieldFaq)
}

// SetAuthorName sets the "author_name" field.
func (m *ContentPageMutation) SetAuthorName(s string) {
	m.author_name = &s
}

// AuthorName returns the value of the "author_name" field in the mutation.
func (m *ContentPageMutation) AuthorName() (r string, exists bool) {
	v := m.author_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorName returns the old "author_name" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldAuthorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorName: %w", err)
	}
	return oldValue.AuthorName, nil
}

// ClearAuthorName clears the value of the "author_name" field.
func (m *ContentPageMutation) ClearAuthorName() {
	m.author_name = nil
	m.clearedFields[contentpage.FieldAuthorName] = struct{}{}
}

// AuthorNameCleared returns if the "author_name" field was cleared in this mutation.
func (m *ContentPageMutation) AuthorNameCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldAuthorName]
	return ok
}

// ResetAuthorName resets all changes to the "author_name" field.
func (m *ContentPageMutation) ResetAuthorName() {
	m.author_name = nil
	delete(m.clearedFields, contentpage.FieldAuthorName)
}

// SetAuthorID sets the "author_id" field.
func (m *ContentPageMutation) SetAuthorID(u uuid.UUID) {
	m.author = &u
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *ContentPageMutation) AuthorID() (r uuid.UUID, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the ContentPage entity.
// If the ContentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentPageMutation) OldAuthorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ClearAuthorID clears the value of the "author_id" field.
func (m *ContentPageMutation) ClearAuthorID() {
	m.author = nil
	m.clearedFields[contentpage.FieldAuthorID] = struct{}{}
}

// AuthorIDCleared returns if the "author_id" field was cleared in this mutation.
func (m *ContentPageMutation) AuthorIDCleared() bool {
	_, ok := m.clearedFields[contentpage.FieldAuthorID]
	return ok
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *ContentPageMutation) ResetAuthorID() {
	m.author = nil
	delete(m.clearedFields, contentpage.FieldAuthorID)
}

// ClearAuthor clears the "author" edge to the User entity.
func (m *ContentPageMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[contentpage.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the User entity was cleared.
func (m *ContentPageMutation) AuthorCleared() bool {
	return m.AuthorIDCleared() || m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *ContentPageMutation) AuthorIDs() (ids []uuid.UUID) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *ContentPageMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// Where appends a list predicates to the ContentPageMutation builder.
func (m *ContentPageMutation) Where(ps ...predicate.ContentPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentPage).
func (m *ContentPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentPageMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.created_at != nil {
		fields = append(fields, contentpage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contentpage.FieldUpdatedAt)
	}
	if m.published != nil {
		fields = append(fields, contentpage.FieldPublished)
	}
	if m.published_at != nil {
		fields = append(fields, contentpage.FieldPublishedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, contentpage.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, contentpage.FieldArchivedAt)
	}
	if m.kind != nil {
		fields = append(fields, contentpage.FieldKind)
	}
	if m.title_en != nil {
		fields = append(fields, contentpage.FieldTitleEn)
	}
	if m.title_ar != nil {
		fields = append(fields, contentpage.FieldTitleAr)
	}
	if m.slug != nil {
		fields = append(fields, contentpage.FieldSlug)
	}
	if m.excerpt_en != nil {
		fields = append(fields, contentpage.FieldExcerptEn)
	}
	if m.excerpt_ar != nil {
		fields = append(fields, contentpage.FieldExcerptAr)
	}
	if m.body_en != nil {
		fields = append(fields, contentpage.FieldBodyEn)
	}
	if m.body_ar != nil {
		fields = append(fields, contentpage.FieldBodyAr)
	}
	if m.meta_title_en != nil {
		fields = append(fields, contentpage.FieldMetaTitleEn)
	}
	if m.meta_title_ar != nil {
		fields = append(fields, contentpage.FieldMetaTitleAr)
	}
	if m.meta_description_en != nil {
		fields = append(fields, contentpage.FieldMetaDescriptionEn)
	}
	if m.meta_description_ar != nil {
		fields = append(fields, contentpage.FieldMetaDescriptionAr)
	}
	if m.cover_image != nil {
		fields = append(fields, contentpage.FieldCoverImage)
	}
	if m.tags != nil {
		fields = append(fields, contentpage.FieldTags)
	}
	if m.faq != nil {
		fields = append(fields, contentpage.FieldFaq)
	}
	if m.author_name != nil {
		fields = append(fields, contentpage.FieldAuthorName)
	}
	if m.author != nil {
		fields = append(fields, contentpage.FieldAuthorID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentpage.FieldCreatedAt:
		return m.CreatedAt()
	case contentpage.FieldUpdatedAt:
		return m.UpdatedAt()
	case contentpage.FieldPublished:
		return m.Published()
	case contentpage.FieldPublishedAt:
		return m.PublishedAt()
	case contentpage.FieldIsArchived:
		return m.IsArchived()
	case contentpage.FieldArchivedAt:
		return m.ArchivedAt()
	case contentpage.FieldKind:
		return m.Kind()
	case contentpage.FieldTitleEn:
		return m.TitleEn()
	case contentpage.FieldTitleAr:
		return m.TitleAr()
	case contentpage.FieldSlug:
		return m.Slug()
	case contentpage.FieldExcerptEn:
		return m.ExcerptEn()
	case contentpage.FieldExcerptAr:
		return m.ExcerptAr()
	case contentpage.FieldBodyEn:
		return m.BodyEn()
	case contentpage.FieldBodyAr:
		return m.BodyAr()
	case contentpage.FieldMetaTitleEn:
		return m.MetaTitleEn()
	case contentpage.FieldMetaTitleAr:
		return m.MetaTitleAr()
	case contentpage.FieldMetaDescriptionEn:
		return m.MetaDescriptionEn()
	case contentpage.FieldMetaDescriptionAr:
		return m.MetaDescriptionAr()
	case contentpage.FieldCoverImage:
		return m.CoverImage()
	case contentpage.FieldTags:
		return m.Tags()
	case contentpage.FieldFaq:
		return m.Faq()
	case contentpage.FieldAuthorName:
		return m.AuthorName()
	case contentpage.FieldAuthorID:
		return m.AuthorID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contentpage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case contentpage.FieldPublished:
		return m.OldPublished(ctx)
	case contentpage.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case contentpage.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case contentpage.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case contentpage.FieldKind:
		return m.OldKind(ctx)
	case contentpage.FieldTitleEn:
		return m.OldTitleEn(ctx)
	case contentpage.FieldTitleAr:
		return m.OldTitleAr(ctx)
	case contentpage.FieldSlug:
		return m.OldSlug(ctx)
	case contentpage.FieldExcerptEn:
		return m.OldExcerptEn(ctx)
	case contentpage.FieldExcerptAr:
		return m.OldExcerptAr(ctx)
	case contentpage.FieldBodyEn:
		return m.OldBodyEn(ctx)
	case contentpage.FieldBodyAr:
		return m.OldBodyAr(ctx)
	case contentpage.FieldMetaTitleEn:
		return m.OldMetaTitleEn(ctx)
	case contentpage.FieldMetaTitleAr:
		return m.OldMetaTitleAr(ctx)
	case contentpage.FieldMetaDescriptionEn:
		return m.OldMetaDescriptionEn(ctx)
	case contentpage.FieldMetaDescriptionAr:
		return m.OldMetaDescriptionAr(ctx)
	case contentpage.FieldCoverImage:
		return m.OldCoverImage(ctx)
	case contentpage.FieldTags:
		return m.OldTags(ctx)
	case contentpage.FieldFaq:
		return m.OldFaq(ctx)
	case contentpage.FieldAuthorName:
		return m.OldAuthorName(ctx)
	case contentpage.FieldAuthorID:
		return m.OldAuthorID(ctx)
	}
	return nil, fmt.Errorf("unknown ContentPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contentpage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case contentpage.FieldPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublished(v)
		return nil
	case contentpage.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case contentpage.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case contentpage.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case contentpage.FieldKind:
		v, ok := value.(contentpage.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case contentpage.FieldTitleEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleEn(v)
		return nil
	case contentpage.FieldTitleAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleAr(v)
		return nil
	case contentpage.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case contentpage.FieldExcerptEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcerptEn(v)
		return nil
	case contentpage.FieldExcerptAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcerptAr(v)
		return nil
	case contentpage.FieldBodyEn:
		v, ok := value.(content.Document)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyEn(v)
		return nil
	case contentpage.FieldBodyAr:
		v, ok := value.(content.Document)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyAr(v)
		return nil
	case contentpage.FieldMetaTitleEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleEn(v)
		return nil
	case contentpage.FieldMetaTitleAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleAr(v)
		return nil
	case contentpage.FieldMetaDescriptionEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionEn(v)
		return nil
	case contentpage.FieldMetaDescriptionAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionAr(v)
		return nil
	case contentpage.FieldCoverImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverImage(v)
		return nil
	case contentpage.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case contentpage.FieldFaq:
		v, ok := value.([]content.FAQItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaq(v)
		return nil
	case contentpage.FieldAuthorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorName(v)
		return nil
	case contentpage.FieldAuthorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	}
	return fmt.Errorf("unknown ContentPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentPageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentPageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContentPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contentpage.FieldPublishedAt) {
		fields = append(fields, contentpage.FieldPublishedAt)
	}
	if m.FieldCleared(contentpage.FieldArchivedAt) {
		fields = append(fields, contentpage.FieldArchivedAt)
	}
	if m.FieldCleared(contentpage.FieldExcerptEn) {
		fields = append(fields, contentpage.FieldExcerptEn)
	}
	if m.FieldCleared(contentpage.FieldExcerptAr) {
		fields = append(fields, contentpage.FieldExcerptAr)
	}
	if m.FieldCleared(contentpage.FieldBodyEn) {
		fields = append(fields, contentpage.FieldBodyEn)
	}
	if m.FieldCleared(contentpage.FieldBodyAr) {
		fields = append(fields, contentpage.FieldBodyAr)
	}
	if m.FieldCleared(contentpage.FieldMetaTitleEn) {
		fields = append(fields, contentpage.FieldMetaTitleEn)
	}
	if m.FieldCleared(contentpage.FieldMetaTitleAr) {
		fields = append(fields, contentpage.FieldMetaTitleAr)
	}
	if m.FieldCleared(contentpage.FieldMetaDescriptionEn) {
		fields = append(fields, contentpage.FieldMetaDescriptionEn)
	}
	if m.FieldCleared(contentpage.FieldMetaDescriptionAr) {
		fields = append(fields, contentpage.FieldMetaDescriptionAr)
	}
	if m.FieldCleared(contentpage.FieldCoverImage) {
		fields = append(fields, contentpage.FieldCoverImage)
	}
	if m.FieldCleared(contentpage.FieldTags) {
		fields = append(fields, contentpage.FieldTags)
	}
	if m.FieldCleared(contentpage.FieldFaq) {
		fields = append(fields, contentpage.FieldFaq)
	}
	if m.FieldCleared(contentpage.FieldAuthorName) {
		fields = append(fields, contentpage.FieldAuthorName)
	}
	if m.FieldCleared(contentpage.FieldAuthorID) {
		fields = append(fields, contentpage.FieldAuthorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentPageMutation) ClearField(name string) error {
	switch name {
	case contentpage.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case contentpage.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case contentpage.FieldExcerptEn:
		m.ClearExcerptEn()
		return nil
	case contentpage.FieldExcerptAr:
		m.ClearExcerptAr()
		return nil
	case contentpage.FieldBodyEn:
		m.ClearBodyEn()
		return nil
	case contentpage.FieldBodyAr:
		m.ClearBodyAr()
		return nil
	case contentpage.FieldMetaTitleEn:
		m.ClearMetaTitleEn()
		return nil
	case contentpage.FieldMetaTitleAr:
		m.ClearMetaTitleAr()
		return nil
	case contentpage.FieldMetaDescriptionEn:
		m.ClearMetaDescriptionEn()
		return nil
	case contentpage.FieldMetaDescriptionAr:
		m.ClearMetaDescriptionAr()
		return nil
	case contentpage.FieldCoverImage:
		m.ClearCoverImage()
		return nil
	case contentpage.FieldTags:
		m.ClearTags()
		return nil
	case contentpage.FieldFaq:
		m.ClearFaq()
		return nil
	case contentpage.FieldAuthorName:
		m.ClearAuthorName()
		return nil
	case contentpage.FieldAuthorID:
		m.ClearAuthorID()
		return nil
	}
	return fmt.Errorf("unknown ContentPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentPageMutation) ResetField(name string) error {
	switch name {
	case contentpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contentpage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case contentpage.FieldPublished:
		m.ResetPublished()
		return nil
	case contentpage.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case contentpage.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case contentpage.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case contentpage.FieldKind:
		m.ResetKind()
		return nil
	case contentpage.FieldTitleEn:
		m.ResetTitleEn()
		return nil
	case contentpage.FieldTitleAr:
		m.ResetTitleAr()
		return nil
	case contentpage.FieldSlug:
		m.ResetSlug()
		return nil
	case contentpage.FieldExcerptEn:
		m.ResetExcerptEn()
		return nil
	case contentpage.FieldExcerptAr:
		m.ResetExcerptAr()
		return nil
	case contentpage.FieldBodyEn:
		m.ResetBodyEn()
		return nil
	case contentpage.FieldBodyAr:
		m.ResetBodyAr()
		return nil
	case contentpage.FieldMetaTitleEn:
		m.ResetMetaTitleEn()
		return nil
	case contentpage.FieldMetaTitleAr:
		m.ResetMetaTitleAr()
		return nil
	case contentpage.FieldMetaDescriptionEn:
		m.ResetMetaDescriptionEn()
		return nil
	case contentpage.FieldMetaDescriptionAr:
		m.ResetMetaDescriptionAr()
		return nil
	case contentpage.FieldCoverImage:
		m.ResetCoverImage()
		return nil
	case contentpage.FieldTags:
		m.ResetTags()
		return nil
	case contentpage.FieldFaq:
		m.ResetFaq()
		return nil
	case contentpage.FieldAuthorName:
		m.ResetAuthorName()
		return nil
	case contentpage.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	}
	return fmt.Errorf("unknown ContentPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.author != nil {
		edges = append(edges, contentpage.EdgeAuthor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contentpage.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentPageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedauthor {
		edges = append(edges, contentpage.EdgeAuthor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentPageMutation) EdgeCleared(name string) bool {
	switch name {
	case contentpage.EdgeAuthor:
		return m.clearedauthor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentPageMutation) ClearEdge(name string) error {
	switch name {
	case contentpage.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown ContentPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentPageMutation) ResetEdge(name string) error {
	switch name {
	case contentpage.EdgeAuthor:
		m.ResetAuthor()
		return nil
	}
	return fmt.Errorf("unknown ContentPage edge %s", name)
}

// DoctorMutation represents an operation that mutates the Doctor nodes in the graph.
type DoctorMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	published              *bool
	published_at           *time.Time
	is_archived            *bool
	archived_at            *time.Time
	name_en                *string
	name_ar                *string
	slug                   *string
	title_en               *string
	title_ar               *string
	specialties_en         *[]string
	appendspecialties_en   []string
	specialties_ar         *[]string
	appendspecialties_ar   []string
	qualifications         *[]string
	appendqualifications   []string
	experience_years       *int
	addexperience_years    *int
	languages              *[]string
	appendlanguages        []string
	bio_en                 *string
	bio_ar                 *string
	image                  *string
	consultation_fee       *float64
	addconsultation_fee    *float64
	telemedicine_available *bool
	meta_title_en          *string
	meta_title_ar          *string
	meta_description_en    *string
	meta_description_ar    *string
	clearedFields          map[string]struct{}
	hospital               *uuid.UUID
	clearedhospital        bool
	done                   bool
	oldValue               func(context.Context) (*Doctor, error)
	predicates             []predicate.Doctor
}

var _ ent.Mutation = (*DoctorMutation)(nil)

// doctorOption allows management of the mutation configuration using functional options.
type doctorOption func(*DoctorMutation)

// newDoctorMutation creates new mutation for the Doctor entity.
func newDoctorMutation(c config, op Op, opts ...doctorOption) *DoctorMutation {
	m := &DoctorMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorID sets the ID field of the mutation.
func withDoctorID(id uuid.UUID) doctorOption {
	return func(m *DoctorMutation) {
		var (
			err   error
			once  sync.Once
			value *Doctor
		)
		m.oldValue = func(ctx context.Context) (*Doctor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Doctor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctor sets the old Doctor of the mutation.
func withDoctor(node *Doctor) doctorOption {
	return func(m *DoctorMutation) {
		m.oldValue = func(context.Context) (*Doctor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Doctor entities.
func (m *DoctorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Doctor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPublished sets the "published" field.
func (m *DoctorMutation) SetPublished(b bool) {
	m.published = &b
}

// Published returns the value of the "published" field in the mutation.
func (m *DoctorMutation) Published() (r bool, exists bool) {
	v := m.published
	if v == nil {
		return
	}
	return *v, true
}

// OldPublished returns the old "published" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublished: %w", err)
	}
	return oldValue.Published, nil
}

// ResetPublished resets all changes to the "published" field.
func (m *DoctorMutation) ResetPublished() {
	m.published = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *DoctorMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *DoctorMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *DoctorMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[doctor.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *DoctorMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[doctor.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *DoctorMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, doctor.FieldPublishedAt)
}

// SetIsArchived sets the "is_archived" field.
func (m *DoctorMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *DoctorMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *DoctorMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *DoctorMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *DoctorMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *DoctorMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[doctor.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *DoctorMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[doctor.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *DoctorMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, doctor.FieldArchivedAt)
}

// SetHospitalID sets the "hospital_id" field.
func (m *DoctorMutation) SetHospitalID(u uuid.UUID) {
	m.hospital = &u
}

// HospitalID returns the value of the "hospital_id" field in the mutation.
func (m *DoctorMutation) HospitalID() (r uuid.UUID, exists bool) {
	v := m.hospital
	if v == nil {
		return
	}
	return *v, true
}

// OldHospitalID returns the old "hospital_id" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldHospitalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHospitalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHospitalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHospitalID: %w", err)
	}
	return oldValue.HospitalID, nil
}

// ResetHospitalID resets all changes to the "hospital_id" field.
func (m *DoctorMutation) ResetHospitalID() {
	m.hospital = nil
}

// SetNameEn sets the "name_en" field.
func (m *DoctorMutation) SetNameEn(s string) {
	m.name_en = &s
}

// NameEn returns the value of the "name_en" field in the mutation.
func (m *DoctorMutation) NameEn() (r string, exists bool) {
	v := m.name_en
	if v == nil {
		return
	}
	return *v, true
}

// OldNameEn returns the old "name_en" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldNameEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameEn: %w", err)
	}
	return oldValue.NameEn, nil
}

// ResetNameEn resets all changes to the "name_en" field.
func (m *DoctorMutation) ResetNameEn() {
	m.name_en = nil
}

// SetNameAr sets the "name_ar" field.
func (m *DoctorMutation) SetNameAr(s string) {
	m.name_ar = &s
}

// NameAr returns the value of the "name_ar" field in the mutation.
func (m *DoctorMutation) NameAr() (r string, exists bool) {
	v := m.name_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldNameAr returns the old "name_ar" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldNameAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameAr: %w", err)
	}
	return oldValue.NameAr, nil
}

// ResetNameAr resets all changes to the "name_ar" field.
func (m *DoctorMutation) ResetNameAr() {
	m.name_ar = nil
}

// SetSlug sets the "slug" field.
func (m *DoctorMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *DoctorMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *DoctorMutation) ResetSlug() {
	m.slug = nil
}

// SetTitleEn sets the "title_en" field.
func (m *DoctorMutation) SetTitleEn(s string) {
	m.title_en = &s
}

// TitleEn returns the value of the "title_en" field in the mutation.
func (m *DoctorMutation) TitleEn() (r string, exists bool) {
	v := m.title_en
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleEn returns the old "title_en" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldTitleEn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleEn: %w", err)
	}
	return oldValue.TitleEn, nil
}

// ClearTitleEn clears the value of the "title_en" field.
func (m *DoctorMutation) ClearTitleEn() {
	m.title_en = nil
	m.clearedFields[doctor.FieldTitleEn] = struct{}{}
}

// TitleEnCleared returns if the "title_en" field was cleared in this mutation.
func (m *DoctorMutation) TitleEnCleared() bool {
	_, ok := m.clearedFields[doctor.FieldTitleEn]
	return ok
}

// ResetTitleEn resets all changes to the "title_en" field.
func (m *DoctorMutation) ResetTitleEn() {
	m.title_en = nil
	delete(m.clearedFields, doctor.FieldTitleEn)
}

// SetTitleAr sets the "title_ar" field.
func (m *DoctorMutation) SetTitleAr(s string) {
	m.title_ar = &s
}

// TitleAr returns the value of the "title_ar" field in the mutation.
func (m *DoctorMutation) TitleAr() (r string, exists bool) {
	v := m.title_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleAr returns the old "title_ar" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldTitleAr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleAr: %w", err)
	}
	return oldValue.TitleAr, nil
}

// ClearTitleAr clears the value of the "title_ar" field.
func (m *DoctorMutation) ClearTitleAr() {
	m.title_ar = nil
	m.clearedFields[doctor.FieldTitleAr] = struct{}{}
}

// TitleArCleared returns if the "title_ar" field was cleared in this mutation.
func (m *DoctorMutation) TitleArCleared() bool {
	_, ok := m.clearedFields[doctor.FieldTitleAr]
	return ok
}

// ResetTitleAr resets all changes to the "title_ar" field.
func (m *DoctorMutation) ResetTitleAr() {
	m.title_ar = nil
	delete(m.clearedFields, doctor.FieldTitleAr)
}

// SetSpecialtiesEn sets the "specialties_en" field.
func (m *DoctorMutation) SetSpecialtiesEn(s []string) {
	m.specialties_en = &s
	m.appendspecialties_en = nil
}

// SpecialtiesEn returns the value of the "specialties_en" field in the mutation.
func (m *DoctorMutation) SpecialtiesEn() (r []string, exists bool) {
	v := m.specialties_en
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialtiesEn returns the old "specialties_en" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldSpecialtiesEn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialtiesEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialtiesEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialtiesEn: %w", err)
	}
	return oldValue.SpecialtiesEn, nil
}

// AppendSpecialtiesEn adds s to the "specialties_en" field.
func (m *DoctorMutation) AppendSpecialtiesEn(s []string) {
	m.appendspecialties_en = append(m.appendspecialties_en, s...)
}

// AppendedSpecialtiesEn returns the list of values that were appended to the "specialties_en" field in this mutation.
func (m *DoctorMutation) AppendedSpecialtiesEn() ([]string, bool) {
	if len(m.appendspecialties_en) == 0 {
		return nil, false
	}
	return m.appendspecialties_en, true
}

// ClearSpecialtiesEn clears the value of the "specialties_en" field.
func (m *DoctorMutation) ClearSpecialtiesEn() {
	m.specialties_en = nil
	m.appendspecialties_en = nil
	m.clearedFields[doctor.FieldSpecialtiesEn] = struct{}{}
}

// SpecialtiesEnCleared returns if the "specialties_en" field was cleared in this mutation.
func (m *DoctorMutation) SpecialtiesEnCleared() bool {
	_, ok := m.clearedFields[doctor.FieldSpecialtiesEn]
	return ok
}

// ResetSpecialtiesEn resets all changes to the "specialties_en" field.
func (m *DoctorMutation) ResetSpecialtiesEn() {
	m.specialties_en = nil
	m.appendspecialties_en = nil
	delete(m.clearedFields, doctor.FieldSpecialtiesEn)
}

// SetSpecialtiesAr sets the "specialties_ar" field.
func (m *DoctorMutation) SetSpecialtiesAr(s []string) {
	m.specialties_ar = &s
	m.appendspecialties_ar = nil
}

// SpecialtiesAr returns the value of the "specialties_ar" field in the mutation.
func (m *DoctorMutation) SpecialtiesAr() (r []string, exists bool) {
	v := m.specialties_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialtiesAr returns the old "specialties_ar" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldSpecialtiesAr(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialtiesAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialtiesAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialtiesAr: %w", err)
	}
	return oldValue.SpecialtiesAr, nil
}

// AppendSpecialtiesAr adds s to the "specialties_ar" field.
func (m *DoctorMutation) AppendSpecialtiesAr(s []string) {
	m.appendspecialties_ar = append(m.appendspecialties_ar, s...)
}

// AppendedSpecialtiesAr returns the list of values that were appended to the "specialties_ar" field in this mutation.
func (m *DoctorMutation) AppendedSpecialtiesAr() ([]string, bool) {
	if len(m.appendspecialties_ar) == 0 {
		return nil, false
	}
	return m.appendspecialties_ar, true
}

// ClearSpecialtiesAr clears the value of the "specialties_ar" field.
func (m *DoctorMutation) ClearSpecialtiesAr() {
	m.specialties_ar = nil
	m.appendspecialties_ar = nil
	m.clearedFields[doctor.FieldSpecialtiesAr] = struct{}{}
}

// SpecialtiesArCleared returns if the "specialties_ar" field was cleared in this mutation.
func (m *DoctorMutation) SpecialtiesArCleared() bool {
	_, ok := m.clearedFields[doctor.FieldSpecialtiesAr]
	return ok
}

// ResetSpecialtiesAr resets all changes to the "specialties_ar" field.
func (m *DoctorMutation) ResetSpecialtiesAr() {
	m.specialties_ar = nil
	m.appendspecialties_ar = nil
	delete(m.clearedFields, doctor.FieldSpecialtiesAr)
}

// SetQualifications sets the "qualifications" field.
func (m *DoctorMutation) SetQualifications(s []string) {
	m.qualifications = &s
	m.appendqualifications = nil
}

// Qualifications returns the value of the "qualifications" field in the mutation.
func (m *DoctorMutation) Qualifications() (r []string, exists bool) {
	v := m.qualifications
	if v == nil {
		return
	}
	return *v, true
}

// OldQualifications returns the old "qualifications" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldQualifications(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualifications: %w", err)
	}
	return oldValue.Qualifications, nil
}

// AppendQualifications adds s to the "qualifications" field.
func (m *DoctorMutation) AppendQualifications(s []string) {
	m.appendqualifications = append(m.appendqualifications, s...)
}

// AppendedQualifications returns the list of values that were appended to the "qualifications" field in this mutation.
func (m *DoctorMutation) AppendedQualifications() ([]string, bool) {
	if len(m.appendqualifications) == 0 {
		return nil, false
	}
	return m.appendqualifications, true
}

// ClearQualifications clears the value of the "qualifications" field.
func (m *DoctorMutation) ClearQualifications() {
	m.qualifications = nil
	m.appendqualifications = nil
	m.clearedFields[doctor.FieldQualifications] = struct{}{}
}

// QualificationsCleared returns if the "qualifications" field was cleared in this mutation.
func (m *DoctorMutation) QualificationsCleared() bool {
	_, ok := m.clearedFields[doctor.FieldQualifications]
	return ok
}

// ResetQualifications resets all changes to the "qualifications" field.
func (m *DoctorMutation) ResetQualifications() {
	m.qualifications = nil
	m.appendqualifications = nil
	delete(m.clearedFields, doctor.FieldQualifications)
}

// SetExperienceYears sets the "experience_years" field.
func (m *DoctorMutation) SetExperienceYears(i int) {
	m.experience_years = &i
	m.addexperience_years = nil
}

// ExperienceYears returns the value of the "experience_years" field in the mutation.
func (m *DoctorMutation) ExperienceYears() (r int, exists bool) {
	v := m.experience_years
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceYears returns the old "experience_years" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldExperienceYears(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceYears is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceYears requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceYears: %w", err)
	}
	return oldValue.ExperienceYears, nil
}

// AddExperienceYears adds i to the "experience_years" field.
func (m *DoctorMutation) AddExperienceYears(i int) {
	if m.addexperience_years != nil {
		*m.addexperience_years += i
	} else {
		m.addexperience_years = &i
	}
}

// AddedExperienceYears returns the value that was added to the "experience_years" field in this mutation.
func (m *DoctorMutation) AddedExperienceYears() (r int, exists bool) {
	v := m.addexperience_years
	if v == nil {
		return
	}
	return *v, true
}

// ResetExperienceYears resets all changes to the "experience_years" field.
func (m *DoctorMutation) ResetExperienceYears() {
	m.experience_years = nil
	m.addexperience_years = nil
}

// SetLanguages sets the "languages" field.
func (m *DoctorMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *DoctorMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *DoctorMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *DoctorMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ClearLanguages clears the value of the "languages" field.
func (m *DoctorMutation) ClearLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	m.clearedFields[doctor.FieldLanguages] = struct{}{}
}

// LanguagesCleared returns if the "languages" field was cleared in this mutation.
func (m *DoctorMutation) LanguagesCleared() bool {
	_, ok := m.clearedFields[doctor.FieldLanguages]
	return ok
}

// ResetLanguages resets all changes to the "languages" field.
func (m *DoctorMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	delete(m.clearedFields, doctor.FieldLanguages)
}

// SetBioEn sets the "bio_en" field.
func (m *DoctorMutation) SetBioEn(s string) {
	m.bio_en = &s
}

// BioEn returns the value of the "bio_en" field in the mutation.
func (m *DoctorMutation) BioEn() (r string, exists bool) {
	v := m.bio_en
	if v == nil {
		return
	}
	return *v, true
}

// OldBioEn returns the old "bio_en" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldBioEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBioEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBioEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBioEn: %w", err)
	}
	return oldValue.BioEn, nil
}

// ClearBioEn clears the value of the "bio_en" field.
func (m *DoctorMutation) ClearBioEn() {
	m.bio_en = nil
	m.clearedFields[doctor.FieldBioEn] = struct{}{}
}

// BioEnCleared returns if the "bio_en" field was cleared in this mutation.
func (m *DoctorMutation) BioEnCleared() bool {
	_, ok := m.clearedFields[doctor.FieldBioEn]
	return ok
}

// ResetBioEn resets all changes to the "bio_en" field.
func (m *DoctorMutation) ResetBioEn() {
	m.bio_en = nil
	delete(m.clearedFields, doctor.FieldBioEn)
}

// SetBioAr sets the "bio_ar" field.
func (m *DoctorMutation) SetBioAr(s string) {
	m.bio_ar = &s
}

// BioAr returns the value of the "bio_ar" field in the mutation.
func (m *DoctorMutation) BioAr() (r string, exists bool) {
	v := m.bio_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldBioAr returns the old "bio_ar" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldBioAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBioAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBioAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBioAr: %w", err)
	}
	return oldValue.BioAr, nil
}

// ClearBioAr clears the value of the "bio_ar" field.
func (m *DoctorMutation) ClearBioAr() {
	m.bio_ar = nil
	m.clearedFields[doctor.FieldBioAr] = struct{}{}
}

// BioArCleared returns if the "bio_ar" field was cleared in this mutation.
func (m *DoctorMutation) BioArCleared() bool {
	_, ok := m.clearedFields[doctor.FieldBioAr]
	return ok
}

// ResetBioAr resets all changes to the "bio_ar" field.
func (m *DoctorMutation) ResetBioAr() {
	m.bio_ar = nil
	delete(m.clearedFields, doctor.FieldBioAr)
}

// SetImage sets the "image" field.
func (m *DoctorMutation) SetImage(s string) {
	m.image = &s
}

// Image returns the value of the "image" field in the mutation.
func (m *DoctorMutation) Image() (r string, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImage returns the old "image" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldImage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImage: %w", err)
	}
	return oldValue.Image, nil
}

// ClearImage clears the value of the "image" field.
func (m *DoctorMutation) ClearImage() {
	m.image = nil
	m.clearedFields[doctor.FieldImage] = struct{}{}
}

// ImageCleared returns if the "image" field was cleared in this mutation.
func (m *DoctorMutation) ImageCleared() bool {
	_, ok := m.clearedFields[doctor.FieldImage]
	return ok
}

// ResetImage resets all changes to the "image" field.
func (m *DoctorMutation) ResetImage() {
	m.image = nil
	delete(m.clearedFields, doctor.FieldImage)
}

// SetConsultationFee sets the "consultation_fee" field.
func (m *DoctorMutation) SetConsultationFee(f float64) {
	m.consultation_fee = &f
	m.addconsultation_fee = nil
}

// ConsultationFee returns the value of the "consultation_fee" field in the mutation.
func (m *DoctorMutation) ConsultationFee() (r float64, exists bool) {
	v := m.consultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationFee returns the old "consultation_fee" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldConsultationFee(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationFee: %w", err)
	}
	return oldValue.ConsultationFee, nil
}

// AddConsultationFee adds f to the "consultation_fee" field.
func (m *DoctorMutation) AddConsultationFee(f float64) {
	if m.addconsultation_fee != nil {
		*m.addconsultation_fee += f
	} else {
		m.addconsultation_fee = &f
	}
}

// AddedConsultationFee returns the value that was added to the "consultation_fee" field in this mutation.
func (m *DoctorMutation) AddedConsultationFee() (r float64, exists bool) {
	v := m.addconsultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// ClearConsultationFee clears the value of the "consultation_fee" field.
func (m *DoctorMutation) ClearConsultationFee() {
	m.consultation_fee = nil
	m.addconsultation_fee = nil
	m.clearedFields[doctor.FieldConsultationFee] = struct{}{}
}

// ConsultationFeeCleared returns if the "consultation_fee" field was cleared in this mutation.
func (m *DoctorMutation) ConsultationFeeCleared() bool {
	_, ok := m.clearedFields[doctor.FieldConsultationFee]
	return ok
}

// ResetConsultationFee resets all changes to the "consultation_fee" field.
func (m *DoctorMutation) ResetConsultationFee() {
	m.consultation_fee = nil
	m.addconsultation_fee = nil
	delete(m.clearedFields, doctor.FieldConsultationFee)
}

// SetTelemedicineAvailable sets the "telemedicine_available" field.
func (m *DoctorMutation) SetTelemedicineAvailable(b bool) {
	m.telemedicine_available = &b
}

// TelemedicineAvailable returns the value of the "telemedicine_available" field in the mutation.
func (m *DoctorMutation) TelemedicineAvailable() (r bool, exists bool) {
	v := m.telemedicine_available
	if v == nil {
		return
	}
	return *v, true
}

// OldTelemedicineAvailable returns the old "telemedicine_available" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldTelemedicineAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelemedicineAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelemedicineAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelemedicineAvailable: %w", err)
	}
	return oldValue.TelemedicineAvailable, nil
}

// ResetTelemedicineAvailable resets all changes to the "telemedicine_available" field.
func (m *DoctorMutation) ResetTelemedicineAvailable() {
	m.telemedicine_available = nil
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (m *DoctorMutation) SetMetaTitleEn(s string) {
	m.meta_title_en = &s
}

// MetaTitleEn returns the value of the "meta_title_en" field in the mutation.
func (m *DoctorMutation) MetaTitleEn() (r string, exists bool) {
	v := m.meta_title_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleEn returns the old "meta_title_en" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldMetaTitleEn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleEn: %w", err)
	}
	return oldValue.MetaTitleEn, nil
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (m *DoctorMutation) ClearMetaTitleEn() {
	m.meta_title_en = nil
	m.clearedFields[doctor.FieldMetaTitleEn] = struct{}{}
}

// MetaTitleEnCleared returns if the "meta_title_en" field was cleared in this mutation.
func (m *DoctorMutation) MetaTitleEnCleared() bool {
	_, ok := m.clearedFields[doctor.FieldMetaTitleEn]
	return ok
}

// ResetMetaTitleEn resets all changes to the "meta_title_en" field.
func (m *DoctorMutation) ResetMetaTitleEn() {
	m.meta_title_en = nil
	delete(m.clearedFields, doctor.FieldMetaTitleEn)
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (m *DoctorMutation) SetMetaTitleAr(s string) {
	m.meta_title_ar = &s
}

// MetaTitleAr returns the value of the "meta_title_ar" field in the mutation.
func (m *DoctorMutation) MetaTitleAr() (r string, exists bool) {
	v := m.meta_title_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleAr returns the old "meta_title_ar" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldMetaTitleAr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleAr: %w", err)
	}
	return oldValue.MetaTitleAr, nil
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (m *DoctorMutation) ClearMetaTitleAr() {
	m.meta_title_ar = nil
	m.clearedFields[doctor.FieldMetaTitleAr] = struct{}{}
}

// MetaTitleArCleared returns if the "meta_title_ar" field was cleared in this mutation.
func (m *DoctorMutation) MetaTitleArCleared() bool {
	_, ok := m.clearedFields[doctor.FieldMetaTitleAr]
	return ok
}

// ResetMetaTitleAr resets all changes to the "meta_title_ar" field.
func (m *DoctorMutation) ResetMetaTitleAr() {
	m.meta_title_ar = nil
	delete(m.clearedFields, doctor.FieldMetaTitleAr)
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (m *DoctorMutation) SetMetaDescriptionEn(s string) {
	m.meta_description_en = &s
}

// MetaDescriptionEn returns the value of the "meta_description_en" field in the mutation.
func (m *DoctorMutation) MetaDescriptionEn() (r string, exists bool) {
	v := m.meta_description_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionEn returns the old "meta_description_en" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldMetaDescriptionEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionEn: %w", err)
	}
	return oldValue.MetaDescriptionEn, nil
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (m *DoctorMutation) ClearMetaDescriptionEn() {
	m.meta_description_en = nil
	m.clearedFields[doctor.FieldMetaDescriptionEn] = struct{}{}
}

// MetaDescriptionEnCleared returns if the "meta_description_en" field was cleared in this mutation.
func (m *DoctorMutation) MetaDescriptionEnCleared() bool {
	_, ok := m.clearedFields[doctor.FieldMetaDescriptionEn]
	return ok
}

// ResetMetaDescriptionEn resets all changes to the "meta_description_en" field.
func (m *DoctorMutation) ResetMetaDescriptionEn() {
	m.meta_description_en = nil
	delete(m.clearedFields, doctor.FieldMetaDescriptionEn)
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (m *DoctorMutation) SetMetaDescriptionAr(s string) {
	m.meta_description_ar = &s
}

// MetaDescriptionAr returns the value of the "meta_description_ar" field in the mutation.
func (m *DoctorMutation) MetaDescriptionAr() (r string, exists bool) {
	v := m.meta_description_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionAr returns the old "meta_description_ar" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldMetaDescriptionAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionAr: %w", err)
	}
	return oldValue.MetaDescriptionAr, nil
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (m *DoctorMutation) ClearMetaDescriptionAr() {
	m.meta_description_ar = nil
	m.clearedFields[doctor.FieldMetaDescriptionAr] = struct{}{}
}

// MetaDescriptionArCleared returns if the "meta_description_ar" field was cleared in this mutation.
func (m *DoctorMutation) MetaDescriptionArCleared() bool {
	_, ok := m.clearedFields[doctor.FieldMetaDescriptionAr]
	return ok
}

// ResetMetaDescriptionAr resets all changes to the "meta_description_ar" field.
func (m *DoctorMutation) ResetMetaDescriptionAr() {
	m.meta_description_ar = nil
	delete(m.clearedFields, doctor.FieldMetaDescriptionAr)
}

// ClearHospital clears the "hospital" edge to the Hospital entity.
func (m *DoctorMutation) ClearHospital() {
	m.clearedhospital = true
	m.clearedFields[doctor.FieldHospitalID] = struct{}{}
}

// HospitalCleared reports if the "hospital" edge to the Hospital entity was cleared.
func (m *DoctorMutation) HospitalCleared() bool {
	return m.clearedhospital
}

// HospitalIDs returns the "hospital" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HospitalID instead. It exists only for internal usage by the builders.
func (m *DoctorMutation) HospitalIDs() (ids []uuid.UUID) {
	if id := m.hospital; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHospital resets all changes to the "hospital" edge.
func (m *DoctorMutation) ResetHospital() {
	m.hospital = nil
	m.clearedhospital = false
}

// Where appends a list predicates to the DoctorMutation builder.
func (m *DoctorMutation) Where(ps ...predicate.Doctor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Doctor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Doctor).
func (m *DoctorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.created_at != nil {
		fields = append(fields, doctor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctor.FieldUpdatedAt)
	}
	if m.published != nil {
		fields = append(fields, doctor.FieldPublished)
	}
	if m.published_at != nil {
		fields = append(fields, doctor.FieldPublishedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, doctor.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, doctor.FieldArchivedAt)
	}
	if m.hospital != nil {
		fields = append(fields, doctor.FieldHospitalID)
	}
	if m.name_en != nil {
		fields = append(fields, doctor.FieldNameEn)
	}
	if m.name_ar != nil {
		fields = append(fields, doctor.FieldNameAr)
	}
	if m.slug != nil {
		fields = append(fields, doctor.FieldSlug)
	}
	if m.title_en != nil {
		fields = append(fields, doctor.FieldTitleEn)
	}
	if m.title_ar != nil {
		fields = append(fields, doctor.FieldTitleAr)
	}
	if m.specialties_en != nil {
		fields = append(fields, doctor.FieldSpecialtiesEn)
	}
	if m.specialties_ar != nil {
		fields = append(fields, doctor.FieldSpecialtiesAr)
	}
	if m.qualifications != nil {
		fields = append(fields, doctor.FieldQualifications)
	}
	if m.experience_years != nil {
		fields = append(fields, doctor.FieldExperienceYears)
	}
	if m.languages != nil {
		fields = append(fields, doctor.FieldLanguages)
	}
	if m.bio_en != nil {
		fields = append(fields, doctor.FieldBioEn)
	}
	if m.bio_ar != nil {
		fields = append(fields, doctor.FieldBioAr)
	}
	if m.image != nil {
		fields = append(fields, doctor.FieldImage)
	}
	if m.consultation_fee != nil {
		fields = append(fields, doctor.FieldConsultationFee)
	}
	if m.telemedicine_available != nil {
		fields = append(fields, doctor.FieldTelemedicineAvailable)
	}
	if m.meta_title_en != nil {
		fields = append(fields, doctor.FieldMetaTitleEn)
	}
	if m.meta_title_ar != nil {
		fields = append(fields, doctor.FieldMetaTitleAr)
	}
	if m.meta_description_en != nil {
		fields = append(fields, doctor.FieldMetaDescriptionEn)
	}
	if m.meta_description_ar != nil {
		fields = append(fields, doctor.FieldMetaDescriptionAr)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.CreatedAt()
	case doctor.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctor.FieldPublished:
		return m.Published()
	case doctor.FieldPublishedAt:
		return m.PublishedAt()
	case doctor.FieldIsArchived:
		return m.IsArchived()
	case doctor.FieldArchivedAt:
		return m.ArchivedAt()
	case doctor.FieldHospitalID:
		return m.HospitalID()
	case doctor.FieldNameEn:
		return m.NameEn()
	case doctor.FieldNameAr:
		return m.NameAr()
	case doctor.FieldSlug:
		return m.Slug()
	case doctor.FieldTitleEn:
		return m.TitleEn()
	case doctor.FieldTitleAr:
		return m.TitleAr()
	case doctor.FieldSpecialtiesEn:
		return m.SpecialtiesEn()
	case doctor.FieldSpecialtiesAr:
		return m.SpecialtiesAr()
	case doctor.FieldQualifications:
		return m.Qualifications()
	case doctor.FieldExperienceYears:
		return m.ExperienceYears()
	case doctor.FieldLanguages:
		return m.Languages()
	case doctor.FieldBioEn:
		return m.BioEn()
	case doctor.FieldBioAr:
		return m.BioAr()
	case doctor.FieldImage:
		return m.Image()
	case doctor.FieldConsultationFee:
		return m.ConsultationFee()
	case doctor.FieldTelemedicineAvailable:
		return m.TelemedicineAvailable()
	case doctor.FieldMetaTitleEn:
		return m.MetaTitleEn()
	case doctor.FieldMetaTitleAr:
		return m.MetaTitleAr()
	case doctor.FieldMetaDescriptionEn:
		return m.MetaDescriptionEn()
	case doctor.FieldMetaDescriptionAr:
		return m.MetaDescriptionAr()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctor.FieldPublished:
		return m.OldPublished(ctx)
	case doctor.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case doctor.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case doctor.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case doctor.FieldHospitalID:
		return m.OldHospitalID(ctx)
	case doctor.FieldNameEn:
		return m.OldNameEn(ctx)
	case doctor.FieldNameAr:
		return m.OldNameAr(ctx)
	case doctor.FieldSlug:
		return m.OldSlug(ctx)
	case doctor.FieldTitleEn:
		return m.OldTitleEn(ctx)
	case doctor.FieldTitleAr:
		return m.OldTitleAr(ctx)
	case doctor.FieldSpecialtiesEn:
		return m.OldSpecialtiesEn(ctx)
	case doctor.FieldSpecialtiesAr:
		return m.OldSpecialtiesAr(ctx)
	case doctor.FieldQualifications:
		return m.OldQualifications(ctx)
	case doctor.FieldExperienceYears:
		return m.OldExperienceYears(ctx)
	case doctor.FieldLanguages:
		return m.OldLanguages(ctx)
	case doctor.FieldBioEn:
		return m.OldBioEn(ctx)
	case doctor.FieldBioAr:
		return m.OldBioAr(ctx)
	case doctor.FieldImage:
		return m.OldImage(ctx)
	case doctor.FieldConsultationFee:
		return m.OldConsultationFee(ctx)
	case doctor.FieldTelemedicineAvailable:
		return m.OldTelemedicineAvailable(ctx)
	case doctor.FieldMetaTitleEn:
		return m.OldMetaTitleEn(ctx)
	case doctor.FieldMetaTitleAr:
		return m.OldMetaTitleAr(ctx)
	case doctor.FieldMetaDescriptionEn:
		return m.OldMetaDescriptionEn(ctx)
	case doctor.FieldMetaDescriptionAr:
		return m.OldMetaDescriptionAr(ctx)
	}
	return nil, fmt.Errorf("unknown Doctor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctor.FieldPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublished(v)
		return nil
	case doctor.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case doctor.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case doctor.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case doctor.FieldHospitalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHospitalID(v)
		return nil
	case doctor.FieldNameEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameEn(v)
		return nil
	case doctor.FieldNameAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameAr(v)
		return nil
	case doctor.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case doctor.FieldTitleEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleEn(v)
		return nil
	case doctor.FieldTitleAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleAr(v)
		return nil
	case doctor.FieldSpecialtiesEn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialtiesEn(v)
		return nil
	case doctor.FieldSpecialtiesAr:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialtiesAr(v)
		return nil
	case doctor.FieldQualifications:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualifications(v)
		return nil
	case doctor.FieldExperienceYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceYears(v)
		return nil
	case doctor.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case doctor.FieldBioEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBioEn(v)
		return nil
	case doctor.FieldBioAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBioAr(v)
		return nil
	case doctor.FieldImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImage(v)
		return nil
	case doctor.FieldConsultationFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationFee(v)
		return nil
	case doctor.FieldTelemedicineAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelemedicineAvailable(v)
		return nil
	case doctor.FieldMetaTitleEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleEn(v)
		return nil
	case doctor.FieldMetaTitleAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleAr(v)
		return nil
	case doctor.FieldMetaDescriptionEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionEn(v)
		return nil
	case doctor.FieldMetaDescriptionAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionAr(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorMutation) AddedFields() []string {
	var fields []string
	if m.addexperience_years != nil {
		fields = append(fields, doctor.FieldExperienceYears)
	}
	if m.addconsultation_fee != nil {
		fields = append(fields, doctor.FieldConsultationFee)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldExperienceYears:
		return m.AddedExperienceYears()
	case doctor.FieldConsultationFee:
		return m.AddedConsultationFee()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldExperienceYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperienceYears(v)
		return nil
	case doctor.FieldConsultationFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultationFee(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctor.FieldPublishedAt) {
		fields = append(fields, doctor.FieldPublishedAt)
	}
	if m.FieldCleared(doctor.FieldArchivedAt) {
		fields = append(fields, doctor.FieldArchivedAt)
	}
	if m.FieldCleared(doctor.FieldTitleEn) {
		fields = append(fields, doctor.FieldTitleEn)
	}
	if m.FieldCleared(doctor.FieldTitleAr) {
		fields = append(fields, doctor.FieldTitleAr)
	}
	if m.FieldCleared(doctor.FieldSpecialtiesEn) {
		fields = append(fields, doctor.FieldSpecialtiesEn)
	}
	if m.FieldCleared(doctor.FieldSpecialtiesAr) {
		fields = append(fields, doctor.FieldSpecialtiesAr)
	}
	if m.FieldCleared(doctor.FieldQualifications) {
		fields = append(fields, doctor.FieldQualifications)
	}
	if m.FieldCleared(doctor.FieldLanguages) {
		fields = append(fields, doctor.FieldLanguages)
	}
	if m.FieldCleared(doctor.FieldBioEn) {
		fields = append(fields, doctor.FieldBioEn)
	}
	if m.FieldCleared(doctor.FieldBioAr) {
		fields = append(fields, doctor.FieldBioAr)
	}
	if m.FieldCleared(doctor.FieldImage) {
		fields = append(fields, doctor.FieldImage)
	}
	if m.FieldCleared(doctor.FieldConsultationFee) {
		fields = append(fields, doctor.FieldConsultationFee)
	}
	if m.FieldCleared(doctor.FieldMetaTitleEn) {
		fields = append(fields, doctor.FieldMetaTitleEn)
	}
	if m.FieldCleared(doctor.FieldMetaTitleAr) {
		fields = append(fields, doctor.FieldMetaTitleAr)
	}
	if m.FieldCleared(doctor.FieldMetaDescriptionEn) {
		fields = append(fields, doctor.FieldMetaDescriptionEn)
	}
	if m.FieldCleared(doctor.FieldMetaDescriptionAr) {
		fields = append(fields, doctor.FieldMetaDescriptionAr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorMutation) ClearField(name string) error {
	switch name {
	case doctor.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case doctor.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case doctor.FieldTitleEn:
		m.ClearTitleEn()
		return nil
	case doctor.FieldTitleAr:
		m.ClearTitleAr()
		return nil
	case doctor.FieldSpecialtiesEn:
		m.ClearSpecialtiesEn()
		return nil
	case doctor.FieldSpecialtiesAr:
		m.ClearSpecialtiesAr()
		return nil
	case doctor.FieldQualifications:
		m.ClearQualifications()
		return nil
	case doctor.FieldLanguages:
		m.ClearLanguages()
		return nil
	case doctor.FieldBioEn:
		m.ClearBioEn()
		return nil
	case doctor.FieldBioAr:
		m.ClearBioAr()
		return nil
	case doctor.FieldImage:
		m.ClearImage()
		return nil
	case doctor.FieldConsultationFee:
		m.ClearConsultationFee()
		return nil
	case doctor.FieldMetaTitleEn:
		m.ClearMetaTitleEn()
		return nil
	case doctor.FieldMetaTitleAr:
		m.ClearMetaTitleAr()
		return nil
	case doctor.FieldMetaDescriptionEn:
		m.ClearMetaDescriptionEn()
		return nil
	case doctor.FieldMetaDescriptionAr:
		m.ClearMetaDescriptionAr()
		return nil
	}
	return fmt.Errorf("unknown Doctor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorMutation) ResetField(name string) error {
	switch name {
	case doctor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctor.FieldPublished:
		m.ResetPublished()
		return nil
	case doctor.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case doctor.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case doctor.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case doctor.FieldHospitalID:
		m.ResetHospitalID()
		return nil
	case doctor.FieldNameEn:
		m.ResetNameEn()
		return nil
	case doctor.FieldNameAr:
		m.ResetNameAr()
		return nil
	case doctor.FieldSlug:
		m.ResetSlug()
		return nil
	case doctor.FieldTitleEn:
		m.ResetTitleEn()
		return nil
	case doctor.FieldTitleAr:
		m.ResetTitleAr()
		return nil
	case doctor.FieldSpecialtiesEn:
		m.ResetSpecialtiesEn()
		return nil
	case doctor.FieldSpecialtiesAr:
		m.ResetSpecialtiesAr()
		return nil
	case doctor.FieldQualifications:
		m.ResetQualifications()
		return nil
	case doctor.FieldExperienceYears:
		m.ResetExperienceYears()
		return nil
	case doctor.FieldLanguages:
		m.ResetLanguages()
		return nil
	case doctor.FieldBioEn:
		m.ResetBioEn()
		return nil
	case doctor.FieldBioAr:
		m.ResetBioAr()
		return nil
	case doctor.FieldImage:
		m.ResetImage()
		return nil
	case doctor.FieldConsultationFee:
		m.ResetConsultationFee()
		return nil
	case doctor.FieldTelemedicineAvailable:
		m.ResetTelemedicineAvailable()
		return nil
	case doctor.FieldMetaTitleEn:
		m.ResetMetaTitleEn()
		return nil
	case doctor.FieldMetaTitleAr:
		m.ResetMetaTitleAr()
		return nil
	case doctor.FieldMetaDescriptionEn:
		m.ResetMetaDescriptionEn()
		return nil
	case doctor.FieldMetaDescriptionAr:
		m.ResetMetaDescriptionAr()
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hospital != nil {
		edges = append(edges, doctor.EdgeHospital)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case doctor.EdgeHospital:
		if id := m.hospital; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhospital {
		edges = append(edges, doctor.EdgeHospital)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorMutation) EdgeCleared(name string) bool {
	switch name {
	case doctor.EdgeHospital:
		return m.clearedhospital
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorMutation) ClearEdge(name string) error {
	switch name {
	case doctor.EdgeHospital:
		m.ClearHospital()
		return nil
	}
	return fmt.Errorf("unknown Doctor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorMutation) ResetEdge(name string) error {
	switch name {
	case doctor.EdgeHospital:
		m.ResetHospital()
		return nil
	}
	return fmt.Errorf("unknown Doctor edge %s", name)
}

// HospitalMutation represents an operation that mutates the Hospital nodes in the graph.
type HospitalMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	updated_at                *time.Time
	published                 *bool
	published_at              *time.Time
	is_archived               *bool
	archived_at               *time.Time
	name_en                   *string
	name_ar                   *string
	slug                      *string
	description_en            *string
	description_ar            *string
	city_en                   *string
	city_ar                   *string
	country_en                *string
	country_ar                *string
	address                   *string
	phone                     *string
	email                     *string
	accreditations            *[]string
	appendaccreditations      []string
	images                    *content.Images
	established_year          *int
	addestablished_year       *int
	bed_count                 *int
	addbed_count              *int
	languages_supported       *[]string
	appendlanguages_supported []string
	featured                  *bool
	meta_title_en             *string
	meta_title_ar             *string
	meta_description_en       *string
	meta_description_ar       *string
	clearedFields             map[string]struct{}
	doctors                   map[uuid.UUID]struct{}
	removeddoctors            map[uuid.UUID]struct{}
	cleareddoctors            bool
	packages                  map[uuid.UUID]struct{}
	removedpackages           map[uuid.UUID]struct{}
	clearedpackages           bool
	treatments                map[uuid.UUID]struct{}
	removedtreatments         map[uuid.UUID]struct{}
	clearedtreatments         bool
	done                      bool
	oldValue                  func(context.Context) (*Hospital, error)
	predicates                []predicate.Hospital
}

var _ ent.Mutation = (*HospitalMutation)(nil)

// hospitalOption allows management of the mutation configuration using functional options.
type hospitalOption func(*HospitalMutation)

// newHospitalMutation creates new mutation for the Hospital entity.
func newHospitalMutation(c config, op Op, opts ...hospitalOption) *HospitalMutation {
	m := &HospitalMutation{
		config:        c,
		op:            op,
		typ:           TypeHospital,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHospitalID sets the ID field of the mutation.
func withHospitalID(id uuid.UUID) hospitalOption {
	return func(m *HospitalMutation) {
		var (
			err   error
			once  sync.Once
			value *Hospital
		)
		m.oldValue = func(ctx context.Context) (*Hospital, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Hospital.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHospital sets the old Hospital of the mutation.
func withHospital(node *Hospital) hospitalOption {
	return func(m *HospitalMutation) {
		m.oldValue = func(context.Context) (*Hospital, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HospitalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HospitalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Hospital entities.
func (m *HospitalMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HospitalMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HospitalMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Hospital.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HospitalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HospitalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HospitalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HospitalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HospitalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HospitalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPublished sets the "published" field.
func (m *HospitalMutation) SetPublished(b bool) {
	m.published = &b
}

// Published returns the value of the "published" field in the mutation.
func (m *HospitalMutation) Published() (r bool, exists bool) {
	v := m.published
	if v == nil {
		return
	}
	return *v, true
}

// OldPublished returns the old "published" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublished: %w", err)
	}
	return oldValue.Published, nil
}

// ResetPublished resets all changes to the "published" field.
func (m *HospitalMutation) ResetPublished() {
	m.published = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *HospitalMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *HospitalMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *HospitalMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[hospital.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *HospitalMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[hospital.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *HospitalMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, hospital.FieldPublishedAt)
}

// SetIsArchived sets the "is_archived" field.
func (m *HospitalMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *HospitalMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *HospitalMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *HospitalMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *HospitalMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *HospitalMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[hospital.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *HospitalMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[hospital.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *HospitalMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, hospital.FieldArchivedAt)
}

// SetNameEn sets the "name_en" field.
func (m *HospitalMutation) SetNameEn(s string) {
	m.name_en = &s
}

// NameEn returns the value of the "name_en" field in the mutation.
func (m *HospitalMutation) NameEn() (r string, exists bool) {
	v := m.name_en
	if v == nil {
		return
	}
	return *v, true
}

// OldNameEn returns the old "name_en" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldNameEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameEn: %w", err)
	}
	return oldValue.NameEn, nil
}

// ResetNameEn resets all changes to the "name_en" field.
func (m *HospitalMutation) ResetNameEn() {
	m.name_en = nil
}

// SetNameAr sets the "name_ar" field.
func (m *HospitalMutation) SetNameAr(s string) {
	m.name_ar = &s
}

// NameAr returns the value of the "name_ar" field in the mutation.
func (m *HospitalMutation) NameAr() (r string, exists bool) {
	v := m.name_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldNameAr returns the old "name_ar" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldNameAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameAr: %w", err)
	}
	return oldValue.NameAr, nil
}

// ResetNameAr resets all changes to the "name_ar" field.
func (m *HospitalMutation) ResetNameAr() {
	m.name_ar = nil
}

// SetSlug sets the "slug" field.
func (m *HospitalMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *HospitalMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *HospitalMutation) ResetSlug() {
	m.slug = nil
}

// SetDescriptionEn sets the "description_en" field.
func (m *HospitalMutation) SetDescriptionEn(s string) {
	m.description_en = &s
}

// DescriptionEn returns the value of the "description_en" field in the mutation.
func (m *HospitalMutation) DescriptionEn() (r string, exists bool) {
	v := m.description_en
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionEn returns the old "description_en" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldDescriptionEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionEn: %w", err)
	}
	return oldValue.DescriptionEn, nil
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (m *HospitalMutation) ClearDescriptionEn() {
	m.description_en = nil
	m.clearedFields[hospital.FieldDescriptionEn] = struct{}{}
}

// DescriptionEnCleared returns if the "description_en" field was cleared in this mutation.
func (m *HospitalMutation) DescriptionEnCleared() bool {
	_, ok := m.clearedFields[hospital.FieldDescriptionEn]
	return ok
}

// ResetDescriptionEn resets all changes to the "description_en" field.
func (m *HospitalMutation) ResetDescriptionEn() {
	m.description_en = nil
	delete(m.clearedFields, hospital.FieldDescriptionEn)
}

// SetDescriptionAr sets the "description_ar" field.
func (m *HospitalMutation) SetDescriptionAr(s string) {
	m.description_ar = &s
}

// DescriptionAr returns the value of the "description_ar" field in the mutation.
func (m *HospitalMutation) DescriptionAr() (r string, exists bool) {
	v := m.description_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionAr returns the old "description_ar" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldDescriptionAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionAr: %w", err)
	}
	return oldValue.DescriptionAr, nil
}

// ClearDescriptionAr clears the value of the "description_ar" field.
func (m *HospitalMutation) ClearDescriptionAr() {
	m.description_ar = nil
	m.clearedFields[hospital.FieldDescriptionAr] = struct{}{}
}

// DescriptionArCleared returns if the "description_ar" field was cleared in this mutation.
func (m *HospitalMutation) DescriptionArCleared() bool {
	_, ok := m.clearedFields[hospital.FieldDescriptionAr]
	return ok
}

// ResetDescriptionAr resets all changes to the "description_ar" field.
func (m *HospitalMutation) ResetDescriptionAr() {
	m.description_ar = nil
	delete(m.clearedFields, hospital.FieldDescriptionAr)
}

// SetCityEn sets the "city_en" field.
func (m *HospitalMutation) SetCityEn(s string) {
	m.city_en = &s
}

// CityEn returns the value of the "city_en" field in the mutation.
func (m *HospitalMutation) CityEn() (r string, exists bool) {
	v := m.city_en
	if v == nil {
		return
	}
	return *v, true
}

// OldCityEn returns the old "city_en" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldCityEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCityEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCityEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCityEn: %w", err)
	}
	return oldValue.CityEn, nil
}

// ResetCityEn resets all changes to the "city_en" field.
func (m *HospitalMutation) ResetCityEn() {
	m.city_en = nil
}

// SetCityAr sets the "city_ar" field.
func (m *HospitalMutation) SetCityAr(s string) {
	m.city_ar = &s
}

// CityAr returns the value of the "city_ar" field in the mutation.
func (m *HospitalMutation) CityAr() (r string, exists bool) {
	v := m.city_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldCityAr returns the old "city_ar" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldCityAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCityAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCityAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCityAr: %w", err)
	}
	return oldValue.CityAr, nil
}

// ResetCityAr resets all changes to the "city_ar" field.
func (m *HospitalMutation) ResetCityAr() {
	m.city_ar = nil
}

// SetCountryEn sets the "country_en" field.
func (m *HospitalMutation) SetCountryEn(s string) {
	m.country_en = &s
}

// CountryEn returns the value of the "country_en" field in the mutation.
func (m *HospitalMutation) CountryEn() (r string, exists bool) {
	v := m.country_en
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryEn returns the old "country_en" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldCountryEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryEn: %w", err)
	}
	return oldValue.CountryEn, nil
}

// ResetCountryEn resets all changes to the "country_en" field.
func (m *HospitalMutation) ResetCountryEn() {
	m.country_en = nil
}

// SetCountryAr sets the "country_ar" field.
func (m *HospitalMutation) SetCountryAr(s string) {
	m.country_ar = &s
}

// CountryAr returns the value of the "country_ar" field in the mutation.
func (m *HospitalMutation) CountryAr() (r string, exists bool) {
	v := m.country_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryAr returns the old "country_ar" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldCountryAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryAr: %w", err)
	}
	return oldValue.CountryAr, nil
}

// ResetCountryAr resets all changes to the "country_ar" field.
func (m *HospitalMutation) ResetCountryAr() {
	m.country_ar = nil
}

// SetAddress sets the "address" field.
func (m *HospitalMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *HospitalMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *HospitalMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[hospital.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *HospitalMutation) AddressCleared() bool {
	_, ok := m.clearedFields[hospital.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *HospitalMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, hospital.FieldAddress)
}

// SetPhone sets the "phone" field.
func (m *HospitalMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *HospitalMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *HospitalMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[hospital.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *HospitalMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[hospital.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *HospitalMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, hospital.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *HospitalMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *HospitalMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *HospitalMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[hospital.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *HospitalMutation) EmailCleared() bool {
	_, ok := m.clearedFields[hospital.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *HospitalMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, hospital.FieldEmail)
}

// SetAccreditations sets the "accreditations" field.
func (m *HospitalMutation) SetAccreditations(s []string) {
	m.accreditations = &s
	m.appendaccreditations = nil
}

// Accreditations returns the value of the "accreditations" field in the mutation.
func (m *HospitalMutation) Accreditations() (r []string, exists bool) {
	v := m.accreditations
	if v == nil {
		return
	}
	return *v, true
}

// OldAccreditations returns the old "accreditations" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldAccreditations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccreditations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccreditations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccreditations: %w", err)
	}
	return oldValue.Accreditations, nil
}

// AppendAccreditations adds s to the "accreditations" field.
func (m *HospitalMutation) AppendAccreditations(s []string) {
	m.appendaccreditations = append(m.appendaccreditations, s...)
}

// AppendedAccreditations returns the list of values that were appended to the "accreditations" field in this mutation.
func (m *HospitalMutation) AppendedAccreditations() ([]string, bool) {
	if len(m.appendaccreditations) == 0 {
		return nil, false
	}
	return m.appendaccreditations, true
}

// ClearAccreditations clears the value of the "accreditations" field.
func (m *HospitalMutation) ClearAccreditations() {
	m.accreditations = nil
	m.appendaccreditations = nil
	m.clearedFields[hospital.FieldAccreditations] = struct{}{}
}

// AccreditationsCleared returns if the "accreditations" field was cleared in this mutation.
func (m *HospitalMutation) AccreditationsCleared() bool {
	_, ok := m.clearedFields[hospital.FieldAccreditations]
	return ok
}

// ResetAccreditations resets all changes to the "accreditations" field.
func (m *HospitalMutation) ResetAccreditations() {
	m.accreditations = nil
	m.appendaccreditations = nil
	delete(m.clearedFields, hospital.FieldAccreditations)
}

// SetImages sets the "images" field.
func (m *HospitalMutation) SetImages(c content.Images) {
	m.images = &c
}

// Images returns the value of the "images" field in the mutation.
func (m *HospitalMutation) Images() (r content.Images, exists bool) {
	v := m.images
	if v == nil {
		return
	}
	return *v, true
}

// OldImages returns the old "images" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldImages(ctx context.Context) (v content.Images, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImages: %w", err)
	}
	return oldValue.Images, nil
}

// ClearImages clears the value of the "images" field.
func (m *HospitalMutation) ClearImages() {
	m.images = nil
	m.clearedFields[hospital.FieldImages] = struct{}{}
}

// ImagesCleared returns if the "images" field was cleared in this mutation.
func (m *HospitalMutation) ImagesCleared() bool {
	_, ok := m.clearedFields[hospital.FieldImages]
	return ok
}

// ResetImages resets all changes to the "images" field.
func (m *HospitalMutation) ResetImages() {
	m.images = nil
	delete(m.clearedFields, hospital.FieldImages)
}

// SetEstablishedYear sets the "established_year" field.
func (m *HospitalMutation) SetEstablishedYear(i int) {
	m.established_year = &i
	m.addestablished_year = nil
}

// EstablishedYear returns the value of the "established_year" field in the mutation.
func (m *HospitalMutation) EstablishedYear() (r int, exists bool) {
	v := m.established_year
	if v == nil {
		return
	}
	return *v, true
}

// OldEstablishedYear returns the old "established_year" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldEstablishedYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstablishedYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstablishedYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstablishedYear: %w", err)
	}
	return oldValue.EstablishedYear, nil
}

// AddEstablishedYear adds i to the "established_year" field.
func (m *HospitalMutation) AddEstablishedYear(i int) {
	if m.addestablished_year != nil {
		*m.addestablished_year += i
	} else {
		m.addestablished_year = &i
	}
}

// AddedEstablishedYear returns the value that was added to the "established_year" field in this mutation.
func (m *HospitalMutation) AddedEstablishedYear() (r int, exists bool) {
	v := m.addestablished_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstablishedYear clears the value of the "established_year" field.
func (m *HospitalMutation) ClearEstablishedYear() {
	m.established_year = nil
	m.addestablished_year = nil
	m.clearedFields[hospital.FieldEstablishedYear] = struct{}{}
}

// EstablishedYearCleared returns if the "established_year" field was cleared in this mutation.
func (m *HospitalMutation) EstablishedYearCleared() bool {
	_, ok := m.clearedFields[hospital.FieldEstablishedYear]
	return ok
}

// ResetEstablishedYear resets all changes to the "established_year" field.
func (m *HospitalMutation) ResetEstablishedYear() {
	m.established_year = nil
	m.addestablished_year = nil
	delete(m.clearedFields, hospital.FieldEstablishedYear)
}

// SetBedCount sets the "bed_count" field.
func (m *HospitalMutation) SetBedCount(i int) {
	m.bed_count = &i
	m.addbed_count = nil
}

// BedCount returns the value of the "bed_count" field in the mutation.
func (m *HospitalMutation) BedCount() (r int, exists bool) {
	v := m.bed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBedCount returns the old "bed_count" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldBedCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBedCount: %w", err)
	}
	return oldValue.BedCount, nil
}

// AddBedCount adds i to the "bed_count" field.
func (m *HospitalMutation) AddBedCount(i int) {
	if m.addbed_count != nil {
		*m.addbed_count += i
	} else {
		m.addbed_count = &i
	}
}

// AddedBedCount returns the value that was added to the "bed_count" field in this mutation.
func (m *HospitalMutation) AddedBedCount() (r int, exists bool) {
	v := m.addbed_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearBedCount clears the value of the "bed_count" field.
func (m *HospitalMutation) ClearBedCount() {
	m.bed_count = nil
	m.addbed_count = nil
	m.clearedFields[hospital.FieldBedCount] = struct{}{}
}

// BedCountCleared returns if the "bed_count" field was cleared in this mutation.
func (m *HospitalMutation) BedCountCleared() bool {
	_, ok := m.clearedFields[hospital.FieldBedCount]
	return ok
}

// ResetBedCount resets all changes to the "bed_count" field.
func (m *HospitalMutation) ResetBedCount() {
	m.bed_count = nil
	m.addbed_count = nil
	delete(m.clearedFields, hospital.FieldBedCount)
}

// SetLanguagesSupported sets the "languages_supported" field.
func (m *HospitalMutation) SetLanguagesSupported(s []string) {
	m.languages_supported = &s
	m.appendlanguages_supported = nil
}

// LanguagesSupported returns the value of the "languages_supported" field in the mutation.
func (m *HospitalMutation) LanguagesSupported() (r []string, exists bool) {
	v := m.languages_supported
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguagesSupported returns the old "languages_supported" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldLanguagesSupported(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguagesSupported is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguagesSupported requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguagesSupported: %w", err)
	}
	return oldValue.LanguagesSupported, nil
}

// AppendLanguagesSupported adds s to the "languages_supported" field.
func (m *HospitalMutation) AppendLanguagesSupported(s []string) {
	m.appendlanguages_supported = append(m.appendlanguages_supported, s...)
}

// AppendedLanguagesSupported returns the list of values that were appended to the "languages_supported" field in this mutation.
func (m *HospitalMutation) AppendedLanguagesSupported() ([]string, bool) {
	if len(m.appendlanguages_supported) == 0 {
		return nil, false
	}
	return m.appendlanguages_supported, true
}

// ClearLanguagesSupported clears the value of the "languages_supported" field.
func (m *HospitalMutation) ClearLanguagesSupported() {
	m.languages_supported = nil
	m.appendlanguages_supported = nil
	m.clearedFields[hospital.FieldLanguagesSupported] = struct{}{}
}

// LanguagesSupportedCleared returns if the "languages_supported" field was cleared in this mutation.
func (m *HospitalMutation) LanguagesSupportedCleared() bool {
	_, ok := m.clearedFields[hospital.FieldLanguagesSupported]
	return ok
}

// ResetLanguagesSupported resets all changes to the "languages_supported" field.
func (m *HospitalMutation) ResetLanguagesSupported() {
	m.languages_supported = nil
	m.appendlanguages_supported = nil
	delete(m.clearedFields, hospital.FieldLanguagesSupported)
}

// SetFeatured sets the "featured" field.
func (m *HospitalMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *HospitalMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *HospitalMutation) ResetFeatured() {
	m.featured = nil
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (m *HospitalMutation) SetMetaTitleEn(s string) {
	m.meta_title_en = &s
}

// MetaTitleEn returns the value of the "meta_title_en" field in the mutation.
func (m *HospitalMutation) MetaTitleEn() (r string, exists bool) {
	v := m.meta_title_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleEn returns the old "meta_title_en" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldMetaTitleEn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleEn: %w", err)
	}
	return oldValue.MetaTitleEn, nil
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (m *HospitalMutation) ClearMetaTitleEn() {
	m.meta_title_en = nil
	m.clearedFields[hospital.FieldMetaTitleEn] = struct{}{}
}

// MetaTitleEnCleared returns if the "meta_title_en" field was cleared in this mutation.
func (m *HospitalMutation) MetaTitleEnCleared() bool {
	_, ok := m.clearedFields[hospital.FieldMetaTitleEn]
	return ok
}

// ResetMetaTitleEn resets all changes to the "meta_title_en" field.
func (m *HospitalMutation) ResetMetaTitleEn() {
	m.meta_title_en = nil
	delete(m.clearedFields, hospital.FieldMetaTitleEn)
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (m *HospitalMutation) SetMetaTitleAr(s string) {
	m.meta_title_ar = &s
}

// MetaTitleAr returns the value of the "meta_title_ar" field in the mutation.
func (m *HospitalMutation) MetaTitleAr() (r string, exists bool) {
	v := m.meta_title_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleAr returns the old "meta_title_ar" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldMetaTitleAr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleAr: %w", err)
	}
	return oldValue.MetaTitleAr, nil
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (m *HospitalMutation) ClearMetaTitleAr() {
	m.meta_title_ar = nil
	m.clearedFields[hospital.FieldMetaTitleAr] = struct{}{}
}

// MetaTitleArCleared returns if the "meta_title_ar" field was cleared in this mutation.
func (m *HospitalMutation) MetaTitleArCleared() bool {
	_, ok := m.clearedFields[hospital.FieldMetaTitleAr]
	return ok
}

// ResetMetaTitleAr resets all changes to the "meta_title_ar" field.
func (m *HospitalMutation) ResetMetaTitleAr() {
	m.meta_title_ar = nil
	delete(m.clearedFields, hospital.FieldMetaTitleAr)
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (m *HospitalMutation) SetMetaDescriptionEn(s string) {
	m.meta_description_en = &s
}

// MetaDescriptionEn returns the value of the "meta_description_en" field in the mutation.
func (m *HospitalMutation) MetaDescriptionEn() (r string, exists bool) {
	v := m.meta_description_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionEn returns the old "meta_description_en" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldMetaDescriptionEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionEn: %w", err)
	}
	return oldValue.MetaDescriptionEn, nil
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (m *HospitalMutation) ClearMetaDescriptionEn() {
	m.meta_description_en = nil
	m.clearedFields[hospital.FieldMetaDescriptionEn] = struct{}{}
}

// MetaDescriptionEnCleared returns if the "meta_description_en" field was cleared in this mutation.
func (m *HospitalMutation) MetaDescriptionEnCleared() bool {
	_, ok := m.clearedFields[hospital.FieldMetaDescriptionEn]
	return ok
}

// ResetMetaDescriptionEn resets all changes to the "meta_description_en" field.
func (m *HospitalMutation) ResetMetaDescriptionEn() {
	m.meta_description_en = nil
	delete(m.clearedFields, hospital.FieldMetaDescriptionEn)
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (m *HospitalMutation) SetMetaDescriptionAr(s string) {
	m.meta_description_ar = &s
}

// MetaDescriptionAr returns the value of the "meta_description_ar" field in the mutation.
func (m *HospitalMutation) MetaDescriptionAr() (r string, exists bool) {
	v := m.meta_description_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionAr returns the old "meta_description_ar" field's value of the Hospital entity.
// If the Hospital object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HospitalMutation) OldMetaDescriptionAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionAr: %w", err)
	}
	return oldValue.MetaDescriptionAr, nil
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (m *HospitalMutation) ClearMetaDescriptionAr() {
	m.meta_description_ar = nil
	m.clearedFields[hospital.FieldMetaDescriptionAr] = struct{}{}
}

// MetaDescriptionArCleared returns if the "meta_description_ar" field was cleared in this mutation.
func (m *HospitalMutation) MetaDescriptionArCleared() bool {
	_, ok := m.clearedFields[hospital.FieldMetaDescriptionAr]
	return ok
}

// ResetMetaDescriptionAr resets all changes to the "meta_description_ar" field.
func (m *HospitalMutation) ResetMetaDescriptionAr() {
	m.meta_description_ar = nil
	delete(m.clearedFields, hospital.FieldMetaDescriptionAr)
}

// AddDoctorIDs adds the "doctors" edge to the Doctor entity by ids.
func (m *HospitalMutation) AddDoctorIDs(ids ...uuid.UUID) {
	if m.doctors == nil {
		m.doctors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.doctors[ids[i]] = struct{}{}
	}
}

// ClearDoctors clears the "doctors" edge to the Doctor entity.
func (m *HospitalMutation) ClearDoctors() {
	m.cleareddoctors = true
}

// DoctorsCleared reports if the "doctors" edge to the Doctor entity was cleared.
func (m *HospitalMutation) DoctorsCleared() bool {
	return m.cleareddoctors
}

// RemoveDoctorIDs removes the "doctors" edge to the Doctor entity by IDs.
func (m *HospitalMutation) RemoveDoctorIDs(ids ...uuid.UUID) {
	if m.removeddoctors == nil {
		m.removeddoctors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.doctors, ids[i])
		m.removeddoctors[ids[i]] = struct{}{}
	}
}

// RemovedDoctors returns the removed IDs of the "doctors" edge to the Doctor entity.
func (m *HospitalMutation) RemovedDoctorsIDs() (ids []uuid.UUID) {
	for id := range m.removeddoctors {
		ids = append(ids, id)
	}
	return
}

// DoctorsIDs returns the "doctors" edge IDs in the mutation.
func (m *HospitalMutation) DoctorsIDs() (ids []uuid.UUID) {
	for id := range m.doctors {
		ids = append(ids, id)
	}
	return
}

// ResetDoctors resets all changes to the "doctors" edge.
func (m *HospitalMutation) ResetDoctors() {
	m.doctors = nil
	m.cleareddoctors = false
	m.removeddoctors = nil
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by ids.
func (m *HospitalMutation) AddPackageIDs(ids ...uuid.UUID) {
	if m.packages == nil {
		m.packages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.packages[ids[i]] = struct{}{}
	}
}

// ClearPackages clears the "packages" edge to the CarePackage entity.
func (m *HospitalMutation) ClearPackages() {
	m.clearedpackages = true
}

// PackagesCleared reports if the "packages" edge to the CarePackage entity was cleared.
func (m *HospitalMutation) PackagesCleared() bool {
	return m.clearedpackages
}

// RemovePackageIDs removes the "packages" edge to the CarePackage entity by IDs.
func (m *HospitalMutation) RemovePackageIDs(ids ...uuid.UUID) {
	if m.removedpackages == nil {
		m.removedpackages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.packages, ids[i])
		m.removedpackages[ids[i]] = struct{}{}
	}
}

// RemovedPackages returns the removed IDs of the "packages" edge to the CarePackage entity.
func (m *HospitalMutation) RemovedPackagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpackages {
		ids = append(ids, id)
	}
	return
}

// PackagesIDs returns the "packages" edge IDs in the mutation.
func (m *HospitalMutation) PackagesIDs() (ids []uuid.UUID) {
	for id := range m.packages {
		ids = append(ids, id)
	}
	return
}

// ResetPackages resets all changes to the "packages" edge.
func (m *HospitalMutation) ResetPackages() {
	m.packages = nil
	m.clearedpackages = false
	m.removedpackages = nil
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by ids.
func (m *HospitalMutation) AddTreatmentIDs(ids ...uuid.UUID) {
	if m.treatments == nil {
		m.treatments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.treatments[ids[i]] = struct{}{}
	}
}

// ClearTreatments clears the "treatments" edge to the Treatment entity.
func (m *HospitalMutation) ClearTreatments() {
	m.clearedtreatments = true
}

// TreatmentsCleared reports if the "treatments" edge to the Treatment entity was cleared.
func (m *HospitalMutation) TreatmentsCleared() bool {
	return m.clearedtreatments
}

// RemoveTreatmentIDs removes the "treatments" edge to the Treatment entity by IDs.
func (m *HospitalMutation) RemoveTreatmentIDs(ids ...uuid.UUID) {
	if m.removedtreatments == nil {
		m.removedtreatments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.treatments, ids[i])
		m.removedtreatments[ids[i]] = struct{}{}
	}
}

// RemovedTreatments returns the removed IDs of the "treatments" edge to the Treatment entity.
func (m *HospitalMutation) RemovedTreatmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedtreatments {
		ids = append(ids, id)
	}
	return
}

// TreatmentsIDs returns the "treatments" edge IDs in the mutation.
func (m *HospitalMutation) TreatmentsIDs() (ids []uuid.UUID) {
	for id := range m.treatments {
		ids = append(ids, id)
	}
	return
}

// ResetTreatments resets all changes to the "treatments" edge.
func (m *HospitalMutation) ResetTreatments() {
	m.treatments = nil
	m.clearedtreatments = false
	m.removedtreatments = nil
}

// Where appends a list predicates to the HospitalMutation builder.
func (m *HospitalMutation) Where(ps ...predicate.Hospital) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HospitalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HospitalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Hospital, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HospitalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HospitalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Hospital).
func (m *HospitalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HospitalMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.created_at != nil {
		fields = append(fields, hospital.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, hospital.FieldUpdatedAt)
	}
	if m.published != nil {
		fields = append(fields, hospital.FieldPublished)
	}
	if m.published_at != nil {
		fields = append(fields, hospital.FieldPublishedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, hospital.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, hospital.FieldArchivedAt)
	}
	if m.name_en != nil {
		fields = append(fields, hospital.FieldNameEn)
	}
	if m.name_ar != nil {
		fields = append(fields, hospital.FieldNameAr)
	}
	if m.slug != nil {
		fields = append(fields, hospital.FieldSlug)
	}
	if m.description_en != nil {
		fields = append(fields, hospital.FieldDescriptionEn)
	}
	if m.description_ar != nil {
		fields = append(fields, hospital.FieldDescriptionAr)
	}
	if m.city_en != nil {
		fields = append(fields, hospital.FieldCityEn)
	}
	if m.city_ar != nil {
		fields = append(fields, hospital.FieldCityAr)
	}
	if m.country_en != nil {
		fields = append(fields, hospital.FieldCountryEn)
	}
	if m.country_ar != nil {
		fields = append(fields, hospital.FieldCountryAr)
	}
	if m.address != nil {
		fields = append(fields, hospital.FieldAddress)
	}
	if m.phone != nil {
		fields = append(fields, hospital.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, hospital.FieldEmail)
	}
	if m.accreditations != nil {
		fields = append(fields, hospital.FieldAccreditations)
	}
	if m.images != nil {
		fields = append(fields, hospital.FieldImages)
	}
	if m.established_year != nil {
		fields = append(fields, hospital.FieldEstablishedYear)
	}
	if m.bed_count != nil {
		fields = append(fields, hospital.FieldBedCount)
	}
	if m.languages_supported != nil {
		fields = append(fields, hospital.FieldLanguagesSupported)
	}
	if m.featured != nil {
		fields = append(fields, hospital.FieldFeatured)
	}
	if m.meta_title_en != nil {
		fields = append(fields, hospital.FieldMetaTitleEn)
	}
	if m.meta_title_ar != nil {
		fields = append(fields, hospital.FieldMetaTitleAr)
	}
	if m.meta_description_en != nil {
		fields = append(fields, hospital.FieldMetaDescriptionEn)
	}
	if m.meta_description_ar != nil {
		fields = append(fields, hospital.FieldMetaDescriptionAr)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HospitalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hospital.FieldCreatedAt:
		return m.CreatedAt()
	case hospital.FieldUpdatedAt:
		return m.UpdatedAt()
	case hospital.FieldPublished:
		return m.Published()
	case hospital.FieldPublishedAt:
		return m.PublishedAt()
	case hospital.FieldIsArchived:
		return m.IsArchived()
	case hospital.FieldArchivedAt:
		return m.ArchivedAt()
	case hospital.FieldNameEn:
		return m.NameEn()
	case hospital.FieldNameAr:
		return m.NameAr()
	case hospital.FieldSlug:
		return m.Slug()
	case hospital.FieldDescriptionEn:
		return m.DescriptionEn()
	case hospital.FieldDescriptionAr:
		return m.DescriptionAr()
	case hospital.FieldCityEn:
		return m.CityEn()
	case hospital.FieldCityAr:
		return m.CityAr()
	case hospital.FieldCountryEn:
		return m.CountryEn()
	case hospital.FieldCountryAr:
		return m.CountryAr()
	case hospital.FieldAddress:
		return m.Address()
	case hospital.FieldPhone:
		return m.Phone()
	case hospital.FieldEmail:
		return m.Email()
	case hospital.FieldAccreditations:
		return m.Accreditations()
	case hospital.FieldImages:
		return m.Images()
	case hospital.FieldEstablishedYear:
		return m.EstablishedYear()
	case hospital.FieldBedCount:
		return m.BedCount()
	case hospital.FieldLanguagesSupported:
		return m.LanguagesSupported()
	case hospital.FieldFeatured:
		return m.Featured()
	case hospital.FieldMetaTitleEn:
		return m.MetaTitleEn()
	case hospital.FieldMetaTitleAr:
		return m.MetaTitleAr()
	case hospital.FieldMetaDescriptionEn:
		return m.MetaDescriptionEn()
	case hospital.FieldMetaDescriptionAr:
		return m.MetaDescriptionAr()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HospitalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hospital.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case hospital.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case hospital.FieldPublished:
		return m.OldPublished(ctx)
	case hospital.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case hospital.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case hospital.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case hospital.FieldNameEn:
		return m.OldNameEn(ctx)
	case hospital.FieldNameAr:
		return m.OldNameAr(ctx)
	case hospital.FieldSlug:
		return m.OldSlug(ctx)
	case hospital.FieldDescriptionEn:
		return m.OldDescriptionEn(ctx)
	case hospital.FieldDescriptionAr:
		return m.OldDescriptionAr(ctx)
	case hospital.FieldCityEn:
		return m.OldCityEn(ctx)
	case hospital.FieldCityAr:
		return m.OldCityAr(ctx)
	case hospital.FieldCountryEn:
		return m.OldCountryEn(ctx)
	case hospital.FieldCountryAr:
		return m.OldCountryAr(ctx)
	case hospital.FieldAddress:
		return m.OldAddress(ctx)
	case hospital.FieldPhone:
		return m.OldPhone(ctx)
	case hospital.FieldEmail:
		return m.OldEmail(ctx)
	case hospital.FieldAccreditations:
		return m.OldAccreditations(ctx)
	case hospital.FieldImages:
		return m.OldImages(ctx)
	case hospital.FieldEstablishedYear:
		return m.OldEstablishedYear(ctx)
	case hospital.FieldBedCount:
		return m.OldBedCount(ctx)
	case hospital.FieldLanguagesSupported:
		return m.OldLanguagesSupported(ctx)
	case hospital.FieldFeatured:
		return m.OldFeatured(ctx)
	case hospital.FieldMetaTitleEn:
		return m.OldMetaTitleEn(ctx)
	case hospital.FieldMetaTitleAr:
		return m.OldMetaTitleAr(ctx)
	case hospital.FieldMetaDescriptionEn:
		return m.OldMetaDescriptionEn(ctx)
	case hospital.FieldMetaDescriptionAr:
		return m.OldMetaDescriptionAr(ctx)
	}
	return nil, fmt.Errorf("unknown Hospital field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HospitalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hospital.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case hospital.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case hospital.FieldPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublished(v)
		return nil
	case hospital.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case hospital.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case hospital.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case hospital.FieldNameEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameEn(v)
		return nil
	case hospital.FieldNameAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameAr(v)
		return nil
	case hospital.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case hospital.FieldDescriptionEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionEn(v)
		return nil
	case hospital.FieldDescriptionAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionAr(v)
		return nil
	case hospital.FieldCityEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCityEn(v)
		return nil
	case hospital.FieldCityAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCityAr(v)
		return nil
	case hospital.FieldCountryEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryEn(v)
		return nil
	case hospital.FieldCountryAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryAr(v)
		return nil
	case hospital.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case hospital.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case hospital.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case hospital.FieldAccreditations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccreditations(v)
		return nil
	case hospital.FieldImages:
		v, ok := value.(content.Images)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImages(v)
		return nil
	case hospital.FieldEstablishedYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstablishedYear(v)
		return nil
	case hospital.FieldBedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBedCount(v)
		return nil
	case hospital.FieldLanguagesSupported:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguagesSupported(v)
		return nil
	case hospital.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	case hospital.FieldMetaTitleEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleEn(v)
		return nil
	case hospital.FieldMetaTitleAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleAr(v)
		return nil
	case hospital.FieldMetaDescriptionEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionEn(v)
		return nil
	case hospital.FieldMetaDescriptionAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionAr(v)
		return nil
	}
	return fmt.Errorf("unknown Hospital field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HospitalMutation) AddedFields() []string {
	var fields []string
	if m.addestablished_year != nil {
		fields = append(fields, hospital.FieldEstablishedYear)
	}
	if m.addbed_count != nil {
		fields = append(fields, hospital.FieldBedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HospitalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hospital.FieldEstablishedYear:
		return m.AddedEstablishedYear()
	case hospital.FieldBedCount:
		return m.AddedBedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HospitalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hospital.FieldEstablishedYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstablishedYear(v)
		return nil
	case hospital.FieldBedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBedCount(v)
		return nil
	}
	return fmt.Errorf("unknown Hospital numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HospitalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hospital.FieldPublishedAt) {
		fields = append(fields, hospital.FieldPublishedAt)
	}
	if m.FieldCleared(hospital.FieldArchivedAt) {
		fields = append(fields, hospital.FieldArchivedAt)
	}
	if m.FieldCleared(hospital.FieldDescriptionEn) {
		fields = append(fields, hospital.FieldDescriptionEn)
	}
	if m.FieldCleared(hospital.FieldDescriptionAr) {
		fields = append(fields, hospital.FieldDescriptionAr)
	}
	if m.FieldCleared(hospital.FieldAddress) {
		fields = append(fields, hospital.FieldAddress)
	}
	if m.FieldCleared(hospital.FieldPhone) {
		fields = append(fields, hospital.FieldPhone)
	}
	if m.FieldCleared(hospital.FieldEmail) {
		fields = append(fields, hospital.FieldEmail)
	}
	if m.FieldCleared(hospital.FieldAccreditations) {
		fields = append(fields, hospital.FieldAccreditations)
	}
	if m.FieldCleared(hospital.FieldImages) {
		fields = append(fields, hospital.FieldImages)
	}
	if m.FieldCleared(hospital.FieldEstablishedYear) {
		fields = append(fields, hospital.FieldEstablishedYear)
	}
	if m.FieldCleared(hospital.FieldBedCount) {
		fields = append(fields, hospital.FieldBedCount)
	}
	if m.FieldCleared(hospital.FieldLanguagesSupported) {
		fields = append(fields, hospital.FieldLanguagesSupported)
	}
	if m.FieldCleared(hospital.FieldMetaTitleEn) {
		fields = append(fields, hospital.FieldMetaTitleEn)
	}
	if m.FieldCleared(hospital.FieldMetaTitleAr) {
		fields = append(fields, hospital.FieldMetaTitleAr)
	}
	if m.FieldCleared(hospital.FieldMetaDescriptionEn) {
		fields = append(fields, hospital.FieldMetaDescriptionEn)
	}
	if m.FieldCleared(hospital.FieldMetaDescriptionAr) {
		fields = append(fields, hospital.FieldMetaDescriptionAr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HospitalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HospitalMutation) ClearField(name string) error {
	switch name {
	case hospital.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case hospital.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case hospital.FieldDescriptionEn:
		m.ClearDescriptionEn()
		return nil
	case hospital.FieldDescriptionAr:
		m.ClearDescriptionAr()
		return nil
	case hospital.FieldAddress:
		m.ClearAddress()
		return nil
	case hospital.FieldPhone:
		m.ClearPhone()
		return nil
	case hospital.FieldEmail:
		m.ClearEmail()
		return nil
	case hospital.FieldAccreditations:
		m.ClearAccreditations()
		return nil
	case hospital.FieldImages:
		m.ClearImages()
		return nil
	case hospital.FieldEstablishedYear:
		m.ClearEstablishedYear()
		return nil
	case hospital.FieldBedCount:
		m.ClearBedCount()
		return nil
	case hospital.FieldLanguagesSupported:
		m.ClearLanguagesSupported()
		return nil
	case hospital.FieldMetaTitleEn:
		m.ClearMetaTitleEn()
		return nil
	case hospital.FieldMetaTitleAr:
		m.ClearMetaTitleAr()
		return nil
	case hospital.FieldMetaDescriptionEn:
		m.ClearMetaDescriptionEn()
		return nil
	case hospital.FieldMetaDescriptionAr:
		m.ClearMetaDescriptionAr()
		return nil
	}
	return fmt.Errorf("unknown Hospital nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HospitalMutation) ResetField(name string) error {
	switch name {
	case hospital.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case hospital.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case hospital.FieldPublished:
		m.ResetPublished()
		return nil
	case hospital.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case hospital.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case hospital.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case hospital.FieldNameEn:
		m.ResetNameEn()
		return nil
	case hospital.FieldNameAr:
		m.ResetNameAr()
		return nil
	case hospital.FieldSlug:
		m.ResetSlug()
		return nil
	case hospital.FieldDescriptionEn:
		m.ResetDescriptionEn()
		return nil
	case hospital.FieldDescriptionAr:
		m.ResetDescriptionAr()
		return nil
	case hospital.FieldCityEn:
		m.ResetCityEn()
		return nil
	case hospital.FieldCityAr:
		m.ResetCityAr()
		return nil
	case hospital.FieldCountryEn:
		m.ResetCountryEn()
		return nil
	case hospital.FieldCountryAr:
		m.ResetCountryAr()
		return nil
	case hospital.FieldAddress:
		m.ResetAddress()
		return nil
	case hospital.FieldPhone:
		m.ResetPhone()
		return nil
	case hospital.FieldEmail:
		m.ResetEmail()
		return nil
	case hospital.FieldAccreditations:
		m.ResetAccreditations()
		return nil
	case hospital.FieldImages:
		m.ResetImages()
		return nil
	case hospital.FieldEstablishedYear:
		m.ResetEstablishedYear()
		return nil
	case hospital.FieldBedCount:
		m.ResetBedCount()
		return nil
	case hospital.FieldLanguagesSupported:
		m.ResetLanguagesSupported()
		return nil
	case hospital.FieldFeatured:
		m.ResetFeatured()
		return nil
	case hospital.FieldMetaTitleEn:
		m.ResetMetaTitleEn()
		return nil
	case hospital.FieldMetaTitleAr:
		m.ResetMetaTitleAr()
		return nil
	case hospital.FieldMetaDescriptionEn:
		m.ResetMetaDescriptionEn()
		return nil
	case hospital.FieldMetaDescriptionAr:
		m.ResetMetaDescriptionAr()
		return nil
	}
	return fmt.Errorf("unknown Hospital field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HospitalMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.doctors != nil {
		edges = append(edges, hospital.EdgeDoctors)
	}
	if m.packages != nil {
		edges = append(edges, hospital.EdgePackages)
	}
	if m.treatments != nil {
		edges = append(edges, hospital.EdgeTreatments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HospitalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hospital.EdgeDoctors:
		ids := make([]ent.Value, 0, len(m.doctors))
		for id := range m.doctors {
			ids = append(ids, id)
		}
		return ids
	case hospital.EdgePackages:
		ids := make([]ent.Value, 0, len(m.packages))
		for id := range m.packages {
			ids = append(ids, id)
		}
		return ids
	case hospital.EdgeTreatments:
		ids := make([]ent.Value, 0, len(m.treatments))
		for id := range m.treatments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HospitalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddoctors != nil {
		edges = append(edges, hospital.EdgeDoctors)
	}
	if m.removedpackages != nil {
		edges = append(edges, hospital.EdgePackages)
	}
	if m.removedtreatments != nil {
		edges = append(edges, hospital.EdgeTreatments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HospitalMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case hospital.EdgeDoctors:
		ids := make([]ent.Value, 0, len(m.removeddoctors))
		for id := range m.removeddoctors {
			ids = append(ids, id)
		}
		return ids
	case hospital.EdgePackages:
		ids := make([]ent.Value, 0, len(m.removedpackages))
		for id := range m.removedpackages {
			ids = append(ids, id)
		}
		return ids
	case hospital.EdgeTreatments:
		ids := make([]ent.Value, 0, len(m.removedtreatments))
		for id := range m.removedtreatments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HospitalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddoctors {
		edges = append(edges, hospital.EdgeDoctors)
	}
	if m.clearedpackages {
		edges = append(edges, hospital.EdgePackages)
	}
	if m.clearedtreatments {
		edges = append(edges, hospital.EdgeTreatments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HospitalMutation) EdgeCleared(name string) bool {
	switch name {
	case hospital.EdgeDoctors:
		return m.cleareddoctors
	case hospital.EdgePackages:
		return m.clearedpackages
	case hospital.EdgeTreatments:
		return m.clearedtreatments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HospitalMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Hospital unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HospitalMutation) ResetEdge(name string) error {
	switch name {
	case hospital.EdgeDoctors:
		m.ResetDoctors()
		return nil
	case hospital.EdgePackages:
		m.ResetPackages()
		return nil
	case hospital.EdgeTreatments:
		m.ResetTreatments()
		return nil
	}
	return fmt.Errorf("unknown Hospital edge %s", name)
}

// MediaMutation represents an operation that mutates the Media nodes in the graph.
type MediaMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	is_archived   *bool
	archived_at   *time.Time
	key           *string
	content_type  *string
	size_bytes    *int64
	addsize_bytes *int64
	alt_en        *string
	alt_ar        *string
	entity        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Media, error)
	predicates    []predicate.Media
}

var _ ent.Mutation = (*MediaMutation)(nil)

// mediaOption allows management of the mutation configuration using functional options.
type mediaOption func(*MediaMutation)

// newMediaMutation creates new mutation for the Media entity.
func newMediaMutation(c config, op Op, opts ...mediaOption) *MediaMutation {
	m := &MediaMutation{
		config:        c,
		op:            op,
		typ:           TypeMedia,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediaID sets the ID field of the mutation.
func withMediaID(id uuid.UUID) mediaOption {
	return func(m *MediaMutation) {
		var (
			err   error
			once  sync.Once
			value *Media
		)
		m.oldValue = func(ctx context.Context) (*Media, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Media.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedia sets the old Media of the mutation.
func withMedia(node *Media) mediaOption {
	return func(m *MediaMutation) {
		m.oldValue = func(context.Context) (*Media, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Media entities.
func (m *MediaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Media.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MediaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MediaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MediaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MediaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MediaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MediaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetIsArchived sets the "is_archived" field.
func (m *MediaMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *MediaMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *MediaMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *MediaMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *MediaMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *MediaMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[media.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *MediaMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[media.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *MediaMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, media.FieldArchivedAt)
}

// SetKey sets the "key" field.
func (m *MediaMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *MediaMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *MediaMutation) ResetKey() {
	m.key = nil
}

// SetContentType sets the "content_type" field.
func (m *MediaMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *MediaMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *MediaMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *MediaMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *MediaMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *MediaMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *MediaMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *MediaMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetAltEn sets the "alt_en" field.
func (m *MediaMutation) SetAltEn(s string) {
	m.alt_en = &s
}

// AltEn returns the value of the "alt_en" field in the mutation.
func (m *MediaMutation) AltEn() (r string, exists bool) {
	v := m.alt_en
	if v == nil {
		return
	}
	return *v, true
}

// OldAltEn returns the old "alt_en" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldAltEn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltEn: %w", err)
	}
	return oldValue.AltEn, nil
}

// ClearAltEn clears the value of the "alt_en" field.
func (m *MediaMutation) ClearAltEn() {
	m.alt_en = nil
	m.clearedFields[media.FieldAltEn] = struct{}{}
}

// AltEnCleared returns if the "alt_en" field was cleared in this mutation.
func (m *MediaMutation) AltEnCleared() bool {
	_, ok := m.clearedFields[media.FieldAltEn]
	return ok
}

// ResetAltEn resets all changes to the "alt_en" field.
func (m *MediaMutation) ResetAltEn() {
	m.alt_en = nil
	delete(m.clearedFields, media.FieldAltEn)
}

// SetAltAr sets the "alt_ar" field.
func (m *MediaMutation) SetAltAr(s string) {
	m.alt_ar = &s
}

// AltAr returns the value of the "alt_ar" field in the mutation.
func (m *MediaMutation) AltAr() (r string, exists bool) {
	v := m.alt_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldAltAr returns the old "alt_ar" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldAltAr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltAr: %w", err)
	}
	return oldValue.AltAr, nil
}

// ClearAltAr clears the value of the "alt_ar" field.
func (m *MediaMutation) ClearAltAr() {
	m.alt_ar = nil
	m.clearedFields[media.FieldAltAr] = struct{}{}
}

// AltArCleared returns if the "alt_ar" field was cleared in this mutation.
func (m *MediaMutation) AltArCleared() bool {
	_, ok := m.clearedFields[media.FieldAltAr]
	return ok
}

// ResetAltAr resets all changes to the "alt_ar" field.
func (m *MediaMutation) ResetAltAr() {
	m.alt_ar = nil
	delete(m.clearedFields, media.FieldAltAr)
}

// SetEntity sets the "entity" field.
func (m *MediaMutation) SetEntity(s string) {
	m.entity = &s
}

// Entity returns the value of the "entity" field in the mutation.
func (m *MediaMutation) Entity() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntity returns the old "entity" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldEntity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntity: %w", err)
	}
	return oldValue.Entity, nil
}

// ClearEntity clears the value of the "entity" field.
func (m *MediaMutation) ClearEntity() {
	m.entity = nil
	m.clearedFields[media.FieldEntity] = struct{}{}
}

// EntityCleared returns if the "entity" field was cleared in this mutation.
func (m *MediaMutation) EntityCleared() bool {
	_, ok := m.clearedFields[media.FieldEntity]
	return ok
}

// ResetEntity resets all changes to the "entity" field.
func (m *MediaMutation) ResetEntity() {
	m.entity = nil
	delete(m.clearedFields, media.FieldEntity)
}

// Where appends a list predicates to the MediaMutation builder.
func (m *MediaMutation) Where(ps ...predicate.Media) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Media, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Media).
func (m *MediaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediaMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, media.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, media.FieldUpdatedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, media.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, media.FieldArchivedAt)
	}
	if m.key != nil {
		fields = append(fields, media.FieldKey)
	}
	if m.content_type != nil {
		fields = append(fields, media.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, media.FieldSizeBytes)
	}
	if m.alt_en != nil {
		fields = append(fields, media.FieldAltEn)
	}
	if m.alt_ar != nil {
		fields = append(fields, media.FieldAltAr)
	}
	if m.entity != nil {
		fields = append(fields, media.FieldEntity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case media.FieldCreatedAt:
		return m.CreatedAt()
	case media.FieldUpdatedAt:
		return m.UpdatedAt()
	case media.FieldIsArchived:
		return m.IsArchived()
	case media.FieldArchivedAt:
		return m.ArchivedAt()
	case media.FieldKey:
		return m.Key()
	case media.FieldContentType:
		return m.ContentType()
	case media.FieldSizeBytes:
		return m.SizeBytes()
	case media.FieldAltEn:
		return m.AltEn()
	case media.FieldAltAr:
		return m.AltAr()
	case media.FieldEntity:
		return m.Entity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case media.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case media.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case media.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case media.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case media.FieldKey:
		return m.OldKey(ctx)
	case media.FieldContentType:
		return m.OldContentType(ctx)
	case media.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case media.FieldAltEn:
		return m.OldAltEn(ctx)
	case media.FieldAltAr:
		return m.OldAltAr(ctx)
	case media.FieldEntity:
		return m.OldEntity(ctx)
	}
	return nil, fmt.Errorf("unknown Media field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case media.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case media.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case media.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case media.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case media.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case media.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case media.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case media.FieldAltEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltEn(v)
		return nil
	case media.FieldAltAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltAr(v)
		return nil
	case media.FieldEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntity(v)
		return nil
	}
	return fmt.Errorf("unknown Media field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediaMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, media.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case media.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case media.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Media numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(media.FieldArchivedAt) {
		fields = append(fields, media.FieldArchivedAt)
	}
	if m.FieldCleared(media.FieldAltEn) {
		fields = append(fields, media.FieldAltEn)
	}
	if m.FieldCleared(media.FieldAltAr) {
		fields = append(fields, media.FieldAltAr)
	}
	if m.FieldCleared(media.FieldEntity) {
		fields = append(fields, media.FieldEntity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediaMutation) ClearField(name string) error {
	switch name {
	case media.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case media.FieldAltEn:
		m.ClearAltEn()
		return nil
	case media.FieldAltAr:
		m.ClearAltAr()
		return nil
	case media.FieldEntity:
		m.ClearEntity()
		return nil
	}
	return fmt.Errorf("unknown Media nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediaMutation) ResetField(name string) error {
	switch name {
	case media.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case media.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case media.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case media.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case media.FieldKey:
		m.ResetKey()
		return nil
	case media.FieldContentType:
		m.ResetContentType()
		return nil
	case media.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case media.FieldAltEn:
		m.ResetAltEn()
		return nil
	case media.FieldAltAr:
		m.ResetAltAr()
		return nil
	case media.FieldEntity:
		m.ResetEntity()
		return nil
	}
	return fmt.Errorf("unknown Media field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Media unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Media edge %s", name)
}

// TranslatorMutation represents an operation that mutates the Translator nodes in the graph.
type TranslatorMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	is_archived     *bool
	archived_at     *time.Time
	languages       *[]string
	appendlanguages []string
	city            *string
	status          *translator.Status
	bio             *string
	day_rate        *float64
	addday_rate     *float64
	clearedFields   map[string]struct{}
	user            *uuid.UUID
	cleareduser     bool
	done            bool
	oldValue        func(context.Context) (*Translator, error)
	predicates      []predicate.Translator
}

var _ ent.Mutation = (*TranslatorMutation)(nil)

// translatorOption allows management of the mutation configuration using functional options.
type translatorOption func(*TranslatorMutation)

// newTranslatorMutation creates new mutation for the Translator entity.
func newTranslatorMutation(c config, op Op, opts ...translatorOption) *TranslatorMutation {
	m := &TranslatorMutation{
		config:        c,
		op:            op,
		typ:           TypeTranslator,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranslatorID sets the ID field of the mutation.
func withTranslatorID(id uuid.UUID) translatorOption {
	return func(m *TranslatorMutation) {
		var (
			err   error
			once  sync.Once
			value *Translator
		)
		m.oldValue = func(ctx context.Context) (*Translator, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Translator.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranslator sets the old Translator of the mutation.
func withTranslator(node *Translator) translatorOption {
	return func(m *TranslatorMutation) {
		m.oldValue = func(context.Context) (*Translator, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranslatorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranslatorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Translator entities.
func (m *TranslatorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranslatorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranslatorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Translator.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TranslatorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranslatorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranslatorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TranslatorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TranslatorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TranslatorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetIsArchived sets the "is_archived" field.
func (m *TranslatorMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *TranslatorMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *TranslatorMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *TranslatorMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *TranslatorMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *TranslatorMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[translator.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *TranslatorMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[translator.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *TranslatorMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, translator.FieldArchivedAt)
}

// SetUserID sets the "user_id" field.
func (m *TranslatorMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TranslatorMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TranslatorMutation) ResetUserID() {
	m.user = nil
}

// SetLanguages sets the "languages" field.
func (m *TranslatorMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *TranslatorMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *TranslatorMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *TranslatorMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ResetLanguages resets all changes to the "languages" field.
func (m *TranslatorMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
}

// SetCity sets the "city" field.
func (m *TranslatorMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *TranslatorMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *TranslatorMutation) ClearCity() {
	m.city = nil
	m.clearedFields[translator.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *TranslatorMutation) CityCleared() bool {
	_, ok := m.clearedFields[translator.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *TranslatorMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, translator.FieldCity)
}

// SetStatus sets the "status" field.
func (m *TranslatorMutation) SetStatus(t translator.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TranslatorMutation) Status() (r translator.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldStatus(ctx context.Context) (v translator.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TranslatorMutation) ResetStatus() {
	m.status = nil
}

// SetBio sets the "bio" field.
func (m *TranslatorMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *TranslatorMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldBio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ClearBio clears the value of the "bio" field.
func (m *TranslatorMutation) ClearBio() {
	m.bio = nil
	m.clearedFields[translator.FieldBio] = struct{}{}
}

// BioCleared returns if the "bio" field was cleared in this mutation.
func (m *TranslatorMutation) BioCleared() bool {
	_, ok := m.clearedFields[translator.FieldBio]
	return ok
}

// ResetBio resets all changes to the "bio" field.
func (m *TranslatorMutation) ResetBio() {
	m.bio = nil
	delete(m.clearedFields, translator.FieldBio)
}

// SetDayRate sets the "day_rate" field.
func (m *TranslatorMutation) SetDayRate(f float64) {
	m.day_rate = &f
	m.addday_rate = nil
}

// DayRate returns the value of the "day_rate" field in the mutation.
func (m *TranslatorMutation) DayRate() (r float64, exists bool) {
	v := m.day_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldDayRate returns the old "day_rate" field's value of the Translator entity.
// If the Translator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslatorMutation) OldDayRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayRate: %w", err)
	}
	return oldValue.DayRate, nil
}

// AddDayRate adds f to the "day_rate" field.
func (m *TranslatorMutation) AddDayRate(f float64) {
	if m.addday_rate != nil {
		*m.addday_rate += f
	} else {
		m.addday_rate = &f
	}
}

// AddedDayRate returns the value that was added to the "day_rate" field in this mutation.
func (m *TranslatorMutation) AddedDayRate() (r float64, exists bool) {
	v := m.addday_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearDayRate clears the value of the "day_rate" field.
func (m *TranslatorMutation) ClearDayRate() {
	m.day_rate = nil
	m.addday_rate = nil
	m.clearedFields[translator.FieldDayRate] = struct{}{}
}

// DayRateCleared returns if the "day_rate" field was cleared in this mutation.
func (m *TranslatorMutation) DayRateCleared() bool {
	_, ok := m.clearedFields[translator.FieldDayRate]
	return ok
}

// ResetDayRate resets all changes to the "day_rate" field.
func (m *TranslatorMutation) ResetDayRate() {
	m.day_rate = nil
	m.addday_rate = nil
	delete(m.clearedFields, translator.FieldDayRate)
}

// ClearUser clears the "user" edge to the User entity.
func (m *TranslatorMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[translator.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TranslatorMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TranslatorMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TranslatorMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the TranslatorMutation builder.
func (m *TranslatorMutation) Where(ps ...predicate.Translator) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranslatorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranslatorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Translator, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranslatorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranslatorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Translator).
func (m *TranslatorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranslatorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, translator.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, translator.FieldUpdatedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, translator.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, translator.FieldArchivedAt)
	}
	if m.user != nil {
		fields = append(fields, translator.FieldUserID)
	}
	if m.languages != nil {
		fields = append(fields, translator.FieldLanguages)
	}
	if m.city != nil {
		fields = append(fields, translator.FieldCity)
	}
	if m.status != nil {
		fields = append(fields, translator.FieldStatus)
	}
	if m.bio != nil {
		fields = append(fields, translator.FieldBio)
	}
	if m.day_rate != nil {
		fields = append(fields, translator.FieldDayRate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranslatorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case translator.FieldCreatedAt:
		return m.CreatedAt()
	case translator.FieldUpdatedAt:
		return m.UpdatedAt()
	case translator.FieldIsArchived:
		return m.IsArchived()
	case translator.FieldArchivedAt:
		return m.ArchivedAt()
	case translator.FieldUserID:
		return m.UserID()
	case translator.FieldLanguages:
		return m.Languages()
	case translator.FieldCity:
		return m.City()
	case translator.FieldStatus:
		return m.Status()
	case translator.FieldBio:
		return m.Bio()
	case translator.FieldDayRate:
		return m.DayRate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranslatorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case translator.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case translator.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case translator.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case translator.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case translator.FieldUserID:
		return m.OldUserID(ctx)
	case translator.FieldLanguages:
		return m.OldLanguages(ctx)
	case translator.FieldCity:
		return m.OldCity(ctx)
	case translator.FieldStatus:
		return m.OldStatus(ctx)
	case translator.FieldBio:
		return m.OldBio(ctx)
	case translator.FieldDayRate:
		return m.OldDayRate(ctx)
	}
	return nil, fmt.Errorf("unknown Translator field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslatorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case translator.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case translator.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case translator.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case translator.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case translator.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case translator.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case translator.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case translator.FieldStatus:
		v, ok := value.(translator.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case translator.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	case translator.FieldDayRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayRate(v)
		return nil
	}
	return fmt.Errorf("unknown Translator field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranslatorMutation) AddedFields() []string {
	var fields []string
	if m.addday_rate != nil {
		fields = append(fields, translator.FieldDayRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranslatorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case translator.FieldDayRate:
		return m.AddedDayRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslatorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case translator.FieldDayRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayRate(v)
		return nil
	}
	return fmt.Errorf("unknown Translator numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranslatorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(translator.FieldArchivedAt) {
		fields = append(fields, translator.FieldArchivedAt)
	}
	if m.FieldCleared(translator.FieldCity) {
		fields = append(fields, translator.FieldCity)
	}
	if m.FieldCleared(translator.FieldBio) {
		fields = append(fields, translator.FieldBio)
	}
	if m.FieldCleared(translator.FieldDayRate) {
		fields = append(fields, translator.FieldDayRate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranslatorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranslatorMutation) ClearField(name string) error {
	switch name {
	case translator.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case translator.FieldCity:
		m.ClearCity()
		return nil
	case translator.FieldBio:
		m.ClearBio()
		return nil
	case translator.FieldDayRate:
		m.ClearDayRate()
		return nil
	}
	return fmt.Errorf("unknown Translator nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranslatorMutation) ResetField(name string) error {
	switch name {
	case translator.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case translator.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case translator.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case translator.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case translator.FieldUserID:
		m.ResetUserID()
		return nil
	case translator.FieldLanguages:
		m.ResetLanguages()
		return nil
	case translator.FieldCity:
		m.ResetCity()
		return nil
	case translator.FieldStatus:
		m.ResetStatus()
		return nil
	case translator.FieldBio:
		m.ResetBio()
		return nil
	case translator.FieldDayRate:
		m.ResetDayRate()
		return nil
	}
	return fmt.Errorf("unknown Translator field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranslatorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, translator.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranslatorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case translator.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranslatorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranslatorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranslatorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, translator.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranslatorMutation) EdgeCleared(name string) bool {
	switch name {
	case translator.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranslatorMutation) ClearEdge(name string) error {
	switch name {
	case translator.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Translator unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranslatorMutation) ResetEdge(name string) error {
	switch name {
	case translator.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Translator edge %s", name)
}

// TreatmentMutation represents an operation that mutates the Treatment nodes in the graph.
type TreatmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	published           *bool
	published_at        *time.Time
	is_archived         *bool
	archived_at         *time.Time
	name_en             *string
	name_ar             *string
	slug                *string
	category_en         *string
	category_ar         *string
	summary_en          *string
	summary_ar          *string
	body_en             *content.Document
	body_ar             *content.Document
	cost_min            *float64
	addcost_min         *float64
	cost_max            *float64
	addcost_max         *float64
	currency            *string
	stay_days_min       *int
	addstay_days_min    *int
	stay_days_max       *int
	addstay_days_max    *int
	faq                 *[]content.FAQItem
	appendfaq           []content.FAQItem
	images              *content.Images
	featured            *bool
	meta_title_en       *string
	meta_title_ar       *string
	meta_description_en *string
	meta_description_ar *string
	clearedFields       map[string]struct{}
	hospitals           map[uuid.UUID]struct{}
	removedhospitals    map[uuid.UUID]struct{}
	clearedhospitals    bool
	packages            map[uuid.UUID]struct{}
	removedpackages     map[uuid.UUID]struct{}
	clearedpackages     bool
	done                bool
	oldValue            func(context.Context) (*Treatment, error)
	predicates          []predicate.Treatment
}

var _ ent.Mutation = (*TreatmentMutation)(nil)

// treatmentOption allows management of the mutation configuration using functional options.
type treatmentOption func(*TreatmentMutation)

// newTreatmentMutation creates new mutation for the Treatment entity.
func newTreatmentMutation(c config, op Op, opts ...treatmentOption) *TreatmentMutation {
	m := &TreatmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTreatment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTreatmentID sets the ID field of the mutation.
func withTreatmentID(id uuid.UUID) treatmentOption {
	return func(m *TreatmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Treatment
		)
		m.oldValue = func(ctx context.Context) (*Treatment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Treatment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTreatment sets the old Treatment of the mutation.
func withTreatment(node *Treatment) treatmentOption {
	return func(m *TreatmentMutation) {
		m.oldValue = func(context.Context) (*Treatment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TreatmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TreatmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Treatment entities.
func (m *TreatmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TreatmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TreatmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Treatment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TreatmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TreatmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TreatmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TreatmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TreatmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TreatmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPublished sets the "published" field.
func (m *TreatmentMutation) SetPublished(b bool) {
	m.published = &b
}

// Published returns the value of the "published" field in the mutation.
func (m *TreatmentMutation) Published() (r bool, exists bool) {
	v := m.published
	if v == nil {
		return
	}
	return *v, true
}

// OldPublished returns the old "published" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublished: %w", err)
	}
	return oldValue.Published, nil
}

// ResetPublished resets all changes to the "published" field.
func (m *TreatmentMutation) ResetPublished() {
	m.published = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *TreatmentMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *TreatmentMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *TreatmentMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[treatment.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *TreatmentMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[treatment.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *TreatmentMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, treatment.FieldPublishedAt)
}

// SetIsArchived sets the "is_archived" field.
func (m *TreatmentMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *TreatmentMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *TreatmentMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *TreatmentMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *TreatmentMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *TreatmentMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[treatment.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *TreatmentMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[treatment.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *TreatmentMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, treatment.FieldArchivedAt)
}

// SetNameEn sets the "name_en" field.
func (m *TreatmentMutation) SetNameEn(s string) {
	m.name_en = &s
}

// NameEn returns the value of the "name_en" field in the mutation.
func (m *TreatmentMutation) NameEn() (r string, exists bool) {
	v := m.name_en
	if v == nil {
		return
	}
	return *v, true
}

// OldNameEn returns the old "name_en" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldNameEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameEn: %w", err)
	}
	return oldValue.NameEn, nil
}

// ResetNameEn resets all changes to the "name_en" field.
func (m *TreatmentMutation) ResetNameEn() {
	m.name_en = nil
}

// SetNameAr sets the "name_ar" field.
func (m *TreatmentMutation) SetNameAr(s string) {
	m.name_ar = &s
}

// NameAr returns the value of the "name_ar" field in the mutation.
func (m *TreatmentMutation) NameAr() (r string, exists bool) {
	v := m.name_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldNameAr returns the old "name_ar" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldNameAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameAr: %w", err)
	}
	return oldValue.NameAr, nil
}

// ResetNameAr resets all changes to the "name_ar" field.
func (m *TreatmentMutation) ResetNameAr() {
	m.name_ar = nil
}

// SetSlug sets the "slug" field.
func (m *TreatmentMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *TreatmentMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *TreatmentMutation) ResetSlug() {
	m.slug = nil
}

// SetCategoryEn sets the "category_en" field.
func (m *TreatmentMutation) SetCategoryEn(s string) {
	m.category_en = &s
}

// CategoryEn returns the value of the "category_en" field in the mutation.
func (m *TreatmentMutation) CategoryEn() (r string, exists bool) {
	v := m.category_en
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryEn returns the old "category_en" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldCategoryEn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryEn: %w", err)
	}
	return oldValue.CategoryEn, nil
}

// ClearCategoryEn clears the value of the "category_en" field.
func (m *TreatmentMutation) ClearCategoryEn() {
	m.category_en = nil
	m.clearedFields[treatment.FieldCategoryEn] = struct{}{}
}

// CategoryEnCleared returns if the "category_en" field was cleared in this mutation.
func (m *TreatmentMutation) CategoryEnCleared() bool {
	_, ok := m.clearedFields[treatment.FieldCategoryEn]
	return ok
}

// ResetCategoryEn resets all changes to the "category_en" field.
func (m *TreatmentMutation) ResetCategoryEn() {
	m.category_en = nil
	delete(m.clearedFields, treatment.FieldCategoryEn)
}

// SetCategoryAr sets the "category_ar" field.
func (m *TreatmentMutation) SetCategoryAr(s string) {
	m.category_ar = &s
}

// CategoryAr returns the value of the "category_ar" field in the mutation.
func (m *TreatmentMutation) CategoryAr() (r string, exists bool) {
	v := m.category_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryAr returns the old "category_ar" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldCategoryAr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryAr: %w", err)
	}
	return oldValue.CategoryAr, nil
}

// ClearCategoryAr clears the value of the "category_ar" field.
func (m *TreatmentMutation) ClearCategoryAr() {
	m.category_ar = nil
	m.clearedFields[treatment.FieldCategoryAr] = struct{}{}
}

// CategoryArCleared returns if the "category_ar" field was cleared in this mutation.
func (m *TreatmentMutation) CategoryArCleared() bool {
	_, ok := m.clearedFields[treatment.FieldCategoryAr]
	return ok
}

// ResetCategoryAr resets all changes to the "category_ar" field.
func (m *TreatmentMutation) ResetCategoryAr() {
	m.category_ar = nil
	delete(m.clearedFields, treatment.FieldCategoryAr)
}

// SetSummaryEn sets the "summary_en" field.
func (m *TreatmentMutation) SetSummaryEn(s string) {
	m.summary_en = &s
}

// SummaryEn returns the value of the "summary_en" field in the mutation.
func (m *TreatmentMutation) SummaryEn() (r string, exists bool) {
	v := m.summary_en
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryEn returns the old "summary_en" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldSummaryEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryEn: %w", err)
	}
	return oldValue.SummaryEn, nil
}

// ClearSummaryEn clears the value of the "summary_en" field.
func (m *TreatmentMutation) ClearSummaryEn() {
	m.summary_en = nil
	m.clearedFields[treatment.FieldSummaryEn] = struct{}{}
}

// SummaryEnCleared returns if the "summary_en" field was cleared in this mutation.
func (m *TreatmentMutation) SummaryEnCleared() bool {
	_, ok := m.clearedFields[treatment.FieldSummaryEn]
	return ok
}

// ResetSummaryEn resets all changes to the "summary_en" field.
func (m *TreatmentMutation) ResetSummaryEn() {
	m.summary_en = nil
	delete(m.clearedFields, treatment.FieldSummaryEn)
}

// SetSummaryAr sets the "summary_ar" field.
func (m *TreatmentMutation) SetSummaryAr(s string) {
	m.summary_ar = &s
}

// SummaryAr returns the value of the "summary_ar" field in the mutation.
func (m *TreatmentMutation) SummaryAr() (r string, exists bool) {
	v := m.summary_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryAr returns the old "summary_ar" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldSummaryAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryAr: %w", err)
	}
	return oldValue.SummaryAr, nil
}

// ClearSummaryAr clears the value of the "summary_ar" field.
func (m *TreatmentMutation) ClearSummaryAr() {
	m.summary_ar = nil
	m.clearedFields[treatment.FieldSummaryAr] = struct{}{}
}

// SummaryArCleared returns if the "summary_ar" field was cleared in this mutation.
func (m *TreatmentMutation) SummaryArCleared() bool {
	_, ok := m.clearedFields[treatment.FieldSummaryAr]
	return ok
}

// ResetSummaryAr resets all changes to the "summary_ar" field.
func (m *TreatmentMutation) ResetSummaryAr() {
	m.summary_ar = nil
	delete(m.clearedFields, treatment.FieldSummaryAr)
}

// SetBodyEn sets the "body_en" field.
func (m *TreatmentMutation) SetBodyEn(c content.Document) {
	m.body_en = &c
}

// BodyEn returns the value of the "body_en" field in the mutation.
func (m *TreatmentMutation) BodyEn() (r content.Document, exists bool) {
	v := m.body_en
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyEn returns the old "body_en" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldBodyEn(ctx context.Context) (v content.Document, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyEn: %w", err)
	}
	return oldValue.BodyEn, nil
}

// ClearBodyEn clears the value of the "body_en" field.
func (m *TreatmentMutation) ClearBodyEn() {
	m.body_en = nil
	m.clearedFields[treatment.FieldBodyEn] = struct{}{}
}

// BodyEnCleared returns if the "body_en" field was cleared in this mutation.
func (m *TreatmentMutation) BodyEnCleared() bool {
	_, ok := m.clearedFields[treatment.FieldBodyEn]
	return ok
}

// ResetBodyEn resets all changes to the "body_en" field.
func (m *TreatmentMutation) ResetBodyEn() {
	m.body_en = nil
	delete(m.clearedFields, treatment.FieldBodyEn)
}

// SetBodyAr sets the "body_ar" field.
func (m *TreatmentMutation) SetBodyAr(c content.Document) {
	m.body_ar = &c
}

// BodyAr returns the value of the "body_ar" field in the mutation.
func (m *TreatmentMutation) BodyAr() (r content.Document, exists bool) {
	v := m.body_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyAr returns the old "body_ar" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldBodyAr(ctx context.Context) (v content.Document, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyAr: %w", err)
	}
	return oldValue.BodyAr, nil
}

// ClearBodyAr clears the value of the "body_ar" field.
func (m *TreatmentMutation) ClearBodyAr() {
	m.body_ar = nil
	m.clearedFields[treatment.FieldBodyAr] = struct{}{}
}

// BodyArCleared returns if the "body_ar" field was cleared in this mutation.
func (m *TreatmentMutation) BodyArCleared() bool {
	_, ok := m.clearedFields[treatment.FieldBodyAr]
	return ok
}

// ResetBodyAr resets all changes to the "body_ar" field.
func (m *TreatmentMutation) ResetBodyAr() {
	m.body_ar = nil
	delete(m.clearedFields, treatment.FieldBodyAr)
}

// SetCostMin sets the "cost_min" field.
func (m *TreatmentMutation) SetCostMin(f float64) {
	m.cost_min = &f
	m.addcost_min = nil
}

// CostMin returns the value of the "cost_min" field in the mutation.
func (m *TreatmentMutation) CostMin() (r float64, exists bool) {
	v := m.cost_min
	if v == nil {
		return
	}
	return *v, true
}

// OldCostMin returns the old "cost_min" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldCostMin(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostMin: %w", err)
	}
	return oldValue.CostMin, nil
}

// AddCostMin adds f to the "cost_min" field.
func (m *TreatmentMutation) AddCostMin(f float64) {
	if m.addcost_min != nil {
		*m.addcost_min += f
	} else {
		m.addcost_min = &f
	}
}

// AddedCostMin returns the value that was added to the "cost_min" field in this mutation.
func (m *TreatmentMutation) AddedCostMin() (r float64, exists bool) {
	v := m.addcost_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostMin resets all changes to the "cost_min" field.
func (m *TreatmentMutation) ResetCostMin() {
	m.cost_min = nil
	m.addcost_min = nil
}

// SetCostMax sets the "cost_max" field.
func (m *TreatmentMutation) SetCostMax(f float64) {
	m.cost_max = &f
	m.addcost_max = nil
}

// CostMax returns the value of the "cost_max" field in the mutation.
func (m *TreatmentMutation) CostMax() (r float64, exists bool) {
	v := m.cost_max
	if v == nil {
		return
	}
	return *v, true
}

// OldCostMax returns the old "cost_max" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldCostMax(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostMax: %w", err)
	}
	return oldValue.CostMax, nil
}

// AddCostMax adds f to the "cost_max" field.
func (m *TreatmentMutation) AddCostMax(f float64) {
	if m.addcost_max != nil {
		*m.addcost_max += f
	} else {
		m.addcost_max = &f
	}
}

// AddedCostMax returns the value that was added to the "cost_max" field in this mutation.
func (m *TreatmentMutation) AddedCostMax() (r float64, exists bool) {
	v := m.addcost_max
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostMax resets all changes to the "cost_max" field.
func (m *TreatmentMutation) ResetCostMax() {
	m.cost_max = nil
	m.addcost_max = nil
}

// SetCurrency sets the "currency" field.
func (m *TreatmentMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *TreatmentMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *TreatmentMutation) ResetCurrency() {
	m.currency = nil
}

// SetStayDaysMin sets the "stay_days_min" field.
func (m *TreatmentMutation) SetStayDaysMin(i int) {
	m.stay_days_min = &i
	m.addstay_days_min = nil
}

// StayDaysMin returns the value of the "stay_days_min" field in the mutation.
func (m *TreatmentMutation) StayDaysMin() (r int, exists bool) {
	v := m.stay_days_min
	if v == nil {
		return
	}
	return *v, true
}

// OldStayDaysMin returns the old "stay_days_min" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldStayDaysMin(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStayDaysMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStayDaysMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStayDaysMin: %w", err)
	}
	return oldValue.StayDaysMin, nil
}

// AddStayDaysMin adds i to the "stay_days_min" field.
func (m *TreatmentMutation) AddStayDaysMin(i int) {
	if m.addstay_days_min != nil {
		*m.addstay_days_min += i
	} else {
		m.addstay_days_min = &i
	}
}

// AddedStayDaysMin returns the value that was added to the "stay_days_min" field in this mutation.
func (m *TreatmentMutation) AddedStayDaysMin() (r int, exists bool) {
	v := m.addstay_days_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearStayDaysMin clears the value of the "stay_days_min" field.
func (m *TreatmentMutation) ClearStayDaysMin() {
	m.stay_days_min = nil
	m.addstay_days_min = nil
	m.clearedFields[treatment.FieldStayDaysMin] = struct{}{}
}

// StayDaysMinCleared returns if the "stay_days_min" field was cleared in this mutation.
func (m *TreatmentMutation) StayDaysMinCleared() bool {
	_, ok := m.clearedFields[treatment.FieldStayDaysMin]
	return ok
}

// ResetStayDaysMin resets all changes to the "stay_days_min" field.
func (m *TreatmentMutation) ResetStayDaysMin() {
	m.stay_days_min = nil
	m.addstay_days_min = nil
	delete(m.clearedFields, treatment.FieldStayDaysMin)
}

// SetStayDaysMax sets the "stay_days_max" field.
func (m *TreatmentMutation) SetStayDaysMax(i int) {
	m.stay_days_max = &i
	m.addstay_days_max = nil
}

// StayDaysMax returns the value of the "stay_days_max" field in the mutation.
func (m *TreatmentMutation) StayDaysMax() (r int, exists bool) {
	v := m.stay_days_max
	if v == nil {
		return
	}
	return *v, true
}

// OldStayDaysMax returns the old "stay_days_max" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldStayDaysMax(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStayDaysMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStayDaysMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStayDaysMax: %w", err)
	}
	return oldValue.StayDaysMax, nil
}

// AddStayDaysMax adds i to the "stay_days_max" field.
func (m *TreatmentMutation) AddStayDaysMax(i int) {
	if m.addstay_days_max != nil {
		*m.addstay_days_max += i
	} else {
		m.addstay_days_max = &i
	}
}

// AddedStayDaysMax returns the value that was added to the "stay_days_max" field in this mutation.
func (m *TreatmentMutation) AddedStayDaysMax() (r int, exists bool) {
	v := m.addstay_days_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearStayDaysMax clears the value of the "stay_days_max" field.
func (m *TreatmentMutation) ClearStayDaysMax() {
	m.stay_days_max = nil
	m.addstay_days_max = nil
	m.clearedFields[treatment.FieldStayDaysMax] = struct{}{}
}

// StayDaysMaxCleared returns if the "stay_days_max" field was cleared in this mutation.
func (m *TreatmentMutation) StayDaysMaxCleared() bool {
	_, ok := m.clearedFields[treatment.FieldStayDaysMax]
	return ok
}

// ResetStayDaysMax resets all changes to the "stay_days_max" field.
func (m *TreatmentMutation) ResetStayDaysMax() {
	m.stay_days_max = nil
	m.addstay_days_max = nil
	delete(m.clearedFields, treatment.FieldStayDaysMax)
}

// SetFaq sets the "faq" field.
func (m *TreatmentMutation) SetFaq(ci []content.FAQItem) {
	m.faq = &ci
	m.appendfaq = nil
}

// Faq returns the value of the "faq" field in the mutation.
func (m *TreatmentMutation) Faq() (r []content.FAQItem, exists bool) {
	v := m.faq
	if v == nil {
		return
	}
	return *v, true
}

// OldFaq returns the old "faq" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldFaq(ctx context.Context) (v []content.FAQItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaq: %w", err)
	}
	return oldValue.Faq, nil
}

// AppendFaq adds ci to the "faq" field.
func (m *TreatmentMutation) AppendFaq(ci []content.FAQItem) {
	m.appendfaq = append(m.appendfaq, ci...)
}

// AppendedFaq returns the list of values that were appended to the "faq" field in this mutation.
func (m *TreatmentMutation) AppendedFaq() ([]content.FAQItem, bool) {
	if len(m.appendfaq) == 0 {
		return nil, false
	}
	return m.appendfaq, true
}

// ClearFaq clears the value of the "faq" field.
func (m *TreatmentMutation) ClearFaq() {
	m.faq = nil
	m.appendfaq = nil
	m.clearedFields[treatment.FieldFaq] = struct{}{}
}

// FaqCleared returns if the "faq" field was cleared in this mutation.
func (m *TreatmentMutation) FaqCleared() bool {
	_, ok := m.clearedFields[treatment.FieldFaq]
	return ok
}

// ResetFaq resets all changes to the "faq" field.
func (m *TreatmentMutation) ResetFaq() {
	m.faq = nil
	m.appendfaq = nil
	delete(m.clearedFields, treatment.FieldFaq)
}

// SetImages sets the "images" field.
func (m *TreatmentMutation) SetImages(c content.Images) {
	m.images = &c
}

// Images returns the value of the "images" field in the mutation.
func (m *TreatmentMutation) Images() (r content.Images, exists bool) {
	v := m.images
	if v == nil {
		return
	}
	return *v, true
}

// OldImages returns the old "images" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldImages(ctx context.Context) (v content.Images, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImages: %w", err)
	}
	return oldValue.Images, nil
}

// ClearImages clears the value of the "images" field.
func (m *TreatmentMutation) ClearImages() {
	m.images = nil
	m.clearedFields[treatment.FieldImages] = struct{}{}
}

// ImagesCleared returns if the "images" field was cleared in this mutation.
func (m *TreatmentMutation) ImagesCleared() bool {
	_, ok := m.clearedFields[treatment.FieldImages]
	return ok
}

// ResetImages resets all changes to the "images" field.
func (m *TreatmentMutation) ResetImages() {
	m.images = nil
	delete(m.clearedFields, treatment.FieldImages)
}

// SetFeatured sets the "featured" field.
func (m *TreatmentMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *TreatmentMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *TreatmentMutation) ResetFeatured() {
	m.featured = nil
}

// SetMetaTitleEn sets the "meta_title_en" field.
func (m *TreatmentMutation) SetMetaTitleEn(s string) {
	m.meta_title_en = &s
}

// MetaTitleEn returns the value of the "meta_title_en" field in the mutation.
func (m *TreatmentMutation) MetaTitleEn() (r string, exists bool) {
	v := m.meta_title_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleEn returns the old "meta_title_en" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldMetaTitleEn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleEn: %w", err)
	}
	return oldValue.MetaTitleEn, nil
}

// ClearMetaTitleEn clears the value of the "meta_title_en" field.
func (m *TreatmentMutation) ClearMetaTitleEn() {
	m.meta_title_en = nil
	m.clearedFields[treatment.FieldMetaTitleEn] = struct{}{}
}

// MetaTitleEnCleared returns if the "meta_title_en" field was cleared in this mutation.
func (m *TreatmentMutation) MetaTitleEnCleared() bool {
	_, ok := m.clearedFields[treatment.FieldMetaTitleEn]
	return ok
}

// ResetMetaTitleEn resets all changes to the "meta_title_en" field.
func (m *TreatmentMutation) ResetMetaTitleEn() {
	m.meta_title_en = nil
	delete(m.clearedFields, treatment.FieldMetaTitleEn)
}

// SetMetaTitleAr sets the "meta_title_ar" field.
func (m *TreatmentMutation) SetMetaTitleAr(s string) {
	m.meta_title_ar = &s
}

// MetaTitleAr returns the value of the "meta_title_ar" field in the mutation.
func (m *TreatmentMutation) MetaTitleAr() (r string, exists bool) {
	v := m.meta_title_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitleAr returns the old "meta_title_ar" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldMetaTitleAr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitleAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitleAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitleAr: %w", err)
	}
	return oldValue.MetaTitleAr, nil
}

// ClearMetaTitleAr clears the value of the "meta_title_ar" field.
func (m *TreatmentMutation) ClearMetaTitleAr() {
	m.meta_title_ar = nil
	m.clearedFields[treatment.FieldMetaTitleAr] = struct{}{}
}

// MetaTitleArCleared returns if the "meta_title_ar" field was cleared in this mutation.
func (m *TreatmentMutation) MetaTitleArCleared() bool {
	_, ok := m.clearedFields[treatment.FieldMetaTitleAr]
	return ok
}

// ResetMetaTitleAr resets all changes to the "meta_title_ar" field.
func (m *TreatmentMutation) ResetMetaTitleAr() {
	m.meta_title_ar = nil
	delete(m.clearedFields, treatment.FieldMetaTitleAr)
}

// SetMetaDescriptionEn sets the "meta_description_en" field.
func (m *TreatmentMutation) SetMetaDescriptionEn(s string) {
	m.meta_description_en = &s
}

// MetaDescriptionEn returns the value of the "meta_description_en" field in the mutation.
func (m *TreatmentMutation) MetaDescriptionEn() (r string, exists bool) {
	v := m.meta_description_en
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionEn returns the old "meta_description_en" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldMetaDescriptionEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionEn: %w", err)
	}
	return oldValue.MetaDescriptionEn, nil
}

// ClearMetaDescriptionEn clears the value of the "meta_description_en" field.
func (m *TreatmentMutation) ClearMetaDescriptionEn() {
	m.meta_description_en = nil
	m.clearedFields[treatment.FieldMetaDescriptionEn] = struct{}{}
}

// MetaDescriptionEnCleared returns if the "meta_description_en" field was cleared in this mutation.
func (m *TreatmentMutation) MetaDescriptionEnCleared() bool {
	_, ok := m.clearedFields[treatment.FieldMetaDescriptionEn]
	return ok
}

// ResetMetaDescriptionEn resets all changes to the "meta_description_en" field.
func (m *TreatmentMutation) ResetMetaDescriptionEn() {
	m.meta_description_en = nil
	delete(m.clearedFields, treatment.FieldMetaDescriptionEn)
}

// SetMetaDescriptionAr sets the "meta_description_ar" field.
func (m *TreatmentMutation) SetMetaDescriptionAr(s string) {
	m.meta_description_ar = &s
}

// MetaDescriptionAr returns the value of the "meta_description_ar" field in the mutation.
func (m *TreatmentMutation) MetaDescriptionAr() (r string, exists bool) {
	v := m.meta_description_ar
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescriptionAr returns the old "meta_description_ar" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldMetaDescriptionAr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescriptionAr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescriptionAr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescriptionAr: %w", err)
	}
	return oldValue.MetaDescriptionAr, nil
}

// ClearMetaDescriptionAr clears the value of the "meta_description_ar" field.
func (m *TreatmentMutation) ClearMetaDescriptionAr() {
	m.meta_description_ar = nil
	m.clearedFields[treatment.FieldMetaDescriptionAr] = struct{}{}
}

// MetaDescriptionArCleared returns if the "meta_description_ar" field was cleared in this mutation.
func (m *TreatmentMutation) MetaDescriptionArCleared() bool {
	_, ok := m.clearedFields[treatment.FieldMetaDescriptionAr]
	return ok
}

// ResetMetaDescriptionAr resets all changes to the "meta_description_ar" field.
func (m *TreatmentMutation) ResetMetaDescriptionAr() {
	m.meta_description_ar = nil
	delete(m.clearedFields, treatment.FieldMetaDescriptionAr)
}

// AddHospitalIDs adds the "hospitals" edge to the Hospital entity by ids.
func (m *TreatmentMutation) AddHospitalIDs(ids ...uuid.UUID) {
	if m.hospitals == nil {
		m.hospitals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.hospitals[ids[i]] = struct{}{}
	}
}

// ClearHospitals clears the "hospitals" edge to the Hospital entity.
func (m *TreatmentMutation) ClearHospitals() {
	m.clearedhospitals = true
}

// HospitalsCleared reports if the "hospitals" edge to the Hospital entity was cleared.
func (m *TreatmentMutation) HospitalsCleared() bool {
	return m.clearedhospitals
}

// RemoveHospitalIDs removes the "hospitals" edge to the Hospital entity by IDs.
func (m *TreatmentMutation) RemoveHospitalIDs(ids ...uuid.UUID) {
	if m.removedhospitals == nil {
		m.removedhospitals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.hospitals, ids[i])
		m.removedhospitals[ids[i]] = struct{}{}
	}
}

// RemovedHospitals returns the removed IDs of the "hospitals" edge to the Hospital entity.
func (m *TreatmentMutation) RemovedHospitalsIDs() (ids []uuid.UUID) {
	for id := range m.removedhospitals {
		ids = append(ids, id)
	}
	return
}

// HospitalsIDs returns the "hospitals" edge IDs in the mutation.
func (m *TreatmentMutation) HospitalsIDs() (ids []uuid.UUID) {
	for id := range m.hospitals {
		ids = append(ids, id)
	}
	return
}

// ResetHospitals resets all changes to the "hospitals" edge.
func (m *TreatmentMutation) ResetHospitals() {
	m.hospitals = nil
	m.clearedhospitals = false
	m.removedhospitals = nil
}

// AddPackageIDs adds the "packages" edge to the CarePackage entity by ids.
func (m *TreatmentMutation) AddPackageIDs(ids ...uuid.UUID) {
	if m.packages == nil {
		m.packages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.packages[ids[i]] = struct{}{}
	}
}

// ClearPackages clears the "packages" edge to the CarePackage entity.
func (m *TreatmentMutation) ClearPackages() {
	m.clearedpackages = true
}

// PackagesCleared reports if the "packages" edge to the CarePackage entity was cleared.
func (m *TreatmentMutation) PackagesCleared() bool {
	return m.clearedpackages
}

// RemovePackageIDs removes the "packages" edge to the CarePackage entity by IDs.
func (m *TreatmentMutation) RemovePackageIDs(ids ...uuid.UUID) {
	if m.removedpackages == nil {
		m.removedpackages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.packages, ids[i])
		m.removedpackages[ids[i]] = struct{}{}
	}
}

// RemovedPackages returns the removed IDs of the "packages" edge to the CarePackage entity.
func (m *TreatmentMutation) RemovedPackagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpackages {
		ids = append(ids, id)
	}
	return
}

// PackagesIDs returns the "packages" edge IDs in the mutation.
func (m *TreatmentMutation) PackagesIDs() (ids []uuid.UUID) {
	for id := range m.packages {
		ids = append(ids, id)
	}
	return
}

// ResetPackages resets all changes to the "packages" edge.
func (m *TreatmentMutation) ResetPackages() {
	m.packages = nil
	m.clearedpackages = false
	m.removedpackages = nil
}

// Where appends a list predicates to the TreatmentMutation builder.
func (m *TreatmentMutation) Where(ps ...predicate.Treatment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TreatmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TreatmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Treatment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TreatmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TreatmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Treatment).
func (m *TreatmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TreatmentMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.created_at != nil {
		fields = append(fields, treatment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, treatment.FieldUpdatedAt)
	}
	if m.published != nil {
		fields = append(fields, treatment.FieldPublished)
	}
	if m.published_at != nil {
		fields = append(fields, treatment.FieldPublishedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, treatment.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, treatment.FieldArchivedAt)
	}
	if m.name_en != nil {
		fields = append(fields, treatment.FieldNameEn)
	}
	if m.name_ar != nil {
		fields = append(fields, treatment.FieldNameAr)
	}
	if m.slug != nil {
		fields = append(fields, treatment.FieldSlug)
	}
	if m.category_en != nil {
		fields = append(fields, treatment.FieldCategoryEn)
	}
	if m.category_ar != nil {
		fields = append(fields, treatment.FieldCategoryAr)
	}
	if m.summary_en != nil {
		fields = append(fields, treatment.FieldSummaryEn)
	}
	if m.summary_ar != nil {
		fields = append(fields, treatment.FieldSummaryAr)
	}
	if m.body_en != nil {
		fields = append(fields, treatment.FieldBodyEn)
	}
	if m.body_ar != nil {
		fields = append(fields, treatment.FieldBodyAr)
	}
	if m.cost_min != nil {
		fields = append(fields, treatment.FieldCostMin)
	}
	if m.cost_max != nil {
		fields = append(fields, treatment.FieldCostMax)
	}
	if m.currency != nil {
		fields = append(fields, treatment.FieldCurrency)
	}
	if m.stay_days_min != nil {
		fields = append(fields, treatment.FieldStayDaysMin)
	}
	if m.stay_days_max != nil {
		fields = append(fields, treatment.FieldStayDaysMax)
	}
	if m.faq != nil {
		fields = append(fields, treatment.FieldFaq)
	}
	if m.images != nil {
		fields = append(fields, treatment.FieldImages)
	}
	if m.featured != nil {
		fields = append(fields, treatment.FieldFeatured)
	}
	if m.meta_title_en != nil {
		fields = append(fields, treatment.FieldMetaTitleEn)
	}
	if m.meta_title_ar != nil {
		fields = append(fields, treatment.FieldMetaTitleAr)
	}
	if m.meta_description_en != nil {
		fields = append(fields, treatment.FieldMetaDescriptionEn)
	}
	if m.meta_description_ar != nil {
		fields = append(fields, treatment.FieldMetaDescriptionAr)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TreatmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case treatment.FieldCreatedAt:
		return m.CreatedAt()
	case treatment.FieldUpdatedAt:
		return m.UpdatedAt()
	case treatment.FieldPublished:
		return m.Published()
	case treatment.FieldPublishedAt:
		return m.PublishedAt()
	case treatment.FieldIsArchived:
		return m.IsArchived()
	case treatment.FieldArchivedAt:
		return m.ArchivedAt()
	case treatment.FieldNameEn:
		return m.NameEn()
	case treatment.FieldNameAr:
		return m.NameAr()
	case treatment.FieldSlug:
		return m.Slug()
	case treatment.FieldCategoryEn:
		return m.CategoryEn()
	case treatment.FieldCategoryAr:
		return m.CategoryAr()
	case treatment.FieldSummaryEn:
		return m.SummaryEn()
	case treatment.FieldSummaryAr:
		return m.SummaryAr()
	case treatment.FieldBodyEn:
		return m.BodyEn()
	case treatment.FieldBodyAr:
		return m.BodyAr()
	case treatment.FieldCostMin:
		return m.CostMin()
	case treatment.FieldCostMax:
		return m.CostMax()
	case treatment.FieldCurrency:
		return m.Currency()
	case treatment.FieldStayDaysMin:
		return m.StayDaysMin()
	case treatment.FieldStayDaysMax:
		return m.StayDaysMax()
	case treatment.FieldFaq:
		return m.Faq()
	case treatment.FieldImages:
		return m.Images()
	case treatment.FieldFeatured:
		return m.Featured()
	case treatment.FieldMetaTitleEn:
		return m.MetaTitleEn()
	case treatment.FieldMetaTitleAr:
		return m.MetaTitleAr()
	case treatment.FieldMetaDescriptionEn:
		return m.MetaDescriptionEn()
	case treatment.FieldMetaDescriptionAr:
		return m.MetaDescriptionAr()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TreatmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case treatment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case treatment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case treatment.FieldPublished:
		return m.OldPublished(ctx)
	case treatment.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case treatment.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case treatment.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case treatment.FieldNameEn:
		return m.OldNameEn(ctx)
	case treatment.FieldNameAr:
		return m.OldNameAr(ctx)
	case treatment.FieldSlug:
		return m.OldSlug(ctx)
	case treatment.FieldCategoryEn:
		return m.OldCategoryEn(ctx)
	case treatment.FieldCategoryAr:
		return m.OldCategoryAr(ctx)
	case treatment.FieldSummaryEn:
		return m.OldSummaryEn(ctx)
	case treatment.FieldSummaryAr:
		return m.OldSummaryAr(ctx)
	case treatment.FieldBodyEn:
		return m.OldBodyEn(ctx)
	case treatment.FieldBodyAr:
		return m.OldBodyAr(ctx)
	case treatment.FieldCostMin:
		return m.OldCostMin(ctx)
	case treatment.FieldCostMax:
		return m.OldCostMax(ctx)
	case treatment.FieldCurrency:
		return m.OldCurrency(ctx)
	case treatment.FieldStayDaysMin:
		return m.OldStayDaysMin(ctx)
	case treatment.FieldStayDaysMax:
		return m.OldStayDaysMax(ctx)
	case treatment.FieldFaq:
		return m.OldFaq(ctx)
	case treatment.FieldImages:
		return m.OldImages(ctx)
	case treatment.FieldFeatured:
		return m.OldFeatured(ctx)
	case treatment.FieldMetaTitleEn:
		return m.OldMetaTitleEn(ctx)
	case treatment.FieldMetaTitleAr:
		return m.OldMetaTitleAr(ctx)
	case treatment.FieldMetaDescriptionEn:
		return m.OldMetaDescriptionEn(ctx)
	case treatment.FieldMetaDescriptionAr:
		return m.OldMetaDescriptionAr(ctx)
	}
	return nil, fmt.Errorf("unknown Treatment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TreatmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case treatment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case treatment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case treatment.FieldPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublished(v)
		return nil
	case treatment.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case treatment.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case treatment.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case treatment.FieldNameEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameEn(v)
		return nil
	case treatment.FieldNameAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameAr(v)
		return nil
	case treatment.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case treatment.FieldCategoryEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryEn(v)
		return nil
	case treatment.FieldCategoryAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryAr(v)
		return nil
	case treatment.FieldSummaryEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryEn(v)
		return nil
	case treatment.FieldSummaryAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryAr(v)
		return nil
	case treatment.FieldBodyEn:
		v, ok := value.(content.Document)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyEn(v)
		return nil
	case treatment.FieldBodyAr:
		v, ok := value.(content.Document)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyAr(v)
		return nil
	case treatment.FieldCostMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostMin(v)
		return nil
	case treatment.FieldCostMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostMax(v)
		return nil
	case treatment.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case treatment.FieldStayDaysMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStayDaysMin(v)
		return nil
	case treatment.FieldStayDaysMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStayDaysMax(v)
		return nil
	case treatment.FieldFaq:
		v, ok := value.([]content.FAQItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaq(v)
		return nil
	case treatment.FieldImages:
		v, ok := value.(content.Images)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImages(v)
		return nil
	case treatment.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	case treatment.FieldMetaTitleEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleEn(v)
		return nil
	case treatment.FieldMetaTitleAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitleAr(v)
		return nil
	case treatment.FieldMetaDescriptionEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionEn(v)
		return nil
	case treatment.FieldMetaDescriptionAr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescriptionAr(v)
		return nil
	}
	return fmt.Errorf("unknown Treatment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TreatmentMutation) AddedFields() []string {
	var fields []string
	if m.addcost_min != nil {
		fields = append(fields, treatment.FieldCostMin)
	}
	if m.addcost_max != nil {
		fields = append(fields, treatment.FieldCostMax)
	}
	if m.addstay_days_min != nil {
		fields = append(fields, treatment.FieldStayDaysMin)
	}
	if m.addstay_days_max != nil {
		fields = append(fields, treatment.FieldStayDaysMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TreatmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case treatment.FieldCostMin:
		return m.AddedCostMin()
	case treatment.FieldCostMax:
		return m.AddedCostMax()
	case treatment.FieldStayDaysMin:
		return m.AddedStayDaysMin()
	case treatment.FieldStayDaysMax:
		return m.AddedStayDaysMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TreatmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case treatment.FieldCostMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostMin(v)
		return nil
	case treatment.FieldCostMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostMax(v)
		return nil
	case treatment.FieldStayDaysMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStayDaysMin(v)
		return nil
	case treatment.FieldStayDaysMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStayDaysMax(v)
		return nil
	}
	return fmt.Errorf("unknown Treatment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TreatmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(treatment.FieldPublishedAt) {
		fields = append(fields, treatment.FieldPublishedAt)
	}
	if m.FieldCleared(treatment.FieldArchivedAt) {
		fields = append(fields, treatment.FieldArchivedAt)
	}
	if m.FieldCleared(treatment.FieldCategoryEn) {
		fields = append(fields, treatment.FieldCategoryEn)
	}
	if m.FieldCleared(treatment.FieldCategoryAr) {
		fields = append(fields, treatment.FieldCategoryAr)
	}
	if m.FieldCleared(treatment.FieldSummaryEn) {
		fields = append(fields, treatment.FieldSummaryEn)
	}
	if m.FieldCleared(treatment.FieldSummaryAr) {
		fields = append(fields, treatment.FieldSummaryAr)
	}
	if m.FieldCleared(treatment.FieldBodyEn) {
		fields = append(fields, treatment.FieldBodyEn)
	}
	if m.FieldCleared(treatment.FieldBodyAr) {
		fields = append(fields, treatment.FieldBodyAr)
	}
	if m.FieldCleared(treatment.FieldStayDaysMin) {
		fields = append(fields, treatment.FieldStayDaysMin)
	}
	if m.FieldCleared(treatment.FieldStayDaysMax) {
		fields = append(fields, treatment.FieldStayDaysMax)
	}
	if m.FieldCleared(treatment.FieldFaq) {
		fields = append(fields, treatment.FieldFaq)
	}
	if m.FieldCleared(treatment.FieldImages) {
		fields = append(fields, treatment.FieldImages)
	}
	if m.FieldCleared(treatment.FieldMetaTitleEn) {
		fields = append(fields, treatment.FieldMetaTitleEn)
	}
	if m.FieldCleared(treatment.FieldMetaTitleAr) {
		fields = append(fields, treatment.FieldMetaTitleAr)
	}
	if m.FieldCleared(treatment.FieldMetaDescriptionEn) {
		fields = append(fields, treatment.FieldMetaDescriptionEn)
	}
	if m.FieldCleared(treatment.FieldMetaDescriptionAr) {
		fields = append(fields, treatment.FieldMetaDescriptionAr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TreatmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TreatmentMutation) ClearField(name string) error {
	switch name {
	case treatment.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case treatment.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case treatment.FieldCategoryEn:
		m.ClearCategoryEn()
		return nil
	case treatment.FieldCategoryAr:
		m.ClearCategoryAr()
		return nil
	case treatment.FieldSummaryEn:
		m.ClearSummaryEn()
		return nil
	case treatment.FieldSummaryAr:
		m.ClearSummaryAr()
		return nil
	case treatment.FieldBodyEn:
		m.ClearBodyEn()
		return nil
	case treatment.FieldBodyAr:
		m.ClearBodyAr()
		return nil
	case treatment.FieldStayDaysMin:
		m.ClearStayDaysMin()
		return nil
	case treatment.FieldStayDaysMax:
		m.ClearStayDaysMax()
		return nil
	case treatment.FieldFaq:
		m.ClearFaq()
		return nil
	case treatment.FieldImages:
		m.ClearImages()
		return nil
	case treatment.FieldMetaTitleEn:
		m.ClearMetaTitleEn()
		return nil
	case treatment.FieldMetaTitleAr:
		m.ClearMetaTitleAr()
		return nil
	case treatment.FieldMetaDescriptionEn:
		m.ClearMetaDescriptionEn()
		return nil
	case treatment.FieldMetaDescriptionAr:
		m.ClearMetaDescriptionAr()
		return nil
	}
	return fmt.Errorf("unknown Treatment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TreatmentMutation) ResetField(name string) error {
	switch name {
	case treatment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case treatment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case treatment.FieldPublished:
		m.ResetPublished()
		return nil
	case treatment.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case treatment.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case treatment.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case treatment.FieldNameEn:
		m.ResetNameEn()
		return nil
	case treatment.FieldNameAr:
		m.ResetNameAr()
		return nil
	case treatment.FieldSlug:
		m.ResetSlug()
		return nil
	case treatment.FieldCategoryEn:
		m.ResetCategoryEn()
		return nil
	case treatment.FieldCategoryAr:
		m.ResetCategoryAr()
		return nil
	case treatment.FieldSummaryEn:
		m.ResetSummaryEn()
		return nil
	case treatment.FieldSummaryAr:
		m.ResetSummaryAr()
		return nil
	case treatment.FieldBodyEn:
		m.ResetBodyEn()
		return nil
	case treatment.FieldBodyAr:
		m.ResetBodyAr()
		return nil
	case treatment.FieldCostMin:
		m.ResetCostMin()
		return nil
	case treatment.FieldCostMax:
		m.ResetCostMax()
		return nil
	case treatment.FieldCurrency:
		m.ResetCurrency()
		return nil
	case treatment.FieldStayDaysMin:
		m.ResetStayDaysMin()
		return nil
	case treatment.FieldStayDaysMax:
		m.ResetStayDaysMax()
		return nil
	case treatment.FieldFaq:
		m.ResetFaq()
		return nil
	case treatment.FieldImages:
		m.ResetImages()
		return nil
	case treatment.FieldFeatured:
		m.ResetFeatured()
		return nil
	case treatment.FieldMetaTitleEn:
		m.ResetMetaTitleEn()
		return nil
	case treatment.FieldMetaTitleAr:
		m.ResetMetaTitleAr()
		return nil
	case treatment.FieldMetaDescriptionEn:
		m.ResetMetaDescriptionEn()
		return nil
	case treatment.FieldMetaDescriptionAr:
		m.ResetMetaDescriptionAr()
		return nil
	}
	return fmt.Errorf("unknown Treatment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TreatmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.hospitals != nil {
		edges = append(edges, treatment.EdgeHospitals)
	}
	if m.packages != nil {
		edges = append(edges, treatment.EdgePackages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TreatmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case treatment.EdgeHospitals:
		ids := make([]ent.Value, 0, len(m.hospitals))
		for id := range m.hospitals {
			ids = append(ids, id)
		}
		return ids
	case treatment.EdgePackages:
		ids := make([]ent.Value, 0, len(m.packages))
		for id := range m.packages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TreatmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedhospitals != nil {
		edges = append(edges, treatment.EdgeHospitals)
	}
	if m.removedpackages != nil {
		edges = append(edges, treatment.EdgePackages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TreatmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case treatment.EdgeHospitals:
		ids := make([]ent.Value, 0, len(m.removedhospitals))
		for id := range m.removedhospitals {
			ids = append(ids, id)
		}
		return ids
	case treatment.EdgePackages:
		ids := make([]ent.Value, 0, len(m.removedpackages))
		for id := range m.removedpackages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TreatmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhospitals {
		edges = append(edges, treatment.EdgeHospitals)
	}
	if m.clearedpackages {
		edges = append(edges, treatment.EdgePackages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TreatmentMutation) EdgeCleared(name string) bool {
	switch name {
	case treatment.EdgeHospitals:
		return m.clearedhospitals
	case treatment.EdgePackages:
		return m.clearedpackages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TreatmentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Treatment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TreatmentMutation) ResetEdge(name string) error {
	switch name {
	case treatment.EdgeHospitals:
		m.ResetHospitals()
		return nil
	case treatment.EdgePackages:
		m.ResetPackages()
		return nil
	}
	return fmt.Errorf("unknown Treatment edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	updated_at                *time.Time
	is_archived               *bool
	archived_at               *time.Time
	name                      *string
	email                     *string
	password_hash             *string
	role                      *user.Role
	status                    *user.Status
	locale                    *user.Locale
	phone                     *string
	must_change_password      *bool
	last_login_at             *time.Time
	failed_login_attempts     *int
	addfailed_login_attempts  *int
	locked_until              *time.Time
	clearedFields             map[string]struct{}
	translator_profile        *uuid.UUID
	clearedtranslator_profile bool
	done                      bool
	oldValue                  func(context.Context) (*User, error)
	predicates                []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetIsArchived sets the "is_archived" field.
func (m *UserMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *UserMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *UserMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *UserMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *UserMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *UserMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[user.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *UserMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *UserMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, user.FieldArchivedAt)
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetLocale sets the "locale" field.
func (m *UserMutation) SetLocale(u user.Locale) {
	m.locale = &u
}

// Locale returns the value of the "locale" field in the mutation.
func (m *UserMutation) Locale() (r user.Locale, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLocale(ctx context.Context) (v user.Locale, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ResetLocale resets all changes to the "locale" field.
func (m *UserMutation) ResetLocale() {
	m.locale = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetMustChangePassword sets the "must_change_password" field.
func (m *UserMutation) SetMustChangePassword(b bool) {
	m.must_change_password = &b
}

// MustChangePassword returns the value of the "must_change_password" field in the mutation.
func (m *UserMutation) MustChangePassword() (r bool, exists bool) {
	v := m.must_change_password
	if v == nil {
		return
	}
	return *v, true
}

// OldMustChangePassword returns the old "must_change_password" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMustChangePassword(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMustChangePassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMustChangePassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMustChangePassword: %w", err)
	}
	return oldValue.MustChangePassword, nil
}

// ResetMustChangePassword resets all changes to the "must_change_password" field.
func (m *UserMutation) ResetMustChangePassword() {
	m.must_change_password = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// SetTranslatorProfileID sets the "translator_profile" edge to the Translator entity by id.
func (m *UserMutation) SetTranslatorProfileID(id uuid.UUID) {
	m.translator_profile = &id
}

// ClearTranslatorProfile clears the "translator_profile" edge to the Translator entity.
func (m *UserMutation) ClearTranslatorProfile() {
	m.clearedtranslator_profile = true
}

// TranslatorProfileCleared reports if the "translator_profile" edge to the Translator entity was cleared.
func (m *UserMutation) TranslatorProfileCleared() bool {
	return m.clearedtranslator_profile
}

// TranslatorProfileID returns the "translator_profile" edge ID in the mutation.
func (m *UserMutation) TranslatorProfileID() (id uuid.UUID, exists bool) {
	if m.translator_profile != nil {
		return *m.translator_profile, true
	}
	return
}

// TranslatorProfileIDs returns the "translator_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranslatorProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) TranslatorProfileIDs() (ids []uuid.UUID) {
	if id := m.translator_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranslatorProfile resets all changes to the "translator_profile" edge.
func (m *UserMutation) ResetTranslatorProfile() {
	m.translator_profile = nil
	m.clearedtranslator_profile = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, user.FieldIsArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, user.FieldArchivedAt)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.locale != nil {
		fields = append(fields, user.FieldLocale)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.must_change_password != nil {
		fields = append(fields, user.FieldMustChangePassword)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldIsArchived:
		return m.IsArchived()
	case user.FieldArchivedAt:
		return m.ArchivedAt()
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldStatus:
		return m.Status()
	case user.FieldLocale:
		return m.Locale()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldMustChangePassword:
		return m.MustChangePassword()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case user.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldLocale:
		return m.OldLocale(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldMustChangePassword:
		return m.OldMustChangePassword(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case user.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldLocale:
		v, ok := value.(user.Locale)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldMustChangePassword:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMustChangePassword(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldArchivedAt) {
		fields = append(fields, user.FieldArchivedAt)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case user.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldLocale:
		m.ResetLocale()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldMustChangePassword:
		m.ResetMustChangePassword()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.translator_profile != nil {
		edges = append(edges, user.EdgeTranslatorProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTranslatorProfile:
		if id := m.translator_profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtranslator_profile {
		edges = append(edges, user.EdgeTranslatorProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeTranslatorProfile:
		return m.clearedtranslator_profile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeTranslatorProfile:
		m.ClearTranslatorProfile()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeTranslatorProfile:
		m.ResetTranslatorProfile()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usersession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usersession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldLastUsedAt:
		return m.LastUsedAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldLastUsedAt) {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}
