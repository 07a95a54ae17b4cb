// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/booking"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// Booking is the model entity for the Booking schema.
type Booking struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// IsArchived holds the value of the "is_archived" field.
	IsArchived bool `json:"is_archived,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// PatientEmail holds the value of the "patient_email" field.
	PatientEmail string `json:"patient_email,omitempty"`
	// E.164 normalized
	PatientPhone string `json:"patient_phone,omitempty"`
	// Patient's home country, from the enquiry form
	Country *string `json:"country,omitempty"`
	// Language the enquiry was submitted in; drives follow-up emails
	Locale string `json:"locale,omitempty"`
	// FK → treatments.id
	TreatmentID *uuid.UUID `json:"treatment_id,omitempty"`
	// FK → hospitals.id
	HospitalID *uuid.UUID `json:"hospital_id,omitempty"`
	// FK → packages.id
	PackageID *uuid.UUID `json:"package_id,omitempty"`
	// FK → doctors.id
	DoctorID *uuid.UUID `json:"doctor_id,omitempty"`
	// FK → translators.id, assigned when the stay is scheduled
	TranslatorID *uuid.UUID `json:"translator_id,omitempty"`
	// FK → users.id, the coordinator handling this lead
	AssignedUserID *uuid.UUID `json:"assigned_user_id,omitempty"`
	// Start of the patient's preferred travel window
	PreferredStart *time.Time `json:"preferred_start,omitempty"`
	// PreferredEnd holds the value of the "preferred_end" field.
	PreferredEnd *time.Time `json:"preferred_end,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Status holds the value of the "status" field.
	Status booking.Status `json:"status,omitempty"`
	// Set on the LEAD/CONTACTED → CONFIRMED transition
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	// Set on the → DISCHARGED transition
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// CancellationReason holds the value of the "cancellation_reason" field.
	CancellationReason string `json:"cancellation_reason,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BookingQuery when eager-loading is set.
	Edges        BookingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BookingEdges holds the relations/edges for other nodes in the graph.
type BookingEdges struct {
	// Treatment holds the value of the treatment edge.
	Treatment *Treatment `json:"treatment,omitempty"`
	// Hospital holds the value of the hospital edge.
	Hospital *Hospital `json:"hospital,omitempty"`
	// Package holds the value of the package edge.
	Package *CarePackage `json:"package,omitempty"`
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// Translator holds the value of the translator edge.
	Translator *Translator `json:"translator,omitempty"`
	// AssignedUser holds the value of the assigned_user edge.
	AssignedUser *User `json:"assigned_user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// TreatmentOrErr returns the Treatment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookingEdges) TreatmentOrErr() (*Treatment, error) {
	if e.Treatment != nil {
		return e.Treatment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: treatment.Label}
	}
	return nil, &NotLoadedError{edge: "treatment"}
}

// HospitalOrErr returns the Hospital value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookingEdges) HospitalOrErr() (*Hospital, error) {
	if e.Hospital != nil {
		return e.Hospital, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: hospital.Label}
	}
	return nil, &NotLoadedError{edge: "hospital"}
}

// PackageOrErr returns the Package value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookingEdges) PackageOrErr() (*CarePackage, error) {
	if e.Package != nil {
		return e.Package, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: carepackage.Label}
	}
	return nil, &NotLoadedError{edge: "package"}
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookingEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// TranslatorOrErr returns the Translator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookingEdges) TranslatorOrErr() (*Translator, error) {
	if e.Translator != nil {
		return e.Translator, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: translator.Label}
	}
	return nil, &NotLoadedError{edge: "translator"}
}

// AssignedUserOrErr returns the AssignedUser value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BookingEdges) AssignedUserOrErr() (*User, error) {
	if e.AssignedUser != nil {
		return e.AssignedUser, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "assigned_user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Booking) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case booking.FieldTreatmentID, booking.FieldHospitalID, booking.FieldPackageID, booking.FieldDoctorID, booking.FieldTranslatorID, booking.FieldAssignedUserID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case booking.FieldIsArchived:
			values[i] = new(sql.NullBool)
		case booking.FieldPatientName, booking.FieldPatientEmail, booking.FieldPatientPhone, booking.FieldCountry, booking.FieldLocale, booking.FieldNotes, booking.FieldStatus, booking.FieldCancellationReason:
			values[i] = new(sql.NullString)
		case booking.FieldCreatedAt, booking.FieldUpdatedAt, booking.FieldArchivedAt, booking.FieldPreferredStart, booking.FieldPreferredEnd, booking.FieldConfirmedAt, booking.FieldCompletedAt, booking.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		case booking.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Booking fields.
func (_m *Booking) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case booking.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case booking.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case booking.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case booking.FieldIsArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_archived", values[i])
			} else if value.Valid {
				_m.IsArchived = value.Bool
			}
		case booking.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case booking.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case booking.FieldPatientEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_email", values[i])
			} else if value.Valid {
				_m.PatientEmail = value.String
			}
		case booking.FieldPatientPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_phone", values[i])
			} else if value.Valid {
				_m.PatientPhone = value.String
			}
		case booking.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = new(string)
				*_m.Country = value.String
			}
		case booking.FieldLocale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locale", values[i])
			} else if value.Valid {
				_m.Locale = value.String
			}
		case booking.FieldTreatmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_id", values[i])
			} else if value.Valid {
				_m.TreatmentID = new(uuid.UUID)
				*_m.TreatmentID = *value.S.(*uuid.UUID)
			}
		case booking.FieldHospitalID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field hospital_id", values[i])
			} else if value.Valid {
				_m.HospitalID = new(uuid.UUID)
				*_m.HospitalID = *value.S.(*uuid.UUID)
			}
		case booking.FieldPackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field package_id", values[i])
			} else if value.Valid {
				_m.PackageID = new(uuid.UUID)
				*_m.PackageID = *value.S.(*uuid.UUID)
			}
		case booking.FieldDoctorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value.Valid {
				_m.DoctorID = new(uuid.UUID)
				*_m.DoctorID = *value.S.(*uuid.UUID)
			}
		case booking.FieldTranslatorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field translator_id", values[i])
			} else if value.Valid {
				_m.TranslatorID = new(uuid.UUID)
				*_m.TranslatorID = *value.S.(*uuid.UUID)
			}
		case booking.FieldAssignedUserID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_user_id", values[i])
			} else if value.Valid {
				_m.AssignedUserID = new(uuid.UUID)
				*_m.AssignedUserID = *value.S.(*uuid.UUID)
			}
		case booking.FieldPreferredStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_start", values[i])
			} else if value.Valid {
				_m.PreferredStart = new(time.Time)
				*_m.PreferredStart = value.Time
			}
		case booking.FieldPreferredEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_end", values[i])
			} else if value.Valid {
				_m.PreferredEnd = new(time.Time)
				*_m.PreferredEnd = value.Time
			}
		case booking.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case booking.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = booking.Status(value.String)
			}
		case booking.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = new(time.Time)
				*_m.ConfirmedAt = value.Time
			}
		case booking.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case booking.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		case booking.FieldCancellationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_reason", values[i])
			} else if value.Valid {
				_m.CancellationReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Booking.
// This includes values selected through modifiers, order, etc.
func (_m *Booking) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTreatment queries the "treatment" edge of the Booking entity.
func (_m *Booking) QueryTreatment() *TreatmentQuery {
	return NewBookingClient(_m.config).QueryTreatment(_m)
}

// QueryHospital queries the "hospital" edge of the Booking entity.
func (_m *Booking) QueryHospital() *HospitalQuery {
	return NewBookingClient(_m.config).QueryHospital(_m)
}

// QueryPackage queries the "package" edge of the Booking entity.
func (_m *Booking) QueryPackage() *CarePackageQuery {
	return NewBookingClient(_m.config).QueryPackage(_m)
}

// QueryDoctor queries the "doctor" edge of the Booking entity.
func (_m *Booking) QueryDoctor() *DoctorQuery {
	return NewBookingClient(_m.config).QueryDoctor(_m)
}

// QueryTranslator queries the "translator" edge of the Booking entity.
func (_m *Booking) QueryTranslator() *TranslatorQuery {
	return NewBookingClient(_m.config).QueryTranslator(_m)
}

// QueryAssignedUser queries the "assigned_user" edge of the Booking entity.
func (_m *Booking) QueryAssignedUser() *UserQuery {
	return NewBookingClient(_m.config).QueryAssignedUser(_m)
}

// Update returns a builder for updating this Booking.
// Note that you need to call Booking.Unwrap() before calling this method if this Booking
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Booking) Update() *BookingUpdateOne {
	return NewBookingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Booking entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Booking) Unwrap() *Booking {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Booking is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Booking) String() string {
	var builder strings.Builder
	builder.WriteString("Booking(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsArchived))
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("patient_email=")
	builder.WriteString(_m.PatientEmail)
	builder.WriteString(", ")
	builder.WriteString("patient_phone=")
	builder.WriteString(_m.PatientPhone)
	builder.WriteString(", ")
	if v := _m.Country; v != nil {
		builder.WriteString("country=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("locale=")
	builder.WriteString(_m.Locale)
	builder.WriteString(", ")
	if v := _m.TreatmentID; v != nil {
		builder.WriteString("treatment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HospitalID; v != nil {
		builder.WriteString("hospital_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PackageID; v != nil {
		builder.WriteString("package_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DoctorID; v != nil {
		builder.WriteString("doctor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TranslatorID; v != nil {
		builder.WriteString("translator_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AssignedUserID; v != nil {
		builder.WriteString("assigned_user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PreferredStart; v != nil {
		builder.WriteString("preferred_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PreferredEnd; v != nil {
		builder.WriteString("preferred_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ConfirmedAt; v != nil {
		builder.WriteString("confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("cancellation_reason=")
	builder.WriteString(_m.CancellationReason)
	builder.WriteByte(')')
	return builder.String()
}

// Bookings is a parsable slice of Booking.
type Bookings []*Booking
