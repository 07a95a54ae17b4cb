// Code generated by ent, DO NOT EDIT.

package booking

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the booking type in the database.
	Label = "booking"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldIsArchived holds the string denoting the is_archived field in the database.
	FieldIsArchived = "is_archived"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientEmail holds the string denoting the patient_email field in the database.
	FieldPatientEmail = "patient_email"
	// FieldPatientPhone holds the string denoting the patient_phone field in the database.
	FieldPatientPhone = "patient_phone"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldLocale holds the string denoting the locale field in the database.
	FieldLocale = "locale"
	// FieldTreatmentID holds the string denoting the treatment_id field in the database.
	FieldTreatmentID = "treatment_id"
	// FieldHospitalID holds the string denoting the hospital_id field in the database.
	FieldHospitalID = "hospital_id"
	// FieldPackageID holds the string denoting the package_id field in the database.
	FieldPackageID = "package_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldTranslatorID holds the string denoting the translator_id field in the database.
	FieldTranslatorID = "translator_id"
	// FieldAssignedUserID holds the string denoting the assigned_user_id field in the database.
	FieldAssignedUserID = "assigned_user_id"
	// FieldPreferredStart holds the string denoting the preferred_start field in the database.
	FieldPreferredStart = "preferred_start"
	// FieldPreferredEnd holds the string denoting the preferred_end field in the database.
	FieldPreferredEnd = "preferred_end"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConfirmedAt holds the string denoting the confirmed_at field in the database.
	FieldConfirmedAt = "confirmed_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCancellationReason holds the string denoting the cancellation_reason field in the database.
	FieldCancellationReason = "cancellation_reason"
	// EdgeTreatment holds the string denoting the treatment edge name in mutations.
	EdgeTreatment = "treatment"
	// EdgeHospital holds the string denoting the hospital edge name in mutations.
	EdgeHospital = "hospital"
	// EdgePackage holds the string denoting the package edge name in mutations.
	EdgePackage = "package"
	// EdgeDoctor holds the string denoting the doctor edge name in mutations.
	EdgeDoctor = "doctor"
	// EdgeTranslator holds the string denoting the translator edge name in mutations.
	EdgeTranslator = "translator"
	// EdgeAssignedUser holds the string denoting the assigned_user edge name in mutations.
	EdgeAssignedUser = "assigned_user"
	// Table holds the table name of the booking in the database.
	Table = "bookings"
	// TreatmentTable is the table that holds the treatment relation/edge.
	TreatmentTable = "bookings"
	// TreatmentInverseTable is the table name for the Treatment entity.
	// It exists in this package in order to avoid circular dependency with the "treatment" package.
	TreatmentInverseTable = "treatments"
	// TreatmentColumn is the table column denoting the treatment relation/edge.
	TreatmentColumn = "treatment_id"
	// HospitalTable is the table that holds the hospital relation/edge.
	HospitalTable = "bookings"
	// HospitalInverseTable is the table name for the Hospital entity.
	// It exists in this package in order to avoid circular dependency with the "hospital" package.
	HospitalInverseTable = "hospitals"
	// HospitalColumn is the table column denoting the hospital relation/edge.
	HospitalColumn = "hospital_id"
	// PackageTable is the table that holds the package relation/edge.
	PackageTable = "bookings"
	// PackageInverseTable is the table name for the CarePackage entity.
	// It exists in this package in order to avoid circular dependency with the "carepackage" package.
	PackageInverseTable = "packages"
	// PackageColumn is the table column denoting the package relation/edge.
	PackageColumn = "package_id"
	// DoctorTable is the table that holds the doctor relation/edge.
	DoctorTable = "bookings"
	// DoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	DoctorInverseTable = "doctors"
	// DoctorColumn is the table column denoting the doctor relation/edge.
	DoctorColumn = "doctor_id"
	// TranslatorTable is the table that holds the translator relation/edge.
	TranslatorTable = "bookings"
	// TranslatorInverseTable is the table name for the Translator entity.
	// It exists in this package in order to avoid circular dependency with the "translator" package.
	TranslatorInverseTable = "translators"
	// TranslatorColumn is the table column denoting the translator relation/edge.
	TranslatorColumn = "translator_id"
	// AssignedUserTable is the table that holds the assigned_user relation/edge.
	AssignedUserTable = "bookings"
	// AssignedUserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	AssignedUserInverseTable = "users"
	// AssignedUserColumn is the table column denoting the assigned_user relation/edge.
	AssignedUserColumn = "assigned_user_id"
)

// Columns holds all SQL columns for booking fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldIsArchived,
	FieldArchivedAt,
	FieldPatientName,
	FieldPatientEmail,
	FieldPatientPhone,
	FieldCountry,
	FieldLocale,
	FieldTreatmentID,
	FieldHospitalID,
	FieldPackageID,
	FieldDoctorID,
	FieldTranslatorID,
	FieldAssignedUserID,
	FieldPreferredStart,
	FieldPreferredEnd,
	FieldNotes,
	FieldStatus,
	FieldConfirmedAt,
	FieldCompletedAt,
	FieldCancelledAt,
	FieldCancellationReason,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultIsArchived holds the default value on creation for the "is_archived" field.
	DefaultIsArchived bool
	// PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	PatientNameValidator func(string) error
	// PatientEmailValidator is a validator for the "patient_email" field. It is called by the builders before save.
	PatientEmailValidator func(string) error
	// PatientPhoneValidator is a validator for the "patient_phone" field. It is called by the builders before save.
	PatientPhoneValidator func(string) error
	// CountryValidator is a validator for the "country" field. It is called by the builders before save.
	CountryValidator func(string) error
	// DefaultLocale holds the default value on creation for the "locale" field.
	DefaultLocale string
	// LocaleValidator is a validator for the "locale" field. It is called by the builders before save.
	LocaleValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusLEAD is the default value of the Status enum.
const DefaultStatus = StatusLEAD

// Status values.
const (
	StatusLEAD         Status = "LEAD"
	StatusCONTACTED    Status = "CONTACTED"
	StatusCONFIRMED    Status = "CONFIRMED"
	StatusSCHEDULED    Status = "SCHEDULED"
	StatusIN_TREATMENT Status = "IN_TREATMENT"
	StatusDISCHARGED   Status = "DISCHARGED"
	StatusCANCELLED    Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusLEAD, StatusCONTACTED, StatusCONFIRMED, StatusSCHEDULED, StatusIN_TREATMENT, StatusDISCHARGED, StatusCANCELLED:
		return nil
	default:
		return fmt.Errorf("booking: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Booking queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIsArchived orders the results by the is_archived field.
func ByIsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsArchived, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientEmail orders the results by the patient_email field.
func ByPatientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientEmail, opts...).ToFunc()
}

// ByPatientPhone orders the results by the patient_phone field.
func ByPatientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientPhone, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByLocale orders the results by the locale field.
func ByLocale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocale, opts...).ToFunc()
}

// ByTreatmentID orders the results by the treatment_id field.
func ByTreatmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTreatmentID, opts...).ToFunc()
}

// ByHospitalID orders the results by the hospital_id field.
func ByHospitalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHospitalID, opts...).ToFunc()
}

// ByPackageID orders the results by the package_id field.
func ByPackageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByTranslatorID orders the results by the translator_id field.
func ByTranslatorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslatorID, opts...).ToFunc()
}

// ByAssignedUserID orders the results by the assigned_user_id field.
func ByAssignedUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedUserID, opts...).ToFunc()
}

// ByPreferredStart orders the results by the preferred_start field.
func ByPreferredStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredStart, opts...).ToFunc()
}

// ByPreferredEnd orders the results by the preferred_end field.
func ByPreferredEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredEnd, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConfirmedAt orders the results by the confirmed_at field.
func ByConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCancellationReason orders the results by the cancellation_reason field.
func ByCancellationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationReason, opts...).ToFunc()
}

// ByTreatmentField orders the results by treatment field.
func ByTreatmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTreatmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByHospitalField orders the results by hospital field.
func ByHospitalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHospitalStep(), sql.OrderByField(field, opts...))
	}
}

// ByPackageField orders the results by package field.
func ByPackageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPackageStep(), sql.OrderByField(field, opts...))
	}
}

// ByDoctorField orders the results by doctor field.
func ByDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorStep(), sql.OrderByField(field, opts...))
	}
}

// ByTranslatorField orders the results by translator field.
func ByTranslatorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranslatorStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssignedUserField orders the results by assigned_user field.
func ByAssignedUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignedUserStep(), sql.OrderByField(field, opts...))
	}
}
func newTreatmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TreatmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, TreatmentTable, TreatmentColumn),
	)
}
func newHospitalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HospitalInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, HospitalTable, HospitalColumn),
	)
}
func newPackageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, PackageTable, PackageColumn),
	)
}
func newDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
	)
}
func newTranslatorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranslatorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, TranslatorTable, TranslatorColumn),
	)
}
func newAssignedUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignedUserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AssignedUserTable, AssignedUserColumn),
	)
}
