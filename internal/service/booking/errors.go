package booking

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrTreatmentNotFound  = errors.New("treatment not found")
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrTranslatorNotFound = errors.New("translator not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidStatus      = errors.New("unknown booking status")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrInvalidDateRange   = errors.New("preferred end date precedes start date")
	ErrMissingPatientName = errors.New("patient name is required")
)
