package doctor

import "errors"

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrHospitalNotFound      = errors.New("hospital not found")
	ErrSlugAlreadyExists     = errors.New("doctor slug already taken")
	ErrInvalidSlug           = errors.New("invalid doctor slug")
	ErrIncompleteTranslation = errors.New("both language versions are required before publishing")
	ErrArchived              = errors.New("doctor is archived")
)
