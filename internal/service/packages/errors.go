package packages

import "errors"

var (
	ErrPackageNotFound       = errors.New("package not found")
	ErrTreatmentNotFound     = errors.New("treatment not found")
	ErrHospitalNotFound      = errors.New("hospital not found")
	ErrSlugAlreadyExists     = errors.New("package slug already taken")
	ErrInvalidSlug           = errors.New("invalid package slug")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
	ErrIncompleteTranslation = errors.New("both language versions are required before publishing")
	ErrArchived              = errors.New("package is archived")
)
