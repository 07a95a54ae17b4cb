package hospital

import "errors"

var (
	ErrHospitalNotFound      = errors.New("hospital not found")
	ErrSlugAlreadyExists     = errors.New("hospital slug already taken")
	ErrInvalidSlug           = errors.New("invalid hospital slug")
	ErrIncompleteTranslation = errors.New("both language versions are required before publishing")
	ErrArchived              = errors.New("hospital is archived")
)
