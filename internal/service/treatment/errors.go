package treatment

import "errors"

var (
	ErrTreatmentNotFound     = errors.New("treatment not found")
	ErrHospitalNotFound      = errors.New("hospital not found")
	ErrSlugAlreadyExists     = errors.New("treatment slug already taken")
	ErrInvalidSlug           = errors.New("invalid treatment slug")
	ErrInvalidCostRange      = errors.New("cost_max must be greater than or equal to cost_min")
	ErrInvalidStayRange      = errors.New("stay_days_max must be greater than or equal to stay_days_min")
	ErrIncompleteTranslation = errors.New("both language versions are required before publishing")
	ErrInvalidBody           = errors.New("invalid content blocks")
	ErrArchived              = errors.New("treatment is archived")
)
