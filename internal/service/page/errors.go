package page

import "errors"

var (
	ErrPageNotFound          = errors.New("content page not found")
	ErrSlugAlreadyExists     = errors.New("page slug already taken")
	ErrInvalidSlug           = errors.New("invalid page slug")
	ErrInvalidKind           = errors.New("unknown page kind")
	ErrInvalidBody           = errors.New("invalid content blocks")
	ErrIncompleteTranslation = errors.New("both language versions are required before publishing")
	ErrArchived              = errors.New("page is archived")
)
