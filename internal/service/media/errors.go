package media

import "errors"

var (
	ErrMediaNotFound          = errors.New("media not found")
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrFileTooLarge           = errors.New("file exceeds the maximum upload size")
	ErrInvalidEntity          = errors.New("unknown entity kind")
	ErrStorageUnavailable     = errors.New("object storage is not configured")
)
