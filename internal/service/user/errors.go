package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("a user with this email already exists")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidLocale      = errors.New("locale must be en or ar")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrLastAdmin          = errors.New("cannot demote or remove the last active admin")
)
