package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrAccountLocked      = errors.New("account temporarily locked after repeated failures")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrSamePassword       = errors.New("new password must differ from the current one")
)
