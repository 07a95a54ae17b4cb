package translator

import "errors"

var (
	ErrTranslatorNotFound = errors.New("translator not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotTranslator  = errors.New("user does not hold the TRANSLATOR role")
	ErrProfileExists      = errors.New("user already has a translator profile")
	ErrInvalidStatus      = errors.New("unknown translator status")
	ErrNoLanguages        = errors.New("at least one working language is required")
)
