package profile

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrNoProfilePicture = errors.New("no profile picture to remove")

	ErrProfileNotFound = errors.New("profile not found")
	ErrConflict        = errors.New("resource already exists")
)
