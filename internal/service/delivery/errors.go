package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackageID      = errors.New("invalid package id")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrDeliveryNotCreated = errors.New("delivery has not been created yet")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrConflict           = errors.New("resource already exists")
)
