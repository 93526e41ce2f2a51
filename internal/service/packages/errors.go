package packages

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackageID      = errors.New("invalid package id")
	ErrInvalidTitle          = errors.New("invalid title")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidVolume         = errors.New("invalid volume")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidImageCount     = errors.New("invalid number of images")

	ErrPackageNotCreated       = errors.New("package has not been created yet")
	ErrMaxImagesReached        = errors.New("maximum number of images reached")
	ErrMinImagesReached        = errors.New("minimum number of images reached")
	ErrImageNotFound           = errors.New("image does not exist")
	ErrInvalidStatusTransition = errors.New("status transition is not allowed")

	ErrPackageNotFound = errors.New("package not found")
	ErrConflict        = errors.New("resource already exists")
)
