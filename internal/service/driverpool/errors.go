package driverpool

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidVehicle        = errors.New("invalid vehicle")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidRating         = errors.New("invalid rating")

	ErrDriverNotFound     = errors.New("driver not found")
	ErrDriverNotAvailable = errors.New("driver is not available")
	ErrConflict           = errors.New("resource already exists")
)
