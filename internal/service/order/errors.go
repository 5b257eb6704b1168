package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidPackage        = errors.New("invalid package")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrOrderNotFound     = errors.New("order not found")
	ErrAlreadyAssigned   = errors.New("order already has a driver")
	ErrAlreadyDelivered  = errors.New("order already delivered")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrConflict          = errors.New("resource already exists")
)
