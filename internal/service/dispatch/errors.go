package dispatch

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidOperatorID = errors.New("invalid operator id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidETA        = errors.New("eta must be a positive number of minutes")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyAssigned   = errors.New("delivery already assigned")
	ErrPermissionDenied  = errors.New("permission denied")
)
