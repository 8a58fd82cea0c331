package reservation

import "errors"

var (
	// ErrNotFound signals that the reservation id has no record.
	ErrNotFound = errors.New("reservation not found")
	// ErrForbidden signals an authenticated caller who is neither the
	// reservation's customer nor the owner of its company.
	ErrForbidden = errors.New("not allowed to access this reservation")
	// ErrInvalidStatus signals a status value outside the enum.
	ErrInvalidStatus = errors.New("invalid reservation status")
	// ErrInvalidTransition signals a status change the lifecycle does not
	// permit, e.g. re-activating a cancelled reservation.
	ErrInvalidTransition = errors.New("status transition not allowed")
)
