package scheduling

import "errors"

var (
	// ErrInvalidConfiguration signals unusable working hours or a
	// non-positive slot duration.
	ErrInvalidConfiguration = errors.New("invalid slot configuration")
	// ErrCompanyNotFound signals that the referenced company does not exist.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrInvalidInput signals missing or inconsistent booking fields,
	// rejected before any store write.
	ErrInvalidInput = errors.New("invalid booking input")
	// ErrSlotUnavailable signals a conflict detected at booking time. It is
	// always computed fresh against the store, never cached.
	ErrSlotUnavailable = errors.New("time slot is not available")
)
