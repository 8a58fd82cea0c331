package reservationRepo

import "errors"

var (
	// ErrNotFound is returned when no reservation matches the query.
	ErrNotFound = errors.New("reservation not found")
	// ErrSlotTaken is returned by Create when a non-cancelled reservation
	// already claims the same (companyId, date, startTime) triple.
	ErrSlotTaken = errors.New("slot already taken")
)
