package scheduling

import "slotbook/models"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Clock strings are fixed-width zero-padded
// "HH:MM", so lexicographic comparison matches chronological order.
// Zero-length or inverted intervals never overlap anything.
//
// This is the single authoritative overlap rule: the availability resolver
// and the booking transaction both go through it, so their conflict
// judgments cannot diverge.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	if aStart >= aEnd || bStart >= bEnd {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// ConflictsAny reports whether [start, end) overlaps any reservation in the
// set. Cancelled reservations must already be filtered out by the caller.
func ConflictsAny(start, end string, existing []models.Reservation) bool {
	for _, r := range existing {
		if Overlaps(start, end, r.StartTime, r.EndTime) {
			return true
		}
	}
	return false
}
