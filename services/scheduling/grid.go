package scheduling

import (
	"fmt"

	"slotbook/models"
)

// GenerateGrid derives the ordered day grid of bookable slots from a
// company's working hours and slot duration. Slots are half-open
// [start, start+duration) intervals stepping from the opening bound; a
// trailing slot that would run past the closing bound is dropped. A start at
// or after the end yields an empty grid rather than an error, so a
// misconfigured company renders as "no slots" instead of failing reads.
// Every slot is emitted available; the resolver flips the flag against the
// reservation set.
func GenerateGrid(startStr, endStr string, durationMinutes int) ([]models.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidConfiguration, durationMinutes)
	}
	start, err := ParseClock(startStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	var slots []models.TimeSlot
	for cur := start; cur+durationMinutes <= end; cur += durationMinutes {
		slots = append(slots, models.TimeSlot{
			StartTime:   FormatClock(cur),
			EndTime:     FormatClock(cur + durationMinutes),
			IsAvailable: true,
		})
	}
	return slots, nil
}
