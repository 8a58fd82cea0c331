package timeslotRepo

import (
	"context"

	"slotbook/models"
)

// SlotCache is an advisory write-through cache of resolved day grids. It is
// never the source of truth: the availability resolver recomputes every grid
// from the company configuration and reservation set, and a miss or stale
// entry only costs that recompute.
type SlotCache interface {
	// Get returns the cached grid for (companyID, date) and whether it was present.
	Get(ctx context.Context, companyID, date string) ([]models.TimeSlot, bool, error)
	// Set stores the resolved grid for (companyID, date).
	Set(ctx context.Context, companyID, date string, slots []models.TimeSlot) error
	// Invalidate drops the cached grid for (companyID, date).
	Invalidate(ctx context.Context, companyID, date string) error
}
