package timeslotRepo

import (
	"context"

	"slotbook/models"
)

// NoopSlotCache is used when slot caching is disabled. Every Get is a miss.
type NoopSlotCache struct{}

func (NoopSlotCache) Get(ctx context.Context, companyID, date string) ([]models.TimeSlot, bool, error) {
	return nil, false, nil
}

func (NoopSlotCache) Set(ctx context.Context, companyID, date string, slots []models.TimeSlot) error {
	return nil
}

func (NoopSlotCache) Invalidate(ctx context.Context, companyID, date string) error {
	return nil
}
