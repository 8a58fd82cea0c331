package scheduling

import (
	"context"

	companyRepo "slotbook/database/repository/company"
	reservationRepo "slotbook/database/repository/reservation"
	timeslotRepo "slotbook/database/repository/timeslot"
	"slotbook/models"
)

// ReminderScheduler enqueues a reminder for a freshly booked reservation.
// Implemented by the cron package; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, reservation *models.Reservation) error
}

// SchedulingService exposes the slot availability and booking engine.
type SchedulingService interface {
	// ResolveAvailability produces the ordered day grid for a company with
	// per-slot availability flags. Advisory only: it reserves nothing.
	ResolveAvailability(ctx context.Context, companyID, date string) ([]models.TimeSlot, error)
	// Book validates and persists a new confirmed reservation, re-checking
	// conflicts at write time.
	Book(ctx context.Context, identity models.Identity, input BookingInput) (*models.Reservation, error)
}

// DefaultSchedulingEngine is the production scheduling engine.
type DefaultSchedulingEngine struct {
	CompanyRepo     companyRepo.CompanyRepository
	ReservationRepo reservationRepo.ReservationRepository
	SlotCache       timeslotRepo.SlotCache
	// CacheReads lets ResolveAvailability serve from the slot cache. Off by
	// default; the cache is advisory and never authoritative.
	CacheReads bool
	Reminders  ReminderScheduler
}

func (e *DefaultSchedulingEngine) slotCache() timeslotRepo.SlotCache {
	if e.SlotCache == nil {
		return timeslotRepo.NoopSlotCache{}
	}
	return e.SlotCache
}
