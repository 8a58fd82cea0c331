package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	companyRepo "slotbook/database/repository/company"
	reservationRepo "slotbook/database/repository/reservation"
	"slotbook/models"
	"slotbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingInput carries the client-supplied reservation request. EndTime is
// accepted for display compatibility but never trusted: the server recomputes
// it from StartTime and DurationMinutes and rejects a mismatch.
type BookingInput struct {
	CompanyID       string `json:"companyId"`
	CompanyName     string `json:"companyName"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"duration"`
	Notes           string `json:"notes"`
}

func (in BookingInput) validate() error {
	switch {
	case in.CompanyID == "":
		return fmt.Errorf("%w: companyId is required", ErrInvalidInput)
	case in.CompanyName == "":
		return fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	case in.Date == "":
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	case in.StartTime == "":
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	case in.EndTime == "":
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	case in.DurationMinutes <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	start, err := ParseClock(in.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	// The server is the source of truth for the persisted interval: an end
	// time that disagrees with start + duration is rejected, never stored.
	if expected := FormatClock(start + in.DurationMinutes); in.EndTime != expected {
		return fmt.Errorf("%w: endTime must equal startTime + duration (%s)", ErrInvalidInput, expected)
	}
	return nil
}

// Book re-validates the requested slot against a fresh read and persists a
// confirmed reservation. The re-check narrows the race window between an
// availability read and the write; the storage layer's conflict guard on
// (companyId, date, startTime) is what closes it.
func (e *DefaultSchedulingEngine) Book(ctx context.Context, identity models.Identity, input BookingInput) (*models.Reservation, error) {
	logger := utils.GetLogger()

	if err := input.validate(); err != nil {
		return nil, err
	}

	company, err := e.CompanyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}

	grid, err := GenerateGrid(company.WorkingHoursStart, company.WorkingHoursEnd, company.SlotDurationMinutes)
	if err != nil {
		return nil, err
	}
	if !onGrid(grid, input.StartTime, input.EndTime) {
		return nil, fmt.Errorf("%w: requested interval is not a bookable slot of this company", ErrInvalidInput)
	}

	existing, err := e.ReservationRepo.ListActiveByCompanyDate(ctx, input.CompanyID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	if ConflictsAny(input.StartTime, input.EndTime, existing) {
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	reservation := &models.Reservation{
		ID:              uuid.New().String(),
		UserID:          identity.UserID,
		UserName:        identity.Name,
		UserEmail:       identity.Email,
		CompanyID:       company.ID,
		CompanyName:     company.Name,
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DurationMinutes: input.DurationMinutes,
		Status:          models.StatusConfirmed,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := e.ReservationRepo.Create(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	if err := e.slotCache().Invalidate(ctx, company.ID, input.Date); err != nil {
		logger.Warn("slot cache invalidation failed", zap.String("companyID", company.ID), zap.Error(err))
	}

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleReminder(ctx, reservation); err != nil {
			// The booking stands even when the reminder cannot be queued.
			logger.Warn("failed to schedule reminder", zap.String("reservationID", reservation.ID), zap.Error(err))
		}
	}

	return reservation, nil
}

func onGrid(grid []models.TimeSlot, start, end string) bool {
	for _, slot := range grid {
		if slot.StartTime == start && slot.EndTime == end {
			return true
		}
	}
	return false
}
