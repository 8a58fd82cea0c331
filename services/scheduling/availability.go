package scheduling

import (
	"context"
	"errors"
	"fmt"

	companyRepo "slotbook/database/repository/company"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

// ResolveAvailability recomputes the day grid for (companyID, date) from the
// company configuration and the non-cancelled reservation set. Purely a
// function of persisted state at call time; result order is ascending start
// time. Subject to races by design: the booking transaction re-checks.
func (e *DefaultSchedulingEngine) ResolveAvailability(ctx context.Context, companyID, date string) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()

	company, err := e.CompanyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}

	if e.CacheReads {
		if cached, ok, err := e.slotCache().Get(ctx, companyID, date); err != nil {
			logger.Warn("slot cache read failed", zap.String("companyID", companyID), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	existing, err := e.ReservationRepo.ListActiveByCompanyDate(ctx, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	grid, err := GenerateGrid(company.WorkingHoursStart, company.WorkingHoursEnd, company.SlotDurationMinutes)
	if err != nil {
		return nil, err
	}

	for i := range grid {
		grid[i].IsAvailable = !ConflictsAny(grid[i].StartTime, grid[i].EndTime, existing)
	}

	if err := e.slotCache().Set(ctx, companyID, date, grid); err != nil {
		logger.Warn("slot cache write failed", zap.String("companyID", companyID), zap.Error(err))
	}
	return grid, nil
}
