package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "slotbook/database/repository/reservation"
	timeslotRepo "slotbook/database/repository/timeslot"
	"slotbook/models"
	reservationSvc "slotbook/services/reservation"
	"slotbook/utils"

	"go.uber.org/zap"
)

// ReservationListing is an admin view over reservations: the filtered rows
// plus platform-wide status counts.
type ReservationListing struct {
	Reservations []models.Reservation         `json:"reservations"`
	Stats        reservationRepo.StatusCounts `json:"stats"`
}

// AdminService exposes the administrative reservation operations. All of
// them sit behind the admin role gate.
type AdminService interface {
	ListReservations(ctx context.Context, filter reservationRepo.Filter) (ReservationListing, error)
	// UpdateStatus sets any reservation's status, enum- and
	// transition-validated.
	UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error)
	// HardDelete permanently removes a reservation.
	HardDelete(ctx context.Context, id string) error
	Stats(ctx context.Context, now time.Time) (AdminStats, error)
	StatsForUser(ctx context.Context, userID string, now time.Time) (UserStats, error)
}

// DefaultAdminService is the production AdminService.
type DefaultAdminService struct {
	Repo      reservationRepo.ReservationRepository
	SlotCache timeslotRepo.SlotCache
}

func (s *DefaultAdminService) ListReservations(ctx context.Context, filter reservationRepo.Filter) (ReservationListing, error) {
	reservations, err := s.Repo.ListFiltered(ctx, filter)
	if err != nil {
		return ReservationListing{}, fmt.Errorf("failed to list reservations: %w", err)
	}
	counts, err := s.Repo.CountByStatus(ctx)
	if err != nil {
		return ReservationListing{}, fmt.Errorf("failed to count reservations: %w", err)
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return ReservationListing{Reservations: reservations, Stats: counts}, nil
}

func (s *DefaultAdminService) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	if !models.ValidStatus(status) {
		return nil, reservationSvc.ErrInvalidStatus
	}

	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, reservationSvc.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if !reservationSvc.CanTransition(res.Status, status) {
		return nil, reservationSvc.ErrInvalidTransition
	}

	res.Status = status
	res.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	s.invalidateSlots(ctx, res)
	return res, nil
}

func (s *DefaultAdminService) HardDelete(ctx context.Context, id string) error {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return reservationSvc.ErrNotFound
		}
		return fmt.Errorf("failed to fetch reservation: %w", err)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return reservationSvc.ErrNotFound
		}
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	s.invalidateSlots(ctx, res)
	return nil
}

func (s *DefaultAdminService) invalidateSlots(ctx context.Context, res *models.Reservation) {
	if s.SlotCache == nil {
		return
	}
	if err := s.SlotCache.Invalidate(ctx, res.CompanyID, res.Date); err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed",
			zap.String("companyID", res.CompanyID), zap.Error(err))
	}
}
