package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	companyRepo "slotbook/database/repository/company"
	reservationRepo "slotbook/database/repository/reservation"
	timeslotRepo "slotbook/database/repository/timeslot"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

// UpdateInput carries a partial reservation update. Nil fields are left
// untouched.
type UpdateInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ReservationService manages reservation reads and lifecycle transitions.
type ReservationService interface {
	// Get returns a reservation visible to the caller.
	Get(ctx context.Context, identity models.Identity, id string) (*models.Reservation, error)
	// Update applies a partial status/notes update under the lifecycle and
	// authorization rules.
	Update(ctx context.Context, identity models.Identity, id string, input UpdateInput) (*models.Reservation, error)
	// Cancel soft-cancels a reservation, freeing its slot for later
	// resolve and book calls. Never a hard delete.
	Cancel(ctx context.Context, identity models.Identity, id string) error
	// ListMine returns the caller's reservations, date then start ascending.
	ListMine(ctx context.Context, identity models.Identity) ([]models.Reservation, error)
	// ListForOwnedCompany returns reservations of the company the caller
	// owns; an ownerless caller gets an empty list.
	ListForOwnedCompany(ctx context.Context, identity models.Identity) ([]models.Reservation, error)
}

// DefaultReservationService is the production ReservationService.
type DefaultReservationService struct {
	Repo        reservationRepo.ReservationRepository
	CompanyRepo companyRepo.CompanyRepository
	SlotCache   timeslotRepo.SlotCache
}

// load fetches a reservation and checks existence before ownership so
// responses stay deterministic.
func (s *DefaultReservationService) load(ctx context.Context, identity models.Identity, id string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}

	ownerID := ""
	if company, err := s.CompanyRepo.GetByID(ctx, res.CompanyID); err == nil && company != nil {
		ownerID = company.OwnerID
	}
	if !CanModify(identity, res, ownerID) {
		return nil, ErrForbidden
	}
	return res, nil
}

func (s *DefaultReservationService) Get(ctx context.Context, identity models.Identity, id string) (*models.Reservation, error) {
	return s.load(ctx, identity, id)
}

func (s *DefaultReservationService) Update(ctx context.Context, identity models.Identity, id string, input UpdateInput) (*models.Reservation, error) {
	res, err := s.load(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		if !CanTransition(res.Status, *input.Status) {
			return nil, ErrInvalidTransition
		}
		res.Status = *input.Status
	}
	if input.Notes != nil {
		res.Notes = *input.Notes
	}
	res.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	s.invalidateSlots(ctx, res)
	return res, nil
}

func (s *DefaultReservationService) Cancel(ctx context.Context, identity models.Identity, id string) error {
	res, err := s.load(ctx, identity, id)
	if err != nil {
		return err
	}
	if res.Status == models.StatusCancelled {
		return nil
	}

	res.Status = models.StatusCancelled
	res.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, res); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	s.invalidateSlots(ctx, res)
	return nil
}

func (s *DefaultReservationService) ListMine(ctx context.Context, identity models.Identity) ([]models.Reservation, error) {
	return s.Repo.ListByUser(ctx, identity.UserID)
}

func (s *DefaultReservationService) ListForOwnedCompany(ctx context.Context, identity models.Identity) ([]models.Reservation, error) {
	company, err := s.CompanyRepo.GetByOwnerID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned company: %w", err)
	}
	if company == nil {
		return []models.Reservation{}, nil
	}
	return s.Repo.ListByCompany(ctx, company.ID)
}

func (s *DefaultReservationService) invalidateSlots(ctx context.Context, res *models.Reservation) {
	if s.SlotCache == nil {
		return
	}
	if err := s.SlotCache.Invalidate(ctx, res.CompanyID, res.Date); err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed",
			zap.String("companyID", res.CompanyID), zap.Error(err))
	}
}
