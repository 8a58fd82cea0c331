package reservationRepo

import (
	"context"
	"sort"
	"sync"

	"slotbook/models"
)

// MemoryReservationRepo is an in-memory ReservationRepository used by tests
// and by local development without a MongoDB instance. Its Create mirrors the
// MongoDB partial unique index: at most one non-cancelled reservation per
// (companyId, date, startTime).
type MemoryReservationRepo struct {
	mu           sync.RWMutex
	reservations map[string]models.Reservation
}

// NewMemoryReservationRepo creates an empty in-memory reservation repository.
func NewMemoryReservationRepo() *MemoryReservationRepo {
	return &MemoryReservationRepo{reservations: make(map[string]models.Reservation)}
}

func (r *MemoryReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.Status == models.StatusCancelled {
			continue
		}
		if existing.CompanyID == reservation.CompanyID &&
			existing.Date == reservation.Date &&
			existing.StartTime == reservation.StartTime {
			return ErrSlotTaken
		}
	}
	r.reservations[reservation.ID] = *reservation
	return nil
}

func (r *MemoryReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *MemoryReservationRepo) Update(ctx context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[reservation.ID]; !ok {
		return ErrNotFound
	}
	r.reservations[reservation.ID] = *reservation
	return nil
}

func (r *MemoryReservationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(r.reservations, id)
	return nil
}

func (r *MemoryReservationRepo) ListActiveByCompanyDate(ctx context.Context, companyID, date string) ([]models.Reservation, error) {
	return r.list(func(res models.Reservation) bool {
		return res.CompanyID == companyID && res.Date == date && res.Status != models.StatusCancelled
	}), nil
}

func (r *MemoryReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return r.list(func(res models.Reservation) bool {
		return res.UserID == userID
	}), nil
}

func (r *MemoryReservationRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Reservation, error) {
	return r.list(func(res models.Reservation) bool {
		return res.CompanyID == companyID
	}), nil
}

func (r *MemoryReservationRepo) ListFiltered(ctx context.Context, f Filter) ([]models.Reservation, error) {
	return r.list(func(res models.Reservation) bool {
		if f.Status != "" && res.Status != f.Status {
			return false
		}
		if f.StartDate != "" && res.Date < f.StartDate {
			return false
		}
		if f.EndDate != "" && res.Date > f.EndDate {
			return false
		}
		return true
	}), nil
}

func (r *MemoryReservationRepo) CountByStatus(ctx context.Context) (StatusCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var counts StatusCounts
	for _, res := range r.reservations {
		counts.Total++
		switch res.Status {
		case models.StatusConfirmed:
			counts.Confirmed++
		case models.StatusPending:
			counts.Pending++
		case models.StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts, nil
}

func (r *MemoryReservationRepo) CountSince(ctx context.Context, userID, date string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, res := range r.reservations {
		if userID != "" && res.UserID != userID {
			continue
		}
		if res.Date >= date {
			count++
		}
	}
	return count, nil
}

func (r *MemoryReservationRepo) CountUserByStatus(ctx context.Context, userID, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, res := range r.reservations {
		if res.UserID == userID && res.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *MemoryReservationRepo) DistinctUsers(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make(map[string]struct{})
	for _, res := range r.reservations {
		users[res.UserID] = struct{}{}
	}
	return int64(len(users)), nil
}

func (r *MemoryReservationRepo) list(match func(models.Reservation) bool) []models.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Reservation
	for _, res := range r.reservations {
		if match(res) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}
