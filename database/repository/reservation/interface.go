package reservationRepo

import (
	"context"

	"slotbook/models"
)

// Filter narrows admin reservation listings. Zero values mean "no filter".
// Dates are inclusive "YYYY-MM-DD" bounds.
type Filter struct {
	Status    string
	StartDate string
	EndDate   string
}

// StatusCounts aggregates reservation counts per lifecycle status.
type StatusCounts struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Pending   int64 `json:"pending"`
	Cancelled int64 `json:"cancelled"`
}

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// Create inserts a new reservation. The storage layer guards the
	// (companyId, date, startTime) triple against concurrent non-cancelled
	// duplicates and returns ErrSlotTaken when it is already claimed.
	Create(ctx context.Context, reservation *models.Reservation) error
	// GetByID retrieves a reservation by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// Update replaces an existing reservation record.
	Update(ctx context.Context, reservation *models.Reservation) error
	// Delete permanently removes a reservation. Soft cancellation is a
	// status Update; Delete is reserved for the administrative path.
	Delete(ctx context.Context, id string) error

	// ListActiveByCompanyDate returns the non-cancelled reservations for one
	// company and date, projected to the interval fields the conflict
	// checks need.
	ListActiveByCompanyDate(ctx context.Context, companyID, date string) ([]models.Reservation, error)
	// ListByUser returns a customer's reservations, date then startTime ascending.
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	// ListByCompany returns a company's reservations, date then startTime ascending.
	ListByCompany(ctx context.Context, companyID string) ([]models.Reservation, error)
	// ListFiltered returns reservations matching the filter, date then
	// startTime ascending.
	ListFiltered(ctx context.Context, filter Filter) ([]models.Reservation, error)

	// CountByStatus counts reservations per status across all companies.
	CountByStatus(ctx context.Context) (StatusCounts, error)
	// CountSince counts reservations on or after the given date. An empty
	// userID counts across all users.
	CountSince(ctx context.Context, userID, date string) (int64, error)
	// CountUserByStatus counts one user's reservations with the given status.
	CountUserByStatus(ctx context.Context, userID, status string) (int64, error)
	// DistinctUsers returns the number of distinct customers with at least
	// one reservation.
	DistinctUsers(ctx context.Context) (int64, error)
}
