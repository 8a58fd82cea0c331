package admin

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"
)

// AdminStats aggregates platform-wide reservation statistics.
type AdminStats struct {
	TotalReservations     int64 `json:"totalReservations"`
	ConfirmedReservations int64 `json:"confirmedReservations"`
	PendingReservations   int64 `json:"pendingReservations"`
	MonthlyReservations   int64 `json:"monthlyReservations"`
	WeeklyReservations    int64 `json:"weeklyReservations"`
	UniqueUsers           int64 `json:"uniqueUsers"`
}

// UserStats aggregates one customer's reservation statistics.
type UserStats struct {
	ActiveReservations  int64 `json:"activeReservations"`
	PendingReservations int64 `json:"pendingReservations"`
	MonthlyReservations int64 `json:"monthlyReservations"`
}

// statWindows returns the rolling window anchors as "YYYY-MM-DD" strings:
// the first day of the current month, and the most recent Sunday (today
// when now is a Sunday).
func statWindows(now time.Time) (startOfMonth, startOfWeek string) {
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	week := now.AddDate(0, 0, -int(now.Weekday()))
	return month.Format("2006-01-02"), week.Format("2006-01-02")
}

// Stats computes the admin dashboard aggregates anchored to the given moment.
func (s *DefaultAdminService) Stats(ctx context.Context, now time.Time) (AdminStats, error) {
	startOfMonth, startOfWeek := statWindows(now)

	counts, err := s.Repo.CountByStatus(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("failed to count reservations: %w", err)
	}
	monthly, err := s.Repo.CountSince(ctx, "", startOfMonth)
	if err != nil {
		return AdminStats{}, fmt.Errorf("failed to count monthly reservations: %w", err)
	}
	weekly, err := s.Repo.CountSince(ctx, "", startOfWeek)
	if err != nil {
		return AdminStats{}, fmt.Errorf("failed to count weekly reservations: %w", err)
	}
	users, err := s.Repo.DistinctUsers(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("failed to count distinct users: %w", err)
	}

	return AdminStats{
		TotalReservations:     counts.Total,
		ConfirmedReservations: counts.Confirmed,
		PendingReservations:   counts.Pending,
		MonthlyReservations:   monthly,
		WeeklyReservations:    weekly,
		UniqueUsers:           users,
	}, nil
}

// StatsForUser computes the caller's dashboard aggregates anchored to the
// given moment.
func (s *DefaultAdminService) StatsForUser(ctx context.Context, userID string, now time.Time) (UserStats, error) {
	startOfMonth, _ := statWindows(now)

	active, err := s.Repo.CountUserByStatus(ctx, userID, models.StatusConfirmed)
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count active reservations: %w", err)
	}
	pending, err := s.Repo.CountUserByStatus(ctx, userID, models.StatusPending)
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count pending reservations: %w", err)
	}
	monthly, err := s.Repo.CountSince(ctx, userID, startOfMonth)
	if err != nil {
		return UserStats{}, fmt.Errorf("failed to count monthly reservations: %w", err)
	}

	return UserStats{
		ActiveReservations:  active,
		PendingReservations: pending,
		MonthlyReservations: monthly,
	}, nil
}
