package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *MongoReservationRepo) CountByStatus(ctx context.Context) (StatusCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var counts StatusCounts
	var err error
	if counts.Total, err = r.coll.CountDocuments(ctx, bson.M{}); err != nil {
		return StatusCounts{}, fmt.Errorf("failed to count reservations: %w", err)
	}
	if counts.Confirmed, err = r.coll.CountDocuments(ctx, bson.M{"status": models.StatusConfirmed}); err != nil {
		return StatusCounts{}, fmt.Errorf("failed to count confirmed reservations: %w", err)
	}
	if counts.Pending, err = r.coll.CountDocuments(ctx, bson.M{"status": models.StatusPending}); err != nil {
		return StatusCounts{}, fmt.Errorf("failed to count pending reservations: %w", err)
	}
	if counts.Cancelled, err = r.coll.CountDocuments(ctx, bson.M{"status": models.StatusCancelled}); err != nil {
		return StatusCounts{}, fmt.Errorf("failed to count cancelled reservations: %w", err)
	}
	return counts, nil
}

func (r *MongoReservationRepo) CountSince(ctx context.Context, userID, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": date}}
	if userID != "" {
		filter["userId"] = userID
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations since %s: %w", date, err)
	}
	return count, nil
}

func (r *MongoReservationRepo) CountUserByStatus(ctx context.Context, userID, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID, "status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s reservations for user %s: %w", status, userID, err)
	}
	return count, nil
}

func (r *MongoReservationRepo) DistinctUsers(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	users, err := r.coll.Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct users: %w", err)
	}
	return int64(len(users)), nil
}
