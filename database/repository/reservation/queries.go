package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// byDateThenStart is the canonical listing order.
var byDateThenStart = bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}}

func (r *MongoReservationRepo) ListActiveByCompanyDate(ctx context.Context, companyID, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"companyId": companyID,
		"date":      date,
		"status":    bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().
		SetProjection(bson.M{"startTime": 1, "endTime": 1, "status": 1}).
		SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list active reservations for company %s on %s: %w", companyID, date, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

func (r *MongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *MongoReservationRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Reservation, error) {
	return r.list(ctx, bson.M{"companyId": companyID})
}

func (r *MongoReservationRepo) ListFiltered(ctx context.Context, f Filter) ([]models.Reservation, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.StartDate != "" || f.EndDate != "" {
		dateRange := bson.M{}
		if f.StartDate != "" {
			dateRange["$gte"] = f.StartDate
		}
		if f.EndDate != "" {
			dateRange["$lte"] = f.EndDate
		}
		filter["date"] = dateRange
	}
	return r.list(ctx, filter)
}

func (r *MongoReservationRepo) list(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(byDateThenStart)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}
