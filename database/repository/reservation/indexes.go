package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for frequently used fields in queries.
//
// The partial unique index on (companyId, date, startTime) over non-cancelled
// statuses enforces the no-overlap invariant at the storage layer: every slot
// start comes from the company's fixed grid, so two non-cancelled reservations
// overlap exactly when they share a start. The in-service conflict re-check is
// an optimization on top of this guard, not the enforcement mechanism.
func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slotGuard := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed}},
		})

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{
				{Key: "companyId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "startTime", Value: 1},
			},
			Options: slotGuard,
		},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
