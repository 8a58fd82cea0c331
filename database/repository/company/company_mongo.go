package companyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCompanyRepo implements CompanyRepository using MongoDB.
type MongoCompanyRepo struct {
	coll *mongo.Collection
}

// NewMongoCompanyRepo creates a new instance of CompanyRepository using MongoDB.
func NewMongoCompanyRepo() CompanyRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("companies")
	repo := &MongoCompanyRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("company repo: %v", err))
	}
	return repo
}

func (r *MongoCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, company); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrOwnerTaken
		}
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *MongoCompanyRepo) GetByID(ctx context.Context, id string) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var company models.Company
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&company); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch company with id %s: %w", id, err)
	}
	return &company, nil
}

func (r *MongoCompanyRepo) GetByOwnerID(ctx context.Context, ownerID string) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var company models.Company
	if err := r.coll.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&company); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch company for owner %s: %w", ownerID, err)
	}
	return &company, nil
}

func (r *MongoCompanyRepo) GetAll(ctx context.Context) ([]models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %w", err)
	}
	return companies, nil
}

func (r *MongoCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": company.ID}
	update := bson.M{"$set": company}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update company with id %s: %w", company.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
