package profileRepo

import (
	"context"
	"fmt"
	"time"

	"confcentral/database"
	"confcentral/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	repo := &MongoProfileRepo{coll: database.Collection("profiles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by user ID, nil when absent.
func (r *MongoProfileRepo) GetByID(userID string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", userID, err)
	}
	return &profile, nil
}

// Upsert inserts or replaces the profile document keyed by user ID.
func (r *MongoProfileRepo) Upsert(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.UserID}, profile, opts); err != nil {
		return fmt.Errorf("failed to upsert profile with id %s: %w", profile.UserID, err)
	}
	return nil
}
