package conferenceRepo

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

// MongoConferenceRepo implements ConferenceRepository using MongoDB.
// Conference writes happen through the registration repository so they share
// a transaction with the profile document; this repo is read-only.
type MongoConferenceRepo struct {
	coll *mongo.Collection
}

// NewMongoConferenceRepo creates a new instance of ConferenceRepository using MongoDB.
func NewMongoConferenceRepo() ConferenceRepository {
	repo := &MongoConferenceRepo{coll: database.Collection("conferences")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConferenceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "organizerUserId", Value: 1}}},
		{Keys: bson.D{{Key: "seatsAvailable", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a conference by key, nil when absent.
func (r *MongoConferenceRepo) GetByID(id string) (*models.Conference, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conference models.Conference
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&conference); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conference with id %s: %w", id, err)
	}
	return &conference, nil
}

// GetByKeys retrieves conferences for the given keys in key order.
func (r *MongoConferenceRepo) GetByKeys(keys []string) ([]models.Conference, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": keys}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conferences by keys: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]models.Conference, len(keys))
	for cursor.Next(ctx) {
		var c models.Conference
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conference: %w", err)
		}
		byID[c.ID] = c
	}

	result := make([]models.Conference, 0, len(keys))
	for _, k := range keys {
		if c, ok := byID[k]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

// GetByOrganizer retrieves the conferences a user created, ordered by name.
func (r *MongoConferenceRepo) GetByOrganizer(userID string) ([]models.Conference, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"organizerUserId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conferences for organizer %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	return decodeConferences(ctx, cursor)
}

// mongoOperator maps a filter operator to its Mongo counterpart.
var mongoOperator = map[models.FilterOperator]string{
	models.OpEQ:   "$eq",
	models.OpLT:   "$lt",
	models.OpGT:   "$gt",
	models.OpLTEQ: "$lte",
	models.OpGTEQ: "$gte",
	models.OpNE:   "$ne",
}

// Query runs a validated conference query plan.
func (r *MongoConferenceRepo) Query(plan *models.ConferenceQueryPlan) ([]models.Conference, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	for _, p := range plan.Predicates {
		field := string(p.Field)
		clause, ok := filter[field].(bson.M)
		if !ok {
			clause = bson.M{}
			filter[field] = clause
		}
		clause[mongoOperator[p.Operator]] = p.Value
	}

	sort := bson.D{}
	for _, field := range plan.OrderBy {
		sort = append(sort, bson.E{Key: field, Value: 1})
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query conferences: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeConferences(ctx, cursor)
}

// NearlySoldOut retrieves conferences with 0 < seatsAvailable <= maxSeats.
func (r *MongoConferenceRepo) NearlySoldOut(maxSeats int) ([]models.Conference, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"seatsAvailable": bson.M{"$gt": 0, "$lte": maxSeats}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query nearly sold out conferences: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeConferences(ctx, cursor)
}

func decodeConferences(ctx context.Context, cursor *mongo.Cursor) ([]models.Conference, error) {
	var conferences []models.Conference
	for cursor.Next(ctx) {
		var c models.Conference
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conference: %w", err)
		}
		conferences = append(conferences, c)
	}
	return conferences, nil
}
