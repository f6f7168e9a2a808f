package sessionRepo

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

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	repo := &MongoSessionRepo{coll: database.Collection("sessions")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "conferenceKey", Value: 1}, {Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "speaker", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a session by key, nil when absent.
func (r *MongoSessionRepo) GetByID(id string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session with id %s: %w", id, err)
	}
	return &session, nil
}

// GetByKeys retrieves sessions for the given keys in key order.
func (r *MongoSessionRepo) GetByKeys(keys []string) ([]models.Session, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": keys}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions by keys: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]models.Session, len(keys))
	for cursor.Next(ctx) {
		var s models.Session
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		byID[s.ID] = s
	}

	result := make([]models.Session, 0, len(keys))
	for _, k := range keys {
		if s, ok := byID[k]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

// GetByConference retrieves all sessions of a conference, ordered by name.
func (r *MongoSessionRepo) GetByConference(conferenceKey string) ([]models.Session, error) {
	return r.find(bson.M{"conferenceKey": conferenceKey})
}

// GetByConferenceAndType retrieves a conference's sessions of one type.
func (r *MongoSessionRepo) GetByConferenceAndType(conferenceKey, sessionType string) ([]models.Session, error) {
	return r.find(bson.M{"conferenceKey": conferenceKey, "type": sessionType})
}

// GetByConferenceAndSpeaker retrieves a speaker's sessions within a conference.
func (r *MongoSessionRepo) GetByConferenceAndSpeaker(conferenceKey, speaker string) ([]models.Session, error) {
	return r.find(bson.M{"conferenceKey": conferenceKey, "speaker": speaker})
}

// GetBySpeaker retrieves a speaker's sessions across all conferences.
func (r *MongoSessionRepo) GetBySpeaker(speaker string) ([]models.Session, error) {
	return r.find(bson.M{"speaker": speaker})
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

// Query runs a validated session query plan. The plan's conference key scopes
// the query to one conference's sessions; the remaining predicates apply as
// field filters; the sort order comes from the plan.
func (r *MongoSessionRepo) Query(plan *models.SessionQueryPlan) ([]models.Session, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if plan.ConferenceKey != "" {
		filter["conferenceKey"] = plan.ConferenceKey
	}
	for _, p := range plan.Filters {
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
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeSessions(ctx, cursor)
}

func (r *MongoSessionRepo) find(filter bson.M) ([]models.Session, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeSessions(ctx, cursor)
}

func decodeSessions(ctx context.Context, cursor *mongo.Cursor) ([]models.Session, error) {
	var sessions []models.Session
	for cursor.Next(ctx) {
		var s models.Session
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
