package registrationRepo

import (
	"context"
	"fmt"

	"confcentral/database"
	"confcentral/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRegistrationRepo implements AtomicRunner over the profile, conference
// and session collections using Mongo multi-document transactions.
type MongoRegistrationRepo struct {
	profiles    *mongo.Collection
	conferences *mongo.Collection
	sessions    *mongo.Collection
}

// NewMongoRegistrationRepo creates a new AtomicRunner using MongoDB.
func NewMongoRegistrationRepo() AtomicRunner {
	return &MongoRegistrationRepo{
		profiles:    database.Collection("profiles"),
		conferences: database.Collection("conferences"),
		sessions:    database.Collection("sessions"),
	}
}

// mongoTx carries a session context so every operation joins the transaction.
type mongoTx struct {
	sc   mongo.SessionContext
	repo *MongoRegistrationRepo
}

func (t *mongoTx) Profile(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := t.repo.profiles.FindOne(t.sc, bson.M{"id": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", userID, err)
	}
	return &profile, nil
}

func (t *mongoTx) Conference(key string) (*models.Conference, error) {
	var conference models.Conference
	if err := t.repo.conferences.FindOne(t.sc, bson.M{"id": key}).Decode(&conference); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conference with id %s: %w", key, err)
	}
	return &conference, nil
}

func (t *mongoTx) Session(key string) (*models.Session, error) {
	var session models.Session
	if err := t.repo.sessions.FindOne(t.sc, bson.M{"id": key}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session with id %s: %w", key, err)
	}
	return &session, nil
}

func (t *mongoTx) SaveProfile(profile *models.Profile) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := t.repo.profiles.ReplaceOne(t.sc, bson.M{"id": profile.UserID}, profile, opts); err != nil {
		return fmt.Errorf("failed to save profile with id %s: %w", profile.UserID, err)
	}
	return nil
}

func (t *mongoTx) SaveConference(conference *models.Conference) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := t.repo.conferences.ReplaceOne(t.sc, bson.M{"id": conference.ID}, conference, opts); err != nil {
		return fmt.Errorf("failed to save conference with id %s: %w", conference.ID, err)
	}
	return nil
}

func (t *mongoTx) SaveSession(session *models.Session) error {
	if _, err := t.repo.sessions.InsertOne(t.sc, session); err != nil {
		return fmt.Errorf("failed to save session with id %s: %w", session.ID, err)
	}
	return nil
}

// RunAtomic executes fn inside a Mongo transaction. A returned error aborts
// the transaction and leaves every touched document in its prior state.
// Service-level errors pass through unchanged so callers keep their kind.
func (r *MongoRegistrationRepo) RunAtomic(ctx context.Context, fn func(tx Tx) error) error {
	client := r.profiles.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(&mongoTx{sc: sc, repo: r}); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
