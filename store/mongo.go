package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/melaverse-glitch/Mirror-Dashboard/models"
)

const sessionsCollection = "sessions"

// ConnectMongo dials MongoDB and verifies the connection with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

// mongoStore implements SessionStore on a MongoDB collection.
type mongoStore struct {
	sessions *mongo.Collection
}

// NewMongoStore creates a session store backed by the given database.
func NewMongoStore(db *mongo.Database) (*mongoStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle cannot be nil")
	}
	return &mongoStore{sessions: db.Collection(sessionsCollection)}, nil
}

func (s *mongoStore) Create(ctx context.Context, session *models.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session and session id are required")
	}

	if session.FoundationTryons == nil {
		session.FoundationTryons = []models.FoundationTryon{}
	}

	if _, err := s.sessions.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to insert session %s: %w", session.ID, err)
	}
	return nil
}

func (s *mongoStore) AppendTryon(ctx context.Context, sessionID string, tryon models.FoundationTryon) error {
	res, err := s.sessions.UpdateOne(ctx,
		bson.M{"_id": sessionID},
		bson.M{"$push": bson.M{"foundationTryons": tryon}},
	)
	if err != nil {
		return fmt.Errorf("failed to append tryon to session %s: %w", sessionID, err)
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *mongoStore) List(ctx context.Context) ([]models.Session, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.sessions.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

func (s *mongoStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	err := s.sessions.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}
	return &session, nil
}
