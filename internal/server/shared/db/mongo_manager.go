package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akosarev/notekeeper/internal/server/notes"
	"github.com/akosarev/notekeeper/internal/server/users"
)

const connectTimeout = 10 * time.Second

const (
	usersCollectionName = "users"
	notesCollectionName = "notes"
)

type MongoRepositoryManager struct {
	client *mongo.Client
	users  users.Repository
	notes  notes.Repository
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Notes() notes.Repository {
	return m.notes
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func NewMongoRepositoryManager(uri string, dbName string) (RepositoryManager, error) {

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	database := client.Database(dbName)

	userRepo, err := users.NewMongoRepository(database.Collection(usersCollectionName))
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	noteRepo, err := notes.NewMongoRepository(database.Collection(notesCollectionName))
	if err != nil {
		return nil, fmt.Errorf("note repo creation error: %w", err)
	}

	return &MongoRepositoryManager{
		client: client,
		users:  userRepo,
		notes:  noteRepo,
	}, nil
}
