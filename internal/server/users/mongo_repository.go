package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akosarev/notekeeper/internal/common"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) (*MongoRepository, error) {
	return &MongoRepository{coll: coll}, nil
}

// Create inserts unconditionally. Duplicate-email checking is the caller's
// responsibility and is not atomic with the insert.
func (r *MongoRepository) Create(ctx context.Context, user *User) (*User, error) {

	user.CreatedOn = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return user, nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {

	user := &User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*User, error) {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	user := &User{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return user, nil
}
