package notes

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akosarev/notekeeper/internal/common"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) (*MongoRepository, error) {
	return &MongoRepository{coll: coll}, nil
}

func (r *MongoRepository) Create(ctx context.Context, note *Note) (*Note, error) {

	if note.Tags == nil {
		note.Tags = []string{}
	}
	note.CreatedOn = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error inserting note: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		note.ID = oid
	}

	return note, nil
}

func (r *MongoRepository) GetOwned(ctx context.Context, id, ownerID string) (*Note, error) {

	filter, err := ownedFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	note := &Note{}
	err = r.coll.FindOne(ctx, filter).Decode(note)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error querying note: %w", err)
	}

	return note, nil
}

func (r *MongoRepository) Update(ctx context.Context, note *Note) (*Note, error) {

	filter := bson.M{"_id": note.ID, "userId": note.UserID}
	update := bson.M{"$set": bson.M{
		"title":    note.Title,
		"content":  note.Content,
		"tags":     note.Tags,
		"isPinned": note.IsPinned,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("error updating note: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, common.ErrorNotFound
	}

	return note, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id, ownerID string) error {

	filter, err := ownedFilter(id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *MongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Note, error) {

	opts := options.Find().SetSort(bson.D{{Key: "isPinned", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	defer cur.Close(ctx)

	return decodeAll(ctx, cur)
}

func (r *MongoRepository) SearchByOwner(ctx context.Context, ownerID, query string) ([]*Note, error) {

	// QuoteMeta keeps the match a literal substring test rather than a
	// caller-supplied regular expression.
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	filter := bson.M{
		"userId": ownerID,
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
		},
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching notes: %w", err)
	}
	defer cur.Close(ctx)

	return decodeAll(ctx, cur)
}

func ownedFilter(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	return bson.M{"_id": oid, "userId": ownerID}, nil
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]*Note, error) {
	result := []*Note{}
	for cur.Next(ctx) {
		note := &Note{}
		if err := cur.Decode(note); err != nil {
			return nil, fmt.Errorf("error decoding note: %w", err)
		}
		result = append(result, note)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return result, nil
}
