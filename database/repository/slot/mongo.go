package slotRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const slotCollection = "slots"

// slotDocument is one key-value slot: {_id: key, value: "<serialized>"}.
type slotDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoSlotRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoSlotRepo returns a SlotRepository backed by the "slots" collection of dbName.
func NewMongoSlotRepo(client *mongo.Client, dbName string) SlotRepository {
	return &mongoSlotRepo{
		client: client,
		coll:   client.Database(dbName).Collection(slotCollection),
	}
}

func (r *mongoSlotRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var doc slotDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("mongo find slot %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (r *mongoSlotRepo) Set(ctx context.Context, key, value string) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, slotDocument{Key: key, Value: value}, opts)
	if err != nil {
		return fmt.Errorf("mongo upsert slot %s: %w", key, err)
	}
	return nil
}

func (r *mongoSlotRepo) Remove(ctx context.Context, key string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete slot %s: %w", key, err)
	}
	return nil
}

func (r *mongoSlotRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
