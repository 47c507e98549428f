package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The upstream API contract exposes integer entity IDs, so documents use a
// numeric _id allocated from a per-collection counter instead of ObjectIDs.

type counter struct {
	ID    string `bson:"_id"`
	Value int64  `bson:"value"`
}

// NextID atomically increments and returns the counter for the named
// sequence, creating it on first use.
func NextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := db.Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %v", name, err)
	}

	return c.Value, nil
}
