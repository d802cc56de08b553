package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureUserIndexes creates the indexes the account collection relies on.
// Creation is idempotent, so this runs unconditionally at startup.
func EnsureUserIndexes(db Database, collection string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := db.Collection(collection)
	createIndex(ctx, users, bson.D{{Key: "username", Value: 1}}, "username_unique", true)
}

func createIndex(ctx context.Context, collection Collection, keys bson.D, name string, unique bool) {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("create index %q failed: %v", name, err)
	}
}
