// Package mongostore implements storage.Store on a MongoDB database with
// three named collections: users, events and attendance. Documents are keyed
// by entity id; attendance uses the composite "eventId_userId" key and is
// additionally queryable by native equality filters on eventId/userId.
package mongostore

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/xburian/volejbal-app-v2/internal/storage"
)

// Ensure MongoStore implements storage.Store
var _ storage.Store = (*MongoStore)(nil)

// MongoStore implements storage.Store using MongoDB collections.
type MongoStore struct {
	client     *mongo.Client
	users      *mongo.Collection
	events     *mongo.Collection
	attendance *mongo.Collection
}

// New connects to the MongoDB deployment at uri and verifies the connection
// with a ping. The three collections are created lazily by the server.
func New(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(dbName)
	return &MongoStore{
		client:     client,
		users:      db.Collection("users"),
		events:     db.Collection("events"),
		attendance: db.Collection("attendance"),
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// replaceOpts enables upsert semantics on ReplaceOne.
func replaceOpts() *options.ReplaceOptionsBuilder {
	return options.Replace().SetUpsert(true)
}

// findAll runs an equality-filtered Find and decodes all documents into out.
// Read failures degrade to an empty result per the Store contract.
func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, out any) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		slog.Warn("mongo read failed, treating as empty", "collection", coll.Name(), "error", err)
		return
	}
	if err := cur.All(ctx, out); err != nil {
		slog.Warn("mongo decode failed, treating as empty", "collection", coll.Name(), "error", err)
	}
}
